// 指示: miu200521358
package model

const (
	// SetupWarningNoMatchedBones は衣装ボーンが1件もアバターへ対応付かなかった警告。
	SetupWarningNoMatchedBones = "SetupWarningNoMatchedBones"
	// SetupWarningUnmatchedBones は一部の衣装ボーンがアバターへ対応付かなかった警告。
	SetupWarningUnmatchedBones = "SetupWarningUnmatchedBones"
	// SetupWarningNotHumanoid はヒューマノイドではないアバターを処理対象外にした警告。
	SetupWarningNotHumanoid = "SetupWarningNotHumanoid"
	// SetupWarningPresetBoneMissing はプリセットのボーン名が衣装に見つからなかった警告。
	SetupWarningPresetBoneMissing = "SetupWarningPresetBoneMissing"
)

// SetupWarningIDs は警告ID一覧を定義順で返す。
func SetupWarningIDs() []string {
	return []string{
		SetupWarningNoMatchedBones,
		SetupWarningUnmatchedBones,
		SetupWarningNotHumanoid,
		SetupWarningPresetBoneMissing,
	}
}
