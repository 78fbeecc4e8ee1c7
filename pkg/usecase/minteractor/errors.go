// 指示: miu200521358
package minteractor

import "errors"

var (
	// ErrNotHumanoid はアバターがヒューマノイドではないことを表す。
	ErrNotHumanoid = errors.New("ヒューマノイドアバターではありません")
	// ErrNoHumanoidBones はヒューマノイドボーンが1件も割り当てられていないことを表す。
	ErrNoHumanoidBones = errors.New("ヒューマノイドボーンが見つかりません")
	// ErrNoMatchedBones は衣装ボーンが1件もアバターへ対応付かなかったことを表す。
	ErrNoMatchedBones = errors.New("マッチするボーンが見つかりません")
	// ErrPresetEmpty はスケール変更済みボーンが無く記録できないことを表す。
	ErrPresetEmpty = errors.New("スケールを変更したボーンが見つかりません")
	// ErrPresetTitleRequired はプリセット名が未指定であることを表す。
	ErrPresetTitleRequired = errors.New("プリセット名が未指定です")
	// ErrScaleAdjusterUnavailable はスケール調整コンポーネントを利用できないことを表す。
	ErrScaleAdjusterUnavailable = errors.New("スケール調整コンポーネントを利用できません")
	// ErrTargetNotInOutfit は対象ノードが衣装配下ではないことを表す。
	ErrTargetNotInOutfit = errors.New("対象ノードは衣装の配下ではありません")
	// ErrNoAvatarBoneForTarget は対象ノードに対応するアバターボーンが無いことを表す。
	ErrNoAvatarBoneForTarget = errors.New("対応するアバターボーンが見つかりません")
)
