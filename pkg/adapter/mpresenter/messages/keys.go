// 指示: miu200521358
// Package messages はCLI表示に使うメッセージを提供する。
package messages

// コマンド説明。
const (
	CommandRootShort         = "BoneRenderer 設定ツール"
	CommandRootLong          = "アバターと衣装のボーン階層にボーン表示を設定し、衣装ボーンをアバターのヒューマノイドボーンへ対応付けます。"
	CommandNormalizeShort    = "ボーン名を正規化する"
	CommandSlotShort         = "ボーン名からヒューマノイドボーン枠を判定する"
	CommandMirrorShort       = "左右反転したボーン名を求める"
	CommandMatchShort        = "衣装ボーンとアバターボーンの対応を表示する"
	CommandSetupShort        = "ボーン表示を設定する"
	CommandSetupAvatarShort  = "アバターのヒューマノイドボーンにボーン表示を設定する"
	CommandSetupOutfitShort  = "アバターを参照して衣装ボーンにボーン表示を設定する"
	CommandRemoveShort       = "ボーン表示を削除する"
	CommandAlignShort        = "衣装ボーンを対応するアバターボーンへ位置合わせする"
	CommandUniformScaleShort = "ボーンのスケールを等倍比率へ揃える"
	CommandMirrorSyncShort   = "ボーンの変換を左右反対側へ同期する"
	CommandPresetShort       = "ボーンスケールプリセットを管理する"
	CommandPresetRecordShort = "衣装のボーンスケールをプリセットとして記録する"
	CommandPresetApplyShort  = "プリセットを衣装へ適用する"
	CommandPresetListShort   = "保存済みプリセットを一覧表示する"
	CommandPresetDeleteShort = "プリセットを削除する"
	CommandVersionShort      = "バージョンを表示する"
)

// フラグ説明。
const (
	FlagConfig    = "設定ファイルパス"
	FlagLogLevel  = "ログレベル (debug/info/warn/error)"
	FlagOutput    = "出力シーンパス (未指定時は自動命名, - で上書き)"
	FlagDryRun    = "結果を表示するだけで保存しない"
	FlagTarget    = "対象ノードのパス (衣装ルートからの相対)"
	FlagScale     = "新しいスケール (x,y,z)"
	FlagPosition  = "新しい位置 (x,y,z)"
	FlagRotation  = "新しい回転 (x,y,z,w)"
	FlagTitle     = "プリセットのタイトル"
	FlagPresetDir = "プリセット保存先"
	FlagAvatar    = "衣装ではなくアバターを対象にする"
	FlagNoColor   = "色付き表示を無効にする"
)

// 表の見出し。
const (
	HeaderOutfitBone = "衣装ボーン"
	HeaderAvatarBone = "アバターボーン"
	HeaderSlot       = "ボーン枠"
	HeaderConfidence = "信頼度"
	HeaderTitle      = "タイトル"
	HeaderPath       = "パス"
	HeaderKey        = "キー"
	HeaderName       = "名前"
	HeaderCandidates = "候補枠"
	HeaderMirror     = "反転名"
)

// 結果メッセージ。
const (
	MessageNone              = "-"
	MessageNoSlot            = "該当なし"
	MessageNoMirror          = "反転名なし"
	MessageNoPresets         = "保存済みプリセットはありません"
	MessageAvatarRequired    = "シーンにアバターがありません"
	MessageOutfitRequired    = "シーンに衣装がありません"
	MessageTargetNotFound    = "指定ノードが見つかりません: %s"
	MessageMirrorNotFound    = "反対側のボーンが見つかりません: %s"
	MessageAvatarSetup       = "アバター %s の %d ボーンにボーン表示を設定しました"
	MessageOutfitSetup       = "衣装 %s の %d ボーンにボーン表示を設定しました (未マッチ %d)"
	MessageOutfitNoMatch     = "衣装 %s にマッチするボーンがありません"
	MessageRendererRemoved   = "%s のボーン表示を削除しました"
	MessageRendererMissing   = "%s にボーン表示はありません"
	MessageAligned           = "%s を %s (%s) へ位置合わせしました"
	MessageUniformScaled     = "%s のスケールを %s へ揃えました"
	MessageUniformUnchanged  = "%s のスケールは変更されませんでした"
	MessageMirrorSynced      = "%s の変換を %s へ同期しました"
	MessageMirrorUnchanged   = "%s の変換は同期対象の変更がありません"
	MessagePresetRecorded    = "プリセット %s (%d ボーン) を %s へ保存しました"
	MessagePresetApplied     = "プリセットを %d ボーンへ適用しました"
	MessagePresetMissingBone = "衣装に見つからないボーン: %s"
	MessagePresetDeleted     = "プリセットを削除しました: %s"
	MessageSceneSaved        = "シーンを保存しました: %s"
	MessageDryRun            = "保存せずに終了しました"
	MessageVersion           = "%s %s"
	MessageScaleRequired     = "--scale を指定してください"
	MessageTransformRequired = "--position, --rotation, --scale のいずれかを指定してください"
)
