// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/humanoid"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
)

const (
	// ConfidenceExactName はアバターボーン名と完全一致した信頼度。
	ConfidenceExactName = 1.0
	// ConfidenceBestSlot は正規化名の最有力ボーン枠で一致した信頼度。
	ConfidenceBestSlot = 0.9
	// ConfidenceCandidateSlot は正規化名の候補ボーン枠で一致した信頼度。
	ConfidenceCandidateSlot = 0.7
	// ConfidenceUnmappedUpperChest はUpperChestと認識したがアバター側に無い場合の信頼度。
	ConfidenceUnmappedUpperChest = 0.5
)

// OutfitBone はマッチング対象の衣装ボーンを表す。
type OutfitBone struct {
	Name string
	Node *skeleton.Node
}

// BoneMatch は衣装ボーンとアバターボーンの対応1件を表す。
// AvatarBone が nil の場合はボーン枠のみ認識できたことを表す。
type BoneMatch struct {
	OutfitBone *skeleton.Node
	AvatarBone *skeleton.Node
	Slot       humanoid.BoneSlot
	Confidence float64
}

// AvatarSetupResult はアバターのボーン表示設定結果を表す。
type AvatarSetupResult struct {
	Target *skeleton.Node
	Bones  []*skeleton.Node
}

// OutfitSetupResult は衣装のボーン表示設定結果を表す。
type OutfitSetupResult struct {
	Target     *skeleton.Node
	Bones      []*skeleton.Node
	Matches    []BoneMatch
	Skipped    []BoneMatch
	WarningIDs []string
}

// AlignResult はアバター位置合わせ結果を表す。
type AlignResult struct {
	Target     *skeleton.Node
	AvatarBone *skeleton.Node
	Slot       humanoid.BoneSlot
}

// PresetRecordResult はスケールプリセット記録結果を表す。
type PresetRecordResult struct {
	Preset *skeleton.BoneScalePreset
	Path   string
}

// PresetApplyResult はスケールプリセット適用結果を表す。
type PresetApplyResult struct {
	Applied    int
	Missing    []string
	WarningIDs []string
}
