// 指示: miu200521358
package moutput

import (
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/humanoid"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
)

// ISceneReader はシーン文書の読み込み契約を表す。
type ISceneReader interface {
	// CanLoad は読み込み可能な拡張子かを判定する。
	CanLoad(path string) bool
	// Load はシーン文書を読み込む。
	Load(path string) (*skeleton.Scene, error)
}

// ISceneWriter はシーン文書の保存契約を表す。
type ISceneWriter interface {
	// Save はシーン文書を保存する。
	Save(path string, scene *skeleton.Scene) error
}

// PresetFile は保存済みプリセットの所在を表す。
type PresetFile struct {
	Path  string
	Title string
}

// IPresetRepository はスケールプリセットの永続化契約を表す。
type IPresetRepository interface {
	// List は保存済みプリセットをファイル名順に返す。
	List() ([]PresetFile, error)
	// Load はプリセットを読み込む。
	Load(path string) (*skeleton.BoneScalePreset, error)
	// Save はプリセットを重複しないファイル名で保存し、保存先を返す。
	Save(preset *skeleton.BoneScalePreset) (string, error)
	// Delete はプリセットを削除する。
	Delete(path string) error
}

// IHumanoidAvatar はヒューマノイド割り当て済みアバターの参照契約を表す。
type IHumanoidAvatar interface {
	// Root はアバタールートを返す。
	Root() *skeleton.Node
	// BoneTransform はボーン枠に割り当てられたノードを返す。未割り当ては nil。
	BoneTransform(slot humanoid.BoneSlot) *skeleton.Node
	// IsHuman はヒューマノイドとして有効かを判定する。
	IsHuman() bool
}

// IScaleAdjusterProvider は外部スケール調整コンポーネントの操作契約を表す。
// 利用できない環境では nil を渡す。
type IScaleAdjusterProvider interface {
	// ScaleAdjuster はノードのスケール調整を返す。未付与は nil。
	ScaleAdjuster(node *skeleton.Node) *skeleton.ScaleAdjuster
	// AttachScaleAdjuster はスケール調整を付与し、既存があればそれを返す。
	AttachScaleAdjuster(node *skeleton.Node) *skeleton.ScaleAdjuster
}
