// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/mmath"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/usecase/port/moutput"
	"go.uber.org/zap"
)

// Settings はボーン表示セットアップの設定値を表す。
type Settings struct {
	AvatarColor  mmath.Color
	OutfitColor  mmath.Color
	UniformScale bool
	MirrorSync   bool
}

// DefaultSettings は既定の設定値を返す。
func DefaultSettings() Settings {
	return Settings{
		AvatarColor:  mmath.Color{R: 0.2, G: 1.0, B: 0.2, A: 1.0},
		OutfitColor:  mmath.Color{R: 1.0, G: 0.6, B: 0.0, A: 1.0},
		UniformScale: true,
		MirrorSync:   false,
	}
}

// BoneSetupUsecaseDeps はボーン表示セットアップユースケースの依存を表す。
type BoneSetupUsecaseDeps struct {
	SceneReader      moutput.ISceneReader
	SceneWriter      moutput.ISceneWriter
	PresetRepository moutput.IPresetRepository
	Logger           *zap.Logger
	Settings         *Settings
}

// BoneSetupUsecase はボーン表示の設定と編集補助をまとめたユースケースを表す。
type BoneSetupUsecase struct {
	sceneReader      moutput.ISceneReader
	sceneWriter      moutput.ISceneWriter
	presetRepository moutput.IPresetRepository
	logger           *zap.Logger
	settings         Settings
}

// NewBoneSetupUsecase はボーン表示セットアップユースケースを生成する。
func NewBoneSetupUsecase(deps BoneSetupUsecaseDeps) *BoneSetupUsecase {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	settings := DefaultSettings()
	if deps.Settings != nil {
		settings = *deps.Settings
	}
	return &BoneSetupUsecase{
		sceneReader:      deps.SceneReader,
		sceneWriter:      deps.SceneWriter,
		presetRepository: deps.PresetRepository,
		logger:           logger,
		settings:         settings,
	}
}

// Settings は適用中の設定値を返す。
func (uc *BoneSetupUsecase) Settings() Settings {
	return uc.settings
}
