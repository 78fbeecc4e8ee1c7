// 指示: miu200521358
package minteractor

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/model"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/usecase/port/moutput"
	"go.uber.org/zap"
)

const (
	logPresetSaved       = "プリセットを保存しました"
	logPresetApplied     = "プリセットを適用しました"
	logPresetBoneMissing = "プリセットのボーンが衣装に見つかりません"
	logPresetDeleted     = "プリセットを削除しました"
)

// RecordPreset は衣装配下でスケールが等倍でないボーンをプリセットとして記録する。
func RecordPreset(outfit *skeleton.Node, title string) (*skeleton.BoneScalePreset, error) {
	if outfit == nil {
		return nil, fmt.Errorf("衣装が未設定です")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrPresetTitleRequired
	}
	preset := &skeleton.BoneScalePreset{Title: title}
	outfit.Walk(func(node *skeleton.Node) bool {
		if !node.Scale.IsOne() {
			preset.Scales = append(preset.Scales, skeleton.BoneScaleData{BoneName: node.Name(), Scale: node.Scale})
		}
		return true
	})
	if len(preset.Scales) == 0 {
		return nil, fmt.Errorf("%s: %w", outfit.Name(), ErrPresetEmpty)
	}
	return preset, nil
}

// ApplyPreset はプリセットの各ボーン名に一致する最初のノードへスケールを適用し、スケール調整にも反映する。
// 見つからなかったボーン名を返す。
func ApplyPreset(
	outfit *skeleton.Node,
	preset *skeleton.BoneScalePreset,
	adjusters moutput.IScaleAdjusterProvider,
) (int, []string, error) {
	if adjusters == nil {
		return 0, nil, ErrScaleAdjusterUnavailable
	}
	if outfit == nil {
		return 0, nil, fmt.Errorf("衣装が未設定です")
	}
	if preset == nil {
		return 0, nil, fmt.Errorf("プリセットが未設定です")
	}

	applied := 0
	var missing []string
	for _, data := range preset.Scales {
		target := outfit.FindByName(data.BoneName)
		if target == nil {
			missing = append(missing, data.BoneName)
			continue
		}
		target.Scale = data.Scale
		adjuster := adjusters.ScaleAdjuster(target)
		if adjuster == nil {
			adjuster = adjusters.AttachScaleAdjuster(target)
		}
		if adjuster != nil {
			adjuster.Scale = data.Scale
		}
		applied++
	}
	return applied, missing, nil
}

// RecordScalePreset はプリセットを記録してリポジトリへ保存する。
func (uc *BoneSetupUsecase) RecordScalePreset(outfit *skeleton.Node, title string) (*PresetRecordResult, error) {
	repo, err := uc.requirePresetRepository()
	if err != nil {
		return nil, err
	}
	preset, err := RecordPreset(outfit, title)
	if err != nil {
		return nil, err
	}
	path, err := repo.Save(preset)
	if err != nil {
		return nil, fmt.Errorf("プリセットの保存に失敗しました: %w", err)
	}
	uc.logger.Info(logPresetSaved, zap.String("title", preset.Title), zap.String("path", path),
		zap.Int("bones", len(preset.Scales)))
	return &PresetRecordResult{Preset: preset, Path: path}, nil
}

// ApplyScalePreset はリポジトリのプリセットを読み込み衣装へ適用する。
func (uc *BoneSetupUsecase) ApplyScalePreset(
	outfit *skeleton.Node,
	path string,
	adjusters moutput.IScaleAdjusterProvider,
) (*PresetApplyResult, error) {
	repo, err := uc.requirePresetRepository()
	if err != nil {
		return nil, err
	}
	preset, err := repo.Load(path)
	if err != nil {
		return nil, fmt.Errorf("プリセットの読み込みに失敗しました: %w", err)
	}
	applied, missing, err := ApplyPreset(outfit, preset, adjusters)
	if err != nil {
		return nil, err
	}
	result := &PresetApplyResult{Applied: applied, Missing: missing}
	for _, name := range missing {
		uc.logger.Warn(logPresetBoneMissing, zap.String("bone", name))
	}
	if len(missing) > 0 {
		result.WarningIDs = append(result.WarningIDs, model.SetupWarningPresetBoneMissing)
	}
	uc.logger.Info(logPresetApplied, zap.String("title", preset.Title), zap.Int("bones", applied))
	return result, nil
}

// ListScalePresets は保存済みプリセットを返す。
func (uc *BoneSetupUsecase) ListScalePresets() ([]moutput.PresetFile, error) {
	repo, err := uc.requirePresetRepository()
	if err != nil {
		return nil, err
	}
	return repo.List()
}

// DeleteScalePreset は保存済みプリセットを削除する。
func (uc *BoneSetupUsecase) DeleteScalePreset(path string) error {
	repo, err := uc.requirePresetRepository()
	if err != nil {
		return err
	}
	if err := repo.Delete(path); err != nil {
		return fmt.Errorf("プリセットの削除に失敗しました: %w", err)
	}
	uc.logger.Info(logPresetDeleted, zap.String("path", path))
	return nil
}

// requirePresetRepository はプリセットリポジトリを返す。
func (uc *BoneSetupUsecase) requirePresetRepository() (moutput.IPresetRepository, error) {
	if uc.presetRepository == nil {
		return nil, fmt.Errorf("プリセットリポジトリが設定されていません")
	}
	return uc.presetRepository, nil
}

// ScaleAdjustersFor はシーンでスケール調整を利用できる場合にその操作を返す。
func ScaleAdjustersFor(scene *skeleton.Scene) moutput.IScaleAdjusterProvider {
	if scene == nil || !scene.ScaleAdjusterAvailable {
		return nil
	}
	return skeleton.NodeScaleAdjusters{}
}
