// 指示: miu200521358
package minteractor

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/usecase/port/moutput"
	"go.uber.org/zap"
)

const logSceneLoaded = "シーン文書読み込み完了"

// LoadScene はシーン文書を読み込む。
func (uc *BoneSetupUsecase) LoadScene(rep moutput.ISceneReader, path string) (*skeleton.Scene, error) {
	repo := rep
	if repo == nil {
		repo = uc.sceneReader
	}
	if repo == nil {
		return nil, fmt.Errorf("シーン読み込みリポジトリが設定されていません")
	}
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("シーン文書パスが未指定です")
	}
	if !repo.CanLoad(path) {
		return nil, fmt.Errorf("シーン文書の形式が未対応です: %s", path)
	}
	scene, err := repo.Load(path)
	if err != nil {
		return nil, fmt.Errorf("シーン文書の読み込みに失敗しました: %w", err)
	}
	if scene == nil {
		return nil, fmt.Errorf("シーン文書の読み込み結果が空です: %s", path)
	}
	uc.logger.Debug(logSceneLoaded, zap.String("path", path),
		zap.Bool("avatar", scene.Avatar != nil), zap.Bool("outfit", scene.Outfit != nil))
	return scene, nil
}
