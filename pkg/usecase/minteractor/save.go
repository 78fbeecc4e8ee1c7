// 指示: miu200521358
package minteractor

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/usecase/port/moutput"
	"go.uber.org/zap"
)

const logSceneSaved = "シーン文書保存完了"

// SaveScene はシーン文書を保存する。
func (uc *BoneSetupUsecase) SaveScene(rep moutput.ISceneWriter, path string, scene *skeleton.Scene) error {
	writer := rep
	if writer == nil {
		writer = uc.sceneWriter
	}
	if writer == nil {
		return fmt.Errorf("シーン保存リポジトリが設定されていません")
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("保存先パスが未指定です")
	}
	if scene == nil {
		return fmt.Errorf("保存対象シーンが未設定です")
	}
	if err := writer.Save(path, scene); err != nil {
		return fmt.Errorf("シーン文書の保存に失敗しました: %w", err)
	}
	uc.logger.Debug(logSceneSaved, zap.String("path", path))
	return nil
}
