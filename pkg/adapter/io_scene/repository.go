// 指示: miu200521358
// Package io_scene はシーンファイル(YAML/JSON)の読み書きを提供する。
package io_scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
	"gopkg.in/yaml.v3"
)

// sceneFormat はシーンファイル形式を表す。
type sceneFormat int

const (
	sceneFormatUnknown sceneFormat = iota
	sceneFormatYAML
	sceneFormatJSON
)

// SceneRepository はシーンファイルの読み書き契約を表す。
type SceneRepository struct{}

// NewSceneRepository はSceneRepositoryを生成する。
func NewSceneRepository() *SceneRepository {
	return &SceneRepository{}
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *SceneRepository) CanLoad(path string) bool {
	return formatOf(path) != sceneFormatUnknown
}

// InferName はパスから表示名を推定する。
func (r *SceneRepository) InferName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load はシーンファイルを読み込む。
func (r *SceneRepository) Load(path string) (*skeleton.Scene, error) {
	format := formatOf(path)
	if format == sceneFormatUnknown {
		return nil, fmt.Errorf("シーンファイルの拡張子が不正です: %s", filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("シーンファイルの読込に失敗しました: %w", err)
	}
	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, fmt.Errorf("シーンファイルの解析に失敗しました: %s: %w", path, err)
	}
	return doc.toScene()
}

// Save はシーンをファイルへ保存する。
func (r *SceneRepository) Save(path string, scene *skeleton.Scene) error {
	if scene == nil {
		return fmt.Errorf("保存対象のシーンがありません")
	}
	format := formatOf(path)
	if format == sceneFormatUnknown {
		return fmt.Errorf("シーンファイルの拡張子が不正です: %s", filepath.Ext(path))
	}
	doc, err := newSceneDocument(scene)
	if err != nil {
		return err
	}
	data, err := encodeDocument(doc, format)
	if err != nil {
		return fmt.Errorf("シーンファイルの変換に失敗しました: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("シーンファイルの保存に失敗しました: %w", err)
	}
	return nil
}

// formatOf は拡張子からシーンファイル形式を返す。
func formatOf(path string) sceneFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return sceneFormatYAML
	case ".json":
		return sceneFormatJSON
	default:
		return sceneFormatUnknown
	}
}

// decodeDocument はバイト列を文書へ変換する。
func decodeDocument(data []byte, format sceneFormat) (*sceneDocument, error) {
	doc := &sceneDocument{}
	var err error
	if format == sceneFormatJSON {
		err = json.Unmarshal(data, doc)
	} else {
		err = yaml.Unmarshal(data, doc)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// encodeDocument は文書をバイト列へ変換する。
func encodeDocument(doc *sceneDocument, format sceneFormat) ([]byte, error) {
	if format == sceneFormatJSON {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return yaml.Marshal(doc)
}
