// 指示: miu200521358
// Package io_preset はボーンスケールプリセットファイルの保存先を提供する。
package io_preset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/mmath"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/usecase/port/moutput"
	"github.com/tiendc/go-deepcopy"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	// presetExt はプリセットファイルの拡張子。
	presetExt = ".yaml"
	// invalidFileNameChars はファイル名に使えない文字。
	invalidFileNameChars = "<>:\"/\\|?*"
	// fileNameReplacement は使えない文字の置換先。
	fileNameReplacement = "_"
)

// presetDocument はプリセットファイルの内容を表す。
type presetDocument struct {
	Title  string              `yaml:"title"`
	Scales []boneScaleDocument `yaml:"scales"`
}

// boneScaleDocument はボーンスケール1件を表す。
type boneScaleDocument struct {
	BoneName string    `yaml:"bone_name"`
	Scale    []float64 `yaml:"scale,flow"`
}

// cachedPreset は読込済みプリセットと更新時刻を表す。
type cachedPreset struct {
	preset  *skeleton.BoneScalePreset
	modTime time.Time
}

// PresetRepository はディレクトリ配下のプリセットファイルを管理する。
type PresetRepository struct {
	dir    string
	logger *zap.Logger
	mu     sync.Mutex
	cache  map[string]cachedPreset
}

// NewPresetRepository はPresetRepositoryを生成する。loggerがnilなら出力しない。
func NewPresetRepository(dir string, logger *zap.Logger) *PresetRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PresetRepository{dir: dir, logger: logger, cache: map[string]cachedPreset{}}
}

// Dir は保存先ディレクトリを返す。
func (r *PresetRepository) Dir() string {
	return r.dir
}

// List は保存済みプリセットをファイル名順で返す。保存先が無ければ空を返す。
// 読めないファイルは警告を出して飛ばす。
func (r *PresetRepository) List() ([]moutput.PresetFile, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []moutput.PresetFile{}, nil
		}
		return nil, fmt.Errorf("プリセット一覧の取得に失敗しました: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), presetExt) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	files := make([]moutput.PresetFile, 0, len(names))
	for _, name := range names {
		path := filepath.Join(r.dir, name)
		preset, err := r.Load(path)
		if err != nil {
			r.logger.Warn("プリセットを読み込めないため一覧から除外します", zap.String("path", path), zap.Error(err))
			continue
		}
		files = append(files, moutput.PresetFile{Path: path, Title: preset.Title})
	}
	return files, nil
}

// Load はプリセットファイルを読み込む。返却値は呼び出し側で変更してよい複製。
func (r *PresetRepository) Load(path string) (*skeleton.BoneScalePreset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("プリセットの読込に失敗しました: %w", err)
	}

	r.mu.Lock()
	cached, ok := r.cache[path]
	r.mu.Unlock()
	if ok && cached.modTime.Equal(info.ModTime()) {
		return clonePreset(cached.preset)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("プリセットの読込に失敗しました: %w", err)
	}
	doc := presetDocument{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("プリセットの解析に失敗しました: %s: %w", path, err)
	}
	preset, err := doc.toPreset()
	if err != nil {
		return nil, fmt.Errorf("プリセットの解析に失敗しました: %s: %w", path, err)
	}

	r.mu.Lock()
	r.cache[path] = cachedPreset{preset: preset, modTime: info.ModTime()}
	r.mu.Unlock()
	return clonePreset(preset)
}

// Save はプリセットを重複しないファイル名で保存し、保存先パスを返す。
func (r *PresetRepository) Save(preset *skeleton.BoneScalePreset) (string, error) {
	if preset == nil {
		return "", fmt.Errorf("保存対象のプリセットがありません")
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("プリセット保存先の作成に失敗しました: %w", err)
	}
	data, err := yaml.Marshal(newPresetDocument(preset))
	if err != nil {
		return "", fmt.Errorf("プリセットの変換に失敗しました: %w", err)
	}
	path, err := r.uniquePath(SanitizeFileName(preset.Title))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("プリセットの保存に失敗しました: %w", err)
	}
	r.evict(path)
	return path, nil
}

// Delete はプリセットファイルを削除する。
func (r *PresetRepository) Delete(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("プリセットの削除に失敗しました: %w", err)
	}
	r.evict(path)
	return nil
}

// evict はキャッシュから指定パスを除く。
func (r *PresetRepository) evict(path string) {
	r.mu.Lock()
	delete(r.cache, path)
	r.mu.Unlock()
}

// uniquePath は既存ファイルと重ならないパスを返す。重なる場合は " 1", " 2" を付与する。
func (r *PresetRepository) uniquePath(baseName string) (string, error) {
	path := filepath.Join(r.dir, baseName+presetExt)
	for i := 1; ; i++ {
		_, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("プリセット保存先の確認に失敗しました: %w", err)
		}
		path = filepath.Join(r.dir, baseName+" "+strconv.Itoa(i)+presetExt)
	}
}

// SanitizeFileName はファイル名に使えない文字を "_" へ置換する。
func SanitizeFileName(title string) string {
	name := strings.Map(func(r rune) rune {
		if r < 0x20 || strings.ContainsRune(invalidFileNameChars, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		return fileNameReplacement
	}
	return name
}

// clonePreset はキャッシュを汚さないようプリセットを複製する。
func clonePreset(preset *skeleton.BoneScalePreset) (*skeleton.BoneScalePreset, error) {
	clone := &skeleton.BoneScalePreset{}
	if err := deepcopy.Copy(clone, preset); err != nil {
		return nil, fmt.Errorf("プリセットの複製に失敗しました: %w", err)
	}
	return clone, nil
}

// newPresetDocument はプリセットから文書を生成する。
func newPresetDocument(preset *skeleton.BoneScalePreset) presetDocument {
	doc := presetDocument{Title: preset.Title, Scales: make([]boneScaleDocument, 0, len(preset.Scales))}
	for _, data := range preset.Scales {
		scale := data.Scale.Array()
		doc.Scales = append(doc.Scales, boneScaleDocument{BoneName: data.BoneName, Scale: scale[:]})
	}
	return doc
}

// toPreset は文書からプリセットを生成する。
func (d presetDocument) toPreset() (*skeleton.BoneScalePreset, error) {
	preset := &skeleton.BoneScalePreset{Title: d.Title, Scales: make([]skeleton.BoneScaleData, 0, len(d.Scales))}
	for _, data := range d.Scales {
		if len(data.Scale) != 3 {
			return nil, fmt.Errorf("ボーン %s の scale は3要素である必要があります: %d", data.BoneName, len(data.Scale))
		}
		preset.Scales = append(preset.Scales, skeleton.BoneScaleData{
			BoneName: data.BoneName,
			Scale:    mmath.NewVec3(data.Scale[0], data.Scale[1], data.Scale[2]),
		})
	}
	return preset, nil
}
