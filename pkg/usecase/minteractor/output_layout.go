// 指示: miu200521358
package minteractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultOutputSuffix = "bone_renderer"
	outputDirFileMode   = 0o755
)

var nowFunc = time.Now

// BuildDefaultOutputPath は入力シーンパスから既定のシーン出力パスを生成する。
func BuildDefaultOutputPath(inputPath string) string {
	return buildDefaultOutputPathAt(inputPath, nowFunc())
}

// buildDefaultOutputPathAt は指定時刻で既定のシーン出力パスを生成する。拡張子は入力に揃える。
func buildDefaultOutputPathAt(inputPath string, now time.Time) string {
	dir := filepath.Dir(inputPath)
	ext := filepath.Ext(inputPath)
	base := strings.TrimSpace(strings.TrimSuffix(filepath.Base(inputPath), ext))
	if base == "" {
		return ""
	}
	stamp := now.Format("20060102150405")
	return filepath.Join(dir, fmt.Sprintf("%s_%s_%s%s", base, defaultOutputSuffix, stamp, ext))
}

// ResolveOutputPath は保存先パスを解決する。未指定なら既定パス、"-" 指定なら入力を上書きする。
func ResolveOutputPath(inputPath string, outputPath string) (string, error) {
	resolved := strings.TrimSpace(outputPath)
	switch resolved {
	case "":
		resolved = BuildDefaultOutputPath(inputPath)
	case "-":
		resolved = inputPath
	}
	if strings.TrimSpace(resolved) == "" {
		return "", fmt.Errorf("保存先パスが未指定です")
	}
	if !strings.EqualFold(filepath.Ext(resolved), filepath.Ext(inputPath)) {
		return "", fmt.Errorf("保存先拡張子が入力と一致しません: %s", resolved)
	}
	return resolved, nil
}

// EnsureOutputDir は保存先ディレクトリを作成する。
func EnsureOutputDir(outputPath string) error {
	dir := filepath.Dir(outputPath)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, outputDirFileMode); err != nil {
		return fmt.Errorf("保存先ディレクトリの作成に失敗しました: %w", err)
	}
	return nil
}
