// 指示: miu200521358
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/adapter/io_preset"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/adapter/io_scene"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/model"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/infra/mlogging"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/usecase/minteractor"
)

const (
	batchOutputDirMode = 0o755
)

// batchConfig はバッチ設定の実行設定を表す。
type batchConfig struct {
	InputDir   string
	OutputRoot string
	LogLevel   string
	DryRun     bool
	FailFast   bool
}

// setupEntry は1シーン分の入力情報を表す。
type setupEntry struct {
	Index      int
	SourcePath string
	SceneName  string
	CaseDir    string
	OutputPath string
}

// setupResult は1シーン分の設定結果を表す。
type setupResult struct {
	Entry       setupEntry
	Status      string
	Duration    time.Duration
	Err         error
	AvatarBones int
	OutfitBones int
	Skipped     int
	WarningIDs  []string
}

// main はシーン一式へのボーン表示一括設定を実行する。
func main() {
	os.Exit(run())
}

// run は実行設定を解決して一括設定を実行し、終了コードを返す。
func run() int {
	config, err := parseBatchConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定解析に失敗しました: %v\n", err)
		return 2
	}
	inputPaths, err := collectScenePaths(config.InputDir, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "入力シーンの列挙に失敗しました: %v\n", err)
		return 2
	}
	entries := buildSetupEntries(config.OutputRoot, inputPaths)
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "設定対象シーンがありません")
		return 2
	}

	results := executeBatchSetup(config, entries)
	printBatchSummary(results)

	for _, result := range results {
		if result.Status == "failed" {
			return 1
		}
	}
	return 0
}

// parseBatchConfig はコマンドライン引数から実行設定を構築する。
func parseBatchConfig() (batchConfig, error) {
	defaultOutputRoot, err := resolveDefaultOutputRoot()
	if err != nil {
		return batchConfig{}, err
	}
	inputDir := flag.String("input-dir", "", "シーンファイル(.yaml/.yml/.json)を探すディレクトリ")
	outputRoot := flag.String("output-root", defaultOutputRoot, "設定結果の出力ルートディレクトリ")
	logLevel := flag.String("log-level", "warn", "ログレベル")
	dryRun := flag.Bool("dry-run", false, "保存せず、入力解決と出力先計画のみ表示する")
	failFast := flag.Bool("fail-fast", false, "失敗時に即時終了する")
	flag.Parse()

	trimmedOutputRoot := strings.TrimSpace(*outputRoot)
	if trimmedOutputRoot == "" {
		return batchConfig{}, errors.New("output-root が空です")
	}
	return batchConfig{
		InputDir:   strings.TrimSpace(*inputDir),
		OutputRoot: filepath.Clean(trimmedOutputRoot),
		LogLevel:   *logLevel,
		DryRun:     *dryRun,
		FailFast:   *failFast,
	}, nil
}

// resolveDefaultOutputRoot はスクリプト配置ディレクトリ基準の既定出力先を返す。
func resolveDefaultOutputRoot() (string, error) {
	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("実行ファイル位置を取得できません")
	}
	return filepath.Join(filepath.Dir(currentFilePath), "output"), nil
}

// collectScenePaths は引数とディレクトリ配下のシーンファイルを列挙する。
func collectScenePaths(inputDir string, args []string) ([]string, error) {
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		paths = append(paths, normalizeInputPath(arg))
	}
	if inputDir == "" {
		return paths, nil
	}
	repository := io_scene.NewSceneRepository()
	entries, err := os.ReadDir(normalizeInputPath(inputDir))
	if err != nil {
		return nil, err
	}
	found := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !repository.CanLoad(entry.Name()) {
			continue
		}
		found = append(found, filepath.Join(normalizeInputPath(inputDir), entry.Name()))
	}
	sort.Strings(found)
	return append(paths, found...), nil
}

// buildSetupEntries は入力パス一覧から設定対象エントリを生成する。
func buildSetupEntries(outputRoot string, inputPaths []string) []setupEntry {
	repository := io_scene.NewSceneRepository()
	entries := make([]setupEntry, 0, len(inputPaths))
	for i, path := range inputPaths {
		sceneName := repository.InferName(path)
		safeName := io_preset.SanitizeFileName(sceneName)
		caseDir := filepath.Join(outputRoot, fmt.Sprintf("%03d_%s", i+1, safeName))
		entries = append(entries, setupEntry{
			Index:      i + 1,
			SourcePath: path,
			SceneName:  sceneName,
			CaseDir:    caseDir,
			OutputPath: filepath.Join(caseDir, safeName+filepath.Ext(path)),
		})
	}
	return entries
}

// executeBatchSetup は全シーンの設定処理を順次実行する。
func executeBatchSetup(config batchConfig, entries []setupEntry) []setupResult {
	results := make([]setupResult, 0, len(entries))
	repository := io_scene.NewSceneRepository()
	usecase := minteractor.NewBoneSetupUsecase(minteractor.BoneSetupUsecaseDeps{
		SceneReader: repository,
		SceneWriter: repository,
		Logger:      mlogging.NewLogger(config.LogLevel),
	})

	total := len(entries)
	for _, entry := range entries {
		fmt.Printf("[%d/%d] 設定開始: scene=%s\n", entry.Index, total, entry.SceneName)
		result := setupSceneEntry(usecase, config, entry)
		results = append(results, result)
		switch result.Status {
		case "succeeded":
			fmt.Printf("[%d/%d] 設定成功: scene=%s avatar=%d outfit=%d skipped=%d warnings=%s output=%s elapsed=%s\n",
				entry.Index, total, entry.SceneName, result.AvatarBones, result.OutfitBones, result.Skipped,
				strings.Join(result.WarningIDs, ","), entry.OutputPath, result.Duration.Round(time.Millisecond))
		case "dry_run":
			fmt.Printf("[%d/%d] DRY-RUN: scene=%s input=%s output=%s\n", entry.Index, total, entry.SceneName, entry.SourcePath, entry.OutputPath)
		case "skipped_missing":
			fmt.Printf("[%d/%d] 入力不足でスキップ: scene=%s input=%s reason=%v\n", entry.Index, total, entry.SceneName, entry.SourcePath, result.Err)
		default:
			fmt.Printf("[%d/%d] 設定失敗: scene=%s reason=%v\n", entry.Index, total, entry.SceneName, result.Err)
			if config.FailFast {
				return results
			}
		}
	}
	return results
}

// setupSceneEntry は1シーン分のアバター/衣装設定を実行する。
func setupSceneEntry(usecase *minteractor.BoneSetupUsecase, config batchConfig, entry setupEntry) setupResult {
	result := setupResult{Entry: entry, Status: "failed"}
	if _, err := os.Stat(entry.SourcePath); err != nil {
		result.Status = "skipped_missing"
		result.Err = err
		return result
	}
	if config.DryRun {
		result.Status = "dry_run"
		return result
	}

	startedAt := time.Now()
	scene, err := usecase.LoadScene(nil, entry.SourcePath)
	if err != nil {
		result.Err = err
		return result
	}
	avatarResult, err := usecase.SetupAvatar(scene.Avatar)
	if err != nil {
		result.Err = fmt.Errorf("アバター設定に失敗しました: %w", err)
		return result
	}
	result.AvatarBones = len(avatarResult.Bones)

	if scene.Outfit != nil {
		outfitResults, err := usecase.SetupOutfits([]*skeleton.Node{scene.Outfit}, scene.Avatar)
		if err != nil {
			result.Err = fmt.Errorf("衣装設定に失敗しました: %w", err)
			return result
		}
		for _, outfitResult := range outfitResults {
			result.OutfitBones += len(outfitResult.Bones)
			result.Skipped += len(outfitResult.Skipped)
			result.WarningIDs = append(result.WarningIDs, outfitResult.WarningIDs...)
		}
	} else {
		result.WarningIDs = append(result.WarningIDs, model.SetupWarningNoMatchedBones)
	}

	if err := os.MkdirAll(entry.CaseDir, batchOutputDirMode); err != nil {
		result.Err = fmt.Errorf("出力ディレクトリ作成に失敗しました: %w", err)
		return result
	}
	if err := usecase.SaveScene(nil, entry.OutputPath, scene); err != nil {
		result.Err = err
		return result
	}

	result.Status = "succeeded"
	result.Duration = time.Since(startedAt)
	return result
}

// printBatchSummary は設定結果の集計を標準出力へ表示する。
func printBatchSummary(results []setupResult) {
	counts := map[string]int{}
	warned := 0
	for _, result := range results {
		counts[result.Status]++
		if len(result.WarningIDs) > 0 {
			warned++
		}
	}
	fmt.Printf(
		"バッチ設定サマリ: total=%d succeeded=%d failed=%d skipped_missing=%d dry_run=%d warned=%d\n",
		len(results),
		counts["succeeded"],
		counts["failed"],
		counts["skipped_missing"],
		counts["dry_run"],
		warned,
	)
}

// normalizeInputPath は入力パスを実行環境向けに正規化する。
func normalizeInputPath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	return filepath.Clean(convertWindowsPathToWsl(trimmed))
}

// convertWindowsPathToWsl は Linux 実行時に Windows パスを WSL パスへ変換する。
func convertWindowsPathToWsl(path string) string {
	if runtime.GOOS != "linux" || len(path) < 2 || path[1] != ':' {
		return path
	}
	drive := strings.ToLower(path[:1])
	rest := strings.ReplaceAll(path[2:], "\\", "/")
	if !strings.HasPrefix(rest, "/") {
		rest = "/" + rest
	}
	return filepath.ToSlash(filepath.Join("/mnt", drive) + rest)
}
