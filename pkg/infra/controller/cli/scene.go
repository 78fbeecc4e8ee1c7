// 指示: miu200521358
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/adapter/mpresenter"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/usecase/minteractor"
	"github.com/spf13/cobra"
)

// outputFlags はシーンを書き換えるコマンドの保存指定を保持する。
type outputFlags struct {
	output string
	dryRun bool
}

// bind は保存指定のフラグを登録する。
func (f *outputFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", messages.FlagOutput)
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, messages.FlagDryRun)
}

// targetFlags は対象ノードの指定を保持する。
type targetFlags struct {
	path   string
	avatar bool
}

// bind は対象ノードのフラグを登録する。
func (f *targetFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "target", "t", "", messages.FlagTarget)
	cmd.Flags().BoolVar(&f.avatar, "avatar", false, messages.FlagAvatar)
}

// resolve は対象ノードを返す。パス未指定なら対象ルート自身を返す。
func (f *targetFlags) resolve(scene *skeleton.Scene) (*skeleton.Node, error) {
	root := scene.Outfit
	if f.avatar {
		root = scene.Avatar.Root()
		if root == nil {
			return nil, errors.New(messages.MessageAvatarRequired)
		}
	} else if root == nil {
		return nil, errors.New(messages.MessageOutfitRequired)
	}
	return findTarget(root, f.path)
}

// findTarget はルートからの相対パスでノードを探す。
func findTarget(root *skeleton.Node, path string) (*skeleton.Node, error) {
	target := root.Find(path)
	if target == nil {
		return nil, fmt.Errorf(messages.MessageTargetNotFound, path)
	}
	return target, nil
}

// requireAvatarAndOutfit はアバターと衣装の両方があることを確認する。
func requireAvatarAndOutfit(scene *skeleton.Scene) error {
	if scene.Avatar.Root() == nil {
		return errors.New(messages.MessageAvatarRequired)
	}
	if scene.Outfit == nil {
		return errors.New(messages.MessageOutfitRequired)
	}
	return nil
}

// saveScene は保存指定に従ってシーンを書き出す。
func (o *rootOptions) saveScene(env *environment, inputPath string, scene *skeleton.Scene, flags *outputFlags) error {
	if flags.dryRun {
		mpresenter.Warning(o.out, o.noColor, messages.MessageDryRun)
		return nil
	}
	outputPath, err := minteractor.ResolveOutputPath(inputPath, flags.output)
	if err != nil {
		return err
	}
	if err := minteractor.EnsureOutputDir(outputPath); err != nil {
		return err
	}
	if err := env.usecase.SaveScene(env.scenes, outputPath, scene); err != nil {
		return err
	}
	mpresenter.Success(o.out, o.noColor, messages.MessageSceneSaved, outputPath)
	return nil
}

// parseFloats は "x,y,z" 形式の数値列を解析する。
func parseFloats(text string, count int) ([]float64, error) {
	parts := strings.Split(text, ",")
	if len(parts) != count {
		return nil, fmt.Errorf("%d 個の数値をカンマ区切りで指定してください: %s", count, text)
	}
	values := make([]float64, 0, count)
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("数値ではありません: %s: %w", part, err)
		}
		values = append(values, v)
	}
	return values, nil
}
