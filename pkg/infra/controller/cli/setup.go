// 指示: miu200521358
package cli

import (
	"fmt"
	"slices"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/adapter/mpresenter"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/model"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/skeleton"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/usecase/minteractor"
	"github.com/spf13/cobra"
)

// newMatchCommand は衣装ボーン対応表示コマンドを生成する。
func newMatchCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "match SCENE",
		Short: messages.CommandMatchShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withEnvironment(func(env *environment) error {
				scene, err := env.usecase.LoadScene(env.scenes, args[0])
				if err != nil {
					return err
				}
				if err := requireAvatarAndOutfit(scene); err != nil {
					return err
				}
				if !minteractor.IsHumanoidAvatar(scene.Avatar) {
					return minteractor.ErrNotHumanoid
				}
				table := mpresenter.NewTable(opts.out, opts.noColor,
					messages.HeaderOutfitBone, messages.HeaderAvatarBone, messages.HeaderSlot, messages.HeaderConfidence)
				for _, match := range minteractor.GetDetailedMatches(scene.Outfit, scene.Avatar) {
					avatarBone := messages.MessageNone
					if match.AvatarBone != nil {
						avatarBone = match.AvatarBone.Name()
					}
					table.AddRow(
						match.OutfitBone.PathFrom(scene.Outfit),
						avatarBone,
						match.Slot.String(),
						fmt.Sprintf("%.1f", match.Confidence),
					)
				}
				table.Render()
				return nil
			})
		},
	}
}

// newSetupCommand はボーン表示設定コマンド群を生成する。
func newSetupCommand(opts *rootOptions) *cobra.Command {
	setupCmd := &cobra.Command{
		Use:   "setup",
		Short: messages.CommandSetupShort,
	}
	setupCmd.AddCommand(newSetupAvatarCommand(opts))
	setupCmd.AddCommand(newSetupOutfitCommand(opts))
	return setupCmd
}

// newSetupAvatarCommand はアバターのボーン表示設定コマンドを生成する。
func newSetupAvatarCommand(opts *rootOptions) *cobra.Command {
	output := &outputFlags{}
	cmd := &cobra.Command{
		Use:   "avatar SCENE",
		Short: messages.CommandSetupAvatarShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withEnvironment(func(env *environment) error {
				scene, err := env.usecase.LoadScene(env.scenes, args[0])
				if err != nil {
					return err
				}
				result, err := env.usecase.SetupAvatar(scene.Avatar)
				if err != nil {
					return err
				}
				mpresenter.Success(opts.out, opts.noColor, messages.MessageAvatarSetup, result.Target.Name(), len(result.Bones))
				return opts.saveScene(env, args[0], scene, output)
			})
		},
	}
	output.bind(cmd)
	return cmd
}

// newSetupOutfitCommand は衣装のボーン表示設定コマンドを生成する。
func newSetupOutfitCommand(opts *rootOptions) *cobra.Command {
	output := &outputFlags{}
	cmd := &cobra.Command{
		Use:   "outfit SCENE",
		Short: messages.CommandSetupOutfitShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withEnvironment(func(env *environment) error {
				scene, err := env.usecase.LoadScene(env.scenes, args[0])
				if err != nil {
					return err
				}
				if err := requireAvatarAndOutfit(scene); err != nil {
					return err
				}
				results, err := env.usecase.SetupOutfits([]*skeleton.Node{scene.Outfit}, scene.Avatar)
				if err != nil {
					return err
				}
				configured := 0
				for _, result := range results {
					if slices.Contains(result.WarningIDs, model.SetupWarningNoMatchedBones) {
						mpresenter.Warning(opts.out, opts.noColor, messages.MessageOutfitNoMatch, result.Target.Name())
						continue
					}
					configured++
					mpresenter.Success(opts.out, opts.noColor, messages.MessageOutfitSetup,
						result.Target.Name(), len(result.Bones), len(result.Skipped))
				}
				if configured == 0 {
					return nil
				}
				return opts.saveScene(env, args[0], scene, output)
			})
		},
	}
	output.bind(cmd)
	return cmd
}

// newRemoveCommand はボーン表示削除コマンドを生成する。
func newRemoveCommand(opts *rootOptions) *cobra.Command {
	output := &outputFlags{}
	target := &targetFlags{}
	cmd := &cobra.Command{
		Use:   "remove SCENE",
		Short: messages.CommandRemoveShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withEnvironment(func(env *environment) error {
				scene, err := env.usecase.LoadScene(env.scenes, args[0])
				if err != nil {
					return err
				}
				node, err := target.resolve(scene)
				if err != nil {
					return err
				}
				if !env.usecase.RemoveRenderer(node) {
					mpresenter.Warning(opts.out, opts.noColor, messages.MessageRendererMissing, node.Name())
					return nil
				}
				mpresenter.Success(opts.out, opts.noColor, messages.MessageRendererRemoved, node.Name())
				return opts.saveScene(env, args[0], scene, output)
			})
		},
	}
	output.bind(cmd)
	target.bind(cmd)
	return cmd
}
