// 指示: miu200521358
package cli

import (
	"errors"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/adapter/mpresenter"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/usecase/minteractor"
	"github.com/spf13/cobra"
)

// newPresetCommand はスケールプリセットのコマンド群を生成する。
func newPresetCommand(opts *rootOptions) *cobra.Command {
	presetCmd := &cobra.Command{
		Use:   "preset",
		Short: messages.CommandPresetShort,
	}
	presetCmd.PersistentFlags().StringVar(&opts.presetDir, "preset-dir", "", messages.FlagPresetDir)
	presetCmd.AddCommand(newPresetRecordCommand(opts))
	presetCmd.AddCommand(newPresetApplyCommand(opts))
	presetCmd.AddCommand(newPresetListCommand(opts))
	presetCmd.AddCommand(newPresetDeleteCommand(opts))
	return presetCmd
}

// newPresetRecordCommand はプリセット記録コマンドを生成する。
func newPresetRecordCommand(opts *rootOptions) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "record SCENE",
		Short: messages.CommandPresetRecordShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withEnvironment(func(env *environment) error {
				scene, err := env.usecase.LoadScene(env.scenes, args[0])
				if err != nil {
					return err
				}
				if scene.Outfit == nil {
					return errors.New(messages.MessageOutfitRequired)
				}
				result, err := env.usecase.RecordScalePreset(scene.Outfit, title)
				if err != nil {
					return err
				}
				mpresenter.Success(opts.out, opts.noColor, messages.MessagePresetRecorded,
					result.Preset.Title, len(result.Preset.Scales), result.Path)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", messages.FlagTitle)
	return cmd
}

// newPresetApplyCommand はプリセット適用コマンドを生成する。
func newPresetApplyCommand(opts *rootOptions) *cobra.Command {
	output := &outputFlags{}
	cmd := &cobra.Command{
		Use:   "apply SCENE PRESET",
		Short: messages.CommandPresetApplyShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withEnvironment(func(env *environment) error {
				scene, err := env.usecase.LoadScene(env.scenes, args[0])
				if err != nil {
					return err
				}
				if scene.Outfit == nil {
					return errors.New(messages.MessageOutfitRequired)
				}
				result, err := env.usecase.ApplyScalePreset(scene.Outfit, args[1], minteractor.ScaleAdjustersFor(scene))
				if err != nil {
					return err
				}
				for _, name := range result.Missing {
					mpresenter.Warning(opts.out, opts.noColor, messages.MessagePresetMissingBone, name)
				}
				mpresenter.Success(opts.out, opts.noColor, messages.MessagePresetApplied, result.Applied)
				return opts.saveScene(env, args[0], scene, output)
			})
		},
	}
	output.bind(cmd)
	return cmd
}

// newPresetListCommand はプリセット一覧コマンドを生成する。
func newPresetListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: messages.CommandPresetListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withEnvironment(func(env *environment) error {
				files, err := env.usecase.ListScalePresets()
				if err != nil {
					return err
				}
				if len(files) == 0 {
					mpresenter.Warning(opts.out, opts.noColor, messages.MessageNoPresets)
					return nil
				}
				table := mpresenter.NewTable(opts.out, opts.noColor, messages.HeaderTitle, messages.HeaderPath)
				for _, file := range files {
					table.AddRow(file.Title, file.Path)
				}
				table.Render()
				return nil
			})
		},
	}
}

// newPresetDeleteCommand はプリセット削除コマンドを生成する。
func newPresetDeleteCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete PRESET",
		Short: messages.CommandPresetDeleteShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withEnvironment(func(env *environment) error {
				if err := env.usecase.DeleteScalePreset(args[0]); err != nil {
					return err
				}
				mpresenter.Success(opts.out, opts.noColor, messages.MessagePresetDeleted, args[0])
				return nil
			})
		},
	}
}
