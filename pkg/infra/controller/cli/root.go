// 指示: miu200521358
// Package cli はコマンドライン操作を提供する。
package cli

import (
	"fmt"
	"io"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/adapter/io_preset"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/adapter/io_scene"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/adapter/mpresenter"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/infra/config"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/infra/mlogging"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/usecase/minteractor"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	// AppName はコマンド名。
	AppName = "mu_bone_renderer_setup"
)

// Version はビルド時に埋め込むバージョン。
var Version = "dev"

// rootOptions は全コマンド共通の指定を保持する。
type rootOptions struct {
	out        io.Writer
	errOut     io.Writer
	configPath string
	logLevel   string
	presetDir  string
	noColor    bool
}

// environment はコマンド実行に必要な依存をまとめる。
type environment struct {
	logger  *zap.Logger
	scenes  *io_scene.SceneRepository
	usecase *minteractor.BoneSetupUsecase
}

// NewRootCommand はルートコマンドを生成する。
func NewRootCommand(out io.Writer, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{out: out, errOut: errOut}
	rootCmd := &cobra.Command{
		Use:           AppName,
		Short:         messages.CommandRootShort,
		Long:          messages.CommandRootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", messages.FlagConfig)
	flags.StringVar(&opts.logLevel, "log-level", "", messages.FlagLogLevel)
	flags.BoolVar(&opts.noColor, "no-color", false, messages.FlagNoColor)

	rootCmd.AddCommand(newNormalizeCommand(opts))
	rootCmd.AddCommand(newSlotCommand(opts))
	rootCmd.AddCommand(newMirrorCommand(opts))
	rootCmd.AddCommand(newMatchCommand(opts))
	rootCmd.AddCommand(newSetupCommand(opts))
	rootCmd.AddCommand(newRemoveCommand(opts))
	rootCmd.AddCommand(newAlignCommand(opts))
	rootCmd.AddCommand(newUniformScaleCommand(opts))
	rootCmd.AddCommand(newMirrorSyncCommand(opts))
	rootCmd.AddCommand(newPresetCommand(opts))
	rootCmd.AddCommand(newVersionCommand(opts))
	return rootCmd
}

// newVersionCommand はバージョン表示コマンドを生成する。
func newVersionCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: messages.CommandVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mpresenter.Success(opts.out, opts.noColor, messages.MessageVersion, AppName, Version)
			return nil
		},
	}
}

// newEnvironment は設定を読み込み、ユースケースと保存先を組み立てる。
func (o *rootOptions) newEnvironment() (*environment, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.presetDir != "" {
		cfg.PresetDir = o.presetDir
	}
	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}

	logger := mlogging.NewWriterLogger(cfg.LogLevel, o.errOut)
	scenes := io_scene.NewSceneRepository()
	uc := minteractor.NewBoneSetupUsecase(minteractor.BoneSetupUsecaseDeps{
		SceneReader:      scenes,
		SceneWriter:      scenes,
		PresetRepository: io_preset.NewPresetRepository(cfg.PresetDir, logger),
		Logger:           logger,
		Settings:         settings,
	})
	return &environment{logger: logger, scenes: scenes, usecase: uc}, nil
}

// withEnvironment は依存を組み立ててから処理を実行し、ログを出し切る。
func (o *rootOptions) withEnvironment(fn func(env *environment) error) error {
	env, err := o.newEnvironment()
	if err != nil {
		return fmt.Errorf("設定の読込に失敗しました: %w", err)
	}
	defer func() {
		_ = env.logger.Sync()
	}()
	return fn(env)
}
