// 指示: miu200521358
// Package config は設定ファイルと環境変数から実行設定を読み込む。
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/domain/mmath"
	"github.com/miu200521358/mu_bone_renderer_setup/pkg/usecase/minteractor"
	"github.com/spf13/viper"
)

const (
	// configName は既定の設定ファイル名(拡張子なし)。
	configName = "bone_renderer"
	// envPrefix は環境変数の接頭辞。
	envPrefix = "BONE_RENDERER"
)

// Config は実行設定を表す。
type Config struct {
	AvatarColor  string `mapstructure:"avatar_color"`
	OutfitColor  string `mapstructure:"outfit_color"`
	PresetDir    string `mapstructure:"preset_dir"`
	LogLevel     string `mapstructure:"log_level"`
	UniformScale bool   `mapstructure:"uniform_scale"`
	MirrorSync   bool   `mapstructure:"mirror_sync"`
}

// validLogLevels は指定可能なログレベル。
var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Load は設定を読み込む。path が空ならカレントの bone_renderer.yaml を探し、無ければ既定値を使う。
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("設定ファイルの読込に失敗しました: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("設定の変換に失敗しました: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults は既定値を登録する。
func setDefaults(v *viper.Viper) {
	v.SetDefault("avatar_color", "33FF33FF")
	v.SetDefault("outfit_color", "FF9900FF")
	v.SetDefault("preset_dir", "BoneRendererData/Presets")
	v.SetDefault("log_level", "info")
	v.SetDefault("uniform_scale", true)
	v.SetDefault("mirror_sync", false)
}

// Validate は設定値を検証する。
func (c *Config) Validate() error {
	if _, err := mmath.ParseHexColor(c.AvatarColor); err != nil {
		return fmt.Errorf("avatar_color が不正です: %w", err)
	}
	if _, err := mmath.ParseHexColor(c.OutfitColor); err != nil {
		return fmt.Errorf("outfit_color が不正です: %w", err)
	}
	if strings.TrimSpace(c.PresetDir) == "" {
		return fmt.Errorf("preset_dir が未設定です")
	}
	if _, ok := validLogLevels[strings.ToLower(c.LogLevel)]; !ok {
		return fmt.Errorf("log_level が不正です: %s", c.LogLevel)
	}
	return nil
}

// Settings は設定からユースケース設定を生成する。
func (c *Config) Settings() (*minteractor.Settings, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	avatarColor, _ := mmath.ParseHexColor(c.AvatarColor)
	outfitColor, _ := mmath.ParseHexColor(c.OutfitColor)
	return &minteractor.Settings{
		AvatarColor:  avatarColor,
		OutfitColor:  outfitColor,
		UniformScale: c.UniformScale,
		MirrorSync:   c.MirrorSync,
	}, nil
}
