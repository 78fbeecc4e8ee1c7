// 指示: miu200521358
// Package mlogging はCLI向けのロガーを生成する。
package mlogging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel はログレベル名を解析する。
func ParseLevel(level string) (zapcore.Level, error) {
	var parsed zapcore.Level
	if err := parsed.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("ログレベルが不正です: %s", level)
	}
	return parsed, nil
}

// NewLogger は標準エラーへ出力するコンソールロガーを生成する。生成できない場合は出力しないロガーを返す。
func NewLogger(level string) *zap.Logger {
	parsed, err := ParseLevel(level)
	if err != nil {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// NewWriterLogger は指定の出力先へ書き込むコンソールロガーを生成する。
func NewWriterLogger(level string, w io.Writer) *zap.Logger {
	parsed, err := ParseLevel(level)
	if err != nil || w == nil {
		return zap.NewNop()
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), parsed)
	return zap.New(core)
}
