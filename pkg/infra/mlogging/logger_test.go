// 指示: miu200521358
package mlogging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		"INFO":   zapcore.InfoLevel,
		" warn ": zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	logger := NewLogger("warn")
	require.NotNil(t, logger)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewLoggerFallsBackToNop(t *testing.T) {
	logger := NewLogger("verbose")
	require.NotNil(t, logger)

	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewWriterLoggerWritesToWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWriterLogger("info", buf)

	logger.Debug("hidden")
	logger.Info("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "INFO")
	assert.False(t, NewWriterLogger("info", nil).Core().Enabled(zapcore.ErrorLevel))
}
