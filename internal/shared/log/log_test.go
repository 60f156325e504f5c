package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	configmocks "github.com/joshuarp/remote-image-loader/internal/mock/shared/config"
)

func TestParseLevel_TableDriven(t *testing.T) {
	tests := []struct {
		input  string
		expect slog.Level
	}{
		{input: "debug", expect: slog.LevelDebug},
		{input: " WARN ", expect: slog.LevelWarn},
		{input: "warning", expect: slog.LevelWarn},
		{input: "error", expect: slog.LevelError},
		{input: "", expect: slog.LevelInfo},
		{input: "verbose", expect: slog.LevelInfo},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expect, parseLevel(tc.input))
		})
	}
}

func TestNewJSONLogger_WritesServiceAndUTCTime(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("visible", "consumer_id", "row7")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &record))
	assert.Equal(t, "visible", record["msg"])
	assert.Equal(t, "remote-image-loader", record["service"])
	assert.Equal(t, "row7", record["consumer_id"])
	assert.Contains(t, record["time"], "Z")
}

func TestNewJSONLogger_RegistersReloadHook(t *testing.T) {
	cfg := configmocks.NewConfigProvider(t)
	cfg.EXPECT().GetString("logging.level").Return("error").Once()

	var reload func()
	cfg.EXPECT().OnChange(mock.Anything).Run(func(fn func()) {
		reload = fn
	}).Return()

	logger := NewJSONLogger(cfg)
	require.NotNil(t, reload)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))

	cfg.EXPECT().GetString("logging.level").Return("debug").Once()
	reload()
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))
}
