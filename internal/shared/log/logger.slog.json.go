package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joshuarp/remote-image-loader/internal/shared/config"
)

// NewJSONLogger builds the process logger. The level follows logging.level and
// is re-read whenever the config file changes.
func NewJSONLogger(cfg config.ConfigProvider) *slog.Logger {
	level := new(slog.LevelVar)
	level.Set(parseLevel(cfg.GetString("logging.level")))

	cfg.OnChange(func() {
		level.Set(parseLevel(cfg.GetString("logging.level")))
	})

	return newJSONLogger(os.Stdout, level)
}

func newJSONLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, attr.Value.Time().UTC().Format(time.RFC3339))
			}
			return attr
		},
	})

	return slog.New(handler).With("service", "remote-image-loader")
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
