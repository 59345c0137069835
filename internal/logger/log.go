package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/brilliantafrica/attendance-backend-go/internal/config"
	"github.com/go-chi/httplog/v3"
	"gopkg.in/lumberjack.v2"
)

// New builds the application logger, writes to stdout and, when a log file
// is configured, to a rotating file. The returned logger is also installed as
// the slog default.
func New(cfg config.LogConfig, app config.AppConfig) *slog.Logger {
	return newWithWriter(cfg, app, os.Stdout)
}

func newWithWriter(cfg config.LogConfig, app config.AppConfig, stdout io.Writer) *slog.Logger {
	writers := []io.Writer{stdout}
	if cfg.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		})
	}

	logFormat := httplog.SchemaECS.Concise(!strings.EqualFold(app.Env, "production"))
	h := slog.NewJSONHandler(io.MultiWriter(writers...), &slog.HandlerOptions{
		Level:       ParseLevel(cfg.Level),
		ReplaceAttr: logFormat.ReplaceAttr,
	})

	l := slog.New(h).With(
		slog.String("app", app.Name),
		slog.String("version", app.Version),
		slog.String("env", app.Env),
	)
	slog.SetDefault(l)
	return l
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
