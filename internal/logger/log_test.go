package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/brilliantafrica/attendance-backend-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_WritesStructuredJSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	l := newWithWriter(
		config.LogConfig{Level: "info"},
		config.AppConfig{Name: "attendance-backend", Version: "v1.0.0", Env: "test"},
		&buf,
	)
	l.Debug("hidden")
	l.Info("server started", "port", 3000)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "attendance-backend", entry["app"])
	assert.Equal(t, float64(3000), entry["port"])
}
