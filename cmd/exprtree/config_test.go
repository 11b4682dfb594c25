package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.validate())
	require.True(t, cfg.Simplify)
	require.Equal(t, 256, cfg.NestingLimit)
}

func TestLoadConfig(t *testing.T) {
	p := writeFile(t, "config.yaml", `
formula: X^2
max_x: 2.5
width: 41
simplify: false
logging:
  log_level: debug
  format: json
`)
	cfg := defaultConfig()
	require.NoError(t, loadConfig(p, &cfg))
	require.NoError(t, cfg.validate())
	require.Equal(t, "X^2", cfg.Formula)
	require.Equal(t, 2.5, cfg.MaxX)
	require.Equal(t, 41, cfg.Width)
	require.False(t, cfg.Simplify)
	require.Equal(t, "debug", cfg.Logging.LogLevel)
	require.Equal(t, "json", cfg.Logging.Format)
	// Fields absent from the file keep their defaults.
	def := defaultConfig()
	require.Equal(t, def.MaxY, cfg.MaxY)
	require.Equal(t, def.Height, cfg.Height)
	require.Equal(t, def.Logging.MaxBackups, cfg.Logging.MaxBackups)
}

func TestLoadConfigErrors(t *testing.T) {
	cfg := defaultConfig()
	require.Error(t, loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), &cfg))

	p := writeFile(t, "unknown.yaml", "formula: X\ncolour: red\n")
	require.Error(t, loadConfig(p, &cfg), "unknown fields must be rejected")

	p = writeFile(t, "bad.yaml", "width: [1, 2]\n")
	require.Error(t, loadConfig(p, &cfg))
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*config)
	}{
		{"maxx", func(c *config) { c.MaxX = 0 }},
		{"maxy", func(c *config) { c.MaxY = -1 }},
		{"width", func(c *config) { c.Width = 2 }},
		{"height", func(c *config) { c.Height = 0 }},
		{"nesting", func(c *config) { c.NestingLimit = 0 }},
		{"format", func(c *config) { c.Logging.Format = "xml" }},
		{"loglevel", func(c *config) { c.Logging.LogLevel = "degub" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := defaultConfig()
			c.mod(&cfg)
			require.Error(t, cfg.validate())
		})
	}
}

func TestLogLevelFromString(t *testing.T) {
	require.Equal(t, slog.LevelDebug, logLevelFromString("debug"))
	require.Equal(t, slog.LevelInfo, logLevelFromString("info"))
	require.Equal(t, slog.LevelWarn, logLevelFromString("warn"))
	require.Equal(t, slog.LevelError, logLevelFromString("error"))
	require.Equal(t, slog.LevelInfo, logLevelFromString("loud"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, closelog := newLogger(LoggerConfig{LogLevel: "warn", Format: "json"}, &buf)
	log.Info("quiet")
	log.Warn("hello", slog.Int("n", 1))
	require.NoError(t, closelog())
	require.NotContains(t, buf.String(), "quiet")
	require.Contains(t, buf.String(), `"msg":"hello"`)
	require.Contains(t, buf.String(), `"n":1`)
}

func TestNewLoggerFile(t *testing.T) {
	var buf bytes.Buffer
	p := filepath.Join(t.TempDir(), "exprtree.log")
	cfg := LoggerConfig{
		LogToFile:  true,
		Filename:   p,
		MaxSize:    1,
		MaxBackups: 1,
		LogLevel:   "debug",
	}
	log, closelog := newLogger(cfg, &buf)
	log.Debug("to both")
	require.NoError(t, closelog())
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Contains(t, string(b), "to both")
	require.Contains(t, buf.String(), "to both")
}
