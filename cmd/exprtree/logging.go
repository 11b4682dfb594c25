package main

import (
	"io"
	"log/slog"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerConfig struct {
	LogToFile       bool   `yaml:"log_to_file"`
	Filename        string `yaml:"filename"`
	MaxSize         int    `yaml:"max_size"`
	MaxAge          int    `yaml:"max_age"`
	MaxBackups      int    `yaml:"max_backups"`
	LogLevel        string `yaml:"log_level"`
	Format          string `yaml:"format"` // text or json
	IncludeSrc      bool   `yaml:"include_src"`
	CompressOldLogs bool   `yaml:"compress_old_logs"`
}

// newLogger creates a logger writing to w and, if the config asks for it, to
// a rotated log file. The returned close function releases the file.
func newLogger(cfg LoggerConfig, w io.Writer) (*slog.Logger, func() error) {
	opts := &slog.HandlerOptions{
		Level:     logLevelFromString(cfg.LogLevel),
		AddSource: cfg.IncludeSrc,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				source, _ := a.Value.Any().(*slog.Source)
				if source != nil {
					source.File = filepath.Base(source.File)
				}
			}
			return a
		},
	}

	closer := func() error { return nil }
	if cfg.LogToFile && cfg.Filename != "" {
		target := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize, // megabytes
			MaxAge:     cfg.MaxAge,  // days
			MaxBackups: cfg.MaxBackups,
			Compress:   cfg.CompressOldLogs,
		}
		w = io.MultiWriter(w, target)
		closer = target.Close
	}

	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h), closer
}

func logLevelFromString(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
