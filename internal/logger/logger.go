// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger configures logrus for the CLI: human-readable text on the
// console and, optionally, JSON lines in a rotating file.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pdiddy/meeting-notes/pkg/types"
)

// FieldLogger is what pipeline stages log through.
type FieldLogger = logrus.FieldLogger

// Rotation settings for the log file.
const (
	maxSizeMB  = 10
	maxBackups = 10
	maxAgeDays = 30
)

// Logger is a console logger that also mirrors entries to a file when one
// is configured. Close releases the file.
type Logger struct {
	*logrus.Logger
	file *lumberjack.Logger
}

// New builds a Logger writing text to console at cfg.Level. When cfg.File
// is set, every entry at that level or above is also written as JSON to a
// lumberjack-rotated file; its directory is created if needed.
func New(cfg types.LogConfig, console io.Writer) (*Logger, error) {
	levelName := cfg.Level
	if levelName == "" {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	l := logrus.New()
	l.SetOutput(console)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    true,
		QuoteEmptyFields: true,
	})

	out := &Logger{Logger: l}
	if cfg.File == "" {
		return out, nil
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
	}
	out.file = &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
	l.AddHook(&fileHook{
		writer: out.file,
		formatter: &logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		},
	})
	return out, nil
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Discard returns a logger that drops everything. Tests and library callers
// that do not care about logs use it.
func Discard() FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// fileHook writes every fired entry to writer in its own format, so the
// file can be JSON while the console stays text.
type fileHook struct {
	writer    io.Writer
	formatter logrus.Formatter
}

func (h *fileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *fileHook) Fire(entry *logrus.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.writer.Write(line)
	return err
}
