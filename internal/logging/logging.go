// File: internal/logging/logging.go

// Package logging 定義專案共用的結構化日誌介面
// 變長參數視為 key-value 對，例如 log.Info(ctx, "msg", "key", value)
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"rest-boilerplate/internal/config"
)

// Logger 為 context-aware 的結構化日誌介面，便於測試時替換 FakeLogger
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// SlogLogger 以 log/slog 實作 Logger
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger 包裝既有的 *slog.Logger
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}

// Setup 依設定建立 Logger
// STRUCTURED_LOGGING 為 true 時輸出 JSON，否則輸出純文字
// SAVE_LOG 為 true 時同時寫入 LOG_FILE 指定的檔案
func Setup(cfg *config.Config) (Logger, error) {
	var w io.Writer = os.Stdout
	if cfg.SaveLog {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w = io.MultiWriter(os.Stdout, f)
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel, cfg.Debug)}
	var h slog.Handler
	if cfg.StructuredLogging {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return NewSlogLogger(slog.New(h).With("app", cfg.AppName)), nil
}

func parseLevel(level string, debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	switch strings.ToLower(level) {
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
