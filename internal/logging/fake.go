// File: internal/logging/fake.go
package logging

import (
	"context"
	"sync"
)

// Record 紀錄 FakeLogger 收到的單筆日誌
type Record struct {
	Level string
	Msg   string
	Args  []any
}

// FakeLogger 蒐集日誌紀錄供測試驗證
type FakeLogger struct {
	mu      sync.Mutex
	records []Record
	with    []any
}

func (f *FakeLogger) Debug(ctx context.Context, msg string, args ...any) { f.append("debug", msg, args) }
func (f *FakeLogger) Info(ctx context.Context, msg string, args ...any)  { f.append("info", msg, args) }
func (f *FakeLogger) Warn(ctx context.Context, msg string, args ...any)  { f.append("warn", msg, args) }
func (f *FakeLogger) Error(ctx context.Context, msg string, args ...any) { f.append("error", msg, args) }

func (f *FakeLogger) With(args ...any) Logger {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.with = append(f.with, args...)
	return f
}

// Records 回傳目前累積的所有紀錄
func (f *FakeLogger) Records() []Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Record, len(f.records))
	copy(out, f.records)
	return out
}

func (f *FakeLogger) append(level, msg string, args []any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := append(append([]any{}, f.with...), args...)
	f.records = append(f.records, Record{Level: level, Msg: msg, Args: all})
}
