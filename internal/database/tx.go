// File: internal/database/tx.go
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// ErrPoolExhausted 表示在等待時限內取不到連線
var ErrPoolExhausted = errors.New("connection pool exhausted")

// WithTx 以單一交易執行 fn：fn 回傳 nil 則 commit，否則 rollback
// 取得連線的等待時間受 timeout 限制，逾時回傳 ErrPoolExhausted
// 交易一旦開始，即使呼叫端的 ctx 已取消也會先明確 commit 或 rollback，
// 連線不會在交易未結束時歸還連線池
func WithTx(ctx context.Context, db DB, timeout time.Duration, fn func(tx pgx.Tx) error) (err error) {
	acquireCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	tx, err := db.Begin(acquireCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrPoolExhausted
		}
		return fmt.Errorf("WithTx begin: %w", err)
	}

	// 交易結束不受呼叫端取消影響
	resolveCtx := context.WithoutCancel(ctx)

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(resolveCtx)
			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(resolveCtx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("WithTx rollback: %v (original: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(resolveCtx); err != nil {
		return fmt.Errorf("WithTx commit: %w", err)
	}
	return nil
}
