// File: internal/database/postgres.go
package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"rest-boilerplate/internal/config"
)

// pgxpoolNewWithConfig 用來建立連線池，測試可覆寫此變數。
var pgxpoolNewWithConfig = pgxpool.NewWithConfig

// NewPgxPool 建立 pgx 連線池，程式啟動時建立一次後共用
// 連線數上下限與取得逾時皆來自設定
func NewPgxPool(ctx context.Context, cfg *config.Config) (DB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	poolCfg.MinConns = cfg.DBMinConns
	poolCfg.MaxConns = cfg.DBMaxConns

	pool, err := pgxpoolNewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
