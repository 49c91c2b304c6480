// File: cmd/service/service.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"rest-boilerplate/internal/cache"
	"rest-boilerplate/internal/config"
	"rest-boilerplate/internal/database"
	"rest-boilerplate/internal/logging"
	"rest-boilerplate/internal/middleware"
	"rest-boilerplate/internal/router"

	_ "rest-boilerplate/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfigFn    = config.Load
	setupLoggingFn  = logging.Setup
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	ctx := context.Background()

	cfg, err := loadConfigFn()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %v", err)
	}

	logger, err := setupLoggingFn(cfg)
	if err != nil {
		return fmt.Errorf("日誌初始化失敗: %v", err)
	}

	// 連線池於啟動時建立一次，全程序共用
	db, err := newPgxPool(ctx, cfg)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	// Redis 連不上僅警告，不中斷啟動；此時 rdb 為 nil，查詢不經過快取
	rdb, err := newRedisClient(cfg.RedisAddr(), cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		rdb = nil
		logger.Warn(ctx, "Redis server not available", "error", err.Error())
		logger.Info(ctx, "Continuing without Redis ...")
	} else {
		defer rdb.Close()
		if err := rdb.FlushDB(ctx).Err(); err != nil {
			logger.Warn(ctx, "Redis flush failed", "error", err.Error())
		} else {
			logger.Info(ctx, "Redis server flushed successfully")
		}
	}

	if cfg.Migration {
		if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Migration 執行失敗: %v", err)
		}
	}

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Debug = cfg.Debug
	e.HideBanner = true

	// 日誌中介層最外層，CORS 次之，業務 handler 最內層
	e.Use(middleware.RequestLogger(logger))
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: cfg.CORSMethods,
		AllowHeaders: cfg.CORSHeaders,
	}))

	router.Setup(e, db, cfg, logger, rdb)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	logger.Info(ctx, "Application is starting...", "addr", cfg.Addr(), "env", cfg.AppEnv)
	return startServer(e, cfg.Addr())
}
