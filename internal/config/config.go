// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config 彙整所有環境變數設定，於程式啟動時載入一次並注入各元件
type Config struct {
	// App Settings
	AppName           string
	AppEnv            string
	Debug             bool
	StructuredLogging bool

	// Server Settings
	Host string
	Port int

	// Security
	SecretKey      string
	AccessTokenTTL time.Duration
	Algorithm      string

	// Database
	DatabaseURL    string
	Migration      bool
	DBMinConns     int32
	DBMaxConns     int32
	AcquireTimeout time.Duration

	// CORS
	CORSOrigins []string
	CORSMethods []string
	CORSHeaders []string

	// Logging
	LogLevel string
	LogFile  string
	SaveLog  bool

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// Load 讀取環境變數（若存在 .env 會先載入）並回傳 Config
// 必填欄位缺漏時回傳錯誤，由呼叫端決定結束程序
func Load() (*Config, error) {
	// .env 為選用，找不到檔案不視為錯誤
	_ = godotenv.Load()

	cfg := &Config{
		AppName:           getenv("APP_NAME", "rest-boilerplate"),
		AppEnv:            getenv("APP_ENV", "production"),
		Host:              getenv("HOST", "0.0.0.0"),
		Algorithm:         getenv("ALGORITHM", "HS256"),
		SecretKey:         os.Getenv("SECRET_KEY"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		LogFile:           getenv("LOG_FILE", "logs/app.log"),
		RedisHost:         os.Getenv("REDIS_HOST"),
		RedisPort:         getenv("REDIS_PORT", "6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		CORSOrigins:       getlist("CORS_ORIGIN", []string{"*"}),
		CORSMethods:       getlist("CORS_METHOD", []string{"*"}),
		CORSHeaders:       getlist("CORS_HEADER", []string{"*"}),
	}

	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("環境變數 SECRET_KEY 未設定")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if cfg.Algorithm != "HS256" {
		return nil, fmt.Errorf("不支援的簽章演算法: %s", cfg.Algorithm)
	}

	var err error
	if cfg.Debug, err = getbool("DEBUG", false); err != nil {
		return nil, err
	}
	if cfg.StructuredLogging, err = getbool("STRUCTURED_LOGGING", true); err != nil {
		return nil, err
	}
	if cfg.Migration, err = getbool("MIGRATION", false); err != nil {
		return nil, err
	}
	if cfg.SaveLog, err = getbool("SAVE_LOG", false); err != nil {
		return nil, err
	}

	port, err := getint("PORT", 8000)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	ttlMinutes, err := getint("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	cfg.AccessTokenTTL = time.Duration(ttlMinutes) * time.Minute

	minConns, err := getint("DB_POOL_MIN_CONNS", 3)
	if err != nil {
		return nil, err
	}
	maxConns, err := getint("DB_POOL_MAX_CONNS", 10)
	if err != nil {
		return nil, err
	}
	if minConns <= 0 || maxConns < minConns {
		return nil, fmt.Errorf("無效的連線池設定: min=%d max=%d", minConns, maxConns)
	}
	cfg.DBMinConns = int32(minConns)
	cfg.DBMaxConns = int32(maxConns)

	acquireSeconds, err := getint("DB_ACQUIRE_TIMEOUT_SECONDS", 5)
	if err != nil {
		return nil, err
	}
	cfg.AcquireTimeout = time.Duration(acquireSeconds) * time.Second

	redisDB, err := getint("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	cfg.RedisDB = redisDB

	return cfg, nil
}

// Addr 回傳 HTTP 伺服器監聽位址
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RedisAddr 回傳 Redis 連線位址
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getlist(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getbool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("無效的 %s: %v", key, err)
	}
	return b, nil
}

func getint(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %v", key, err)
	}
	return n, nil
}
