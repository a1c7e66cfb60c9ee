package config

import (
	"os"
	"strconv"
	"time"
)

// Config はアプリケーション設定を表す
type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Worker  WorkerConfig
}

// AppConfig はアプリケーション全体の設定
type AppConfig struct {
	Env      string // development / production
	LogLevel string
}

// CatalogConfig はカタログ初期化の設定
type CatalogConfig struct {
	SeedDefault bool
}

// WorkerConfig は在庫レポーターの設定
type WorkerConfig struct {
	ReportInterval time.Duration
}

// Load は環境変数から設定を読み込む
func Load() *Config {
	return &Config{
		App: AppConfig{
			Env:      getEnv("APP_ENV", "development"),
			LogLevel: getEnv("LOG_LEVEL", ""),
		},
		Catalog: CatalogConfig{
			SeedDefault: getBoolEnv("CATALOG_SEED_DEFAULT", true),
		},
		Worker: WorkerConfig{
			ReportInterval: getDurationEnv("INVENTORY_REPORT_INTERVAL", time.Minute),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
