// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config 為服務啟動所需的全部設定
type Config struct {
	Port int

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret []byte
	// TokenTTL 為 0 表示簽發不含 exp 的 token
	TokenTTL time.Duration
	CacheTTL time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	WorkerCount int
	LogLevel    string
}

// Load 先讀取 envFile（不存在時略過），再由環境變數組出 Config
func Load(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("讀取 %s 失敗: %w", envFile, err)
	}

	cfg := Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     []byte(os.Getenv("JWT_SECRET")),
		KafkaBrokers:  CSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:    EnvDefault("KAFKA_TOPIC", "product_events"),
		LogLevel:      EnvDefault("LOG_LEVEL", "info"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if cfg.RedisAddr == "" {
		return Config{}, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	if len(cfg.JWTSecret) == 0 {
		return Config{}, fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}

	var err error
	if cfg.Port, err = envInt("PORT", 3000); err != nil {
		return Config{}, err
	}
	if cfg.RedisDB, err = envInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.WorkerCount, err = envInt("WORKER_COUNT", 1); err != nil || cfg.WorkerCount <= 0 {
		return Config{}, fmt.Errorf("無效的 WORKER_COUNT: %q", os.Getenv("WORKER_COUNT"))
	}
	if cfg.TokenTTL, err = envDuration("JWT_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = envDuration("CACHE_TTL", 30*time.Second); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr 回傳 echo 監聽位址
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// CSV 切割逗號分隔字串並去除空白項目
func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("無效的 %s: 不可為負值", key)
	}
	return d, nil
}
