// file: config/config.go
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config 集中保存所有运行时配置，启动时从环境变量加载一次
type Config struct {
	Port          string
	MySQLDSN      string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	TokenTTL      time.Duration
	SessionTTL    time.Duration
	CORSOrigins   []string
}

var C *Config

// Load 读取 .env（如果存在）并解析环境变量，填充全局配置
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment variables only")
	}

	C = &Config{
		Port:          getEnv("PORT", "8080"),
		MySQLDSN:      getEnv("MYSQL_DSN", "root:123456@tcp(localhost:3306)/ueb?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenTTL:      getDuration("TOKEN_TTL", 7*24*time.Hour),
		SessionTTL:    getDuration("SESSION_TTL", 24*time.Hour),
		CORSOrigins:   strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
	}

	if C.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET environment variable is not set")
	}

	return C
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logrus.Warnf("Invalid duration for %s: %v, using default", key, err)
		return fallback
	}
	return d
}
