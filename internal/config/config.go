package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	Env           string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	StaticDir     string
	AdminUsername string
	AdminPassword string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "6868"),
		Env:           getEnv("APP_ENV", "development"),
		MySQLDSN:      getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/gallery?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		StaticDir:     getEnv("STATIC_DIR", "public"),
		AdminUsername: getEnv("SEED_ADMIN_USERNAME", "Admin"),
		AdminPassword: getEnv("SEED_ADMIN_PASSWORD", "HG31DXz1"),
	}
}

// IsProduction reports whether the service runs in production mode.
// Session cookies are only marked Secure in production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
