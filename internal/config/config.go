package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort     string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	JWTSecret      string
	MediaAPISecret string
	SwaggerHost    string
	SecureCookies  bool
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		MySQLDSN:   getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/shopadmin?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:    getEnvInt("REDIS_DB", 0),
		RedisPass:  os.Getenv("REDIS_PASSWORD"),
		// Single process-wide signing secret. Issuance and verification must
		// see the same bytes; there is no rotation or multi-key support.
		JWTSecret:      getEnv("JWT_SECRET", "mycrm_secret_key_2024_secure_application_dont_share"),
		MediaAPISecret: os.Getenv("MEDIA_API_SECRET"),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
		// Secure cookies are dropped by browsers over plain http, so local
		// http deployments must be able to switch the flag off.
		SecureCookies: getEnvBool("SECURE_COOKIES", true),
	}
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

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
