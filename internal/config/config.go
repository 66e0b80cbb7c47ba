package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	TokenTTL   time.Duration
	UploadDir  string
}

func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "4000"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "quill"),
		DBPassword: getEnv("DB_PASSWORD", "quill_dev_password"),
		DBName:     getEnv("DB_NAME", "quill"),
		JWTSecret:  getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:   time.Duration(getEnvInt("TOKEN_TTL_HOURS", 720)) * time.Hour,
		UploadDir:  getEnv("UPLOAD_DIR", "uploads"),
	}
}

// DatabaseURL builds the connection string shared by the pool and the migrator.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}
