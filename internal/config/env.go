package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr   string
	GinMode   string
	DBUser    string
	DBPass    string
	DBHost    string
	DBName    string
	JWTSecret string
}

// LoadEnv reads configuration from the environment, with .env support for
// local development. Missing values fall back to development defaults.
func LoadEnv() Env {
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	return Env{
		AppAddr:   appAddr,
		GinMode:   strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:    getenvDefault("DB_USER", "root"),
		DBPass:    os.Getenv("DB_PASS"),
		DBHost:    getenvDefault("DB_HOST", "127.0.0.1:3306"),
		DBName:    getenvDefault("DB_NAME", "perubus"),
		JWTSecret: getenvDefault("JWT_SECRET", "super-secret-key-change-me"),
	}
}

func getenvDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
