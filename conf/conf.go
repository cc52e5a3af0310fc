// Package conf loads application settings from the environment, with
// optional .env file support for local development.
package conf

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Settings holds everything the services need at construction time.
type Settings struct {
	SecretKey            string
	AccessTokenLifetime  time.Duration
	RefreshTokenLifetime time.Duration

	DatabasePath string

	EjudgeEndpoint string
	EjudgeAPIToken string
	EjudgeTimeout  time.Duration
}

// Load reads settings from the environment. A .env file in the working
// directory is applied first when present; real env vars win.
func Load() Settings {
	_ = godotenv.Load()

	return Settings{
		SecretKey:            getEnv("SECRET_KEY", "devsecret"),
		AccessTokenLifetime:  time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 120)) * time.Minute,
		RefreshTokenLifetime: time.Duration(getEnvInt("REFRESH_TOKEN_EXPIRE_MINUTES", 60*24*90)) * time.Minute,

		DatabasePath: getEnv("DATABASE_PATH", "ejapp.db"),

		EjudgeEndpoint: getEnv("EJUDGE_ENDPOINT", ""),
		EjudgeAPIToken: getEnv("EJUDGE_API_TOKEN", ""),
		EjudgeTimeout:  time.Duration(getEnvInt("EJUDGE_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
