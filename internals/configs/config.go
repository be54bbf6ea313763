package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret     string
	AdminSetupKey string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] no .env file found, using system ENV")
		} else {
			log.Println("[INFO] .env file loaded")
		}
	} else {
		log.Println("[INFO] running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AdminSetupKey = GetEnv("ADMIN_SETUP_KEY")

	if JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET not set")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// SessionTTL is how long an admin session stays valid after login/refresh.
func SessionTTL() time.Duration {
	return time.Duration(GetEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour
}

// SessionRefreshWindow is how close to expiry a session must be before a
// refresh is considered necessary.
func SessionRefreshWindow() time.Duration {
	return time.Duration(GetEnvInt("SESSION_REFRESH_WINDOW_MINUTES", 60)) * time.Minute
}
