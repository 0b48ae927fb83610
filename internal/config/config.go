package config

import (
	"os"
	"time"
)

// Auth strategies. Exactly one is active per deployment.
const (
	StrategyToken   = "token"
	StrategySession = "session"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Authentication
	AuthStrategy  string
	JWTSecret     string
	TokenExpiry   time.Duration
	SessionExpiry time.Duration
	SessionCookie string

	// Server
	Port        string
	CORSOrigins string

	// Observability
	LogRetention time.Duration
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "clinic_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AuthStrategy:  getEnv("AUTH_STRATEGY", StrategyToken),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenExpiry:   parseDuration(getEnv("TOKEN_EXPIRY", "168h"), 168*time.Hour),
		SessionExpiry: parseDuration(getEnv("SESSION_EXPIRY", "12h"), 12*time.Hour),
		SessionCookie: getEnv("SESSION_COOKIE", "clinic_session"),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		LogRetention: parseDuration(getEnv("LOG_RETENTION", "720h"), 720*time.Hour),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
