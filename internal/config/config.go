package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis (purchase serialization + sweep overlap locks)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// JWT verification (tokens are issued by the identity service)
	JWTSecret string

	// Boost pricing: base rate per day in minor currency units
	BoostBaseRate int64

	// Reconciler schedules
	SubscriptionSweepSpec string
	BoostSweepSpec        string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "lostfound_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       parseInt(getEnv("REDIS_DB", "0"), 0),

		JWTSecret: getEnv("JWT_SECRET", ""),

		BoostBaseRate: int64(parseInt(getEnv("BOOST_BASE_RATE", "10000"), 10000)),

		SubscriptionSweepSpec: getEnv("SUBSCRIPTION_SWEEP_CRON", "1 0 * * *"),
		BoostSweepSpec:        getEnv("BOOST_SWEEP_CRON", "0 * * * *"),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
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

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
