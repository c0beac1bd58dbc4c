package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	DBMaxConns  int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// StateDir enables the file checkpoint store when neither Redis nor
	// Postgres is configured.
	StateDir      string
	UploadDir     string
	MaxUploadMB   int
	QuestionsFile string
	TickInterval  time.Duration

	LogJSON  bool
	LogDebug bool
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBMaxConns:    getEnvInt("DB_MAX_CONNS", 10),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		StateDir:      os.Getenv("STATE_DIR"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadMB:   getEnvInt("MAX_UPLOAD_MB", 10),
		QuestionsFile: os.Getenv("QUESTIONS_FILE"),
		TickInterval:  getEnvDuration("TICK_INTERVAL", time.Second),
		LogJSON:       getEnvBool("LOG_JSON", false),
		LogDebug:      getEnvBool("LOG_DEBUG", false),
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
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// getEnvDuration accepts Go durations ("500ms") and bare seconds ("2").
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}
