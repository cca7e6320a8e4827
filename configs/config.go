package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration

	// APIBaseURL is the JSON store every repository talks to.
	APIBaseURL string
	APITimeout time.Duration

	// UpstreamWSURL is the optional push channel; empty disables it.
	UpstreamWSURL string

	OrdersPollMS  int
	KitchenPollMS int
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Port:          getEnv("PORT", "8000"),
		DBSource:      getEnv("DB_SOURCE", "garson.db"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        time.Duration(12) * time.Hour,
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:3001"),
		APITimeout:    time.Duration(getEnvInt("API_TIMEOUT_MS", 10000)) * time.Millisecond,
		UpstreamWSURL: os.Getenv("UPSTREAM_WS_URL"),
		OrdersPollMS:  getEnvInt("ORDERS_POLL_MS", 60000),
		KitchenPollMS: getEnvInt("KITCHEN_POLL_MS", 10000),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
