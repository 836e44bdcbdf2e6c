package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret   string
	Issuer      string
	DbHost      string
	DbPort      string
	DbUser      string
	DbPassword  string
	DbName      string
	ServerPort  string
	RedisURL    string
	SessionTTL  time.Duration
	PageSize    int
	SeedFixture string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "careconnect")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "careconnect")
	ServerPort = getEnv("SERVER_PORT", "8080")
	RedisURL = getEnv("REDIS_URL", "redis://localhost:6379/0")
	SeedFixture = getEnv("SEED_FIXTURE", "fixtures/seed.yaml")

	hours, err := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "24"))
	if err != nil || hours <= 0 {
		hours = 24
	}
	SessionTTL = time.Duration(hours) * time.Hour

	PageSize, err = strconv.Atoi(getEnv("PAGE_SIZE", "12"))
	if err != nil || PageSize <= 0 {
		PageSize = 12
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
