package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource     string
	Port         string
	JWTSecret    string
	JWTTTL       time.Duration
	PublicURL    string
	RootUsername string
	RootPassword string
	SeedDemo     bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading configuration from environment")
	}

	return &Config{
		// named in-memory database: state lives for the process and is
		// shared by every pooled connection
		DBSource:     getEnv("DB_SOURCE", "file:orderdesk?mode=memory&cache=shared"),
		Port:         getEnv("PORT", "8000"),
		JWTSecret:    getEnv("JWT_SECRET", "changeme"),
		JWTTTL:       24 * time.Hour,
		PublicURL:    getEnv("PUBLIC_URL", "http://localhost:5173"),
		RootUsername: os.Getenv("ROOT_USERNAME"),
		RootPassword: os.Getenv("ROOT_PASSWORD"),
		SeedDemo:     getEnv("SEED_DEMO", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
