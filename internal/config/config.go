package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"auction-backend/utils"
)

// Config holds the process configuration read from the environment
type Config struct {
	DatabaseURL  string
	DatabaseName string
	Port         string
}

// Load reads configuration from the environment, after loading an optional
// .env file. Defaults match local development against a local MongoDB.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		utils.Info("no .env file found, reading environment variables", nil)
	}

	return Config{
		DatabaseURL:  getEnv("DATABASE_URL", "mongodb://localhost:27017"),
		DatabaseName: getEnv("DATABASE_NAME", "appdb"),
		Port:         listenAddr(),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// listenAddr returns the server address from PORT or defaults to ":8080"
func listenAddr() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
