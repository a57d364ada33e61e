package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	BackendURL  string
	DatabaseURL string

	RedisAddress  string
	RedisPassword string

	AdvisorAPIKey string

	AllowedOrigins []string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment")
	}

	backendURL := os.Getenv("BACKEND_API_URL")
	if backendURL == "" {
		panic("BACKEND_API_URL environment variable is required")
	}
	backendURL = strings.TrimRight(backendURL, "/")

	dbURL := os.Getenv("DB_CONNECTION_STRING")
	if dbURL == "" {
		panic("DB_CONNECTION_STRING environment variable is required")
	}

	redisAddr := os.Getenv("REDIS_ADDRESS")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	origins := []string{"*"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
	}

	return &Config{
		Port:           port,
		BackendURL:     backendURL,
		DatabaseURL:    dbURL,
		RedisAddress:   redisAddr,
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		AdvisorAPIKey:  os.Getenv("ADVISOR_API_KEY"),
		AllowedOrigins: origins,
	}
}
