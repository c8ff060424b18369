package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL    string
	JWTKey         string
	Port           string
	TokenTTL       time.Duration
	ForbiddenWords []string
}

func Load() *Config {
	_ = godotenv.Load()

	databaseUrl := os.Getenv("DATABASE_URL")
	if databaseUrl == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		log.Fatal("JWT_KEY environment variable is required")
	}

	port := os.Getenv("PORT")

	ttlHours := 24
	if raw := os.Getenv("TOKEN_TTL_HOURS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			log.Fatalf("TOKEN_TTL_HOURS must be a positive integer, got %q", raw)
		}
		ttlHours = parsed
	}

	forbidden := []string{"test", "dummy"}
	if raw := os.Getenv("FORBIDDEN_WORDS"); raw != "" {
		forbidden = strings.Split(raw, ",")
	}

	return &Config{
		DatabaseURL:    databaseUrl,
		JWTKey:         jwtKey,
		Port:           port,
		TokenTTL:       time.Duration(ttlHours) * time.Hour,
		ForbiddenWords: forbidden,
	}
}
