package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	DatabaseURL          string
	JWTSecret            string
	OperatorPasswordHash string
	WebhookToken         string
	AllowedOrigins       []string
	ReadOnly             bool
}

func Load() Config {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := Config{
		Port:                 getEnv("PORT", "8080"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		OperatorPasswordHash: getEnv("OPERATOR_PASSWORD_HASH", ""),
		WebhookToken:         getEnv("WEBHOOK_TOKEN", ""),
		AllowedOrigins:       splitCSV(getEnv("ALLOWED_ORIGINS", "")),
		ReadOnly:             getBool("READ_ONLY", false),
	}

	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}

	return cfg
}

func (c Config) validate() error {
	switch {
	case c.DatabaseURL == "":
		return errors.New("DATABASE_URL is required")
	case c.JWTSecret == "":
		return errors.New("JWT_SECRET is required")
	case c.WebhookToken == "":
		return errors.New("WEBHOOK_TOKEN is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("ERROR: Invalid boolean for %s: %q, using %t", key, value, fallback)
		return fallback
	}
	return b
}

func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
