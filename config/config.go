package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	ProjectName = "LexData & Finance Solutions API"
	Version     = "1.0.0"
)

type Config struct {
	ProjectName string
	Version     string
	Port        string
	// SMTP Configuration
	SMTPServer     string
	SMTPPort       string
	SenderEmail    string
	SenderPassword string
	// Database settings (reserved for upcoming persistence work)
	DBUrl string
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		ProjectName: ProjectName,
		Version:     Version,
		Port:        getEnv("PORT", "8080"),
		// SMTP Configuration
		SMTPServer:     getEnv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SenderEmail:    getEnv("SENDER_EMAIL", ""),
		SenderPassword: getEnv("SENDER_PASSWORD", ""),
		// Database
		DBUrl: getEnv("DATABASE_URL", ""),
	}

	// Missing credentials are not an error: the dispatcher falls back to
	// simulated sends so the form keeps working in development.
	if cfg.SenderEmail == "" || cfg.SenderPassword == "" {
		log.Println("WARNING: SENDER_EMAIL/SENDER_PASSWORD not set. Contact emails will be simulated.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
