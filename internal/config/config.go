package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every setting the server reads from the environment.
// It is loaded once in main and passed down explicitly.
type Config struct {
	Port      string
	DBDSN     string
	JWTSecret string
	BaseURL   string
	UploadDir string
}

// Load reads the .env file (if present) and builds the Config.
// Every field has a development fallback so a fresh checkout runs.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	cfg := &Config{
		Port:      os.Getenv("PORT"),
		DBDSN:     os.Getenv("DB_DSN"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		BaseURL:   os.Getenv("BASE_URL"),
		UploadDir: os.Getenv("UPLOAD_DIR"),
	}

	if cfg.Port == "" {
		cfg.Port = "4000"
	}
	if cfg.JWTSecret == "" {
		// Matches the secret the original frontend was built against.
		cfg.JWTSecret = "secret_ecom"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + cfg.Port
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "./upload/images"
	}

	return cfg
}
