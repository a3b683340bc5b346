package main

import (
	"fmt"
	"os"
	"strings"
)

// Config collects everything read from the environment at startup.
type Config struct {
	Port           string
	DatabaseURL    string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	AllowedOrigins []string
	UploadsDir     string
	BackupDir      string
}

func loadConfig() Config {
	cfg := Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getenv("DB_HOST", "localhost"),
		DBPort:      getenv("DB_PORT", "5432"),
		DBUser:      getenv("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      getenv("DB_NAME", "restaurant"),
		UploadsDir:  getenv("UPLOADS_DIR", "./uploads"),
		BackupDir:   getenv("BACKUP_DIR", "./backup/uploads"),
	}

	for _, key := range []string{"FRONTEND_URL_LOCAL", "FRONTEND_URL_PROD"} {
		if origin := strings.TrimSpace(os.Getenv(key)); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:5173"}
	}
	return cfg
}

// DSN builds the Postgres connection string when DATABASE_URL is not set.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
