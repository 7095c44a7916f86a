package config

import (
	"os"
	"strings"
)

// Config carries the runtime settings. Everything is passed explicitly from
// main rather than read from the environment at the point of use.
type Config struct {
	Port           string
	DatabaseURL    string
	UploadDir      string
	AllowedOrigins []string
}

func Load() Config {
	cfg := Config{
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DB_URL"),
		UploadDir:   os.Getenv("UPLOAD_DIR"),
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:8080",
		},
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "./uploads"
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	return cfg
}
