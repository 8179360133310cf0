package config

import "os"

type Config struct {
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	GeminiKey  string
	BucketName string
}

// LoadConfig reads configuration from environment variables. Missing
// variables come back as empty strings; DB_DRIVER defaults to the local
// sqlite store and DB_PATH to a file in the working directory.
func LoadConfig() Config {
	cfg := Config{
		DBDriver:   os.Getenv("DB_DRIVER"),
		DBPath:     os.Getenv("DB_PATH"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		GeminiKey:  os.Getenv("GEMINI_KEY"),
		BucketName: os.Getenv("BUCKET_NAME"),
	}

	if cfg.DBDriver == "" {
		cfg.DBDriver = "sqlite"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "bdm_tracker.db"
	}

	return cfg
}
