package config

import (
	"os"
	"testing"
)

func TestLoadConfig_ReadsEnvVars(t *testing.T) {
	env := map[string]string{
		"DB_DRIVER":   "postgres",
		"DB_PATH":     "/tmp/test.db",
		"DB_HOST":     "localhost",
		"DB_PORT":     "5432",
		"DB_USER":     "user1",
		"DB_PASSWORD": "pass1",
		"DB_NAME":     "db1",
		"JWT_SECRET":  "secret",
		"GEMINI_KEY":  "gem-key",
		"BUCKET_NAME": "bdm-archives",
	}

	for k, v := range env {
		os.Setenv(k, v)
		t.Cleanup(func(key string) func() {
			return func() { os.Unsetenv(key) }
		}(k))
	}

	cfg := LoadConfig()

	if cfg.DBDriver != env["DB_DRIVER"] {
		t.Fatalf("DBDriver=%q want %q", cfg.DBDriver, env["DB_DRIVER"])
	}
	if cfg.DBPath != env["DB_PATH"] {
		t.Fatalf("DBPath=%q want %q", cfg.DBPath, env["DB_PATH"])
	}
	if cfg.DBHost != env["DB_HOST"] {
		t.Fatalf("DBHost=%q want %q", cfg.DBHost, env["DB_HOST"])
	}
	if cfg.DBPort != env["DB_PORT"] {
		t.Fatalf("DBPort=%q want %q", cfg.DBPort, env["DB_PORT"])
	}
	if cfg.DBUser != env["DB_USER"] {
		t.Fatalf("DBUser=%q want %q", cfg.DBUser, env["DB_USER"])
	}
	if cfg.DBPassword != env["DB_PASSWORD"] {
		t.Fatalf("DBPassword=%q want %q", cfg.DBPassword, env["DB_PASSWORD"])
	}
	if cfg.DBName != env["DB_NAME"] {
		t.Fatalf("DBName=%q want %q", cfg.DBName, env["DB_NAME"])
	}
	if cfg.JWTSecret != env["JWT_SECRET"] {
		t.Fatalf("JWTSecret=%q want %q", cfg.JWTSecret, env["JWT_SECRET"])
	}
	if cfg.GeminiKey != env["GEMINI_KEY"] {
		t.Fatalf("GeminiKey=%q want %q", cfg.GeminiKey, env["GEMINI_KEY"])
	}
	if cfg.BucketName != env["BUCKET_NAME"] {
		t.Fatalf("BucketName=%q want %q", cfg.BucketName, env["BUCKET_NAME"])
	}
}

func TestLoadConfig_MissingVars_ReturnDefaults(t *testing.T) {
	keys := []string{
		"DB_DRIVER",
		"DB_PATH",
		"DB_HOST",
		"DB_PORT",
		"DB_USER",
		"DB_PASSWORD",
		"DB_NAME",
		"JWT_SECRET",
		"GEMINI_KEY",
		"BUCKET_NAME",
	}

	for _, k := range keys {
		os.Unsetenv(k)
	}

	cfg := LoadConfig()

	if cfg.DBDriver != "sqlite" {
		t.Fatalf("expected sqlite default driver, got %q", cfg.DBDriver)
	}
	if cfg.DBPath != "bdm_tracker.db" {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.DBHost != "" || cfg.DBPort != "" || cfg.DBUser != "" || cfg.DBPassword != "" || cfg.DBName != "" ||
		cfg.JWTSecret != "" || cfg.GeminiKey != "" || cfg.BucketName != "" {
		t.Fatalf("expected empty strings for unset vars, got: %+v", cfg)
	}
}
