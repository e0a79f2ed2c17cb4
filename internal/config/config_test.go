package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
server:
  host: "127.0.0.1"
  port: 8080
  mode: "debug"
database:
  driver: "sqlite"
  sqlite:
    path: "data/cards.db"
log:
  level: "info"
  format: "text"
pagination:
  max_page_size: 50
  exact_has_next: false
  seed_sample_data: true
`

// writeConfigFile writes content to a temp YAML file and returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 8080 {
		t.Errorf("server = %+v, want 127.0.0.1:8080", cfg.Server)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("driver = %q, want sqlite", cfg.Database.Driver)
	}
	if cfg.Pagination.MaxPageSize != 50 {
		t.Errorf("max_page_size = %d, want 50", cfg.Pagination.MaxPageSize)
	}
	if !cfg.Pagination.SeedSampleData {
		t.Error("seed_sample_data = false, want true")
	}
	if cfg.Pagination.ExactHasNext {
		t.Error("exact_has_next = true, want false")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("APP__SERVER__PORT", "9090")
	t.Setenv("APP__PAGINATION__MAX_PAGE_SIZE", "25")
	t.Setenv("APP__PAGINATION__EXACT_HAS_NEXT", "true")

	cfg, err := Load(writeConfigFile(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090 from env", cfg.Server.Port)
	}
	if cfg.Pagination.MaxPageSize != 25 {
		t.Errorf("max_page_size = %d, want 25 from env", cfg.Pagination.MaxPageSize)
	}
	if !cfg.Pagination.ExactHasNext {
		t.Error("exact_has_next = false, want true from env")
	}
}

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Host: "localhost", Port: 8080, Mode: "debug"},
		Database: DatabaseConfig{Driver: "sqlite", SQLite: SQLiteConfig{Path: "cards.db"}},
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"invalid mode", func(c *Config) { c.Server.Mode = "production" }, true},
		{"port too low", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, true},
		{"empty host", func(c *Config) { c.Server.Host = "  " }, true},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, true},
		{"sqlite without path", func(c *Config) { c.Database.SQLite.Path = "" }, true},
		{"bad timeout", func(c *Config) { c.Server.Timeout = "soon" }, true},
		{"negative timeout", func(c *Config) { c.Server.Timeout = "-5s" }, true},
		{"good timeout", func(c *Config) { c.Server.Timeout = "30s" }, false},
		{"bad cors max_age", func(c *Config) { c.Server.CORS.MaxAge = "yes" }, true},
		{"bad pool lifetime", func(c *Config) { c.Database.Pool.ConnMaxLifetime = "forever" }, true},
		{"negative max page size", func(c *Config) { c.Pagination.MaxPageSize = -1 }, true},
		{"zero max page size ok", func(c *Config) { c.Pagination.MaxPageSize = 0 }, false},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"postgres missing host", func(c *Config) {
			c.Database.Driver = "postgres"
			c.Database.Postgres = PostgresConfig{Port: 5432, User: "app", DBName: "cards", SSLMode: "disable"}
		}, true},
		{"postgres valid", func(c *Config) {
			c.Database.Driver = "postgres"
			c.Database.Postgres = PostgresConfig{Host: "db", Port: 5432, User: "app", DBName: "cards", SSLMode: "disable"}
		}, false},
		{"postgres release requires ssl", func(c *Config) {
			c.Server.Mode = "release"
			c.Database.Driver = "postgres"
			c.Database.Postgres = PostgresConfig{Host: "db", Port: 5432, User: "app", DBName: "cards", SSLMode: "disable"}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_NormalizesFields(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Host = "  localhost  "
	cfg.Log.Level = " INFO "
	cfg.Log.Format = "JSON"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("host = %q, want trimmed", cfg.Server.Host)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log = %q/%q, want lowercased info/json", cfg.Log.Level, cfg.Log.Format)
	}
}
