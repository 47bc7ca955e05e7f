package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"udm/internal/apperr"
	"udm/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "udm.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoadParsesSQLiteConfig(t *testing.T) {
	path := writeConfig(t, `
udm:
  port: 8080
daemon:
  log_file_path: /var/log/udm/catalog.log
drink_controller:
  port: 8081
sqlite:
  db_path: /var/lib/udm/udm.db
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UDM.Port != 8080 {
		t.Errorf("udm.port = %d, want 8080", cfg.UDM.Port)
	}
	if cfg.SQLite == nil || cfg.SQLite.DBPath != "/var/lib/udm/udm.db" {
		t.Errorf("sqlite config not parsed correctly: %+v", cfg.SQLite)
	}
	if cfg.Postgres != nil {
		t.Errorf("expected nil postgres config, got %+v", cfg.Postgres)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadFallsBackToEnvPassword(t *testing.T) {
	path := writeConfig(t, `
postgres:
  user: udm
  db_name: udm
  db_port: 5432
  host: localhost
`)
	t.Setenv("UDM_POSTGRES_PW", "hunter2")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Postgres.Password != "hunter2" {
		t.Errorf("password = %q, want env fallback", cfg.Postgres.Password)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateRejectsNeitherBackend(t *testing.T) {
	path := writeConfig(t, `
udm:
  port: 8080
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	err = cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error when no backend is configured")
	}
	if kind, ok := apperr.KindOf(err); !ok || kind != apperr.InvalidConfiguration {
		t.Errorf("kind = %v, ok = %v, want InvalidConfiguration", kind, ok)
	}
}

func TestValidateRejectsBothBackends(t *testing.T) {
	path := writeConfig(t, `
sqlite:
  db_path: /var/lib/udm/udm.db
postgres:
  user: udm
  password: secret
  db_name: udm
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error when both backends are configured")
	}
}

func TestValidateRejectsMissingPostgresPassword(t *testing.T) {
	path := writeConfig(t, `
postgres:
  user: udm
  db_name: udm
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	err = cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error for missing postgres password")
	}
	var missingPW *config.MissingPasswordError
	if !errors.As(err, &missingPW) {
		t.Errorf("expected *config.MissingPasswordError, got %T", err)
	}
}
