// Package config loads and validates the daemons' YAML configuration file
// (spec.md §6.2) and its one environment-variable fallback (§6.3).
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"udm/internal/apperr"
)

// UDM carries the catalog service's listen port.
type UDM struct {
	Port int `yaml:"port"`
}

// Daemon carries settings shared by both daemon processes.
type Daemon struct {
	LogFilePath string `yaml:"log_file_path"`
}

// DrinkController carries the controller service's listen port.
type DrinkController struct {
	Port int `yaml:"port"`
}

// Postgres configures the networked storage backend. Password falls back
// to UDM_POSTGRES_PW when empty (spec.md §6.3).
type Postgres struct {
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	DBName          string `yaml:"db_name"`
	DBPort          int    `yaml:"db_port"`
	Host            string `yaml:"host"`
	ApplicationName string `yaml:"application_name"`
	Options         string `yaml:"options"`
}

// SQLite configures the embedded storage backend.
type SQLite struct {
	DBPath string `yaml:"db_path"`
}

// Config is the root of the YAML file described by spec.md §6.2.
type Config struct {
	UDM             UDM             `yaml:"udm"`
	Daemon          Daemon          `yaml:"daemon"`
	DrinkController DrinkController `yaml:"drink_controller"`
	Postgres        *Postgres       `yaml:"postgres"`
	SQLite          *SQLite         `yaml:"sqlite"`
}

const postgresPasswordEnvVar = "UDM_POSTGRES_PW"

// MissingPasswordError marks a Validate failure caused specifically by an
// unresolved Postgres password, so callers can map it to
// exitcode.MissingEnvironmentVariable instead of a generic fatal startup
// code (spec.md §6's distinct exit code for this case).
type MissingPasswordError struct {
	Err error
}

func (e *MissingPasswordError) Error() string { return e.Err.Error() }
func (e *MissingPasswordError) Unwrap() error { return e.Err }

// Load reads and parses the YAML file at path, then applies the
// UDM_POSTGRES_PW environment fallback before returning. It does not
// call Validate — callers run validation as its own supervisor step
// (spec.md §4.7: load-config then validate-config).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidConfiguration, "read config file", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, apperr.Wrap(apperr.InvalidConfiguration, "parse config file", err)
	}

	if cfg.Postgres != nil && cfg.Postgres.Password == "" {
		if pw, ok := os.LookupEnv(postgresPasswordEnvVar); ok {
			cfg.Postgres.Password = pw
		}
	}

	return &cfg, nil
}

// Validate enforces exactly one backend is configured and, when Postgres
// is selected, that a password resolved from either the file or
// UDM_POSTGRES_PW.
func (c *Config) Validate() error {
	switch {
	case c.Postgres == nil && c.SQLite == nil:
		return apperr.New(apperr.InvalidConfiguration, "exactly one of postgres or sqlite must be configured, got neither")
	case c.Postgres != nil && c.SQLite != nil:
		return apperr.New(apperr.InvalidConfiguration, "exactly one of postgres or sqlite must be configured, got both")
	}

	if c.Postgres != nil && c.Postgres.Password == "" {
		return &MissingPasswordError{
			Err: apperr.Newf(apperr.InvalidConfiguration, "postgres password not set in config file or %s", postgresPasswordEnvVar),
		}
	}

	if c.SQLite != nil && c.SQLite.DBPath == "" {
		return apperr.New(apperr.InvalidConfiguration, "sqlite.db_path must not be empty")
	}

	return nil
}
