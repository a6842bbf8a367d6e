package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tagtrail/tagtrail/internal/timetagger"
)

// Environment variables that configure the TimeTagger connection.
// These match the names the TimeTagger ecosystem uses, so an existing
// setup carries over unchanged.
const (
	EnvAPIURL = "TIMETAGGER_API_URL"
	EnvAPIKey = "TIMETAGGER_API_KEY"
)

// Config is the immutable process-wide configuration, fixed at
// startup and injected into the API client at construction.
type Config struct {
	// BaseURL is the TimeTagger API root,
	// e.g. https://timetagger.example.com/timetagger/api/v2.
	BaseURL string
	// Token is the static API auth token.
	Token string
}

// fileConfig is the optional YAML config file shape.
type fileConfig struct {
	APIURL string `yaml:"api_url"`
	APIKey string `yaml:"api_key"`
}

// Load resolves the configuration. The optional config file
// (Dir()/config.yaml) supplies defaults; environment variables always
// take precedence. A missing URL or token is a ConfigError — fatal
// before any tool or command executes.
func Load() (Config, error) {
	var cfg Config

	file, err := loadFile(filepath.Join(Dir(), "config.yaml"))
	if err != nil {
		return Config{}, err
	}
	cfg.BaseURL = file.APIURL
	cfg.Token = file.APIKey

	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.Token = v
	}

	if cfg.BaseURL == "" {
		return Config{}, timetagger.NewConfigError(
			EnvAPIURL + " is not set; point it at your TimeTagger API base URL")
	}
	if cfg.Token == "" {
		return Config{}, timetagger.NewConfigError(
			EnvAPIKey + " is not set; set it to your TimeTagger API token")
	}

	return cfg, nil
}

// loadFile reads the YAML config file. A missing file is not an
// error; a malformed one is.
func loadFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fileConfig{}, timetagger.NewConfigError(
			fmt.Sprintf("malformed config file %s: %v", path, err))
	}
	return file, nil
}
