package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the client-side settings roverwatch needs.
type Config struct {
	APIServer string
	UserName  string
}

const (
	defaultConfigPath = "~/.config/roverwatch/config.toml"
	defaultAPIServer  = "127.0.0.1:3000"
)

// Load locates and parses the roverwatch config, falling back to defaults
// when missing. The API_SERVER environment variable overrides the file value,
// and the greeting name falls back to $USER.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{APIServer: defaultAPIServer}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyFallbacks(cfg), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIServer string `toml:"api_server"`
		UserName  string `toml:"user_name"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIServer = strings.TrimSpace(raw.APIServer)
	if cfg.APIServer == "" {
		cfg.APIServer = defaultAPIServer
	}
	cfg.UserName = strings.TrimSpace(raw.UserName)

	return applyFallbacks(cfg), nil
}

func applyFallbacks(cfg Config) Config {
	if server := strings.TrimSpace(os.Getenv("API_SERVER")); server != "" {
		cfg.APIServer = server
	}
	if cfg.UserName == "" {
		cfg.UserName = strings.TrimSpace(os.Getenv("USER"))
	}
	if cfg.UserName == "" {
		cfg.UserName = "explorer"
	}
	return cfg
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
