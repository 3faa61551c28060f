package proxy

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the proxy daemon configuration. The upstream credentials stay
// server-side; clients only ever see the proxy.
type Config struct {
	Domain    string `yaml:"domain" koanf:"domain"`         // upstream API base URL
	Key       string `yaml:"key" koanf:"key"`               // upstream api_key, never exposed to clients
	Port      int    `yaml:"port" koanf:"port"`             // listen port
	AssetsDir string `yaml:"assets_dir" koanf:"assets_dir"` // optional static assets directory
}

const defaultDomain = "https://api.nasa.gov/mars-photos/api/v1"

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Domain: defaultDomain,
		Port:   3000,
	}
}

// LoadConfig reads configuration from the given YAML file if it exists, then
// overlays environment variable overrides (API_DOMAIN, API_KEY, API_PORT,
// API_ASSETS_DIR).
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// Overlay environment variables: API_DOMAIN -> domain, etc. Blank
	// variables are skipped so they never clobber file values.
	if err := k.Load(env.ProviderWithValue("API_", ".", func(key, value string) (string, interface{}) {
		if strings.TrimSpace(value) == "" {
			return "", nil
		}
		return strings.ToLower(strings.TrimPrefix(key, "API_")), value
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Domain) == "" {
		return fmt.Errorf("domain is required")
	}
	if strings.TrimSpace(c.Key) == "" {
		return fmt.Errorf("key is required: set API_KEY or the key config field")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	return nil
}
