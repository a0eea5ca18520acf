package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the gitdocs application configuration.
type Config struct {
	Stores  []StoreConfig `yaml:"stores"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// StoreConfig holds one git-backed store definition.
type StoreConfig struct {
	Name       string       `yaml:"name"`
	URL        string       `yaml:"url"`
	Path       string       `yaml:"path"`
	Branch     string       `yaml:"branch"`
	TimeoutSec int          `yaml:"timeout_sec"`
	Auth       AuthConfig   `yaml:"auth"`
	Author     AuthorConfig `yaml:"author"`
}

// AuthConfig holds remote authentication settings. A token takes precedence
// over username/password.
type AuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Token    string `yaml:"token"`
	Insecure bool   `yaml:"insecure"`
}

// AuthorConfig holds the store-scoped commit identity.
type AuthorConfig struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// Load reads configuration from a YAML file by environment name (local,
// dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting
// to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	for i := range c.Stores {
		s := &c.Stores[i]
		if s.TimeoutSec <= 0 {
			s.TimeoutSec = 60
		}
		if s.Author.Name == "" {
			s.Author.Name = "gitdocs"
		}
		if s.Author.Email == "" {
			s.Author.Email = "gitdocs@localhost"
		}
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Stores))
	for i, s := range c.Stores {
		if s.Name == "" {
			return fmt.Errorf("stores[%d].name is required", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate store name %q", s.Name)
		}
		seen[s.Name] = true
		if s.URL == "" {
			return fmt.Errorf("stores.%s.url is required", s.Name)
		}
		if s.Path == "" {
			return fmt.Errorf("stores.%s.path is required", s.Name)
		}
		if s.Auth.Token != "" && (s.Auth.Username != "" || s.Auth.Password != "") {
			return fmt.Errorf("stores.%s.auth: token and username/password are mutually exclusive", s.Name)
		}
	}
	return nil
}

// Store returns the store configuration with the given name.
func (c *Config) Store(name string) (StoreConfig, bool) {
	for _, s := range c.Stores {
		if s.Name == name {
			return s, true
		}
	}
	return StoreConfig{}, false
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment
// variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
