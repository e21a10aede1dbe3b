// Package config provides configuration management for dockhand.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Default configuration values.
const (
	DefaultConfigDir  = ".config/dockhand"
	DefaultConfigFile = "config.yaml"

	// DefaultProjectsDir is where compose projects are looked up, one
	// directory per project containing a compose file.
	DefaultProjectsDir = "~/compose"

	// Docker Hub endpoints used by the freshness checker.
	DefaultRegistryAuthURL = "https://auth.docker.io/token"
	DefaultRegistryURL     = "https://registry-1.docker.io"
	DefaultRegistryService = "registry.docker.io"

	// DefaultRegistryTimeout bounds each registry HTTP call.
	DefaultRegistryTimeout = 30 * time.Second

	// DefaultTag is the manifest tag compared against when a service's
	// image reference does not pin one.
	DefaultTag = "latest"

	// DefaultComposeBinary is the container CLI used for compose invocations.
	DefaultComposeBinary = "docker"
)

// Sentinel errors for configuration operations.
var (
	ErrInvalidKey = errors.New("invalid configuration key")
	ErrNoEditor   = errors.New("$EDITOR environment variable not set")
)

// validKeys is built once from Config struct reflection.
var validKeys = buildValidKeys()

// validate is the shared validator instance.
var validate = validator.New()

// Config represents the full dockhand configuration.
type Config struct {
	Projects ProjectsConfig `mapstructure:"projects" validate:"required"`
	Registry RegistryConfig `mapstructure:"registry" validate:"required"`
	Compose  ComposeConfig  `mapstructure:"compose"`
}

// ProjectsConfig holds compose project lookup configuration.
type ProjectsConfig struct {
	// Dir is the directory containing one subdirectory per project.
	Dir string `mapstructure:"dir" validate:"required"`
}

// RegistryConfig holds container registry endpoints for update checks.
type RegistryConfig struct {
	AuthURL    string        `mapstructure:"auth_url" validate:"required,url"`
	URL        string        `mapstructure:"url" validate:"required,url"`
	Service    string        `mapstructure:"service" validate:"required"`
	Timeout    time.Duration `mapstructure:"timeout"`
	DefaultTag string        `mapstructure:"default_tag"`
}

// ComposeConfig holds compose CLI invocation configuration.
type ComposeConfig struct {
	// Binary is the container CLI providing the compose plugin
	// (docker or podman).
	Binary string `mapstructure:"binary" validate:"omitempty,oneof=docker podman"`

	// Flags are extra global compose flags applied to every invocation,
	// e.g. {ansi: never}.
	Flags map[string]any `mapstructure:"flags"`
}

// Validate checks the configuration for errors using struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Loader provides configuration loading and saving.
type Loader struct {
	v       *viper.Viper
	path    string
	homeDir string
}

// NewLoader creates a new configuration loader.
func NewLoader() (*Loader, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home directory: %w", err)
	}

	configPath := filepath.Join(home, DefaultConfigDir, DefaultConfigFile)

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Environment variable binding
	v.SetEnvPrefix("DOCKHAND")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Bind specific env vars to config keys.
	// We intentionally ignore errors here as BindEnv only fails if called with zero arguments.
	//nolint:errcheck // BindEnv only fails with zero arguments
	v.BindEnv("projects.dir", "DOCKHAND_PROJECTS_DIR")
	//nolint:errcheck // BindEnv only fails with zero arguments
	v.BindEnv("registry.auth_url", "DOCKHAND_REGISTRY_AUTH_URL")
	//nolint:errcheck // BindEnv only fails with zero arguments
	v.BindEnv("registry.url", "DOCKHAND_REGISTRY_URL")
	//nolint:errcheck // BindEnv only fails with zero arguments
	v.BindEnv("compose.binary", "DOCKHAND_COMPOSE_BINARY")

	l := &Loader{
		v:       v,
		path:    configPath,
		homeDir: home,
	}

	l.setDefaults()

	return l, nil
}

// setDefaults sets all default configuration values using Viper.
func (l *Loader) setDefaults() {
	l.v.SetDefault("projects.dir", DefaultProjectsDir)
	l.v.SetDefault("registry.auth_url", DefaultRegistryAuthURL)
	l.v.SetDefault("registry.url", DefaultRegistryURL)
	l.v.SetDefault("registry.service", DefaultRegistryService)
	l.v.SetDefault("registry.timeout", DefaultRegistryTimeout.String())
	l.v.SetDefault("registry.default_tag", DefaultTag)
	l.v.SetDefault("compose.binary", DefaultComposeBinary)
	l.v.SetDefault("compose.flags", map[string]any{})
}

// Load reads the configuration file, creating defaults if it doesn't exist.
func (l *Loader) Load() (*Config, error) {
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		if err := l.createDefault(); err != nil {
			return nil, fmt.Errorf("create default config: %w", err)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
		dc.DecodeHook = mapstructure.StringToTimeDurationHookFunc()
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Projects.Dir = l.expandPath(cfg.Projects.Dir)

	if cfg.Registry.Timeout <= 0 {
		cfg.Registry.Timeout = DefaultRegistryTimeout
	}
	if cfg.Registry.DefaultTag == "" {
		cfg.Registry.DefaultTag = DefaultTag
	}
	if cfg.Compose.Binary == "" {
		cfg.Compose.Binary = DefaultComposeBinary
	}

	return &cfg, nil
}

// Path returns the configuration file path.
func (l *Loader) Path() string {
	return l.path
}

// Get returns a configuration value by dot-notation key.
func (l *Loader) Get(key string) (any, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	return l.v.Get(key), nil
}

// Set sets a configuration value by dot-notation key.
func (l *Loader) Set(key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	l.v.Set(key, value)
	return l.v.WriteConfig()
}

// createDefault writes the default configuration file using Viper.
func (l *Loader) createDefault() error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	return l.v.SafeWriteConfigAs(l.path)
}

// expandPath replaces ~ with the home directory.
func (l *Loader) expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(l.homeDir, path[2:])
	}
	if path == "~" {
		return l.homeDir
	}
	return path
}

// ValidateKey checks if a key is a valid configuration key.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	if validKeys[key] {
		return nil
	}

	// compose.flags.<name> is a map; any flag name below it is valid.
	if strings.HasPrefix(key, "compose.flags.") && len(key) > len("compose.flags.") {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInvalidKey, key)
}

// buildValidKeys builds the set of valid keys from Config struct using reflection.
func buildValidKeys() map[string]bool {
	keys := make(map[string]bool)
	addKeysFromType(reflect.TypeOf(Config{}), "", keys)
	return keys
}

// addKeysFromType recursively adds keys from a struct type.
func addKeysFromType(t reflect.Type, prefix string, keys map[string]bool) {
	for i := range t.NumField() {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}
		keys[key] = true

		// Recurse into nested structs (but not maps)
		if field.Type.Kind() == reflect.Struct {
			addKeysFromType(field.Type, key, keys)
		}
	}
}
