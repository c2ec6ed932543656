package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"hackerstories/internal/eventbus"
	"hackerstories/internal/hn"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "HACKERSTORIES_"

// Config represents the application configuration
type Config struct {
	Version int             `toml:"version"`
	API     APISettings     `toml:"api"`
	Storage StorageSettings `toml:"storage"`
	Search  SearchSettings  `toml:"search"`
	UI      UISettings      `toml:"ui"`
	Log     LogSettings     `toml:"log"`
}

// APISettings describes the remote search API
type APISettings struct {
	Endpoint       string `toml:"endpoint" env:"API_ENDPOINT"`
	RequestTimeout string `toml:"request_timeout" env:"API_REQUEST_TIMEOUT"` // "0s" disables the timeout
}

// StorageSettings describes where remembered values live
type StorageSettings struct {
	Path     string `toml:"path" env:"STORAGE_PATH"`
	QueryKey string `toml:"query_key" env:"STORAGE_QUERY_KEY"`
}

// SearchSettings controls fetch behaviour
type SearchSettings struct {
	DefaultQuery string `toml:"default_query" env:"SEARCH_DEFAULT_QUERY"`
	DiscardStale bool   `toml:"discard_stale" env:"SEARCH_DISCARD_STALE"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AltScreen bool `toml:"alt_screen" env:"UI_ALT_SCREEN"`
}

// LogSettings controls the log file
type LogSettings struct {
	Path  string `toml:"path" env:"LOG_PATH"`
	Level string `toml:"level" env:"LOG_LEVEL"`
}

// RequestTimeoutDuration parses API.RequestTimeout; empty means none
func (c *Config) RequestTimeoutDuration() (time.Duration, error) {
	if c.API.RequestTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.API.RequestTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid api.request_timeout %q: %w", c.API.RequestTimeout, err)
	}
	return d, nil
}

// Validate checks the fields that cannot be defaulted
func (c *Config) Validate() error {
	var errs []error
	if c.API.Endpoint == "" {
		errs = append(errs, errors.New("api.endpoint is required"))
	} else if u, err := url.Parse(c.API.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("api.endpoint %q is not an absolute URL", c.API.Endpoint))
	}
	if d, err := c.RequestTimeoutDuration(); err != nil {
		errs = append(errs, err)
	} else if d < 0 {
		errs = append(errs, fmt.Errorf("api.request_timeout must not be negative"))
	}
	if c.Storage.QueryKey == "" {
		errs = append(errs, errors.New("storage.query_key is required"))
	}
	return errors.Join(errs...)
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
	environ  map[string]string // nil reads the process environment
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	return &configService{filePath: filepath.Join(DefaultDir(), "config.toml")}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := &configService{filePath: path, bus: bus}
	if cs.filePath == "" {
		cs.filePath = filepath.Join(DefaultDir(), "config.toml")
	}
	return cs
}

// DefaultDir returns the per-user configuration directory
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "hackerstories")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, writing defaults if it does not exist,
// then applies environment overrides.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
		if err := cs.SaveToPath(cfg, cs.filePath); err != nil {
			return nil, err
		}
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if err := cs.applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cs.filePath, err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Missing fields
// keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (cs *configService) applyEnv(cfg *Config) error {
	opts := env.Options{Prefix: EnvPrefix}
	if cs.environ != nil {
		opts.Environment = cs.environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	dataDir := filepath.Join(cacheDir, "hackerstories")

	return &Config{
		Version: 1,
		API: APISettings{
			Endpoint:       hn.DefaultEndpoint,
			RequestTimeout: "0s",
		},
		Storage: StorageSettings{
			Path:     filepath.Join(dataDir, "state.db"),
			QueryKey: "search",
		},
		Search: SearchSettings{
			DefaultQuery: "React",
			DiscardStale: true,
		},
		UI: UISettings{
			AltScreen: true,
		},
		Log: LogSettings{
			Path:  filepath.Join(dataDir, "hackerstories.log"),
			Level: "info",
		},
	}
}
