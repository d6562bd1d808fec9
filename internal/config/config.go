package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/pelletier/go-toml/v2"

	"sitesearch/internal/clipboard"
	"sitesearch/internal/eventbus"
	"sitesearch/internal/search"
)

const (
	// FileName is the config file name inside the config directory
	FileName = "config.toml"

	DefaultSearchDelayMS = 800
	DefaultCopyResetMS   = 2000
	DefaultLogFile       = "sitesearch.log"
)

// Config represents the application configuration
type Config struct {
	Version       int        `toml:"version"`
	Site          string     `toml:"site"`
	SearchDelayMS int        `toml:"search_delay_ms"`
	CopyResetMS   int        `toml:"copy_reset_ms"`
	Clipboard     string     `toml:"clipboard"`
	LogFile       string     `toml:"log_file"`
	UISettings    UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowSidebar bool `toml:"show_sidebar"`
	AltScreen   bool `toml:"alt_screen"`
}

// SearchDelay is the simulated search latency
func (c *Config) SearchDelay() time.Duration {
	return time.Duration(c.SearchDelayMS) * time.Millisecond
}

// CopyReset is how long the "Copied" marker stays visible
func (c *Config) CopyReset() time.Duration {
	return time.Duration(c.CopyResetMS) * time.Millisecond
}

// ClipboardMode returns the parsed clipboard mode
func (c *Config) ClipboardMode() clipboard.Mode {
	mode, _ := clipboard.ParseMode(c.Clipboard)
	return mode
}

// Validate fills missing or invalid values with defaults
func (c *Config) Validate() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Site == "" {
		c.Site = search.DefaultSite
	}
	if c.SearchDelayMS < 0 {
		c.SearchDelayMS = DefaultSearchDelayMS
	}
	if c.CopyResetMS <= 0 {
		c.CopyResetMS = DefaultCopyResetMS
	}
	if mode, ok := clipboard.ParseMode(c.Clipboard); ok {
		c.Clipboard = string(mode)
	} else {
		c.Clipboard = string(clipboard.ModeAuto)
	}
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
}

// NewConfigService creates a config service reading from the user config directory
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service bound to path with optional event bus support
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/sitesearch/config.toml or its platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "sitesearch", FileName)
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		loaded, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, Site: cfg.Site})
	}
	return cfg, nil
}

// Save saves the configuration to the service path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config file %s", path)
	}

	// Start from defaults so keys absent from the file keep their default
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config file %s", path)
	}
	cfg.Validate()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create config directory")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write config file %s", path)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:       1,
		Site:          search.DefaultSite,
		SearchDelayMS: DefaultSearchDelayMS,
		CopyResetMS:   DefaultCopyResetMS,
		Clipboard:     string(clipboard.ModeAuto),
		LogFile:       DefaultLogFile,
		UISettings: UISettings{
			ShowSidebar: true,
			AltScreen:   true,
		},
	}
}
