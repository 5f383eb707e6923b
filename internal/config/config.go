package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"formkit/internal/eventbus"
)

// Config represents the demo application configuration
type Config struct {
	Version    int        `toml:"version"`
	ThemePath  string     `toml:"theme_path"`  // palette TOML file, empty means built-in
	OutputPath string     `toml:"output_path"` // where submitted forms are written
	UISettings UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelp   bool `toml:"show_help"`
	MouseInput bool `toml:"mouse_input"`
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewService creates a new config service with the default path under
// the user's config directory.
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "formdemo", "config.toml"),
	}
}

// NewServiceWithBus creates a config service that publishes save events
func NewServiceWithBus(bus eventbus.EventBus) Service {
	cs := NewService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default path. A missing file
// yields the default configuration.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
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

	if cs.bus != nil {
		cs.bus.Publish(eventbus.SaveCompletedEvent{Path: path})
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		OutputPath: "formdemo-submissions.toml",
		UISettings: UISettings{
			ShowHelp:   true,
			MouseInput: true,
		},
	}
}
