package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/falcion/sigscan/internal/core"
	"github.com/goccy/go-yaml"
)

// DefaultConfigFile is the name of the optional project configuration file.
const DefaultConfigFile = ".sigscan.yaml"

// SyncConfig holds settings for the manifest synchronizer.
type SyncConfig struct {
	// Dir is the directory holding the package descriptor and manifest.json.
	Dir string `yaml:"dir,omitempty"`
	// Package pins the descriptor file instead of probing the known ones.
	Package string `yaml:"package,omitempty"`
}

// Config is the main configuration structure for sigscan.
type Config struct {
	// Root is the directory the scanner walks. Defaults to ".".
	Root string `yaml:"root,omitempty"`
	// Tokens are extra signature tokens appended to the built-in defaults.
	Tokens []string `yaml:"tokens,omitempty"`
	// Exclude adds directory names to the built-in exclusion set.
	Exclude []string `yaml:"exclude,omitempty"`
	// Theme selects the prompt theme by name.
	Theme string `yaml:"theme,omitempty"`

	Sync *SyncConfig `yaml:"sync,omitempty"`
}

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	return &Config{Root: "."}
}

// GetSync returns the sync section with nil handling, so callers never
// branch on a missing section.
func (c *Config) GetSync() SyncConfig {
	if c == nil || c.Sync == nil {
		return SyncConfig{}
	}
	return *c.Sync
}

// GetTheme returns the configured theme name, or "sigscan" when unset.
func (c *Config) GetTheme() string {
	if c == nil || c.Theme == "" {
		return "sigscan"
	}
	return c.Theme
}

// FileOpener abstracts file opening operations for testability.
type FileOpener interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

// FileWriter abstracts file writing operations for testability.
type FileWriter interface {
	WriteFile(file *os.File, data []byte) (int, error)
}

// ConfigSaver handles configuration saving with injected dependencies.
type ConfigSaver struct {
	marshaler  core.Marshaler
	fileOpener FileOpener
	fileWriter FileWriter
}

// osFileOpener is the production implementation of FileOpener.
type osFileOpener struct{}

func (o *osFileOpener) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

// osFileWriter is the production implementation of FileWriter.
type osFileWriter struct{}

func (w *osFileWriter) WriteFile(file *os.File, data []byte) (int, error) {
	return file.Write(data)
}

// yamlMarshaler is the production implementation of core.Marshaler using YAML.
type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// NewConfigSaver creates a ConfigSaver with the given dependencies.
// If any dependency is nil, the production default is used.
func NewConfigSaver(marshaler core.Marshaler, opener FileOpener, writer FileWriter) *ConfigSaver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	if opener == nil {
		opener = &osFileOpener{}
	}
	if writer == nil {
		writer = &osFileWriter{}
	}
	return &ConfigSaver{
		marshaler:  marshaler,
		fileOpener: opener,
		fileWriter: writer,
	}
}

// Save saves the configuration to the default config file.
func (s *ConfigSaver) Save(cfg *Config) error {
	return s.SaveTo(cfg, DefaultConfigFile)
}

// SaveTo saves the configuration to the specified file path.
func (s *ConfigSaver) SaveTo(cfg *Config, configFile string) error {
	file, err := s.fileOpener.OpenFile(configFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open config file %q: %w", configFile, err)
	}
	defer file.Close()

	data, err := s.marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", configFile, err)
	}

	if _, err := s.fileWriter.WriteFile(file, data); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", configFile, err)
	}

	return nil
}

// defaultConfigSaver is the default ConfigSaver instance.
var defaultConfigSaver = NewConfigSaver(nil, nil, nil)

// LoadConfigFn, LoadConfigFromFn and SaveConfigFn are seams so commands
// can stub configuration access in tests.
var (
	LoadConfigFn     = loadConfig
	LoadConfigFromFn = loadConfigFrom
	SaveConfigFn     = func(cfg *Config) error {
		return defaultConfigSaver.Save(cfg)
	}
)

func loadConfig() (*Config, error) {
	return loadConfigFrom(DefaultConfigFile)
}

func loadConfigFrom(configFile string) (*Config, error) {
	// Highest priority: ENV variable
	if envRoot := os.Getenv("SIGSCAN_ROOT"); envRoot != "" {
		cleanRoot := filepath.Clean(envRoot)
		// Reject relative paths with traversal (use absolute paths instead)
		if strings.Contains(cleanRoot, "..") {
			return nil, fmt.Errorf("invalid SIGSCAN_ROOT: path traversal not allowed, use absolute path instead")
		}
		return &Config{Root: cleanRoot}, nil
	}

	// Second priority: YAML file
	data, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // fallback to default
		}
		return nil, err
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Root == "" {
		cfg.Root = "."
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ConfigFilePerm defines secure file permissions for config files (owner read/write only).
// References core.PermOwnerRW for consistency across the codebase.
const ConfigFilePerm = core.PermOwnerRW
