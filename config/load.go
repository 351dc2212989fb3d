package config

import (
	"fmt"
	"os"
	"time"

	core_config "github.com/grovetools/core/config"
	"gopkg.in/yaml.v3"
)

// ExtensionName is the grove.yml key holding tocfmt settings.
const ExtensionName = "tocfmt"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format: FormatConfig{
			Markers: []string{"CHAPTER TITLE", "START TIME"},
			Color:   "auto",
		},
		Clipboard: ClipboardConfig{
			NotifyAfter: 3 * time.Second,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML file at path on top of the defaults. With an empty path
// it falls back to the tocfmt extension of the default grove config, and to
// the defaults when that is unavailable.
func Load(path string) (Config, error) {
	if path == "" {
		return loadExtension(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data on top of the defaults.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg.withDefaults(), nil
}

func loadExtension() Config {
	coreCfg, err := core_config.LoadDefault()
	if err != nil {
		return Default()
	}
	var cfg Config
	if err := coreCfg.UnmarshalExtension(ExtensionName, &cfg); err != nil {
		return Default()
	}
	return cfg.withDefaults()
}

// withDefaults fills unset fields. An explicit empty markers list is kept so
// marker removal can be turned off.
func (c Config) withDefaults() Config {
	def := Default()
	if c.Format.Markers == nil {
		c.Format.Markers = def.Format.Markers
	}
	if c.Format.Color == "" {
		c.Format.Color = def.Format.Color
	}
	if c.Clipboard.NotifyAfter <= 0 {
		c.Clipboard.NotifyAfter = def.Clipboard.NotifyAfter
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	return c
}

// Validate reports settings that cannot be applied.
func (c Config) Validate() error {
	switch c.Format.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("format.color must be auto, always or never, got %q", c.Format.Color)
	}
	return nil
}
