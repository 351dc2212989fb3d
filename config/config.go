package config

import "time"

//go:generate go run ../tools/schema-generator

// FormatConfig defines how listings are normalized and printed.
type FormatConfig struct {
	// Markers are literal strings removed from every input line before
	// classification. Defaults to "CHAPTER TITLE" and "START TIME".
	Markers []string `yaml:"markers,omitempty"`

	// Color controls styled output: "auto" (default), "always" or "never".
	Color string `yaml:"color,omitempty"`
}

// ClipboardConfig defines clipboard behaviour of the format command.
type ClipboardConfig struct {
	// Copy copies the normalized outline after every run.
	Copy bool `yaml:"copy,omitempty"`

	// NotifyAfter is how long the "copied" notice stays on screen for
	// long-lived callers of the clipboard copier. The format command exits
	// right after copying, so its notice is printed once and not timed.
	// 0 (default): 3s.
	NotifyAfter time.Duration `yaml:"notify_after,omitempty"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	// Level is a logrus level name such as "info" or "debug".
	Level string `yaml:"level,omitempty"`
}

// Config is the top-level configuration structure for tocfmt.
type Config struct {
	Format    FormatConfig    `yaml:"format,omitempty"`
	Clipboard ClipboardConfig `yaml:"clipboard,omitempty"`
	Logging   LoggingConfig   `yaml:"logging,omitempty"`
}
