package cmd

import (
	"fmt"

	"github.com/grovetools/core/logging"
	"github.com/grovetools/tocfmt/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// loadSettings resolves the config for a command run and applies the log
// level to logger.
func loadSettings(cmd *cobra.Command, logger *logrus.Entry) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config-file")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Logging.Level = logrus.DebugLevel.String()
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return config.Config{}, fmt.Errorf("invalid log level: %w", err)
	}
	logger.Logger.SetLevel(level)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(component string) *logrus.Entry {
	return logging.NewLogger("tocfmt." + component)
}
