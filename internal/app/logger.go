package app

import (
	"strings"

	"github.com/empowerher/empowerher/pkg/logger"
)

// ConfigureLogging initialises the global logger from server settings,
// defaulting to info-level console output.
func ConfigureLogging(cfg ServerConfig) error {
	level := strings.TrimSpace(cfg.LogLevel)
	if level == "" {
		level = "info"
	}

	format := strings.TrimSpace(cfg.LogFormat)
	if format == "" {
		format = "console"
	}

	return logger.Init(level, format)
}
