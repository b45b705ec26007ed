// Package config provides configuration management for the application.
package config

import (
	"log"

	"github.com/hibare/GoCommon/v2/pkg/env"
	commonLogger "github.com/hibare/GoCommon/v2/pkg/logger"
	"github.com/logoforge/logoforge/internal/constants"
)

// LoggerConfig defines logging configuration parameters.
type LoggerConfig struct {
	Level string
	Mode  string
}

// OutputConfig defines where generated images are written.
type OutputConfig struct {
	Dir string
}

// Config represents the complete application configuration.
type Config struct {
	Logger LoggerConfig
	Output OutputConfig
}

// Current holds the active application configuration.
var Current *Config

// Load initializes and loads the application configuration.
func Load() {
	env.Load()

	Current = &Config{
		Output: OutputConfig{
			Dir: env.MustString("LOGOFORGE_OUTPUT_DIR", constants.DefaultOutputDir),
		},
		Logger: LoggerConfig{
			Level: env.MustString("LOGOFORGE_LOG_LEVEL", commonLogger.DefaultLoggerLevel),
			Mode:  env.MustString("LOGOFORGE_LOG_MODE", commonLogger.DefaultLoggerMode),
		},
	}

	if !commonLogger.IsValidLogLevel(Current.Logger.Level) {
		log.Fatal("Error invalid logger level")
	}

	if !commonLogger.IsValidLogMode(Current.Logger.Mode) {
		log.Fatal("Error invalid logger mode")
	}

	commonLogger.InitLogger(&Current.Logger.Level, &Current.Logger.Mode)
}
