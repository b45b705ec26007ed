package config

import (
	"errors"
	"os"
	"os/exec"
	"testing"

	commonLogger "github.com/hibare/GoCommon/v2/pkg/logger"
	"github.com/logoforge/logoforge/internal/constants"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected *Config
	}{
		{
			name:    "all defaults",
			envVars: map[string]string{},
			expected: &Config{
				Output: OutputConfig{
					Dir: constants.DefaultOutputDir,
				},
				Logger: LoggerConfig{
					Level: commonLogger.DefaultLoggerLevel,
					Mode:  commonLogger.DefaultLoggerMode,
				},
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"LOGOFORGE_OUTPUT_DIR": "dist/assets",
				"LOGOFORGE_LOG_LEVEL":  "debug",
				"LOGOFORGE_LOG_MODE":   "json",
			},
			expected: &Config{
				Output: OutputConfig{
					Dir: "dist/assets",
				},
				Logger: LoggerConfig{
					Level: "debug",
					Mode:  "json",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Set test environment variables
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			// Load config
			Load()

			// Verify config
			assert.Equal(t, tt.expected, Current)
		})
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	// Set invalid log level
	t.Setenv("LOGOFORGE_LOG_LEVEL", "invalid-level")

	// Test that Load exits with invalid log level
	if os.Getenv("TEST_EXIT") == "1" {
		Load()
		return
	}
	const testName = "TestLoad_InvalidLogLevel"
	// #nosec G204
	cmd := exec.Command(os.Args[0], "-test.run=^"+testName+"$")
	cmd.Env = append(os.Environ(), "TEST_EXIT=1")
	err := cmd.Run()
	var e *exec.ExitError
	if errors.As(err, &e) && !e.Success() {
		return
	}
	t.Fatalf("process ran with err %v, want exit status 1", err)
}

func TestLoad_InvalidLogMode(t *testing.T) {
	// Set invalid log mode
	t.Setenv("LOGOFORGE_LOG_MODE", "invalid-mode")

	// Test that Load exits with invalid log mode
	if os.Getenv("TEST_EXIT") == "1" {
		Load()
		return
	}
	const testName = "TestLoad_InvalidLogMode"
	// #nosec G204
	cmd := exec.Command(os.Args[0], "-test.run=^"+testName+"$")
	cmd.Env = append(os.Environ(), "TEST_EXIT=1")
	err := cmd.Run()
	var e *exec.ExitError
	if errors.As(err, &e) && !e.Success() {
		return
	}
	t.Fatalf("process ran with err %v, want exit status 1", err)
}
