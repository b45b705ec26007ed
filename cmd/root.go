// Package cmd provides the command-line interface for the application.
package cmd

import (
	"context"
	"os"

	commonLogger "github.com/hibare/GoCommon/v2/pkg/logger"
	"github.com/logoforge/logoforge/cmd/export"
	"github.com/logoforge/logoforge/cmd/generate"
	"github.com/logoforge/logoforge/internal/config"
	"github.com/logoforge/logoforge/internal/version"
	"github.com/spf13/cobra"
)

// rootCmd is the root command for the CLI application.
var rootCmd = &cobra.Command{
	Use:     "logoforge",
	Short:   "LogoForge generates square PNG icons from a source logo",
	Long:    ``,
	Version: version.CurrentVersion,
}

// Execute runs the root command and handles any errors.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	ctx := context.Background()

	rootCmd.SetContext(ctx)
	rootCmd.AddCommand(generate.GenerateCmd)
	rootCmd.AddCommand(export.ExportCmd)

	cobra.OnInitialize(commonLogger.InitDefaultLogger, config.Load)
}
