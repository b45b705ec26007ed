// Package generate implements the fixed logo generation command.
package generate

import (
	"path/filepath"

	"github.com/logoforge/logoforge/internal/config"
	"github.com/logoforge/logoforge/internal/constants"
	"github.com/logoforge/logoforge/internal/exporter"
	"github.com/spf13/cobra"
)

// GenerateCmd represents the generate command.
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the fixed icon set from logo.png",
	Long: `Generate reads logo.png from the working directory and writes
public/logo/logo-{32,64,128,256}.png, public/logo-loading.png and
public/favicon.png.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		outputDir := config.Current.Output.Dir

		exp, err := exporter.New(exporter.Options{
			SourcePath:  constants.DefaultSourceImage,
			OutputDir:   filepath.Join(outputDir, constants.IconDirName),
			Prefix:      constants.DefaultPrefix,
			LoadingPath: filepath.Join(outputDir, constants.LoadingImageName),
			FaviconPath: filepath.Join(outputDir, constants.FaviconImageName),
			Sizes:       exporter.DefaultSizes(),
		})
		if err != nil {
			return err
		}
		return exp.Export(cmd.Context())
	},
}
