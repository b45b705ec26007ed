// Package export implements the parameterized logo export command.
package export

import (
	"fmt"
	"path/filepath"

	"github.com/logoforge/logoforge/internal/config"
	"github.com/logoforge/logoforge/internal/constants"
	"github.com/logoforge/logoforge/internal/exporter"
	"github.com/spf13/cobra"
)

var withFavicon bool

// ExportCmd represents the export command.
var ExportCmd = &cobra.Command{
	Use:   "export <input> <prefix>",
	Short: "Export the icon set from a source image with a filename prefix",
	Long: `Export resizes <input> into public/logo/<prefix>-{32,64,128,256}.png and
public/logo-loading-<prefix>.png. With --favicon it also writes
public/favicon.png.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, prefix := args[0], args[1]
		outputDir := config.Current.Output.Dir

		opts := exporter.Options{
			SourcePath:  input,
			OutputDir:   filepath.Join(outputDir, constants.IconDirName),
			Prefix:      prefix,
			LoadingPath: filepath.Join(outputDir, fmt.Sprintf("logo-loading-%s.png", prefix)),
			Sizes:       exporter.DefaultSizes(),
		}
		if withFavicon {
			opts.FaviconPath = filepath.Join(outputDir, constants.FaviconImageName)
		}

		exp, err := exporter.New(opts)
		if err != nil {
			return err
		}
		return exp.Export(cmd.Context())
	},
}

func init() {
	ExportCmd.Flags().BoolVar(&withFavicon, "favicon", false, "also write public/favicon.png")
}
