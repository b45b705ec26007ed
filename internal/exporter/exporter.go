// Package exporter implements the multi-size logo export pipeline.
package exporter

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/go-playground/validator/v10"
	"github.com/logoforge/logoforge/internal/constants"
	"github.com/logoforge/logoforge/internal/utils"
)

var (
	// ErrSourceNotFound is an error that occurs when the source image does not exist.
	ErrSourceNotFound = errors.New("source image not found")

	// ErrDecodeSource is an error that occurs when the source image cannot be decoded.
	ErrDecodeSource = errors.New("failed to decode source image")
)

// SizeSpec is a named square pixel size for an exported icon.
type SizeSpec struct {
	Label  string `validate:"required"`
	Width  int    `validate:"gt=0"`
	Height int    `validate:"gt=0"`
}

// DefaultSizes returns the fixed icon size set.
func DefaultSizes() []SizeSpec {
	specs := make([]SizeSpec, 0, len(constants.IconSizes))
	for _, size := range constants.IconSizes {
		specs = append(specs, SizeSpec{
			Label:  strconv.Itoa(size),
			Width:  size,
			Height: size,
		})
	}
	return specs
}

// Options describes a single export run. All paths are fixed for the run's
// duration. FaviconPath may be empty, in which case no favicon is written.
type Options struct {
	SourcePath  string `validate:"required"`
	OutputDir   string `validate:"required"`
	Prefix      string `validate:"required"`
	LoadingPath string `validate:"required"`
	FaviconPath string
	Sizes       []SizeSpec `validate:"min=1,dive"`
}

// Validate checks the options against their constraints.
func (o Options) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}

// Exporter resizes one source image into the configured set of PNG files.
type Exporter struct {
	opts Options
}

// New creates a new Exporter instance after validating opts.
func New(opts Options) (*Exporter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid export options: %w", err)
	}
	return &Exporter{opts: opts}, nil
}

// Export runs the pipeline: check the source exists, decode it once, ensure
// the output directories, write one PNG per size, then the splash-screen copy
// and the optional favicon. Every output is resized from the original decoded
// image, so there is no cascading quality loss. The first failure aborts the
// run; nothing is written before the source check passes.
func (e *Exporter) Export(ctx context.Context) error {
	if !utils.FileExists(e.opts.SourcePath) {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, e.opts.SourcePath)
	}

	src, err := imaging.Open(e.opts.SourcePath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecodeSource, e.opts.SourcePath, err)
	}

	if err := utils.EnsureDir(e.opts.OutputDir); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, size := range e.opts.Sizes {
		outputPath := filepath.Join(e.opts.OutputDir, fmt.Sprintf("%s-%s.png", e.opts.Prefix, size.Label))
		resized := imaging.Resize(src, size.Width, size.Height, imaging.Lanczos)
		if err := save(resized, outputPath); err != nil {
			return err
		}
		slog.InfoContext(ctx, "Generated icon", "path", outputPath, "width", size.Width, "height", size.Height)
	}

	if err := utils.EnsureDir(filepath.Dir(e.opts.LoadingPath)); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	loading := imaging.Resize(src, constants.LoadingImageSize, constants.LoadingImageSize, imaging.Lanczos)
	if err := save(loading, e.opts.LoadingPath); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Generated loading image", "path", e.opts.LoadingPath)

	if e.opts.FaviconPath != "" {
		if err := utils.EnsureDir(filepath.Dir(e.opts.FaviconPath)); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		favicon := imaging.Resize(src, constants.FaviconImageSize, constants.FaviconImageSize, imaging.Lanczos)
		if err := save(favicon, e.opts.FaviconPath); err != nil {
			return err
		}
		slog.InfoContext(ctx, "Generated favicon", "path", e.opts.FaviconPath)
	}

	return nil
}

func save(img image.Image, path string) error {
	if err := imaging.Save(img, path, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
