// Package constants defines application-wide constants and configuration values.
package constants

// Version information for the application.
const (
	// GithubOwner is the owner of the GitHub repository.
	GithubOwner = "logoforge"

	// ProgramIdentifier is the identifier for the application.
	ProgramIdentifier = "LogoForge"
)

// Input and output location defaults.
const (
	// DefaultSourceImage is the image the generate command reads from the
	// working directory.
	DefaultSourceImage = "logo.png"

	// DefaultOutputDir is the base directory generated files are written under.
	DefaultOutputDir = "public"

	// IconDirName is the subdirectory of the output directory that holds the
	// per-size icons.
	IconDirName = "logo"

	// DefaultPrefix is the filename prefix used by the generate command.
	DefaultPrefix = "logo"

	// LoadingImageName is the splash-screen copy written by the generate command.
	LoadingImageName = "logo-loading.png"

	// FaviconImageName is the favicon file written under the output directory.
	FaviconImageName = "favicon.png"
)

// Fixed image dimensions.
const (
	// LoadingImageSize is the pixel size of the square splash-screen copy.
	LoadingImageSize = 256

	// FaviconImageSize is the pixel size of the square favicon.
	FaviconImageSize = 32
)

// IconSizes is the fixed set of square icon sizes produced on every run.
var IconSizes = []int{32, 64, 128, 256}
