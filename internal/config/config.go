// Package config holds runtime configuration: defaults, the optional YAML
// config file, and validation. Defaults encode the standing conversion
// recipe (15 fps, 480px wide, lanczos scaling).
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by a YAML config file, then mutated by CLI flags
// before being passed (by pointer) to packages that need it.
type Config struct {
	// Target directory (set from the positional arg).
	InputDir string

	// Conversion recipe.
	FPS        int    // Output frame rate. Default: 15.
	Width      int    // Output width in pixels; height preserves aspect. Default: 480.
	ScaleFlags string // ffmpeg scale filter flags. Fixed: "lanczos".

	// Behavior flags.
	DryRun         bool
	AssumeYes      bool // Skip the initial confirmation prompt.
	NonInteractive bool // Never prompt; deletions require the explicit flags below.
	DeleteHTML     bool // Delete the html bucket without asking.
	DeleteErrors   bool // Delete the text_error bucket without asking.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with the standing defaults. Used as the
// base before the config file and CLI flags apply overrides.
func DefaultConfig() Config {
	return Config{
		FPS:        15,
		Width:      480,
		ScaleFlags: "lanczos",
		ColorMode:  ColorAuto,
	}
}

// NormalizeDirArg strips surrounding quote characters (users paste quoted
// paths) and trailing slashes from a directory path. The filesystem root "/"
// is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	path = strings.TrimSpace(path)
	path = strings.Trim(path, `"'`)
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that numeric fields and enums hold sane values. When not
// in CheckOnly mode, it also requires a target directory.
func (c *Config) Validate() error {
	if c.FPS < 1 {
		return fmt.Errorf("invalid fps %d (must be >= 1)", c.FPS)
	}
	if c.Width < 1 {
		return fmt.Errorf("invalid width %d (must be >= 1)", c.Width)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" {
		return errors.New("need a target directory")
	}
	return nil
}
