// Package config holds runtime configuration: defaults, CLI flag parsing,
// optional settings-file loading, and validation.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultTemplate is the rename template applied when --fix-names is given
// without a value.
const DefaultTemplate = "{title}"

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by a TOML settings file, and then mutated by
// [ParseFlags] before being passed (by pointer) to packages that need it.
type Config struct {
	// Paths.
	ScanRoot     string // Positional arg; prompted for when omitted.
	PlaylistPath string // -o/--output. Default: playlist.m3u in the scan root.
	CopyDest     string // Resolved copy destination; empty means no copy step.

	// Naming.
	RenameTemplate string // --fix-names template; empty keeps original stems.
	DefaultExt     string // --default-ext. Used only when no extension can be detected.

	// Filtering.
	MinDuration float64 // --min-duration, seconds. Default: 20.

	// External probe.
	ProbeBin string // --probe-bin. Default: "ffprobe".

	// Behavior flags.
	Parallel bool // --multi/--multithread.
	DryRun   bool // Report only; no copy, no playlist.

	// Display and logging.
	Verbosity int       // -v count: 0 quiet, 1 debug, 2 trace.
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.

	// Settings file (--config), applied between defaults and flags.
	SettingsFile string

	// Populated during flag parsing.
	CopyRequested bool // --copy was present (with or without a value).
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before the settings file and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		MinDuration: 20,
		DefaultExt:  ".mp3",
		ProbeBin:    "ffprobe",
		ColorMode:   ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// NormalizeExt canonicalizes an extension argument to lowercase with a
// leading dot ("mp3", ".MP3" -> ".mp3").
func NormalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Validate checks field values after flags and prompts have been applied.
// When not in CheckOnly mode, the scan root must be set.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.MinDuration < 0 {
		return fmt.Errorf("minimum duration must not be negative (got %g)", c.MinDuration)
	}

	c.DefaultExt = NormalizeExt(c.DefaultExt)
	if c.DefaultExt == "" || c.DefaultExt == "." {
		return errors.New("default extension must not be empty")
	}

	if c.ProbeBin == "" {
		return errors.New("probe binary must not be empty")
	}

	if c.CheckOnly {
		return nil
	}
	if c.ScanRoot == "" {
		return errors.New("need a folder to scan")
	}
	return nil
}

// ValidatePaths ensures the resolved copy destination is not inside (or equal
// to) the resolved scan root. This prevents the pipeline from discovering its
// own copies on a later run against the same tree. Both arguments must be
// absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(scanAbs, destAbs string) error {
	sep := string(filepath.Separator)
	if destAbs == scanAbs || strings.HasPrefix(destAbs+sep, scanAbs+sep) {
		return errors.New("copy destination must not be inside the scanned folder")
	}
	return nil
}

// PlaylistDefault returns the playlist path used when -o is omitted:
// playlist.m3u inside the scan root.
func (c *Config) PlaylistDefault() string {
	return filepath.Join(c.ScanRoot, "playlist.m3u")
}
