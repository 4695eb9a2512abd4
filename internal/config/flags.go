package config

// This file implements CLI flag parsing and help text.
// Optional-value flags (--copy, --fix-names) use pflag's NoOptDefVal so the
// flag can appear bare or with a value; verbosity is a counted -v.

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// version is shown in --version and help; override at build time with -ldflags "-X ...config.version=...".
var version = "1.0.0-dev"

// copyPromptSentinel marks a bare --copy (no destination given); the caller
// prompts for the destination interactively.
const copyPromptSentinel = "\x00prompt"

// Version returns the build version string.
func Version() string { return version }

// ParseFlags parses args (os.Args[1:]) into cfg. On --help or --version it
// prints and exits. On error it returns non-nil (e.g. unknown flag).
// The positional folder argument is left empty when omitted; the caller
// decides whether to prompt for it.
func ParseFlags(cfg *Config, args []string) error {
	fs := pflag.NewFlagSet("trackmaster", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() { printUsage() }

	fs.StringVarP(&cfg.PlaylistPath, "output", "o", cfg.PlaylistPath, "Playlist output path")
	fs.Float64VarP(&cfg.MinDuration, "min-duration", "m", cfg.MinDuration, "Minimum track duration in seconds")

	copyDest := fs.StringP("copy", "c", "", "Copy tracks to destination")
	fs.Lookup("copy").NoOptDefVal = copyPromptSentinel

	fixNames := fs.String("fix-names", "", "Rename from tags using a template")
	fs.Lookup("fix-names").NoOptDefVal = DefaultTemplate

	fs.StringVar(&cfg.DefaultExt, "default-ext", cfg.DefaultExt, "Extension used when none can be detected")
	fs.BoolVar(&cfg.Parallel, "multi", cfg.Parallel, "Process files with a worker pool")
	fs.BoolVar(&cfg.Parallel, "multithread", cfg.Parallel, "Same as --multi")
	fs.StringVar(&cfg.ProbeBin, "probe-bin", cfg.ProbeBin, "Duration probe executable")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Report only; do not copy or write the playlist")

	fs.CountVarP(&cfg.Verbosity, "verbose", "v", "Increase verbosity (repeatable)")
	forceColor := fs.Bool("color", false, "Force colored logs")
	noColor := fs.Bool("no-color", false, "Disable colored logs")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.SettingsFile, "config", "", "Settings file (TOML)")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run diagnostics and exit")

	showVersion := fs.Bool("version", false, "Print version and exit")
	showHelp := fs.BoolP("help", "h", false, "Show this help and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showHelp {
		printUsage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Fprintln(os.Stdout, "trackmaster v"+version)
		os.Exit(0)
	}

	// Settings file sits between defaults and flags: apply file values only
	// for flags the user did not pass explicitly.
	if cfg.SettingsFile != "" {
		if err := applySettings(cfg, fs); err != nil {
			return err
		}
	}

	if fs.Changed("copy") {
		cfg.CopyRequested = true
		if *copyDest != copyPromptSentinel {
			cfg.CopyDest = NormalizeDirArg(*copyDest)
		}
	}
	if fs.Changed("fix-names") {
		cfg.RenameTemplate = *fixNames
	}

	if *noColor {
		cfg.ColorMode = ColorNever
	} else if *forceColor {
		cfg.ColorMode = ColorAlways
	}

	if rest := fs.Args(); len(rest) > 0 {
		if len(rest) > 1 {
			return fmt.Errorf("unexpected argument %q (only one folder may be given)", rest[1])
		}
		cfg.ScanRoot = NormalizeDirArg(rest[0])
	}
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage() {
	const col1 = 30 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "Trackmaster v" + version + " - tag-driven music folder canonicalizer"},
		{"", ""},
		{"  trackmaster [OPTIONS] [folder]", ""},
		{"", ""},
		{"Scanning", ""},
		{"  -m, --min-duration <sec>", "Minimum track duration (default: 20)"},
		{"  --multi, --multithread", "Classify files with a worker pool"},
		{"  --probe-bin <name>", "Duration probe executable (default: ffprobe)"},
		{"", ""},
		{"Naming", ""},
		{"  --fix-names[=template]", "Rename from tags; bare flag uses {title}"},
		{"  --default-ext <ext>", "Extension when none detected (default: .mp3)"},
		{"", ""},
		{"Output", ""},
		{"  -o, --output <path>", "Playlist path (default: <folder>/playlist.m3u)"},
		{"  -c, --copy[=dest]", "Copy tracks; bare flag prompts for destination"},
		{" ", "The value must be attached: '--copy dest' reads"},
		{" ", "dest as the folder to scan"},
		{"  --dry-run", "Report only; no copy, no playlist"},
		{"", ""},
		{"Display", ""},
		{"  -v, --verbose", "Increase verbosity (repeatable)"},
		{"  --color / --no-color", "Force or disable colored logs"},
		{"  --log <path>", "Append logs to file"},
		{"", ""},
		{"Utility", ""},
		{"  --config <path>", "Settings file (TOML)"},
		{"  --check", "Probe-tool diagnostics"},
		{"  --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
