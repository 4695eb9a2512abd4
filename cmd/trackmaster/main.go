// Command trackmaster is the entrypoint for the tag-driven music folder
// canonicalizer. It parses flags, prompts for anything missing, and either
// runs diagnostics (--check) or the scan/copy/playlist pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/backmassage/trackmaster/internal/check"
	"github.com/backmassage/trackmaster/internal/config"
	"github.com/backmassage/trackmaster/internal/display"
	"github.com/backmassage/trackmaster/internal/logging"
	"github.com/backmassage/trackmaster/internal/pipeline"
)

func main() {
	// 1. Load config from defaults, settings file, and CLI flags.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "trackmaster: %v\n", err)
		os.Exit(1)
	}

	// 2. Prompt for the scan folder and copy destination when omitted.
	if !cfg.CheckOnly {
		if err := config.PromptMissing(&cfg); err != nil {
			fmt.Fprintf(os.Stderr, "trackmaster: %v\n", err)
			os.Exit(1)
		}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "trackmaster: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trackmaster: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	display.PrintBanner()

	// 3. Diagnostics mode: report and exit successfully.
	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		os.Exit(0)
	}

	// 4. Resolve and validate paths: the scan root must exist; a copy
	// destination must lie outside it.
	scanAbs, err := absPath(cfg.ScanRoot)
	if err != nil {
		log.Error("Folder not found: %s", cfg.ScanRoot)
		os.Exit(1)
	}
	if fi, err := os.Stat(scanAbs); err != nil || !fi.IsDir() {
		log.Error("Not a folder: %s", cfg.ScanRoot)
		os.Exit(1)
	}

	if cfg.CopyRequested {
		// Creating the destination is the copy step's job; a failure there
		// only degrades the run, it does not stop the scan.
		destAbs, err := absPath(cfg.CopyDest)
		if err != nil {
			destAbs, err = filepath.Abs(cfg.CopyDest)
			if err != nil {
				log.Error("Cannot resolve destination: %s", cfg.CopyDest)
				os.Exit(1)
			}
		}
		if err := cfg.ValidatePaths(scanAbs, destAbs); err != nil {
			log.Error("%v", err)
			log.Error("Choose a destination outside: %s", cfg.ScanRoot)
			os.Exit(1)
		}
	}

	log.Info("=== Trackmaster v%s ===", config.Version())
	log.Info("Scan: %s", cfg.ScanRoot)
	if cfg.CopyRequested {
		log.Info("Copy: %s", cfg.CopyDest)
	}
	if cfg.DryRun {
		log.Warn("DRY RUN")
	}
	log.Info("")

	// 5. Run the pipeline; only output-level failures are fatal.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := pipeline.Run(ctx, &cfg, log); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

// absPath returns the absolute path with symlinks resolved, for comparing
// the scan root against the copy destination.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
