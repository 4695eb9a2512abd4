// Package check provides the --check diagnostics: availability of the
// duration probe binary and writability of the working directory.
package check

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/backmassage/trackmaster/internal/config"
	"github.com/backmassage/trackmaster/internal/probe"
)

// Logger is the minimal logging interface needed by RunCheck. Defined here
// (rather than importing the logging package) so that check remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the informational --check flow. It does not stop on
// failure; every probe is reported.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")
	checkProbe(cfg, log)
	checkWorkDir(log)
}

// checkProbe verifies the duration probe binary is reachable and reports
// its version string.
func checkProbe(cfg *config.Config, log Logger) {
	path, err := exec.LookPath(cfg.ProbeBin)
	if err != nil {
		log.Warn("%s not found on PATH; durations fall back to container metadata only", cfg.ProbeBin)
		return
	}
	version, err := probe.Version(context.Background(), path)
	if err != nil {
		log.Warn("%s found but -version failed: %v", cfg.ProbeBin, err)
		return
	}
	log.Success("%s: %s", cfg.ProbeBin, version)
}

// checkWorkDir verifies the current directory is writable, since the
// default playlist lands next to the scan root.
func checkWorkDir(log Logger) {
	wd, err := os.Getwd()
	if err != nil {
		log.Error("Cannot resolve working directory: %v", err)
		return
	}
	tmp := filepath.Join(wd, ".trackmaster-check")
	if err := os.WriteFile(tmp, nil, 0o644); err != nil {
		log.Warn("Working directory is not writable: %s", wd)
		return
	}
	os.Remove(tmp)
	log.Success("Working directory writable: %s", wd)
}
