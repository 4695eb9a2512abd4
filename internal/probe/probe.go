// Package probe shells out to ffprobe for stream durations that the tag
// readers cannot recover, typically files with damaged or absent headers.
package probe

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Duration asks ffprobe (or whatever binary bin names) for the container
// duration of path, in seconds.
func Duration(ctx context.Context, bin, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, bin,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("probe %q: %w", path, err)
	}

	raw := strings.TrimSpace(string(out))
	if raw == "" || raw == "N/A" {
		return 0, fmt.Errorf("probe %q: no duration reported", path)
	}
	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("probe %q: bad duration %q: %w", path, raw, err)
	}
	return seconds, nil
}

// Version returns the first line of `bin -version`, used by the
// environment check.
func Version(ctx context.Context, bin string) (string, error) {
	out, err := exec.CommandContext(ctx, bin, "-version").Output()
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line), nil
}
