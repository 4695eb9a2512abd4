// Package copier materializes resolved tracks under a destination
// directory. Existing files always win; nothing is ever overwritten.
package copier

import (
	"io"
	"os"
	"path/filepath"

	"github.com/backmassage/trackmaster/internal/logging"
	"github.com/backmassage/trackmaster/internal/naming"
	"github.com/backmassage/trackmaster/internal/track"
)

// Stats counts per-file outcomes of one copy batch.
type Stats struct {
	Copied      int
	Skipped     int
	Failed      int
	CopiedBytes int64
}

// CopyAll copies every track to dest under its canonical filename. The
// returned ok flag is false only when the destination itself could not be
// set up; per-file failures are logged and counted but do not stop the
// batch.
func CopyAll(log *logging.Logger, f *naming.Formatter, tracks []*track.Track, dest string, dryRun bool) (Stats, bool) {
	var stats Stats

	if dryRun {
		if _, err := os.Stat(dest); err != nil {
			log.Info("[DRY] Would create destination %s", dest)
		}
	} else if err := os.MkdirAll(dest, 0o755); err != nil {
		log.Error("Cannot create destination %s: %v", dest, err)
		return stats, false
	}

	for _, t := range tracks {
		destPath := filepath.Join(dest, f.FileName(t))

		if _, err := os.Stat(destPath); err == nil {
			log.Debug("Skip (exists): %s", filepath.Base(destPath))
			stats.Skipped++
			continue
		}

		if dryRun {
			log.Info("[DRY] Would copy %s -> %s", t.Base, filepath.Base(destPath))
			stats.Copied++
			continue
		}

		n, err := copyFile(t.Path, destPath)
		if err != nil {
			log.Error("Copy failed for %s: %v", t.Base, err)
			stats.Failed++
			continue
		}
		log.Debug("Copied %s -> %s", t.Base, filepath.Base(destPath))
		stats.Copied++
		stats.CopiedBytes += n
	}
	return stats, true
}

// copyFile copies src to dst and carries the source timestamps over.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return 0, err
	}

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dst)
		return 0, err
	}

	if err := os.Chtimes(dst, fi.ModTime(), fi.ModTime()); err != nil {
		return n, err
	}
	return n, nil
}
