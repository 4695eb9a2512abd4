// Package pipeline orchestrates discovery, per-file analysis, collision
// resolution, copying, and playlist output.
package pipeline

import (
	"context"
	"runtime"
	"sync"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/backmassage/trackmaster/internal/config"
	"github.com/backmassage/trackmaster/internal/copier"
	"github.com/backmassage/trackmaster/internal/display"
	"github.com/backmassage/trackmaster/internal/logging"
	"github.com/backmassage/trackmaster/internal/naming"
	"github.com/backmassage/trackmaster/internal/playlist"
	"github.com/backmassage/trackmaster/internal/track"
)

// Run is the top-level batch entry point: discover -> analyze (optionally
// in parallel) -> resolve collisions -> copy -> write playlist. The
// returned error is non-nil only for fatal conditions; per-file problems
// are logged and counted.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	files, err := Discover(cfg.ScanRoot)
	if err != nil {
		return stats, err
	}
	stats.Discovered = len(files)
	log.Info("Found %d files under %s", stats.Discovered, cfg.ScanRoot)

	var tracks []*track.Track
	if cfg.Parallel {
		tracks = analyzeParallel(ctx, cfg, log, files, &stats)
	} else {
		tracks = analyzeSequential(ctx, cfg, log, files, &stats)
	}
	log.Info("Accepted %d audio tracks (%d non-audio, %d too short, %d failed)",
		stats.Tracks, stats.NonAudio, stats.TooShort, stats.Failed)

	formatter := &naming.Formatter{
		Template:   cfg.RenameTemplate,
		DefaultExt: cfg.DefaultExt,
	}
	resolver := &naming.Resolver{Formatter: formatter}
	tracks = resolver.Resolve(tracks)
	stats.Duplicates = len(resolver.Dropped)
	for _, d := range resolver.Dropped {
		log.Info("Duplicate dropped: %s (%s)", d.Base, display.FormatDuration(d.Duration))
	}

	if cfg.CopyRequested {
		cs, ok := copier.CopyAll(log, formatter, tracks, cfg.CopyDest, cfg.DryRun)
		stats.Copied = cs.Copied
		stats.CopySkipped = cs.Skipped
		stats.CopyFailed = cs.Failed
		stats.CopiedBytes = cs.CopiedBytes
		if !ok {
			// The playlist below will still point at destination paths
			// that were never created.
			log.Error("Copy step failed; playlist entries may reference missing files")
		} else if cs.Failed > 0 {
			log.Warn("%d copies failed; playlist entries for those tracks reference missing files", cs.Failed)
		}
	}

	playlistPath := cfg.PlaylistPath
	if playlistPath == "" {
		playlistPath = cfg.PlaylistDefault()
	}

	if cfg.DryRun {
		log.Info("[DRY] Would write playlist with %d entries: %s", len(tracks), playlistPath)
	} else {
		if err := playlist.Write(playlistPath, tracks, formatter, copyBase(cfg), cfg.ScanRoot); err != nil {
			return stats, err
		}
		log.Success("Playlist written: %s (%d entries)", playlistPath, len(tracks))
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

func copyBase(cfg *config.Config) string {
	if cfg.CopyRequested {
		return cfg.CopyDest
	}
	return ""
}

// analyzeSequential processes files in walk order.
func analyzeSequential(ctx context.Context, cfg *config.Config, log *logging.Logger, files []string, stats *RunStats) []*track.Track {
	tracks := make([]*track.Track, 0, len(files))
	for _, path := range files {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		t, r := analyzeFile(ctx, cfg, log, path)
		stats.count(r)
		if t != nil {
			tracks = append(tracks, t)
		}
	}
	return tracks
}

// analyzeParallel fans files out over a fixed-size worker pool. Results
// land in a per-file slot so downstream stages still see walk order no
// matter which worker finished first.
func analyzeParallel(ctx context.Context, cfg *config.Config, log *logging.Logger, files []string, stats *RunStats) []*track.Track {
	slots := make([]*track.Track, len(files))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range files {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			t, r := analyzeFile(gctx, cfg, log, path)
			mu.Lock()
			stats.count(r)
			mu.Unlock()
			slots[i] = t
			return nil
		})
	}
	g.Wait()

	tracks := make([]*track.Track, 0, len(files))
	for _, t := range slots {
		if t != nil {
			tracks = append(tracks, t)
		}
	}
	return tracks
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d tracks, %d duplicates dropped", stats.Tracks-stats.Duplicates, stats.Duplicates)
	if !cfg.CopyRequested {
		return
	}
	if cfg.DryRun {
		log.Info("  Copied: n/a (dry run, %d would be copied)", stats.Copied)
		return
	}
	log.Info("  Copied: %d (%s), skipped %d existing, %d failed",
		stats.Copied, humanize.Bytes(uint64(stats.CopiedBytes)), stats.CopySkipped, stats.CopyFailed)
}
