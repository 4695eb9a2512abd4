package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/backmassage/trackmaster/internal/config"
	"github.com/backmassage/trackmaster/internal/logging"
	"github.com/backmassage/trackmaster/internal/probe"
	"github.com/backmassage/trackmaster/internal/sniff"
	"github.com/backmassage/trackmaster/internal/tags"
	"github.com/backmassage/trackmaster/internal/track"
)

// Files at or under this size are album art or metadata sidecars that
// sniff as audio; real tracks are bigger.
const minFileSize = 1 << 20

// analyzeFile classifies and parses one discovered file. It returns a
// fully-populated Track when the file is an audio track that clears the
// minimum-duration threshold, or nil with the reason it was rejected.
// Per-file failures never propagate as errors; they only reject the file.
func analyzeFile(ctx context.Context, cfg *config.Config, log *logging.Logger, path string) (*track.Track, rejection) {
	fi, err := os.Stat(path)
	if err != nil {
		log.Error("Cannot stat %s: %v", path, err)
		return nil, rejectedFailed
	}
	if fi.Size() <= minFileSize {
		log.Trace("Skip (too small): %s", path)
		return nil, rejectedNonAudio
	}

	mime, err := sniff.Type(path)
	if err != nil {
		log.Error("Cannot read %s: %v", path, err)
		return nil, rejectedFailed
	}
	if !sniff.IsAudio(mime) {
		log.Trace("Skip (%s): %s", mime, path)
		return nil, rejectedNonAudio
	}

	t := track.New(path)
	if filepath.Ext(t.Base) == "" {
		t.DetectedExt = sniff.ExtensionFor(mime)
	}

	parse, err := tags.Read(path)
	if err != nil {
		// Corrupt or unsupported container: fields degrade to empty,
		// duration may still come from the probe.
		log.Warn("Cannot parse tags in %s: %v", t.Base, err)
		parse = &tags.Parse{Frames: make(tags.Frames)}
	}
	t.Fields = tags.Resolve(parse)

	resolveDuration(ctx, cfg, log, t)

	if !meetsThreshold(t, cfg.MinDuration) {
		if t.HasDuration {
			log.Debug("Skip (%.1fs < %.1fs minimum): %s", t.Duration, cfg.MinDuration, t.Base)
		} else {
			log.Warn("Skip (duration unknown): %s", t.Base)
		}
		return nil, rejectedShort
	}

	log.Debug("Track: %s (%s, %.1fs)", t.Base, mime, t.Duration)
	return t, accepted
}

// meetsThreshold applies the minimum-duration filter. A duration exactly
// at the threshold passes; an unresolved duration never does.
func meetsThreshold(t *track.Track, min float64) bool {
	return t.HasDuration && t.Duration >= min
}

// resolveDuration fills t.Duration from stream properties, falling back to
// the external probe when the container gives nothing usable.
func resolveDuration(ctx context.Context, cfg *config.Config, log *logging.Logger, t *track.Track) {
	if secs, err := tags.Duration(t.Path); err == nil && secs > 0 {
		t.Duration = secs
		t.HasDuration = true
		return
	}

	secs, err := probe.Duration(ctx, cfg.ProbeBin, t.Path)
	if err != nil {
		log.Error("Duration probe failed for %s: %v", t.Base, err)
		return
	}
	t.Duration = secs
	t.HasDuration = true
}
