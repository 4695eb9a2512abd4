// Package track defines the central Track entity: one per discovered audio
// file, carrying resolved tag fields, duration, and the cached canonical
// stem. Tracks are built once during discovery and never mutated afterwards
// except for the dedup suffix and the one-time stem cache.
package track

import (
	"path/filepath"
)

// Track is one discovered audio file with its resolved metadata.
type Track struct {
	// Identity, immutable after construction.
	Path string // Full source path.
	Dir  string // Directory part of Path.
	Base string // Filename part of Path.

	// DetectedExt is the extension inferred from the sniffed container type.
	// Set only when Base carries no extension of its own.
	DetectedExt string

	// Fields maps logical field names (title, artist, album, track, date,
	// genre, composer, label, artists) to resolved values, possibly empty.
	Fields map[string]string

	// Duration in seconds; valid only when HasDuration is true.
	Duration    float64
	HasDuration bool

	// Set by the conflict resolver for distinct members of a collision
	// group; 0 means no suffix.
	suffix int

	// One-time cache of the canonical stem.
	stem    string
	stemSet bool
}

// New constructs a Track for path with empty metadata.
func New(path string) *Track {
	return &Track{
		Path:   path,
		Dir:    filepath.Dir(path),
		Base:   filepath.Base(path),
		Fields: make(map[string]string),
	}
}

// Field returns the resolved value of a logical field, or "" when absent.
func (t *Track) Field(name string) string {
	return t.Fields[name]
}

// Ext returns the filename extension to use for the canonical name: the
// original extension when the filename has one, otherwise the sniffed
// extension, otherwise defaultExt.
func (t *Track) Ext(defaultExt string) string {
	if ext := filepath.Ext(t.Base); ext != "" {
		return ext
	}
	if t.DetectedExt != "" {
		return t.DetectedExt
	}
	return defaultExt
}

// OriginalStem returns the original filename without its extension.
func (t *Track) OriginalStem() string {
	ext := filepath.Ext(t.Base)
	return t.Base[:len(t.Base)-len(ext)]
}

// SetSuffix records the dedup suffix assigned by the conflict resolver.
// n must be positive.
func (t *Track) SetSuffix(n int) { t.suffix = n }

// Suffix returns the assigned dedup suffix, or 0 when none was assigned.
func (t *Track) Suffix() int { return t.suffix }

// CachedStem returns the cached canonical stem and whether it was computed.
func (t *Track) CachedStem() (string, bool) {
	return t.stem, t.stemSet
}

// CacheStem stores the canonical stem. The first call wins; later calls are
// ignored so the stem stays stable once observed.
func (t *Track) CacheStem(stem string) {
	if t.stemSet {
		return
	}
	t.stem = stem
	t.stemSet = true
}
