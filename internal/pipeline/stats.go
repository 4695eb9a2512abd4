package pipeline

// rejection says why analyzeFile refused a discovered file.
type rejection int

const (
	accepted rejection = iota
	rejectedNonAudio
	rejectedShort
	rejectedFailed
)

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Discovered int // Regular files seen by the walk.
	Tracks     int // Files accepted as audio tracks.
	NonAudio   int // Rejected by sniffing or the size floor.
	TooShort   int // Audio, but under the duration threshold or unresolvable.
	Failed     int // I/O or probe failures.
	Duplicates int // Dropped by collision resolution.

	Copied      int
	CopySkipped int
	CopyFailed  int
	CopiedBytes int64
}

func (s *RunStats) count(r rejection) {
	switch r {
	case accepted:
		s.Tracks++
	case rejectedNonAudio:
		s.NonAudio++
	case rejectedShort:
		s.TooShort++
	case rejectedFailed:
		s.Failed++
	}
}
