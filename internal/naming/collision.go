package naming

import (
	"fmt"

	"github.com/backmassage/trackmaster/internal/track"
)

// DuplicateTolerance is the duration difference, in seconds, under which two
// tracks with the same canonical stem count as the same recording.
const DuplicateTolerance = 1.0

// Resolver settles canonical-name collisions across a batch of tracks.
type Resolver struct {
	Formatter *Formatter

	// Dropped collects the tracks discarded as true duplicates, for
	// reporting.
	Dropped []*track.Track
}

// Resolve groups tracks by canonical stem and processes each group in input
// order. The first member of a group is always kept. A later member whose
// duration sits within DuplicateTolerance of any already-kept member is a
// duplicate and is dropped; otherwise it is kept and assigned the next
// sequential dedup suffix. Returns the surviving tracks in input order.
func (r *Resolver) Resolve(in []*track.Track) []*track.Track {
	accepted := make(map[string][]*track.Track)
	kept := make([]*track.Track, 0, len(in))

	for _, t := range in {
		stem := r.Formatter.Stem(t)
		group := accepted[stem]

		if dup := findDuplicate(group, t); dup != nil {
			r.Dropped = append(r.Dropped, t)
			continue
		}
		if len(group) > 0 {
			t.SetSuffix(len(group))
		}
		accepted[stem] = append(group, t)
		kept = append(kept, t)
	}
	return kept
}

// findDuplicate returns the accepted group member that t duplicates, or nil.
func findDuplicate(group []*track.Track, t *track.Track) *track.Track {
	for _, member := range group {
		diff := t.Duration - member.Duration
		if diff < 0 {
			diff = -diff
		}
		if diff < DuplicateTolerance {
			return member
		}
	}
	return nil
}

func suffixFor(n int) string {
	return fmt.Sprintf("_(%d)", n)
}
