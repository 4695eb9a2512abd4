package naming

import (
	"strings"
	"testing"

	"github.com/backmassage/trackmaster/internal/track"
)

func newTrack(path, title string, duration float64) *track.Track {
	t := track.New(path)
	t.Fields["title"] = title
	t.Duration = duration
	t.HasDuration = true
	return t
}

func TestFormatterStem(t *testing.T) {
	tests := []struct {
		name     string
		template string
		fields   map[string]string
		path     string
		want     string
	}{
		{
			name:     "single field",
			template: "{title}",
			fields:   map[string]string{"title": "My Song"},
			path:     "/music/x.mp3",
			want:     "My Song",
		},
		{
			name:     "multi field",
			template: "{artist} - {title}",
			fields:   map[string]string{"artist": "Band", "title": "Song"},
			path:     "/music/x.mp3",
			want:     "Band - Song",
		},
		{
			name:     "unsafe characters deleted",
			template: "{title}",
			fields:   map[string]string{"title": `A/B:C*"D?`},
			path:     "/music/x.mp3",
			want:     "ABCD",
		},
		{
			name:     "missing field substitutes empty",
			template: "{artist}{date}",
			fields:   map[string]string{"artist": "Band"},
			path:     "/music/x.mp3",
			want:     "Band",
		},
		{
			name:     "year from full date",
			template: "{year} {title}",
			fields:   map[string]string{"date": "1999-12-31", "title": "Song"},
			path:     "/music/x.mp3",
			want:     "1999 Song",
		},
		{
			name:     "all empty falls back to original stem",
			template: "{title}",
			fields:   nil,
			path:     "/music/Original Name.mp3",
			want:     "Original Name",
		},
		{
			name:     "empty template falls back",
			template: "",
			fields:   map[string]string{"title": "Song"},
			path:     "/music/keep.flac",
			want:     "keep",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := track.New(tt.path)
			for k, v := range tt.fields {
				tr.Fields[k] = v
			}
			f := &Formatter{Template: tt.template, DefaultExt: ".mp3"}
			if got := f.Stem(tr); got != tt.want {
				t.Errorf("Stem() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStemIsCached(t *testing.T) {
	tr := newTrack("/m/x.mp3", "Song", 100)
	f := &Formatter{Template: "{title}", DefaultExt: ".mp3"}

	first := f.Stem(tr)
	tr.Fields["title"] = "Changed"
	if got := f.Stem(tr); got != first {
		t.Errorf("Stem() = %q after field change, want cached %q", got, first)
	}
}

func TestSanitizeAllowList(t *testing.T) {
	inputs := []string{
		"plain name",
		`sla/sh \ and : colons`,
		"tabs\tand\nnewlines",
		"unicode Łódź 東京 okay",
		"émigré – dash",
	}
	allowed := func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return true
		case r == ' ' || r == '.' || r == '_' || r == '-':
			return true
		default:
			// Letters and digits beyond ASCII are part of the allow-list.
			return strings.ContainsRune(Sanitize(string(r)), r)
		}
	}
	for _, in := range inputs {
		out := Sanitize(in)
		for _, r := range out {
			if !allowed(r) {
				t.Errorf("Sanitize(%q) = %q contains disallowed rune %q", in, out, r)
			}
		}
	}
	if got := Sanitize("///"); got != "" {
		t.Errorf("Sanitize(\"///\") = %q, want empty", got)
	}
}

func TestFileName(t *testing.T) {
	f := &Formatter{Template: "{title}", DefaultExt: ".mp3"}

	tr := newTrack("/m/a.flac", "Song", 100)
	if got := f.FileName(tr); got != "Song.flac" {
		t.Errorf("FileName() = %q, want Song.flac", got)
	}

	tr2 := newTrack("/m/b", "Song", 400)
	tr2.SetSuffix(1)
	if got := f.FileName(tr2); got != "Song_(1).mp3" {
		t.Errorf("FileName() = %q, want Song_(1).mp3", got)
	}
}

func TestResolver_DuplicateDropped(t *testing.T) {
	// Same title, durations within the tolerance: the later file is a true
	// duplicate and must vanish from the output.
	a := newTrack("/m/a.mp3", "Same", 180.0)
	b := newTrack("/m/b.mp3", "Same", 180.4)

	r := &Resolver{Formatter: &Formatter{Template: "{title}", DefaultExt: ".mp3"}}
	kept := r.Resolve([]*track.Track{a, b})

	if len(kept) != 1 || kept[0] != a {
		t.Fatalf("kept %d tracks, want only the first", len(kept))
	}
	if len(r.Dropped) != 1 || r.Dropped[0] != b {
		t.Errorf("Dropped = %v, want the second track", r.Dropped)
	}
	if a.Suffix() != 0 {
		t.Errorf("sole survivor must carry no suffix, got %d", a.Suffix())
	}
}

func TestResolver_DistinctCollisionSuffixed(t *testing.T) {
	a := newTrack("/m/a.mp3", "Same", 180.0)
	b := newTrack("/m/b.mp3", "Same", 300.0)

	f := &Formatter{Template: "{title}", DefaultExt: ".mp3"}
	r := &Resolver{Formatter: f}
	kept := r.Resolve([]*track.Track{a, b})

	if len(kept) != 2 {
		t.Fatalf("kept %d tracks, want 2", len(kept))
	}
	if a.Suffix() != 0 {
		t.Errorf("first member suffix = %d, want none", a.Suffix())
	}
	if b.Suffix() != 1 {
		t.Errorf("second member suffix = %d, want 1", b.Suffix())
	}
	if got := f.FileName(b); got != "Same_(1).mp3" {
		t.Errorf("FileName() = %q", got)
	}
}

func TestResolver_SuffixesContiguousAfterDrops(t *testing.T) {
	// Four colliders: two duplicates interleaved with two distinct tracks.
	// Suffixes must stay contiguous in acceptance order.
	a := newTrack("/m/a.mp3", "Same", 100.0)
	b := newTrack("/m/b.mp3", "Same", 100.5) // dup of a
	c := newTrack("/m/c.mp3", "Same", 200.0)
	d := newTrack("/m/d.mp3", "Same", 300.0)

	r := &Resolver{Formatter: &Formatter{Template: "{title}", DefaultExt: ".mp3"}}
	kept := r.Resolve([]*track.Track{a, b, c, d})

	if len(kept) != 3 {
		t.Fatalf("kept %d tracks, want 3", len(kept))
	}
	want := []int{0, 1, 2}
	for i, tr := range kept {
		if tr.Suffix() != want[i] {
			t.Errorf("kept[%d].Suffix() = %d, want %d", i, tr.Suffix(), want[i])
		}
	}
}

func TestResolver_DifferentStemsNeverCollide(t *testing.T) {
	a := newTrack("/m/a.mp3", "One", 100.0)
	b := newTrack("/m/b.mp3", "Two", 100.2)

	r := &Resolver{Formatter: &Formatter{Template: "{title}", DefaultExt: ".mp3"}}
	kept := r.Resolve([]*track.Track{a, b})

	if len(kept) != 2 || a.Suffix() != 0 || b.Suffix() != 0 {
		t.Errorf("distinct stems must pass through unsuffixed")
	}
}
