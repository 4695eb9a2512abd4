// Package naming turns resolved tag fields into canonical filenames and
// settles collisions between tracks that canonicalize to the same name.
package naming

import (
	"regexp"
	"strings"

	"github.com/backmassage/trackmaster/internal/tags"
	"github.com/backmassage/trackmaster/internal/track"
)

// unsafeChars matches every rune not allowed in a canonical filename.
// Letters and digits in any script, space, dot, underscore and hyphen stay;
// runs of anything else collapse away.
var unsafeChars = regexp.MustCompile(`[^\p{L}\p{N} ._-]+`)

var placeholderPattern = regexp.MustCompile(`\{[a-z]+\}`)

// Formatter renders canonical filenames from a rename template.
type Formatter struct {
	// Template is the rename pattern, e.g. "{artist} - {title}".
	// Placeholders name logical fields; {year} extracts the year from the
	// resolved date.
	Template string

	// DefaultExt is used when a file has neither an original nor a
	// sniffed extension.
	DefaultExt string
}

// Stem returns the canonical stem for a track, computing and caching it on
// first use so the name every consumer sees is the same.
func (f *Formatter) Stem(t *track.Track) string {
	if stem, ok := t.CachedStem(); ok {
		return stem
	}
	stem := f.render(t)
	t.CacheStem(stem)
	stem, _ = t.CachedStem()
	return stem
}

// render expands the template against the track's fields, sanitizes the
// result, and falls back to the original stem when nothing usable remains.
func (f *Formatter) render(t *track.Track) string {
	expanded := placeholderPattern.ReplaceAllStringFunc(f.Template, func(ph string) string {
		return f.fieldValue(t, ph[1:len(ph)-1])
	})
	stem := Sanitize(expanded)
	if stem == "" {
		return t.OriginalStem()
	}
	return stem
}

func (f *Formatter) fieldValue(t *track.Track, name string) string {
	if name == "year" {
		if date := t.Field(tags.FieldDate); len(date) >= 4 {
			return date[:4]
		}
		return ""
	}
	return t.Field(name)
}

// FileName returns the final canonical filename for a track, including the
// dedup suffix assigned by the conflict resolver and the extension.
func (f *Formatter) FileName(t *track.Track) string {
	name := f.Stem(t)
	if n := t.Suffix(); n > 0 {
		name += suffixFor(n)
	}
	return name + t.Ext(f.DefaultExt)
}

// Sanitize deletes every character outside the filename allow-list and
// trims edge whitespace. The result may be empty.
func Sanitize(s string) string {
	return strings.TrimSpace(unsafeChars.ReplaceAllString(s, ""))
}
