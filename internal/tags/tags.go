// Package tags resolves logical metadata fields from audio container frames.
//
// Containers alias the same logical field under different frame keys (ID3v2
// frame IDs, Vorbis comment names, MP4 atom names). Each logical field maps
// to an explicit ordered alias list; the first key present with a non-empty
// value wins.
package tags

import (
	"strings"
)

// Logical field names. These are the keys of a Track's field map and the
// placeholder names recognized by the rename template.
const (
	FieldTitle    = "title"
	FieldArtist   = "artist"
	FieldAlbum    = "album"
	FieldTrack    = "track"
	FieldDate     = "date"
	FieldGenre    = "genre"
	FieldComposer = "composer"
	FieldLabel    = "label"
	FieldArtists  = "artists"
)

// FieldNames lists every logical field in resolution order.
var FieldNames = []string{
	FieldTitle,
	FieldArtist,
	FieldAlbum,
	FieldTrack,
	FieldDate,
	FieldGenre,
	FieldComposer,
	FieldLabel,
	FieldArtists,
}

// fieldAliases maps each logical field to the ordered list of underlying
// frame keys consulted during resolution: ID3v2.3/2.4 frame IDs first, then
// Vorbis comment names, then MP4 atom names.
var fieldAliases = map[string][]string{
	FieldTitle:    {"TIT2", "TITLE", "©NAM"},
	FieldArtist:   {"TPE1", "ARTIST", "©ART"},
	FieldAlbum:    {"TALB", "ALBUM", "©ALB"},
	FieldTrack:    {"TRCK", "TRACKNUMBER", "TRKN", "TRACK"},
	FieldDate:     {"TDRC", "DATE", "©DAY", "ORIGINALDATE", "YEAR", "TYER"},
	FieldGenre:    {"TCON", "GENRE", "©GEN", "GNRE"},
	FieldComposer: {"TCOM", "COMPOSER", "©WRT"},
	FieldLabel:    {"TPUB", "LABEL", "ORGANIZATION", "PUBLISHER"},
	FieldArtists:  {"ARTISTS", "TXXX:ARTISTS"},
}

// dateTextKeys are the date aliases consulted as free text, in the alias
// map's declared order. TYER is excluded: it is year-only and resolves
// through structured date parts instead.
var dateTextKeys = textDateAliases()

func textDateAliases() []string {
	keys := make([]string, 0, len(fieldAliases[FieldDate]))
	for _, k := range fieldAliases[FieldDate] {
		if k == "TYER" {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

// Frames is a normalized view of a container's raw tag frames: uppercase
// keys, one or more values per key.
type Frames map[string][]string

// Add appends a value under key, dropping empty values.
func (fr Frames) Add(key, value string) {
	value = strings.TrimSpace(value)
	if key == "" || value == "" {
		return
	}
	fr[key] = append(fr[key], value)
}

// First returns the first non-empty value for any of the given keys, in key
// order. Resolution by priority list, not by equality.
func (fr Frames) First(keys ...string) string {
	for _, key := range keys {
		if values, ok := fr[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// NormKey canonicalizes a raw frame key: uppercase, with the raw 0xA9 byte
// MP4 atoms use rewritten to the © rune so alias lists can spell it.
func NormKey(key string) string {
	if strings.HasPrefix(key, "\xa9") {
		key = "©" + key[1:]
	}
	return strings.ToUpper(strings.TrimSpace(key))
}

// DateParts is a structured date with independently optional components.
// Zero means absent.
type DateParts struct {
	Year  int
	Month int
	Day   int
}

// Parse is the normalized result of reading one container.
type Parse struct {
	Frames   Frames
	FileType string     // Container type reported by the parser ("MP3", "FLAC", ...).
	Date     *DateParts // Structured date, when the container carries one.
}
