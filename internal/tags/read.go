package tags

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
	"go.senan.xyz/taglib"
)

// Read parses the container at path into a normalized frame map.
// dhowden/tag is the primary parser; on failure the MP3-specific id3v2
// reader is tried (dhowden has trouble with some UTF-16 encoded ID3 frames),
// then taglib as the last resort for everything else.
func Read(path string) (*Parse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		if p, id3Err := readWithID3v2(path); id3Err == nil {
			return p, nil
		}
		if p, tlErr := readWithTaglib(path); tlErr == nil {
			return p, nil
		}
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	return fromMetadata(m), nil
}

// fromMetadata converts a dhowden metadata object into a Parse: the raw
// frame map drives alias resolution, the typed accessors backfill fields
// the raw stringification could not surface (e.g. MP4 binary track atoms).
func fromMetadata(m tag.Metadata) *Parse {
	p := &Parse{
		Frames:   make(Frames),
		FileType: string(m.FileType()),
	}

	for key, value := range m.Raw() {
		addRawFrame(p.Frames, key, value)
	}

	p.Date = structuredDate(p.Frames, m.Year())

	ensure(p.Frames, "TITLE", fieldAliases[FieldTitle], m.Title())
	ensure(p.Frames, "ARTIST", fieldAliases[FieldArtist], m.Artist())
	ensure(p.Frames, "ALBUM", fieldAliases[FieldAlbum], m.Album())
	ensure(p.Frames, "GENRE", fieldAliases[FieldGenre], m.Genre())
	ensure(p.Frames, "COMPOSER", fieldAliases[FieldComposer], m.Composer())
	if num, total := m.Track(); num > 0 {
		v := strconv.Itoa(num)
		if total > 0 {
			v = fmt.Sprintf("%d/%d", num, total)
		}
		ensure(p.Frames, "TRACKNUMBER", fieldAliases[FieldTrack], v)
	}

	return p
}

// addRawFrame stringifies one raw frame value into the map. Binary frames
// (artwork) and unknown structs are skipped.
func addRawFrame(fr Frames, key string, value interface{}) {
	switch v := value.(type) {
	case string:
		fr.Add(NormKey(key), v)
	case int:
		fr.Add(NormKey(key), strconv.Itoa(v))
	case *tag.Comm:
		// TXXX/COMM style frames carry a description naming the field.
		k := NormKey(key)
		if v.Description != "" {
			k = k + ":" + NormKey(v.Description)
		}
		fr.Add(k, v.Text)
	case *tag.Picture:
		// Embedded artwork, not a text frame.
	}
}

// ensure backfills an accessor-provided value when none of the aliases
// resolved from the raw frames.
func ensure(fr Frames, key string, aliases []string, value string) {
	if value == "" || fr.First(aliases...) != "" {
		return
	}
	fr.Add(key, value)
}

// structuredDate derives date parts for containers that store the date as
// separate components: ID3v2.3 TYER (year) plus TDAT (DDMM), or the
// parser's bare year when no textual date frame exists.
func structuredDate(fr Frames, accessorYear int) *DateParts {
	if year := fr.First("TYER"); year != "" {
		y, err := strconv.Atoi(strings.TrimSpace(year))
		if err != nil {
			return nil
		}
		p := &DateParts{Year: y}
		if tdat := fr.First("TDAT"); len(tdat) == 4 {
			if d, err := strconv.Atoi(tdat[0:2]); err == nil {
				p.Day = d
			}
			if mo, err := strconv.Atoi(tdat[2:4]); err == nil {
				p.Month = mo
			}
		}
		return p
	}
	if fr.First(dateTextKeys...) == "" && accessorYear != 0 {
		return &DateParts{Year: accessorYear}
	}
	return nil
}

// readWithID3v2 reads MP3 metadata using only the id3v2 library, used when
// dhowden/tag fails on the file.
func readWithID3v2(path string) (*Parse, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	p := &Parse{
		Frames:   make(Frames),
		FileType: "MP3",
	}

	for id, frames := range id3tag.AllFrames() {
		for _, frame := range frames {
			switch f := frame.(type) {
			case id3v2.TextFrame:
				p.Frames.Add(NormKey(id), f.Text)
			case id3v2.UserDefinedTextFrame:
				p.Frames.Add("TXXX:"+NormKey(f.Description), f.Value)
			}
		}
	}

	p.Date = structuredDate(p.Frames, 0)
	return p, nil
}

// readWithTaglib is the last-resort reader; taglib already normalizes frame
// keys to the Vorbis-style names the alias lists include.
func readWithTaglib(path string) (*Parse, error) {
	raw, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}

	p := &Parse{Frames: make(Frames)}
	for key, values := range raw {
		for _, v := range values {
			p.Frames.Add(NormKey(key), v)
		}
	}
	return p, nil
}
