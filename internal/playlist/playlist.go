// Package playlist writes the extended-M3U output file.
package playlist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/trackmaster/internal/naming"
	"github.com/backmassage/trackmaster/internal/track"
)

// Header is the extended-M3U marker written as the first line.
const Header = "#EXTM3U"

// Write emits one path per track, in order, after the header line. When
// copyDest is non-empty every entry points at the canonical destination
// path, whether or not that copy succeeded; otherwise entries point at the
// original source files.
//
// Entries are relative to the playlist's own directory when that directory
// contains (or equals) the base directory the entries live under, the copy
// destination when copying and scanRoot otherwise. Anywhere else they are
// absolute.
func Write(path string, tracks []*track.Track, f *naming.Formatter, copyDest, scanRoot string) error {
	baseDir := scanRoot
	if copyDest != "" {
		baseDir = copyDest
	}

	playlistDir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return fmt.Errorf("playlist %q: %w", path, err)
	}
	relative := isAncestor(playlistDir, baseDir)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("playlist %q: %w", path, err)
	}

	w := bufio.NewWriter(out)
	fmt.Fprintln(w, Header)
	for _, t := range tracks {
		ref, err := entryPath(t, f, copyDest, playlistDir, relative)
		if err != nil {
			out.Close()
			return fmt.Errorf("playlist %q: %w", path, err)
		}
		fmt.Fprintln(w, ref)
	}

	if err := w.Flush(); err != nil {
		out.Close()
		return fmt.Errorf("playlist %q: %w", path, err)
	}
	return out.Close()
}

func entryPath(t *track.Track, f *naming.Formatter, copyDest, playlistDir string, relative bool) (string, error) {
	ref := t.Path
	if copyDest != "" {
		ref = filepath.Join(copyDest, f.FileName(t))
	}

	abs, err := filepath.Abs(ref)
	if err != nil {
		return "", err
	}
	if !relative {
		return abs, nil
	}
	return filepath.Rel(playlistDir, abs)
}

// isAncestor reports whether dir contains (or equals) child, comparing
// absolute cleaned paths.
func isAncestor(dir, child string) bool {
	absChild, err := filepath.Abs(child)
	if err != nil {
		return false
	}
	dir = filepath.Clean(dir)
	absChild = filepath.Clean(absChild)
	if dir == absChild {
		return true
	}
	return strings.HasPrefix(absChild, dir+string(filepath.Separator))
}
