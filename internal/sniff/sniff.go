// Package sniff classifies files by content, not by extension. The first
// 512 bytes feed the stdlib content-type detector; container signatures the
// detector does not know (FLAC, MP4 audio brands) are matched directly.
package sniff

import (
	"bytes"
	"net/http"
	"os"
	"strings"
)

// mimeExt maps detected audio MIME types to canonical filename extensions.
var mimeExt = map[string]string{
	"audio/mpeg":      ".mp3",
	"audio/flac":      ".flac",
	"audio/x-flac":    ".flac",
	"audio/mp4":       ".m4a",
	"audio/wave":      ".wav",
	"audio/x-wav":     ".wav",
	"audio/aiff":      ".aiff",
	"audio/x-aiff":    ".aiff",
	"application/ogg": ".ogg",
	"audio/ogg":       ".ogg",
}

// m4aBrands are the ftyp major brands that mark an MP4 container as audio.
var m4aBrands = [][]byte{
	[]byte("M4A "),
	[]byte("M4B "),
	[]byte("M4P "),
}

// Type reports the MIME type of the file at path from its leading bytes.
func Type(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if n == 0 && err != nil {
		return "", err
	}
	return detect(buf[:n]), nil
}

func detect(head []byte) string {
	contentType := http.DetectContentType(head)
	if mime, _, ok := strings.Cut(contentType, ";"); ok {
		contentType = mime
	}
	// M4A files list mp42/isom compatible brands, so the generic detector
	// calls them video; the major brand says audio.
	if contentType == "video/mp4" && isM4A(head) {
		return "audio/mp4"
	}
	if contentType != "application/octet-stream" && contentType != "text/plain" {
		return contentType
	}

	switch {
	case bytes.HasPrefix(head, []byte("fLaC")):
		return "audio/flac"
	case bytes.HasPrefix(head, []byte("ID3")):
		return "audio/mpeg"
	case bytes.HasPrefix(head, []byte("OggS")):
		return "application/ogg"
	case len(head) >= 2 && head[0] == 0xFF && head[1]&0xE0 == 0xE0:
		// Bare MPEG frame sync, an untagged MP3.
		return "audio/mpeg"
	case isM4A(head):
		return "audio/mp4"
	}
	return contentType
}

func isM4A(head []byte) bool {
	if len(head) < 12 || !bytes.Equal(head[4:8], []byte("ftyp")) {
		return false
	}
	for _, brand := range m4aBrands {
		if bytes.Equal(head[8:12], brand) {
			return true
		}
	}
	return false
}

// IsAudio reports whether a detected MIME type names an audio container.
// Ogg streams report as application/ogg, so that one is allowed through.
func IsAudio(mime string) bool {
	return strings.HasPrefix(mime, "audio/") || mime == "application/ogg"
}

// ExtensionFor returns the canonical filename extension for an audio MIME
// type, or "" when the type has no known mapping.
func ExtensionFor(mime string) string {
	return mimeExt[mime]
}
