package tags

import "strings"

// Resolve maps a parsed container to the logical field set. Every field in
// FieldNames gets an entry; fields the container does not carry resolve to
// the empty string.
func Resolve(p *Parse) map[string]string {
	fields := make(map[string]string, len(FieldNames))
	for _, name := range FieldNames {
		fields[name] = resolveField(p, name)
	}
	return fields
}

func resolveField(p *Parse, name string) string {
	switch name {
	case FieldTrack:
		return TrackNumber(p.Frames.First(fieldAliases[name]...))
	case FieldDate:
		if raw := p.Frames.First(dateTextKeys...); raw != "" {
			return NormalizeDate(raw)
		}
		return NormalizeDateParts(p.Date)
	default:
		return p.Frames.First(fieldAliases[name]...)
	}
}

// TrackNumber strips the "/total" part of a track frame ("3/12" becomes
// "3") and trims whitespace. Frames with no slash pass through.
func TrackNumber(raw string) string {
	if i := strings.IndexByte(raw, '/'); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSpace(raw)
}
