package tags

import (
	"go.senan.xyz/taglib"
)

// Duration reads the audio duration in seconds from the container's stream
// properties, without decoding the stream.
func Duration(path string) (float64, error) {
	props, err := taglib.ReadProperties(path)
	if err != nil {
		return 0, err
	}
	return props.Length.Seconds(), nil
}
