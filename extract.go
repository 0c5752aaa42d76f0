package charset

import (
	"strings"

	"github.com/chriskillpack/modplayer"
)

// ExtractMessage parses songBytes as a tracker module and returns its
// message text. Format recognition is entirely the parsing library's
// business: anything it rejects comes back as a descriptive error for the
// caller to report.
//
// MOD files have no dedicated message field; authors wrote their messages
// across the sample name slots instead, so the message is the sample names
// in file order, one per line, with trailing blank names dropped. A module
// with nothing in its sample names yields an empty message, which is not
// an error.
func ExtractMessage(songBytes []byte) (string, error) {
	song, err := modplayer.NewSongFromBytes(songBytes)
	if err != nil {
		return "", err
	}

	names := make([]string, len(song.Samples))
	for i := range song.Samples {
		names[i] = song.Samples[i].Name
	}

	return joinMessageLines(names), nil
}

// joinMessageLines assembles sample names into one newline-delimited
// message. Trailing blank names are dropped so an unused sample table
// doesn't turn into a run of empty lines; blanks in the middle stay, they
// are part of the message layout.
func joinMessageLines(names []string) string {
	end := len(names)
	for end > 0 && strings.TrimSpace(names[end-1]) == "" {
		end--
	}
	if end == 0 {
		return ""
	}
	return strings.Join(names[:end], "\n")
}
