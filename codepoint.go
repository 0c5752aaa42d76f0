package charset

import (
	"fmt"
	"unicode/utf8"
)

// DecodeError reports malformed UTF-8 in the input to DecodeCodepoints.
type DecodeError struct {
	Offset int // byte offset of the malformed sequence
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence at byte %d", e.Offset)
}

// EncodeError reports a value outside the Unicode scalar range, or a
// surrogate, passed to EncodeCodepoints.
type EncodeError struct {
	Codepoint rune
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("codepoint %#U is not encodable as UTF-8", e.Codepoint)
}

// DecodeCodepoints interprets b strictly as UTF-8 and returns its
// codepoints. Malformed sequences, overlong encodings and encoded
// surrogates are rejected with a *DecodeError rather than replaced.
func DecodeCodepoints(b []byte) ([]rune, error) {
	codepoints := make([]rune, 0, len(b))
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, &DecodeError{Offset: i}
		}
		codepoints = append(codepoints, r)
		i += size
	}
	return codepoints, nil
}

// EncodeCodepoints serializes codepoints to UTF-8. Surrogates and values
// above the Unicode range fail with an *EncodeError.
//
// EncodeCodepoints(DecodeCodepoints(b)) reproduces b for any well-formed
// UTF-8 input, and DecodeCodepoints(EncodeCodepoints(s)) reproduces s for
// any sequence of valid scalar values.
func EncodeCodepoints(codepoints []rune) ([]byte, error) {
	buf := make([]byte, 0, len(codepoints))
	for _, r := range codepoints {
		if !utf8.ValidRune(r) {
			return nil, &EncodeError{Codepoint: r}
		}
		buf = utf8.AppendRune(buf, r)
	}
	return buf, nil
}
