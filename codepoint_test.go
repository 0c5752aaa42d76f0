package charset

import (
	"bytes"
	"errors"
	"testing"
)

func TestCodepointRoundTrip(t *testing.T) {
	tests := [][]rune{
		{},
		{'a', 'b', 'c'},
		{'c', 'a', 'f', 0x00E9},
		{0x2502, 0x2524, 0x2561},           // box drawing
		{0x0041, 0x10FFFF, 0x0000, 0xFFFD}, // range extremes
		{0x65E5, 0x672C, 0x8A9E},
	}

	for _, codepoints := range tests {
		encoded, err := EncodeCodepoints(codepoints)
		if err != nil {
			t.Fatalf("Encode of %q failed: %v", string(codepoints), err)
		}
		decoded, err := DecodeCodepoints(encoded)
		if err != nil {
			t.Fatalf("Decode of %q failed: %v", encoded, err)
		}
		if len(decoded) != len(codepoints) {
			t.Fatalf("Expecting %d codepoints back, got %d", len(codepoints), len(decoded))
		}
		for i := range decoded {
			if decoded[i] != codepoints[i] {
				t.Errorf("Codepoint %d: expected %#U, got %#U", i, codepoints[i], decoded[i])
			}
		}
	}
}

func TestByteRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"hello",
		"café ╔═╗",
		"␀☺�",
	}

	for _, s := range tests {
		codepoints, err := DecodeCodepoints([]byte(s))
		if err != nil {
			t.Fatalf("Decode of %q failed: %v", s, err)
		}
		encoded, err := EncodeCodepoints(codepoints)
		if err != nil {
			t.Fatalf("Encode of %q failed: %v", s, err)
		}
		if !bytes.Equal(encoded, []byte(s)) {
			t.Errorf("Expected %q back, got %q", s, encoded)
		}
	}
}

func TestDecodeRejectsMalformedUTF8(t *testing.T) {
	tests := []struct {
		name   string
		in     []byte
		offset int
	}{
		{"bare continuation", []byte{'a', 0x81, 'b'}, 1},
		{"truncated sequence", []byte{'x', 0xC3}, 1},
		{"overlong encoding", []byte{0xC0, 0xAF}, 0},
		{"encoded surrogate", []byte{0xED, 0xA0, 0x80}, 0},
		{"out of range", []byte{0xF5, 0x80, 0x80, 0x80}, 0},
	}

	for _, tt := range tests {
		_, err := DecodeCodepoints(tt.in)
		if err == nil {
			t.Errorf("%s: expected decode to fail", tt.name)
			continue
		}
		var decErr *DecodeError
		if !errors.As(err, &decErr) {
			t.Errorf("%s: expected *DecodeError, got %T", tt.name, err)
			continue
		}
		if decErr.Offset != tt.offset {
			t.Errorf("%s: expected offset %d, got %d", tt.name, tt.offset, decErr.Offset)
		}
	}
}

func TestDecodeAcceptsEncodedReplacementChar(t *testing.T) {
	// U+FFFD itself is a valid codepoint. Only malformed input is an error.
	codepoints, err := DecodeCodepoints([]byte("�"))
	if err != nil {
		t.Fatal(err)
	}
	if len(codepoints) != 1 || codepoints[0] != 0xFFFD {
		t.Errorf("Expected a single U+FFFD, got %q", string(codepoints))
	}
}

func TestEncodeRejectsInvalidScalars(t *testing.T) {
	tests := []struct {
		name string
		in   []rune
	}{
		{"surrogate", []rune{'a', 0xD800}},
		{"above unicode range", []rune{0x110000}},
		{"negative", []rune{-1}},
	}

	for _, tt := range tests {
		_, err := EncodeCodepoints(tt.in)
		if err == nil {
			t.Errorf("%s: expected encode to fail", tt.name)
			continue
		}
		var encErr *EncodeError
		if !errors.As(err, &encErr) {
			t.Errorf("%s: expected *EncodeError, got %T", tt.name, err)
		}
	}
}
