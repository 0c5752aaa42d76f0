package charset

// GraphemeCount counts the UTF-8 encoded characters in s for column
// alignment. A byte with the high bit clear, or the first byte of a
// multi-byte sequence (recognized by its run of leading 1 bits), starts a
// counted unit; the continuation bytes that follow are skipped. This is a
// deliberate approximation of grapheme counting: combining marks count as
// their own units, which is acceptable for the messages this deals with.
//
// Malformed input never causes a failure. A truncated trailing sequence
// simply ends the count at the end of the string.
func GraphemeCount(s string) int {
	n := 0
	for i := 0; i < len(s); {
		size := 1
		if s[i]&0x80 != 0 {
			for b := s[i] << 1; size < 4 && b&0x80 != 0; b <<= 1 {
				size++
			}
		}
		i += size
		n++
	}
	return n
}
