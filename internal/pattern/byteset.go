package pattern

import "unicode/utf8"

// ByteSet is a 256-bit bitmap of byte values.
type ByteSet [32]byte

// LeadingBytes returns the first UTF-8 byte of every rune in runes.
// A byte in the set is necessary, not sufficient, for a rune to start there.
func LeadingBytes(runes []rune) ByteSet {
	var s ByteSet
	var buf [utf8.UTFMax]byte
	for _, r := range runes {
		utf8.EncodeRune(buf[:], r)
		s.Add(buf[0])
	}
	return s
}

// Add inserts b.
func (s *ByteSet) Add(b byte) {
	s[b/8] |= 1 << (b % 8)
}

// Has reports whether b is in the set.
func (s *ByteSet) Has(b byte) bool {
	return s[b/8]&(1<<(b%8)) != 0
}

// Len returns the number of bytes in the set.
func (s *ByteSet) Len() int {
	n := 0
	for c := 0; c < 256; c++ {
		if s.Has(byte(c)) {
			n++
		}
	}
	return n
}

// Bytes lists the set in ascending order.
func (s *ByteSet) Bytes() []byte {
	var out []byte
	for c := 0; c < 256; c++ {
		if s.Has(byte(c)) {
			out = append(out, byte(c))
		}
	}
	return out
}
