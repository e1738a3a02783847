// Package pack combines and splits fixed-width unsigned integers.
//
// A halfword is 16 bits and a word is 32 bits. Every constructor takes its
// components most-significant first, and every unpacker returns them in the
// same order.
package pack

// MakeHalfword concatenates two bytes, hi in the upper 8 bits.
func MakeHalfword(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// UnpackHalfword returns the upper and lower byte of v.
func UnpackHalfword(v uint16) (hi, lo uint8) {
	return uint8(v >> 8), uint8(v)
}

// MakeWord concatenates two halfwords into a word.
func MakeWord(hi, lo uint16) uint32 {
	return uint32(hi)<<16 | uint32(lo)
}

// MakeWordFromBytes concatenates four bytes into a word.
func MakeWordFromBytes(a, b, c, d uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d)
}

// MakeWordFromHalfBytes concatenates a halfword and two bytes into a word.
func MakeWordFromHalfBytes(hi uint16, b, c uint8) uint32 {
	return uint32(hi)<<16 | uint32(b)<<8 | uint32(c)
}

// UnpackWord returns the upper and lower halfword of v.
func UnpackWord(v uint32) (hi, lo uint16) {
	return uint16(v >> 16), uint16(v)
}

// UnpackWordBytes returns the four bytes of v, most significant first.
func UnpackWordBytes(v uint32) (a, b, c, d uint8) {
	return uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)
}
