package pack

import (
	"errors"
	"testing"
)

func TestMakeHalfwordOrder(t *testing.T) {
	if got := MakeHalfword(0x12, 0x34); got != 0x1234 {
		t.Fatalf("unexpected halfword: %#04x", got)
	}
	if got := MakeHalfword(0xff, 0x00); got != 0xff00 {
		t.Fatalf("unexpected halfword: %#04x", got)
	}
}

func TestHalfwordRoundTripAllBytes(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			hi, lo := UnpackHalfword(MakeHalfword(uint8(a), uint8(b)))
			if hi != uint8(a) || lo != uint8(b) {
				t.Fatalf("round trip (%#02x, %#02x) -> (%#02x, %#02x)", a, b, hi, lo)
			}
		}
	}
}

func TestMakeWordVariants(t *testing.T) {
	cases := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"halfwords", MakeWord(0xdead, 0xbeef), 0xdeadbeef},
		{"bytes", MakeWordFromBytes(0xde, 0xad, 0xbe, 0xef), 0xdeadbeef},
		{"half-bytes", MakeWordFromHalfBytes(0xdead, 0xbe, 0xef), 0xdeadbeef},
		{"high-bit byte", MakeWordFromBytes(0x80, 0, 0, 1), 0x80000001},
		{"zero", MakeWord(0, 0), 0},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s: got %#08x want %#08x", tc.name, tc.got, tc.want)
		}
	}
}

func TestWordRoundTripHalfwords(t *testing.T) {
	samples := []uint16{0, 1, 0x7f, 0x80, 0xff, 0x100, 0x1234, 0x7fff, 0x8000, 0xfffe, 0xffff}
	for _, a := range samples {
		for _, b := range samples {
			hi, lo := UnpackWord(MakeWord(a, b))
			if hi != a || lo != b {
				t.Fatalf("round trip (%#04x, %#04x) -> (%#04x, %#04x)", a, b, hi, lo)
			}
		}
	}
	// every halfword in each position
	for v := 0; v <= 0xffff; v++ {
		hi, lo := UnpackWord(MakeWord(uint16(v), uint16(0xffff-v)))
		if hi != uint16(v) || lo != uint16(0xffff-v) {
			t.Fatalf("round trip failed for %#04x", v)
		}
	}
}

func TestWordRoundTripBytes(t *testing.T) {
	for v := 0; v < 256; v++ {
		a, b, c, d := uint8(v), uint8(v*7), uint8(255-v), uint8(v^0x5a)
		ga, gb, gc, gd := UnpackWordBytes(MakeWordFromBytes(a, b, c, d))
		if ga != a || gb != b || gc != c || gd != d {
			t.Fatalf("round trip (%d,%d,%d,%d) -> (%d,%d,%d,%d)", a, b, c, d, ga, gb, gc, gd)
		}
	}
}

func TestMixedWordAgreesWithByteForm(t *testing.T) {
	hi, lo := UnpackHalfword(0xcafe)
	if MakeWordFromHalfBytes(0x1234, hi, lo) != MakeWordFromBytes(0x12, 0x34, hi, lo) {
		t.Fatalf("mixed and byte forms disagree")
	}
}

func TestPackingIsIdempotent(t *testing.T) {
	if MakeWord(0x0102, 0x0304) != MakeWord(0x0102, 0x0304) {
		t.Fatalf("repeated calls differ")
	}
	a1, b1 := UnpackWord(0x01020304)
	a2, b2 := UnpackWord(0x01020304)
	if a1 != a2 || b1 != b2 {
		t.Fatalf("repeated unpack differs")
	}
}

func TestParseUint(t *testing.T) {
	if v, err := ParseUint8("0xff"); err != nil || v != 0xff {
		t.Fatalf("parse 0xff: %v %v", v, err)
	}
	if v, err := ParseUint16(" 4660 "); err != nil || v != 0x1234 {
		t.Fatalf("parse 4660: %v %v", v, err)
	}
	if v, err := ParseUint32("0b101"); err != nil || v != 5 {
		t.Fatalf("parse 0b101: %v %v", v, err)
	}
	if _, err := ParseUint8("256"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := ParseUint16("zz"); !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax, got %v", err)
	}
	if _, err := ParseUint32("-1"); !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax, got %v", err)
	}
}
