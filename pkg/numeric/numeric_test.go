package numeric

import (
	"errors"
	"testing"
)

func TestParity(t *testing.T) {
	cases := []struct {
		x    int
		even bool
	}{
		{0, true}, {1, false}, {2, true}, {7, false}, {-2, true}, {-3, false},
	}
	for _, tc := range cases {
		if IsEven(tc.x) != tc.even {
			t.Fatalf("IsEven(%d) = %v", tc.x, IsEven(tc.x))
		}
		if IsOdd(tc.x) == tc.even {
			t.Fatalf("IsOdd(%d) = %v", tc.x, IsOdd(tc.x))
		}
	}
	if !IsOdd(uint8(255)) || !IsEven(uint64(1<<63)) {
		t.Fatalf("unsigned parity mismatch")
	}
}

func TestIsBetween(t *testing.T) {
	cases := []struct {
		x, lo, hi int
		want      bool
	}{
		{5, 1, 10, true},
		{1, 1, 10, true},
		{10, 1, 10, true},
		{0, 1, 10, false},
		{11, 1, 10, false},
		{5, 5, 5, true},
		{5, 10, 1, false},
		{-3, -5, -1, true},
	}
	for _, tc := range cases {
		if got := IsBetween(tc.x, tc.lo, tc.hi); got != tc.want {
			t.Fatalf("IsBetween(%d, %d, %d) = %v want %v", tc.x, tc.lo, tc.hi, got, tc.want)
		}
	}
	if !IsBetween(0.5, 0.0, 1.0) || IsBetween(1.5, 0.0, 1.0) {
		t.Fatalf("float range mismatch")
	}
	if !IsBetween("b", "a", "c") {
		t.Fatalf("string range mismatch")
	}
}

func TestIsOneOf(t *testing.T) {
	if got := IsOneOf(5, 1, 5, 9); got != 2 {
		t.Fatalf("IsOneOf(5, 1, 5, 9) = %d", got)
	}
	if got := IsOneOf(4, 1, 5, 9); got != 0 {
		t.Fatalf("IsOneOf(4, 1, 5, 9) = %d", got)
	}
	if got := IsOneOf(7, 7, 7); got != 1 {
		t.Fatalf("expected first match, got %d", got)
	}
	if got := IsOneOf(3); got != 0 {
		t.Fatalf("expected no match for empty candidates, got %d", got)
	}
	if got := IsOneOf(2.5, 1.0, 2.5); got != 2 {
		t.Fatalf("float match = %d", got)
	}
}

func TestIsOneOfPromotedIntegerTruncation(t *testing.T) {
	got, err := IsOneOfPromoted[uint8](44, 1, 300)
	if err != nil {
		t.Fatalf("promoted: %v", err)
	}
	if got != 2 {
		t.Fatalf("expected 300 to truncate to 44, got index %d", got)
	}

	// candidates pass through a 32-bit int
	got, err = IsOneOfPromoted[int64](0, int64(1)<<32)
	if err != nil {
		t.Fatalf("promoted: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected 1<<32 to truncate to 0, got index %d", got)
	}
}

type meters float64

type level int16

func TestIsOneOfPromotedFloat(t *testing.T) {
	got, err := IsOneOfPromoted[float32](0.1, 0.3, float64(0.1), 7)
	if err != nil {
		t.Fatalf("promoted: %v", err)
	}
	if got != 2 {
		t.Fatalf("expected match at 2, got %d", got)
	}
	got, err = IsOneOfPromoted(7.0, 0.3, 7)
	if err != nil || got != 2 {
		t.Fatalf("expected integer candidate to promote to float: %d %v", got, err)
	}

	// named float types promote through float64 too
	got, err = IsOneOfPromoted[meters](2.5, 2.5)
	if err != nil || got != 1 {
		t.Fatalf("named float: expected match at 1, got %d %v", got, err)
	}
	got, err = IsOneOfPromoted[meters](2.0, 2.7)
	if err != nil || got != 0 {
		t.Fatalf("named float: 2.7 must not truncate to 2, got %d %v", got, err)
	}

	// named integer types keep the int promotion
	got, err = IsOneOfPromoted[level](2, 2.7)
	if err != nil || got != 1 {
		t.Fatalf("named int: expected 2.7 to truncate to 2, got %d %v", got, err)
	}
}

func TestIsOneOfPromotedRejectsNonNumbers(t *testing.T) {
	_, err := IsOneOfPromoted(1, 2, "3")
	if !errors.Is(err, ErrCandidateType) {
		t.Fatalf("expected ErrCandidateType, got %v", err)
	}
	got, err := IsOneOfPromoted(2, 2, "3")
	if err != nil || got != 1 {
		t.Fatalf("match before bad candidate should win: %d %v", got, err)
	}
}
