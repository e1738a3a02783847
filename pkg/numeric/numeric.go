// Package numeric provides small generic predicates over numbers.
package numeric

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrCandidateType is returned for a candidate that is not a Go number.
var ErrCandidateType = errors.New("numeric: candidate is not a number")

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsEven reports whether x is divisible by two.
func IsEven[T constraints.Integer](x T) bool {
	return x%2 == 0
}

// IsOdd reports whether x is odd. Negative odd values are odd.
func IsOdd[T constraints.Integer](x T) bool {
	return x%2 != 0
}

// IsBetween reports whether lo <= x <= hi. It is false whenever lo > hi.
func IsBetween[T constraints.Ordered](x, lo, hi T) bool {
	return lo <= x && x <= hi
}

// IsOneOf returns the 1-based position of the first candidate equal to
// probe, or 0 if there is none.
func IsOneOf[T Number](probe T, candidates ...T) int {
	for i, c := range candidates {
		if c == probe {
			return i + 1
		}
	}
	return 0
}

// IsOneOfPromoted is IsOneOf over an untyped candidate list. Each candidate
// is promoted the way a C variadic argument is read back: through float64
// when T is a floating-point type, and through a 32-bit int otherwise, then
// converted to T before comparing. Truncation during promotion is kept, so
// IsOneOfPromoted[uint8](44, 300) reports a match.
func IsOneOfPromoted[T Number](probe T, candidates ...any) (int, error) {
	float := isFloat(probe)
	for i, c := range candidates {
		v, err := promote[T](c, float)
		if err != nil {
			return 0, fmt.Errorf("candidate %d: %w", i+1, err)
		}
		if v == probe {
			return i + 1, nil
		}
	}
	return 0, nil
}

// isFloat reports whether T is a floating-point type, named types included.
func isFloat[T Number](T) bool {
	one := T(1)
	return one/2 != 0
}

func promote[T Number](c any, float bool) (T, error) {
	if float {
		f, ok := asFloat64(c)
		if !ok {
			return 0, fmt.Errorf("%w: %T", ErrCandidateType, c)
		}
		return T(f), nil
	}
	n, ok := asInt64(c)
	if !ok {
		return 0, fmt.Errorf("%w: %T", ErrCandidateType, c)
	}
	return T(int32(n)), nil
}

func asFloat64(c any) (float64, bool) {
	switch v := c.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	if n, ok := asInt64(c); ok {
		return float64(n), true
	}
	return 0, false
}

func asInt64(c any) (int64, bool) {
	switch v := c.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case uintptr:
		return int64(v), true
	case float32:
		return int64(v), true
	case float64:
		return int64(v), true
	}
	return 0, false
}
