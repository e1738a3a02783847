package pack

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrSyntax     = errors.New("pack: invalid number")
	ErrOutOfRange = errors.New("pack: value out of range")
)

// ParseUint8 parses s as a byte. Prefixes 0x, 0o and 0b are honoured.
func ParseUint8(s string) (uint8, error) {
	v, err := parseUint(s, 8)
	return uint8(v), err
}

// ParseUint16 parses s as a halfword.
func ParseUint16(s string) (uint16, error) {
	v, err := parseUint(s, 16)
	return uint16(v), err
}

// ParseUint32 parses s as a word.
func ParseUint32(s string) (uint32, error) {
	v, err := parseUint(s, 32)
	return uint32(v), err
}

func parseUint(s string, bits int) (uint64, error) {
	raw := strings.TrimSpace(s)
	v, err := strconv.ParseUint(raw, 0, bits)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q does not fit in %d bits", ErrOutOfRange, raw, bits)
	}
	return 0, fmt.Errorf("%w: %q", ErrSyntax, raw)
}
