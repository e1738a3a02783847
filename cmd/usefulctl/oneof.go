package main

import (
	"flag"
	"io"
	"strconv"

	"github.com/danmuck/usefulgo/pkg/numeric"
)

func (a *app) oneof(args []string) error {
	fs := flag.NewFlagSet("oneof", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	typ := fs.String("type", "i32", "probe type: i8|i16|i32|i64|u8|u16|u32|u64|f32|f64")
	if err := fs.Parse(args); err != nil {
		return usagef("oneof: %v", err)
	}
	if fs.NArg() < 1 {
		return usagef("oneof: missing PROBE")
	}
	raw, rest := fs.Arg(0), fs.Args()[1:]

	float := *typ == "f32" || *typ == "f64"
	cands := make([]any, len(rest))
	for i, s := range rest {
		c, err := parseCandidate(s, float)
		if err != nil {
			return usagef("oneof: invalid candidate %q", s)
		}
		cands[i] = c
	}

	idx, err := matchProbe(*typ, raw, cands)
	if err != nil {
		return err
	}
	return a.printf("%d\n", idx)
}

// parseCandidate keeps candidates untyped so they go through the same
// promotion a variadic C argument would.
func parseCandidate(s string, float bool) (any, error) {
	if float {
		return strconv.ParseFloat(s, 64)
	}
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return n, nil
	}
	return strconv.ParseUint(s, 0, 64)
}

func matchProbe(typ, raw string, cands []any) (int, error) {
	switch typ {
	case "i8":
		v, err := strconv.ParseInt(raw, 0, 8)
		return match(int8(v), err, raw, cands)
	case "i16":
		v, err := strconv.ParseInt(raw, 0, 16)
		return match(int16(v), err, raw, cands)
	case "i32":
		v, err := strconv.ParseInt(raw, 0, 32)
		return match(int32(v), err, raw, cands)
	case "i64":
		v, err := strconv.ParseInt(raw, 0, 64)
		return match(v, err, raw, cands)
	case "u8":
		v, err := strconv.ParseUint(raw, 0, 8)
		return match(uint8(v), err, raw, cands)
	case "u16":
		v, err := strconv.ParseUint(raw, 0, 16)
		return match(uint16(v), err, raw, cands)
	case "u32":
		v, err := strconv.ParseUint(raw, 0, 32)
		return match(uint32(v), err, raw, cands)
	case "u64":
		v, err := strconv.ParseUint(raw, 0, 64)
		return match(v, err, raw, cands)
	case "f32":
		v, err := strconv.ParseFloat(raw, 32)
		return match(float32(v), err, raw, cands)
	case "f64":
		v, err := strconv.ParseFloat(raw, 64)
		return match(v, err, raw, cands)
	default:
		return 0, usagef("oneof: unknown type '%s'", typ)
	}
}

func match[T numeric.Number](probe T, parseErr error, raw string, cands []any) (int, error) {
	if parseErr != nil {
		return 0, usagef("oneof: invalid probe %q", raw)
	}
	return numeric.IsOneOfPromoted(probe, cands...)
}
