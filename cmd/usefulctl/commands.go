package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/danmuck/usefulgo/internal/observability"
	"github.com/danmuck/usefulgo/pkg/memdump"
	"github.com/danmuck/usefulgo/pkg/numeric"
	"github.com/danmuck/usefulgo/pkg/pack"
	"github.com/danmuck/usefulgo/pkg/version"
)

func (a *app) version(args []string) error {
	if len(args) != 0 {
		return usagef("version takes no arguments")
	}
	_, err := fmt.Fprintln(a.out, version.Banner())
	return err
}

func (a *app) dump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	modeName := fs.String("mode", a.cfg.Dump.Mode.String(), "element width: byte|half|word")
	label := fs.String("label", a.cfg.Dump.Label, "label printed before the dump")
	offset := fs.Int("offset", 0, "byte offset into the file")
	count := fs.Int("count", -1, "number of elements (default: all whole elements)")
	if err := fs.Parse(args); err != nil {
		return usagef("dump: %v", err)
	}
	if fs.NArg() != 1 {
		return usagef("dump: expected exactly one FILE")
	}
	mode, err := memdump.ParseMode(*modeName)
	if err != nil {
		return usagef("dump: %v", err)
	}

	path := fs.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}
	if *offset < 0 || *offset > len(data) {
		return fmt.Errorf("offset %d outside %s (%d bytes)", *offset, path, len(data))
	}
	mem := data[*offset:]
	n := *count
	if n < 0 {
		n = len(mem) / mode.Width()
	}

	if err := memdump.Fdump(a.out, *label, mem, n, mode); err != nil {
		return err
	}
	observability.RecordDump(mode.String(), n)
	a.log.Debug().Str("path", path).Str("mode", mode.String()).Int("elements", n).Msg("dumped")
	return nil
}

func (a *app) pack(args []string) error {
	if len(args) == 0 {
		return usagef("pack: missing kind")
	}
	kind, vals := args[0], args[1:]
	switch kind {
	case "half":
		b, err := parseBytes(vals, 2)
		if err != nil {
			return err
		}
		return a.printf("0x%04x\n", pack.MakeHalfword(b[0], b[1]))
	case "word":
		if len(vals) != 2 {
			return usagef("pack word: expected 2 halfwords, got %d", len(vals))
		}
		hi, err := pack.ParseUint16(vals[0])
		if err != nil {
			return usagef("pack word: %v", err)
		}
		lo, err := pack.ParseUint16(vals[1])
		if err != nil {
			return usagef("pack word: %v", err)
		}
		return a.printf("0x%08x\n", pack.MakeWord(hi, lo))
	case "mixed":
		if len(vals) != 3 {
			return usagef("pack mixed: expected a halfword and 2 bytes, got %d values", len(vals))
		}
		hi, err := pack.ParseUint16(vals[0])
		if err != nil {
			return usagef("pack mixed: %v", err)
		}
		b, err := parseBytes(vals[1:], 2)
		if err != nil {
			return err
		}
		return a.printf("0x%08x\n", pack.MakeWordFromHalfBytes(hi, b[0], b[1]))
	case "bytes":
		b, err := parseBytes(vals, 4)
		if err != nil {
			return err
		}
		return a.printf("0x%08x\n", pack.MakeWordFromBytes(b[0], b[1], b[2], b[3]))
	default:
		return usagef("pack: unknown kind '%s'", kind)
	}
}

func (a *app) unpack(args []string) error {
	if len(args) != 2 {
		return usagef("unpack: expected KIND VALUE")
	}
	kind, raw := args[0], args[1]
	switch kind {
	case "half":
		v, err := pack.ParseUint16(raw)
		if err != nil {
			return usagef("unpack half: %v", err)
		}
		hi, lo := pack.UnpackHalfword(v)
		return a.printf("0x%02x 0x%02x\n", hi, lo)
	case "word":
		v, err := pack.ParseUint32(raw)
		if err != nil {
			return usagef("unpack word: %v", err)
		}
		hi, lo := pack.UnpackWord(v)
		return a.printf("0x%04x 0x%04x\n", hi, lo)
	case "bytes":
		v, err := pack.ParseUint32(raw)
		if err != nil {
			return usagef("unpack bytes: %v", err)
		}
		b0, b1, b2, b3 := pack.UnpackWordBytes(v)
		return a.printf("0x%02x 0x%02x 0x%02x 0x%02x\n", b0, b1, b2, b3)
	default:
		return usagef("unpack: unknown kind '%s'", kind)
	}
}

func (a *app) check(args []string) error {
	if len(args) == 0 {
		return usagef("check: missing predicate")
	}
	pred, vals := args[0], args[1:]
	switch pred {
	case "even", "odd":
		if len(vals) != 1 {
			return usagef("check %s: expected one integer", pred)
		}
		x, err := strconv.ParseInt(vals[0], 0, 64)
		if err != nil {
			return usagef("check %s: invalid integer %q", pred, vals[0])
		}
		if pred == "even" {
			return a.printf("%t\n", numeric.IsEven(x))
		}
		return a.printf("%t\n", numeric.IsOdd(x))
	case "between":
		if len(vals) != 3 {
			return usagef("check between: expected X LO HI")
		}
		nums := make([]float64, len(vals))
		for i, raw := range vals {
			v, err := parseNumber(raw)
			if err != nil {
				return usagef("check between: invalid number %q", raw)
			}
			nums[i] = v
		}
		return a.printf("%t\n", numeric.IsBetween(nums[0], nums[1], nums[2]))
	default:
		return usagef("check: unknown predicate '%s'", pred)
	}
}

func (a *app) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(a.out, format, args...)
	return err
}

func parseBytes(vals []string, want int) ([]uint8, error) {
	if len(vals) != want {
		return nil, usagef("expected %d bytes, got %d", want, len(vals))
	}
	out := make([]uint8, want)
	for i, raw := range vals {
		v, err := pack.ParseUint8(raw)
		if err != nil {
			return nil, usagef("%v", err)
		}
		out[i] = v
	}
	return out, nil
}

// parseNumber accepts integer literals in any base, then decimal floats.
func parseNumber(raw string) (float64, error) {
	if n, err := strconv.ParseInt(raw, 0, 64); err == nil {
		return float64(n), nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	return f, nil
}
