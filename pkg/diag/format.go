package diag

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Format renders "<program>: <message>\n". The message understands three
// directives, each consuming the next argument:
//
//	%i  signed integer
//	%d  floating-point number
//	%s  string
//
// A '%' followed by any other character prints a single '%' and drops that
// character. Missing or mismatched arguments render as %!i(MISSING) or
// %!i(<value>).
func Format(program, message string, args ...any) string {
	var b strings.Builder
	b.WriteString(program)
	b.WriteString(": ")

	next := 0
	for i := 0; i < len(message); i++ {
		if message[i] != '%' {
			b.WriteByte(message[i])
			continue
		}
		if i+1 >= len(message) {
			b.WriteByte('%')
			break
		}
		verb, size := utf8.DecodeRuneInString(message[i+1:])
		i += size
		switch verb {
		case 'i', 'd', 's':
			if next >= len(args) {
				fmt.Fprintf(&b, "%%!%c(MISSING)", verb)
				continue
			}
			arg := args[next]
			next++
			s, ok := render(verb, arg)
			if !ok {
				fmt.Fprintf(&b, "%%!%c(%#v)", verb, arg)
				continue
			}
			b.WriteString(s)
		default:
			b.WriteByte('%')
		}
	}
	b.WriteByte('\n')
	return b.String()
}

func render(verb rune, arg any) (string, bool) {
	switch verb {
	case 'i':
		return formatInt(arg)
	case 'd':
		return formatFloat(arg)
	default:
		return formatString(arg)
	}
}

func formatInt(arg any) (string, bool) {
	switch v := arg.(type) {
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	}
	return "", false
}

// formatFloat matches the default iostream rendering of a double: six
// significant digits, trailing zeros dropped. Integers are read as doubles.
func formatFloat(arg any) (string, bool) {
	var f float64
	switch v := arg.(type) {
	case float64:
		f = v
	case float32:
		return strconv.FormatFloat(float64(v), 'g', 6, 32), true
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	default:
		return "", false
	}
	return strconv.FormatFloat(f, 'g', 6, 64), true
}

func formatString(arg any) (string, bool) {
	switch v := arg.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case error:
		return v.Error(), true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}
