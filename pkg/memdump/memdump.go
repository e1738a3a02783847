// Package memdump prints labeled hexadecimal dumps of memory buffers.
//
// The column layout is stable and may be parsed by other tools:
//
//	buf:   00 01 02 03   04 05 06 07   08 09 0a 0b   0c 0d 0e 0f
//	       10 11 12 13
//
// Halfwords and words are read from the buffer in host byte order, as a
// raw memory read would see them.
package memdump

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrShortBuffer = errors.New("memdump: buffer shorter than requested elements")
	ErrUnknownMode = errors.New("memdump: unknown dump mode")
)

// Fdump writes n elements of mem, interpreted according to mode, to w.
// Nothing is written when the request does not fit in mem.
func Fdump(w io.Writer, label string, mem []byte, n int, mode Mode) error {
	lay, ok := mode.layout()
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	width := mode.Width()
	if n < 0 || n > len(mem)/width {
		return fmt.Errorf("%w: %d %s elements need %d bytes, have %d",
			ErrShortBuffer, n, mode, n*width, len(mem))
	}

	var buf bytes.Buffer
	render(&buf, label, lay, n, func(i int) uint64 {
		off := i * width
		switch mode {
		case Half:
			return uint64(binary.NativeEndian.Uint16(mem[off:]))
		case Word:
			return uint64(binary.NativeEndian.Uint32(mem[off:]))
		default:
			return uint64(mem[off])
		}
	})
	_, err := w.Write(buf.Bytes())
	return err
}

// Dump writes the dump to standard output.
func Dump(label string, mem []byte, n int, mode Mode) error {
	return Fdump(os.Stdout, label, mem, n, mode)
}

// Sdump returns the dump as a string.
func Sdump(label string, mem []byte, n int, mode Mode) (string, error) {
	var b strings.Builder
	if err := Fdump(&b, label, mem, n, mode); err != nil {
		return "", err
	}
	return b.String(), nil
}

// FdumpHalfwords dumps every element of half in Half layout.
func FdumpHalfwords(w io.Writer, label string, half []uint16) error {
	return fdumpSlice(w, label, half, Half)
}

// FdumpWords dumps every element of words in Word layout.
func FdumpWords(w io.Writer, label string, words []uint32) error {
	return fdumpSlice(w, label, words, Word)
}

func fdumpSlice[T uint16 | uint32](w io.Writer, label string, elems []T, mode Mode) error {
	lay, _ := mode.layout()
	var buf bytes.Buffer
	render(&buf, label, lay, len(elems), func(i int) uint64 {
		return uint64(elems[i])
	})
	_, err := w.Write(buf.Bytes())
	return err
}

func render(buf *bytes.Buffer, label string, lay layout, n int, elem func(int) uint64) {
	buf.WriteString(label)
	buf.WriteByte(':')
	pad := strings.Repeat(" ", len(label)+lay.indent)
	for i := 0; i < n; i++ {
		if i%lay.perLine == 0 {
			switch {
			case i > 0:
				buf.WriteByte('\n')
				buf.WriteString(pad)
			case lay.perGroup == 0:
				buf.WriteByte(' ')
			}
		}
		if lay.perGroup > 0 {
			if i%lay.perGroup == 0 {
				buf.WriteString("  ")
			}
			buf.WriteByte(' ')
		} else {
			buf.WriteString("  ")
		}
		writeHex(buf, elem(i), lay.digits)
	}
	buf.WriteByte('\n')
}

const hexDigits = "0123456789abcdef"

func writeHex(buf *bytes.Buffer, v uint64, digits int) {
	for shift := (digits - 1) * 4; shift >= 0; shift -= 4 {
		buf.WriteByte(hexDigits[(v>>uint(shift))&0xf])
	}
}
