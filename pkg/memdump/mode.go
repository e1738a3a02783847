package memdump

import (
	"fmt"
	"strings"
)

// Mode selects the element width used when dumping memory.
type Mode int

const (
	Byte Mode = iota
	Half
	Word
)

// Width returns the element size in bytes, or 0 for an unknown mode.
func (m Mode) Width() int {
	switch m {
	case Byte:
		return 1
	case Half:
		return 2
	case Word:
		return 4
	default:
		return 0
	}
}

func (m Mode) String() string {
	switch m {
	case Byte:
		return "byte"
	case Half:
		return "half"
	case Word:
		return "word"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts byte|half|word and the aliases b, h, w, halfword, 8, 16, 32.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "byte", "b", "8":
		return Byte, nil
	case "half", "halfword", "h", "16":
		return Half, nil
	case "word", "w", "32":
		return Word, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, raw)
	}
}

// layout describes how one mode wraps and groups its elements.
type layout struct {
	perLine  int
	perGroup int
	indent   int // added to len(label) for continuation lines
	digits   int
}

func (m Mode) layout() (layout, bool) {
	switch m {
	case Byte:
		return layout{perLine: 16, perGroup: 4, indent: 1, digits: 2}, true
	case Half:
		return layout{perLine: 8, perGroup: 2, indent: 1, digits: 4}, true
	case Word:
		return layout{perLine: 4, indent: 2, digits: 8}, true
	default:
		return layout{}, false
	}
}
