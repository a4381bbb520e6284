package cats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment controls where pad spaces go.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// PadFormat pads a string with spaces up to a minimum display width.
// Width is measured in terminal columns rather than bytes (wide CJK
// runes count double), so mixed-width text lines up visually. Strings
// at or over the width pass through untouched.
//
// The length contract holds because pad glyphs are single-byte
// spaces: Len is exactly len(s) plus the pad count.
type PadFormat struct {
	Width int
	Align Alignment
}

func (f PadFormat) padding(s string) int {
	pad := f.Width - runewidth.StringWidth(s)
	if pad < 0 {
		return 0
	}
	return pad
}

// Len implements [Format] for string.
func (f PadFormat) Len(s string) int { return len(s) + f.padding(s) }

// Write implements [Format] for string.
func (f PadFormat) Write(s string, k Sink) (int, error) {
	pad := f.padding(s)
	var left, right int
	switch f.Align {
	case AlignRight:
		left = pad
	case AlignCenter:
		left = pad / 2
		right = pad - left
	default:
		right = pad
	}

	n := 0
	if left > 0 {
		w, err := k.WriteString(strings.Repeat(" ", left))
		n += w
		if err != nil {
			return n, err
		}
	}
	w, err := k.WriteString(s)
	n += w
	if err != nil {
		return n, err
	}
	if right > 0 {
		w, err := k.WriteString(strings.Repeat(" ", right))
		n += w
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Pad binds s to a [PadFormat].
func Pad(s string, width int, align Alignment) Show {
	return Fmt[string](PadFormat{Width: width, Align: align}, s)
}
