package cats

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for programmatic error handling. Both signal a
// broken length/write contract in some [Show] or [Format]
// implementation, never an expected runtime condition.
var (
	ErrLengthMismatch = errors.New("length contract violation")
	ErrInvalidUTF8    = errors.New("invalid utf-8 output")
)

// Cat concatenates elements into a string using a single allocation
// sized to the exact final length.
//
// Pass one sums every element's Len; pass two writes them in order
// into the pre-grown buffer. The result is then validated: the byte
// count produced must equal the declared total, and the bytes must
// decode as UTF-8. Either failure means an element implementation is
// buggy and surfaces as [ErrLengthMismatch] or [ErrInvalidUTF8].
func Cat(elems ...Show) (string, error) {
	total := 0
	for _, e := range elems {
		total += e.Len()
	}

	var b strings.Builder
	b.Grow(total)
	sink := builderSink{&b}

	written := 0
	for _, e := range elems {
		n, err := e.Write(sink)
		if err != nil {
			return "", err
		}
		written += n
	}

	if written != total {
		return "", fmt.Errorf("%w: declared %d bytes, produced %d", ErrLengthMismatch, total, written)
	}
	out := b.String()
	if !utf8.ValidString(out) {
		return "", fmt.Errorf("%w: an element wrote malformed bytes", ErrInvalidUTF8)
	}
	return out, nil
}

// Write renders elements to w in order and returns the total bytes
// written. The first sink failure aborts the remaining elements and
// is returned as-is; the partial byte count is discarded. No UTF-8
// validation happens on this path, since the destination is an
// arbitrary byte sink rather than a text buffer.
func Write(w io.Writer, elems ...Show) (int, error) {
	sink := NewSink(w)
	n := 0
	for _, e := range elems {
		written, err := e.Write(sink)
		if err != nil {
			return 0, err
		}
		n += written
	}
	return n, nil
}

// Print concatenates elements to standard output.
func Print(elems ...Show) (int, error) { return Write(os.Stdout, elems...) }

// Eprint concatenates elements to standard error.
func Eprint(elems ...Show) (int, error) { return Write(os.Stderr, elems...) }
