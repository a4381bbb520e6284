package cats

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Sink is a destination for the write phase. Both methods return the
// number of bytes accepted; a short or failed write aborts the caller.
// Sinks are borrowed for the duration of a single call and never
// retained.
type Sink interface {
	WriteString(s string) (int, error)
	WriteRune(r rune) (int, error)
}

// NewSink adapts an io.Writer into a [Sink]. Runes are UTF-8 encoded
// through a small stack buffer; invalid scalar values encode as
// U+FFFD.
func NewSink(w io.Writer) Sink {
	return writerSink{w}
}

type writerSink struct {
	w io.Writer
}

func (s writerSink) WriteString(str string) (int, error) {
	return io.WriteString(s.w, str)
}

func (s writerSink) WriteRune(r rune) (int, error) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return s.w.Write(buf[:n])
}

// builderSink backs the in-memory path of [Cat]. strings.Builder
// writes never fail, so element errors can only come from external
// sinks.
type builderSink struct {
	b *strings.Builder
}

func (s builderSink) WriteString(str string) (int, error) {
	return s.b.WriteString(str)
}

func (s builderSink) WriteRune(r rune) (int, error) {
	return s.b.WriteRune(r)
}
