package cats

// Format describes how to render values of type T. A formatter is an
// immutable descriptor and may be shared freely across calls and
// goroutines; it never owns the value it formats.
//
// The same length/write contract as [Show] applies: Write must
// produce exactly Len(v) bytes for every v.
type Format[T any] interface {
	Len(v T) int
	Write(v T, s Sink) (int, error)
}

// Fmt binds a formatter to a value, producing an element for [Cat]
// and [Write].
func Fmt[T any](f Format[T], v T) Show { return bound[T]{f, v} }

type bound[T any] struct {
	f Format[T]
	v T
}

func (b bound[T]) Len() int { return b.f.Len(b.v) }

func (b bound[T]) Write(s Sink) (int, error) { return b.f.Write(b.v, s) }

// SignPolicy selects what precedes a non-negative numeral. Negative
// values always get a '-'. Sign glyphs are exactly one byte.
type SignPolicy int

const (
	// SignEmpty prints nothing before non-negative numbers, as in "372".
	SignEmpty SignPolicy = iota

	// SignPlus prints '+' before non-negative numbers, as in "+372".
	SignPlus

	// SignSpace prints ' ' before non-negative numbers, as in " 372".
	SignSpace
)
