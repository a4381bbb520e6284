package cats

import "unicode/utf8"

// Show is implemented by values that know their own rendered form.
//
// The contract is strict: Write must produce exactly Len bytes for
// equivalent input, every time. [Cat] sizes its one allocation from
// the summed lengths before any byte exists, so a divergence is a
// programming error, not a runtime condition.
type Show interface {
	// Len reports how many bytes the UTF-8 representation takes.
	Len() int

	// Write renders the value to s and returns the bytes written,
	// which must equal Len.
	Write(s Sink) (int, error)
}

// Unsigned covers the unsigned integer widths accepted by [Uint] and
// [FmtUint]; all of them render through the canonical uint64 path.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed covers the signed integer widths accepted by [Int] and
// [FmtInt].
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Str renders a string as its raw bytes. The source is assumed to be
// valid UTF-8 already; nothing is re-encoded.
func Str(s string) Show { return strShow(s) }

type strShow string

func (v strShow) Len() int { return len(v) }

func (v strShow) Write(s Sink) (int, error) { return s.WriteString(string(v)) }

// Rune renders a single Unicode scalar value, 1 to 4 bytes. Invalid
// scalars normalize to U+FFFD in both phases, keeping length and
// output consistent.
func Rune(r rune) Show { return runeShow(r) }

type runeShow rune

func (v runeShow) Len() int {
	if n := utf8.RuneLen(rune(v)); n > 0 {
		return n
	}
	return utf8.RuneLen(utf8.RuneError)
}

func (v runeShow) Write(s Sink) (int, error) { return s.WriteRune(rune(v)) }

// Uint renders an unsigned integer in decimal.
func Uint[T Unsigned](v T) Show { return FmtUint(Decimal, v) }

// Int renders a signed integer in decimal.
func Int[T Signed](v T) Show { return FmtInt(Decimal, v) }

// Opt renders the pointed-to value, or nothing at all when v is nil.
func Opt[T Show](v *T) Show { return optShow[T]{v} }

type optShow[T Show] struct {
	v *T
}

func (o optShow[T]) Len() int {
	if o.v == nil {
		return 0
	}
	return (*o.v).Len()
}

func (o optShow[T]) Write(s Sink) (int, error) {
	if o.v == nil {
		return 0, nil
	}
	return (*o.v).Write(s)
}

// Seq groups elements into one Show, rendered back to back. It lets a
// compound value pass through anywhere a single element is expected,
// such as the inner value of [Repeat].
func Seq(elems ...Show) Show { return seqShow(elems) }

type seqShow []Show

func (v seqShow) Len() int {
	total := 0
	for _, e := range v {
		total += e.Len()
	}
	return total
}

func (v seqShow) Write(s Sink) (int, error) {
	n := 0
	for _, e := range v {
		w, err := e.Write(s)
		n += w
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
