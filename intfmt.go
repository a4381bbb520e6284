package cats

// IntFormat renders integers in an arbitrary digit alphabet with
// optional prefix, suffix, zero padding, and sign policy. The zero
// value is not usable; Digits must hold at least 2 glyphs (the
// radix), and a shorter alphabet panics. Digit glyphs are assumed to
// encode as one byte each.
//
// IntFormat implements [Format] for uint64; use [FmtUint], [FmtInt],
// or [IntFormat.Signed] for the other widths and the signed path.
type IntFormat struct {
	// Prefix and Suffix are written verbatim around the digit field,
	// inside the sign glyph.
	Prefix string
	Suffix string

	// Digits is the ordered digit alphabet. Digits[0] renders the
	// value zero and pads fields shorter than MinLen.
	Digits []rune

	// MinLen is the minimum digit-field width, not counting prefix,
	// suffix, or sign.
	MinLen int

	Sign SignPolicy
}

// Predefined descriptors.
var (
	Decimal = IntFormat{Digits: []rune("0123456789")}
	Hex     = IntFormat{Digits: []rune("0123456789abcdef")}
)

func (f IntFormat) radix() uint64 {
	if len(f.Digits) < 2 {
		panic("cats: digit alphabet needs at least 2 glyphs")
	}
	return uint64(len(f.Digits))
}

func (f IntFormat) signLen() int {
	if f.Sign == SignEmpty {
		return 0
	}
	return 1
}

// digitCount reports how many digits v needs in f's radix; zero takes
// one digit. limit walks successive powers of the radix, and the loop
// condition detects 64-bit wraparound: once limit*radix no longer
// grows, the next power is beyond the 64-bit range and therefore
// beyond v. The last representable power still has to be compared:
// v at or above it needs one more digit. Decimal math.MaxUint64
// exits the loop with limit at 1e19 and takes 20 digits, not 19.
func (f IntFormat) digitCount(v uint64) int {
	n := 1
	radix := f.radix()
	limit := radix
	for radix*limit > limit {
		if limit > v {
			return n
		}
		n++
		limit *= radix
	}
	if limit <= v {
		n++
	}
	return n
}

// reverse returns the value whose base-radix digit sequence is v's
// reversed, read as a field of exactly width digits. Extracting its
// low digits then yields v's digits in left-to-right emission order,
// one modulo per glyph, with no scratch buffer. The width is fixed
// rather than "until v drains": a remainder like decimal 05 must
// reverse to 50, not 5, or its leading zeros come out at the wrong
// end. The result stays below radix^width, so a width within the
// 64-bit digit count cannot overflow.
func (f IntFormat) reverse(v uint64, width int) uint64 {
	var r uint64
	radix := uint64(len(f.Digits))
	for i := 0; i < width; i++ {
		r = r*radix + v%radix
		v /= radix
	}
	return r
}

func (f IntFormat) fieldLen(digits int) int {
	if digits < f.MinLen {
		digits = f.MinLen
	}
	return digits + len(f.Prefix) + len(f.Suffix) + f.signLen()
}

// Len implements [Format] for uint64.
func (f IntFormat) Len(v uint64) int {
	return f.fieldLen(f.digitCount(v))
}

// Write implements [Format] for uint64. Emission order: sign glyph,
// prefix, zero-digit padding, digits, suffix.
func (f IntFormat) Write(v uint64, s Sink) (int, error) {
	digits := f.digitCount(v)
	n := 0

	switch f.Sign {
	case SignPlus:
		w, err := s.WriteRune('+')
		n += w
		if err != nil {
			return n, err
		}
	case SignSpace:
		w, err := s.WriteRune(' ')
		n += w
		if err != nil {
			return n, err
		}
	}

	w, err := s.WriteString(f.Prefix)
	n += w
	if err != nil {
		return n, err
	}

	// Pad with the zero digit until the minimum width is reached.
	for pad := f.MinLen - min(digits, f.MinLen); pad > 0; pad-- {
		w, err := s.WriteRune(f.Digits[0])
		n += w
		if err != nil {
			return n, err
		}
	}

	w, err = f.writeDigits(v, digits, s)
	n += w
	if err != nil {
		return n, err
	}

	w, err = s.WriteString(f.Suffix)
	n += w
	return n, err
}

// writeDigits emits exactly count digits for v, most significant
// first. The leading digit is peeled off by division because
// reversing the full value can exceed 64 bits (the decimal reversal
// of math.MaxUint64 does); the remainder below the leading digit is
// strictly less than radix^(count-1) <= v, so its fixed-width
// reversal always fits. Running both the reversal and the emission a
// fixed count-1 times keeps every zero of the remainder, leading
// (105) and trailing (100) alike. Magnitude zero falls out as a
// single Digits[0].
func (f IntFormat) writeDigits(v uint64, count int, s Sink) (int, error) {
	radix := uint64(len(f.Digits))

	top := uint64(1)
	for i := 1; i < count; i++ {
		top *= radix
	}

	n, err := s.WriteRune(f.Digits[(v/top)%radix])
	if err != nil {
		return n, err
	}

	r := f.reverse(v%top, count-1)
	for i := 1; i < count; i++ {
		w, err := s.WriteRune(f.Digits[r%radix])
		n += w
		if err != nil {
			return n, err
		}
		r /= radix
	}
	return n, nil
}

func (f IntFormat) lenInt(v int64) int {
	n := f.Len(magnitude(v))
	if v < 0 && f.Sign == SignEmpty {
		// The mandatory '-' is not covered by the sign policy.
		n++
	}
	return n
}

// writeInt renders a signed value. Negative values emit a literal '-'
// and then the magnitude under a derived descriptor with the sign
// policy forced to Empty, so Plus and Space never double up a glyph.
func (f IntFormat) writeInt(v int64, s Sink) (int, error) {
	if v >= 0 {
		return f.Write(uint64(v), s)
	}
	n, err := s.WriteRune('-')
	if err != nil {
		return n, err
	}
	g := f
	g.Sign = SignEmpty
	w, err := g.Write(magnitude(v), s)
	return n + w, err
}

// magnitude returns |v| without overflowing on math.MinInt64.
func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

// Signed adapts f into a [Format] for int64.
func (f IntFormat) Signed() Format[int64] { return signedFormat{f} }

type signedFormat struct {
	f IntFormat
}

func (s signedFormat) Len(v int64) int { return s.f.lenInt(v) }

func (s signedFormat) Write(v int64, k Sink) (int, error) { return s.f.writeInt(v, k) }

// FmtUint binds f to an unsigned integer of any width.
func FmtUint[T Unsigned](f IntFormat, v T) Show {
	return Fmt[uint64](f, uint64(v))
}

// FmtInt binds f to a signed integer of any width.
func FmtInt[T Signed](f IntFormat, v T) Show {
	return Fmt[int64](f.Signed(), int64(v))
}
