// Package cats concatenates heterogeneous values into strings using a
// single allocation sized to the exact final length.
//
// Every element knows its encoded byte length before producing a
// single byte, so [Cat] runs a two-phase protocol: sum lengths,
// allocate once, write once. There is no incremental buffer growth
// and no per-append re-validation, which matters on hot paths that
// build many small strings (diagnostics, serialization, logging).
//
// # Elements
//
// An element is any [Show] value. Constructors cover the primitives:
//
//   - [Str] — string, raw byte copy
//   - [Rune] — one Unicode scalar, UTF-8 encoded
//   - [Uint], [Int] — integers of any width, decimal
//   - [Opt] — nil pointer renders nothing
//   - [Seq] — several elements grouped as one
//
// A [Format] is a reusable descriptor that renders values of some
// other type; [Fmt] binds one to a value, turning the pair into an
// element:
//
//	s, err := cats.Cat(
//		cats.Str("("), cats.Rune('a'), cats.Str(") "),
//		cats.Int(12), cats.Str(" + "), cats.Int(7),
//		cats.Str(" = "), cats.Int(19),
//	)
//	// s == "(a) 12 + 7 = 19"
//
// # Integer formatting
//
// [IntFormat] renders integers in an arbitrary digit alphabet with
// optional prefix, suffix, zero padding, and a [SignPolicy]. The
// alphabet's length is the radix; [Hex] and [Decimal] come
// predefined:
//
//	cats.Cat(cats.Str("0x"), cats.FmtUint(cats.Hex, byte(255)))  // "0xff"
//
// # The contract
//
// A Show or Format implementation must write exactly the bytes its
// length phase declared. [Cat] enforces this after the write pass:
// a count divergence returns [ErrLengthMismatch] and malformed UTF-8
// returns [ErrInvalidUTF8]. Both indicate a bug in an element, not a
// runtime condition to handle.
//
// # Destinations
//
// [Cat] targets an owned string. [Write] targets any io.Writer
// through a [Sink] adapter and reports the total bytes written;
// [Print] and [Eprint] are one-liners over stdout and stderr, and
// [WriteIter]/[WriteChan] drain an iterator or channel of elements
// as they arrive. Sink failures abort the remaining pipeline and
// propagate unchanged; retry policy belongs to the sink.
//
// Formatters are read-only values and safe to share across
// goroutines. A shared sink is not; serialize access externally.
package cats
