package cats

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitCountDecimal(t *testing.T) {
	t.Parallel()
	cases := map[uint64]int{
		0:                    1,
		1:                    1,
		9:                    1,
		10:                   2,
		99:                   2,
		100:                  3,
		1e9:                  10,
		9999999999999999999:  19,
		10000000000000000000: 20,
		math.MaxUint64:       20,
	}
	for v, want := range cases {
		assert.Equal(t, want, Decimal.digitCount(v), "value %d", v)
	}
}

func TestDigitCountBinaryBoundaries(t *testing.T) {
	t.Parallel()
	// Binary exercises the overflow guard hardest: the running limit
	// wraps after 2^63 and the loop must settle on 64, not spin.
	bin := IntFormat{Digits: []rune("01")}
	assert.Equal(t, 1, bin.digitCount(0))
	assert.Equal(t, 1, bin.digitCount(1))
	assert.Equal(t, 2, bin.digitCount(2))
	assert.Equal(t, 4, bin.digitCount(8))
	assert.Equal(t, 63, bin.digitCount(1<<63-1))
	assert.Equal(t, 64, bin.digitCount(1<<63))
	assert.Equal(t, 64, bin.digitCount(math.MaxUint64))
}

func TestDigitCountHexBoundaries(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 2, Hex.digitCount(255))
	assert.Equal(t, 3, Hex.digitCount(256))
	assert.Equal(t, 16, Hex.digitCount(math.MaxUint64))
}

func TestReverse(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(321), Decimal.reverse(123, 3))
	assert.Equal(t, uint64(1), Decimal.reverse(100, 3))
	assert.Equal(t, uint64(0), Decimal.reverse(0, 1))
	assert.Equal(t, uint64(0xfe), Hex.reverse(0xef, 2))
	// Fixed width keeps leading zeros of the field: 05 reversed over
	// two digits is 50, not 5.
	assert.Equal(t, uint64(50), Decimal.reverse(5, 2))
	assert.Equal(t, uint64(420), Decimal.reverse(24, 3))
}

func TestWriteDigitsKeepsZeros(t *testing.T) {
	t.Parallel()
	// Zeros in every position must survive the reversal round trip:
	// trailing (100), interior right after the leading digit (105,
	// 1024), and runs of both (1000007).
	cases := map[uint64]string{
		100:     "100",
		105:     "105",
		1024:    "1024",
		1000007: "1000007",
		990:     "990",
		909:     "909",
	}
	for v, want := range cases {
		var b strings.Builder
		n, err := Decimal.writeDigits(v, Decimal.digitCount(v), builderSink{&b})
		require.NoError(t, err)
		assert.Equal(t, len(want), n)
		assert.Equal(t, want, b.String(), "value %d", v)
	}
}

func TestWriteDigitsMaxUint64(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	n, err := Decimal.writeDigits(math.MaxUint64, 20, builderSink{&b})
	require.NoError(t, err)
	assert.Equal(t, 20, n)
	assert.Equal(t, "18446744073709551615", b.String())
}

func TestMagnitude(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(0), magnitude(0))
	assert.Equal(t, uint64(7), magnitude(7))
	assert.Equal(t, uint64(7), magnitude(-7))
	assert.Equal(t, uint64(1)<<63, magnitude(math.MinInt64))
	assert.Equal(t, uint64(math.MaxInt64), magnitude(math.MaxInt64))
}

func TestFieldLen(t *testing.T) {
	t.Parallel()
	f := IntFormat{Prefix: "0x", Suffix: "h", Digits: []rune("0123456789abcdef"), MinLen: 4, Sign: SignPlus}
	// max(2, 4) digits + prefix 2 + suffix 1 + sign 1
	assert.Equal(t, 8, f.Len(0xff))
}

func TestWriterSinkEncodesRunes(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := NewSink(&buf)
	n, err := s.WriteRune('世')
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	n, err = s.WriteRune(-1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "世�", buf.String())
}

func TestBuilderSinkMatchesWriterSink(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	var buf bytes.Buffer
	for _, r := range []rune{'a', 'é', '世', '𝄞', -1} {
		bn, err := builderSink{&sb}.WriteRune(r)
		require.NoError(t, err)
		wn, err := NewSink(&buf).WriteRune(r)
		require.NoError(t, err)
		assert.Equal(t, bn, wn, "rune %U", r)
	}
	assert.Equal(t, sb.String(), buf.String())
}
