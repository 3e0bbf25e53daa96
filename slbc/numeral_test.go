package slbc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendNumeral_108(t *testing.T) {
	out := AppendNumeral(nil, "108")

	// SANKHYA_START, count 3, then the units digit first: aṣṭa.
	require.Equal(t, SankhyaStart, out[0])
	require.Equal(t, byte(0x03), out[1])
	require.Equal(t, PadaStart, out[2])
	require.Equal(t, []byte{0x40, 0x2A, 0x10, 0x40}, out[3:7]) // aṣṭa

	require.Contains(t, out, Num)

	// The lipi span closes the buffer in visual order.
	require.Equal(t, []byte{Num, 0x01, 0x00, 0x08}, out[len(out)-4:])
}

func TestDecodeSankhya_Roundtrip(t *testing.T) {
	for _, digits := range []string{"0", "7", "42", "108", "1008", "9999999"} {
		out := AppendNumeral(nil, digits)

		decoded, consumed, err := DecodeSankhya(out, 0)
		require.NoError(t, err, "%q", digits)

		want := make([]byte, len(digits))
		for i := range digits {
			want[i] = digits[i] - '0'
		}
		require.Equal(t, want, decoded, "%q", digits)

		// The NUM span follows immediately after the bhāṣā span.
		require.Equal(t, Num, out[consumed], "%q", digits)
	}
}

func TestDecodeNum_Span(t *testing.T) {
	out := AppendNumeral(nil, "108")
	_, consumed, err := DecodeSankhya(out, 0)
	require.NoError(t, err)

	digits, n, err := DecodeNum(out, consumed)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 0, 8}, digits)
	require.Equal(t, consumed+n, len(out))
}

func TestDecodeNum_ImplicitTermination(t *testing.T) {
	// The span ends at the first byte >= 0x10.
	data := []byte{Num, 0x03, 0x07, PadaStart, 0x00}
	digits, n, err := DecodeNum(data, 0)
	require.NoError(t, err)
	require.Equal(t, []byte{3, 7}, digits)
	require.Equal(t, 3, n)
}

func TestDecodeSankhya_ExpectedMarker(t *testing.T) {
	_, _, err := DecodeSankhya([]byte{PadaStart}, 0)

	var emErr *ExpectedMarkerError
	require.ErrorAs(t, err, &emErr)
	require.Equal(t, SankhyaStart, emErr.Expected)
}

func TestDecodeSankhya_InvalidDigitWord(t *testing.T) {
	// A pada whose content matches no vocabulary entry.
	data := []byte{SankhyaStart, 0x01, PadaStart, 0x00, 0x40, PadaEnd}
	_, _, err := DecodeSankhya(data, 0)

	var dwErr *InvalidDigitWordError
	require.ErrorAs(t, err, &dwErr)
	require.Equal(t, 3, dwErr.Offset)
}

func TestDecodeSankhya_UnterminatedPada(t *testing.T) {
	data := []byte{SankhyaStart, 0x01, PadaStart, 0x40, 0x2A}
	_, _, err := DecodeSankhya(data, 0)

	var upErr *UnterminatedDigitPadaError
	require.ErrorAs(t, err, &upErr)
}

func TestDecodeSankhya_TrustsCount(t *testing.T) {
	// Only the declared number of padas is consumed; extra padas are left
	// for the caller.
	one := AppendNumeral(nil, "5")
	extra := append(one[:len(one)-2], PadaStart) // strip NUM span, dangle a pada
	digits, consumed, err := DecodeSankhya(extra, 0)
	require.NoError(t, err)
	require.Equal(t, []byte{5}, digits)
	require.Equal(t, len(extra)-1, consumed)
}
