package slbc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeIAST_Dharma(t *testing.T) {
	got, err := EncodeIAST("dharma")
	require.NoError(t, err)

	// PADA_START dh a r m a PADA_END
	want := []byte{0x26, 0x1B, 0x40, 0x33, 0x24, 0x40, 0x2E}
	require.Equal(t, want, got)
}

func TestEncodeIAST_TwoWords(t *testing.T) {
	got, err := EncodeIAST("na ca")
	require.NoError(t, err)

	// PADA_START n a PADA_END SPACE PADA_START c a PADA_END
	want := []byte{0x26, 0x1C, 0x40, 0x2E, 0x1F, 0x26, 0x08, 0x40, 0x2E}
	require.Equal(t, want, got)
}

func TestEncodeIAST_DandaClosesPada(t *testing.T) {
	got, err := EncodeIAST("a|")
	require.NoError(t, err)
	require.Equal(t, []byte{PadaStart, 0x40, PadaEnd, Danda}, got)

	got, err = EncodeIAST("a||")
	require.NoError(t, err)
	require.Equal(t, []byte{PadaStart, 0x40, PadaEnd, DoubleDanda}, got)
}

func TestEncodeIAST_AvagrahaStaysInline(t *testing.T) {
	// The avagraha is part of the word unit, not a boundary.
	got, err := EncodeIAST("so 'pi")
	require.NoError(t, err)
	want := []byte{
		PadaStart, 0x2B, 0x89, PadaEnd,
		Space,
		PadaStart, Avagraha, 0x20, 0x44, PadaEnd,
	}
	require.Equal(t, want, got)
}

func TestEncodeIAST_NumeralClosesPada(t *testing.T) {
	got, err := EncodeIAST("ka 9")
	require.NoError(t, err)

	// The numeral span begins after the word closes and the space byte.
	prefix := []byte{PadaStart, 0x00, 0x40, PadaEnd, Space, SankhyaStart, 0x01, PadaStart}
	require.Equal(t, prefix, got[:len(prefix)])
}

func TestEncodeIAST_TrailingPadaClosed(t *testing.T) {
	got, err := EncodeIAST("a")
	require.NoError(t, err)
	require.Equal(t, []byte{PadaStart, 0x40, PadaEnd}, got)
}

func TestEncodeIAST_SurfacesTokenizeError(t *testing.T) {
	_, err := EncodeIAST("q")
	var ucErr *UnrecognizedCharError
	require.ErrorAs(t, err, &ucErr)
}

func TestTokensToBytes_Empty(t *testing.T) {
	require.Empty(t, TokensToBytes(nil))
}
