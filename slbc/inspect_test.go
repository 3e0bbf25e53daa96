package slbc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInspectByte_Totality(t *testing.T) {
	// Inspection never panics and its class always agrees with the
	// predicates.
	for b := 0; b < 256; b++ {
		info := InspectByte(byte(b))
		switch {
		case IsSvara(byte(b)):
			require.Equal(t, ClassSvara, info.Class, "0x%02X", b)
		case IsVyanjana(byte(b)):
			require.Equal(t, ClassVyanjana, info.Class, "0x%02X", b)
		case IsBhashaControl(byte(b)):
			require.Equal(t, ClassBhashaControl, info.Class, "0x%02X", b)
		case IsLipiControl(byte(b)):
			require.Equal(t, ClassLipiControl, info.Class, "0x%02X", b)
		default:
			require.Equal(t, ClassReserved, info.Class, "0x%02X", b)
		}
	}
}

func TestInspectByte_Svara(t *testing.T) {
	info := InspectByte(0x54) // udātta i
	require.Equal(t, ClassSvara, info.Class)
	require.Contains(t, info.Description, "hrasva")
	require.Contains(t, info.Description, "udātta")
	require.Contains(t, info.Description, "I-series")
}

func TestInspectByte_Vyanjana(t *testing.T) {
	info := InspectByte(0x1B) // dha
	require.Equal(t, ClassVyanjana, info.Class)
	require.Contains(t, info.Description, "dh")
	require.Contains(t, info.Description, "dantya")
}

func TestInspectByte_Controls(t *testing.T) {
	require.Contains(t, InspectByte(PadaStart).Description, "PADA_START")
	require.Contains(t, InspectByte(SankhyaStart).Description, "SANKHYA_START")
	require.Contains(t, InspectByte(Num).Description, "NUM")
	require.Contains(t, InspectByte(0x36).Description, "reserved")
}

func TestInspectHexStream(t *testing.T) {
	infos, err := InspectHexStream("1B 0x40 33")
	require.NoError(t, err)
	require.Len(t, infos, 3)
	require.Equal(t, byte(0x1B), infos[0].Byte)
	require.Equal(t, byte(0x40), infos[1].Byte)
	require.Equal(t, byte(0x33), infos[2].Byte)
}

func TestInspectHexStream_Invalid(t *testing.T) {
	_, err := InspectHexStream("zz")
	require.Error(t, err)
}

func TestFormatByteInfo(t *testing.T) {
	out := FormatByteInfo(InspectByte(0x1B))
	require.True(t, strings.HasPrefix(out, "  0x1B (00011011)"))
	require.Contains(t, out, "PLACE")
}
