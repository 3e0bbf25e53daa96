package slbc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassification_Partition(t *testing.T) {
	// Every byte value falls into exactly one class; reserved bytes fall
	// through all four predicates.
	for b := 0; b < 256; b++ {
		n := 0
		for _, hit := range []bool{
			IsSvara(byte(b)),
			IsVyanjana(byte(b)),
			IsBhashaControl(byte(b)),
			IsLipiControl(byte(b)),
		} {
			if hit {
				n++
			}
		}
		require.LessOrEqual(t, n, 1, "byte 0x%02X matches %d classes", b, n)
	}
}

func TestClassification_Controls(t *testing.T) {
	for _, b := range []byte{MetaStart, MetaEnd, PhonStart, PhonEnd, PadaStart, PadaEnd, SankhyaStart} {
		require.True(t, IsBhashaControl(b), "0x%02X", b)
		require.False(t, IsVyanjana(b), "0x%02X", b)
	}
	for _, b := range []byte{Danda, DoubleDanda, Space, Avagraha, Num, MetaExt} {
		require.True(t, IsLipiControl(b), "0x%02X", b)
		require.False(t, IsVyanjana(b), "0x%02X", b)
	}
}

func TestClassification_Varga(t *testing.T) {
	require.True(t, IsVarga(0x00))  // ka
	require.True(t, IsVarga(0x24))  // ma
	require.False(t, IsVarga(0x29)) // śa: sibilant row
	require.False(t, IsVarga(0x38)) // ha: glottal row
	require.False(t, IsVarga(0x40)) // svara
}

func TestSvaraFields(t *testing.T) {
	// 0x54 = Q:01 A:01 S:01 G:00 — hrasva udātta i.
	const b = 0x54
	require.True(t, IsSvara(b))
	require.Equal(t, QuantityHrasva, SvaraQ(b))
	require.Equal(t, AccentUdatta, SvaraA(b))
	require.Equal(t, SeriesI, SvaraS(b))
	require.Equal(t, GradeShuddha, SvaraG(b))
}

func TestVyanjanaFields(t *testing.T) {
	// 0x1B = dental voiced aspirated: dha.
	require.Equal(t, byte(3), Place(0x1B))
	require.Equal(t, ColVoicedAspirated, Column(0x1B))

	// ka sits at the origin of the grid.
	require.Equal(t, byte(0), Place(0x00))
	require.Equal(t, ColVoicelessUnaspirated, Column(0x00))
}
