package slbc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGuna(t *testing.T) {
	r, err := Guna(0x44) // i → e
	require.NoError(t, err)
	require.Equal(t, byte(0x85), r.OutputByte)
	require.Equal(t, "i", r.InputIAST)
	require.Equal(t, "e", r.OutputIAST)

	r, err = Guna(0x48) // u → o
	require.NoError(t, err)
	require.Equal(t, byte(0x89), r.OutputByte)
}

func TestGuna_ASeriesUndefined(t *testing.T) {
	_, err := Guna(0x40)

	var ustErr *UndefinedSeriesTransformError
	require.ErrorAs(t, err, &ustErr)
	require.Equal(t, byte(0x40), ustErr.Byte)
}

func TestGuna_NotASvara(t *testing.T) {
	_, err := Guna(0x00)

	var nsErr *NotASvaraError
	require.ErrorAs(t, err, &nsErr)
}

func TestVrddhi(t *testing.T) {
	r, err := Vrddhi(0x44) // i → ai
	require.NoError(t, err)
	require.Equal(t, byte(0x86), r.OutputByte)

	r, err = Vrddhi(0x48) // u → au
	require.NoError(t, err)
	require.Equal(t, byte(0x8A), r.OutputByte)
}

func TestVrddhi_ASeries(t *testing.T) {
	// a has a vṛddhi target (ā), unlike guṇa: the series stays a.
	r, err := Vrddhi(0x40)
	require.NoError(t, err)
	require.Equal(t, QuantityDirgha, SvaraQ(r.OutputByte))
	require.Equal(t, SeriesA, SvaraS(r.OutputByte))
	require.Equal(t, GradeVrddhi, SvaraG(r.OutputByte))
}

func TestDirghaHrasva(t *testing.T) {
	r, err := Dirgha(0x44) // i → ī
	require.NoError(t, err)
	require.Equal(t, byte(0x84), r.OutputByte)

	r, err = Hrasva(0x84) // ī → i
	require.NoError(t, err)
	require.Equal(t, byte(0x44), r.OutputByte)

	// Only Q changes: series and grade ride through.
	r, err = Dirgha(0x4F) // ḷ → ḹ
	require.NoError(t, err)
	require.Equal(t, byte(0x8F), r.OutputByte)
}

func TestSavarnaDirgha(t *testing.T) {
	r, err := SavarnaDirgha(0x44, 0x84) // i + ī → ī
	require.NoError(t, err)
	require.Equal(t, byte(0x84), r.OutputByte)
	require.Equal(t, "i + ī", r.InputIAST)

	r, err = SavarnaDirgha(0x40, 0x40) // a + a → ā
	require.NoError(t, err)
	require.Equal(t, byte(0x80), r.OutputByte)
}

func TestSavarnaDirgha_DifferentSeries(t *testing.T) {
	_, err := SavarnaDirgha(0x44, 0x48) // i + u

	var nsvErr *NotSavarnaError
	require.ErrorAs(t, err, &nsvErr)
}

func TestSavarnaDirgha_NotSvaras(t *testing.T) {
	_, err := SavarnaDirgha(0x00, 0x44)
	var nsvErr *NotSavarnaError
	require.ErrorAs(t, err, &nsvErr)
}

func TestAccentPreservation(t *testing.T) {
	// 0x54 = udātta i. Every grade/quantity operation keeps the accent.
	const udattaI = 0x54

	r, err := Guna(udattaI)
	require.NoError(t, err)
	require.Equal(t, byte(0x95), r.OutputByte)
	require.Equal(t, AccentUdatta, SvaraA(r.OutputByte))

	r, err = Vrddhi(udattaI)
	require.NoError(t, err)
	require.Equal(t, AccentUdatta, SvaraA(r.OutputByte))

	r, err = Dirgha(udattaI)
	require.NoError(t, err)
	require.Equal(t, AccentUdatta, SvaraA(r.OutputByte))

	r, err = Hrasva(udattaI)
	require.NoError(t, err)
	require.Equal(t, AccentUdatta, SvaraA(r.OutputByte))
}

func TestJastva(t *testing.T) {
	r, err := Jastva(0x00) // ka → ga
	require.NoError(t, err)
	require.Equal(t, byte(0x02), r.OutputByte)

	// Already voiced: forced, not toggled.
	r, err = Jastva(0x03) // gha → ga
	require.NoError(t, err)
	require.Equal(t, byte(0x02), r.OutputByte)
}

func TestJastva_RejectsSibilant(t *testing.T) {
	_, err := Jastva(0x29) // śa

	var nvErr *NotAVargaError
	require.ErrorAs(t, err, &nvErr)
	require.Equal(t, byte(0x29), nvErr.Byte)
}

func TestToggleVoice(t *testing.T) {
	r, err := ToggleVoice(0x00) // ka → ga
	require.NoError(t, err)
	require.Equal(t, byte(0x02), r.OutputByte)

	r, err = ToggleVoice(0x02) // ga → ka
	require.NoError(t, err)
	require.Equal(t, byte(0x00), r.OutputByte)
}

func TestToggleAspiration(t *testing.T) {
	r, err := ToggleAspiration(0x1A) // da → dha
	require.NoError(t, err)
	require.Equal(t, byte(0x1B), r.OutputByte)

	r, err = ToggleAspiration(0x1B) // dha → da
	require.NoError(t, err)
	require.Equal(t, byte(0x1A), r.OutputByte)
}

func TestMakeNasal(t *testing.T) {
	r, err := MakeNasal(0x00) // ka → ṅa
	require.NoError(t, err)
	require.Equal(t, byte(0x04), r.OutputByte)
}

func TestHomorganicNasal(t *testing.T) {
	// The nasal matching a dental stop is na.
	r, err := HomorganicNasal(0x18) // ta → na
	require.NoError(t, err)
	require.Equal(t, byte(0x1C), r.OutputByte)

	// Labial: pa → ma.
	r, err = HomorganicNasal(0x20)
	require.NoError(t, err)
	require.Equal(t, byte(0x24), r.OutputByte)
}

func TestSamprasarana(t *testing.T) {
	pairs := []struct {
		sonorant byte
		svara    byte
	}{
		{0x31, 0x44}, // ya ↔ i
		{0x32, 0x48}, // va ↔ u
		{0x33, 0x4C}, // ra ↔ ṛ
		{0x34, 0x4F}, // la ↔ ḷ, the irregular pairing
	}
	for _, p := range pairs {
		r, err := SamprasaranaToSvara(p.sonorant)
		require.NoError(t, err)
		require.Equal(t, p.svara, r.OutputByte)

		r, err = SamprasaranaToSonorant(p.svara)
		require.NoError(t, err)
		require.Equal(t, p.sonorant, r.OutputByte)
	}
}

func TestSamprasarana_Rejects(t *testing.T) {
	var soErr *NotASonorantError

	_, err := SamprasaranaToSvara(0x00) // ka
	require.ErrorAs(t, err, &soErr)

	_, err = SamprasaranaToSonorant(0x40) // a
	require.ErrorAs(t, err, &soErr)
}
