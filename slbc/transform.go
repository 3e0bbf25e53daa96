package slbc

import "fmt"

// TransformResult reports one algebraic operation on packed bytes. It is
// a value type, never mutated after creation.
type TransformResult struct {
	InputByte  byte
	OutputByte byte
	Operation  string
	InputIAST  string
	OutputIAST string
}

// String renders the result as "op: in (0xAA) → out (0xBB)".
func (r TransformResult) String() string {
	return fmt.Sprintf("%s: %s (0x%02X) → %s (0x%02X)",
		r.Operation, r.InputIAST, r.InputByte, r.OutputIAST, r.OutputByte)
}

func svaraResult(input, output byte, op string) TransformResult {
	return TransformResult{
		InputByte:  input,
		OutputByte: output,
		Operation:  op,
		InputIAST:  ByteToIAST(input),
		OutputIAST: ByteToIAST(output),
	}
}

// packSvara assembles a svara byte from its four fields.
func packSvara(q, a, s, g byte) byte {
	return q<<6 | a<<4 | s<<2 | g
}

// ── Svara algebra ──

// Guna strengthens a svara to its guṇa grade: Q becomes dīrgha, G becomes
// guṇa, accent and series are preserved. The a-series has no guṇa target.
func Guna(b byte) (TransformResult, error) {
	if !IsSvara(b) {
		return TransformResult{}, &NotASvaraError{Byte: b}
	}
	s := SvaraS(b)
	if s == SeriesA {
		return TransformResult{}, &UndefinedSeriesTransformError{Byte: b, Op: "guṇa"}
	}
	out := packSvara(QuantityDirgha, SvaraA(b), s, GradeGuna)
	return svaraResult(b, out, "guṇa"), nil
}

// Vrddhi strengthens a svara to its vṛddhi grade: Q becomes dīrgha, G
// becomes vṛddhi, accent and series are preserved. In the a-series the
// vṛddhi of a is ā.
func Vrddhi(b byte) (TransformResult, error) {
	if !IsSvara(b) {
		return TransformResult{}, &NotASvaraError{Byte: b}
	}
	out := packSvara(QuantityDirgha, SvaraA(b), SvaraS(b), GradeVrddhi)
	return svaraResult(b, out, "vṛddhi"), nil
}

// Dirgha lengthens a svara: only Q changes.
func Dirgha(b byte) (TransformResult, error) {
	if !IsSvara(b) {
		return TransformResult{}, &NotASvaraError{Byte: b}
	}
	out := b&0b00111111 | QuantityDirgha<<6
	return svaraResult(b, out, "dīrgha"), nil
}

// Hrasva shortens a svara: only Q changes.
func Hrasva(b byte) (TransformResult, error) {
	if !IsSvara(b) {
		return TransformResult{}, &NotASvaraError{Byte: b}
	}
	out := b&0b00111111 | QuantityHrasva<<6
	return svaraResult(b, out, "hrasva"), nil
}

// SavarnaDirgha merges two svaras of the same series into the long śuddha
// vowel of that series, taking accent from the first operand.
func SavarnaDirgha(a, b byte) (TransformResult, error) {
	if !IsSvara(a) || !IsSvara(b) {
		return TransformResult{}, &NotSavarnaError{A: a, B: b}
	}
	if SvaraS(a) != SvaraS(b) {
		return TransformResult{}, &NotSavarnaError{A: a, B: b}
	}
	out := packSvara(QuantityDirgha, SvaraA(a), SvaraS(a), GradeShuddha)
	return TransformResult{
		InputByte:  a,
		OutputByte: out,
		Operation:  "savarṇa-dīrgha",
		InputIAST:  ByteToIAST(a) + " + " + ByteToIAST(b),
		OutputIAST: ByteToIAST(out),
	}, nil
}

// ── Vyañjana algebra ──

func vyanjanaResult(input, output byte, op string) TransformResult {
	return TransformResult{
		InputByte:  input,
		OutputByte: output,
		Operation:  op,
		InputIAST:  ByteToIAST(input),
		OutputIAST: ByteToIAST(output),
	}
}

func requireVarga(b byte, op string) error {
	if !IsVarga(b) {
		return &NotAVargaError{Byte: b, Op: op}
	}
	return nil
}

// Jastva neutralizes a varga consonant to voiced unaspirated, whatever
// its current column.
func Jastva(b byte) (TransformResult, error) {
	if err := requireVarga(b, "jaśtva"); err != nil {
		return TransformResult{}, err
	}
	out := b&0b11111000 | ColVoicedUnaspirated
	return vyanjanaResult(b, out, "jaśtva"), nil
}

// ToggleVoice flips the voice bit of a varga consonant's column.
func ToggleVoice(b byte) (TransformResult, error) {
	if err := requireVarga(b, "toggle voice"); err != nil {
		return TransformResult{}, err
	}
	return vyanjanaResult(b, b^0b010, "toggle voice"), nil
}

// ToggleAspiration flips the aspiration bit of a varga consonant's
// column.
func ToggleAspiration(b byte) (TransformResult, error) {
	if err := requireVarga(b, "toggle aspiration"); err != nil {
		return TransformResult{}, err
	}
	return vyanjanaResult(b, b^0b001, "toggle aspiration"), nil
}

// MakeNasal forces a varga consonant's column to nasal, keeping PLACE.
func MakeNasal(b byte) (TransformResult, error) {
	if err := requireVarga(b, "make nasal"); err != nil {
		return TransformResult{}, err
	}
	out := b&0b11111000 | ColNasal
	return vyanjanaResult(b, out, "make nasal"), nil
}

// HomorganicNasal derives the nasal sharing the target's place of
// articulation.
func HomorganicNasal(target byte) (TransformResult, error) {
	if err := requireVarga(target, "homorganic nasal"); err != nil {
		return TransformResult{}, err
	}
	out := target&0b11111000 | ColNasal
	return vyanjanaResult(target, out, "homorganic nasal"), nil
}

// ── Saṃprasāraṇa ──

// The pairing is a fixed table, not a derived rule; la ↔ ḷ is the
// enumerated irregular case.

// SamprasaranaToSvara substitutes a sonorant with its vowel.
func SamprasaranaToSvara(b byte) (TransformResult, error) {
	var out byte
	switch b {
	case 0x31: // ya → i
		out = 0x44
	case 0x32: // va → u
		out = 0x48
	case 0x33: // ra → ṛ
		out = 0x4C
	case 0x34: // la → ḷ
		out = 0x4F
	default:
		return TransformResult{}, &NotASonorantError{Byte: b}
	}
	return vyanjanaResult(b, out, "saṃprasāraṇa (→svara)"), nil
}

// SamprasaranaToSonorant substitutes a vowel with its sonorant.
func SamprasaranaToSonorant(b byte) (TransformResult, error) {
	var out byte
	switch b {
	case 0x44: // i → ya
		out = 0x31
	case 0x48: // u → va
		out = 0x32
	case 0x4C: // ṛ → ra
		out = 0x33
	case 0x4F: // ḷ → la
		out = 0x34
	default:
		return TransformResult{}, &NotASonorantError{Byte: b}
	}
	return vyanjanaResult(b, out, "saṃprasāraṇa (→sonorant)"), nil
}
