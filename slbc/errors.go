package slbc

import "fmt"

// UnrecognizedCharError is returned by Tokenize for the first input
// character that matches no tokenizer rule.
type UnrecognizedCharError struct {
	Char     rune
	Position int
}

func (e *UnrecognizedCharError) Error() string {
	return fmt.Sprintf("slbc: unrecognized IAST character %q (U+%04X) at position %d",
		e.Char, e.Char, e.Position)
}

// UnexpectedByteError is returned by the decoders for a byte that matches
// no classification.
type UnexpectedByteError struct {
	Byte   byte
	Offset int
}

func (e *UnexpectedByteError) Error() string {
	return fmt.Sprintf("slbc: unexpected byte 0x%02X at offset %d", e.Byte, e.Offset)
}

// ExpectedMarkerError is returned when a span decoder does not find the
// control byte it requires at the current offset.
type ExpectedMarkerError struct {
	Expected byte
	Offset   int
}

func (e *ExpectedMarkerError) Error() string {
	return fmt.Sprintf("slbc: expected marker 0x%02X at offset %d", e.Expected, e.Offset)
}

// UnterminatedDigitPadaError is returned when a digit-word pada in a
// SANKHYA span runs off the end of the buffer before its PADA_END.
type UnterminatedDigitPadaError struct {
	Offset int
}

func (e *UnterminatedDigitPadaError) Error() string {
	return fmt.Sprintf("slbc: unterminated digit-pada starting at offset %d", e.Offset)
}

// InvalidDigitWordError is returned when a digit-word pada does not match
// any entry of the closed śūnya…nava vocabulary.
type InvalidDigitWordError struct {
	Offset int
}

func (e *InvalidDigitWordError) Error() string {
	return fmt.Sprintf("slbc: invalid digit-word at offset %d", e.Offset)
}

// NotASvaraError is returned by svara transforms applied to a non-svara
// byte.
type NotASvaraError struct {
	Byte byte
}

func (e *NotASvaraError) Error() string {
	return fmt.Sprintf("slbc: 0x%02X is not a svara", e.Byte)
}

// NotAVargaError is returned by vyañjana transforms applied outside the
// varga grid (PLACE > 4 or not a consonant at all).
type NotAVargaError struct {
	Byte byte
	Op   string
}

func (e *NotAVargaError) Error() string {
	return fmt.Sprintf("slbc: 0x%02X is not a varga consonant; %s is defined only for PLACE 0-4",
		e.Byte, e.Op)
}

// UndefinedSeriesTransformError is returned when a grade transform has no
// defined target for the byte's series (guṇa of the a-series).
type UndefinedSeriesTransformError struct {
	Byte byte
	Op   string
}

func (e *UndefinedSeriesTransformError) Error() string {
	return fmt.Sprintf("slbc: %s is undefined for the series of 0x%02X", e.Op, e.Byte)
}

// NotSavarnaError is returned by SavarnaDirgha when the two svaras do not
// share a series, or when either byte is not a svara.
type NotSavarnaError struct {
	A, B byte
}

func (e *NotSavarnaError) Error() string {
	return fmt.Sprintf("slbc: 0x%02X and 0x%02X are not savarṇa", e.A, e.B)
}

// NotASonorantError is returned by the saṃprasāraṇa transforms for bytes
// outside the fixed ya/va/ra/la ↔ i/u/ṛ/ḷ table.
type NotASonorantError struct {
	Byte byte
}

func (e *NotASonorantError) Error() string {
	return fmt.Sprintf("slbc: 0x%02X is not saṃprasāraṇa-eligible", e.Byte)
}
