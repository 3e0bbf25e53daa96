package slbc

import (
	"bytes"

	"github.com/abhyagra/slbc/container"
)

// Numerals carry two parallel encodings of one digit string: a bhāṣā span
// of digit-word padas, emitted units first (aṅkānāṃ vāmato gatiḥ), and a
// lipi span of raw digit glyphs in visual left-to-right order.

// digitWords is the closed digit-word vocabulary. Each entry is the
// packed bhāṣā encoding of the prātipadika for that digit value.
var digitWords = [10][]byte{
	{0x29, 0x88, 0x1C, 0x31, 0x40}, // 0: śūnya
	{0x85, 0x00, 0x40},             // 1: eka
	{0x1A, 0x32, 0x44},             // 2: dvi
	{0x18, 0x33, 0x44},             // 3: tri
	{0x08, 0x40, 0x18, 0x48, 0x33}, // 4: catur
	{0x20, 0x40, 0x0C, 0x08, 0x40}, // 5: pañca
	{0x2A, 0x40, 0x2A},             // 6: ṣaṣ
	{0x2B, 0x40, 0x20, 0x18, 0x40}, // 7: sapta
	{0x40, 0x2A, 0x10, 0x40},       // 8: aṣṭa
	{0x1C, 0x40, 0x32, 0x40},       // 9: nava
}

// DigitIAST names the digits in IAST, for inspection output.
var DigitIAST = [10]string{
	"śūnya", "eka", "dvi", "tri", "catur",
	"pañca", "ṣaṣ", "sapta", "aṣṭa", "nava",
}

// AppendNumeral appends both spans for an ASCII digit string to dst. The
// caller guarantees digits contains only '0'–'9' (the tokenizer's numeral
// rule does).
func AppendNumeral(dst []byte, digits string) []byte {
	// Bhāṣā layer: SANKHYA_START, digit count, units-first digit-words.
	dst = append(dst, SankhyaStart)
	dst = container.AppendUvarint(dst, uint64(len(digits)))
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i] - '0'
		dst = append(dst, PadaStart)
		dst = append(dst, digitWords[d]...)
		dst = append(dst, PadaEnd)
	}

	// Lipi layer: NUM marker, glyph codes in visual order. The span ends
	// implicitly at the first following byte >= 0x10.
	dst = append(dst, Num)
	for i := 0; i < len(digits); i++ {
		dst = append(dst, digits[i]-'0')
	}
	return dst
}

// DecodeSankhya decodes the bhāṣā numeral span starting at pos. It
// returns the digit values in natural left-to-right order and the number
// of bytes consumed. The count field is trusted: exactly that many
// digit-padas are consumed.
func DecodeSankhya(data []byte, pos int) ([]byte, int, error) {
	i := pos

	if i >= len(data) || data[i] != SankhyaStart {
		return nil, 0, &ExpectedMarkerError{Expected: SankhyaStart, Offset: i}
	}
	i++

	count, n, err := container.Uvarint(data[i:])
	if err != nil {
		return nil, 0, err
	}
	i += n

	digits := make([]byte, 0, count)
	for k := uint64(0); k < count; k++ {
		if i >= len(data) || data[i] != PadaStart {
			return nil, 0, &ExpectedMarkerError{Expected: PadaStart, Offset: i}
		}
		i++

		padaStart := i
		for i < len(data) && data[i] != PadaEnd {
			i++
		}
		if i >= len(data) {
			return nil, 0, &UnterminatedDigitPadaError{Offset: padaStart}
		}
		word := data[padaStart:i]
		i++ // consume PADA_END

		d, ok := lookupDigitWord(word)
		if !ok {
			return nil, 0, &InvalidDigitWordError{Offset: padaStart}
		}
		digits = append(digits, d)
	}

	// Units-first on the wire; flip back to natural order.
	for l, r := 0, len(digits)-1; l < r; l, r = l+1, r-1 {
		digits[l], digits[r] = digits[r], digits[l]
	}

	return digits, i - pos, nil
}

// DecodeNum decodes the lipi numeral span starting at pos: a NUM marker
// followed by glyph codes < 0x10. Returns the digit values in visual
// order and the number of bytes consumed.
func DecodeNum(data []byte, pos int) ([]byte, int, error) {
	i := pos

	if i >= len(data) || data[i] != Num {
		return nil, 0, &ExpectedMarkerError{Expected: Num, Offset: i}
	}
	i++

	var digits []byte
	for i < len(data) && data[i] < 0x10 {
		digits = append(digits, data[i])
		i++
	}

	return digits, i - pos, nil
}

// lookupDigitWord matches a pada's exact byte content against the
// vocabulary. No partial or fuzzy matching.
func lookupDigitWord(word []byte) (byte, bool) {
	for d, entry := range digitWords {
		if bytes.Equal(word, entry) {
			return byte(d), true
		}
	}
	return 0, false
}
