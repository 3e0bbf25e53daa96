package slbc

import "strings"

// Script selects the decoder's output rendering.
type Script uint8

const (
	ScriptIAST Script = iota
	ScriptDevanagari
)

// String returns the script name.
func (s Script) String() string {
	switch s {
	case ScriptIAST:
		return "iast"
	case ScriptDevanagari:
		return "devanagari"
	default:
		return "unknown"
	}
}

// DecodePhon renders a packed PHON payload as text in the requested
// script. On failure no partial output is returned.
func DecodePhon(payload []byte, script Script) (string, error) {
	if script == ScriptDevanagari {
		return decodeDevanagari(payload)
	}
	return decodeIAST(payload)
}

// ── IAST ──

// decodeIAST is stateless beyond its cursor: structural markers are
// no-ops and every phoneme byte renders independently.
func decodeIAST(data []byte) (string, error) {
	var out strings.Builder
	i := 0

	for i < len(data) {
		b := data[i]

		switch {
		case IsBhashaControl(b):
			switch b {
			case MetaStart:
				// META blocks never appear in encoder output, but skip
				// them including the terminator if one shows up.
				i++
				for i < len(data) && data[i] != MetaEnd {
					i++
				}
				i++
			case SankhyaStart:
				digits, n, err := DecodeSankhya(data, i)
				if err != nil {
					return "", err
				}
				for _, d := range digits {
					out.WriteByte('0' + d)
				}
				i += n
				// The paired NUM span repeats the same value in glyph
				// form; skip it so digits are not emitted twice.
				if i < len(data) && data[i] == Num {
					_, n, err := DecodeNum(data, i)
					if err != nil {
						return "", err
					}
					i += n
				}
			default:
				// PADA/PHON markers and reserved bhāṣā slots.
				i++
			}

		case IsLipiControl(b):
			switch b {
			case Space:
				out.WriteByte(' ')
			case Danda:
				out.WriteByte('|')
			case DoubleDanda:
				out.WriteString("||")
			case Avagraha:
				out.WriteByte('\'')
			case Num:
				// A NUM span with no preceding SANKHYA_START only occurs
				// in malformed or partial input; decode it directly.
				digits, n, err := DecodeNum(data, i)
				if err != nil {
					return "", err
				}
				for _, d := range digits {
					out.WriteByte('0' + d)
				}
				i += n
				continue
			}
			i++

		case IsSvara(b), IsVyanjana(b):
			out.WriteString(ByteToIAST(b))
			i++

		default:
			return "", &UnexpectedByteError{Byte: b, Offset: i}
		}
	}

	return out.String(), nil
}

// ── Devanāgarī ──

// decodeDevanagari carries one piece of state: whether a consonant glyph
// is still waiting for its vowel or virāma.
func decodeDevanagari(data []byte) (string, error) {
	var out strings.Builder
	i := 0
	pending := false

	flush := func() {
		if pending {
			out.WriteRune(virama)
			pending = false
		}
	}

	for i < len(data) {
		b := data[i]

		switch {
		case IsBhashaControl(b):
			switch b {
			case PadaEnd:
				flush()
				i++
			case MetaStart:
				i++
				for i < len(data) && data[i] != MetaEnd {
					i++
				}
				i++
			case SankhyaStart:
				flush()
				// The bhāṣā span carries no visual form; the paired NUM
				// span supplies the digit glyphs.
				_, n, err := DecodeSankhya(data, i)
				if err != nil {
					return "", err
				}
				i += n
				if i < len(data) && data[i] == Num {
					i++
					for i < len(data) && data[i] < 0x10 {
						out.WriteRune(devanagariDigits[data[i]])
						i++
					}
				}
			default:
				i++
			}

		case IsLipiControl(b):
			flush()
			switch b {
			case Space:
				out.WriteByte(' ')
			case Danda:
				out.WriteString("।")
			case DoubleDanda:
				out.WriteString("॥")
			case Avagraha:
				out.WriteString("ऽ")
			case Num:
				i++
				for i < len(data) && data[i] < 0x10 {
					out.WriteRune(devanagariDigits[data[i]])
					i++
				}
				continue
			}
			i++

		case IsSvara(b):
			if pending {
				// Consonant + vowel fuse: dependent sign, or nothing at
				// all for the inherent short a.
				if matra, ok := devanagariMatra(b); ok {
					out.WriteString(matra)
				}
				pending = false
			} else {
				out.WriteString(devanagariIndependent(b))
			}
			i++

		case IsVyanjana(b):
			if isPostfixMark(b) {
				// Visarga and anusvāra attach to the syllable; a pending
				// consonant keeps its inherent vowel, no virāma.
				pending = false
				out.WriteString(postfixMarkDevanagari(b))
				i++
				continue
			}
			if pending {
				out.WriteRune(virama)
			}
			out.WriteString(devanagariConsonant(b))
			pending = true
			i++

		default:
			return "", &UnexpectedByteError{Byte: b, Offset: i}
		}
	}

	flush()
	return out.String(), nil
}
