package slbc

import "fmt"

// TokenKind identifies the variant of a Token.
type TokenKind uint8

const (
	TokenSvara TokenKind = iota
	TokenVyanjana
	TokenSpace
	TokenDanda
	TokenDoubleDanda
	TokenAvagraha
	TokenNumeral
)

// String returns the kind name.
func (k TokenKind) String() string {
	switch k {
	case TokenSvara:
		return "svara"
	case TokenVyanjana:
		return "vyanjana"
	case TokenSpace:
		return "space"
	case TokenDanda:
		return "danda"
	case TokenDoubleDanda:
		return "double-danda"
	case TokenAvagraha:
		return "avagraha"
	case TokenNumeral:
		return "numeral"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// Token is one IAST tokenizer output. Byte is set for svara and vyañjana
// tokens; Digits carries the literal digit string of a numeral token.
type Token struct {
	Kind   TokenKind
	Byte   byte
	Digits string
}

// String renders the token for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case TokenSvara, TokenVyanjana:
		return fmt.Sprintf("%s(0x%02X)", t.Kind, t.Byte)
	case TokenNumeral:
		return fmt.Sprintf("numeral(%s)", t.Digits)
	default:
		return t.Kind.String()
	}
}

func svaraToken(b byte) Token    { return Token{Kind: TokenSvara, Byte: b} }
func vyanjanaToken(b byte) Token { return Token{Kind: TokenVyanjana, Byte: b} }

// aspirated maps a plain-stop rune followed by 'h' to the aspirated-stop
// byte. Only the ten plain stops aspirate; everything else falls through
// to the single-character table.
var aspirated = map[rune]byte{
	'k': 0x01, // kha
	'g': 0x03, // gha
	'c': 0x09, // cha
	'j': 0x0B, // jha
	'ṭ': 0x11, // ṭha
	'ḍ': 0x13, // ḍha
	't': 0x19, // tha
	'd': 0x1B, // dha
	'p': 0x21, // pha
	'b': 0x23, // bha
}

// Tokenize splits IAST text into a token sequence. It fails on the first
// character that matches no rule.
func Tokenize(input string) ([]Token, error) {
	chars := []rune(input)
	var tokens []Token

	for i := 0; i < len(chars); {
		ch := chars[i]
		var next rune
		if i+1 < len(chars) {
			next = chars[i+1]
		}

		switch {
		case ch == '\r':
			i++

		case ch == ' ' || ch == '\t' || ch == '\n':
			// Collapse runs of whitespace into one token. The check is
			// local: only the immediately preceding token is consulted.
			if n := len(tokens); n == 0 || tokens[n-1].Kind != TokenSpace {
				tokens = append(tokens, Token{Kind: TokenSpace})
			}
			i++

		case ch == '|' && next == '|':
			tokens = append(tokens, Token{Kind: TokenDoubleDanda})
			i += 2

		case ch == '|':
			tokens = append(tokens, Token{Kind: TokenDanda})
			i++

		case ch == '\'' || ch == 'ऽ':
			tokens = append(tokens, Token{Kind: TokenAvagraha})
			i++

		case ch >= '0' && ch <= '9':
			start := i
			for i < len(chars) && chars[i] >= '0' && chars[i] <= '9' {
				i++
			}
			tokens = append(tokens, Token{Kind: TokenNumeral, Digits: string(chars[start:i])})

		// Diphthongs need lookahead before the single-vowel table.
		case ch == 'a' && next == 'i':
			tokens = append(tokens, svaraToken(0x86)) // ai
			i += 2

		case ch == 'a' && next == 'u':
			tokens = append(tokens, svaraToken(0x8A)) // au
			i += 2

		default:
			if next == 'h' {
				if b, ok := aspirated[ch]; ok {
					tokens = append(tokens, vyanjanaToken(b))
					i += 2
					continue
				}
			}
			tok, ok := matchSingle(ch)
			if !ok {
				return nil, &UnrecognizedCharError{Char: ch, Position: i}
			}
			tokens = append(tokens, tok)
			i++
		}
	}

	return tokens, nil
}

// matchSingle maps a single IAST character to a token.
func matchSingle(ch rune) (Token, bool) {
	switch ch {
	// Svaras.
	case 'a':
		return svaraToken(0x40), true
	case 'ā':
		return svaraToken(0x80), true
	case 'i':
		return svaraToken(0x44), true
	case 'ī':
		return svaraToken(0x84), true
	case 'u':
		return svaraToken(0x48), true
	case 'ū':
		return svaraToken(0x88), true
	case 'ṛ':
		return svaraToken(0x4C), true
	case 'ṝ':
		return svaraToken(0x8C), true
	case 'ḷ':
		return svaraToken(0x4F), true
	case 'ḹ':
		return svaraToken(0x8F), true
	case 'e':
		return svaraToken(0x85), true
	case 'o':
		return svaraToken(0x89), true

	// Varga vyañjanas, unaspirated (aspirates are consumed by the
	// two-character rule before this table is reached).
	case 'k':
		return vyanjanaToken(0x00), true
	case 'g':
		return vyanjanaToken(0x02), true
	case 'ṅ':
		return vyanjanaToken(0x04), true
	case 'c':
		return vyanjanaToken(0x08), true
	case 'j':
		return vyanjanaToken(0x0A), true
	case 'ñ':
		return vyanjanaToken(0x0C), true
	case 'ṭ':
		return vyanjanaToken(0x10), true
	case 'ḍ':
		return vyanjanaToken(0x12), true
	case 'ṇ':
		return vyanjanaToken(0x14), true
	case 't':
		return vyanjanaToken(0x18), true
	case 'd':
		return vyanjanaToken(0x1A), true
	case 'n':
		return vyanjanaToken(0x1C), true
	case 'p':
		return vyanjanaToken(0x20), true
	case 'b':
		return vyanjanaToken(0x22), true
	case 'm':
		return vyanjanaToken(0x24), true

	// Sibilants.
	case 'ś':
		return vyanjanaToken(0x29), true
	case 'ṣ':
		return vyanjanaToken(0x2A), true
	case 's':
		return vyanjanaToken(0x2B), true

	// Sonorants.
	case 'y':
		return vyanjanaToken(0x31), true
	case 'v':
		return vyanjanaToken(0x32), true
	case 'r':
		return vyanjanaToken(0x33), true
	case 'l':
		return vyanjanaToken(0x34), true

	// Glottal and special.
	case 'h':
		return vyanjanaToken(0x38), true
	case 'ḥ':
		return vyanjanaToken(0x39), true // visarga
	case 'ṃ':
		return vyanjanaToken(0x3A), true // anusvāra
	case 'ẖ':
		return vyanjanaToken(0x3B), true // jihvāmūlīya
	case 'ḫ':
		return vyanjanaToken(0x3C), true // upadhmānīya
	}
	return Token{}, false
}
