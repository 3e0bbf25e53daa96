package slbc

// TokensToBytes encodes a token sequence as a packed byte stream,
// wrapping word segments in PADA_START/PADA_END. It is total over any
// token sequence Tokenize can produce.
func TokensToBytes(tokens []Token) []byte {
	var out []byte
	inPada := false

	openPada := func() {
		if !inPada {
			out = append(out, PadaStart)
			inPada = true
		}
	}
	closePada := func() {
		if inPada {
			out = append(out, PadaEnd)
			inPada = false
		}
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenSvara, TokenVyanjana:
			openPada()
			out = append(out, tok.Byte)
		case TokenAvagraha:
			// Lipi-layer mark, but it appears inline within a word.
			openPada()
			out = append(out, Avagraha)
		case TokenSpace:
			closePada()
			out = append(out, Space)
		case TokenDanda:
			closePada()
			out = append(out, Danda)
		case TokenDoubleDanda:
			closePada()
			out = append(out, DoubleDanda)
		case TokenNumeral:
			closePada()
			out = AppendNumeral(out, tok.Digits)
		}
	}

	closePada()
	return out
}

// EncodeIAST encodes IAST text into a packed byte stream (a PHON chunk
// payload). Tokenizer failures surface unchanged.
func EncodeIAST(input string) ([]byte, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return TokensToBytes(tokens), nil
}
