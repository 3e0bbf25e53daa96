package slbc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ByteClass names the classification of a byte. The five classes
// partition the byte space.
type ByteClass string

const (
	ClassSvara         ByteClass = "Svara"
	ClassVyanjana      ByteClass = "Vyañjana"
	ClassBhashaControl ByteClass = "Bhāṣā Control"
	ClassLipiControl   ByteClass = "Lipi Control"
	ClassReserved      ByteClass = "Reserved"
)

// ByteInfo is a full human-readable description of one packed byte.
type ByteInfo struct {
	Byte        byte
	Hex         string
	Binary      string
	Class       ByteClass
	Description string
	Fields      []Field
}

// Field is one named sub-field rendering within a ByteInfo.
type Field struct {
	Name  string
	Value string
}

// InspectByte describes a packed byte: its class, its decoded sub-fields
// and its rendering. It only consults the classification predicates.
func InspectByte(b byte) ByteInfo {
	hex := fmt.Sprintf("0x%02X", b)
	bin := fmt.Sprintf("%08b", b)

	switch {
	case IsSvara(b):
		return inspectSvara(b, hex, bin)
	case IsVyanjana(b):
		return inspectVyanjana(b, hex, bin)
	case IsBhashaControl(b):
		return inspectBhashaControl(b, hex, bin)
	case IsLipiControl(b):
		return inspectLipiControl(b, hex, bin)
	}

	return ByteInfo{
		Byte:        b,
		Hex:         hex,
		Binary:      bin,
		Class:       ClassReserved,
		Description: fmt.Sprintf("reserved byte (PLACE=%d, COLUMN=101)", Place(b)),
	}
}

func inspectSvara(b byte, hex, bin string) ByteInfo {
	q, a, s, g := SvaraQ(b), SvaraA(b), SvaraS(b), SvaraG(b)

	qStr := [4]string{"?", "hrasva", "dīrgha", "pluta"}[q]
	aStr := [4]string{"neutral", "udātta", "anudātta", "svarita"}[a]
	sStr := [4]string{"A", "I", "U", "Ṛ"}[s]
	gStr := [4]string{"śuddha", "guṇa", "vṛddhi", "special"}[g]
	iast := ByteToIAST(b)

	return ByteInfo{
		Byte:   b,
		Hex:    hex,
		Binary: bin,
		Class:  ClassSvara,
		Description: fmt.Sprintf("svara %q (%s, %s, %s-series, %s)",
			iast, qStr, aStr, sStr, gStr),
		Fields: []Field{
			{"Q (quantity)", fmt.Sprintf("%02b = %s", q, qStr)},
			{"A (accent)", fmt.Sprintf("%02b = %s", a, aStr)},
			{"S (series)", fmt.Sprintf("%02b = %s", s, sStr)},
			{"G (grade)", fmt.Sprintf("%02b = %s", g, gStr)},
			{"IAST", iast},
		},
	}
}

var placeNames = [8]string{
	"kaṇṭhya (velar)",
	"tālavya (palatal)",
	"mūrdhanya (retroflex)",
	"dantya (dental)",
	"oṣṭhya (labial)",
	"ūṣman (sibilant)",
	"antastha (sonorant)",
	"kaṇṭhya/Vedic (glottal)",
}

var vargaColumnNames = [5]string{
	"aghoṣa alpaprāṇa (voiceless unaspirated)",
	"aghoṣa mahāprāṇa (voiceless aspirated)",
	"saghoṣa alpaprāṇa (voiced unaspirated)",
	"saghoṣa mahāprāṇa (voiced aspirated)",
	"anunāsika (nasal)",
}

func inspectVyanjana(b byte, hex, bin string) ByteInfo {
	p, c := Place(b), Column(b)

	placeStr := placeNames[p]
	mannerStr := "ordinal (non-varga)"
	vargaStr := "no"
	if p <= 4 {
		mannerStr = vargaColumnNames[c]
		vargaStr = "yes"
	}
	iast := ByteToIAST(b)

	return ByteInfo{
		Byte:        b,
		Hex:         hex,
		Binary:      bin,
		Class:       ClassVyanjana,
		Description: fmt.Sprintf("vyañjana %q (%s, %s)", iast, placeStr, mannerStr),
		Fields: []Field{
			{"PLACE", fmt.Sprintf("%03b = %s", p, placeStr)},
			{"COLUMN", fmt.Sprintf("%03b = %s", c, mannerStr)},
			{"Varga", vargaStr},
			{"IAST", iast},
		},
	}
}

func inspectBhashaControl(b byte, hex, bin string) ByteInfo {
	var name string
	switch b {
	case MetaStart:
		name = "META_START"
	case MetaEnd:
		name = "META_END"
	case PhonStart:
		name = "PHON_START"
	case PhonEnd:
		name = "PHON_END"
	case PadaStart:
		name = "PADA_START"
	case PadaEnd:
		name = "PADA_END"
	case SankhyaStart:
		name = "SANKHYA_START"
	default:
		name = "reserved"
	}

	return ByteInfo{
		Byte:        b,
		Hex:         hex,
		Binary:      bin,
		Class:       ClassBhashaControl,
		Description: name + ", bhāṣā lane (COLUMN=110)",
		Fields: []Field{
			{"PLACE", fmt.Sprintf("%03b", Place(b))},
			{"Name", name},
		},
	}
}

func inspectLipiControl(b byte, hex, bin string) ByteInfo {
	var name string
	switch b {
	case Danda:
		name = "DANDA (।)"
	case DoubleDanda:
		name = "DOUBLE_DANDA (॥)"
	case Space:
		name = "SPACE"
	case Avagraha:
		name = "AVAGRAHA (ऽ)"
	case Num:
		name = "NUM"
	case MetaExt:
		name = "META_EXT"
	default:
		name = "reserved"
	}

	return ByteInfo{
		Byte:        b,
		Hex:         hex,
		Binary:      bin,
		Class:       ClassLipiControl,
		Description: name + ", lipi lane (COLUMN=111)",
		Fields: []Field{
			{"PLACE", fmt.Sprintf("%03b", Place(b))},
			{"Name", name},
		},
	}
}

// InspectHexStream parses whitespace-separated hex bytes ("1B 40 33") and
// describes each one.
func InspectHexStream(hexStr string) ([]ByteInfo, error) {
	var infos []ByteInfo
	for _, tok := range strings.Fields(hexStr) {
		b, err := ParseHexByte(tok)
		if err != nil {
			return nil, err
		}
		infos = append(infos, InspectByte(b))
	}
	return infos, nil
}

// ParseHexByte parses a single byte written in hex, with or without a 0x
// prefix.
func ParseHexByte(s string) (byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, errors.Newf("invalid hex byte: %q", s)
	}
	return byte(v), nil
}

// FormatByteInfo renders a ByteInfo as an indented multi-line block for
// terminal display.
func FormatByteInfo(info ByteInfo) string {
	var out strings.Builder
	fmt.Fprintf(&out, "  %s (%s) [%s]\n  %s", info.Hex, info.Binary, info.Class, info.Description)
	if len(info.Fields) > 0 {
		out.WriteByte('\n')
		for _, f := range info.Fields {
			fmt.Fprintf(&out, "    %s: %s\n", f.Name, f.Value)
		}
	}
	return out.String()
}
