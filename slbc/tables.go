package slbc

// Rendering tables. All lookups mask out the accent bits of svara bytes:
// accent changes recitation, not spelling.

// ByteToIAST renders a phoneme byte in IAST. Control and reserved bytes
// render as "?".
func ByteToIAST(b byte) string {
	if IsSvara(b) {
		return svaraIAST(b)
	}
	if IsVyanjana(b) {
		return vyanjanaIAST(b)
	}
	return "?"
}

func svaraIAST(b byte) string {
	switch b & 0b11001111 {
	case 0x40:
		return "a"
	case 0x80:
		return "ā"
	case 0x44:
		return "i"
	case 0x84:
		return "ī"
	case 0x48:
		return "u"
	case 0x88:
		return "ū"
	case 0x4C:
		return "ṛ"
	case 0x8C:
		return "ṝ"
	case 0x4F:
		return "ḷ"
	case 0x8F:
		return "ḹ"
	case 0x85:
		return "e"
	case 0x86:
		return "ai"
	case 0x89:
		return "o"
	case 0x8A:
		return "au"
	}
	return "?"
}

func vyanjanaIAST(b byte) string {
	switch b {
	case 0x00:
		return "k"
	case 0x01:
		return "kh"
	case 0x02:
		return "g"
	case 0x03:
		return "gh"
	case 0x04:
		return "ṅ"
	case 0x08:
		return "c"
	case 0x09:
		return "ch"
	case 0x0A:
		return "j"
	case 0x0B:
		return "jh"
	case 0x0C:
		return "ñ"
	case 0x10:
		return "ṭ"
	case 0x11:
		return "ṭh"
	case 0x12:
		return "ḍ"
	case 0x13:
		return "ḍh"
	case 0x14:
		return "ṇ"
	case 0x18:
		return "t"
	case 0x19:
		return "th"
	case 0x1A:
		return "d"
	case 0x1B:
		return "dh"
	case 0x1C:
		return "n"
	case 0x20:
		return "p"
	case 0x21:
		return "ph"
	case 0x22:
		return "b"
	case 0x23:
		return "bh"
	case 0x24:
		return "m"
	case 0x29:
		return "ś"
	case 0x2A:
		return "ṣ"
	case 0x2B:
		return "s"
	case 0x31:
		return "y"
	case 0x32:
		return "v"
	case 0x33:
		return "r"
	case 0x34:
		return "l"
	case 0x38:
		return "h"
	case 0x39:
		return "ḥ"
	case 0x3A:
		return "ṃ"
	case 0x3B:
		return "ẖ"
	case 0x3C:
		return "ḫ"
	}
	return "?"
}

// ── Devanāgarī ──

const virama = '्' // U+094D

var devanagariDigits = [10]rune{
	'०', '१', '२', '३', '४', '५', '६', '७', '८', '९',
}

func devanagariConsonant(b byte) string {
	switch b {
	case 0x00:
		return "क"
	case 0x01:
		return "ख"
	case 0x02:
		return "ग"
	case 0x03:
		return "घ"
	case 0x04:
		return "ङ"
	case 0x08:
		return "च"
	case 0x09:
		return "छ"
	case 0x0A:
		return "ज"
	case 0x0B:
		return "झ"
	case 0x0C:
		return "ञ"
	case 0x10:
		return "ट"
	case 0x11:
		return "ठ"
	case 0x12:
		return "ड"
	case 0x13:
		return "ढ"
	case 0x14:
		return "ण"
	case 0x18:
		return "त"
	case 0x19:
		return "थ"
	case 0x1A:
		return "द"
	case 0x1B:
		return "ध"
	case 0x1C:
		return "न"
	case 0x20:
		return "प"
	case 0x21:
		return "फ"
	case 0x22:
		return "ब"
	case 0x23:
		return "भ"
	case 0x24:
		return "म"
	case 0x29:
		return "श"
	case 0x2A:
		return "ष"
	case 0x2B:
		return "स"
	case 0x31:
		return "य"
	case 0x32:
		return "व"
	case 0x33:
		return "र"
	case 0x34:
		return "ल"
	case 0x38:
		return "ह"
	}
	return "?"
}

// devanagariIndependent renders a svara in its standalone (word-initial)
// form.
func devanagariIndependent(b byte) string {
	switch b & 0b11001111 {
	case 0x40:
		return "अ"
	case 0x80:
		return "आ"
	case 0x44:
		return "इ"
	case 0x84:
		return "ई"
	case 0x48:
		return "उ"
	case 0x88:
		return "ऊ"
	case 0x4C:
		return "ऋ"
	case 0x8C:
		return "ॠ"
	case 0x4F:
		return "ऌ"
	case 0x8F:
		return "ॡ"
	case 0x85:
		return "ए"
	case 0x86:
		return "ऐ"
	case 0x89:
		return "ओ"
	case 0x8A:
		return "औ"
	}
	return "?"
}

// devanagariMatra renders a svara as the dependent sign attached to a
// consonant. Short a is the inherent vowel: no sign at all.
func devanagariMatra(b byte) (string, bool) {
	switch b & 0b11001111 {
	case 0x40:
		return "", false // inherent a
	case 0x80:
		return "ा", true
	case 0x44:
		return "ि", true
	case 0x84:
		return "ी", true
	case 0x48:
		return "ु", true
	case 0x88:
		return "ू", true
	case 0x4C:
		return "ृ", true
	case 0x8C:
		return "ॄ", true
	case 0x4F:
		return "ॢ", true
	case 0x8F:
		return "ॣ", true
	case 0x85:
		return "े", true
	case 0x86:
		return "ै", true
	case 0x89:
		return "ो", true
	case 0x8A:
		return "ौ", true
	}
	return "", false
}

// isPostfixMark reports whether a vyañjana byte renders as a combining
// mark after the vowel (visarga, anusvāra) rather than as a base
// consonant glyph.
func isPostfixMark(b byte) bool {
	return b == 0x39 || b == 0x3A
}

func postfixMarkDevanagari(b byte) string {
	switch b {
	case 0x39:
		return "ः" // visarga
	case 0x3A:
		return "ं" // anusvāra
	}
	return ""
}
