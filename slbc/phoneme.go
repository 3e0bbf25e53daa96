package slbc

// Bhāṣā control bytes (bits [7:6] = 00, COLUMN = 110).
const (
	MetaStart    byte = 0x06
	MetaEnd      byte = 0x0E
	PhonStart    byte = 0x16
	PhonEnd      byte = 0x1E
	PadaStart    byte = 0x26
	PadaEnd      byte = 0x2E
	SankhyaStart byte = 0x3E
)

// Lipi control bytes (bits [7:6] = 00, COLUMN = 111).
const (
	Danda       byte = 0x0F
	DoubleDanda byte = 0x17
	Space       byte = 0x1F
	Avagraha    byte = 0x27
	Num         byte = 0x2F
	MetaExt     byte = 0x37
)

// Svara field values.
const (
	QuantityHrasva byte = 0b01
	QuantityDirgha byte = 0b10
	QuantityPluta  byte = 0b11

	AccentNeutral  byte = 0b00
	AccentUdatta   byte = 0b01
	AccentAnudatta byte = 0b10
	AccentSvarita  byte = 0b11

	SeriesA byte = 0b00
	SeriesI byte = 0b01
	SeriesU byte = 0b10
	SeriesR byte = 0b11

	GradeShuddha byte = 0b00
	GradeGuna    byte = 0b01
	GradeVrddhi  byte = 0b10
	GradeSpecial byte = 0b11
)

// Vyañjana COLUMN values for the varga rows (PLACE 0–4).
const (
	ColVoicelessUnaspirated byte = 0b000
	ColVoicelessAspirated   byte = 0b001
	ColVoicedUnaspirated    byte = 0b010
	ColVoicedAspirated      byte = 0b011
	ColNasal                byte = 0b100
)

// IsSvara reports whether b is a vowel byte (bits [7:6] ≠ 00).
func IsSvara(b byte) bool {
	return b>>6 != 0
}

// IsVyanjana reports whether b is a consonant byte
// (bits [7:6] = 00, COLUMN ∈ 0–4).
func IsVyanjana(b byte) bool {
	return b>>6 == 0 && b&0x07 <= 4
}

// IsVarga reports whether b is a varga consonant (PLACE ∈ 0–4).
// Only varga consonants have the full five-column manner grid.
func IsVarga(b byte) bool {
	return b>>6 == 0 && (b>>3)&0x07 <= 4 && b&0x07 <= 4
}

// IsBhashaControl reports whether b is a bhāṣā-layer control byte
// (COLUMN = 110).
func IsBhashaControl(b byte) bool {
	return b>>6 == 0 && b&0x07 == 6
}

// IsLipiControl reports whether b is a lipi-layer control byte
// (COLUMN = 111).
func IsLipiControl(b byte) bool {
	return b>>6 == 0 && b&0x07 == 7
}

// Place extracts the PLACE field from a vyañjana byte.
func Place(b byte) byte {
	return (b >> 3) & 0x07
}

// Column extracts the COLUMN field from a vyañjana byte.
func Column(b byte) byte {
	return b & 0x07
}

// SvaraQ extracts the Q (quantity) field from a svara byte.
func SvaraQ(b byte) byte {
	return (b >> 6) & 0x03
}

// SvaraA extracts the A (accent) field from a svara byte.
func SvaraA(b byte) byte {
	return (b >> 4) & 0x03
}

// SvaraS extracts the S (series) field from a svara byte.
func SvaraS(b byte) byte {
	return (b >> 2) & 0x03
}

// SvaraG extracts the G (grade) field from a svara byte.
func SvaraG(b byte) byte {
	return b & 0x03
}
