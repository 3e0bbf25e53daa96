// Package slbc implements SLBC, a binary codec for Sanskrit that keeps
// Pāṇinian phonological structure visible at the byte level.
//
// Every phoneme is a single byte whose bit-fields carry articulatory
// features:
//
//	Svara (vowel):        Q[2] A[2] S[2] G[2]
//	                      quantity, accent, series, grade
//	Vyañjana (consonant): 00 PLACE[3] COLUMN[3]
//	                      place of articulation, manner
//
// Bytes with bits [7:6] = 00 and COLUMN = 110 or 111 are control bytes of
// the bhāṣā (recitation) and lipi (script) layers respectively. The
// remaining combinations are reserved. Classification is total and
// disjoint: every byte value falls into exactly one of
// {svara, vyañjana, bhāṣā control, lipi control, reserved}.
//
// # Pipeline
//
// IAST text is tokenized and encoded into a packed byte stream bounded by
// PADA_START/PADA_END word markers. The stream decodes back to IAST or to
// Devanāgarī, each via its own rendering state machine. Numerals carry two
// parallel encodings: a bhāṣā span of digit-word padas (units first, per
// aṅkānāṃ vāmato gatiḥ) and a lipi span of raw digit glyphs.
//
// Packed streams are framed into .slbc containers by the sibling
// container package.
//
// # Transforms
//
// The transform functions apply Pāṇinian operations (guṇa, vṛddhi,
// jaśtva, saṃprasāraṇa, ...) algebraically on packed bytes, without
// decoding to text.
package slbc
