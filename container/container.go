// Package container implements the .slbc container format: a fixed
// 14-byte header followed by a sequence of type-tagged, ULEB128
// length-prefixed chunks terminated by an EOF chunk.
//
// Layout:
//
//	offset 0–3    magic "SLBC"
//	offset 4–7    version quad
//	offset 8–10   reserved (zero)
//	offset 11     flag bits
//	offset 12–13  little-endian u16 extended-header length
//	then          [type:1][length:uleb128][payload]* ... EOF (0xFF, len 0)
package container

import (
	"bytes"
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

// Magic identifies a .slbc container.
var Magic = [4]byte{'S', 'L', 'B', 'C'}

// Version is the container format version quad (v0.10).
var Version = [4]byte{0x00, 0x00, 0x00, 0x0A}

// HeaderSize is the fixed header length in bytes.
const HeaderSize = 14

// Flag bits (header byte 11).
const (
	FlagHasLipi     byte = 0x80
	FlagHasMeta     byte = 0x40
	FlagInterleaved byte = 0x20
	FlagVedic       byte = 0x10
	FlagVya         byte = 0x08
)

// Chunk type codes.
const (
	ChunkPhon byte = 0x01
	ChunkBha  byte = 0x02
	ChunkLipi byte = 0x03
	ChunkMeta byte = 0x04
	ChunkDict byte = 0x05
	ChunkIdx  byte = 0x06
	ChunkAnvy byte = 0x07
	ChunkExt  byte = 0x10
	ChunkEOF  byte = 0xFF
)

// ChunkTypeName returns the mnemonic for a chunk type code.
func ChunkTypeName(t byte) string {
	switch t {
	case ChunkPhon:
		return "PHON"
	case ChunkBha:
		return "BHA"
	case ChunkLipi:
		return "LIPI"
	case ChunkMeta:
		return "META"
	case ChunkDict:
		return "DICT"
	case ChunkIdx:
		return "IDX"
	case ChunkAnvy:
		return "ANVY"
	case ChunkExt:
		return "EXT"
	case ChunkEOF:
		return "EOF"
	default:
		return "???"
	}
}

// HeaderOptions selects the builder-settable flag bits. VEDIC and VYA are
// reader-side flags and cannot be set when building.
type HeaderOptions struct {
	HasLipi     bool
	HasMeta     bool
	Interleaved bool
}

// Header is a parsed container header. Immutable once built.
type Header struct {
	Version           [4]byte
	Flags             byte
	ExtendedHeaderLen uint16
}

// HasLipi reports whether the HAS_LIPI flag is set.
func (h Header) HasLipi() bool { return h.Flags&FlagHasLipi != 0 }

// HasMeta reports whether the HAS_META flag is set.
func (h Header) HasMeta() bool { return h.Flags&FlagHasMeta != 0 }

// Interleaved reports whether the INTERLEAVED flag is set.
func (h Header) Interleaved() bool { return h.Flags&FlagInterleaved != 0 }

// Vedic reports whether the VEDIC flag is set.
func (h Header) Vedic() bool { return h.Flags&FlagVedic != 0 }

// Vya reports whether the VYA flag is set.
func (h Header) Vya() bool { return h.Flags&FlagVya != 0 }

// Chunk is one parsed container chunk.
type Chunk struct {
	Type    byte
	Payload []byte
}

// BuildHeader assembles the fixed 14-byte header. Reserved bytes are
// zeroed and no extended header is emitted.
func BuildHeader(opts HeaderOptions) [HeaderSize]byte {
	var hdr [HeaderSize]byte
	copy(hdr[0:4], Magic[:])
	copy(hdr[4:8], Version[:])

	var flags byte
	if opts.HasLipi {
		flags |= FlagHasLipi
	}
	if opts.HasMeta {
		flags |= FlagHasMeta
	}
	if opts.Interleaved {
		flags |= FlagInterleaved
	}
	hdr[11] = flags

	// hdr[12:14] stays zero: no extended header.
	return hdr
}

// AppendChunk appends one chunk (type, ULEB128 length, payload) to dst.
func AppendChunk(dst []byte, chunkType byte, payload []byte) []byte {
	dst = append(dst, chunkType)
	dst = AppendUvarint(dst, uint64(len(payload)))
	return append(dst, payload...)
}

// AppendEOF appends the terminating EOF chunk (type 0xFF, length 0).
func AppendEOF(dst []byte) []byte {
	return append(dst, ChunkEOF, 0x00)
}

// Build wraps a PHON payload in a complete .slbc container in recitation
// mode: HAS_LIPI, HAS_META and INTERLEAVED set, one PHON chunk, EOF.
func Build(phonPayload []byte) []byte {
	hdr := BuildHeader(HeaderOptions{HasLipi: true, HasMeta: true, Interleaved: true})

	out := make([]byte, 0, HeaderSize+2+len(phonPayload)+8)
	out = append(out, hdr[:]...)
	out = AppendChunk(out, ChunkPhon, phonPayload)
	return AppendEOF(out)
}

// Parse splits a .slbc container into its header and ordered chunk list.
// Parsing stops after the first EOF chunk; trailing bytes are not
// validated.
func Parse(data []byte) (Header, []Chunk, error) {
	if len(data) < HeaderSize {
		return Header{}, nil, &HeaderTooShortError{Len: len(data)}
	}
	if !bytes.Equal(data[0:4], Magic[:]) {
		return Header{}, nil, &BadMagicError{Got: [4]byte(data[0:4])}
	}

	var hdr Header
	copy(hdr.Version[:], data[4:8])
	hdr.Flags = data[11]
	hdr.ExtendedHeaderLen = binary.LittleEndian.Uint16(data[12:14])

	pos := HeaderSize + int(hdr.ExtendedHeaderLen)
	var chunks []Chunk

	for pos < len(data) {
		chunkType := data[pos]
		pos++

		payloadLen, n, err := Uvarint(data[pos:])
		if err != nil {
			return Header{}, nil, errors.Wrapf(err, "chunk length at offset %d", pos)
		}
		pos += n

		if pos+int(payloadLen) > len(data) {
			return Header{}, nil, &ChunkPayloadOverflowError{Offset: pos, Length: int(payloadLen)}
		}

		payload := make([]byte, payloadLen)
		copy(payload, data[pos:pos+int(payloadLen)])
		pos += int(payloadLen)

		chunks = append(chunks, Chunk{Type: chunkType, Payload: payload})
		if chunkType == ChunkEOF {
			break
		}
	}

	return hdr, chunks, nil
}
