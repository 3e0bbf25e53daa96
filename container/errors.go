package container

import "fmt"

// HeaderTooShortError is returned when the input is shorter than the
// fixed 14-byte header.
type HeaderTooShortError struct {
	Len int
}

func (e *HeaderTooShortError) Error() string {
	return fmt.Sprintf("container: %d bytes is too short for an SLBC header", e.Len)
}

// BadMagicError is returned when the first four bytes are not "SLBC".
type BadMagicError struct {
	Got [4]byte
}

func (e *BadMagicError) Error() string {
	return fmt.Sprintf("container: bad magic % X (expected \"SLBC\")", e.Got[:])
}

// TruncatedVarintError is returned when a ULEB128 value runs off the end
// of the buffer before its final group.
type TruncatedVarintError struct{}

func (e *TruncatedVarintError) Error() string {
	return "container: truncated ULEB128"
}

// VarintOverflowError is returned when a ULEB128 value does not terminate
// within 5 groups or exceeds the u32 range.
type VarintOverflowError struct {
	Value uint64
}

func (e *VarintOverflowError) Error() string {
	if e.Value > 0 {
		return fmt.Sprintf("container: ULEB128 value %d exceeds u32 range", e.Value)
	}
	return "container: ULEB128 exceeds 5 groups (max u32)"
}

// ChunkPayloadOverflowError is returned when a chunk's declared payload
// length extends past the end of the buffer.
type ChunkPayloadOverflowError struct {
	Offset int
	Length int
}

func (e *ChunkPayloadOverflowError) Error() string {
	return fmt.Sprintf("container: chunk payload extends beyond buffer (offset %d, len %d)",
		e.Offset, e.Length)
}
