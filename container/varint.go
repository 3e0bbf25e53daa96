package container

// ULEB128: little-endian base-128 groups, continuation bit in bit 7.
// Encoded values are capped at the u32 range, so a well-formed varint is
// at most 5 groups long.

const maxVarintGroups = 5

// AppendUvarint appends the ULEB128 encoding of v to dst and returns the
// extended slice.
func AppendUvarint(dst []byte, v uint64) []byte {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		dst = append(dst, b)
		if v == 0 {
			return dst
		}
	}
}

// Uvarint decodes a ULEB128 value from the front of data, returning the
// value and the number of bytes consumed. A varint that does not
// terminate within 5 groups and a value exceeding the u32 range are
// rejected as distinct failures.
func Uvarint(data []byte) (uint64, int, error) {
	var v uint64
	var shift uint

	for i, b := range data {
		if i >= maxVarintGroups {
			return 0, 0, &VarintOverflowError{}
		}
		v |= uint64(b&0x7F) << shift
		shift += 7
		if b&0x80 == 0 {
			if v > 0xFFFFFFFF {
				return 0, 0, &VarintOverflowError{Value: v}
			}
			return v, i + 1, nil
		}
	}

	return 0, 0, &TruncatedVarintError{}
}
