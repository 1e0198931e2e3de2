package cursor

// EncodeULEB128 appends the ULEB128 encoding of n to dst and returns the
// extended slice. It exists mainly to make the round-trip property in
// package tests expressible without a cursor.
func EncodeULEB128(dst []byte, n uint64) []byte {
	for {
		b := byte(n & 0x7f)
		n >>= 7
		if n != 0 {
			dst = append(dst, b|0x80)
		} else {
			dst = append(dst, b)
			return dst
		}
	}
}

// DecodeULEB128 decodes a single ULEB128 varint from the start of buf,
// returning the value and the number of bytes consumed.
func DecodeULEB128(buf []byte) (uint64, int, error) {
	c := NewByte(buf)
	v, err := c.ULEB128()
	if err != nil {
		return 0, 0, err
	}
	return v, c.Position(), nil
}
