package reefdx

// AppendULEB128_32 appends the unsigned LEB128 encoding of value to buf.
func AppendULEB128_32(buf []byte, value uint32) []byte {
	for {
		b := byte(value & 0x7f)
		value >>= 7
		if value != 0 {
			b |= 0x80
		}
		buf = append(buf, b)
		if value == 0 {
			return buf
		}
	}
}

// DecodeULEB128_32 decodes an unsigned LEB128 value from the front of buf,
// returning the value and the number of bytes consumed.
func DecodeULEB128_32(buf []byte) (uint32, int, error) {
	var value uint32
	var shift uint
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if shift >= 32 || (shift == 28 && b > 0x0f) {
			return 0, 0, protocolError{"uleb128 value overflows 32 bits"}
		}
		value |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return value, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, protocolError{"uleb128 value truncated"}
}

// AppendCollectionIDAndKey prefixes key with the LEB128-encoded collection id,
// producing the wire-level key used when collections are negotiated.
func AppendCollectionIDAndKey(collectionID uint32, key []byte, buf []byte) ([]byte, error) {
	if buf == nil {
		buf = make([]byte, 0, 5+len(key))
	}

	buf = AppendULEB128_32(buf, collectionID)
	buf = append(buf, key...)
	return buf, nil
}

// DecodeCollectionIDAndKey splits a wire-level key back into the collection
// id and the logical key.
func DecodeCollectionIDAndKey(buf []byte) (uint32, []byte, error) {
	collectionID, n, err := DecodeULEB128_32(buf)
	if err != nil {
		return 0, nil, err
	}

	return collectionID, buf[n:], nil
}
