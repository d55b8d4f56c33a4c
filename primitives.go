package zipscan

import "encoding/binary"

// decodeUint16LE decodes a little-endian 16-bit unsigned integer from an
// exact-length 2-byte slice.
func decodeUint16LE(b []byte) (uint16, error) {
	if len(b) < 2 {
		return 0, newParseError("decodeUint16LE", ErrInputTruncated, 0, nil)
	}
	if len(b) > 2 {
		return 0, newParseError("decodeUint16LE", ErrIntegerDecode, 0, nil)
	}
	return binary.LittleEndian.Uint16(b), nil
}

// decodeUint32LE decodes a little-endian 32-bit unsigned integer from an
// exact-length 4-byte slice.
func decodeUint32LE(b []byte) (uint32, error) {
	if len(b) < 4 {
		return 0, newParseError("decodeUint32LE", ErrInputTruncated, 0, nil)
	}
	if len(b) > 4 {
		return 0, newParseError("decodeUint32LE", ErrIntegerDecode, 0, nil)
	}
	return binary.LittleEndian.Uint32(b), nil
}

// decodeASCIIString maps each byte of b to the code point of its numeric
// value. This is not UTF-8 decoding: bit 11 of the general-purpose flag,
// which signals a UTF-8 filename, is not honored by the core (see the
// GeneralPurposeFlags.IsUTF8 helper in model.go for callers who want to
// interpret it themselves).
func decodeASCIIString(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}
