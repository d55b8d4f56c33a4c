package zipscan

import "encoding/binary"

// Test fixtures are built programmatically rather than as giant hex
// literals (aside from the handful of deliberately malformed edge cases
// that are easiest to express as raw bytes) so each scenario's intent
// stays readable.

func le16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// buildLocalFileHeader returns a complete local file header record
// (signature + fixed fields + filename, no extra field) followed
// immediately by data as the entry's stored (uncompressed) payload.
func buildLocalFileHeader(name string, data []byte, flags uint16) []byte {
	var b []byte
	b = append(b, le32(sigLocalFileHeader)...)
	b = append(b, le16(20)...)    // minimum version
	b = append(b, le16(flags)...) // general purpose flag
	b = append(b, le16(0)...)     // compression method: stored
	b = append(b, le16(0)...)     // last mod time
	b = append(b, le16(0x21)...)  // last mod date
	b = append(b, le32(0)...)     // crc32 (unchecked by this parser)
	b = append(b, le32(uint32(len(data)))...)
	b = append(b, le32(uint32(len(data)))...)
	b = append(b, le16(uint16(len(name)))...)
	b = append(b, le16(0)...) // extra field length
	b = append(b, []byte(name)...)
	b = append(b, data...)
	return b
}

// buildLocalFileHeaderWithDescriptor is like buildLocalFileHeader but sets
// bit 3 of the flags and appends a trailing data descriptor recording the
// sizes. The header's own size fields already carry the real size (the
// "size known up front" variant permitted by spec.md §3/S5), so payload
// framing stays deterministic for the test.
func buildLocalFileHeaderWithDescriptor(name string, data []byte) []byte {
	var b []byte
	b = append(b, le32(sigLocalFileHeader)...)
	b = append(b, le16(20)...)
	b = append(b, le16(1<<3)...) // data descriptor flag
	b = append(b, le16(0)...)
	b = append(b, le16(0)...)
	b = append(b, le16(0x21)...)
	b = append(b, le32(0)...) // crc32 unknown at header-write time
	b = append(b, le32(uint32(len(data)))...)
	b = append(b, le32(uint32(len(data)))...)
	b = append(b, le16(uint16(len(name)))...)
	b = append(b, le16(0)...)
	b = append(b, []byte(name)...)
	b = append(b, data...)
	b = append(b, le32(0xdeadbeef)...)        // crc32
	b = append(b, le32(uint32(len(data)))...) // compressed size
	b = append(b, le32(uint32(len(data)))...) // uncompressed size
	return b
}

// buildCentralDirFileHeader returns one central directory file header
// record for an entry whose local header begins at localOffset.
func buildCentralDirFileHeader(name string, comment string, localOffset uint32, size uint32) []byte {
	var b []byte
	b = append(b, le32(sigCentralDirFileHeader)...)
	b = append(b, le16(20)...) // version made by
	b = append(b, le16(20)...) // version needed
	b = append(b, le16(0)...)  // general purpose flag
	b = append(b, le16(0)...)  // compression method
	b = append(b, le16(0)...)  // last mod time
	b = append(b, le16(0x21)...)
	b = append(b, le32(0)...) // crc32
	b = append(b, le32(size)...)
	b = append(b, le32(size)...)
	b = append(b, le16(uint16(len(name)))...)
	b = append(b, le16(0)...) // extra field length
	b = append(b, le16(uint16(len(comment)))...)
	b = append(b, le16(0)...) // disk start
	b = append(b, le16(0)...) // internal attrs
	b = append(b, le32(0)...) // external attrs
	b = append(b, le32(localOffset)...)
	b = append(b, []byte(name)...)
	b = append(b, []byte(comment)...)
	return b
}

func buildDigitalSignature(data []byte) []byte {
	var b []byte
	b = append(b, le32(sigDigitalSignature)...)
	b = append(b, le16(uint16(len(data)))...)
	b = append(b, data...)
	return b
}

func buildEndOfCentralDirectory(numEntries uint16, cdSize uint32, cdOffset uint32, comment string) []byte {
	var b []byte
	b = append(b, le32(sigEndOfCentralDirectory)...)
	b = append(b, le16(0)...) // disk number
	b = append(b, le16(0)...) // disk start of cd
	b = append(b, le16(numEntries)...)
	b = append(b, le16(numEntries)...)
	b = append(b, le32(cdSize)...)
	b = append(b, le32(cdOffset)...)
	b = append(b, le16(uint16(len(comment)))...)
	b = append(b, []byte(comment)...)
	return b
}
