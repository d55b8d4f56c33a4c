package zipscan

// Known record signatures, decoded as little-endian 32-bit integers. The
// bytes appear in the wire format in little-endian order, e.g. the local
// file header signature is the byte sequence 0x50 0x4b 0x03 0x04.
const (
	sigLocalFileHeader       uint32 = 0x04034b50
	sigArchiveExtraData      uint32 = 0x08064b50
	sigCentralDirFileHeader  uint32 = 0x02014b50
	sigDigitalSignature      uint32 = 0x05054b50
	sigEndOfCentralDirectory uint32 = 0x06054b50
	// sigZip64EndOfCentralDir is listed for reference only: nothing in the
	// parser matches on it, so the resync scanner skips a ZIP64 trailer
	// like any other unrecognized bytes, and it is never decoded.
	sigZip64EndOfCentralDir uint32 = 0x06064b50
	// sigDataDescriptorPreamble is the optional 4-byte signature some
	// writers place before a data descriptor's crc32 field. See the open
	// question in spec.md §9: it is opportunistically consumed, never
	// required.
	sigDataDescriptorPreamble uint32 = 0x08074b50
)

// probeSignature reads 4 bytes from c and compares them, decoded as a
// little-endian uint32, against want. On a match the 4 bytes stay
// consumed. On a miss (including a short read) the cursor is rewound to
// its pre-probe position and matched is false.
func probeSignature(c *cursor, want uint32) (matched bool, err error) {
	start := c.position()
	chunk, err := c.read(4)
	if err != nil {
		return false, err
	}
	if len(chunk) < 4 {
		if rerr := c.seek(start); rerr != nil {
			return false, rerr
		}
		return false, nil
	}
	got, err := decodeUint32LE(chunk)
	if err != nil {
		return false, err
	}
	if got != want {
		if rerr := c.seek(start); rerr != nil {
			return false, rerr
		}
		return false, nil
	}
	return true, nil
}

// matchSignatureRaw compares an already-read 4-byte chunk against want
// without touching the cursor. Used when the caller is probing several
// signatures against the same 4 bytes in sequence (the resync scanner).
func matchSignatureRaw(chunk []byte, want uint32) bool {
	if len(chunk) != 4 {
		return false
	}
	got, err := decodeUint32LE(chunk)
	if err != nil {
		return false
	}
	return got == want
}
