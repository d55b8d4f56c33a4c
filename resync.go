package zipscan

// resyncMatch identifies which known signature the resync scanner landed
// on.
type resyncMatch int

const (
	resyncNone resyncMatch = iota
	resyncLocalFileHeader
	resyncArchiveExtraData
	resyncCentralDirFileHeader
	resyncEndOfInput
)

// resyncScan advances c byte-by-byte from its current position until one
// of the three signatures the tail region can legitimately contain is
// found, or fewer than 4 bytes remain. On a match, the matched signature's
// 4 bytes are left consumed (as if probeSignature had matched). On
// resyncEndOfInput, the cursor sits wherever it ran out of bytes to try.
func resyncScan(c *cursor) (resyncMatch, error) {
	for {
		if !c.atLeast(4) {
			return resyncEndOfInput, nil
		}
		chunk, err := c.read(4)
		if err != nil {
			return resyncNone, err
		}
		if len(chunk) < 4 {
			return resyncEndOfInput, nil
		}

		switch {
		case matchSignatureRaw(chunk, sigLocalFileHeader):
			return resyncLocalFileHeader, nil
		case matchSignatureRaw(chunk, sigArchiveExtraData):
			return resyncArchiveExtraData, nil
		case matchSignatureRaw(chunk, sigCentralDirFileHeader):
			return resyncCentralDirFileHeader, nil
		}

		// No match: net advance of one byte, i.e. rewind 3 of the 4 we
		// just consumed.
		if err := c.rewind(3); err != nil {
			return resyncNone, err
		}
	}
}
