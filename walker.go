package zipscan

import (
	"io"
)

// Parse is the top-level entry point: it reads the archive behind r,
// walks the local-header stream, probes for and decodes the tail
// sections, and reconciles the two views of the archive. It returns a
// fully assembled ZipFile even when records are malformed or truncated:
// decode failures are recovered by resyncing or by dropping the central
// directory. A read or seek error from r itself, however, is returned as a
// top-level error with a nil ZipFile at whatever point it occurs, even if
// records had already been decoded.
func Parse(r io.ReadSeeker, opts ParseOptions) (*ZipFile, error) {
	c, err := newCursor(r)
	if err != nil {
		return nil, err
	}

	zf := &ZipFile{}
	log := opts.logger()

	// --- Prefix-entries ---
	for {
		start := c.position()
		matched, err := probeSignature(c, sigLocalFileHeader)
		if err != nil {
			return nil, err
		}
		if !matched {
			break
		}
		sf, err := decodeStoredFile(c, opts)
		if err != nil {
			// Rewind to the failed entry's signature and hand off to
			// the resync scanner, which knows how to recover from a
			// decode failure without looping forever on the same spot.
			if serr := c.seek(start); serr != nil {
				return nil, serr
			}
			break
		}
		sf.Position = len(zf.StoredFiles)
		sf.OffsetInArchive = start
		zf.StoredFiles = append(zf.StoredFiles, sf)
	}

	// --- Resync ---
	var enteringCentralDirectory bool
resyncLoop:
	for {
		match, err := resyncScan(c)
		if err != nil {
			return nil, err
		}
		// On a match the scanner leaves the 4 signature bytes consumed, so
		// the matched record starts 4 bytes back.
		matchStart := c.position() - 4
		switch match {
		case resyncLocalFileHeader:
			sf, err := decodeStoredFile(c, opts)
			if err != nil {
				// Recovered: advance one byte past the bogus signature
				// and keep scanning.
				if serr := c.seek(matchStart + 1); serr != nil {
					return nil, serr
				}
				continue
			}
			sf.Position = len(zf.StoredFiles)
			sf.OffsetInArchive = matchStart
			zf.StoredFiles = append(zf.StoredFiles, sf)
		case resyncArchiveExtraData:
			rec, err := decodeArchiveExtraDataRecord(c)
			if err != nil {
				if serr := c.seek(matchStart + 1); serr != nil {
					return nil, serr
				}
				continue
			}
			zf.ArchiveExtraDataRecord = &rec
		case resyncCentralDirFileHeader:
			if err := c.seek(matchStart); err != nil {
				return nil, err
			}
			enteringCentralDirectory = true
			break resyncLoop
		case resyncEndOfInput:
			break resyncLoop
		}
	}

	if !enteringCentralDirectory {
		return zf, nil
	}

	// --- Central-Directory ---
	cd := &CentralDirectory{OffsetFromStartOfArchive: c.position()}
	sectionOK := true

	for {
		matched, err := probeSignature(c, sigCentralDirFileHeader)
		if err != nil {
			return nil, err
		}
		if !matched {
			break
		}
		h, err := decodeCentralDirectoryFileHeader(c)
		if err != nil {
			msg := "central directory file header decode failed; central directory dropped"
			log.Warn(msg, "error", err)
			zf.Warnings = append(zf.Warnings, msg)
			sectionOK = false
			break
		}
		h.Position = len(cd.FileHeaders)
		cd.FileHeaders = append(cd.FileHeaders, h)
	}

	if sectionOK {
		matched, err := probeSignature(c, sigDigitalSignature)
		if err != nil {
			return nil, err
		}
		if matched {
			sig, err := decodeDigitalSignature(c)
			if err != nil {
				msg := "digital signature decode failed; central directory dropped"
				log.Warn(msg, "error", err)
				zf.Warnings = append(zf.Warnings, msg)
				sectionOK = false
			} else {
				cd.DigitalSignature = &sig
			}
		}
	}

	if sectionOK {
		matched, err := probeSignature(c, sigEndOfCentralDirectory)
		if err != nil {
			return nil, err
		}
		if !matched {
			msg := "end-of-central-directory record missing; central directory dropped"
			log.Warn(msg)
			zf.Warnings = append(zf.Warnings, msg)
			sectionOK = false
		} else {
			eocd, err := decodeEndOfCentralDirectory(c)
			if err != nil {
				msg := "end-of-central-directory record decode failed; central directory dropped"
				log.Warn(msg, "error", err)
				zf.Warnings = append(zf.Warnings, msg)
				sectionOK = false
			} else {
				cd.EndOfCentralDirectory = eocd
			}
		}
	}

	if sectionOK {
		zf.CentralDirectory = cd
		reconcile(zf.StoredFiles, zf.CentralDirectory)
	}

	return zf, nil
}
