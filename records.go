package zipscan

// Each decoder in this file assumes its record's signature has already
// been matched and consumed by the caller. On success the cursor is left
// positioned immediately after the last byte of the record. On failure
// the cursor may be anywhere within the record; callers that need to
// resync must rewind to a known-good position themselves (the archive
// walker rewinds to the offset of the failed signature match).

const localFileHeaderFixedSize = 26
const centralDirectoryFileHeaderFixedSize = 42
const endOfCentralDirectoryFixedSize = 18
const dataDescriptorSize = 12

// decodeLocalFileHeader reads the 26-byte fixed payload of a local file
// header plus its filename and extra-field tails, in that order.
func decodeLocalFileHeader(c *cursor) (LocalFileHeader, error) {
	const op = "decodeLocalFileHeader"
	fixed, err := c.read(localFileHeaderFixedSize)
	if err != nil {
		return LocalFileHeader{}, err
	}
	if len(fixed) < localFileHeaderFixedSize {
		return LocalFileHeader{}, newParseError(op, ErrInputTruncated, c.position(), nil)
	}

	minVersion, _ := decodeUint16LE(fixed[0:2])
	flags, _ := decodeUint16LE(fixed[2:4])
	method, _ := decodeUint16LE(fixed[4:6])
	modTime, _ := decodeUint16LE(fixed[6:8])
	modDate, _ := decodeUint16LE(fixed[8:10])
	crc32, _ := decodeUint32LE(fixed[10:14])
	compressedSize, _ := decodeUint32LE(fixed[14:18])
	uncompressedSize, _ := decodeUint32LE(fixed[18:22])
	filenameLength, _ := decodeUint16LE(fixed[22:24])
	extraFieldLength, _ := decodeUint16LE(fixed[24:26])

	filenameChunk, err := c.read(int(filenameLength))
	if err != nil {
		return LocalFileHeader{}, err
	}
	if len(filenameChunk) < int(filenameLength) {
		return LocalFileHeader{}, newParseError(op, ErrInputTruncated, c.position(), nil)
	}

	extraChunk, err := c.read(int(extraFieldLength))
	if err != nil {
		return LocalFileHeader{}, err
	}
	if len(extraChunk) < int(extraFieldLength) {
		return LocalFileHeader{}, newParseError(op, ErrInputTruncated, c.position(), nil)
	}

	return LocalFileHeader{
		MinimumVersion:     minVersion,
		GeneralPurposeFlag: GeneralPurposeFlags(flags),
		CompressionMethod:  CompressionMethod(method),
		LastModTime:        modTime,
		LastModDate:        modDate,
		CRC32:              crc32,
		CompressedSize:     compressedSize,
		UncompressedSize:   uncompressedSize,
		Filename:           decodeASCIIString(filenameChunk),
		ExtraField:         extraChunk,
	}, nil
}

// decodeDataDescriptor reads an optional data descriptor: three
// consecutive 32-bit values (crc32, compressed_size, uncompressed_size),
// optionally preceded by the signature 0x08074b50 when opts requests it
// and the bytes are present.
func decodeDataDescriptor(c *cursor, opts ParseOptions) (DataDescriptor, error) {
	const op = "decodeDataDescriptor"
	hadPreamble := false
	if opts.ConsumeDataDescriptorPreamble {
		matched, err := probeSignature(c, sigDataDescriptorPreamble)
		if err != nil {
			return DataDescriptor{}, err
		}
		hadPreamble = matched
	}

	chunk, err := c.read(dataDescriptorSize)
	if err != nil {
		return DataDescriptor{}, err
	}
	if len(chunk) < dataDescriptorSize {
		return DataDescriptor{}, newParseError(op, ErrInputTruncated, c.position(), nil)
	}
	crc32, _ := decodeUint32LE(chunk[0:4])
	compressedSize, _ := decodeUint32LE(chunk[4:8])
	uncompressedSize, _ := decodeUint32LE(chunk[8:12])

	return DataDescriptor{
		CRC32:                 crc32,
		CompressedSize:        compressedSize,
		UncompressedSize:      uncompressedSize,
		HadPreambleSignature:  hadPreamble,
	}, nil
}

// decodeStoredFile reads a local file header, the compressed_size raw
// bytes of payload that follow it, and, if the header's general-purpose
// flag bit 3 is set, a trailing data descriptor.
func decodeStoredFile(c *cursor, opts ParseOptions) (StoredFile, error) {
	header, err := decodeLocalFileHeader(c)
	if err != nil {
		return StoredFile{}, err
	}

	payload, err := c.read(int(header.CompressedSize))
	if err != nil {
		return StoredFile{}, err
	}
	if len(payload) < int(header.CompressedSize) {
		return StoredFile{}, newParseError("decodeStoredFile", ErrInputTruncated, c.position(), nil)
	}

	sf := StoredFile{
		LocalFileHeader: header,
		Payload:         payload,
	}

	if header.GeneralPurposeFlag.HasDataDescriptor() {
		dd, err := decodeDataDescriptor(c, opts)
		if err != nil {
			return StoredFile{}, err
		}
		sf.DataDescriptor = &dd
	}

	return sf, nil
}

// decodeArchiveExtraDataRecord reads a 32-bit length followed by that many
// raw bytes.
func decodeArchiveExtraDataRecord(c *cursor) (ArchiveExtraDataRecord, error) {
	const op = "decodeArchiveExtraDataRecord"
	lengthChunk, err := c.read(4)
	if err != nil {
		return ArchiveExtraDataRecord{}, err
	}
	if len(lengthChunk) < 4 {
		return ArchiveExtraDataRecord{}, newParseError(op, ErrInputTruncated, c.position(), nil)
	}
	length, _ := decodeUint32LE(lengthChunk)

	data, err := c.read(int(length))
	if err != nil {
		return ArchiveExtraDataRecord{}, err
	}
	if len(data) < int(length) {
		return ArchiveExtraDataRecord{}, newParseError(op, ErrInputTruncated, c.position(), nil)
	}
	return ArchiveExtraDataRecord{ExtraField: data}, nil
}

// decodeCentralDirectoryFileHeader reads the 42-byte fixed payload of a
// central directory file header plus its filename, extra-field, and
// comment tails, in that order.
func decodeCentralDirectoryFileHeader(c *cursor) (CentralDirectoryFileHeader, error) {
	const op = "decodeCentralDirectoryFileHeader"
	fixed, err := c.read(centralDirectoryFileHeaderFixedSize)
	if err != nil {
		return CentralDirectoryFileHeader{}, err
	}
	if len(fixed) < centralDirectoryFileHeaderFixedSize {
		return CentralDirectoryFileHeader{}, newParseError(op, ErrInputTruncated, c.position(), nil)
	}

	versionMadeBy, _ := decodeUint16LE(fixed[0:2])
	minVersion, _ := decodeUint16LE(fixed[2:4])
	flags, _ := decodeUint16LE(fixed[4:6])
	method, _ := decodeUint16LE(fixed[6:8])
	modTime, _ := decodeUint16LE(fixed[8:10])
	modDate, _ := decodeUint16LE(fixed[10:12])
	crc32, _ := decodeUint32LE(fixed[12:16])
	compressedSize, _ := decodeUint32LE(fixed[16:20])
	uncompressedSize, _ := decodeUint32LE(fixed[20:24])
	filenameLength, _ := decodeUint16LE(fixed[24:26])
	extraFieldLength, _ := decodeUint16LE(fixed[26:28])
	fileCommentLength, _ := decodeUint16LE(fixed[28:30])
	diskStart, _ := decodeUint16LE(fixed[30:32])
	internalAttrs, _ := decodeUint16LE(fixed[32:34])
	externalAttrs, _ := decodeUint32LE(fixed[34:38])
	localHeaderOffset, _ := decodeUint32LE(fixed[38:42])

	filenameChunk, err := c.read(int(filenameLength))
	if err != nil {
		return CentralDirectoryFileHeader{}, err
	}
	if len(filenameChunk) < int(filenameLength) {
		return CentralDirectoryFileHeader{}, newParseError(op, ErrInputTruncated, c.position(), nil)
	}

	extraChunk, err := c.read(int(extraFieldLength))
	if err != nil {
		return CentralDirectoryFileHeader{}, err
	}
	if len(extraChunk) < int(extraFieldLength) {
		return CentralDirectoryFileHeader{}, newParseError(op, ErrInputTruncated, c.position(), nil)
	}

	commentChunk, err := c.read(int(fileCommentLength))
	if err != nil {
		return CentralDirectoryFileHeader{}, err
	}
	if len(commentChunk) < int(fileCommentLength) {
		return CentralDirectoryFileHeader{}, newParseError(op, ErrInputTruncated, c.position(), nil)
	}

	return CentralDirectoryFileHeader{
		VersionMadeBy:          versionMadeBy,
		MinimumVersion:         minVersion,
		GeneralPurposeFlag:     GeneralPurposeFlags(flags),
		CompressionMethod:      CompressionMethod(method),
		LastModTime:            modTime,
		LastModDate:            modDate,
		CRC32:                  crc32,
		CompressedSize:         compressedSize,
		UncompressedSize:       uncompressedSize,
		DiskStart:              diskStart,
		InternalFileAttributes: internalAttrs,
		ExternalFileAttributes: externalAttrs,
		LocalFileHeaderOffset:  localHeaderOffset,
		Filename:               decodeASCIIString(filenameChunk),
		ExtraField:             extraChunk,
		FileComment:            decodeASCIIString(commentChunk),
	}, nil
}

// decodeDigitalSignature reads a 16-bit length followed by that many raw
// signature bytes.
func decodeDigitalSignature(c *cursor) (DigitalSignature, error) {
	const op = "decodeDigitalSignature"
	lengthChunk, err := c.read(2)
	if err != nil {
		return DigitalSignature{}, err
	}
	if len(lengthChunk) < 2 {
		return DigitalSignature{}, newParseError(op, ErrInputTruncated, c.position(), nil)
	}
	length, _ := decodeUint16LE(lengthChunk)

	data, err := c.read(int(length))
	if err != nil {
		return DigitalSignature{}, err
	}
	if len(data) < int(length) {
		return DigitalSignature{}, newParseError(op, ErrInputTruncated, c.position(), nil)
	}
	return DigitalSignature{SignatureData: data}, nil
}

// decodeEndOfCentralDirectory reads the 18-byte fixed payload of the
// end-of-central-directory record plus its comment tail.
func decodeEndOfCentralDirectory(c *cursor) (EndOfCentralDirectoryRecord, error) {
	const op = "decodeEndOfCentralDirectory"
	fixed, err := c.read(endOfCentralDirectoryFixedSize)
	if err != nil {
		return EndOfCentralDirectoryRecord{}, err
	}
	if len(fixed) < endOfCentralDirectoryFixedSize {
		return EndOfCentralDirectoryRecord{}, newParseError(op, ErrInputTruncated, c.position(), nil)
	}

	diskNumber, _ := decodeUint16LE(fixed[0:2])
	diskStartCD, _ := decodeUint16LE(fixed[2:4])
	recordsOnDisk, _ := decodeUint16LE(fixed[4:6])
	recordsTotal, _ := decodeUint16LE(fixed[6:8])
	cdSize, _ := decodeUint32LE(fixed[8:12])
	cdOffset, _ := decodeUint32LE(fixed[12:16])
	commentLength, _ := decodeUint16LE(fixed[16:18])

	commentChunk, err := c.read(int(commentLength))
	if err != nil {
		return EndOfCentralDirectoryRecord{}, err
	}
	if len(commentChunk) < int(commentLength) {
		return EndOfCentralDirectoryRecord{}, newParseError(op, ErrInputTruncated, c.position(), nil)
	}

	return EndOfCentralDirectoryRecord{
		DiskNumber:                  diskNumber,
		DiskStartCentralDirectory:   diskStartCD,
		RecordsOnThisDisk:           recordsOnDisk,
		RecordsTotal:                recordsTotal,
		CentralDirectorySize:        cdSize,
		OffsetStartCentralDirectory: cdOffset,
		Comment:                     decodeASCIIString(commentChunk),
	}, nil
}
