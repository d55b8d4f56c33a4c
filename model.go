package zipscan

import "fmt"

// CompressionMethod identifies how an entry's payload was compressed.
// zipscan never decompresses payloads; this type exists so callers (and
// the CLI dump) can render a human-readable name for the method code
// recorded in a header.
type CompressionMethod uint16

// Compression method codes as documented by the ZIP format. zipscan reads
// these literally; it does not implement any of the corresponding
// decompression algorithms.
const (
	CompressionStored           CompressionMethod = 0
	CompressionShrunk           CompressionMethod = 1
	CompressionReducedFactor1   CompressionMethod = 2
	CompressionReducedFactor2   CompressionMethod = 3
	CompressionReducedFactor3   CompressionMethod = 4
	CompressionReducedFactor4   CompressionMethod = 5
	CompressionImploded         CompressionMethod = 6
	CompressionDeflated         CompressionMethod = 8
	CompressionEnhancedDeflated CompressionMethod = 9
	CompressionPKWareDCLImplode CompressionMethod = 10
	CompressionBZIP2            CompressionMethod = 12
	CompressionLZMA             CompressionMethod = 14
	CompressionIBMTerse         CompressionMethod = 18
	CompressionIBMLZ77z         CompressionMethod = 19
	CompressionPPMd             CompressionMethod = 98
)

// String returns a human-readable name for known compression methods, or
// the decimal code for anything else. Grounded on the teacher's
// compressionMethodToString.
func (m CompressionMethod) String() string {
	switch m {
	case CompressionStored:
		return "stored"
	case CompressionShrunk:
		return "shrunk"
	case CompressionReducedFactor1, CompressionReducedFactor2, CompressionReducedFactor3, CompressionReducedFactor4:
		return "reduced"
	case CompressionImploded:
		return "imploded"
	case CompressionDeflated:
		return "deflated"
	case CompressionEnhancedDeflated:
		return "enhanced-deflated"
	case CompressionPKWareDCLImplode:
		return "pkware-dcl-imploded"
	case CompressionBZIP2:
		return "bzip2"
	case CompressionLZMA:
		return "lzma"
	case CompressionIBMTerse:
		return "ibm-terse"
	case CompressionIBMLZ77z:
		return "ibm-lz77z"
	case CompressionPPMd:
		return "ppmd"
	default:
		return fmt.Sprintf("%d", uint16(m))
	}
}

// GeneralPurposeFlags is the 16-bit general-purpose bit flag carried by
// both local file headers and central directory file headers.
//
// Bit 00: encrypted file
// Bit 01-02: compression-method-specific options
// Bit 03: data descriptor follows the entry payload
// Bit 04: enhanced deflation
// Bit 05: compressed patched data
// Bit 06: strong encryption
// Bit 07-10: unused
// Bit 11: filename/comment is UTF-8 (language encoding flag)
// Bit 12: reserved
// Bit 13: mask header values (used with strong encryption)
// Bit 14-15: reserved
type GeneralPurposeFlags uint16

// HasDataDescriptor reports whether bit 3 is set, meaning a DataDescriptor
// trailer follows the entry's payload.
func (f GeneralPurposeFlags) HasDataDescriptor() bool {
	return f&(1<<3) != 0
}

// IsEncrypted reports whether bit 0 is set.
func (f GeneralPurposeFlags) IsEncrypted() bool {
	return f&(1<<0) != 0
}

// IsUTF8 reports whether bit 11 (the language encoding flag) is set. The
// core never honors this bit when decoding filenames/comments (spec.md
// §9); it is exposed so a caller can reinterpret the raw bytes itself.
func (f GeneralPurposeFlags) IsUTF8() bool {
	return f&(1<<11) != 0
}

// LocalFileHeader is the per-entry record that precedes an entry's
// payload bytes in the archive body.
type LocalFileHeader struct {
	MinimumVersion      uint16
	GeneralPurposeFlag  GeneralPurposeFlags
	CompressionMethod   CompressionMethod
	LastModTime         uint16 // MS-DOS packed time
	LastModDate         uint16 // MS-DOS packed date
	CRC32               uint32
	CompressedSize      uint32
	UncompressedSize    uint32
	Filename            string
	ExtraField          []byte
}

// DataDescriptor is an optional trailer written after an entry's payload
// when GeneralPurposeFlags.HasDataDescriptor is set on its local file
// header.
type DataDescriptor struct {
	CRC32            uint32
	CompressedSize   uint32
	UncompressedSize uint32
	// HadPreambleSignature records whether the optional 4-byte signature
	// 0x08074b50 was found and consumed ahead of the CRC32 field. This is
	// an opportunistic, non-authoritative read (spec.md §9).
	HadPreambleSignature bool
}

// StoredFile is one parsed entry from the body of the archive: its local
// file header, the raw payload bytes that followed it, an optional data
// descriptor, and the cross-reference attributes filled in by the
// reconciler.
type StoredFile struct {
	LocalFileHeader LocalFileHeader
	// Payload holds the raw, still-compressed bytes of the entry. zipscan
	// never decompresses them.
	Payload []byte
	DataDescriptor *DataDescriptor

	// Position is this entry's 0-based index in body order.
	Position int
	// OffsetInArchive is the byte offset of this entry's local-header
	// signature from the start of the archive.
	OffsetInArchive int64

	// FoundInCentralDirectory is set by the reconciler: true if a central
	// directory file header exists with a byte-exact matching filename.
	FoundInCentralDirectory bool
	// OffsetFromCentralDirectory is set by the reconciler when
	// FoundInCentralDirectory is true. It is
	// CentralDirectory.OffsetFromStartOfArchive - OffsetInArchive: a
	// parser-defined delta, distinct from the central directory's own
	// LocalFileHeaderOffset field (spec.md §9).
	OffsetFromCentralDirectory *int64
}

// ArchiveExtraDataRecord is a free-standing, optional record consisting of
// a 32-bit length followed by that many raw bytes.
type ArchiveExtraDataRecord struct {
	ExtraField []byte
}

// CentralDirectoryFileHeader is one entry in the central directory: the
// archive's authoritative index.
type CentralDirectoryFileHeader struct {
	VersionMadeBy          uint16
	MinimumVersion         uint16
	GeneralPurposeFlag     GeneralPurposeFlags
	CompressionMethod      CompressionMethod
	LastModTime            uint16
	LastModDate            uint16
	CRC32                  uint32
	CompressedSize         uint32
	UncompressedSize       uint32
	DiskStart              uint16
	InternalFileAttributes uint16
	ExternalFileAttributes uint32
	// LocalFileHeaderOffset is the central directory's own record of the
	// byte offset of this entry's local file header, verbatim from the
	// wire. Compare against StoredFile.OffsetInArchive to detect a
	// disagreement between the two views of the archive.
	LocalFileHeaderOffset uint32
	Filename              string
	ExtraField            []byte
	FileComment            string

	// Position is this header's 0-based index within the central
	// directory.
	Position int
}

// DigitalSignature is an optional record in the central directory section
// consisting of a 16-bit length followed by that many raw signature
// bytes.
type DigitalSignature struct {
	SignatureData []byte
}

// EndOfCentralDirectoryRecord is the trailer that terminates (and
// authenticates the extent of) the central directory section.
type EndOfCentralDirectoryRecord struct {
	DiskNumber                 uint16
	DiskStartCentralDirectory  uint16
	RecordsOnThisDisk          uint16
	RecordsTotal               uint16
	CentralDirectorySize       uint32
	OffsetStartCentralDirectory uint32
	Comment                    string
}

// CentralDirectory is the archive's tail-located index: an ordered
// sequence of file headers, an optional digital signature, and exactly
// one end-of-central-directory record.
type CentralDirectory struct {
	FileHeaders             []CentralDirectoryFileHeader
	DigitalSignature        *DigitalSignature
	EndOfCentralDirectory    EndOfCentralDirectoryRecord

	// OffsetFromStartOfArchive is the byte offset at which the first
	// central-directory file-header signature was located. Derived, not
	// on the wire; used by the reconciler.
	OffsetFromStartOfArchive int64
}

// ZipFile is the assembled model returned by Parse: every stored file in
// body order, the optional archive extra data record, and the optional
// central directory.
type ZipFile struct {
	StoredFiles            []StoredFile
	ArchiveExtraDataRecord *ArchiveExtraDataRecord
	CentralDirectory       *CentralDirectory

	// Warnings collects Reported-class conditions (spec.md §7) that did
	// not prevent a model from being returned, e.g. a missing
	// end-of-central-directory trailer. Populated in addition to, not
	// instead of, the slog messages emitted during Parse.
	Warnings []string
}
