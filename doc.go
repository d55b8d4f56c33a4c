// Package zipscan is a forensic, read-only ZIP structural parser.
//
// Given the raw bytes of a file purported to be a ZIP archive, it produces
// a structured model of every recognizable record in the file: entries
// stored in the body, the central directory index at the tail, the
// end-of-central-directory trailer, optional archive extra data, and an
// optional digital signature. It cross-references the two independent
// views of the archive (the local-header stream and the central-directory
// index) so callers can detect hidden entries, dangling index records, and
// offset mismatches.
//
// zipscan does not decompress entry payloads, does not verify CRC-32s,
// does not handle ZIP64 extensions beyond treating their sentinel values
// literally, and does not write archives. See Parse.
package zipscan
