package zipscan

// reconcile cross-references the stored-files list against the central
// directory by exact filename match. For each stored file with a match it
// sets FoundInCentralDirectory and OffsetFromCentralDirectory; it never
// modifies the central directory itself.
//
// OffsetFromCentralDirectory is the parser-defined delta
// central_directory.OffsetFromStartOfArchive - stored_file.OffsetInArchive
// (spec.md §4.7, §9) — not the central directory's own
// LocalFileHeaderOffset field, which is kept verbatim on
// CentralDirectoryFileHeader for callers who want to compare it
// themselves.
func reconcile(storedFiles []StoredFile, cd *CentralDirectory) {
	if cd == nil {
		return
	}
	for i := range storedFiles {
		sf := &storedFiles[i]
		for _, h := range cd.FileHeaders {
			if h.Filename == sf.LocalFileHeader.Filename {
				sf.FoundInCentralDirectory = true
				delta := cd.OffsetFromStartOfArchive - sf.OffsetInArchive
				sf.OffsetFromCentralDirectory = &delta
				break
			}
		}
	}
}
