package zipscan

import "github.com/spf13/afero"

// ParseFile opens path on fs and parses it as a ZIP archive. This is the
// usual entry point for callers working against the filesystem (or, in
// tests, against afero.NewMemMapFs()), mirroring the teacher's
// afero-backed OpenWithFs.
func ParseFile(fs afero.Fs, path string, opts ParseOptions) (*ZipFile, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, opts)
}
