package zipscan

import (
	"io"
)

// cursor is a positioned, bounds-aware reader/seeker over a ZIP archive's
// bytes. It is the single source of positional truth for every decoder:
// every offset reported anywhere in the assembled model is relative to a
// cursor's notion of position.
//
// A cursor wraps anything satisfying io.ReadSeeker, which in practice is
// either an *os.File, an afero.File (see cmd/zipscan and the tests backed
// by afero.NewMemMapFs), or a bytes.Reader over an in-memory archive.
type cursor struct {
	r    io.ReadSeeker
	pos  int64
	size int64
}

// newCursor wraps r, which must support seeking to io.SeekEnd to determine
// the archive's total size up front.
func newCursor(r io.ReadSeeker) (*cursor, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, newParseError("newCursor", ErrSeekFailure, 0, err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, newParseError("newCursor", ErrSeekFailure, 0, err)
	}
	return &cursor{r: r, pos: 0, size: size}, nil
}

// position returns the cursor's current absolute offset from the start of
// the archive.
func (c *cursor) position() int64 {
	return c.pos
}

// length returns the total number of bytes in the underlying source.
func (c *cursor) length() int64 {
	return c.size
}

// remaining reports how many bytes remain before end-of-input.
func (c *cursor) remaining() int64 {
	r := c.size - c.pos
	if r < 0 {
		return 0
	}
	return r
}

// atLeast reports whether at least n bytes remain until end-of-input.
func (c *cursor) atLeast(n int64) bool {
	return c.remaining() >= n
}

// read advances the cursor by up to n bytes and returns what was read. A
// read that runs past end-of-input returns a short (possibly empty) slice
// with no error; callers must check the returned length rather than
// assuming a full read.
func (c *cursor) read(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(c.r, buf)
	c.pos += int64(read)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return buf[:read], newParseError("cursor.read", ErrSeekFailure, c.pos, err)
	}
	return buf[:read], nil
}

// seek moves the cursor to an absolute offset from the start of the
// archive. Seeking past end-of-input fails.
func (c *cursor) seek(offset int64) error {
	if offset < 0 || offset > c.size {
		return newParseError("cursor.seek", ErrSeekFailure, offset, io.ErrShortBuffer)
	}
	newPos, err := c.r.Seek(offset, io.SeekStart)
	if err != nil {
		return newParseError("cursor.seek", ErrSeekFailure, offset, err)
	}
	c.pos = newPos
	return nil
}

// rewind moves the cursor backward by n bytes. It is used by the
// signature probe (on a signature miss) and by the archive walker (to
// re-present a matched signature to a different decoder).
func (c *cursor) rewind(n int64) error {
	return c.seek(c.pos - n)
}
