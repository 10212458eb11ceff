// Package stream provides random access file I/O aligned to the 2880-byte
// FITS logical record. Headers and data blocks always start on a record
// boundary, so the reader exposes alignment and padding primitives on top
// of plain positioned reads and writes.
package stream

import (
	"fmt"
	"io"
	"os"

	"github.com/arloliu/astrofits/errs"
	"github.com/arloliu/astrofits/format"
)

// File wraps an os.File with an explicit cursor and record-boundary
// helpers. A File is not safe for concurrent use; callers serialize access.
type File struct {
	f   *os.File
	pos int64
}

// Open opens an existing file for reading.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrFileOpen, path, err)
	}

	return &File{f: f}, nil
}

// Create creates or truncates a file for writing.
func Create(path string) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrFileOpen, path, err)
	}

	return &File{f: f}, nil
}

// OpenReadWrite opens an existing file for both reading and in-place
// updates.
func OpenReadWrite(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrFileOpen, path, err)
	}

	return &File{f: f}, nil
}

// Close closes the underlying file.
func (s *File) Close() error {
	return s.f.Close()
}

// Position returns the current cursor offset from the start of the file.
func (s *File) Position() int64 {
	return s.pos
}

// Seek moves the cursor to an absolute offset.
func (s *File) Seek(offset int64) {
	s.pos = offset
}

// Size returns the current size of the file in bytes.
func (s *File) Size() (int64, error) {
	info, err := s.f.Stat()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrFileRead, err)
	}

	return info.Size(), nil
}

// AtEOF reports whether the cursor is at or past the end of the file.
func (s *File) AtEOF() (bool, error) {
	size, err := s.Size()
	if err != nil {
		return false, err
	}

	return s.pos >= size, nil
}

// ReadN reads exactly n bytes at the cursor and advances it. A short read,
// including one caused by EOF, is reported as ErrFileRead.
func (s *File) ReadN(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(io.NewSectionReader(s.f, s.pos, int64(n)), buf); err != nil {
		return nil, fmt.Errorf("%w: %d bytes at offset %d: %v", errs.ErrFileRead, n, s.pos, err)
	}
	s.pos += int64(n)

	return buf, nil
}

// ReadAt reads exactly n bytes at an absolute offset without moving the
// cursor.
func (s *File) ReadAt(offset int64, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(io.NewSectionReader(s.f, offset, int64(n)), buf); err != nil {
		return nil, fmt.Errorf("%w: %d bytes at offset %d: %v", errs.ErrFileRead, n, offset, err)
	}

	return buf, nil
}

// Skip advances the cursor by n bytes without reading.
func (s *File) Skip(n int64) {
	s.pos += n
}

// Align advances the cursor to the next record boundary. A cursor already
// on a boundary stays put, so back-to-back HDUs are never skipped over.
func (s *File) Align() {
	rem := s.pos % format.RecordSize
	if rem != 0 {
		s.pos += format.RecordSize - rem
	}
}

// Write writes p at the cursor and advances it.
func (s *File) Write(p []byte) (int, error) {
	n, err := s.f.WriteAt(p, s.pos)
	s.pos += int64(n)
	if err != nil {
		return n, fmt.Errorf("write at offset %d: %w", s.pos, err)
	}

	return n, nil
}

// Pad writes fill bytes until the cursor reaches the next record boundary.
// A cursor already on a boundary writes nothing.
func (s *File) Pad(fill byte) error {
	rem := s.pos % format.RecordSize
	if rem == 0 {
		return nil
	}

	pad := make([]byte, format.RecordSize-rem)
	if fill != 0 {
		for i := range pad {
			pad[i] = fill
		}
	}

	_, err := s.Write(pad)

	return err
}
