package fits

import (
	"fmt"

	"github.com/arloliu/astrofits/errs"
	"github.com/arloliu/astrofits/format"
	"github.com/arloliu/astrofits/hdu"
	"github.com/arloliu/astrofits/header"
	"github.com/arloliu/astrofits/internal/options"
	"github.com/arloliu/astrofits/internal/pool"
	"github.com/arloliu/astrofits/stream"
)

// File is an open FITS file: the ordered HDU list plus the control block
// for random access by index or name.
//
// A File is not safe for concurrent use; callers serialize access or open
// one File per goroutine.
type File struct {
	path   string
	stream *stream.File
	state  scanState
	hdus   []hdu.HDU
	cb     *controlBlock
}

// Open opens and scans a FITS file. By default every data unit is
// materialized during the scan; with ReadHeadersOnly only headers are
// parsed and data offsets recorded for later ReadData calls.
func Open(path string, opts ...Option) (*File, error) {
	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	s, err := stream.Open(path)
	if err != nil {
		return nil, err
	}

	f := &File{
		path:   path,
		stream: s,
		cb:     newControlBlock(),
	}

	if err := f.scan(cfg.headersOnly); err != nil {
		s.Close()
		return nil, err
	}

	return f, nil
}

// scan walks the file HDU by HDU. One loop serves both reading modes; the
// eager flag decides whether data units are read or skipped.
func (f *File) scan(headersOnly bool) error {
	f.state = stateScanning

	for {
		eof, err := f.stream.AtEOF()
		if err != nil {
			return err
		}
		if eof {
			break
		}

		headerOffset := f.stream.Position()
		h, err := header.Read(f.stream)
		if err != nil {
			return err
		}
		f.stream.Align()

		dataOffset := f.stream.Position()
		size := hdu.DataByteSize(h)

		var raw []byte
		if headersOnly {
			f.stream.Skip(size)
		} else if size > 0 {
			raw, err = f.stream.ReadN(int(size))
			if err != nil {
				return err
			}
		} else {
			raw = []byte{}
		}
		f.stream.Align()

		unit, err := hdu.Construct(h, raw)
		if err != nil {
			return err
		}

		f.hdus = append(f.hdus, unit)
		f.cb.add(ControlEntry{
			Name:         unit.Name(),
			HeaderOffset: headerOffset,
			DataOffset:   dataOffset,
			DataRead:     !headersOnly,
		})
	}

	f.state = stateReady

	return nil
}

// Close releases the underlying file handle. ReadData is unavailable
// afterwards.
func (f *File) Close() error {
	return f.stream.Close()
}

// Path returns the file path this File was opened from.
func (f *File) Path() string {
	return f.path
}

// TotalHDUs returns the number of scanned HDUs.
func (f *File) TotalHDUs() int {
	return len(f.hdus)
}

// ControlBlock returns a copy of the per-HDU control entries in file
// order.
func (f *File) ControlBlock() []ControlEntry {
	entries := make([]ControlEntry, len(f.cb.entries))
	copy(entries, f.cb.entries)

	return entries
}

// ByIndex returns the HDU at a 0-based sequence position.
func (f *File) ByIndex(index int) (hdu.HDU, error) {
	if index < 0 || index >= len(f.hdus) {
		return nil, fmt.Errorf("%w: %d of %d", errs.ErrIndexOutOfRange, index, len(f.hdus))
	}

	return f.hdus[index], nil
}

// ByName returns the HDU with the given name. When several HDUs share a
// name the first occurrence wins.
func (f *File) ByName(name string) (hdu.HDU, error) {
	idx, ok := f.cb.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrHDUNotFound, name)
	}

	return f.hdus[idx], nil
}

// Primary returns the first HDU as the primary variant.
func (f *File) Primary() (*hdu.Primary, error) {
	unit, err := f.ByIndex(0)
	if err != nil {
		return nil, err
	}

	p, ok := unit.(*hdu.Primary)
	if !ok {
		return nil, fmt.Errorf("%w: first HDU is %s", errs.ErrWrongExtensionType, unit.Kind())
	}

	return p, nil
}

// ReadData materializes the data unit of a lazily scanned HDU using the
// offset recorded in the control block, and flips its read flag. The
// already-materialized case returns the existing HDU unchanged.
func (f *File) ReadData(name string) (hdu.HDU, error) {
	idx, ok := f.cb.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrHDUNotFound, name)
	}

	return f.ReadDataAt(idx)
}

// ReadDataAt is ReadData by sequence position.
func (f *File) ReadDataAt(index int) (hdu.HDU, error) {
	if index < 0 || index >= len(f.hdus) {
		return nil, fmt.Errorf("%w: %d of %d", errs.ErrIndexOutOfRange, index, len(f.hdus))
	}

	entry := &f.cb.entries[index]
	if entry.DataRead {
		return f.hdus[index], nil
	}

	unit := f.hdus[index]
	size := hdu.DataByteSize(unit.Header())

	raw := []byte{}
	if size > 0 {
		var err error
		raw, err = f.stream.ReadAt(entry.DataOffset, int(size))
		if err != nil {
			return nil, err
		}
	}

	materialized, err := hdu.Construct(unit.Header(), raw)
	if err != nil {
		return nil, err
	}

	f.hdus[index] = materialized
	entry.DataRead = true

	return materialized, nil
}

// WriteTo writes every HDU to a new file in sequence order: header, then
// data unit, each padded to the 2880-byte record. Unknown HDUs are
// skipped. HDUs still in header-only state are materialized first.
func (f *File) WriteTo(path string) error {
	for i, unit := range f.hdus {
		if unit.Kind() == format.KindUnknown {
			continue
		}
		if !f.cb.entries[i].DataRead {
			if _, err := f.ReadDataAt(i); err != nil {
				return err
			}
		}
	}

	out, err := stream.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	buf := pool.GetDataBuffer()
	defer pool.PutDataBuffer(buf)

	for _, unit := range f.hdus {
		if unit.Kind() == format.KindUnknown {
			continue
		}

		if err := unit.Header().WriteTo(out); err != nil {
			return err
		}

		buf.Reset()
		buf.B = unit.AppendData(buf.B)
		if buf.Len() > 0 {
			if _, err := out.Write(buf.Bytes()); err != nil {
				return err
			}

			// ASCII table data pads with blanks, binary data with zeros.
			fill := byte(0)
			if unit.Kind() == format.KindAsciiTable {
				fill = ' '
			}
			if err := out.Pad(fill); err != nil {
				return err
			}
		}
	}

	return nil
}
