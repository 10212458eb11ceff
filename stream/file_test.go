package stream

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/astrofits/errs"
	"github.com/arloliu/astrofits/format"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "stream.dat")
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.fits"))
	require.ErrorIs(t, err, errs.ErrFileOpen)
}

func TestReadWriteRoundTrip(t *testing.T) {
	path := tempPath(t)

	w, err := Create(path)
	require.NoError(t, err)

	_, err = w.Write([]byte("SIMPLE data payload"))
	require.NoError(t, err)
	require.NoError(t, w.Pad(' '))
	require.EqualValues(t, format.RecordSize, w.Position())
	require.NoError(t, w.Close())

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	size, err := r.Size()
	require.NoError(t, err)
	require.EqualValues(t, format.RecordSize, size)

	head, err := r.ReadN(6)
	require.NoError(t, err)
	require.Equal(t, []byte("SIMPLE"), head)
	require.EqualValues(t, 6, r.Position())

	// The rest of the record is space padding.
	tail, err := r.ReadAt(19, format.RecordSize-19)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat(" ", format.RecordSize-19), string(tail))
}

func TestAlign(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, os.WriteFile(path, make([]byte, 3*format.RecordSize), 0o644))

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	// Mid-record alignment moves forward to the next boundary.
	r.Seek(100)
	r.Align()
	require.EqualValues(t, format.RecordSize, r.Position())

	// An aligned cursor must not be pushed a whole record ahead.
	r.Align()
	require.EqualValues(t, format.RecordSize, r.Position())

	r.Skip(format.RecordSize + 1)
	r.Align()
	require.EqualValues(t, 3*format.RecordSize, r.Position())
}

func TestShortRead(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.ReadN(10)
	require.ErrorIs(t, err, errs.ErrFileRead)
}

func TestPadZeroFill(t *testing.T) {
	path := tempPath(t)

	w, err := Create(path)
	require.NoError(t, err)
	_, err = w.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, w.Pad(0))
	require.NoError(t, w.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, raw, format.RecordSize)
	require.Equal(t, []byte{1, 2, 3}, raw[:3])
	for _, b := range raw[3:] {
		require.Zero(t, b)
	}
}
