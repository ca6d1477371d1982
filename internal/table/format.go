package table

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hailam/attacktables/internal/board"
)

const (
	// MaskBytes is the width of one serialized mask record.
	MaskBytes = 8

	// FileBytes is the exact size of a serialized table: 64 records in
	// square order, nothing else.
	FileBytes = board.NumSquares * MaskBytes
)

// ErrMalformed reports a table source whose size is not exactly 64 records.
var ErrMalformed = errors.New("malformed attack table")

// MarshalBinary serializes the table as 64 records in square order
// (square = file + rank*8), each record the mask as 8 bytes little-endian.
// There is no header or trailer; which piece kind a stream encodes is a
// file-naming convention, not part of the format.
func (t *Table) MarshalBinary() ([]byte, error) {
	data := make([]byte, FileBytes)
	for i, m := range t.masks {
		binary.LittleEndian.PutUint64(data[i*MaskBytes:], uint64(m))
	}
	return data, nil
}

// UnmarshalBinary decodes a serialized table. Input that is not exactly
// FileBytes long fails with ErrMalformed: short and oversized sources are
// both rejected, an oversized one is never silently clipped to 64 records.
func (t *Table) UnmarshalBinary(data []byte) error {
	if len(data) != FileBytes {
		return fmt.Errorf("attack table is %d bytes, want exactly %d: %w", len(data), FileBytes, ErrMalformed)
	}
	for i := range t.masks {
		t.masks[i] = board.Bitboard(binary.LittleEndian.Uint64(data[i*MaskBytes:]))
	}
	return nil
}

// Write serializes the table to w.
func (t *Table) Write(w io.Writer) error {
	data, err := t.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile writes the table to path atomically: the bytes go to a temporary
// file in the destination directory which is then renamed into place, so a
// failed or interrupted run cannot leave a half-written file behind.
func (t *Table) WriteFile(path string) error {
	data, err := t.MarshalBinary()
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("write attack table: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write attack table: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write attack table: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write attack table: %w", err)
	}
	return nil
}

// Load reads one table from r. The source must hold exactly 64 records;
// both short and oversized sources fail with ErrMalformed.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read attack table: %w", err)
	}
	t := &Table{}
	if err := t.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFile reads the table stored at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open attack table: %w", err)
	}
	defer f.Close()
	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// FileName returns the conventional file name for a jump kind's table,
// e.g. "king_lookup.bin".
func FileName(k board.Kind) string {
	return k.String() + "_lookup.bin"
}

// RayFileName returns the conventional file name for one of a slider's ray
// tables, e.g. "rook_north_lookup.bin".
func RayFileName(s board.Slider, d board.Direction) string {
	return s.String() + "_" + d.String() + "_lookup.bin"
}
