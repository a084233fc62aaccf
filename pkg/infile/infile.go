// 2 Nov 2024

// Package infile opens input files for the format converters.
// Inputs are small enough to live in memory, so a regular file is
// memory mapped and read from the mapping. Pipes and other special
// files are read in full. If it starts with the gzip magic
// number, the reader is wrapped so callers see the uncompressed text.
package infile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// mapped is a reader over a memory mapped file. Close unmaps, then
// closes the underlying file.
type mapped struct {
	*bytes.Reader
	mm mmap.MMap
	fp *os.File
}

func (m *mapped) Close() error {
	var s string
	if m.mm != nil {
		if e := m.mm.Unmap(); e != nil {
			s = e.Error()
		}
	}
	if e := m.fp.Close(); e != nil {
		s = s + " " + e.Error()
	}
	if s == "" {
		return nil
	}
	return errors.New(s)
}

// mapFile maps fname read-only. Zero length files cannot be mapped,
// so they get an empty reader. A pipe says its size is zero, but is
// not empty, so anything which is not a regular file is read instead.
func mapFile(fname string) (*mapped, error) {
	var fp *os.File
	var err error
	if fp, err = os.Open(fname); err != nil {
		return nil, err
	}
	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, err
	}
	if fi.IsDir() {
		fp.Close()
		return nil, fmt.Errorf("%s is a directory, not a file", fname)
	}
	if !fi.Mode().IsRegular() {
		b, err := io.ReadAll(fp)
		if err != nil {
			fp.Close()
			return nil, fmt.Errorf("reading %s: %w", fname, err)
		}
		return &mapped{Reader: bytes.NewReader(b), fp: fp}, nil
	}
	if fi.Size() == 0 {
		return &mapped{Reader: bytes.NewReader(nil), fp: fp}, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	return &mapped{Reader: bytes.NewReader(mm), mm: mm, fp: fp}, nil
}

// Open returns a reader for fname, decompressing it if necessary.
// The caller must Close it. Nothing read from it may be kept after
// Close, since the bytes live in the mapping. Copy what you need.
func Open(fname string) (io.ReadCloser, error) {
	m, err := mapFile(fname)
	if err != nil {
		return nil, err
	}
	r, err := WrapMaybe(m)
	if err != nil {
		m.Close()
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return r, nil
}

// Slurp gives back the whole (uncompressed) contents of a file in
// a freshly allocated slice.
func Slurp(fname string) ([]byte, error) {
	r, err := Open(fname)
	if err != nil {
		return nil, err
	}
	b, err := io.ReadAll(r)
	if e := r.Close(); err == nil {
		err = e
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	return b, nil
}
