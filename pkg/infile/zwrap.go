// Wrapping of possibly compressed input.
// Upon calling Close, the decompressor will be closed, followed by the
// underlying reader.

package infile

import (
	"errors"
	"io"

	"github.com/klauspost/pgzip"
)

var gzipMagic = [2]byte{0x1f, 0x8b}

type FpGzip struct { // This is what we return.
	fp   io.ReadCloser
	zrdr *pgzip.Reader
}

// Close closes the decompressor, then the underlying backing readCloser.
func (fc *FpGzip) Close() error {
	if fc.zrdr == nil {
		return fc.fp.Close()
	}
	var s string
	if e := fc.zrdr.Close(); e != nil { // Close decompressor
		s = e.Error()
	}
	if e := fc.fp.Close(); e != nil { // and backing file
		s = s + " " + e.Error()
	}
	if s == "" {
		return nil
	}
	return errors.New(s)
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.fp.Read(p)
}

// ReadSeekCloser is what we need to be able to peek at the first
// bytes and go back.
type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// WrapMaybe looks at the first two bytes. If they are the gzip magic
// number, we return a decompressing reader, otherwise the original
// stream, rewound.
func WrapMaybe(fpIn ReadSeekCloser) (*FpGzip, error) {
	var magic [2]byte
	n, _ := io.ReadFull(fpIn, magic[:])
	if _, err := fpIn.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	if n < len(magic) || magic != gzipMagic {
		return &FpGzip{fp: fpIn}, nil // Leave the zrdr nil
	}
	zrdr, err := pgzip.NewReader(fpIn)
	if err != nil {
		return nil, err
	}
	return &FpGzip{fp: fpIn, zrdr: zrdr}, nil
}
