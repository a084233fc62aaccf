// brokenio is a wrapper around an io.ReadCloser. It lets tests see
// what happens to a reader when the source breaks part way through.
// Typical use: You get a file pointer or a reader from a compressed
// source. You write
// reader = brokenio.NewReader(reader) to wrap the old reader. Everything then
// functions as before, until the limit is reached, then every read fails.

package brokenio

import (
	"errors"
	"io"
)

// ErrBroken is returned by every Read after the limit.
var ErrBroken = errors.New("brokenio: simulated read failure")

// A BrknRdrClsr passes reads through until failAfter bytes have gone by.
type BrknRdrClsr struct {
	rdrOrig   io.ReadCloser // Wrapped reader
	failAfter int           // negative means never fail
	nByte     int
}

// NewReader returns a new Reader - a wrapper around the old one.
// By default it never fails.
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{rdrOrig: rIn, failAfter: -1}
}

// SetFailAfter says how many bytes are delivered before reads start failing.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.failAfter = n }

// Read wraps the original reader and sums up the amount of data that
// has gone through.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}

// Close closes the wrapped reader.
func (r *BrknRdrClsr) Close() error {
	return r.rdrOrig.Close()
}
