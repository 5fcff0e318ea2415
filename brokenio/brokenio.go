// brokenio is a wrapper around an io.ReadCloser. It lets tests see what
// the structure readers do when reading goes wrong.
// Typical use: You get a file pointer, a reader from a compressed
// source or an http source. You write
// reader = brokenio.NewReader(reader) to wrap the old reader. Everything
// then functions as before, but with artificial errors.
// There are two kinds of failure. A read can fail at random, with a
// probability, or it can fail once a given number of bytes has gone
// through. When we introduce a failure on the first read, we return
// io.EOF without data. This is what one often sees on a zero length file.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is wrapped by every error this package makes up.
var ErrBroken = errors.New("brokenio")

// A BrknRdrClsr is modelled on the various Readers in the standard library,
// but with variables controlling the frequency of errors.
// Probabilities are fractions, so 0.05 means failure in 5% of the cases.
type BrknRdrClsr struct {
	rdr_orig     io.ReadCloser // Wrapped reader
	probZeroFile float32       // Probability of returning a zero length file
	probFail     float32       // Probability that a read fails
	fracFail     float32       // How much of a failed read is thrown away
	failAfter    int           // Fail once this many bytes are read. 0 means never
	nCalled      int
	nByte        int
}

// dfltReader sets default values for a new brokenio reader.
var dfltReader = BrknRdrClsr{
	fracFail: 0.5,
}

// SetFracFail sets the amount of the bytes which will be trashed
func (r *BrknRdrClsr) SetFracFail(frac float32) { r.fracFail = frac }

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check if the
// argument is valid.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail set the probability of a file reading failure.
// It must be between zero and 1.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes the reader fail for certain once n bytes have
// been delivered.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.failAfter = n }

// NBytes says how much data has gone through
func (r *BrknRdrClsr) NBytes() int { return r.nByte }

// NewReader returns a new Reader - a wrapper around the old one
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	var rOut = dfltReader
	rOut.rdr_orig = rIn
	return &rOut
}

// trashSlice wipes out the second part of a slice.
// The amount to wipe out is given by a fraction, so 0.3
// will wipe out the second 30 % of a slice
func trashSlice(p []byte, frac float32) (int, error) {
	nkeep := int(float32(len(p)) * (1. - frac))
	err := fmt.Errorf("%w: randomly wiped out last %d of %d", ErrBroken, len(p)-nkeep, len(p))
	clear(p[nkeep:])
	return nkeep, err
}

// Read wraps the original reader and sums up the amount of data that
// has gone through.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && rand.Float32() < r.probZeroFile {
		r.nCalled++
		return 0, io.EOF
	}
	if r.failAfter > 0 && r.nByte+len(p) > r.failAfter {
		p = p[:r.failAfter-r.nByte]
		n, _ = r.rdr_orig.Read(p)
		r.nCalled++
		r.nByte += n
		return n, fmt.Errorf("%w: failed after %d bytes", ErrBroken, r.nByte)
	}
	n, err = r.rdr_orig.Read(p)
	r.nCalled++
	r.nByte += n
	if r.probFail > 0 && r.fracFail > 0 && rand.Float32() < r.probFail {
		return trashSlice(p[:n], r.fracFail)
	}
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	return r.rdr_orig.Close()
}
