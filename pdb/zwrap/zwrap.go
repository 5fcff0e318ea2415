// Package zwrap opens structure files so that readers do not care
// whether they are compressed. Files are memory mapped and if the
// contents start with the gzip magic number, reads go through a
// decompressor. Close undoes everything in the right order.

package zwrap

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

var gzipMagic = []byte{0x1f, 0x8b}

// FpGzip is what we return. Any of fp, mm and zrdr may be nil.
type FpGzip struct {
	fp   io.ReadCloser
	mm   mmap.MMap
	rdr  io.Reader
	zrdr *gzip.Reader
}

// Close closes the decompressor, unmaps the data and closes the
// underlying file or stream.
func (fc *FpGzip) Close() error {
	var errs []error
	if fc.zrdr != nil {
		errs = append(errs, fc.zrdr.Close())
	}
	if fc.mm != nil {
		errs = append(errs, fc.mm.Unmap())
		fc.mm = nil
	}
	if fc.fp != nil {
		errs = append(errs, fc.fp.Close())
	}
	return errors.Join(errs...)
}

// Read makes sure we read from the decompressed stream if there is one.
func (fc *FpGzip) Read(p []byte) (int, error) {
	return fc.rdr.Read(p)
}

// IsGzip says if a buffer starts like gzipped data
func IsGzip(b []byte) bool { return bytes.HasPrefix(b, gzipMagic) }

// Wrap takes a stream, like an http body, which we know to be
// compressed and wraps it so the correct Close and Read will be called.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		return nil, err
	}
	return &FpGzip{fp: fp, rdr: zrdr, zrdr: zrdr}, nil
}

// Open maps a file read only and decides if it is compressed.
// A zero length file cannot be mapped, so it gets an empty reader.
func Open(fname string) (*FpGzip, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, err
	}
	if fi.IsDir() {
		fp.Close()
		return nil, errors.New(fname + " is a directory")
	}
	if fi.Size() == 0 {
		return &FpGzip{fp: fp, rdr: bytes.NewReader(nil)}, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		fp.Close()
		return nil, errors.New("mapping " + fname + ": " + err.Error())
	}
	fc := &FpGzip{fp: fp, mm: mm, rdr: bytes.NewReader(mm)}
	if !IsGzip(mm) {
		return fc, nil
	}
	if fc.zrdr, err = gzip.NewReader(bytes.NewReader(mm)); err != nil {
		fc.zrdr = nil
		fc.Close()
		return nil, errors.New("reading " + fname + " " + err.Error())
	}
	fc.rdr = fc.zrdr
	return fc, nil
}
