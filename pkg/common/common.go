// 5 Oct 2026

package common

import (
	"fmt"
	"io"
	"log"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// nopCloser lets us hand out stdout as a WriteCloser without closing it.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}

// LogWhere decides where to send output.
// "" throws it away, "stdout" is standard output, anything else is a
// file name which will be appended to. Close the closer when finished
// with the logger. For "" and "stdout" it does nothing.
func LogWhere(outinfo string) (*log.Logger, io.Closer, error) {
	var iowriter io.WriteCloser
	switch outinfo {
	case "":
		iowriter = nopCloser{io.Discard}
	case "stdout":
		iowriter = nopCloser{os.Stdout}
	default:
		var err error
		iowriter, err = os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
	}
	prefix := ""
	return log.New(iowriter, prefix, log.Lshortfile), iowriter, nil
}

// warnExists checks if a filename exists and prints a warning
// if we will trash a file. It does not return an error.
func warnExists(fname string) {
	if _, err := os.Stat(fname); err == nil {
		fmt.Fprintln(os.Stderr, "Warning, trashing old version of", fname)
	}
}

// OutFile opens a file for writing. No name or "-" means standard output.
func OutFile(fname string) (io.WriteCloser, error) {
	if fname == "" || fname == "-" {
		return nopCloser{os.Stdout}, nil
	}
	warnExists(fname)
	fp, err := os.Create(fname)
	if err != nil {
		return nil, fmt.Errorf("output file %v: %w", fname, err)
	}
	return fp, nil
}
