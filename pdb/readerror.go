// An error implementation that saves the line number and the
// line we were trying to read.
package pdb

import (
	"bufio"
	"strconv"
)

const maxMsgLen = 70

type readError struct {
	fname  string // file, filled in by ReadCoord
	n      int    // line number
	inline string // The line that provoked the error
	desc   string // Description of error
}

func firstPart(s string) string {
	l := len(s)
	if l > maxMsgLen {
		l = maxMsgLen
	}
	return s[:l]
}

// Error gives the file, the line number and the start of the line.
func (e *readError) Error() string {
	var errmsg string
	if e.fname != "" {
		errmsg = e.fname + ": "
	}
	if e.n != 0 {
		errmsg += "Line: " + strconv.FormatInt(int64(e.n), 10) + " "
	}
	errmsg += e.desc
	if e.n != 0 {
		errmsg += "\nLine starting with\n" + firstPart(e.inline)
	}
	return errmsg
}

// lineError is for a line we could not parse. If the underlying reader
// failed, the scanner hands us whatever partial line it had, so the
// read error is the one to report.
func lineError(scnr *bufio.Scanner, n int, line string, err error) error {
	if e := scnr.Err(); e != nil {
		return e
	}
	return &readError{n: n, inline: line, desc: err.Error()}
}
