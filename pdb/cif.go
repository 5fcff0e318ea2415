// 4 Oct 2026
// Just enough mmcif to get coordinates. We look for the loop over
// _atom_site and pick out the columns we want by name. Everything else
// in the file is jumped over.

package pdb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	squote    = '\''
	dquote    = '"'
	atomSite  = "_atom_site."
	loopStart = "loop_"
)

// cifCol is a column we want. altName is used if cifName is missing.
// Columns which are not required may be absent.
type cifCol struct {
	cifName  string
	altName  string
	required bool
}

const (
	iGroup = iota
	iAtName
	iAlt
	iResName
	iChain
	iSeq
	iIns
	iX
	iY
	iZ
	iOcc
	iB
	iModel
	nCol
)

var atomSiteCols = [nCol]cifCol{
	iGroup:   {"group_PDB", "", true},
	iAtName:  {"auth_atom_id", "label_atom_id", true},
	iAlt:     {"label_alt_id", "", false},
	iResName: {"auth_comp_id", "label_comp_id", true},
	iChain:   {"auth_asym_id", "label_asym_id", true},
	iSeq:     {"auth_seq_id", "label_seq_id", true},
	iIns:     {"pdbx_PDB_ins_code", "", false},
	iX:       {"Cartn_x", "", true},
	iY:       {"Cartn_y", "", true},
	iZ:       {"Cartn_z", "", true},
	iOcc:     {"occupancy", "", false},
	iB:       {"B_iso_or_equiv", "", false},
	iModel:   {"pdbx_PDB_model_num", "", false},
}

// colIndices finds where each column lives in the header. Missing
// optional columns get -1.
func colIndices(header []string) ([nCol]int, error) {
	var ndx [nCol]int
	find := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		return -1
	}
	for i, c := range atomSiteCols {
		ndx[i] = find(c.cifName)
		if ndx[i] == -1 && c.altName != "" {
			ndx[i] = find(c.altName)
		}
		if ndx[i] == -1 && c.required {
			return ndx, errors.New("atom_site table has no column " + c.cifName)
		}
	}
	return ndx, nil
}

// isDotOrQ returns true if the string is a dot or question mark
func isDotOrQ(s string) bool { return s == "." || s == "?" }

// iswhite only works for ascii spaces
func iswhite(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

type sInfo struct { // Holds the state of the state functions
	err   error
	ret   []string
	in    string
	nxt   int
	qtype byte // type of quote
}
type sfn func(i int, c byte, s *sInfo) sfn // state function

func sfnInQuote(i int, c byte, s *sInfo) sfn {
	if c == s.qtype {
		return sfnExitQuote
	}
	if c == '\n' {
		s.err = errors.New("unterminated quote")
		return sfnWhite
	}
	return sfnInQuote
}

// A quote only closes a value if white space follows, so O5' is fine
// inside double quotes, or even unquoted.
func sfnExitQuote(i int, c byte, s *sInfo) sfn {
	if iswhite(c) {
		s.ret = append(s.ret, s.in[s.nxt:i-1])
		return sfnWhite
	}
	return sfnInQuote
}

func sfnInText(i int, c byte, s *sInfo) sfn {
	if iswhite(c) {
		s.ret = append(s.ret, s.in[s.nxt:i])
		return sfnWhite
	}
	return sfnInText
}

func sfnWhite(i int, c byte, s *sInfo) sfn {
	switch {
	case iswhite(c):
		return sfnWhite
	case c == squote || c == dquote:
		s.qtype = c
		s.nxt = i + 1
		return sfnInQuote
	default:
		s.nxt = i
		return sfnInText
	}
}

// splitCifLine breaks a line into words separated by spaces, honouring
// matching quotes. retIn is reused to save allocations.
func splitCifLine(line string, retIn []string) ([]string, error) {
	s := sInfo{ret: retIn[:0], in: line}
	state := sfnWhite
	for i := 0; i < len(line); i++ {
		state = state(i, line[i], &s)
	}
	state(len(line), '\n', &s) // end with newline, catches unterminated quotes
	if s.err != nil {
		return nil, s.err
	}
	return s.ret, nil
}

// cifAtom converts one row of the atom_site table.
func cifAtom(w []string, ndx *[nCol]int, a *atomRec) error {
	get := func(i int) string {
		if ndx[i] == -1 || isDotOrQ(w[ndx[i]]) {
			return ""
		}
		return w[ndx[i]]
	}
	getF := func(i int, dflt float32) (float32, error) {
		s := get(i)
		if s == "" {
			if atomSiteCols[i].required {
				return 0, errors.New("missing " + atomSiteCols[i].cifName)
			}
			return dflt, nil
		}
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", atomSiteCols[i].cifName, err)
		}
		return float32(f), nil
	}
	var err error
	a.atName, a.resName, a.chainID = get(iAtName), get(iResName), get(iChain)
	if a.atName == "" {
		return errors.New("empty atom name")
	}
	if a.resNum, err = strconv.Atoi(get(iSeq)); err != nil {
		return fmt.Errorf("residue number: %w", err)
	}
	a.altLoc, a.insCode = ' ', ' '
	if s := get(iAlt); s != "" {
		a.altLoc = s[0]
	}
	if s := get(iIns); s != "" {
		a.insCode = s[0]
	}
	a.mdl = 1
	if s := get(iModel); s != "" {
		if a.mdl, err = strconv.Atoi(s); err != nil {
			return fmt.Errorf("model number: %w", err)
		}
	}
	if a.xyz.X, err = getF(iX, 0); err != nil {
		return err
	}
	if a.xyz.Y, err = getF(iY, 0); err != nil {
		return err
	}
	if a.xyz.Z, err = getF(iZ, 0); err != nil {
		return err
	}
	if a.occ, err = getF(iOcc, 1); err != nil {
		return err
	}
	if a.bfac, err = getF(iB, 0); err != nil {
		return err
	}
	return nil
}

// endsTable says if a line stops the rows of a loop
func endsTable(s string) bool {
	return strings.HasPrefix(s, "_") || strings.HasPrefix(s, loopStart) ||
		strings.HasPrefix(s, "#") || strings.HasPrefix(s, "data_")
}

// readCif goes through an mmcif stream and sends the ATOM rows of
// the atom_site table to the chain builder.
func readCif(rdr io.Reader, b *chainBuilder) error {
	const (
		outside = iota
		inHeader
		inRows
	)
	scnr := bufio.NewScanner(rdr)
	scnr.Buffer(make([]byte, 64*1024), 1024*1024)
	state := outside
	var header []string
	var ndx [nCol]int
	var a atomRec
	words := make([]string, 0, 24)
	for n := 1; scnr.Scan(); n++ {
		s := strings.TrimSpace(scnr.Text())
		if state == inRows && endsTable(s) {
			return nil // only one atom_site table per data block
		}
		switch state {
		case outside:
			if strings.HasPrefix(s, loopStart) {
				state, header = inHeader, header[:0]
			}
		case inHeader:
			if strings.HasPrefix(s, atomSite) {
				header = append(header, strings.TrimPrefix(s, atomSite))
				continue
			}
			if len(header) == 0 || strings.HasPrefix(s, "_") {
				state = outside // some other loop
				if strings.HasPrefix(s, loopStart) {
					state = inHeader
				}
				continue
			}
			var err error
			if ndx, err = colIndices(header); err != nil {
				return &readError{n: n, inline: s, desc: err.Error()}
			}
			state = inRows
			fallthrough
		case inRows:
			if s == "" {
				continue
			}
			var err error
			if words, err = splitCifLine(s, words); err != nil {
				return lineError(scnr, n, s, err)
			}
			if len(words) != len(header) {
				err = fmt.Errorf("wanted %d fields, found %d", len(header), len(words))
				return lineError(scnr, n, s, err)
			}
			if words[ndx[iGroup]] != "ATOM" {
				continue
			}
			if err = cifAtom(words, &ndx, &a); err != nil {
				return lineError(scnr, n, s, err)
			}
			b.add(&a)
		}
	}
	return scnr.Err()
}
