package pdb

import (
	"io"

	"github.com/andrew-torda/pairdist/pdb/cmmn"
)

const (
	Old_fmt   = old_fmt
	Mmcif_fmt = mmcif_fmt
)

var OldOrMmcif = oldOrMmcif
var SplitCifLine = splitCifLine

// ReadChains reads from any stream, without going through a file.
func ReadChains(rdr io.Reader, typ byte) ([]cmmn.Chain, error) {
	b, err := readChains(rdr, typ)
	if err != nil {
		return nil, err
	}
	return b.chains, nil
}

// SetSite points the first download site somewhere else and returns a
// function to put it back.
func SetSite(urlBase, suffix string, gzipped bool, format byte) func() {
	old := sites[0]
	sites[0] = site{urlBase, suffix, gzipped, format}
	return func() { sites[0] = old }
}
