// This is the upper level for reading PDB files.
// Decide if a file is compressed or not, and what format
// we are going to read. Then call the corresponding pdb or mmcif
// format reader.

package pdb

import (
	"bufio"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/andrew-torda/pairdist/pdb/cmmn"
	"github.com/andrew-torda/pairdist/pdb/zwrap"
	"github.com/andrew-torda/pairdist/pkg/common"
)

const (
	old_fmt byte = iota
	mmcif_fmt
	unk_fmt
)

// comparefirst says if a line starts with a word
func comparefirst(s, w string) bool { return strings.HasPrefix(s, w) }

// lookInFile opens a file and guesses if it is in old PDB format or
// in mmcif.
func lookInFile(fname string) (byte, error) {
	pdbWords := []string{"HEADER", "COMPND", "SOURCE", "REMARK", "SEQRES", "HETATM", "ATOM", "MODEL"}
	mmcifWords := []string{"data_", "_entry.id", "loop_"}
	rdr, err := zwrap.Open(fname)
	if err != nil {
		return unk_fmt, err
	}
	defer rdr.Close()

	const maxTestLines = 5000
	scnnr := bufio.NewScanner(rdr)
	for i := 0; scnnr.Scan() && i < maxTestLines; i++ {
		s := scnnr.Text()
		for _, w := range mmcifWords {
			if comparefirst(s, w) {
				return mmcif_fmt, nil
			}
		}
		for _, w := range pdbWords {
			if comparefirst(s, w) {
				return old_fmt, nil
			}
		}
	}
	return unk_fmt, errors.New(fname + ": cannot recognise format")
}

// oldOrMmcif decides what format we will use.
// Maybe it uses the file name or maybe it peeks inside.
// We cannot use the function from filepath to get the file type,
// since it will return .gz if we feed it a.pdb.gz.
func oldOrMmcif(fname string) (byte, error) {
	s := filepath.Base(fname)
	if i := strings.IndexByte(s, '.'); i != -1 {
		s = strings.ToLower(s[i+1:]) // change .ent to ent
		if strings.Contains(s, "pdb") || strings.Contains(s, "ent") {
			return old_fmt, nil
		} else if strings.Contains(s, "mmcif") || strings.Contains(s, "cif") {
			return mmcif_fmt, nil
		}
	}
	return lookInFile(fname)
}

// readChains runs the reader for one format over a stream
func readChains(rdr io.Reader, typ byte) (*chainBuilder, error) {
	b := newChainBuilder()
	var err error
	switch typ {
	case old_fmt:
		err = readOld(rdr, b)
	case mmcif_fmt:
		err = readCif(rdr, b)
	default:
		panic("programming bug, unknown format")
	}
	return b, err
}

// ReadCoord takes a filename, or a four letter code if srcType is
// cmmn.HTTPSrc, and returns the chains of every model in the file.
// Residues and atoms stay in file order.
// During debugging, there can be a lot of output. This will be written
// to a file called outinfo. If outinfo is "", it will be trashed. If
// outinfo is "stdout", we write to standard output.
func ReadCoord(fname string, srcType byte, outinfo string) ([]cmmn.Chain, error) {
	outlog, closer, err := common.LogWhere(outinfo)
	if err != nil {
		return nil, errors.New(err.Error() + " creating log file")
	}
	defer closer.Close()
	return ReadCoordLog(fname, srcType, outlog)
}

// ReadCoordLog is ReadCoord writing to a logger which is already open.
// Callers reading several files share one logger this way.
func ReadCoordLog(fname string, srcType byte, outlog *log.Logger) ([]cmmn.Chain, error) {
	var err error
	var rdr io.ReadCloser
	var typ byte
	switch srcType {
	case cmmn.FileSrc:
		if typ, err = oldOrMmcif(fname); err != nil {
			return nil, err
		}
		if rdr, err = zwrap.Open(fname); err != nil {
			return nil, err
		}
	case cmmn.HTTPSrc:
		if rdr, typ, err = getHTTP(fname, 0); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("programming bug")
	}
	defer rdr.Close()

	b, err := readChains(rdr, typ)
	if err != nil {
		var re *readError
		if errors.As(err, &re) {
			re.fname = fname
			return nil, re
		}
		return nil, errors.New("reading " + fname + ": " + err.Error())
	}
	if len(b.chains) == 0 {
		return nil, errors.New(fname + ": no atoms found")
	}
	nAtom, nRes := NatomsTot(b.chains)
	outlog.Println(fname, len(b.chains), "chains", nRes, "residues", nAtom, "atoms",
		b.nAlt, "alternate locations dropped")
	outlog.Println(fname, "chains", strings.Join(cmmn.ChnSl(b.chains).ChainNames(), " "))
	return b.chains, nil
}

// NatomsTot returns the total number of atoms and residues in a set of
// chains.
func NatomsTot(chns []cmmn.Chain) (nAtom, nRes int) {
	for i := range chns {
		nAtom += chns[i].NAtom()
		nRes += len(chns[i].Residues)
	}
	return nAtom, nRes
}
