// 3 Oct 2026
// Reader for the old, fixed column PDB format. We only look at ATOM,
// MODEL and ENDMDL records. HETATM records are ligands, solvent and
// the like and are not part of any chain we measure.

package pdb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Column ranges, counting from zero, end exclusive.
const (
	colName0, colName1 = 12, 16
	colAlt             = 16
	colRes0, colRes1   = 17, 20
	colChain           = 21
	colSeq0, colSeq1   = 22, 26
	colIns             = 26
	colX0, colX1       = 30, 38
	colY0, colY1       = 38, 46
	colZ0, colZ1       = 46, 54
	colOcc0, colOcc1   = 54, 60
	colB0, colB1       = 60, 66
	minAtomLen         = colZ1
)

// field returns the trimmed columns from i to j, or "" if the line
// is too short.
func field(s string, i, j int) string {
	if i >= len(s) {
		return ""
	}
	if j > len(s) {
		j = len(s)
	}
	return strings.TrimSpace(s[i:j])
}

func getFloat(s string, i, j int, name string) (float32, error) {
	f, err := strconv.ParseFloat(field(s, i, j), 32)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return float32(f), nil
}

// getOptFloat is getFloat for columns which are allowed to be empty.
func getOptFloat(s string, i, j int, dflt float32, name string) (float32, error) {
	if field(s, i, j) == "" {
		return dflt, nil
	}
	return getFloat(s, i, j, name)
}

// parseAtomLine fills out an atomRec from an ATOM line.
func parseAtomLine(s string, mdl int, a *atomRec) error {
	if len(s) < minAtomLen {
		return fmt.Errorf("ATOM record too short, %d characters", len(s))
	}
	var err error
	a.mdl = mdl
	a.atName = field(s, colName0, colName1)
	a.altLoc = s[colAlt]
	a.resName = field(s, colRes0, colRes1)
	a.chainID = field(s, colChain, colChain+1)
	if a.resNum, err = strconv.Atoi(field(s, colSeq0, colSeq1)); err != nil {
		return fmt.Errorf("residue number: %w", err)
	}
	a.insCode = s[colIns]
	if a.xyz.X, err = getFloat(s, colX0, colX1, "x"); err != nil {
		return err
	}
	if a.xyz.Y, err = getFloat(s, colY0, colY1, "y"); err != nil {
		return err
	}
	if a.xyz.Z, err = getFloat(s, colZ0, colZ1, "z"); err != nil {
		return err
	}
	if a.occ, err = getOptFloat(s, colOcc0, colOcc1, 1, "occupancy"); err != nil {
		return err
	}
	if a.bfac, err = getOptFloat(s, colB0, colB1, 0, "b-factor"); err != nil {
		return err
	}
	if a.atName == "" {
		return errors.New("empty atom name")
	}
	return nil
}

// readOld reads a stream in old PDB format and gives each atom to the
// chain builder.
func readOld(rdr io.Reader, b *chainBuilder) error {
	scnr := bufio.NewScanner(rdr)
	mdl := 1 // files without MODEL records have one model
	var a atomRec
	for n := 1; scnr.Scan(); n++ {
		s := scnr.Text()
		switch {
		case strings.HasPrefix(s, "MODEL "):
			m, err := strconv.Atoi(field(s, 6, len(s)))
			if err != nil {
				return lineError(scnr, n, s, errors.New("bad MODEL record"))
			}
			mdl = m
		case strings.HasPrefix(s, "ATOM  "):
			if err := parseAtomLine(s, mdl, &a); err != nil {
				return lineError(scnr, n, s, err)
			}
			b.add(&a)
		case strings.HasPrefix(s, "END") && !strings.HasPrefix(s, "ENDMDL"):
			return nil
		}
	}
	return scnr.Err()
}
