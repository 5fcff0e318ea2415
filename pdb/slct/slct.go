// 6 Oct 2026

// Package slct picks atoms out of chains and turns them into the
// coordinate tables which the distance code consumes. Whatever the
// selection rule, if a residue does not have an atom the rule asks for,
// we stop with a MissingAtomError rather than quietly leaving a gap.
package slct

import (
	"slices"

	"github.com/andrew-torda/pairdist/pdb/cmmn"
)

// IDForm says how atoms are named in a coordinate table
type IDForm byte

const (
	ResidueAtom IDForm = iota // "12-CD1"
	ResidueOnly               // "12", for one atom per residue
)

// LabelledCarbons are the methyl carbons which are isotope labelled
// in methyl TROSY experiments.
var LabelledCarbons = map[string][]string{
	"VAL": {"CG1", "CG2"},
	"LEU": {"CD1", "CD2"},
	"ILE": {"CD1"},
}

// GetChain returns a chain from a structure. name is only used for
// the error message.
func GetChain(chains []cmmn.Chain, name string, model int, chainID string) (*cmmn.Chain, error) {
	for i := range chains {
		if int(chains[i].MdlNum) == model && chains[i].ChainID == chainID {
			return &chains[i], nil
		}
	}
	return nil, &cmmn.ChainNotFoundError{Structure: name, Model: model, Chain: chainID}
}

// Residues returns the residues of a chain. If filter is not empty,
// only residues whose three letter names are in filter are kept.
func Residues(chain *cmmn.Chain, filter []string) []*cmmn.Residue {
	ret := make([]*cmmn.Residue, 0, len(chain.Residues))
	for i := range chain.Residues {
		if len(filter) == 0 || slices.Contains(filter, chain.Residues[i].Name) {
			ret = append(ret, &chain.Residues[i])
		}
	}
	return ret
}

// AlphaCarbons returns the CA of every residue.
func AlphaCarbons(residues []*cmmn.Residue) ([]*cmmn.Atom, error) {
	ret := make([]*cmmn.Atom, 0, len(residues))
	for _, r := range residues {
		a := r.Atom("CA")
		if a == nil {
			return nil, &cmmn.MissingAtomError{ResNum: r.Num, ResName: r.Name, AtomName: "CA"}
		}
		ret = append(ret, a)
	}
	return ret, nil
}

// Carbons returns, for each residue, the atoms named in atSelect for
// that residue type, in the order they are listed. Residue types which
// are not in atSelect contribute nothing.
func Carbons(residues []*cmmn.Residue, atSelect map[string][]string) ([]*cmmn.Atom, error) {
	var ret []*cmmn.Atom
	for _, r := range residues {
		for _, name := range atSelect[r.Name] {
			a := r.Atom(name)
			if a == nil {
				return nil, &cmmn.MissingAtomError{ResNum: r.Num, ResName: r.Name, AtomName: name}
			}
			ret = append(ret, a)
		}
	}
	return ret, nil
}

// FilterByBFactor keeps atoms whose b-factor is at least cutoff. People
// write relative surface accessibility into the b-factor column, so
// this is how we keep surface residues.
func FilterByBFactor(atoms []*cmmn.Atom, cutoff float32) []*cmmn.Atom {
	ret := make([]*cmmn.Atom, 0, len(atoms))
	for _, a := range atoms {
		if a.BFactor >= cutoff {
			ret = append(ret, a)
		}
	}
	return ret
}

// CoordTable builds a coordinate table, keeping the order of atoms.
// With ResidueOnly, two atoms from one residue collide and we get a
// DuplicateAtomError.
func CoordTable(atoms []*cmmn.Atom, form IDForm) (*cmmn.CoordTable, error) {
	ct := cmmn.NewCoordTable(len(atoms))
	for _, a := range atoms {
		id := cmmn.ResID(a.ResNum)
		if form == ResidueAtom {
			id = cmmn.ResAtomID(a.ResNum, a.Name)
		}
		if err := ct.Add(id, a.Xyz); err != nil {
			return nil, err
		}
	}
	return ct, nil
}
