// 2 Oct 2026
// Collect atom records, in whatever format they came, into chains.

package pdb

import (
	"github.com/andrew-torda/pairdist/pdb/cmmn"
)

// atomRec is one atom line, after parsing, before it goes into a chain.
type atomRec struct {
	mdl     int // model number as it appears in the file
	chainID string
	resName string
	resNum  int
	insCode byte
	atName  string
	altLoc  byte
	xyz     cmmn.Xyz
	occ     float32
	bfac    float32
}

type chainKey struct {
	mdl     int16
	chainID string
}

// chainBuilder keeps chains in the order they were first seen. Models
// are renumbered from zero in the order they appear.
type chainBuilder struct {
	chains []cmmn.Chain
	ndx    map[chainKey]int
	models map[int]int16
	nAlt   int // atoms dropped because of alternate locations
}

func newChainBuilder() *chainBuilder {
	return &chainBuilder{
		ndx:    make(map[chainKey]int),
		models: make(map[int]int16),
	}
}

// add puts an atom in its chain and residue. A new residue starts when
// the residue number or insertion code changes. If the residue already
// has an atom of the same name, this is an alternate location and only
// the first one is kept.
func (b *chainBuilder) add(a *atomRec) {
	mdl, ok := b.models[a.mdl]
	if !ok {
		mdl = int16(len(b.models))
		b.models[a.mdl] = mdl
	}
	key := chainKey{mdl, a.chainID}
	ic, ok := b.ndx[key]
	if !ok {
		ic = len(b.chains)
		b.ndx[key] = ic
		b.chains = append(b.chains, cmmn.Chain{ChainID: a.chainID, MdlNum: mdl})
	}
	chn := &b.chains[ic]
	nres := len(chn.Residues)
	if nres == 0 || chn.Residues[nres-1].Num != a.resNum ||
		chn.Residues[nres-1].InsCode != a.insCode {
		chn.Residues = append(chn.Residues, cmmn.Residue{
			Name: a.resName, Num: a.resNum, InsCode: a.insCode})
		nres++
	}
	res := &chn.Residues[nres-1]
	if res.Atom(a.atName) != nil {
		b.nAlt++
		return
	}
	res.Atoms = append(res.Atoms, cmmn.Atom{
		Name:    a.atName,
		ResName: a.resName,
		ResNum:  a.resNum,
		Xyz:     a.xyz,
		Occ:     a.occ,
		BFactor: a.bfac,
	})
}
