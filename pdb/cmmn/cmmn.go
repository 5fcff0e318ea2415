// Package pdb/cmmn has common definitions for coordinates, atoms and
// chains and the atom identifiers which label rows of distance tables.
package cmmn

import (
	"strconv"
	"strings"
)

// Does our data come from a file or http source ?
const (
	FileSrc byte = iota
	HTTPSrc
)

type Xyz struct{ X, Y, Z float32 }

// Atom is one atom as read from a file. It carries the residue name and
// number so that selections do not need to walk back up to the residue.
type Atom struct {
	Name    string
	ResName string
	ResNum  int
	Xyz     Xyz
	Occ     float32
	BFactor float32 // often abused to store surface accessibility
}

// Residue keeps its atoms in file order.
type Residue struct {
	Name    string
	Num     int  // residue number from file. Not a real index
	InsCode byte // Insertion code, ' ' if there is none
	Atoms   []Atom
}

// Atom returns the atom called name, or nil.
func (r *Residue) Atom(name string) *Atom {
	for i := range r.Atoms {
		if r.Atoms[i].Name == name {
			return &r.Atoms[i]
		}
	}
	return nil
}

// A simple structure for one model, one chain and its residues.
type Chain struct {
	ChainID  string // Name, like "A" or "B"
	MdlNum   int16  // Model number, counting from zero
	Residues []Residue
}

// NAtom returns the number of atoms in the chain
func (c *Chain) NAtom() (n int) {
	for _, r := range c.Residues {
		n += len(r.Atoms)
	}
	return n
}

// This is obviously just a slice of chains, but we have to define a type
// if we want to define a method on it
type ChnSl []Chain

// ChainNames returns a slice with the names of the chains.
func (chns ChnSl) ChainNames() (ret []string) {
	ret = make([]string, len(chns))
	for i, k := range chns {
		ret[i] = k.ChainID
	}
	return
}

// An AtomID names one atom in a coordinate or distance table. It is
// either "12-CD1" (residue number, atom name) or a bare residue number,
// "12", when only one atom per residue is tracked.
type AtomID string

const idSep = "-"

// ResAtomID makes an AtomID like "12-CD1".
func ResAtomID(resNum int, atName string) AtomID {
	return AtomID(strconv.Itoa(resNum) + idSep + atName)
}

// ResID makes the bare residue form of an AtomID.
func ResID(resNum int) AtomID { return AtomID(strconv.Itoa(resNum)) }

// ParsedID is an AtomID split into its residue number and atom name.
type ParsedID struct {
	Num  int
	Name string // empty for bare residue ids
}

// Parse splits an atom id at the first separator after the residue
// number. Residue numbers can be negative, so "-3-CA" is residue -3.
func (id AtomID) Parse() (ParsedID, error) {
	s, sign := string(id), ""
	if strings.HasPrefix(s, idSep) {
		s, sign = s[1:], idSep
	}
	num, name, _ := strings.Cut(s, idSep)
	if num == "" || num[0] == '+' {
		return ParsedID{}, &AtomIDError{ID: id}
	}
	n, err := strconv.Atoi(sign + num)
	if err != nil {
		return ParsedID{}, &AtomIDError{ID: id}
	}
	return ParsedID{Num: n, Name: name}, nil
}

// ResidueNumber returns the leading integer of an atom id.
func (id AtomID) ResidueNumber() (int, error) {
	p, err := id.Parse()
	return p.Num, err
}

// Cmp orders by residue number, then by atom name as a string.
func (p ParsedID) Cmp(q ParsedID) int {
	switch {
	case p.Num < q.Num:
		return -1
	case p.Num > q.Num:
		return 1
	}
	return strings.Compare(p.Name, q.Name)
}

// Key is the merge key of a pairwise table, (atom_id_1, atom_id_2).
type Key struct {
	ID1, ID2 AtomID
}

// CoordTable maps atom ids to coordinates and remembers the order in
// which they were added. The order is carried into distance tables.
type CoordTable struct {
	ids []AtomID
	xyz []Xyz
	ndx map[AtomID]int
}

// NewCoordTable makes an empty table with room for n atoms
func NewCoordTable(n int) *CoordTable {
	return &CoordTable{
		ids: make([]AtomID, 0, n),
		xyz: make([]Xyz, 0, n),
		ndx: make(map[AtomID]int, n),
	}
}

// Add appends an atom. An id which is already present is an error.
func (ct *CoordTable) Add(id AtomID, xyz Xyz) error {
	if ct.ndx == nil {
		ct.ndx = make(map[AtomID]int)
	}
	if _, ok := ct.ndx[id]; ok {
		return &DuplicateAtomError{ID: id}
	}
	ct.ndx[id] = len(ct.ids)
	ct.ids = append(ct.ids, id)
	ct.xyz = append(ct.xyz, xyz)
	return nil
}

// Len is the number of atoms. A nil table has none.
func (ct *CoordTable) Len() int {
	if ct == nil {
		return 0
	}
	return len(ct.ids)
}

func (ct *CoordTable) ID(i int) AtomID { return ct.ids[i] }
func (ct *CoordTable) Xyz(i int) Xyz   { return ct.xyz[i] }

// Index returns the position of id or -1.
func (ct *CoordTable) Index(id AtomID) int {
	if i, ok := ct.ndx[id]; ok {
		return i
	}
	return -1
}
