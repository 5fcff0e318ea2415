// 10 Oct 2026

// Package splice builds one distance table out of two conformations.
// Conformation a fills the upper triangle (by residue number) and b
// fills the lower, so one heat map shows both.
package splice

import (
	"fmt"

	"github.com/andrew-torda/pairdist/pdb/cmmn"
	"github.com/andrew-torda/pairdist/pkg/distance"
)

// Tie decides where pairs with equal residue numbers come from.
type Tie byte

const (
	TieToA     Tie = iota // a if resnum(atom_id_1) <= resnum(atom_id_2)
	StrictLess            // a only if resnum(atom_id_1) < resnum(atom_id_2)
)

// Options for Splice. The zero value uses TieToA and fails on gaps.
type Options struct {
	Tie         Tie
	SkipMissing bool // leave out pairs the chosen table does not have
}

// Spliced is one row of the composite table. Source is 'a' or 'b'.
type Spliced struct {
	ID1, ID2 cmmn.AtomID
	Dist     float32
	Source   byte
}

// Key of a row
func (s *Spliced) Key() cmmn.Key { return cmmn.Key{ID1: s.ID1, ID2: s.ID2} }

// IncompleteSpliceError is a pair whose row is missing from the table
// the rule picked for it.
type IncompleteSpliceError struct {
	Key    cmmn.Key
	Source byte
}

func (e *IncompleteSpliceError) Error() string {
	return fmt.Sprintf("splice: pair %s %s should come from %c but is not there",
		e.Key.ID1, e.Key.ID2, e.Source)
}

// FromA says if the pair belongs to conformation a. Only the residue
// numbers count, atom names are not looked at.
func FromA(k cmmn.Key, tie Tie) (bool, error) {
	r1, err := k.ID1.ResidueNumber()
	if err != nil {
		return false, err
	}
	r2, err := k.ID2.ResidueNumber()
	if err != nil {
		return false, err
	}
	if tie == StrictLess {
		return r1 < r2, nil
	}
	return r1 <= r2, nil
}

// byKey maps keys to distances, keeping the first row of a repeated key.
// keys gets keys in the order first seen.
func byKey(recs []distance.Record, m map[cmmn.Key]float32, keys []cmmn.Key, seen map[cmmn.Key]bool) []cmmn.Key {
	for i := range recs {
		k := recs[i].Key()
		if _, ok := m[k]; !ok {
			m[k] = recs[i].Dist
		}
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}

// Splice takes every pair found in a or b and picks its distance from
// the table FromA chooses. If that table lacks the pair, we return an
// IncompleteSpliceError, unless opts.SkipMissing is set. The result is
// sorted in residue order.
func Splice(a, b []distance.Record, opts Options) ([]Spliced, error) {
	distA := make(map[cmmn.Key]float32, len(a))
	distB := make(map[cmmn.Key]float32, len(b))
	seen := make(map[cmmn.Key]bool, len(a))
	keys := byKey(a, distA, nil, seen)
	keys = byKey(b, distB, keys, seen)

	ret := make([]Spliced, 0, len(keys))
	for _, k := range keys {
		fromA, err := FromA(k, opts.Tie)
		if err != nil {
			return nil, err
		}
		src, tbl := byte('b'), distB
		if fromA {
			src, tbl = 'a', distA
		}
		d, ok := tbl[k]
		if !ok {
			if opts.SkipMissing {
				continue
			}
			return nil, &IncompleteSpliceError{Key: k, Source: src}
		}
		ret = append(ret, Spliced{ID1: k.ID1, ID2: k.ID2, Dist: d, Source: src})
	}
	return cmmn.SortPairs(ret, (*Spliced).Key)
}
