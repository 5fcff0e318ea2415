// 11 Oct 2026

// Package fret converts distances between labelled residues into FRET
// efficiencies, E = 1 / (1 + (r/r0)^6), and compares two conformations.
package fret

import (
	"fmt"
	"math"

	"github.com/andrew-torda/pairdist/pdb/cmmn"
	"github.com/andrew-torda/pairdist/pkg/compare"
	"github.com/andrew-torda/pairdist/pkg/splice"
)

// R0Error is a Förster distance which is not positive.
type R0Error float32

func (e R0Error) Error() string { return fmt.Sprintf("fret: r0 must be > 0, got %g", float32(e)) }

func checkR0(r0 float32) error {
	if !(r0 > 0) || math.IsInf(float64(r0), 1) {
		return R0Error(r0)
	}
	return nil
}

// Efficiency at distance r for Förster distance r0. It does not check r0.
func Efficiency(r, r0 float32) float32 {
	x := float64(r) / float64(r0)
	x3 := x * x * x
	return float32(1 / (1 + x3*x3))
}

// Record is one row of the E_fret table, written as atom_id_1, atom_id_2,
// E_fret_a, E_fret_b, delta_E_fret.
type Record struct {
	ID1, ID2 cmmn.AtomID
	EA, EB   float32
	Delta    float32 // EA - EB
}

// Key of a row
func (r *Record) Key() cmmn.Key { return cmmn.Key{ID1: r.ID1, ID2: r.ID2} }

// Table calculates efficiencies for both distances of each row of a
// delta table. Row order is kept.
func Table(deltas []compare.DeltaRecord, r0 float32) ([]Record, error) {
	if err := checkR0(r0); err != nil {
		return nil, err
	}
	ret := make([]Record, len(deltas))
	for i, d := range deltas {
		ea, eb := Efficiency(d.DistA, r0), Efficiency(d.DistB, r0)
		ret[i] = Record{ID1: d.ID1, ID2: d.ID2, EA: ea, EB: eb, Delta: ea - eb}
	}
	return ret, nil
}

// Spliced is a row of the spliced table, atom_id_1, atom_id_2, E_fret,
// delta_E_fret, source.
type Spliced struct {
	ID1, ID2 cmmn.AtomID
	E        float32
	Delta    float32
	Source   byte
}

// Key of a row
func (s *Spliced) Key() cmmn.Key { return cmmn.Key{ID1: s.ID1, ID2: s.ID2} }

// Splice takes E of a for the upper triangle and E of b for the lower,
// using the same rule as splice.Splice. Both values live in one row, so
// nothing can be missing. Output is in residue order.
func Splice(recs []Record, tie splice.Tie) ([]Spliced, error) {
	ret := make([]Spliced, len(recs))
	for i := range recs {
		r := &recs[i]
		fromA, err := splice.FromA(r.Key(), tie)
		if err != nil {
			return nil, err
		}
		s := Spliced{ID1: r.ID1, ID2: r.ID2, E: r.EB, Delta: r.Delta, Source: 'b'}
		if fromA {
			s.E, s.Source = r.EA, 'a'
		}
		ret[i] = s
	}
	return cmmn.SortPairs(ret, (*Spliced).Key)
}

// Filter keeps upper triangle rows, atom_id_1 before atom_id_2, where
// the efficiency changed by more than cutoff in either direction.
func Filter(recs []Record, cutoff float32) ([]Record, error) {
	var ret []Record
	for i := range recs {
		r := recs[i]
		if r.Delta <= cutoff && -r.Delta <= cutoff {
			continue
		}
		p1, p2, err := cmmn.ParseKey(r.Key())
		if err != nil {
			return nil, err
		}
		if p1.Cmp(p2) < 0 {
			ret = append(ret, r)
		}
	}
	return ret, nil
}

// CurvePoint is efficiency of one pair in both conformations at one r0.
// Columns r0, E_fret_a, E_fret_b, delta_E_fret.
type CurvePoint struct {
	R0     float32
	EA, EB float32
	Delta  float32
}

// R0Curve shows how the difference between two distances appears for
// each Förster distance in r0s.
func R0Curve(distA, distB float32, r0s []float32) ([]CurvePoint, error) {
	ret := make([]CurvePoint, len(r0s))
	for i, r0 := range r0s {
		if err := checkR0(r0); err != nil {
			return nil, err
		}
		ea, eb := Efficiency(distA, r0), Efficiency(distB, r0)
		ret[i] = CurvePoint{R0: r0, EA: ea, EB: eb, Delta: ea - eb}
	}
	return ret, nil
}

// R0Range is lo, lo+step ... up to and including hi, for R0Curve.
func R0Range(lo, hi, step float32) []float32 {
	if !(step > 0) || hi < lo {
		return nil
	}
	n := int(math.Floor(float64((hi-lo)/step)+1e-6)) + 1
	ret := make([]float32, n)
	for i := range ret {
		ret[i] = lo + float32(i)*step
	}
	return ret
}
