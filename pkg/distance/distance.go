// 7 Oct 2026

// Package distance turns a table of coordinates into a tidy table with
// the distance between every pair of atoms, self pairs included.
package distance

import (
	"math"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/pairdist/pdb/cmmn"
)

// Record is one row of a distance table. Column names on output are
// atom_id_1, atom_id_2, distance.
type Record struct {
	ID1, ID2 cmmn.AtomID
	Dist     float32
}

// Key returns the merge key of a row
func (r *Record) Key() cmmn.Key { return cmmn.Key{ID1: r.ID1, ID2: r.ID2} }

// XyzDist is the euclidean distance between two points. The sums are
// done in double precision.
func XyzDist(x1, x2 cmmn.Xyz) float32 {
	dx := float64(x1.X) - float64(x2.X)
	dy := float64(x1.Y) - float64(x2.Y)
	dz := float64(x1.Z) - float64(x2.Z)
	return float32(math.Sqrt(dx*dx + dy*dy + dz*dz))
}

// Matrix fills out the n x n distance matrix, with rows and columns in
// the order of the coordinate table. Each distance is calculated once
// and put in both triangles, so the matrix is exactly symmetric and
// the diagonal is exactly zero.
func Matrix(ct *cmmn.CoordTable) *matrix.FMatrix2d {
	n := ct.Len()
	dmat := matrix.NewFMatrix2d(n, n)
	for i := 0; i < n; i++ {
		dmat.Mat[i][i] = 0
		xi := ct.Xyz(i)
		for j := i + 1; j < n; j++ {
			d := XyzDist(xi, ct.Xyz(j))
			dmat.Mat[i][j] = d
			dmat.Mat[j][i] = d
		}
	}
	return dmat
}

// Compute returns n*n records, row by row: the first atom of the table
// paired with every atom, then the second and so on. Atom order is
// never sorted. An empty table gives an empty result.
func Compute(ct *cmmn.CoordTable) []Record {
	n := ct.Len()
	dmat := Matrix(ct)
	recs := make([]Record, 0, n*n)
	for i := 0; i < n; i++ {
		id1 := ct.ID(i)
		for j, d := range dmat.Mat[i] {
			recs = append(recs, Record{ID1: id1, ID2: ct.ID(j), Dist: d})
		}
	}
	return recs
}
