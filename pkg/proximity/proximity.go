// 9 Oct 2026

// Package proximity puts distances into ordered bins, like the
// strong / medium / weak classes of NOE restraints.
//
// Bins are [e0, e1), [e1, e2), ... with e0 = 0 and the last edge +Inf.
// A distance on an edge goes in the bin which starts there.
package proximity

import (
	"fmt"
	"math"

	"github.com/andrew-torda/pairdist/pkg/distance"
)

// BinError covers bad bin definitions and distances which cannot be binned.
type BinError string

func (e BinError) Error() string { return string(e) }

// Label is the number of a bin, counting from the nearest. Labels sort
// in bin order, so the strongest comes first in sorts and legends.
type Label uint8

// The NOE classes, in the order of NOEBins.
const (
	Strong Label = iota
	Medium
	Weak
	VeryWeak
	NoNOE
)

// Stronger says if l is a nearer bin than m.
func (l Label) Stronger(m Label) bool { return l < m }

var noeNames = []string{"strong", "medium", "weak", "very weak", "none"}

// The two outer edges which are used for the very weak class.
const (
	NOEShort float32 = 10
	NOELong  float32 = 15
)

var inf = float32(math.Inf(1))

// Bins has the edges and a name for each bin.
type Bins struct {
	edges []float32
	names []string
}

// NewBins checks and copies edges and names. There must be one name
// per bin, edges must start at zero, strictly increase and end at +Inf.
func NewBins(edges []float32, names []string) (*Bins, error) {
	switch {
	case len(edges) < 2:
		return nil, BinError("need at least two bin edges")
	case len(names) != len(edges)-1:
		return nil, BinError(fmt.Sprintf("%d edges need %d labels, got %d",
			len(edges), len(edges)-1, len(names)))
	case len(names) > math.MaxUint8:
		return nil, BinError("too many bins")
	case edges[0] != 0:
		return nil, BinError("first bin edge must be 0")
	case !math.IsInf(float64(edges[len(edges)-1]), 1):
		return nil, BinError("last bin edge must be +Inf")
	}
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		if !(edges[i] < edges[i+1]) {
			return nil, BinError(fmt.Sprintf("bin edges not increasing at %g", edges[i+1]))
		}
		if seen[name] {
			return nil, BinError("label used twice: " + name)
		}
		seen[name] = true
	}
	return &Bins{
		edges: append([]float32(nil), edges...),
		names: append([]string(nil), names...),
	}, nil
}

// NOEBins is 0, 2.5, 3.5, 5, k, +Inf with the labels strong, medium,
// weak, very weak and none. k is usually NOEShort or NOELong.
func NOEBins(k float32) (*Bins, error) {
	return NewBins([]float32{0, 2.5, 3.5, 5, k, inf}, noeNames)
}

// Len is the number of bins
func (b *Bins) Len() int { return len(b.names) }

// Name of a label
func (b *Bins) Name(l Label) string { return b.names[l] }

// Names returns the labels in order.
func (b *Bins) Names() []string { return append([]string(nil), b.names...) }

// Label finds the bin of a distance. Negative, infinite and NaN
// distances are errors.
func (b *Bins) Label(d float32) (Label, error) {
	if !(d >= 0) || d == inf {
		return 0, BinError(fmt.Sprintf("cannot bin distance %g", d))
	}
	for i := len(b.edges) - 2; i > 0; i-- {
		if d >= b.edges[i] {
			return Label(i), nil
		}
	}
	return 0, nil
}

// Binned is a row with its label.
type Binned[T any] struct {
	Row   T
	Label Label
}

// Classify labels each row using the distance dist picks out of it.
// The rows are copied, not changed.
func Classify[T any](rows []T, dist func(*T) float32, b *Bins) ([]Binned[T], error) {
	ret := make([]Binned[T], len(rows))
	for i := range rows {
		l, err := b.Label(dist(&rows[i]))
		if err != nil {
			return nil, err
		}
		ret[i] = Binned[T]{Row: rows[i], Label: l}
	}
	return ret, nil
}

// ClassifyDistances labels a distance table
func ClassifyDistances(recs []distance.Record, b *Bins) ([]Binned[distance.Record], error) {
	return Classify(recs, func(r *distance.Record) float32 { return r.Dist }, b)
}

// Count says how many rows are in each bin, in bin order.
func Count[T any](rows []Binned[T], b *Bins) []int {
	n := make([]int, b.Len())
	for _, r := range rows {
		n[r.Label]++
	}
	return n
}
