// 8 Oct 2026

// Package compare matches the distance tables of two conformations on
// (atom_id_1, atom_id_2) and calculates how much each distance changed.
package compare

import (
	"fmt"

	"github.com/andrew-torda/pairdist/pdb/cmmn"
	"github.com/andrew-torda/pairdist/pkg/distance"
)

// Mode decides how keys are matched.
type Mode byte

const (
	// Intersect keeps pairs present in both tables and drops the rest
	// without comment. If a key is repeated, the first row is used.
	Intersect Mode = iota
	// Strict insists that no key appears twice on either side.
	Strict
)

// Sign is the convention for delta_distance.
type Sign byte

const (
	Signed   Sign = iota // distance_a - distance_b
	Absolute             // |distance_a - distance_b|
)

// Options for Compare. The zero value is Intersect and Signed.
type Options struct {
	Mode            Mode
	RequireSameKeys bool // Strict only. Both tables must have exactly the same keys
	Sign            Sign
}

// DeltaRecord is one row of the delta table, written as atom_id_1,
// atom_id_2, distance_a, distance_b, delta_distance.
type DeltaRecord struct {
	ID1, ID2     cmmn.AtomID
	DistA, DistB float32
	Delta        float32
}

// Key returns the merge key of a row
func (r *DeltaRecord) Key() cmmn.Key { return cmmn.Key{ID1: r.ID1, ID2: r.ID2} }

// CardinalityError is a key found more than once in one table.
type CardinalityError struct {
	Side string // "a" or "b"
	Key  cmmn.Key
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("pair %s %s appears more than once in table %s", e.Key.ID1, e.Key.ID2, e.Side)
}

// KeySetError says the two tables do not cover the same pairs.
type KeySetError struct {
	OnlyA, OnlyB int      // number of keys found in only one table
	Example      cmmn.Key // one of them
}

func (e *KeySetError) Error() string {
	return fmt.Sprintf("key sets differ: %d pairs only in a, %d only in b, for example %s %s",
		e.OnlyA, e.OnlyB, e.Example.ID1, e.Example.ID2)
}

// index maps each key to its first row. In strict mode, a second row is
// an error.
func index(recs []distance.Record, side string, strict bool) (map[cmmn.Key]int, error) {
	ndx := make(map[cmmn.Key]int, len(recs))
	for i := range recs {
		k := recs[i].Key()
		if _, ok := ndx[k]; ok {
			if strict {
				return nil, &CardinalityError{Side: side, Key: k}
			}
			continue
		}
		ndx[k] = i
	}
	return ndx, nil
}

// delta applies the sign convention.
func (s Sign) delta(a, b float32) float32 {
	d := a - b
	if s == Absolute && d < 0 {
		d = -d
	}
	return d
}

// Compare joins two distance tables on their keys. Rows come out in the
// order they have in a. An empty result is not an error.
func Compare(a, b []distance.Record, opts Options) ([]DeltaRecord, error) {
	strict := opts.Mode == Strict
	ndxA, err := index(a, "a", strict)
	if err != nil {
		return nil, err
	}
	ndxB, err := index(b, "b", strict)
	if err != nil {
		return nil, err
	}
	if strict && opts.RequireSameKeys {
		if err := sameKeys(ndxA, ndxB, a, b); err != nil {
			return nil, err
		}
	}
	ret := make([]DeltaRecord, 0, min(len(ndxA), len(ndxB)))
	for i := range a {
		k := a[i].Key()
		if ndxA[k] != i {
			continue // repeated key, already done
		}
		j, ok := ndxB[k]
		if !ok {
			continue
		}
		da, db := a[i].Dist, b[j].Dist
		ret = append(ret, DeltaRecord{
			ID1: k.ID1, ID2: k.ID2,
			DistA: da, DistB: db,
			Delta: opts.Sign.delta(da, db),
		})
	}
	return ret, nil
}

// sameKeys checks both key sets are identical. We walk the tables, not
// the maps, so the example in the error does not depend on map order.
func sameKeys(ndxA, ndxB map[cmmn.Key]int, a, b []distance.Record) error {
	var e KeySetError
	for i := range a {
		if _, ok := ndxB[a[i].Key()]; !ok {
			if e.OnlyA == 0 {
				e.Example = a[i].Key()
			}
			e.OnlyA++
		}
	}
	for i := range b {
		if _, ok := ndxA[b[i].Key()]; !ok {
			if e.OnlyA == 0 && e.OnlyB == 0 {
				e.Example = b[i].Key()
			}
			e.OnlyB++
		}
	}
	if e.OnlyA != 0 || e.OnlyB != 0 {
		return &e
	}
	return nil
}

// Between calculates the distances within two coordinate tables and
// compares them.
func Between(coordA, coordB *cmmn.CoordTable, opts Options) ([]DeltaRecord, error) {
	return Compare(distance.Compute(coordA), distance.Compute(coordB), opts)
}
