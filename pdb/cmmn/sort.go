package cmmn

import (
	"slices"
)

// ParseKey parses both ids of a key.
func ParseKey(k Key) (p1, p2 ParsedID, err error) {
	if p1, err = k.ID1.Parse(); err != nil {
		return
	}
	p2, err = k.ID2.Parse()
	return
}

// SortPairs returns rows sorted by residue order of atom_id_1, then of
// atom_id_2. Equal keys keep their relative order. Ids are parsed once.
// The input is not touched.
func SortPairs[T any](rows []T, key func(*T) Key) ([]T, error) {
	type pk struct {
		p1, p2 ParsedID
		i      int
	}
	pks := make([]pk, len(rows))
	for i := range rows {
		p1, p2, err := ParseKey(key(&rows[i]))
		if err != nil {
			return nil, err
		}
		pks[i] = pk{p1, p2, i}
	}
	slices.SortStableFunc(pks, func(a, b pk) int {
		if c := a.p1.Cmp(b.p1); c != 0 {
			return c
		}
		return a.p2.Cmp(b.p2)
	})
	ret := make([]T, len(rows))
	for i, p := range pks {
		ret[i] = rows[p.i]
	}
	return ret, nil
}
