package compare

import (
	"github.com/andrew-torda/pairdist/pdb/cmmn"
)

// Abs returns a copy of the table with the delta replaced by its
// absolute value.
func Abs(recs []DeltaRecord) []DeltaRecord {
	ret := make([]DeltaRecord, len(recs))
	for i, r := range recs {
		if r.Delta < 0 {
			r.Delta = -r.Delta
		}
		ret[i] = r
	}
	return ret
}

// upper says if atom_id_1 comes before atom_id_2 in residue order.
func upper(k cmmn.Key) (bool, error) {
	p1, p2, err := cmmn.ParseKey(k)
	if err != nil {
		return false, err
	}
	return p1.Cmp(p2) < 0, nil
}

// Filter keeps rows whose delta is bigger than cutoff in magnitude.
// The sign of the kept rows is not changed. If upperOnly is set, each
// unordered pair appears once, from the triangle where atom_id_1 comes
// first in residue order.
func Filter(recs []DeltaRecord, cutoff float32, upperOnly bool) ([]DeltaRecord, error) {
	var ret []DeltaRecord
	for i := range recs {
		r := recs[i]
		if d := r.Delta; d <= cutoff && -d <= cutoff {
			continue
		}
		if upperOnly {
			if up, err := upper(r.Key()); err != nil {
				return nil, err
			} else if !up {
				continue
			}
		}
		ret = append(ret, r)
	}
	return ret, nil
}

// Sort returns the rows in residue order.
func Sort(recs []DeltaRecord) ([]DeltaRecord, error) {
	return cmmn.SortPairs(recs, (*DeltaRecord).Key)
}
