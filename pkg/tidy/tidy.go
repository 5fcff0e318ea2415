// 11 Oct 2026

// Package tidy writes the tables as comma separated values with a
// header line. Column names are fixed, plotting code binds to them.
package tidy

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/andrew-torda/pairdist/pkg/compare"
	"github.com/andrew-torda/pairdist/pkg/distance"
	"github.com/andrew-torda/pairdist/pkg/fret"
	"github.com/andrew-torda/pairdist/pkg/proximity"
	"github.com/andrew-torda/pairdist/pkg/splice"
)

// Column names
const (
	ID1      = "atom_id_1"
	ID2      = "atom_id_2"
	Dist     = "distance"
	DistA    = "distance_a"
	DistB    = "distance_b"
	Delta    = "delta_distance"
	Label    = "proximity_label"
	Source   = "source"
	EFret    = "E_fret"
	EFretA   = "E_fret_a"
	EFretB   = "E_fret_b"
	DeltaE   = "delta_E_fret"
	R0Column = "r0"
)

func ftoa(f float32) string { return strconv.FormatFloat(float64(f), 'g', -1, 32) }

// write puts out the header, then calls row to fill in each line.
func write(w io.Writer, header []string, n int, row func(i int, line []string)) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	line := make([]string, len(header))
	for i := 0; i < n; i++ {
		row(i, line)
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Distances writes atom_id_1, atom_id_2, distance
func Distances(w io.Writer, recs []distance.Record) error {
	return write(w, []string{ID1, ID2, Dist}, len(recs), func(i int, l []string) {
		r := &recs[i]
		l[0], l[1], l[2] = string(r.ID1), string(r.ID2), ftoa(r.Dist)
	})
}

// Deltas writes atom_id_1, atom_id_2, distance_a, distance_b, delta_distance
func Deltas(w io.Writer, recs []compare.DeltaRecord) error {
	return write(w, []string{ID1, ID2, DistA, DistB, Delta}, len(recs), func(i int, l []string) {
		r := &recs[i]
		l[0], l[1] = string(r.ID1), string(r.ID2)
		l[2], l[3], l[4] = ftoa(r.DistA), ftoa(r.DistB), ftoa(r.Delta)
	})
}

// Classified writes a distance table with its proximity_label column.
func Classified(w io.Writer, rows []proximity.Binned[distance.Record], b *proximity.Bins) error {
	return write(w, []string{ID1, ID2, Dist, Label}, len(rows), func(i int, l []string) {
		r := &rows[i].Row
		l[0], l[1], l[2] = string(r.ID1), string(r.ID2), ftoa(r.Dist)
		l[3] = b.Name(rows[i].Label)
	})
}

// Spliced writes atom_id_1, atom_id_2, distance, source.
func Spliced(w io.Writer, rows []splice.Spliced) error {
	return write(w, []string{ID1, ID2, Dist, Source}, len(rows), func(i int, l []string) {
		r := &rows[i]
		l[0], l[1], l[2] = string(r.ID1), string(r.ID2), ftoa(r.Dist)
		l[3] = string(r.Source)
	})
}

// SplicedLabelled is Spliced with proximity_label before source.
func SplicedLabelled(w io.Writer, rows []proximity.Binned[splice.Spliced], b *proximity.Bins) error {
	hdr := []string{ID1, ID2, Dist, Label, Source}
	return write(w, hdr, len(rows), func(i int, l []string) {
		r := &rows[i].Row
		l[0], l[1], l[2] = string(r.ID1), string(r.ID2), ftoa(r.Dist)
		l[3], l[4] = b.Name(rows[i].Label), string(r.Source)
	})
}

// Fret writes atom_id_1, atom_id_2, E_fret_a, E_fret_b, delta_E_fret
func Fret(w io.Writer, recs []fret.Record) error {
	return write(w, []string{ID1, ID2, EFretA, EFretB, DeltaE}, len(recs), func(i int, l []string) {
		r := &recs[i]
		l[0], l[1] = string(r.ID1), string(r.ID2)
		l[2], l[3], l[4] = ftoa(r.EA), ftoa(r.EB), ftoa(r.Delta)
	})
}

// FretSpliced writes atom_id_1, atom_id_2, E_fret, delta_E_fret, source
func FretSpliced(w io.Writer, rows []fret.Spliced) error {
	return write(w, []string{ID1, ID2, EFret, DeltaE, Source}, len(rows), func(i int, l []string) {
		r := &rows[i]
		l[0], l[1] = string(r.ID1), string(r.ID2)
		l[2], l[3], l[4] = ftoa(r.E), ftoa(r.Delta), string(r.Source)
	})
}

// R0Curve writes r0, E_fret_a, E_fret_b, delta_E_fret
func R0Curve(w io.Writer, pts []fret.CurvePoint) error {
	return write(w, []string{R0Column, EFretA, EFretB, DeltaE}, len(pts), func(i int, l []string) {
		p := &pts[i]
		l[0], l[1], l[2], l[3] = ftoa(p.R0), ftoa(p.EA), ftoa(p.EB), ftoa(p.Delta)
	})
}
