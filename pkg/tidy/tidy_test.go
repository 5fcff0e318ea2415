package tidy_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/andrew-torda/pairdist/pdb/cmmn"
	"github.com/andrew-torda/pairdist/pkg/compare"
	"github.com/andrew-torda/pairdist/pkg/distance"
	"github.com/andrew-torda/pairdist/pkg/fret"
	"github.com/andrew-torda/pairdist/pkg/proximity"
	"github.com/andrew-torda/pairdist/pkg/splice"
	. "github.com/andrew-torda/pairdist/pkg/tidy"
)

func threeAtoms(t *testing.T) []distance.Record {
	ct := cmmn.NewCoordTable(3)
	for i, xyz := range []cmmn.Xyz{{}, {X: 1}, {Y: 1}} {
		if err := ct.Add(cmmn.ResID(i+1), xyz); err != nil {
			t.Fatal(err)
		}
	}
	return distance.Compute(ct)
}

func check(t *testing.T, name, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("%s got\n%s\nwanted\n%s", name, got, want)
	}
}

func TestDistances(t *testing.T) {
	var buf bytes.Buffer
	if err := Distances(&buf, threeAtoms(t)); err != nil {
		t.Fatal(err)
	}
	want := `atom_id_1,atom_id_2,distance
1,1,0
1,2,1
1,3,1
2,1,1
2,2,0
2,3,1.4142135
3,1,1
3,2,1.4142135
3,3,0
`
	check(t, "distances", buf.String(), want)
}

func TestDeltas(t *testing.T) {
	a := []distance.Record{{ID1: "1", ID2: "2", Dist: 3}}
	b := []distance.Record{{ID1: "1", ID2: "2", Dist: 5}}
	d, err := compare.Compare(a, b, compare.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Deltas(&buf, d); err != nil {
		t.Fatal(err)
	}
	check(t, "deltas", buf.String(), "atom_id_1,atom_id_2,distance_a,distance_b,delta_distance\n1,2,3,5,-2\n")
}

func TestClassified(t *testing.T) {
	bins, _ := proximity.NOEBins(proximity.NOEShort)
	recs := []distance.Record{
		{ID1: "1-CD1", ID2: "2-CG1", Dist: 2},
		{ID1: "1-CD1", ID2: "3-CG2", Dist: 8},
	}
	rows, err := proximity.ClassifyDistances(recs, bins)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Classified(&buf, rows, bins); err != nil {
		t.Fatal(err)
	}
	want := "atom_id_1,atom_id_2,distance,proximity_label\n1-CD1,2-CG1,2,strong\n1-CD1,3-CG2,8,very weak\n"
	check(t, "classified", buf.String(), want)
}

func TestSpliced(t *testing.T) {
	a := threeAtoms(t)
	b := make([]distance.Record, len(a))
	for i, r := range a {
		r.Dist *= 10
		b[i] = r
	}
	sp, err := splice.Splice(a, b, splice.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Spliced(&buf, sp[:4]); err != nil {
		t.Fatal(err)
	}
	check(t, "spliced", buf.String(), "atom_id_1,atom_id_2,distance,source\n1,1,0,a\n1,2,1,a\n1,3,1,a\n2,1,10,b\n")

	bins, _ := proximity.NOEBins(proximity.NOELong)
	rows, err := proximity.Classify(sp, func(s *splice.Spliced) float32 { return s.Dist }, bins)
	if err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := SplicedLabelled(&buf, rows[3:4], bins); err != nil {
		t.Fatal(err)
	}
	check(t, "labelled", buf.String(), "atom_id_1,atom_id_2,distance,proximity_label,source\n2,1,10,very weak,b\n")
}

func TestFret(t *testing.T) {
	recs := []fret.Record{{ID1: "1", ID2: "2", EA: 0.5, EB: 0.25, Delta: 0.25}}
	var buf bytes.Buffer
	if err := Fret(&buf, recs); err != nil {
		t.Fatal(err)
	}
	check(t, "fret", buf.String(), "atom_id_1,atom_id_2,E_fret_a,E_fret_b,delta_E_fret\n1,2,0.5,0.25,0.25\n")

	buf.Reset()
	sp := []fret.Spliced{{ID1: "2", ID2: "1", E: 0.25, Delta: 0.25, Source: 'b'}}
	if err := FretSpliced(&buf, sp); err != nil {
		t.Fatal(err)
	}
	check(t, "fret spliced", buf.String(), "atom_id_1,atom_id_2,E_fret,delta_E_fret,source\n2,1,0.25,0.25,b\n")

	buf.Reset()
	pts, _ := fret.R0Curve(40, 40, []float32{40})
	if err := R0Curve(&buf, pts); err != nil {
		t.Fatal(err)
	}
	check(t, "r0 curve", buf.String(), "r0,E_fret_a,E_fret_b,delta_E_fret\n40,0.5,0.5,0\n")
}

type failWriter struct{}

var errFull = errors.New("disc full")

func (failWriter) Write([]byte) (int, error) { return 0, errFull }

func TestWriteError(t *testing.T) {
	if err := Distances(failWriter{}, threeAtoms(t)); !errors.Is(err, errFull) {
		t.Error("wanted write error, got", err)
	}
}

func TestEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Deltas(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Error("empty table should be a header only", buf.String())
	}
}
