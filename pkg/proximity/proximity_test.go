package proximity_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/andrew-torda/pairdist/pkg/distance"
	. "github.com/andrew-torda/pairdist/pkg/proximity"
)

var inf = float32(math.Inf(1))

func noe(t *testing.T, k float32) *Bins {
	t.Helper()
	b, err := NOEBins(k)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

var labeltests = []struct {
	d     float32
	short Label // k = 10
	long  Label // k = 15
}{
	{0, Strong, Strong},
	{2.0, Strong, Strong},
	{2.5, Medium, Medium},
	{3.0, Medium, Medium},
	{3.5, Weak, Weak},
	{4.0, Weak, Weak},
	{5.0, VeryWeak, VeryWeak},
	{8.0, VeryWeak, VeryWeak},
	{10, NoNOE, VeryWeak},
	{12, NoNOE, VeryWeak},
	{15, NoNOE, NoNOE},
	{20.0, NoNOE, NoNOE},
	{1e30, NoNOE, NoNOE},
}

func TestNOELabels(t *testing.T) {
	short, long := noe(t, NOEShort), noe(t, NOELong)
	for _, tt := range labeltests {
		if l, err := short.Label(tt.d); err != nil || l != tt.short {
			t.Errorf("k=10 distance %g got %s wanted %s (%v)", tt.d, short.Name(l), short.Name(tt.short), err)
		}
		if l, err := long.Label(tt.d); err != nil || l != tt.long {
			t.Errorf("k=15 distance %g got %s wanted %s (%v)", tt.d, long.Name(l), long.Name(tt.long), err)
		}
	}
	want := []string{"strong", "medium", "weak", "very weak", "none"}
	if !slices.Equal(short.Names(), want) {
		t.Error("names", short.Names())
	}
}

func TestBadDistances(t *testing.T) {
	b := noe(t, NOEShort)
	for _, d := range []float32{-0.1, inf, float32(math.NaN())} {
		_, err := b.Label(d)
		var be BinError
		if !errors.As(err, &be) {
			t.Errorf("distance %g wanted BinError got %v", d, err)
		}
	}
}

func TestNewBins(t *testing.T) {
	bad := []struct {
		edges []float32
		names []string
	}{
		{[]float32{0}, nil},
		{[]float32{0, 1, inf}, []string{"a"}},
		{[]float32{1, 2, inf}, []string{"a", "b"}},
		{[]float32{0, 2, 20}, []string{"a", "b"}},
		{[]float32{0, 2, 2, inf}, []string{"a", "b", "c"}},
		{[]float32{0, 3, 2, inf}, []string{"a", "b", "c"}},
		{[]float32{0, 2, inf}, []string{"a", "a"}},
	}
	for _, x := range bad {
		if _, err := NewBins(x.edges, x.names); err == nil {
			t.Errorf("edges %v labels %v should fail", x.edges, x.names)
		}
	}
	if _, err := NOEBins(4); err == nil {
		t.Error("k below 5 should fail")
	}
	edges := []float32{0, 1, inf}
	b, err := NewBins(edges, []string{"touching", "apart"})
	if err != nil {
		t.Fatal(err)
	}
	edges[1] = 100 // must not reach into b
	if l, _ := b.Label(2); b.Name(l) != "apart" {
		t.Error("bins share memory with caller")
	}
}

func TestClassify(t *testing.T) {
	recs := []distance.Record{
		{ID1: "1", ID2: "1", Dist: 0},
		{ID1: "1", ID2: "2", Dist: 3},
		{ID1: "1", ID2: "3", Dist: 4},
		{ID1: "1", ID2: "4", Dist: 8},
		{ID1: "1", ID2: "5", Dist: 20},
		{ID1: "1", ID2: "6", Dist: 2},
	}
	b := noe(t, NOEShort)
	got, err := ClassifyDistances(recs, b)
	if err != nil {
		t.Fatal(err)
	}
	want := []Label{Strong, Medium, Weak, VeryWeak, NoNOE, Strong}
	for i, r := range got {
		if r.Label != want[i] || r.Row != recs[i] {
			t.Errorf("row %d got %+v", i, r)
		}
	}
	if n := Count(got, b); !slices.Equal(n, []int{2, 1, 1, 1, 1}) {
		t.Error("count", n)
	}

	// Doing it again on the output gives the same labels.
	again, err := Classify(got, func(r *Binned[distance.Record]) float32 { return r.Row.Dist }, b)
	if err != nil {
		t.Fatal(err)
	}
	for i := range again {
		if again[i].Label != got[i].Label {
			t.Errorf("row %d changed label on second pass", i)
		}
	}

	recs[1].Dist = -1
	if _, err := ClassifyDistances(recs, b); err == nil {
		t.Error("negative distance should fail the whole table")
	}
}

func TestOrdering(t *testing.T) {
	labels := []Label{NoNOE, Weak, Strong, VeryWeak, Medium}
	slices.Sort(labels)
	if !slices.Equal(labels, []Label{Strong, Medium, Weak, VeryWeak, NoNOE}) {
		t.Error("labels do not sort nearest first", labels)
	}
	if !Strong.Stronger(Medium) || NoNOE.Stronger(VeryWeak) {
		t.Error("Stronger broken")
	}
}
