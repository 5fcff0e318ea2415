package slct_test

import (
	"errors"
	"testing"

	"github.com/andrew-torda/pairdist/pdb/cmmn"
	. "github.com/andrew-torda/pairdist/pdb/slct"
)

// mkRes makes a residue with atoms at made up coordinates. The b-factor
// of each atom is its index in the residue.
func mkRes(name string, num int, atoms ...string) cmmn.Residue {
	r := cmmn.Residue{Name: name, Num: num, InsCode: ' '}
	for i, a := range atoms {
		r.Atoms = append(r.Atoms, cmmn.Atom{
			Name: a, ResName: name, ResNum: num,
			Xyz:     cmmn.Xyz{X: float32(num), Y: float32(i), Z: 0},
			BFactor: float32(i),
		})
	}
	return r
}

func testChain() *cmmn.Chain {
	return &cmmn.Chain{ChainID: "A", Residues: []cmmn.Residue{
		mkRes("VAL", 4, "N", "CA", "CB", "CG1", "CG2"),
		mkRes("GLY", 5, "N", "CA"),
		mkRes("LEU", 6, "N", "CA", "CB", "CG", "CD1", "CD2"),
		mkRes("ILE", 7, "N", "CA", "CB", "CG1", "CG2", "CD1"),
	}}
}

func TestGetChain(t *testing.T) {
	chains := []cmmn.Chain{{ChainID: "A"}, {ChainID: "B"}, {ChainID: "A", MdlNum: 1}}
	c, err := GetChain(chains, "1abc", 1, "A")
	if err != nil || c != &chains[2] {
		t.Error("did not get model 1 chain A", err)
	}
	_, err = GetChain(chains, "1abc", 0, "C")
	var ce *cmmn.ChainNotFoundError
	if !errors.As(err, &ce) {
		t.Fatalf("wanted ChainNotFoundError, got %v", err)
	}
	if ce.Error() != "1abc/0/C not in structure" {
		t.Error("message", ce.Error())
	}
}

func TestResidues(t *testing.T) {
	chn := testChain()
	if r := Residues(chn, nil); len(r) != 4 {
		t.Error("no filter, got", len(r))
	}
	r := Residues(chn, []string{"LEU", "ILE"})
	if len(r) != 2 || r[0].Num != 6 || r[1].Num != 7 {
		t.Error("filter broken", r)
	}
}

func TestAlphaCarbons(t *testing.T) {
	chn := testChain()
	ca, err := AlphaCarbons(Residues(chn, nil))
	if err != nil {
		t.Fatal(err)
	}
	if len(ca) != 4 || ca[1].ResNum != 5 || ca[1].Name != "CA" {
		t.Error("wrong alpha carbons")
	}
	chn.Residues = append(chn.Residues, mkRes("HOH", 101, "O"))
	_, err = AlphaCarbons(Residues(chn, nil))
	var me *cmmn.MissingAtomError
	if !errors.As(err, &me) || me.ResNum != 101 || me.AtomName != "CA" {
		t.Errorf("wanted missing CA in 101, got %v", err)
	}
}

func TestLabelledCarbons(t *testing.T) {
	chn := testChain()
	atoms, err := Carbons(Residues(chn, nil), LabelledCarbons)
	if err != nil {
		t.Fatal(err)
	}
	ct, err := CoordTable(atoms, ResidueAtom)
	if err != nil {
		t.Fatal(err)
	}
	want := []cmmn.AtomID{"4-CG1", "4-CG2", "6-CD1", "6-CD2", "7-CD1"}
	if ct.Len() != len(want) {
		t.Fatalf("got %d atoms, wanted %d", ct.Len(), len(want))
	}
	for i, id := range want {
		if ct.ID(i) != id {
			t.Errorf("position %d got %s wanted %s", i, ct.ID(i), id)
		}
	}
	chn.Residues[2] = mkRes("LEU", 6, "N", "CA", "CD1") // lost CD2
	_, err = Carbons(Residues(chn, nil), LabelledCarbons)
	var me *cmmn.MissingAtomError
	if !errors.As(err, &me) || me.AtomName != "CD2" || me.ResName != "LEU" {
		t.Errorf("wanted missing CD2, got %v", err)
	}
}

func TestBFactorAndIDs(t *testing.T) {
	chn := testChain()
	ca, _ := AlphaCarbons(Residues(chn, nil))
	ca[0].BFactor = 0.1 // VAL 4 is buried
	for _, a := range ca[1:] {
		a.BFactor = 0.6
	}
	kept := FilterByBFactor(ca, 0.5)
	ct, err := CoordTable(kept, ResidueOnly)
	if err != nil {
		t.Fatal(err)
	}
	if ct.Len() != 3 || ct.ID(0) != "5" || ct.Index("4") != -1 {
		t.Error("b-factor filter broken")
	}
	if ct.Xyz(0) != ca[1].Xyz {
		t.Error("coordinates not carried")
	}
	atoms, _ := Carbons(Residues(chn, nil), LabelledCarbons)
	_, err = CoordTable(atoms, ResidueOnly)
	var de *cmmn.DuplicateAtomError
	if !errors.As(err, &de) || de.ID != "4" {
		t.Errorf("two atoms in one residue should collide, got %v", err)
	}
}
