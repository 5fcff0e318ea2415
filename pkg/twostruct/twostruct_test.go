package twostruct_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/andrew-torda/pairdist/pdb/cmmn"
	"github.com/andrew-torda/pairdist/pkg/common"
	. "github.com/andrew-torda/pairdist/pkg/twostruct"
)

type at struct {
	name, res string
	num       int
	x, b      float32
}

var helix = []at{
	{" CA", "VAL", 1, 0, 50}, {" CG1", "VAL", 1, 1, 50}, {" CG2", "VAL", 1, 2, 50},
	{" CA", "LEU", 2, 4, 5}, {" CD1", "LEU", 2, 5, 5}, {" CD2", "LEU", 2, 6, 5},
	{" CA", "ALA", 3, 8, 50}, {" CB", "ALA", 3, 9, 50},
}

func wrtPdb(t *testing.T, atoms []at) string {
	t.Helper()
	var s strings.Builder
	for i, a := range atoms {
		fmt.Fprintf(&s, "ATOM  %5d %-4s %3s A%4d    %8.3f%8.3f%8.3f%6.2f%6.2f           C\n",
			i+1, a.name, a.res, a.num, a.x, 0., 0., 1., a.b)
	}
	s.WriteString("END\n")
	fname, err := common.WrtTemp(s.String())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(fname) })
	return fname
}

var quiet = log.New(io.Discard, "", 0)

func src(name, chain string) *Source {
	return &Source{Name: name, SrcType: cmmn.FileSrc, Chain: chain}
}

func ids(ct *cmmn.CoordTable) (ret []string) {
	for i := 0; i < ct.Len(); i++ {
		ret = append(ret, string(ct.ID(i)))
	}
	return ret
}

func TestLoad(t *testing.T) {
	f := wrtPdb(t, helix)
	ctA, ctB, err := Load(context.Background(), src(f, "A"), src(f, "A"), Labelled, quiet)
	if err != nil {
		t.Fatal(err)
	}
	want := "1-CG1 1-CG2 2-CD1 2-CD2"
	if got := strings.Join(ids(ctA), " "); got != want || strings.Join(ids(ctB), " ") != want {
		t.Errorf("labelled got %s wanted %s", got, want)
	}

	ctA, _, err = Load(context.Background(), src(f, "A"), src(f, "A"), AlphaCarbons(-1), quiet)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(ids(ctA), " "); got != "1 2 3" {
		t.Error("alpha carbons got", got)
	}
	ctA, _, _ = Load(context.Background(), src(f, "A"), src(f, "A"), AlphaCarbons(10), quiet)
	if got := strings.Join(ids(ctA), " "); got != "1 3" {
		t.Error("b-factor cutoff got", got)
	}
}

func TestLoadErrors(t *testing.T) {
	f := wrtPdb(t, helix)
	var cnf *cmmn.ChainNotFoundError
	if _, _, err := Load(context.Background(), src(f, "A"), src(f, "Q"), Labelled, quiet); !errors.As(err, &cnf) {
		t.Error("wanted ChainNotFoundError, got", err)
	} else if cnf.Chain != "Q" {
		t.Error("wrong chain in error", cnf)
	}
	if _, _, err := Load(context.Background(), src("not_exist", "A"), src(f, "A"), Labelled, quiet); err == nil {
		t.Error("missing file should fail")
	}
	broken := wrtPdb(t, helix[:5]) // LEU without CD2
	var mae *cmmn.MissingAtomError
	if _, _, err := Load(context.Background(), src(f, "A"), src(broken, "A"), Labelled, quiet); !errors.As(err, &mae) {
		t.Error("wanted MissingAtomError, got", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := Load(ctx, src(f, "A"), src(f, "A"), Labelled, quiet); !errors.Is(err, context.Canceled) {
		t.Error("wanted context.Canceled, got", err)
	}
}
