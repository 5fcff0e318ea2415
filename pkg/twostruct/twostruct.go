// 12 Oct 2026

// Package twostruct reads the two conformations of a comparison at the
// same time and reduces each to a coordinate table.
package twostruct

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/pairdist/pdb"
	"github.com/andrew-torda/pairdist/pdb/cmmn"
	"github.com/andrew-torda/pairdist/pdb/slct"
)

// Source says where to find a chain.
type Source struct {
	Name    string // file name or accession code
	SrcType byte   // cmmn.FileSrc or cmmn.HTTPSrc
	Model   int    // counted from zero
	Chain   string
}

// Picker selects atoms from a chain and builds the coordinate table.
type Picker func(chain *cmmn.Chain) (*cmmn.CoordTable, error)

// one reads a structure and picks its atoms.
func one(src *Source, pick Picker, outlog *log.Logger) (*cmmn.CoordTable, error) {
	chains, err := pdb.ReadCoordLog(src.Name, src.SrcType, outlog)
	if err != nil {
		return nil, err
	}
	chain, err := slct.GetChain(chains, src.Name, src.Model, src.Chain)
	if err != nil {
		return nil, err
	}
	ct, err := pick(chain)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name, err)
	}
	return ct, nil
}

// Load reads a and b concurrently. The first error wins and no tables
// come back. Both readers write to outlog.
func Load(ctx context.Context, a, b *Source, pick Picker, outlog *log.Logger) (ctA, ctB *cmmn.CoordTable, err error) {
	g, ctx := errgroup.WithContext(ctx)
	run := func(src *Source, dst **cmmn.CoordTable) func() error {
		return func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ct, err := one(src, pick, outlog)
			*dst = ct
			return err
		}
	}
	g.Go(run(a, &ctA))
	g.Go(run(b, &ctB))
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return ctA, ctB, nil
}

// Labelled picks the methyl carbons of VAL, LEU and ILE, named like "12-CD1".
func Labelled(chain *cmmn.Chain) (*cmmn.CoordTable, error) {
	atoms, err := slct.Carbons(slct.Residues(chain, nil), slct.LabelledCarbons)
	if err != nil {
		return nil, err
	}
	return slct.CoordTable(atoms, slct.ResidueAtom)
}

// AlphaCarbons returns a Picker for CA atoms named by residue number.
// If cutoff is not negative, atoms with a smaller b-factor are dropped.
func AlphaCarbons(cutoff float32) Picker {
	return func(chain *cmmn.Chain) (*cmmn.CoordTable, error) {
		atoms, err := slct.AlphaCarbons(slct.Residues(chain, nil))
		if err != nil {
			return nil, err
		}
		if cutoff >= 0 {
			atoms = slct.FilterByBFactor(atoms, cutoff)
		}
		return slct.CoordTable(atoms, slct.ResidueOnly)
	}
}
