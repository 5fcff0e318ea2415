// 12 Oct 2026

// Package fretmap compares alpha carbon distances in two conformations
// and says which residue pairs would make good sites for FRET dyes.
package fretmap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/andrew-torda/pairdist/pdb/cmmn"
	"github.com/andrew-torda/pairdist/pkg/common"
	"github.com/andrew-torda/pairdist/pkg/compare"
	"github.com/andrew-torda/pairdist/pkg/distance"
	"github.com/andrew-torda/pairdist/pkg/fret"
	"github.com/andrew-torda/pairdist/pkg/splice"
	"github.com/andrew-torda/pairdist/pkg/tidy"
	"github.com/andrew-torda/pairdist/pkg/twostruct"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Model      int        // model number, counting from zero
	ChainA     string     // chain in first structure
	ChainB     string     // chain in second structure
	Web        bool       // names are accession codes
	SasaCutoff float32    // drop residues with b-factor below this. Negative means keep all
	Strict     bool       // duplicate pairs are an error
	SameKeys   bool       // with Strict, both structures must have the same residues
	Abs        bool       // write |delta| instead of a - b
	Cutoff     float32    // if > 0, only write upper triangle pairs changing by more than this
	R0         float32    // Förster distance. 0 means no efficiency table
	FretFile   string     // where the efficiency table goes
	SpliceFret bool       // write E of a above the diagonal and b below
	CurvePair  string     // "i,j" writes E against r0 for this pair
	CurveFile  string     // where the curve goes
	CurveR0    [3]float32 // first, last and step of r0 for the curve
	LogFile    string
}

func writeTo(fname string, wrt func(w io.Writer) error) error {
	fp, err := common.OutFile(fname)
	if err != nil {
		return err
	}
	if err = wrt(fp); err != nil {
		fp.Close()
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return fp.Close()
}

func (flags *CmdFlag) compareOpts() compare.Options {
	var opts compare.Options
	if flags.Strict {
		opts.Mode = compare.Strict
		opts.RequireSameKeys = flags.SameKeys
	}
	if flags.Abs {
		opts.Sign = compare.Absolute
	}
	return opts
}

// efficiencies writes the E_fret table if we were given r0
func efficiencies(flags *CmdFlag, deltas []compare.DeltaRecord) error {
	recs, err := fret.Table(deltas, flags.R0)
	if err != nil {
		return err
	}
	if flags.SpliceFret {
		spliced, err := fret.Splice(recs, splice.TieToA)
		if err != nil {
			return err
		}
		return writeTo(flags.FretFile, func(w io.Writer) error { return tidy.FretSpliced(w, spliced) })
	}
	return writeTo(flags.FretFile, func(w io.Writer) error { return tidy.Fret(w, recs) })
}

// curve writes efficiency against r0 for the pair named in CurvePair.
func curve(flags *CmdFlag, deltas []compare.DeltaRecord) error {
	id1, id2, ok := strings.Cut(flags.CurvePair, ",")
	if !ok {
		return errors.New("curve pair should look like 12,40, not " + flags.CurvePair)
	}
	k := cmmn.Key{ID1: cmmn.AtomID(strings.TrimSpace(id1)), ID2: cmmn.AtomID(strings.TrimSpace(id2))}
	i := slices.IndexFunc(deltas, func(d compare.DeltaRecord) bool { return d.Key() == k })
	if i == -1 {
		return fmt.Errorf("curve pair %s %s is not in both structures", k.ID1, k.ID2)
	}
	r0s := fret.R0Range(flags.CurveR0[0], flags.CurveR0[1], flags.CurveR0[2])
	if len(r0s) == 0 {
		return fmt.Errorf("empty r0 range %v", flags.CurveR0)
	}
	pts, err := fret.R0Curve(deltas[i].DistA, deltas[i].DistB, r0s)
	if err != nil {
		return err
	}
	return writeTo(flags.CurveFile, func(w io.Writer) error { return tidy.R0Curve(w, pts) })
}

// Mymain writes the delta table of two structures to outfile and
// optionally the efficiency table and one pair's r0 curve.
func Mymain(flags *CmdFlag, fileA, fileB, outfile string) error {
	outlog, logCloser, err := common.LogWhere(flags.LogFile)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	srcType := cmmn.FileSrc
	if flags.Web {
		srcType = cmmn.HTTPSrc
	}
	srcA := &twostruct.Source{Name: fileA, SrcType: srcType, Model: flags.Model, Chain: flags.ChainA}
	srcB := &twostruct.Source{Name: fileB, SrcType: srcType, Model: flags.Model, Chain: flags.ChainB}
	pick := twostruct.AlphaCarbons(flags.SasaCutoff)
	ctA, ctB, err := twostruct.Load(context.Background(), srcA, srcB, pick, outlog)
	if err != nil {
		return err
	}
	outlog.Println("alpha carbons", ctA.Len(), fileA, ctB.Len(), fileB)

	deltas, err := compare.Compare(distance.Compute(ctA), distance.Compute(ctB), flags.compareOpts())
	if err != nil {
		return err
	}
	if deltas, err = compare.Sort(deltas); err != nil {
		return err
	}
	outlog.Println(len(deltas), "pairs in both structures")
	if flags.R0 != 0 {
		if err := efficiencies(flags, deltas); err != nil {
			return err
		}
	}
	if flags.CurvePair != "" {
		if err := curve(flags, deltas); err != nil {
			return err
		}
	}
	if flags.Cutoff > 0 {
		if deltas, err = compare.Filter(deltas, flags.Cutoff, true); err != nil {
			return err
		}
		outlog.Println(len(deltas), "pairs change by more than", flags.Cutoff)
	}
	return writeTo(outfile, func(w io.Writer) error { return tidy.Deltas(w, deltas) })
}
