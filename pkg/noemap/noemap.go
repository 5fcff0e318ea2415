// 12 Oct 2026

// Package noemap makes a map of which methyl groups would give NOEs in
// two conformations. One conformation fills the upper triangle and the
// other the lower.
package noemap

import (
	"context"
	"fmt"
	"io"

	"github.com/andrew-torda/pairdist/pdb/cmmn"
	"github.com/andrew-torda/pairdist/pkg/common"
	"github.com/andrew-torda/pairdist/pkg/compare"
	"github.com/andrew-torda/pairdist/pkg/distance"
	"github.com/andrew-torda/pairdist/pkg/proximity"
	"github.com/andrew-torda/pairdist/pkg/splice"
	"github.com/andrew-torda/pairdist/pkg/tidy"
	"github.com/andrew-torda/pairdist/pkg/twostruct"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Model       int    // model number, counting from zero
	ChainA      string // chain in first structure
	ChainB      string // chain in second structure
	Web         bool   // names are accession codes, not files
	LongRange   bool   // very weak goes out to 15 A instead of 10
	StrictTie   bool   // pairs in the same residue go to b
	SkipMissing bool   // leave out pairs missing from one structure
	DeltaFile   string // if set, also write the delta table here
	LogFile     string // "" is no logging, "stdout" or a file name
}

func (flags *CmdFlag) sources(fileA, fileB string) (a, b *twostruct.Source) {
	srcType := cmmn.FileSrc
	if flags.Web {
		srcType = cmmn.HTTPSrc
	}
	a = &twostruct.Source{Name: fileA, SrcType: srcType, Model: flags.Model, Chain: flags.ChainA}
	b = &twostruct.Source{Name: fileB, SrcType: srcType, Model: flags.Model, Chain: flags.ChainB}
	return a, b
}

// writeTo opens fname, lets wrt fill it and closes it.
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

// Mymain reads two structures and writes the spliced, labelled table to
// outfile.
func Mymain(flags *CmdFlag, fileA, fileB, outfile string) error {
	outlog, logCloser, err := common.LogWhere(flags.LogFile)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	srcA, srcB := flags.sources(fileA, fileB)
	ctA, ctB, err := twostruct.Load(context.Background(), srcA, srcB, twostruct.Labelled, outlog)
	if err != nil {
		return err
	}
	outlog.Println("labelled carbons", ctA.Len(), fileA, ctB.Len(), fileB)
	distA, distB := distance.Compute(ctA), distance.Compute(ctB)

	k := proximity.NOEShort
	if flags.LongRange {
		k = proximity.NOELong
	}
	bins, err := proximity.NOEBins(k)
	if err != nil {
		return err
	}
	opts := splice.Options{SkipMissing: flags.SkipMissing}
	if flags.StrictTie {
		opts.Tie = splice.StrictLess
	}
	spliced, err := splice.Splice(distA, distB, opts)
	if err != nil {
		return err
	}
	rows, err := proximity.Classify(spliced, func(s *splice.Spliced) float32 { return s.Dist }, bins)
	if err != nil {
		return err
	}
	n := proximity.Count(rows, bins)
	for i, name := range bins.Names() {
		outlog.Println(name, n[i])
	}
	if err := writeTo(outfile, func(w io.Writer) error {
		return tidy.SplicedLabelled(w, rows, bins)
	}); err != nil {
		return err
	}

	if flags.DeltaFile == "" {
		return nil
	}
	deltas, err := compare.Compare(distA, distB, compare.Options{})
	if err != nil {
		return err
	}
	if deltas, err = compare.Sort(deltas); err != nil {
		return err
	}
	return writeTo(flags.DeltaFile, func(w io.Writer) error { return tidy.Deltas(w, deltas) })
}
