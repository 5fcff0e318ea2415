// 13 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/pairdist/pkg/common"
	"github.com/andrew-torda/pairdist/pkg/fretmap"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] struct_a struct_b")
	flag.PrintDefaults()
}

func main() {
	var flags fretmap.CmdFlag
	var outfile string
	var sasa, cutoff, r0 float64
	var r0lo, r0hi, r0step float64
	flag.StringVar(&flags.ChainA, "a", "A", "chain from first structure")
	flag.StringVar(&flags.ChainB, "b", "A", "chain from second structure")
	flag.BoolVar(&flags.Abs, "abs", false, "write |a - b|")
	flag.Float64Var(&cutoff, "c", 0, "only pairs changing by more than this")
	flag.StringVar(&flags.CurvePair, "curve", "", "pair like 12,40 for an E against r0 curve")
	flag.StringVar(&flags.CurveFile, "curvefile", "", "curve file, default stdout")
	flag.BoolVar(&flags.SpliceFret, "e", false, "splice efficiency table")
	flag.StringVar(&flags.FretFile, "f", "", "efficiency table file, default stdout")
	flag.StringVar(&flags.LogFile, "log", "", "log file, \"stdout\" for standard output")
	flag.IntVar(&flags.Model, "m", 0, "model number, from zero")
	flag.StringVar(&outfile, "o", "", "output file name, default stdout")
	flag.Float64Var(&r0, "r", 0, "Förster distance, turns on efficiency table")
	flag.Float64Var(&r0lo, "r0lo", 20, "first r0 of the curve")
	flag.Float64Var(&r0hi, "r0hi", 80, "last r0 of the curve")
	flag.Float64Var(&r0step, "r0step", 1, "r0 step of the curve")
	flag.Float64Var(&sasa, "sasa", -1, "b-factor cutoff, negative keeps all")
	flag.BoolVar(&flags.Strict, "strict", false, "repeated pairs are an error")
	flag.BoolVar(&flags.SameKeys, "same", false, "with -strict, residues must match")
	flag.BoolVar(&flags.Web, "w", false, "arguments are PDB codes to download")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(ExitUsageError)
	}
	flags.SasaCutoff, flags.Cutoff, flags.R0 = float32(sasa), float32(cutoff), float32(r0)
	flags.CurveR0 = [3]float32{float32(r0lo), float32(r0hi), float32(r0step)}
	if err := fretmap.Mymain(&flags, flag.Arg(0), flag.Arg(1), outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
