// 13 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/pairdist/pkg/common"
	"github.com/andrew-torda/pairdist/pkg/noemap"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] struct_a struct_b")
	flag.PrintDefaults()
}

func main() {
	var flags noemap.CmdFlag
	var outfile string
	flag.StringVar(&flags.ChainA, "a", "A", "chain from first structure")
	flag.StringVar(&flags.ChainB, "b", "A", "chain from second structure")
	flag.StringVar(&flags.DeltaFile, "d", "", "also write delta distance table here")
	flag.BoolVar(&flags.LongRange, "l", false, "very weak NOEs go to 15 A, not 10")
	flag.StringVar(&flags.LogFile, "log", "", "log file, \"stdout\" for standard output")
	flag.IntVar(&flags.Model, "m", 0, "model number, from zero")
	flag.StringVar(&outfile, "o", "", "output file name, default stdout")
	flag.BoolVar(&flags.SkipMissing, "s", false, "skip missing pairs instead of failing")
	flag.BoolVar(&flags.StrictTie, "t", false, "pairs in one residue come from second structure")
	flag.BoolVar(&flags.Web, "w", false, "arguments are PDB codes to download")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(ExitUsageError)
	}
	if err := noemap.Mymain(&flags, flag.Arg(0), flag.Arg(1), outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
