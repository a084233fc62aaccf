// 31 July 2020
// randseq writes random sequences with awkward names, for testing
// fa2phylip and shortenids on something bigger than a toy file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/andrew-torda/phylofmt/pkg/randseq"
	. "github.com/andrew-torda/phylofmt/pkg/seq/common"
)

const uStr = "randseq [-g] [-r seed] [-c comment] <file> <nseq> <length>"

func run(args []string, stdout, stderr io.Writer) int {
	f := flag.NewFlagSet("randseq", flag.ContinueOnError)
	f.SetOutput(stderr)
	const iseed int64 = 1637
	var rargs randseq.RandSeqArgs

	f.BoolVar(&rargs.NoGap, "g", false, "do not put gaps in sequences")
	f.Int64Var(&rargs.Iseed, "r", iseed, "random number seed")
	f.StringVar(&rargs.Cmmt, "c", "", "comment for each sequence")
	f.Usage = func() {
		Usage(stdout, uStr)
		f.PrintDefaults()
	}
	if err := f.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitFailure
	}
	if f.NArg() != 3 {
		return Usage(stdout, uStr)
	}

	const emsg = "%w: failed converting %s to positive integer"
	nseq, err := strconv.ParseUint(f.Arg(1), 10, 32)
	if err != nil {
		return Report(stderr, fmt.Errorf(emsg, ErrUsage, f.Arg(1)))
	}
	nlen, err := strconv.ParseUint(f.Arg(2), 10, 32)
	if err != nil {
		return Report(stderr, fmt.Errorf(emsg, ErrUsage, f.Arg(2)))
	}
	rargs.Nseq, rargs.Len = int(nseq), int(nlen)

	rargs.Wrtr = stdout
	if fname := f.Arg(0); fname != "-" && fname != "" {
		ft, err := os.Create(fname)
		if err != nil {
			return Report(stderr, err)
		}
		defer ft.Close()
		rargs.Wrtr = ft
	}
	_, err = randseq.RandSeqMain(&rargs)
	return Report(stderr, err)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
