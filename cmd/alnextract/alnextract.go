// 5 Nov 2024
// alnextract takes the alignment out of an html page and writes fasta.

package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/andrew-torda/phylofmt/pkg/alnextract"
	. "github.com/andrew-torda/phylofmt/pkg/seq/common"
)

const uStr = "alnextract input_file.html output_file.fasta"

// run does the work of main and gives back the exit code. An unknown
// flag is a usage error like any other and gives 1, not 2.
func run(args []string, stdout, stderr io.Writer) int {
	f := flag.NewFlagSet("alnextract", flag.ContinueOnError)
	f.SetOutput(stderr)
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
	if f.NArg() != 2 {
		return Usage(stdout, uStr)
	}
	err := alnextract.Extract(f.Arg(0), f.Arg(1), &alnextract.Options{Msgs: stdout})
	return Report(stderr, err)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
