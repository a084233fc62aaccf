// 6 Nov 2024
// shortenids gives sequences short names and writes a mapping file.

package main

import (
	"errors"
	"flag"
	"io"
	"os"

	. "github.com/andrew-torda/phylofmt/pkg/seq/common"
	"github.com/andrew-torda/phylofmt/pkg/shorten"
)

const uStr = "shortenids [-v] <input_fasta> <shortened_fasta> <mapping_file>"

// run does the work of main and gives back the exit code. An unknown
// flag is a usage error like any other and gives 1, not 2.
func run(args []string, stdout, stderr io.Writer) int {
	f := flag.NewFlagSet("shortenids", flag.ContinueOnError)
	f.SetOutput(stderr)
	opts := shorten.Options{Msgs: stdout}
	f.BoolVar(&opts.Verbose, "v", false, "print each old -> new name")
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
	err := shorten.Shorten(f.Arg(0), f.Arg(1), f.Arg(2), &opts)
	return Report(stderr, err)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
