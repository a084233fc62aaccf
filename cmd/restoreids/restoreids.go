// 11 Nov 2024
// restoreids restores names in a tree file or a directory of them.

package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/andrew-torda/phylofmt/pkg/restore"
	. "github.com/andrew-torda/phylofmt/pkg/seq/common"
)

const uStr = "restoreids [-strict] <input_file_or_folder> <mapping_file> <output_file_or_folder>"

// run does the work of main and gives back the exit code. An unknown
// flag is a usage error like any other and gives 1, not 2.
func run(args []string, stdout, stderr io.Writer) int {
	f := flag.NewFlagSet("restoreids", flag.ContinueOnError)
	f.SetOutput(stderr)
	opts := restore.Options{Msgs: stdout}
	f.BoolVar(&opts.Strict, "strict", false, "duplicate names in the mapping file are an error")
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
	err := restore.Unified(f.Arg(0), f.Arg(1), f.Arg(2), &opts)
	return Report(stderr, err)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
