// 4 Nov 2024
// Convert an alignment in fasta format to relaxed phylip.

package phylip

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/andrew-torda/phylofmt/pkg/seq"
)

// NameWidth is the fixed width of a name in the output. Longer names
// are cut, shorter ones padded with spaces.
const NameWidth = 10

// Options are what the caller can set.
type Options struct {
	Msgs io.Writer // progress messages, nil means os.Stdout
}

// fmtName cuts or pads a name to exactly NameWidth characters.
func fmtName(id string) string {
	n := utf8.RuneCountInString(id)
	if n > NameWidth {
		return string([]rune(id)[:NameWidth])
	}
	return id + strings.Repeat(" ", NameWidth-n)
}

// Write sends the phylip version of the sequences to w. The sequences
// must have been checked for equal length.
func Write(w io.Writer, seqgrp *seq.SeqGrp) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", seqgrp.NSeq(), seqgrp.GetLen())
	for _, s := range seqgrp.SeqSlc() {
		bw.WriteString(fmtName(s.ID()))
		bw.Write(s.GetSeq())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Convert reads infile and writes outfile. All the checking is done
// before the output file is created, so a broken input leaves nothing
// behind.
func Convert(infile, outfile string, opts *Options) (err error) {
	msgs := opts.Msgs
	if msgs == nil {
		msgs = os.Stdout
	}
	seqgrp, err := seq.Readfile(infile)
	if err != nil {
		return err
	}
	if err := seqgrp.CheckLengths(); err != nil {
		return fmt.Errorf("%s: %w", infile, err)
	}

	fp, err := os.Create(outfile)
	if err != nil {
		return err
	}
	defer func() {
		if e := fp.Close(); err == nil && e != nil {
			err = e
		}
	}()
	if err = Write(fp, seqgrp); err != nil {
		return fmt.Errorf("writing %s: %w", outfile, err)
	}
	fmt.Fprintln(msgs, "FASTA file successfully converted to PHYLIP format:", outfile)
	return nil
}
