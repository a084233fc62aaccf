// Reading and writing fasta format files.

package seq

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/andrew-torda/phylofmt/pkg/infile"
	. "github.com/andrew-torda/phylofmt/pkg/seq/common"
)

// CPerLine is the width of sequence lines on output.
const CPerLine = 60

// ErrNoSeqs is wrapped in the error for an input without sequences.
var ErrNoSeqs = errors.New("no sequences found")

// ReadFasta reads fasta formatted sequences and appends them to seqgrp.
// Finding no sequences is an error.
func ReadFasta(rdr io.Reader, seqgrp *SeqGrp) error {
	tmplt := linear.NewSeq("", nil, alphabet.Protein)
	sc := seqio.NewScanner(fasta.NewReader(rdr, tmplt))
	n := 0
	for sc.Next() {
		ls, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return fmt.Errorf("fasta reader gave back a %T", sc.Seq())
		}
		seqgrp.Add(NewSeq(ls.ID, ls.Desc, []byte(string(ls.Seq))))
		n++
	}
	if err := sc.Error(); err != nil {
		return fmt.Errorf("%w: reading fasta: %w", ErrInput, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %w", ErrInput, ErrNoSeqs)
	}
	return nil
}

// Readfile takes a filename and reads sequences from it.
// It returns a SeqGrp and error. Compressed files are fine.
func Readfile(fname string) (*SeqGrp, error) {
	var seqgrp = new(SeqGrp)
	fp, err := infile.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	if err := ReadFasta(fp, seqgrp); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return seqgrp, nil
}

// Write puts sequences out in fasta format, CPerLine residues to a line.
func Write(w io.Writer, seqSet []Seq) error {
	fw := fasta.NewWriter(w, CPerLine)
	for _, s := range seqSet {
		ls := linear.NewSeq(s.ID(), alphabet.BytesToLetters(s.GetSeq()), alphabet.Protein)
		ls.Desc = s.Desc()
		if _, err := fw.Write(ls); err != nil {
			return fmt.Errorf("writing sequence %s: %w", s.ID(), err)
		}
	}
	return nil
}

// WriteToF takes a filename and a slice of sequences.
// It writes the sequences to the file.
func WriteToF(outseqFname string, seqSet []Seq) (err error) {
	fp, err := os.Create(outseqFname)
	if err != nil {
		return fmt.Errorf("creating output sequence file: %w", err)
	}
	defer func() {
		if e := fp.Close(); err == nil && e != nil {
			err = fmt.Errorf("closing %s: %w", outseqFname, e)
		}
	}()
	return Write(fp, seqSet)
}
