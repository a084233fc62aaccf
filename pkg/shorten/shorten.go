// 6 Nov 2024
// Some tree programs cut sequence names at 10 characters or choke on
// odd characters. Give every sequence a short, safe name and remember
// the old one in a mapping file, so the names can be put back in the
// trees afterwards.

package shorten

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/phylofmt/pkg/idmap"
	"github.com/andrew-torda/phylofmt/pkg/seq"
)

// Options are what the caller can set.
type Options struct {
	Msgs    io.Writer // progress messages, nil means os.Stdout
	Verbose bool      // print each mapping as it is made
}

// Rename replaces the identifier of each sequence with a short one,
// clears the description and returns the mapping, in input order.
func Rename(seqgrp *seq.SeqGrp) []idmap.Entry {
	slc := seqgrp.SeqSlc()
	entries := make([]idmap.Entry, len(slc))
	for i := range slc {
		short := idmap.ShortID(i + 1)
		entries[i] = idmap.Entry{Short: short, Orig: slc[i].ID()}
		slc[i].SetID(short) // do not use a range copy here
		slc[i].ClearDesc()
	}
	return entries
}

// wrtMap writes the mapping file.
func wrtMap(fname string, entries []idmap.Entry) (err error) {
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if e := fp.Close(); err == nil && e != nil {
			err = e
		}
	}()
	return idmap.Write(fp, entries)
}

// Shorten reads inFname, writes the renamed sequences to seqFname and
// the mapping to mapFname. An input with no sequences gives two empty
// files.
func Shorten(inFname, seqFname, mapFname string, opts *Options) error {
	msgs := opts.Msgs
	if msgs == nil {
		msgs = os.Stdout
	}
	fmt.Fprintln(msgs, "Opening input file:", inFname)
	seqgrp, err := seq.Readfile(inFname)
	switch {
	case errors.Is(err, seq.ErrNoSeqs):
		seqgrp = new(seq.SeqGrp)
	case err != nil:
		return err
	}
	entries := Rename(seqgrp)
	if opts.Verbose {
		for _, e := range entries {
			fmt.Fprintf(msgs, "Mapping: %s -> %s\n", e.Orig, e.Short)
		}
	}
	if err := seq.WriteToF(seqFname, seqgrp.SeqSlc()); err != nil {
		return err
	}
	if err := wrtMap(mapFname, entries); err != nil {
		return fmt.Errorf("writing mapping file: %w", err)
	}
	fmt.Fprintln(msgs, "Shortened FASTA written to:", seqFname)
	fmt.Fprintln(msgs, "Mapping file written to:", mapFname)
	return nil
}
