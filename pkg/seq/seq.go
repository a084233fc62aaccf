// 20 Dec 2017

// Package seq provides functions for sequences,
// which usually begin their lives in fasta format. It can
// read and write them.
// Parsing and formatting of fasta is left to biogo. We just keep
// the identifier, the description and the residues, including gaps.
package seq

import (
	"fmt"
	"unicode/utf8"

	. "github.com/andrew-torda/phylofmt/pkg/seq/common"
)

// Seq is one sequence record.
type Seq struct {
	id   string
	desc string
	seq  []byte
}

// NewSeq makes a sequence from its parts.
func NewSeq(id, desc string, s []byte) Seq { return Seq{id: id, desc: desc, seq: s} }

// GetSeq returns the sequence as the original byte slice
func (s Seq) GetSeq() []byte { return s.seq }

// ID is the first word of the comment line, without the ">".
func (s Seq) ID() string { return s.id }

// Desc is the rest of the comment line after the identifier.
func (s Seq) Desc() string { return s.desc }

// Len includes gap characters.
func (s Seq) Len() int { return len(s.seq) }

// SetID renames a sequence.
func (s *Seq) SetID(id string) { s.id = id }

// ClearDesc throws away the description.
func (s *Seq) ClearDesc() { s.desc = "" }

// trimStr trims a string to n characters if it is longer
func trimStr(s string, n int) string {
	if utf8.RuneCountInString(s) > n {
		return string([]rune(s)[:n])
	}
	return s
}

// String returns a sequence, with its comment at the start as
// a single string
func (s Seq) String() (t string) {
	t = ">" + s.id
	if s.desc != "" {
		t += " " + s.desc
	}
	return t + "\n" + string(s.seq)
}

// SeqGrp is a group of sequences in the order they were read.
type SeqGrp struct {
	seqs []Seq
}

// GetLen returns the length of the first sequence.
// If we are reading a multiple sequence alignment, this should be the length
// of all sequences.
func (seqgrp *SeqGrp) GetLen() int { return len(seqgrp.seqs[0].GetSeq()) }

// NSeq returns the number of sequences
func (seqgrp *SeqGrp) NSeq() int { return len(seqgrp.seqs) }

// SeqSlc return the slice of sequences
func (seqgrp *SeqGrp) SeqSlc() []Seq { return seqgrp.seqs }

// Add appends a sequence.
func (seqgrp *SeqGrp) Add(s Seq) { seqgrp.seqs = append(seqgrp.seqs, s) }

// CheckLengths is for aligned sequences, which must all have the
// length of the first one. An empty group is an input error, since
// there is no first sequence to compare against.
func (seqgrp *SeqGrp) CheckLengths() error {
	const msg = "%w: sequences are not of equal length. First sequence length %d, but " +
		"sequence %d (%s) length %d"
	if len(seqgrp.seqs) == 0 {
		return fmt.Errorf("%w: no sequences", ErrInput)
	}
	iwant := seqgrp.GetLen()
	for i := 1; i < len(seqgrp.seqs); i++ {
		if ilen := seqgrp.seqs[i].Len(); ilen != iwant {
			return fmt.Errorf(msg, ErrValidation, iwant, i+1, trimStr(seqgrp.seqs[i].ID(), 40), ilen)
		}
	}
	return nil
}

// Str2SeqGrp takes some strings and returns them as a seqgrp.
// sIn is a slice of strings which are the sequences.
// prefix is an optional argument. Sequences need names. If
// prefix is not given, sequences will be called "s0", "s1", ...
func Str2SeqGrp(sIn []string, prefix ...string) *SeqGrp {
	var base string
	seqgrp := new(SeqGrp)
	if prefix == nil {
		base = "s"
	} else {
		base = prefix[0]
	}
	for i, s := range sIn {
		seqgrp.Add(NewSeq(fmt.Sprint(base, i), "", []byte(s)))
	}
	return seqgrp
}
