// 4 Nov 2024

/*
fa2phylip converts a multiple sequence alignment in fasta format to
relaxed phylip format, as wanted by many tree building programs.

Usage:

	fa2phylip input.fasta output.phy

The output starts with a line "nseq length". Each sequence then gets
one line. The first 10 characters are the name, cut at 10 characters
or padded with spaces, immediately followed by the sequence, gaps
included.

All sequences must have the same length. If they do not, nothing is
written and the exit status is 1. An input file with no sequences is
also an error. Gzipped input is recognised and read.
*/
package main
