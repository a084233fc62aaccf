// 5 Nov 2024

/*
alnextract takes an html page, as sent back by an alignment server,
finds the first <pre> block and writes the alignment in it as fasta.

Usage:

	alnextract input_file.html output_file.fasta

Inside the block, lines starting with white space (rulers with column
numbers) and lines containing "=" (separators) are ignored. Every
other line must be a name and a sequence separated by white space.
Lines with more or fewer words are quietly dropped. Gaps are kept.

If there is no <pre> block, nothing is written and the exit status
is 1.
*/
package main
