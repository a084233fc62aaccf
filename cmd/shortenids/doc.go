// 6 Nov 2024

/*
shortenids replaces sequence names in a fasta file with short
serial names, Seq0000001, Seq0000002, ..., and writes a mapping file
so the original names can be put back into trees later with
restoreids, restoresingle or restoremulti.

Usage:

	shortenids [-v] input.fasta shortened.fasta mapping.tsv

Flags:

	-v	print each mapping as it is made

Descriptions (anything after the first space on the ">" line) are
dropped. The mapping file has one line per sequence, in input order,

	Seq0000001<TAB>original_name

If the input is missing or an output file cannot be written, the
message says so and the exit status is 1.
*/
package main
