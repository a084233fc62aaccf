// 8 Nov 2024

/*
restoresingle takes a tree built from sequences renamed by shortenids
and puts the original names back.

Usage:

	restoresingle [-strict] input.tree mapping.tsv output.tree

The input must hold exactly one tree in Newick format. Leaf and
internal node names found in the mapping file are replaced. Branch
lengths, support values and comments are left alone.

If a short name appears more than once in the mapping file, the last
line wins and a warning is printed. With -strict, this is an error.
For files with more than one tree, use restoremulti.
*/
package main
