// 11 Nov 2024

/*
restoreids puts original sequence names back into trees. It looks at
the input and decides what to do.

Usage:

	restoreids [-strict] input mapping.tsv output

If input is a file, it is read as a file of one or more trees, as
restoremulti does, and output is the name of the new file.

If input is a directory, every file in it ending in .newick, .tree,
.bootstraps, .bestTree, .support or .mlTrees is processed, in order of
name. Subdirectories are not searched. Results go to files of the same
name in the output directory, which is created if necessary. A file
which cannot be read or parsed is reported and skipped and the others
are still processed. At the end, the number of files written and
failed is printed.
*/
package main
