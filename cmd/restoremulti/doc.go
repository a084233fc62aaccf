// 8 Nov 2024

/*
restoremulti is like restoresingle, but the input may hold any number
of trees, for example bootstrap replicates.

Usage:

	restoremulti [-strict] input.bootstraps mapping.tsv output.bootstraps

Trees are written one per line, in the order they were read. If any
tree in the file cannot be parsed, no output is written.
*/
package main
