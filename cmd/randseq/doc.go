// 31 July 2020

/*
Randseq is for making random sequences for testing the code.
Usage:

	randseq [options] fname nseq length

will generate nseq sequences of length length and write them to fname.
If fname is "-", they go to standard output.

Flags:

	-g
		no gaps in the output sequences
	-r
		random number seed
	-c
		comment, written after the name of every sequence

The names are random and unique. They are long and full of characters
like "|" and "." which tree programs dislike, so they are a reasonable
test for shortenids. All sequences have the same length, so the output
can go straight into fa2phylip.
*/
package main
