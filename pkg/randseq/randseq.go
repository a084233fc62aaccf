// 31 July 2020
// Random sequences with random, unique names, for testing.

package randseq

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
)

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed int64     // random number seed
	Wrtr  io.Writer // where we write to
	Cmmt  string    // Comment for the sequences
	Nseq  int       // number of sequences
	Len   int       // Length of sequences
	NoGap bool      // Do not add gaps
}

var residues = []byte{'a', 'c', 'd', 'e', 'f', 'g',
	'h', 'i', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'w', 'y'}

// nameChars are allowed in names. They include the sort of thing
// found in database identifiers which upsets tree programs.
const nameChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789|._-"

// getseq returns a byte slice with a random sequence in it
func getseq(seqlen int, letters []byte, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	l := int32(len(letters))
	for i := range ret {
		ret[i] = letters[rnd.Int31n(l)]
	}
	return ret
}

// getname makes a name of random length, with a serial number on
// the end so names are unique.
func getname(i, width int, rnd *rand.Rand) string {
	n := 1 + rnd.Intn(30)
	b := make([]byte, n)
	for j := range b {
		b[j] = nameChars[rnd.Intn(len(nameChars))]
	}
	return fmt.Sprintf("%s_%0*d", b, width, i)
}

// RandSeqMain writes random sequences to an io.Writer and returns the
// names it used, in order.
func RandSeqMain(args *RandSeqArgs) ([]string, error) {
	letters := residues
	if !args.NoGap {
		letters = append(append([]byte{}, residues...), residues...)
		letters = append(letters, '-')
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	width := len(fmt.Sprintf("%d", args.Nseq))
	w := bufio.NewWriter(args.Wrtr)
	names := make([]string, args.Nseq)
	for i := range names {
		names[i] = getname(i+1, width, rnd)
		if args.Cmmt != "" {
			fmt.Fprintf(w, ">%s %s\n", names[i], args.Cmmt)
		} else {
			fmt.Fprintf(w, ">%s\n", names[i])
		}
		w.Write(getseq(args.Len, letters, rnd))
		w.WriteByte('\n')
	}
	return names, w.Flush()
}
