// Writing trees in newick format.

package newick

import (
	"bufio"
	"io"
	"strings"
)

// String gives a tree in newick format, with the ";" but no newline.
func (t *Tree) String() string {
	return strings.TrimSuffix(t.gt.Newick(), ";") + ";"
}

// Write puts trees out, one per line.
func Write(w io.Writer, trees ...*Tree) error {
	bw := bufio.NewWriter(w)
	for _, t := range trees {
		bw.WriteString(t.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
