// Reading files of newick trees.

package newick

import (
	"errors"
	"fmt"
	"io"
	"strings"

	gtnewick "github.com/evolbioinfo/gotree/io/newick"

	"github.com/andrew-torda/phylofmt/pkg/infile"
)

// SyntaxError says which tree in a file could not be parsed.
type SyntaxError struct {
	Tree int // counting from 1
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("newick: tree %d: %v", e.Tree, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

var (
	ErrNoTree    = errors.New("there are no trees in this file")
	ErrManyTrees = errors.New("there are multiple trees in this file")
)

// statements cuts input at each ";" which is not in a quoted label or
// a [comment]. Blank pieces are dropped, so the last tree does not
// need its ";". A doubled quote inside a label closes and reopens it,
// which leaves us in the right state.
func statements(input string) []string {
	var sts []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			sts = append(sts, s)
		}
	}
	var quoted, cmmt bool
	start := 0
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case quoted:
			quoted = c != '\''
		case cmmt:
			cmmt = c != ']'
		case c == '\'':
			quoted = true
		case c == '[':
			cmmt = true
		case c == ';':
			add(input[start:i])
			start = i + 1
		}
	}
	add(input[start:])
	return sts
}

// Parse reads all the trees in input. An input with only white space
// has no trees, which is not an error here.
func Parse(input string) ([]*Tree, error) {
	var trees []*Tree
	for i, st := range statements(input) {
		gt, err := gtnewick.NewParser(strings.NewReader(st + ";")).Parse()
		if err != nil {
			return nil, &SyntaxError{Tree: i + 1, Err: err}
		}
		trees = append(trees, &Tree{gt: gt})
	}
	return trees, nil
}

// ReadAll reads every tree from r.
func ReadAll(r io.Reader) ([]*Tree, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(b))
}

// ReadOne reads a source which must contain exactly one tree.
func ReadOne(r io.Reader) (*Tree, error) {
	trees, err := ReadAll(r)
	if err != nil {
		return nil, err
	}
	switch len(trees) {
	case 0:
		return nil, ErrNoTree
	case 1:
		return trees[0], nil
	}
	return nil, ErrManyTrees
}

// ReadFile reads all the trees from a file, which may be gzipped.
func ReadFile(fname string) ([]*Tree, error) {
	b, err := infile.Slurp(fname)
	if err != nil {
		return nil, err
	}
	trees, err := Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return trees, nil
}
