// 7 Nov 2024

// Package newick reads, writes and renames phylogenetic trees in
// newick format. A file may hold one tree or many, each ending with
// a semicolon. The grammar is gotree's. This package cuts a file into
// trees, and walks the nodes for renaming.
package newick

import (
	"github.com/evolbioinfo/gotree/tree"
)

// Tree is one tree from a file.
type Tree struct {
	gt *tree.Tree
}

type step struct {
	n, prev *tree.Node
}

// Walk visits every node, parents before children, children in the
// order of the file. leaf is true for a node with nothing below it.
// It uses its own stack, so deep trees do not mean deep recursion.
func (t *Tree) Walk(fn func(n *tree.Node, leaf bool)) {
	root := t.gt.Root()
	if root == nil {
		return
	}
	stack := []step{{n: root}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nb := s.n.Neigh()
		leaf := true
		for i := len(nb) - 1; i >= 0; i-- {
			if nb[i] == s.prev {
				continue
			}
			leaf = false
			stack = append(stack, step{n: nb[i], prev: s.n})
		}
		fn(s.n, leaf)
	}
}

// Rename replaces every node name which is a key in m with its value.
// Unnamed nodes and names not in m are left alone, as are support
// values. It returns the number of names changed.
func (t *Tree) Rename(m map[string]string) int {
	n := 0
	t.Walk(func(nd *tree.Node, _ bool) {
		if nd.Name() == "" {
			return
		}
		if s, ok := m[nd.Name()]; ok {
			nd.SetName(s)
			n++
		}
	})
	return n
}

// Leaves gives the leaf names in the order they appear in the file.
func (t *Tree) Leaves() []string {
	var names []string
	t.Walk(func(nd *tree.Node, leaf bool) {
		if leaf {
			names = append(names, nd.Name())
		}
	})
	return names
}
