//go:build unix

package restore_test

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/andrew-torda/phylofmt/pkg/newick"
	. "github.com/andrew-torda/phylofmt/pkg/restore"
)

// TestFromPipe reads the trees from a named pipe, as from a shell
// process substitution.
func TestFromPipe(t *testing.T) {
	dir := t.TempDir()
	mapf := wrt(t, dir, "map.tsv", mapping)
	fifo := filepath.Join(dir, "trees")
	if err := syscall.Mkfifo(fifo, 0600); err != nil {
		t.Skip("cannot make a fifo:", err)
	}
	go func() {
		fp, err := os.OpenFile(fifo, os.O_WRONLY, 0)
		if err != nil {
			return
		}
		fp.WriteString("(Seq0000001,Seq0000002);\n(Seq0000003,Seq0000001);\n")
		fp.Close()
	}()
	out := filepath.Join(dir, "out.tree")
	if err := Multiple(fifo, mapf, out, quiet); err != nil {
		t.Fatal(err)
	}
	trees, err := newick.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(trees) != 2 {
		t.Fatal("wanted 2 trees from the pipe, got", len(trees))
	}
	if got := trees[1].Leaves(); got[0] != "rat" || got[1] != "human" {
		t.Error("second tree got", got)
	}
}
