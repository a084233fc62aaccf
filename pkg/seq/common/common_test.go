package common_test

import (
	"os"
	"testing"

	. "github.com/andrew-torda/phylofmt/pkg/seq/common"
)

func TestWrtTemp(t *testing.T) {
	const s = ">a\nACGT\n"
	fname, err := WrtTemp(s)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	b, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != s {
		t.Fatalf("got %q want %q", b, s)
	}
}
