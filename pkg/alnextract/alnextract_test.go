package alnextract_test

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/phylofmt/pkg/alnextract"
	"github.com/andrew-torda/phylofmt/pkg/seq/common"
)

const page = `<html><head><title>alignment</title></head>
<body>
<h1>Results</h1>
<pre>
1        11       21
=====================
SeqA ACGT--GT
SeqB AC-TGGGT
</pre>
</body></html>`

func TestPage(t *testing.T) {
	txt, err := PreText(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	got := Format(Parse(txt))
	const want = ">SeqA\nACGT--GT\n>SeqB\nAC-TGGGT"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

// TestFilter has rulers with leading space, lines with too many or too
// few words and markup inside the block.
func TestFilter(t *testing.T) {
	const doc = `<p>no alignment here</p><div><pre><b>CLUSTAL</b> multiple alignment
s1    AC-G
          10        20
s2    A--G
s3
s4 AC GG
s5=x  ACGG
s6	ACGT
</pre></div><pre>
s9 CCCC
</pre>`
	txt, err := PreText(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := []Pair{
		{ID: "s1", Residues: "AC-G"},
		{ID: "s2", Residues: "A--G"},
		{ID: "s6", Residues: "ACGT"},
	}
	if diff := cmp.Diff(want, Parse(txt)); diff != "" {
		t.Fatal("pairs (-want +got)\n", diff)
	}
}

func TestNoPre(t *testing.T) {
	_, err := PreText(strings.NewReader("<html><body><p>nothing</p></body></html>"))
	if !errors.Is(err, common.ErrValidation) {
		t.Fatal("missing <pre> should be a validation error, got", err)
	}
}

func TestExtract(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "aln.html")
	out := filepath.Join(dir, "aln.fasta")
	if err := os.WriteFile(in, []byte(page), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Extract(in, out, &Options{Msgs: io.Discard}); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != ">SeqA\nACGT--GT\n>SeqB\nAC-TGGGT" {
		t.Fatalf("got %q", b)
	}

	if err := Extract(filepath.Join(dir, "missing.html"), out, &Options{Msgs: io.Discard}); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("wanted not-exist error, got", err)
	}
}

func ExampleFormat() {
	fmt.Println(Format([]Pair{{"x", "A-C"}, {"y", "AGC"}}))
	// Output:
	// >x
	// A-C
	// >y
	// AGC
}
