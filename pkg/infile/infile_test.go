package infile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/pgzip"

	"github.com/andrew-torda/phylofmt/pkg/infile"
)

const plain = ">s1\nACGT\n>s2\nAC-T\n"

// gzipped compresses a string so we can check that the file opener
// does the right thing.
func gzipped(t *testing.T, s string) []byte {
	var b bytes.Buffer
	zw := pgzip.NewWriter(&b)
	if _, err := zw.Write([]byte(s)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

func TestSlurp(t *testing.T) {
	dir := t.TempDir()
	var tests = []struct {
		name string
		data []byte
	}{
		{"plain.fasta", []byte(plain)},
		{"packed.fasta.gz", gzipped(t, plain)},
	}
	for _, tt := range tests {
		fname := filepath.Join(dir, tt.name)
		if err := os.WriteFile(fname, tt.data, 0644); err != nil {
			t.Fatal(err)
		}
		got, err := infile.Slurp(fname)
		if err != nil {
			t.Fatal(tt.name, err)
		}
		if string(got) != plain {
			t.Errorf("%s: got %q want %q", tt.name, got, plain)
		}
	}
}

// TestEmpty checks a zero length file, which cannot be mapped.
func TestEmpty(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(fname, nil, 0644); err != nil {
		t.Fatal(err)
	}
	got, err := infile.Slurp(fname)
	if err != nil {
		t.Fatal("empty file should not be an error", err)
	}
	if len(got) != 0 {
		t.Fatal("expected nothing, got", len(got), "bytes")
	}
}

// TestOneByte is shorter than the gzip magic number.
func TestOneByte(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "tiny")
	if err := os.WriteFile(fname, []byte{0x1f}, 0644); err != nil {
		t.Fatal(err)
	}
	if got, err := infile.Slurp(fname); err != nil {
		t.Fatal(err)
	} else if !bytes.Equal(got, []byte{0x1f}) {
		t.Fatalf("got %v", got)
	}
}

func TestMissing(t *testing.T) {
	if _, err := infile.Slurp(filepath.Join(t.TempDir(), "not_there")); !os.IsNotExist(err) {
		t.Fatal("wanted a not-exist error, got", err)
	}
	if _, err := infile.Slurp(t.TempDir()); err == nil {
		t.Fatal("a directory should not be readable as a file")
	}
}
