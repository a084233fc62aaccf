package phylip_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/andrew-torda/phylofmt/pkg/phylip"
	"github.com/andrew-torda/phylofmt/pkg/seq"
	"github.com/andrew-torda/phylofmt/pkg/seq/common"
)

var quiet = &Options{Msgs: io.Discard}

func TestFmtName(t *testing.T) {
	var tests = []struct{ in, want string }{
		{"short", "short     "},
		{"exactly10c", "exactly10c"},
		{"much_longer_than_ten", "much_longe"},
		{"", "          "},
		{"äöüäöüäöüäöü", "äöüäöüäöüä"},
	}
	for _, tt := range tests {
		got := FmtName(tt.in)
		if got != tt.want {
			t.Errorf("name %q got %q want %q", tt.in, got, tt.want)
		}
	}
}

func TestWrite(t *testing.T) {
	seqgrp := seq.Str2SeqGrp([]string{"ACGT-A", "AC-TTA", "ACGTTT"}, "a_rather_long_name_")
	var b bytes.Buffer
	if err := Write(&b, seqgrp); err != nil {
		t.Fatal(err)
	}
	want := "3 6\n" +
		"a_rather_lACGT-A\n" +
		"a_rather_lAC-TTA\n" +
		"a_rather_lACGTTT\n"
	if b.String() != want {
		t.Fatalf("got\n%s\nwant\n%s", b.String(), want)
	}
}

// TestConvert goes from a file to a file and checks the header line.
func TestConvert(t *testing.T) {
	const in = ">seq_one description\nAAAAA\nCCCCC\n>two\nAAAAACCCC-\n>three\nGGGGGTTTTT\n"
	fname, err := common.WrtTemp(in)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	outfile := filepath.Join(t.TempDir(), "out.phy")
	if err := Convert(fname, outfile, quiet); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(outfile)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(string(b), "\n")
	if lines[0] != "3 10" {
		t.Fatalf("header got %q want %q", lines[0], "3 10")
	}
	if lines[1] != "seq_one   AAAAACCCCC" {
		t.Fatalf("first line got %q", lines[1])
	}
	if lines[2] != "two       AAAAACCCC-" {
		t.Fatalf("second line got %q", lines[2])
	}
}

// TestBreak checks that we get an error if sequences have
// wrong lengths and that no output is written.
func TestBreak(t *testing.T) {
	const in = ">s1\nAAAAAAAAAA\n>s2\nAAAAAAAAAA\n>s3\nAAAAAAAAA\n"
	fname, err := common.WrtTemp(in)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	outfile := filepath.Join(t.TempDir(), "out.phy")
	err = Convert(fname, outfile, quiet)
	if !errors.Is(err, common.ErrValidation) {
		t.Fatal("wanted validation error, got", err)
	}
	if _, err := os.Stat(outfile); !os.IsNotExist(err) {
		t.Fatal("output file should not have been created")
	}
}

func TestEmptyInput(t *testing.T) {
	fname, err := common.WrtTemp("")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	outfile := filepath.Join(t.TempDir(), "out.phy")
	if err := Convert(fname, outfile, quiet); !errors.Is(err, common.ErrInput) {
		t.Fatal("wanted input error, got", err)
	}
	if err := Convert(fname+"_not_there", outfile, quiet); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("wanted not-exist error, got", err)
	}
}
