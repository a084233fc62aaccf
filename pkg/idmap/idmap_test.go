package idmap_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/phylofmt/pkg/idmap"
	"github.com/andrew-torda/phylofmt/pkg/seq/common"
)

func TestShortID(t *testing.T) {
	for i, want := range map[int]string{1: "Seq0000001", 42: "Seq0000042", 9999999: "Seq9999999"} {
		if got := ShortID(i); got != want {
			t.Errorf("%d got %s want %s", i, got, want)
		}
	}
}

func TestWriteRead(t *testing.T) {
	entries := []Entry{
		{ShortID(1), "sp|P12345|ALBU_HUMAN"},
		{ShortID(2), "gi|2|some thing with spaces"},
	}
	var b bytes.Buffer
	if err := Write(&b, entries); err != nil {
		t.Fatal(err)
	}
	const want = "Seq0000001\tsp|P12345|ALBU_HUMAN\nSeq0000002\tgi|2|some thing with spaces\n"
	if b.String() != want {
		t.Fatalf("got %q want %q", b.String(), want)
	}
	m, ndup, err := Read(&b, true)
	if err != nil {
		t.Fatal(err)
	}
	if ndup != 0 {
		t.Error("no duplicates expected, got", ndup)
	}
	wantMap := Map{"Seq0000001": "sp|P12345|ALBU_HUMAN", "Seq0000002": "gi|2|some thing with spaces"}
	if diff := cmp.Diff(wantMap, m); diff != "" {
		t.Fatal("map (-want +got)\n", diff)
	}
}

// TestDuplicate checks the later line wins, and strict mode refuses.
func TestDuplicate(t *testing.T) {
	const in = "Seq0000001\tfirst\nSeq0000002\tother\nSeq0000001\tsecond\n"
	m, ndup, err := Read(strings.NewReader(in), false)
	if err != nil {
		t.Fatal(err)
	}
	if m["Seq0000001"] != "second" {
		t.Error("later line should win, got", m["Seq0000001"])
	}
	if ndup != 1 {
		t.Error("expected 1 duplicate, got", ndup)
	}
	if _, _, err := Read(strings.NewReader(in), true); !errors.Is(err, common.ErrValidation) {
		t.Fatal("strict should refuse duplicates, got", err)
	}
}

func TestBadLines(t *testing.T) {
	good := "\nSeq0000001\tx\n\n  \nSeq0000002\ty  \n"
	if m, _, err := Read(strings.NewReader(good), false); err != nil {
		t.Fatal("blank lines should be skipped", err)
	} else if m["Seq0000002"] != "y" {
		t.Fatalf("trailing space should be trimmed, got %q", m["Seq0000002"])
	}
	for _, bad := range []string{"Seq0000001 x\n", "a\tb\tc\n", "a\tb\njustone\n"} {
		if _, _, err := Read(strings.NewReader(bad), false); !errors.Is(err, common.ErrInput) {
			t.Errorf("%q should be an input error, got %v", bad, err)
		}
	}
}

func TestReadfile(t *testing.T) {
	fname, err := common.WrtTemp("Seq0000001\tabc\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	if m, _, err := Readfile(fname, false); err != nil || m["Seq0000001"] != "abc" {
		t.Fatal("got", m, err)
	}
	if _, _, err := Readfile(fname+"_gone", false); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("wanted not-exist error, got", err)
	}
}
