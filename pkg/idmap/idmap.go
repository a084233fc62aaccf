// 6 Nov 2024

// Package idmap handles the file which links shortened sequence
// identifiers to the originals. Each line is
//
//	short<TAB>original
//
// There is no quoting, so neither name may contain a tab or newline.
package idmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/andrew-torda/phylofmt/pkg/infile"
	. "github.com/andrew-torda/phylofmt/pkg/seq/common"
)

// Map goes from short identifier to original.
type Map map[string]string

// Entry is one line of a mapping file.
type Entry struct {
	Short string
	Orig  string
}

// ShortID gives the name for sequence number i, counting from 1.
func ShortID(i int) string { return fmt.Sprintf("Seq%07d", i) }

// Write puts entries out in the order given.
func Write(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		fmt.Fprintf(bw, "%s\t%s\n", e.Short, e.Orig)
	}
	return bw.Flush()
}

// Read reads a mapping. Blank lines are skipped. Any other line must
// have exactly two tab separated fields. If a short name turns up more
// than once, the later line wins, unless strict is set, in which case
// it is an error. The number of duplicates is returned either way.
func Read(rdr io.Reader, strict bool) (m Map, ndup int, err error) {
	m = make(Map)
	scanner := bufio.NewScanner(rdr)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) != 2 {
			const msg = "%w: line %d: expected 2 tab separated fields, got %d"
			return nil, 0, fmt.Errorf(msg, ErrInput, lineno, len(f))
		}
		if old, ok := m[f[0]]; ok {
			if strict {
				const msg = "%w: line %d: %s already mapped to %s"
				return nil, 0, fmt.Errorf(msg, ErrValidation, lineno, f[0], old)
			}
			ndup++
		}
		m[f[0]] = f[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return m, ndup, nil
}

// Readfile opens fname and reads it with Read.
func Readfile(fname string, strict bool) (Map, int, error) {
	fp, err := infile.Open(fname)
	if err != nil {
		return nil, 0, err
	}
	defer fp.Close()
	m, ndup, err := Read(fp, strict)
	if err != nil {
		return nil, 0, fmt.Errorf("mapping file %s: %w", fname, err)
	}
	return m, ndup, nil
}
