// 8 Nov 2024

// Package restore puts original sequence names back into trees which
// were built from sequences renamed by shortenids.
package restore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrew-torda/phylofmt/pkg/idmap"
	"github.com/andrew-torda/phylofmt/pkg/infile"
	"github.com/andrew-torda/phylofmt/pkg/newick"
	. "github.com/andrew-torda/phylofmt/pkg/seq/common"
)

// TreeExts are the file name endings which batch mode looks at. They
// come from the usual tree programs (RAxML, IQ-TREE, ...).
var TreeExts = []string{".newick", ".tree", ".bootstraps", ".bestTree", ".support", ".mlTrees"}

// Options are what the caller can set.
type Options struct {
	Msgs   io.Writer // progress messages, nil means os.Stdout
	Strict bool      // duplicate names in the mapping file are an error
}

func (opts *Options) msgs() io.Writer {
	if opts.Msgs == nil {
		return os.Stdout
	}
	return opts.Msgs
}

// LoadMap reads the mapping file and complains about duplicates.
func LoadMap(mapFname string, opts *Options) (idmap.Map, error) {
	m, ndup, err := idmap.Readfile(mapFname, opts.Strict)
	if err != nil {
		return nil, err
	}
	if ndup > 0 {
		const msg = "Warning: %d duplicate short names in %s, the later line was used\n"
		fmt.Fprintf(opts.msgs(), msg, ndup, mapFname)
	}
	return m, nil
}

// readTrees reads all the trees in a file. Syntax errors are input errors.
func readTrees(fname string) ([]*newick.Tree, error) {
	trees, err := newick.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInput, err)
	}
	return trees, nil
}

// wrtTrees creates fname and writes the trees.
func wrtTrees(fname string, trees []*newick.Tree) (err error) {
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if e := fp.Close(); err == nil && e != nil {
			err = e
		}
	}()
	return newick.Write(fp, trees...)
}

// File renames every tree in treeFname and writes them, in the same
// order, to outFname. Nothing is written unless all the trees could
// be read.
func File(treeFname string, m idmap.Map, outFname string, opts *Options) error {
	trees, err := readTrees(treeFname)
	if err != nil {
		return err
	}
	for _, t := range trees {
		t.Rename(m)
	}
	return wrtTrees(outFname, trees)
}

// Single is for a file which must contain exactly one tree.
func Single(treeFname, mapFname, outFname string, opts *Options) error {
	m, err := LoadMap(mapFname, opts)
	if err != nil {
		return err
	}
	fp, err := infile.Open(treeFname)
	if err != nil {
		return err
	}
	t, err := newick.ReadOne(fp)
	fp.Close()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInput, treeFname, err)
	}
	t.Rename(m)
	if err := wrtTrees(outFname, []*newick.Tree{t}); err != nil {
		return err
	}
	fmt.Fprintln(opts.msgs(), "Single tree with restored IDs saved to", outFname)
	return nil
}

// Multiple is for a file with any number of trees.
func Multiple(treeFname, mapFname, outFname string, opts *Options) error {
	m, err := LoadMap(mapFname, opts)
	if err != nil {
		return err
	}
	if err := File(treeFname, m, outFname, opts); err != nil {
		return err
	}
	fmt.Fprintln(opts.msgs(), "Multiple trees with restored IDs saved to", outFname)
	return nil
}

// isTreeFile looks at the name only.
func isTreeFile(name string) bool {
	for _, ext := range TreeExts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Summary is what happened in a batch run.
type Summary struct {
	Done   []string         // files written
	Failed map[string]error // files skipped, with the reason
}

// Dir works through the tree files in inDir, not looking in
// subdirectories, in order of name. Each output file has the same
// name as its input and goes in outDir, which is created if needed.
// A file which cannot be handled is reported and skipped. Only
// problems with the directories themselves are returned as errors.
func Dir(inDir string, m idmap.Map, outDir string, opts *Options) (Summary, error) {
	sum := Summary{Failed: make(map[string]error)}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return sum, err
	}
	entries, err := os.ReadDir(inDir) // sorted by name
	if err != nil {
		return sum, err
	}
	msgs := opts.msgs()
	for _, e := range entries {
		if e.IsDir() || !isTreeFile(e.Name()) {
			continue
		}
		fmt.Fprintln(msgs, "Processing tree file:", e.Name())
		in := filepath.Join(inDir, e.Name())
		out := filepath.Join(outDir, e.Name())
		if err := File(in, m, out, opts); err != nil {
			fmt.Fprintf(msgs, "Error processing %s: %v\n", e.Name(), err)
			sum.Failed[e.Name()] = err
			continue
		}
		fmt.Fprintln(msgs, "Restored IDs saved to", out)
		sum.Done = append(sum.Done, e.Name())
	}
	return sum, nil
}

// Unified decides from the input whether to handle one file, which
// may have many trees, or a directory of them.
func Unified(input, mapFname, output string, opts *Options) error {
	fi, err := os.Stat(input)
	switch {
	case err == nil && fi.Mode().IsRegular():
		fmt.Fprintln(opts.msgs(), "Input is a file. Processing single file...")
		return Multiple(input, mapFname, output, opts)
	case err == nil && fi.IsDir():
		fmt.Fprintln(opts.msgs(), "Input is a directory. Processing all tree files in directory...")
	default:
		return fmt.Errorf("%w: %s is neither a file nor a directory.", ErrInput, input)
	}

	m, err := LoadMap(mapFname, opts)
	if err != nil {
		return err
	}
	sum, err := Dir(input, m, output, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(opts.msgs(), "%d tree files written to %s, %d failed\n", len(sum.Done), output, len(sum.Failed))
	return nil
}
