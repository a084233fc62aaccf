// 5 Nov 2024

// Package alnextract pulls a sequence alignment out of an html page.
// Alignment servers send back a page with the alignment in a <pre>
// block, names on the left, sequences with gaps on the right,
// decorated with ruler and separator lines.
package alnextract

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/andrew-torda/phylofmt/pkg/infile"
	. "github.com/andrew-torda/phylofmt/pkg/seq/common"
)

// Pair is one line of the alignment.
type Pair struct {
	ID       string
	Residues string
}

// Options are what the caller can set.
type Options struct {
	Msgs io.Writer // progress messages, nil means os.Stdout
}

// findPre does a depth first search for the first <pre> element.
func findPre(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Pre {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if p := findPre(c); p != nil {
			return p
		}
	}
	return nil
}

// text collects all the text below n, in document order.
func text(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text(c, b)
	}
}

// PreText gives back the text of the first <pre> block in a page,
// with leading and trailing white space removed.
func PreText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("%w: parsing html: %w", ErrInput, err)
	}
	pre := findPre(doc)
	if pre == nil {
		return "", fmt.Errorf("%w: <pre> block not found in the HTML file", ErrValidation)
	}
	var b strings.Builder
	text(pre, &b)
	return strings.TrimSpace(b.String()), nil
}

// skipLine says if a line is decoration. Lines starting with white
// space are rulers with column numbers. Anything with an "=" is a
// separator or a header.
func skipLine(line string) bool {
	if r, _ := utf8.DecodeRuneInString(line); unicode.IsSpace(r) {
		return true
	}
	return strings.Contains(line, "=")
}

// Parse goes through the text of the block and keeps lines made of
// exactly two words, name and sequence. Everything else is dropped
// without comment.
func Parse(txt string) []Pair {
	var pairs []Pair
	for _, line := range strings.Split(txt, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if skipLine(line) {
			continue
		}
		if f := strings.Fields(line); len(f) == 2 {
			pairs = append(pairs, Pair{ID: f[0], Residues: f[1]})
		}
	}
	return pairs
}

// Format writes pairs as fasta, each name line followed by its
// sequence on one line. There is no newline after the last sequence.
func Format(pairs []Pair) string {
	lines := make([]string, 0, 2*len(pairs))
	for _, p := range pairs {
		lines = append(lines, ">"+p.ID, p.Residues)
	}
	return strings.Join(lines, "\n")
}

// Extract reads the html page in inFname and writes the alignment to
// outFname in fasta format.
func Extract(inFname, outFname string, opts *Options) error {
	msgs := opts.Msgs
	if msgs == nil {
		msgs = os.Stdout
	}
	fp, err := infile.Open(inFname)
	if err != nil {
		return err
	}
	txt, err := PreText(fp)
	fp.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", inFname, err)
	}

	if err := os.WriteFile(outFname, []byte(Format(Parse(txt))), 0644); err != nil {
		return err
	}
	fmt.Fprintln(msgs, "Alignment with gaps preserved successfully extracted and saved to:", outFname)
	return nil
}
