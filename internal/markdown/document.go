package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New()

// Document is a parsed Markdown body. Text and the AST built over it are owned
// by the Document; it is not safe for concurrent mutation.
type Document struct {
	root   ast.Node
	source []byte
}

// Heading describes a heading node.
type Heading struct {
	Level int
	Text  string
}

// Parse builds a Document from CommonMark source.
func Parse(src string) *Document {
	source := []byte(src)
	return &Document{
		root:   md.Parser().Parse(text.NewReader(source)),
		source: source,
	}
}

// ApplySubstitutions rewrites every run of literal text with fn. Adjacent
// text nodes are merged first so a pattern can match across the boundaries
// the parser introduces; soft line breaks appear as "\n" in the run.
func (d *Document) ApplySubstitutions(fn func(string) string) {
	var containers []ast.Node
	_ = ast.Walk(d.root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.CodeSpan, *ast.Image, *ast.AutoLink, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if isLiteral(c) {
				containers = append(containers, n)
				break
			}
		}
		return ast.WalkContinue, nil
	})

	for _, parent := range containers {
		d.substituteRuns(parent, fn)
	}
}

func isLiteral(n ast.Node) bool {
	switch t := n.(type) {
	case *ast.Text:
		return !t.IsRaw()
	case *ast.String:
		return !t.IsCode()
	}
	return false
}

// substituteRuns replaces each maximal run of literal children of parent with
// a single String holding fn(run). A hard line break ends a run and is kept
// as an empty Text carrying the break.
func (d *Document) substituteRuns(parent ast.Node, fn func(string) string) {
	child := parent.FirstChild()
	for child != nil {
		if !isLiteral(child) {
			child = child.NextSibling()
			continue
		}

		var (
			buf  bytes.Buffer
			run  []ast.Node
			hard bool
		)
		for c := child; c != nil && isLiteral(c); c = c.NextSibling() {
			run = append(run, c)
			switch t := c.(type) {
			case *ast.Text:
				buf.Write(t.Segment.Value(d.source))
				if t.HardLineBreak() {
					hard = true
				} else if t.SoftLineBreak() {
					buf.WriteByte('\n')
				}
			case *ast.String:
				buf.Write(t.Value)
			}
			if hard {
				break
			}
		}

		next := run[len(run)-1].NextSibling()
		s := ast.NewString([]byte(fn(buf.String())))
		parent.InsertBefore(parent, run[0], s)
		for _, n := range run {
			parent.RemoveChild(parent, n)
		}
		if hard {
			br := ast.NewText()
			br.SetHardLineBreak(true)
			parent.InsertAfter(parent, s, br)
		}
		child = next
	}
}

// RemoveSections removes every top-level heading for which drop returns true
// together with the blocks that follow it, up to the next heading of the same
// or a shallower level. The scan is a single left-to-right pass, so the
// heading that ends a removed section is itself tested next.
func (d *Document) RemoveSections(drop func(level int, text string) bool) {
	n := d.root.FirstChild()
	for n != nil {
		h, ok := n.(*ast.Heading)
		if !ok || !drop(h.Level, d.headingText(h)) {
			n = n.NextSibling()
			continue
		}

		next := n.NextSibling()
		d.root.RemoveChild(d.root, n)
		for next != nil {
			if hh, ok := next.(*ast.Heading); ok && hh.Level <= h.Level {
				break
			}
			following := next.NextSibling()
			d.root.RemoveChild(d.root, next)
			next = following
		}
		n = next
	}
}

// RenormalizeHeadings shifts every heading so the shallowest one sits at
// base. Levels are clamped to 1..6. A document without headings is unchanged.
func (d *Document) RenormalizeHeadings(base int) {
	var headings []*ast.Heading
	_ = ast.Walk(d.root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			headings = append(headings, h)
		}
		return ast.WalkContinue, nil
	})
	if len(headings) == 0 {
		return
	}

	minLevel := 6
	for _, h := range headings {
		minLevel = min(minLevel, h.Level)
	}
	shift := base - minLevel
	for _, h := range headings {
		h.Level = max(1, min(6, h.Level+shift))
	}
}

// Headings lists the document's headings in order.
func (d *Document) Headings() []Heading {
	var out []Heading
	_ = ast.Walk(d.root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			out = append(out, Heading{Level: h.Level, Text: d.headingText(h)})
		}
		return ast.WalkContinue, nil
	})
	return out
}

// String serializes the document. The result has no trailing newline.
func (d *Document) String() string {
	r := renderer{source: d.source}
	return r.blocks(d.root, "\n\n")
}

// Render serializes d; it is equivalent to d.String().
func Render(d *Document) string {
	return d.String()
}

// Normalize parses and re-serializes src.
func Normalize(src string) string {
	return Parse(src).String()
}

func (d *Document) headingText(h *ast.Heading) string {
	var b strings.Builder
	_ = ast.Walk(h, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(d.source))
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
