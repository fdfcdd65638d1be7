package markdown

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type renderer struct {
	source []byte
}

func (r *renderer) blocks(parent ast.Node, sep string) string {
	var parts []string
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		// Link reference definitions leave empty paragraphs behind.
		if b := r.block(c); b != "" {
			parts = append(parts, b)
		}
	}
	return strings.Join(parts, sep)
}

func (r *renderer) block(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Heading:
		prefix := strings.Repeat("#", n.Level)
		if content := r.inline(n); content != "" {
			return prefix + " " + content
		}
		return prefix
	case *ast.Paragraph, *ast.TextBlock:
		return r.inline(n)
	case *ast.ThematicBreak:
		return "---"
	case *ast.FencedCodeBlock:
		var info string
		if n.Info != nil {
			info = string(n.Info.Segment.Value(r.source))
		}
		return fence(info, r.lines(n.Lines()))
	case *ast.CodeBlock:
		return fence("", r.lines(n.Lines()))
	case *ast.HTMLBlock:
		out := r.lines(n.Lines())
		if n.HasClosure() {
			out += string(n.ClosureLine.Value(r.source))
		}
		return strings.TrimRight(out, "\n")
	case *ast.Blockquote:
		return prefixLines(r.blocks(n, "\n\n"), "> ", ">")
	case *ast.List:
		return r.list(n)
	default:
		if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
			return strings.TrimRight(r.lines(n.Lines()), "\n")
		}
		return r.blocks(n, "\n\n")
	}
}

func (r *renderer) list(l *ast.List) string {
	itemSep, childSep := "\n", "\n"
	if !l.IsTight {
		itemSep, childSep = "\n\n", "\n\n"
	}

	bullet := bulletFor(l)
	var items []string
	i := 0
	for c := l.FirstChild(); c != nil; c = c.NextSibling() {
		marker := string(bullet)
		if l.IsOrdered() {
			marker = strconv.Itoa(l.Start+i) + string(l.Marker)
		}
		i++

		content := r.blocks(c, childSep)
		if content == "" {
			items = append(items, marker)
			continue
		}
		indent := strings.Repeat(" ", len(marker)+1)
		body := prefixLines(content, indent, "")
		items = append(items, marker+" "+strings.TrimPrefix(body, indent))
	}
	return strings.Join(items, itemSep)
}

// bulletFor alternates "-" and "*" across directly adjacent bullet lists so
// they stay separate lists when parsed again.
func bulletFor(l *ast.List) byte {
	alt := false
	for p := l.PreviousSibling(); p != nil; p = p.PreviousSibling() {
		pl, ok := p.(*ast.List)
		if !ok || pl.IsOrdered() {
			break
		}
		alt = !alt
	}
	if alt {
		return '*'
	}
	return '-'
}

func (r *renderer) lines(segs *text.Segments) string {
	var b strings.Builder
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		b.WriteString(strings.Repeat(" ", seg.Padding))
		b.Write(seg.Value(r.source))
	}
	return b.String()
}

func (r *renderer) inline(parent ast.Node) string {
	var b strings.Builder
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		r.writeInline(&b, c)
	}
	return strings.TrimRight(b.String(), " \n")
}

func (r *renderer) writeInline(b *strings.Builder, n ast.Node) {
	switch n := n.(type) {
	case *ast.Text:
		b.Write(n.Segment.Value(r.source))
		switch {
		case n.HardLineBreak():
			b.WriteString("\\\n")
		case n.SoftLineBreak():
			b.WriteByte('\n')
		}
	case *ast.String:
		b.Write(n.Value)
	case *ast.CodeSpan:
		b.WriteString(codeSpan(r.rawText(n)))
	case *ast.Emphasis:
		delim := strings.Repeat("*", n.Level)
		b.WriteString(delim + r.inline(n) + delim)
	case *ast.Link:
		b.WriteString("[" + r.inline(n) + "](" + destination(n.Destination, n.Title) + ")")
	case *ast.Image:
		b.WriteString("![" + r.inline(n) + "](" + destination(n.Destination, n.Title) + ")")
	case *ast.AutoLink:
		b.WriteString("<" + string(n.Label(r.source)) + ">")
	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(r.source))
		}
	default:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			r.writeInline(b, c)
		}
	}
}

func (r *renderer) rawText(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(r.source))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
	}
	return strings.ReplaceAll(b.String(), "\n", " ")
}

// fence wraps code in a backtick fence longer than any backtick run inside it.
func fence(info, code string) string {
	ch := "`"
	if strings.Contains(info, "`") {
		ch = "~"
	}
	size := max(3, longestRun(code, ch[0])+1)
	delim := strings.Repeat(ch, size)

	if code != "" && !strings.HasSuffix(code, "\n") {
		code += "\n"
	}
	return delim + info + "\n" + code + delim
}

func codeSpan(content string) string {
	delim := strings.Repeat("`", max(1, longestRun(content, '`')+1))
	pad := strings.HasPrefix(content, "`") || strings.HasSuffix(content, "`") ||
		(strings.HasPrefix(content, " ") && strings.HasSuffix(content, " ") && strings.Trim(content, " ") != "")
	if pad {
		content = " " + content + " "
	}
	return delim + content + delim
}

func destination(dest, title []byte) string {
	d := string(dest)
	if strings.ContainsAny(d, " ()<>") {
		d = "<" + strings.NewReplacer("<", `\<`, ">", `\>`).Replace(d) + ">"
	}
	if len(title) > 0 {
		d += ` "` + strings.ReplaceAll(string(title), `"`, `\"`) + `"`
	}
	return d
}

func longestRun(s string, ch byte) int {
	best, cur := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == ch {
			cur++
			best = max(best, cur)
		} else {
			cur = 0
		}
	}
	return best
}

// prefixLines prefixes every line of s. Empty lines get blank instead.
func prefixLines(s, prefix, blank string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = blank
		} else {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
