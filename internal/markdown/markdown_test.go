package markdown

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_Normalization(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"atx heading kept", "## Title", "## Title"},
		{"setext becomes atx", "Title\n=====", "# Title"},
		{"closing hashes dropped", "### Step ###", "### Step"},
		{"star bullets become dashes", "* one\n* two", "- one\n- two"},
		{"plus bullets become dashes", "+ one\n+ two", "- one\n- two"},
		{"ordered keeps start and delimiter", "3) a\n4) b", "3) a\n4) b"},
		{"ordered renumbers", "1. a\n1. b\n1. c", "1. a\n2. b\n3. c"},
		{"underscore emphasis", "_em_ and __strong__", "*em* and **strong**"},
		{"thematic break", "a\n\n___\n\nb", "a\n\n---\n\nb"},
		{"indented code becomes fenced", "para\n\n    code line\n", "para\n\n```\ncode line\n```"},
		{"tilde fence becomes backticks", "~~~go\nx := 1\n~~~", "```go\nx := 1\n```"},
		{"fence grows past inner backticks", "~~~\n```\ninner\n```\n~~~", "````\n```\ninner\n```\n````"},
		{"extra blank lines collapse", "a\n\n\n\nb", "a\n\nb"},
		{"blockquote", "> quoted\n> text", "> quoted\n> text"},
		{"nested list", "- a\n  - b\n- c", "- a\n  - b\n- c"},
		{"loose list", "- a\n\n- b", "- a\n\n- b"},
		{"inline code", "use `x` here", "use `x` here"},
		{"code span with backtick", "``a ` b``", "``a ` b``"},
		{"link", "[docs](https://example.com \"Docs\")", "[docs](https://example.com \"Docs\")"},
		{"autolink", "<https://example.com>", "<https://example.com>"},
		{"soft break kept", "line one\nline two", "line one\nline two"},
		{"hard break", "line one\\\nline two", "line one\\\nline two"},
		{"trailing newline trimmed", "text\n\n", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestRender_AdjacentListsStaySeparate(t *testing.T) {
	got := Normalize("- a\n- b\n\n* c\n* d")
	assert.Equal(t, "- a\n- b\n\n* c\n* d", got)
	assert.Equal(t, got, Normalize(got))
}

func TestRender_Idempotent(t *testing.T) {
	inputs := []string{
		"# Plan\n\nIntro with *emphasis*, **strong** and `code`.\n\n## Steps\n\n1. First\n2. Second\n   - nested\n   - items\n\n> Quote with [link](https://x.dev)\n\n```bash\necho hi\n```\n\n---\n\nDone.",
		"Setext\n------\n\n+ loose\n\n+ list\n\n    indented code\n",
		"<div>\nraw html\n</div>\n\nText with <span>inline</span> html.",
		"- item\n\n  ```\n  code in item\n\n  more\n  ```\n- next",
		"10. ten\n11. eleven",
		"Foo\n\n[ref]: http://example.com\n\n[Foo][ref]",
		"- item\n\n  [ref]: http://example.com\n- [next][ref]",
	}

	for i, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		assert.Equal(t, once, twice, "input %d", i)
	}
}

func TestNormalize_DropsLinkReferenceDefinitions(t *testing.T) {
	got := Normalize("Foo\n\n[ref]: http://example.com\n\n[Foo][ref]")
	assert.Equal(t, "Foo\n\n[Foo](http://example.com)", got)
}

func TestApplySubstitutions(t *testing.T) {
	subagent := regexp.MustCompile(`(?i)\bsubagent(s)?\b`)
	rewrite := func(s string) string {
		return subagent.ReplaceAllString(s, "assistant workflow${1}")
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"paragraph", "Launch the subagents.", "Launch the assistant workflows."},
		{"heading", "## Subagent setup", "## assistant workflow setup"},
		{"emphasis", "a *subagent* b", "a *assistant workflow* b"},
		{"link text not destination", "[subagent](https://x.dev/subagent)", "[assistant workflow](https://x.dev/subagent)"},
		{"code span untouched", "`subagent` stays", "`subagent` stays"},
		{"fenced code untouched", "```\nsubagent\n```", "```\nsubagent\n```"},
		{"indented code untouched", "    subagent\n", "```\nsubagent\n```"},
		{"autolink untouched", "<https://subagent.dev>", "<https://subagent.dev>"},
		{"html untouched", "<div>subagent</div>", "<div>subagent</div>"},
		{"list items", "- subagent one\n- two subagents", "- assistant workflow one\n- two assistant workflows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.in)
			doc.ApplySubstitutions(rewrite)
			assert.Equal(t, tt.want, doc.String())
		})
	}
}

func TestApplySubstitutions_CoalescesSplitText(t *testing.T) {
	cmDoc := regexp.MustCompile(`@\.cm/[\w\-.]+`)
	doc := Parse("Read @.cm/stack_notes.md & @.cm/plan.md now")
	doc.ApplySubstitutions(func(s string) string {
		return cmDoc.ReplaceAllString(s, "project documentation")
	})
	assert.Equal(t, "Read project documentation & project documentation now", doc.String())
}

func TestApplySubstitutions_KeepsLineBreaks(t *testing.T) {
	doc := Parse("first line\nsecond line\\\nthird")
	doc.ApplySubstitutions(strings.ToUpper)
	assert.Equal(t, "FIRST LINE\nSECOND LINE\\\nTHIRD", doc.String())
}

func TestRemoveSections(t *testing.T) {
	dropExecution := func(_ int, text string) bool {
		return regexp.MustCompile(`(?i)^Execution`).MatchString(text)
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "boundary keeps sibling section",
			in:   "# H1\n\n## Execution\n\nP\n\n## Other\n\nP2",
			want: "# H1\n\n## Other\n\nP2",
		},
		{
			name: "deeper headings removed with section",
			in:   "## Execution\n\n### Detail\n\ntext\n\n## Next",
			want: "## Next",
		},
		{
			name: "shallower heading ends section",
			in:   "### Execution\n\nx\n\n# Top\n\ny",
			want: "# Top\n\ny",
		},
		{
			name: "section to end of document",
			in:   "Intro\n\n## Execution Steps\n\n- a\n- b",
			want: "Intro",
		},
		{
			name: "consecutive dropped sections",
			in:   "## Execution\n\na\n\n## execution again\n\nb\n\n## Keep",
			want: "## Keep",
		},
		{
			name: "prefix match only",
			in:   "## Pre-Execution\n\nkept",
			want: "## Pre-Execution\n\nkept",
		},
		{
			name: "nested heading in list not a section",
			in:   "- ## Execution\n- item",
			want: "- ## Execution\n- item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.in)
			doc.RemoveSections(dropExecution)
			assert.Equal(t, tt.want, doc.String())
		})
	}
}

func TestRenormalizeHeadings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		base int
		want []Heading
	}{
		{
			name: "shift down",
			in:   "# A\n\n## B\n\n### C",
			base: 3,
			want: []Heading{{3, "A"}, {4, "B"}, {5, "C"}},
		},
		{
			name: "shift up",
			in:   "### A\n\n#### B",
			base: 2,
			want: []Heading{{2, "A"}, {3, "B"}},
		},
		{
			name: "clamp at six",
			in:   "# A\n\n##### E",
			base: 3,
			want: []Heading{{3, "A"}, {6, "E"}},
		},
		{
			name: "relative depths kept",
			in:   "## A\n\n#### B\n\n## C",
			base: 2,
			want: []Heading{{2, "A"}, {4, "B"}, {2, "C"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.in)
			doc.RenormalizeHeadings(tt.base)
			assert.Equal(t, tt.want, doc.Headings())
		})
	}
}

func TestRenormalizeHeadings_NoHeadings(t *testing.T) {
	doc := Parse("just text")
	doc.RenormalizeHeadings(3)
	assert.Equal(t, "just text", doc.String())
	assert.Empty(t, doc.Headings())
}
