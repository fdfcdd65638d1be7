package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richhaase/context-monkey/pkg/frontmatter"
)

func TestEncodeTOMLPrompt_Layout(t *testing.T) {
	got := string(EncodeTOMLPrompt("Plan work", "# Plan\n\nDo it."))
	want := "description = \"Plan work\"\nprompt = \"\"\"\n# Plan\n\nDo it.\\\n\"\"\"\n"
	assert.Equal(t, want, got)
}

func TestEncodeTOMLPrompt_RoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		description string
		prompt      string
	}{
		{"plain", "Simple", "Hello world"},
		{"triple quotes", "Quotes", `He said """hi""" twice`},
		{"backslashes", `C:\path`, `Use \n literally and C:\dir\`},
		{"quote in description", `Say "hi"`, "body"},
		{"control characters", "bell\a", "tab\tkept\x01\x1f and \x7f"},
		{"carriage return", "cr", "line\r\nnext"},
		{"trailing quotes", "q", `ends with ""`},
		{"four quotes", "q", `""""`},
		{"unicode", "日本", "émoji 🐒"},
		{"empty prompt", "", ""},
		{"trailing newline kept", "n", "body\n"},
		{"trailing backslash", "b", `ends in \`},
		{"trailing spaces", "s", "spaced   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := EncodeTOMLPrompt(tt.description, tt.prompt)

			cmd, err := DecodeTOMLPrompt(data)
			require.NoError(t, err, string(data))
			assert.Equal(t, tt.description, cmd.Description)
			assert.Equal(t, tt.prompt, cmd.Prompt)
		})
	}
}

func TestEscapeMultiline(t *testing.T) {
	assert.Equal(t, `a\\b`, EscapeMultiline(`a\b`))
	assert.Equal(t, `\"\"\"`, EscapeMultiline(`"""`))
	assert.Equal(t, "tab\tnl\n\\u0001", EscapeMultiline("tab\tnl\n\x01"))
}

func TestEscapeBasic(t *testing.T) {
	assert.Equal(t, `a\"b\\c\nd\u0007`, EscapeBasic("a\"b\\c\nd\a"))
}

func TestMarkdown_RoundTrip(t *testing.T) {
	meta := frontmatter.NewMap()
	meta.Set("description", "Plan work")
	meta.Set("model", "sonnet")

	data, err := EncodeMarkdown(meta, "Body text\n\n")
	require.NoError(t, err)
	assert.Equal(t, "---\ndescription: Plan work\nmodel: sonnet\n---\n\nBody text\n", string(data))

	got, body, err := DecodeMarkdown(data)
	require.NoError(t, err)
	assert.True(t, meta.Equal(got))
	assert.Equal(t, "Body text", body)
}

func TestEncodeMarkdown_NoFrontmatter(t *testing.T) {
	data, err := EncodeMarkdown(frontmatter.NewMap(), "Only body")
	require.NoError(t, err)
	assert.Equal(t, "Only body\n", string(data))

	meta, body, err := DecodeMarkdown(data)
	require.NoError(t, err)
	assert.Equal(t, 0, meta.Len())
	assert.Equal(t, "Only body", body)
}
