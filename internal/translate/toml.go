package translate

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/richhaase/context-monkey/internal/errors"
)

// TOMLCommand is the decoded form of a Gemini command file.
type TOMLCommand struct {
	Description string `toml:"description"`
	Prompt      string `toml:"prompt"`
}

// EncodeTOMLPrompt lays out a Gemini command file:
//
//	description = "<description>"
//	prompt = """
//	<prompt>\
//	"""
//
// The prompt is written verbatim apart from escaping, so it stays readable
// in the file. The line-ending backslash trims the newline before the
// closing quotes, so decoding yields prompt exactly.
func EncodeTOMLPrompt(description, prompt string) []byte {
	var b strings.Builder
	b.WriteString(`description = "`)
	b.WriteString(EscapeBasic(description))
	b.WriteString("\"\nprompt = \"\"\"\n")
	b.WriteString(EscapeMultiline(prompt))
	b.WriteString("\\\n\"\"\"\n")
	return []byte(b.String())
}

// DecodeTOMLPrompt parses a file produced by EncodeTOMLPrompt.
func DecodeTOMLPrompt(data []byte) (*TOMLCommand, error) {
	var cmd TOMLCommand
	if err := toml.Unmarshal(data, &cmd); err != nil {
		return nil, errors.Wrap(err, "unmarshaling toml")
	}
	return &cmd, nil
}

// EscapeBasic escapes s for a single-line TOML basic string.
func EscapeBasic(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if isControl(r) {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// EscapeMultiline escapes s for the body of a TOML multi-line basic string.
// Backslashes are doubled, every `"""` becomes `\"\"\"`, and control
// characters other than tab and newline become \uXXXX.
func EscapeMultiline(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"""`, `\"\"\"`)

	var b strings.Builder
	for _, r := range s {
		if r != '\t' && r != '\n' && isControl(r) {
			fmt.Fprintf(&b, `\u%04X`, r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isControl reports the characters TOML forbids unescaped in basic strings.
func isControl(r rune) bool {
	return r < 0x20 || r == 0x7F
}
