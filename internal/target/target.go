package target

import (
	"strings"

	"github.com/richhaase/context-monkey/internal/errors"
)

// Target identifies an agent CLI.
type Target string

// Supported targets.
const (
	Claude Target = "claude"
	Codex  Target = "codex"
	Gemini Target = "gemini"
)

// Format is the on-disk encoding of a rendered command.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatTOML     Format = "toml"
)

// ErrUnknownTarget is returned when a target id is not in the table.
var ErrUnknownTarget = errors.New("unknown target")

var labels = map[Target]string{
	Claude: "Claude Code",
	Codex:  "Codex CLI",
	Gemini: "Gemini CLI",
}

var formats = map[Target]Format{
	Claude: FormatMarkdown,
	Codex:  FormatMarkdown,
	Gemini: FormatTOML,
}

// All returns every supported target in fixed order.
func All() []Target {
	return []Target{Claude, Codex, Gemini}
}

// Parse returns the target for id. Matching ignores case and surrounding
// whitespace.
func Parse(id string) (Target, error) {
	t := Target(strings.ToLower(strings.TrimSpace(id)))
	if _, ok := labels[t]; !ok {
		return "", errors.Wrapf(ErrUnknownTarget, "%q", id)
	}
	return t, nil
}

// Valid reports whether t is a supported target.
func (t Target) Valid() bool {
	_, ok := labels[t]
	return ok
}

// String returns the target id.
func (t Target) String() string { return string(t) }

// Label returns the human readable CLI name, e.g. "Codex CLI".
func (t Target) Label() string { return labels[t] }

// Format returns the output encoding for the target.
func (t Target) Format() Format { return formats[t] }

// SupportsSubagents reports whether the CLI resolves agent references itself.
func (t Target) SupportsSubagents() bool { return t == Claude }

// Strings returns the ids of ts.
func Strings(ts []Target) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t)
	}
	return out
}
