package target

import (
	"regexp"
	"strconv"

	"github.com/richhaase/context-monkey/internal/errors"
)

// Mode selects how agent references are handled for a target.
type Mode string

const (
	// ModeSkip leaves the body as authored.
	ModeSkip Mode = "skip"
	// ModeInline rewrites vocabulary and appends agent blueprints.
	ModeInline Mode = "inline"
)

// Replacement is a regexp substitution applied to literal Markdown text.
// Replace uses regexp.Expand syntax, so "${1}" refers to the first group.
type Replacement struct {
	Pattern *regexp.Regexp
	Replace string
}

// Rule is the transform configuration for one target.
type Rule struct {
	Mode         Mode
	HeadingLevel int
	DropHeadings []*regexp.Regexp
	Replacements []Replacement
}

// ErrInvalidRule reports a malformed rule table entry.
var ErrInvalidRule = errors.New("invalid render rule")

// Validate checks the rule for configuration mistakes.
func (r Rule) Validate() error {
	switch r.Mode {
	case ModeSkip:
		return nil
	case ModeInline:
	default:
		return errors.Wrapf(ErrInvalidRule, "mode %q", r.Mode)
	}
	if r.HeadingLevel < 1 || r.HeadingLevel > 6 {
		return errors.Wrapf(ErrInvalidRule, "heading level %d out of range", r.HeadingLevel)
	}
	for i, re := range r.DropHeadings {
		if re == nil {
			return errors.Wrapf(ErrInvalidRule, "drop heading %d has no pattern", i)
		}
	}
	for i, rep := range r.Replacements {
		if rep.Pattern == nil {
			return errors.Wrapf(ErrInvalidRule, "replacement %d has no pattern", i)
		}
	}
	return nil
}

// DropsHeading reports whether a heading with the given text starts a section
// that must be removed.
func (r Rule) DropsHeading(text string) bool {
	for _, re := range r.DropHeadings {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// Rewrite applies the replacements to s in order.
func (r Rule) Rewrite(s string) string {
	for _, rep := range r.Replacements {
		s = rep.Pattern.ReplaceAllString(s, rep.Replace)
	}
	return s
}

var dropExecution = regexp.MustCompile(`(?i)^Execution`)

var sharedReplacements = []Replacement{
	{regexp.MustCompile(`@\.cm/[\w\-.]+`), "project documentation"},
	{regexp.MustCompile(`(?i)\bsubagent(s)?\b`), "assistant workflow${1}"},
	{regexp.MustCompile(`(?i)\buse task tool(s)?\b`), "Run workspace tools"},
	{regexp.MustCompile(`(?i)\btask tool(s)?\b`), "workspace tools"},
}

// codexReplacements run after the shared list, for Codex only.
var codexReplacements = []Replacement{
	{regexp.MustCompile(`(?i)\bClaude Code\b`), "Codex CLI"},
	{regexp.MustCompile(`/cm:`), "/cm-"},
}

func inlineRule(headingLevel int, extra ...Replacement) Rule {
	reps := make([]Replacement, 0, len(sharedReplacements)+len(extra))
	reps = append(reps, sharedReplacements...)
	reps = append(reps, extra...)
	return Rule{
		Mode:         ModeInline,
		HeadingLevel: headingLevel,
		DropHeadings: []*regexp.Regexp{dropExecution},
		Replacements: reps,
	}
}

var rules = map[Target]Rule{
	Claude: {Mode: ModeSkip},
	Codex:  inlineRule(2, codexReplacements...),
	Gemini: inlineRule(3),
}

// RuleFor returns the rule for t, or ErrUnknownTarget.
func RuleFor(t Target) (Rule, error) {
	r, ok := rules[t]
	if !ok {
		return Rule{}, errors.Wrapf(ErrUnknownTarget, "%q", string(t))
	}
	return r, nil
}

// Heading returns a Markdown ATX prefix for the rule's heading level.
func (r Rule) Heading() string {
	n := r.HeadingLevel
	if n < 1 {
		n = 1
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = '#'
	}
	return string(b)
}

func (m Mode) String() string { return string(m) }

// Summary describes the rule in a few words, e.g. "inline, h2".
func (r Rule) Summary() string {
	if r.Mode == ModeSkip {
		return "skip"
	}
	return "inline, h" + strconv.Itoa(r.HeadingLevel)
}
