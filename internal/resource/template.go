package resource

import (
	"path"
	"strings"

	"github.com/richhaase/context-monkey/pkg/frontmatter"
)

// Kind distinguishes slash commands from agent blueprints.
type Kind string

const (
	KindCommand Kind = "command"
	KindAgent   Kind = "agent"
)

// dirFor maps a kind to its directory under the resources root.
var dirFor = map[Kind]string{
	KindCommand: "commands",
	KindAgent:   "agents",
}

const (
	markdownExt = ".md"
	engineExt   = ".hbs"
)

// Template is one authored Markdown resource. Templates are immutable once
// loaded; callers must not modify the returned values.
type Template struct {
	// Kind is command or agent.
	Kind Kind

	// SourcePath is the file's absolute path.
	SourcePath string

	// RelativePath is the slash-separated path under commands/ or agents/
	// with the ".hbs" suffix removed. It is unique within a load.
	RelativePath string

	// SourceRelativePath is RelativePath as found on disk.
	SourceRelativePath string

	// Root is the resolved resources root the file was loaded from.
	Root string

	// Frontmatter holds lowercased keys with string values.
	Frontmatter *frontmatter.Map

	// Body is the trimmed text after the frontmatter block.
	Body string

	// Raw is the file content with line endings normalized.
	Raw string

	// AgentRefs lists agent names mentioned in the file, first appearance first.
	AgentRefs []string

	// IsTemplated is true for ".md.hbs" files.
	IsTemplated bool
}

// ID is the relative path without its ".md" extension, e.g. "review/pr".
func (t *Template) ID() string {
	if strings.HasSuffix(strings.ToLower(t.RelativePath), markdownExt) {
		return t.RelativePath[:len(t.RelativePath)-len(markdownExt)]
	}
	return t.RelativePath
}

// Name is the file's base name without extension. For agents this is the
// name other resources reference it by.
func (t *Template) Name() string {
	return path.Base(t.ID())
}

// Description returns the "description" frontmatter value.
func (t *Template) Description() string {
	return t.Frontmatter.Value("description")
}

// isTemplateFile reports whether name is a loadable resource and whether it
// needs Handlebars expansion.
func isTemplateFile(name string) (ok, templated bool) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, markdownExt+engineExt):
		return true, true
	case strings.HasSuffix(lower, markdownExt):
		return true, false
	default:
		return false, false
	}
}
