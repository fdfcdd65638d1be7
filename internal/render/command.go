package render

import (
	"path"
	"regexp"
	"strings"

	"github.com/richhaase/context-monkey/internal/target"
)

// DefaultGeminiDescription is used when a command declares no description.
const DefaultGeminiDescription = "Context Monkey command"

// CodexPromptPrefix starts every Codex prompt file name.
const CodexPromptPrefix = "cm-"

// Command is one rendered output file. TargetRelativePath is where the
// installer writes Content, relative to the target's command directory;
// Source is the template's RelativePath. Content always ends with a newline.
type Command struct {
	Target             target.Target
	Source             string
	TargetRelativePath string
	Format             target.Format
	Content            string
	Description        string
}

var (
	mdExtRE    = regexp.MustCompile(`(?i)\.md$`)
	pathSepRE  = regexp.MustCompile(`[\\/]+`)
	slugUnsafe = regexp.MustCompile(`[^a-zA-Z0-9-]`)
	dashRunsRE = regexp.MustCompile(`-+`)
)

// CodexSlug maps a command path to its flat Codex prompt name:
// "review/PR notes.md" becomes "cm-review-pr-notes".
func CodexSlug(relPath string) string {
	s := mdExtRE.ReplaceAllString(relPath, "")
	s = pathSepRE.ReplaceAllString(s, "-")
	s = slugUnsafe.ReplaceAllString(s, "-")
	s = dashRunsRE.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "prompt"
	}
	return strings.ToLower(CodexPromptPrefix + s)
}

// geminiPath swaps the .md extension for .toml.
func geminiPath(relPath string) string {
	if mdExtRE.MatchString(relPath) {
		return mdExtRE.ReplaceAllString(relPath, ".toml")
	}
	return relPath + ".toml"
}

// SnapshotPath is the slash path a command is stored under in a snapshot
// tree: <target>/<TargetRelativePath>.
func SnapshotPath(cmd *Command) string {
	return path.Join(string(cmd.Target), cmd.TargetRelativePath)
}

// DisplayName turns an agent name into a title: "cm-stack-profiler" becomes
// "Stack Profiler".
func DisplayName(agent string) string {
	parts := strings.Split(strings.TrimPrefix(agent, "cm-"), "-")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
