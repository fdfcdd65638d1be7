package validator

import (
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/afero"

	"github.com/richhaase/context-monkey/internal/errors"
	"github.com/richhaase/context-monkey/internal/resource"
	"github.com/richhaase/context-monkey/internal/template"
)

// maxSuggestDistance bounds how far a name may be from a known one before
// a "did you mean" hint is dropped.
const maxSuggestDistance = 2

var partialRef = regexp.MustCompile(`\{\{\s*>\s*([\w.-]+)[^}]*\}\}`)

// Issue is a single problem found in one resource file.
type Issue struct {
	// File is the path of the offending file relative to the resources root.
	File string `json:"file"`
	// Message describes the problem.
	Message string `json:"message"`
}

// String formats the issue the way the CLI prints it.
func (i Issue) String() string {
	return i.File + ": " + i.Message
}

// Result aggregates the issues of one validation pass.
type Result struct {
	OK     bool    `json:"ok"`
	Issues []Issue `json:"issues"`
}

func (r *Result) add(file, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{File: file, Message: fmt.Sprintf(format, args...)})
}

// ValidateResources checks every command template under root. It never
// writes and never fails: load problems are reported as issues. A root with
// no agents/ or partials/ directory has zero blueprints or partials.
func ValidateResources(fsys afero.Fs, root string) *Result {
	res := &Result{Issues: []Issue{}}
	store := resource.NewStore(fsys, root)

	commands, err := store.Commands()
	if err != nil {
		res.add("commands", "%v", err)
	}

	agentNames := make(map[string]struct{})
	agents, err := store.Agents()
	if err != nil {
		res.add("agents", "%v", err)
	}
	for _, a := range agents {
		agentNames[a.Name()] = struct{}{}
	}

	var env *template.Environment
	partialNames := make(map[string]struct{})
	if e, err := template.NewEnvironment(fsys, store.Root()); err != nil {
		res.add("partials", "%v", err)
	} else {
		env = e
		for _, name := range env.Partials() {
			partialNames[name] = struct{}{}
		}
	}

	for _, cmd := range commands {
		validateCommand(res, cmd, env, partialNames, agentNames)
	}

	res.OK = len(res.Issues) == 0
	return res
}

func validateCommand(res *Result, cmd *resource.Template, env *template.Environment, partials, agents map[string]struct{}) {
	file := path.Join("commands", cmd.SourceRelativePath)

	if strings.TrimSpace(cmd.Description()) == "" {
		res.add(file, "Missing required frontmatter field: description")
	}

	seen := make(map[string]bool)
	for _, m := range partialRef.FindAllStringSubmatch(cmd.Body, -1) {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		if _, ok := partials[name]; ok {
			continue
		}
		res.add(file, "References unknown partial '{{> %s}}'%s", name, suggest(name, partials))
	}

	for _, ref := range cmd.AgentRefs {
		if _, ok := agents[ref]; ok {
			continue
		}
		res.add(file, "References unknown agent blueprint '%s'%s", ref, suggest(ref, agents))
	}

	if cmd.IsTemplated && env != nil {
		if err := env.Compile(cmd.Body); err != nil {
			res.add(file, "Template syntax error: %v", errors.Cause(err))
		}
	}
}

// suggest returns a " (did you mean 'x'?)" hint for the closest known name,
// or "" when nothing is close enough.
func suggest(name string, known map[string]struct{}) string {
	candidates := make([]string, 0, len(known))
	for k := range known {
		candidates = append(candidates, k)
	}
	sort.Strings(candidates)

	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean '%s'?)", best)
}
