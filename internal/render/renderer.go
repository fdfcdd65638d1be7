package render

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/afero"

	"github.com/richhaase/context-monkey/internal/errors"
	"github.com/richhaase/context-monkey/internal/markdown"
	"github.com/richhaase/context-monkey/internal/resource"
	"github.com/richhaase/context-monkey/internal/target"
	"github.com/richhaase/context-monkey/internal/template"
	"github.com/richhaase/context-monkey/internal/translate"
)

const sectionSeparator = "\n\n---\n\n"

// Renderer renders templates loaded from a Store.
type Renderer struct {
	store  *resource.Store
	cache  *template.Cache
	logger *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCache shares a Handlebars environment cache between renderers.
func WithCache(c *template.Cache) Option {
	return func(r *Renderer) {
		if c != nil {
			r.cache = c
		}
	}
}

// WithLogger sets the logger used for skipped blueprints and timings.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// New returns a Renderer reading agents and partials from store.
func New(store *resource.Store, opts ...Option) *Renderer {
	r := &Renderer{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cache == nil {
		var fsys afero.Fs = afero.NewOsFs()
		if store != nil {
			fsys = store.Fs()
		}
		r.cache = template.NewCache(fsys)
	}
	return r
}

// Render renders tmpl for t. An unknown target fails with
// target.ErrUnknownTarget before anything is read.
func (r *Renderer) Render(tmpl *resource.Template, t target.Target) (*Command, error) {
	rule, err := target.RuleFor(t)
	if err != nil {
		return nil, err
	}

	cmd, err := r.render(tmpl, t, rule)
	if err != nil {
		return nil, errors.Wrapf(err, "rendering %s for %s", tmpl.RelativePath, t)
	}
	return cmd, nil
}

// RenderAll renders each template in order, stopping at the first error.
func (r *Renderer) RenderAll(templates []*resource.Template, t target.Target) ([]*Command, error) {
	if _, err := target.RuleFor(t); err != nil {
		return nil, err
	}
	out := make([]*Command, 0, len(templates))
	for _, tmpl := range templates {
		cmd, err := r.Render(tmpl, t)
		if err != nil {
			return nil, err
		}
		out = append(out, cmd)
	}
	return out, nil
}

func (r *Renderer) render(tmpl *resource.Template, t target.Target, rule target.Rule) (*Command, error) {
	body, err := r.expand(tmpl, t)
	if err != nil {
		return nil, err
	}

	if rule.Mode == target.ModeInline {
		body, err = r.inline(tmpl, body, rule)
		if err != nil {
			return nil, err
		}
	}

	cmd := &Command{
		Target:      t,
		Source:      tmpl.RelativePath,
		Format:      t.Format(),
		Description: tmpl.Description(),
	}

	switch t {
	case target.Claude:
		data, err := translate.EncodeMarkdown(tmpl.Frontmatter, body)
		if err != nil {
			return nil, err
		}
		cmd.TargetRelativePath = tmpl.RelativePath
		cmd.Content = string(data)
	case target.Codex:
		cmd.TargetRelativePath = CodexSlug(tmpl.RelativePath) + ".md"
		cmd.Content = body
	case target.Gemini:
		if cmd.Description == "" {
			cmd.Description = DefaultGeminiDescription
		}
		cmd.TargetRelativePath = geminiPath(tmpl.RelativePath)
		cmd.Content = string(translate.EncodeTOMLPrompt(cmd.Description, body))
	}

	if !strings.HasSuffix(cmd.Content, "\n") {
		cmd.Content += "\n"
	}
	return cmd, nil
}

// expand runs Handlebars over templated bodies.
func (r *Renderer) expand(tmpl *resource.Template, t target.Target) (string, error) {
	if !tmpl.IsTemplated {
		return tmpl.Body, nil
	}
	env, err := r.cache.Get(tmpl.Root)
	if err != nil {
		return "", err
	}
	out, err := env.Render(tmpl.Body, template.NewContext(t, tmpl.RelativePath))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// inline rewrites body for a target without subagent support and appends
// the blueprints of every referenced agent.
func (r *Renderer) inline(tmpl *resource.Template, body string, rule target.Rule) (string, error) {
	doc := markdown.Parse(body)
	// Drop rules match heading text after substitution.
	doc.ApplySubstitutions(rule.Rewrite)
	doc.RemoveSections(dropper(rule))
	out := doc.String()

	var sections []string
	for _, name := range tmpl.AgentRefs {
		agent, err := r.store.Agent(name)
		if errors.Is(err, resource.ErrNotFound) {
			r.logger.Debug("skipping missing agent blueprint", "agent", name, "command", tmpl.RelativePath)
			continue
		}
		if err != nil {
			return "", err
		}
		sections = append(sections, blueprint(agent, rule))
	}

	if len(sections) > 0 {
		out += sectionSeparator + strings.Join(sections, sectionSeparator)
	}
	return out, nil
}

// blueprint renders an agent as a section headed at the rule's level.
func blueprint(agent *resource.Template, rule target.Rule) string {
	body := markdown.Parse(agent.Body)
	body.RemoveSections(dropper(rule))
	body.RenormalizeHeadings(rule.HeadingLevel)

	lines := []string{rule.Heading() + " Agent Blueprint: " + DisplayName(agent.Name())}
	if desc := agent.Description(); desc != "" {
		lines = append(lines, "", "**Description:** "+desc)
	}
	if tools := formatTools(agent.Frontmatter.Value("tools")); tools != "" {
		lines = append(lines, "**Tools:** "+tools)
	}
	if b := body.String(); b != "" {
		lines = append(lines, "", b)
	}

	section := markdown.Parse(strings.Join(lines, "\n"))
	section.ApplySubstitutions(rule.Rewrite)
	return section.String()
}

func dropper(rule target.Rule) func(int, string) bool {
	return func(_ int, text string) bool {
		return rule.DropsHeading(text)
	}
}

// formatTools joins a JSON list value with ", "; other values pass through.
func formatTools(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "[") {
		return v
	}
	var items []any
	if err := json.Unmarshal([]byte(v), &items); err != nil {
		return v
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprint(it))
	}
	return strings.Join(parts, ", ")
}
