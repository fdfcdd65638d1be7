package template

import (
	"strings"

	"github.com/richhaase/context-monkey/internal/target"
)

// AgentContext describes the target CLI to a template.
type AgentContext struct {
	ID                string
	Name              string
	SupportsSubagents bool
}

// CommandContext identifies the command being rendered.
type CommandContext struct {
	ID           string
	RelativePath string
}

// Context is the data a command template is executed with:
//
//	{{agent.id}} {{agent.name}} {{agent.supportsSubagents}}
//	{{command.id}} {{command.relativePath}}
//	{{features.*}}
type Context struct {
	Agent    AgentContext
	Command  CommandContext
	Features map[string]any
}

// NewContext builds the context for rendering relPath for t.
func NewContext(t target.Target, relPath string) Context {
	id := relPath
	if strings.HasSuffix(strings.ToLower(id), ".md") {
		id = id[:len(id)-len(".md")]
	}
	return Context{
		Agent: AgentContext{
			ID:                t.String(),
			Name:              t.Label(),
			SupportsSubagents: t.SupportsSubagents(),
		},
		Command: CommandContext{
			ID:           id,
			RelativePath: relPath,
		},
		Features: map[string]any{},
	}
}

// data returns the camel-cased map templates see.
func (c Context) data() map[string]any {
	features := c.Features
	if features == nil {
		features = map[string]any{}
	}
	return map[string]any{
		"agent": map[string]any{
			"id":                c.Agent.ID,
			"name":              c.Agent.Name,
			"supportsSubagents": c.Agent.SupportsSubagents,
		},
		"command": map[string]any{
			"id":           c.Command.ID,
			"relativePath": c.Command.RelativePath,
		},
		"features": features,
	}
}
