package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanAgentRefs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"none", "plain text", nil},
		{"single", "Ask cm-reviewer to look.", []string{"cm-reviewer"}},
		{"multi word", "Use cm-stack-profiler now", []string{"cm-stack-profiler"}},
		{"first appearance order and dedupe", "cm-b then cm-a then cm-b", []string{"cm-b", "cm-a"}},
		{"frontmatter counts", "---\nagent: cm-planner\n---\nbody", []string{"cm-planner"}},
		{"codex command form skipped", "Run /cm-plan next", nil},
		{"preceded by word char", "xcm-foo", nil},
		{"followed by digit", "cm-foo2", nil},
		{"followed by underscore", "cm-foo_bar", nil},
		{"trailing punctuation", "(cm-docs).", []string{"cm-docs"}},
		{"file name", "see agents/cm-reviewer.md", nil},
		{"uppercase not matched", "CM-REVIEWER", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScanAgentRefs(tt.content))
		})
	}
}
