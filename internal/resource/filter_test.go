package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richhaase/context-monkey/internal/errors"
)

func TestFilter(t *testing.T) {
	templates := []*Template{
		{RelativePath: "plan.md"},
		{RelativePath: "review/pr.md"},
		{RelativePath: "review/deep/security.md"},
	}

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{"no patterns keeps all", nil, []string{"plan.md", "review/pr.md", "review/deep/security.md"}},
		{"exact id", []string{"plan"}, []string{"plan.md"}},
		{"single star stays in dir", []string{"review/*"}, []string{"review/pr.md"}},
		{"double star recurses", []string{"review/**"}, []string{"review/pr.md", "review/deep/security.md"}},
		{"any of several", []string{"plan.md", "**/security.md"}, []string{"plan.md", "review/deep/security.md"}},
		{"no match", []string{"missing"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(templates, tt.patterns)
			require.NoError(t, err)
			names := make([]string, 0, len(got))
			for _, g := range got {
				names = append(names, g.RelativePath)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestFilter_BadPattern(t *testing.T) {
	_, err := Filter([]*Template{{RelativePath: "a.md"}}, []string{"[unclosed"})
	assert.True(t, errors.Is(err, ErrBadPattern))
}
