package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richhaase/context-monkey/internal/errors"
	"github.com/richhaase/context-monkey/internal/render"
	"github.com/richhaase/context-monkey/internal/resource"
	"github.com/richhaase/context-monkey/internal/target"
)

func TestShowCommand(t *testing.T) {
	t.Run("raw claude output keeps frontmatter", func(t *testing.T) {
		setupTest(t, fixtureFiles())

		out, _, err := run(t, "show", "plan")

		require.NoError(t, err)
		assert.Equal(t, "---\ndescription: Plan work\n---\n\n# Plan\n\nDelegate to cm-planner.\n", out)
	})

	t.Run("codex inlines blueprint", func(t *testing.T) {
		setupTest(t, fixtureFiles())

		out, _, err := run(t, "show", "plan.md", "--target", "codex")

		require.NoError(t, err)
		assert.Contains(t, out, "## Agent Blueprint: Planner")
		assert.Contains(t, out, "**Description:** Plans things")
	})

	t.Run("pretty gemini decodes the prompt", func(t *testing.T) {
		setupTest(t, fixtureFiles())

		out, _, err := run(t, "show", "plan", "--target", "gemini", "--pretty")

		require.NoError(t, err)
		assert.Contains(t, out, "Gemini CLI  gemini/plan.toml\n")
		assert.Contains(t, out, "Plan work\n")
		assert.Contains(t, out, "Delegate to cm-planner.")
		assert.NotContains(t, out, `prompt = """`)
	})

	t.Run("unknown command", func(t *testing.T) {
		setupTest(t, fixtureFiles())

		_, _, err := run(t, "show", "nope")

		require.Error(t, err)
		assert.True(t, errors.Is(err, resource.ErrNotFound))
	})

	t.Run("no argument without a terminal", func(t *testing.T) {
		setupTest(t, fixtureFiles())
		pickCommand = func([]*resource.Template, *render.Renderer, target.Target) (*resource.Template, error) {
			t.Fatal("picker must not run without a terminal")
			return nil, nil
		}

		_, _, err := run(t, "show")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command given")
	})
}
