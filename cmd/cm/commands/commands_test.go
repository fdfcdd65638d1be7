package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/richhaase/context-monkey/internal/config"
	"github.com/richhaase/context-monkey/internal/template"
)

const testRoot = "/res"

func fixtureFiles() map[string]string {
	return map[string]string{
		"commands/plan.md":      "---\ndescription: Plan work\n---\n# Plan\n\nDelegate to cm-planner.\n",
		"commands/review/pr.md": "---\ndescription: Review a PR\n---\nRead the diff.\n",
		"agents/cm-planner.md":  "---\nname: cm-planner\ndescription: Plans things\n---\nYou plan.\n",
		"partials/header.hbs":   "# Header\n",
	}
}

// setupTest points the CLI at an in-memory resources tree and isolates it
// from any real config file.
func setupTest(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.ConfigDirEnv, t.TempDir())
	t.Setenv(debugEnv, "")

	fsys := afero.NewMemMapFs()
	for name, content := range files {
		p := filepath.Join(testRoot, filepath.FromSlash(name))
		require.NoError(t, fsys.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, afero.WriteFile(fsys, p, []byte(content), 0o644))
	}

	origFs, origCache, origPick := appFs, envCache, pickCommand
	appFs = fsys
	envCache = template.NewCache(fsys)
	t.Cleanup(func() {
		appFs, envCache, pickCommand = origFs, origCache, origPick
		resetFlags(rootCmd)
	})
	resetFlags(rootCmd)
	return fsys
}

// run executes the root command with --resources pointing at the fixture.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(&bytes.Buffer{})
	rootCmd.SetArgs(append(args, "--resources", testRoot))
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// resetFlags restores every flag to its default so package-level flag
// variables do not leak between tests.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
