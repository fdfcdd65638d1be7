package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/richhaase/context-monkey/internal/errors"
	"github.com/richhaase/context-monkey/internal/logging"
	"github.com/richhaase/context-monkey/internal/render"
	"github.com/richhaase/context-monkey/internal/resource"
	"github.com/richhaase/context-monkey/pkg/fileutil"
)

var (
	renderTargets  []string
	renderOut      string
	renderIncludes []string
)

func init() {
	renderCmd.Flags().StringSliceVarP(&renderTargets, "target", "t", nil,
		"target(s) to render: claude, codex, gemini (default: default_targets from config)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "",
		"write files under DIR/<target>/ instead of printing them")
	renderCmd.Flags().StringSliceVar(&renderIncludes, "include", nil,
		"only render commands matching these glob patterns (e.g. 'review/**')")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render commands for one or more targets",
	Long: `Render every command template into each target's native format.

Without --out, each rendered file is printed under a "==> target/path <=="
header. With --out, files are written atomically to DIR/<target>/<path>,
the same layout an installer copies from.`,
	Example: `  cm render --target codex
  cm render -t claude -t gemini --out ./dist
  cm render --include 'review/**' --target gemini`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, _ []string) error {
	targets, err := resolveTargets(renderTargets)
	if err != nil {
		return err
	}

	store := newStore(cmd)
	templates, err := store.Commands()
	if err != nil {
		return errors.NewUserError(err, "Run: cm validate")
	}
	templates, err = resource.Filter(templates, renderIncludes)
	if err != nil {
		return errors.NewUserError(err, "check the --include patterns")
	}

	renderer := newRenderer(cmd, store)
	logger := logging.FromContext(cmd.Context())
	w := cmd.OutOrStdout()

	var written int
	for _, t := range targets {
		rendered, err := renderer.RenderAll(templates, t)
		if err != nil {
			return errors.NewUserError(err, "Run: cm validate")
		}

		for _, c := range rendered {
			if renderOut == "" {
				printRendered(w, c)
				continue
			}
			dst := filepath.Join(renderOut, filepath.FromSlash(render.SnapshotPath(c)))
			if err := fileutil.WriteFileAll(appFs, dst, []byte(c.Content), 0o644); err != nil {
				return errors.NewSystemError(err, "check that the output directory is writable")
			}
			logger.Debug("wrote command", "target", string(t), "path", dst)
			written++
		}
	}

	if renderOut != "" {
		fmt.Fprintf(w, "Rendered %d file(s) for %d target(s) into %s\n", written, len(targets), renderOut)
	}
	return nil
}

func printRendered(w io.Writer, c *render.Command) {
	fmt.Fprintf(w, "==> %s <==\n%s\n", render.SnapshotPath(c), c.Content)
}
