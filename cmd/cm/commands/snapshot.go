package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/richhaase/context-monkey/internal/errors"
	"github.com/richhaase/context-monkey/internal/logging"
	"github.com/richhaase/context-monkey/internal/render"
	"github.com/richhaase/context-monkey/internal/resource"
	"github.com/richhaase/context-monkey/internal/target"
	"github.com/richhaase/context-monkey/pkg/fileutil"
)

// ErrSnapshotDrift is returned by `cm snapshot --check` when any snapshot
// differs from a fresh render.
var ErrSnapshotDrift = errors.New("snapshots out of date")

var (
	snapshotCheck   bool
	snapshotDir     string
	snapshotTargets []string
)

func init() {
	snapshotCmd.Flags().BoolVar(&snapshotCheck, "check", false,
		"compare against existing snapshots and print a diff instead of writing")
	snapshotCmd.Flags().StringVar(&snapshotDir, "dir", "",
		"snapshot directory (default: snapshots_dir from config)")
	snapshotCmd.Flags().StringSliceVarP(&snapshotTargets, "target", "t", nil,
		"target(s) to snapshot (default: all)")
	rootCmd.AddCommand(snapshotCmd)
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Write or check rendered snapshots of selected commands",
	Long: `Render the commands listed in snapshot_templates for every target and
store them under DIR/<target>/<path>.

With --check nothing is written; any difference is printed as a line diff
and the command exits 1.`,
	Example: `  cm snapshot
  cm snapshot --check
  cm snapshot --dir testdata/snapshots --target codex`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	dir := snapshotDir
	if dir == "" {
		dir = "snapshots"
		if cfg != nil && cfg.SnapshotsDir != "" {
			dir = cfg.SnapshotsDir
		}
	}

	targets := target.All()
	if len(snapshotTargets) > 0 {
		var err error
		if targets, err = resolveTargets(snapshotTargets); err != nil {
			return err
		}
	}

	store := newStore(cmd)
	templates, err := store.Commands()
	if err != nil {
		return errors.NewUserError(err, "Run: cm validate")
	}
	templates, err = resource.Filter(templates, snapshotTemplates())
	if err != nil {
		return errors.NewConfigError(err)
	}
	if len(templates) == 0 {
		return errors.NewUserError(errors.New("no commands match snapshot_templates"),
			"check snapshot_templates in config.yaml")
	}

	renderer := newRenderer(cmd, store)
	logger := logging.FromContext(cmd.Context())
	w := cmd.OutOrStdout()

	var changed, total int
	for _, t := range targets {
		rendered, err := renderer.RenderAll(templates, t)
		if err != nil {
			return errors.NewUserError(err, "Run: cm validate")
		}
		for _, c := range rendered {
			total++
			rel := render.SnapshotPath(c)
			dst := filepath.Join(dir, filepath.FromSlash(rel))

			if !snapshotCheck {
				if err := fileutil.WriteFileAll(appFs, dst, []byte(c.Content), 0o644); err != nil {
					return errors.NewSystemError(err, "check that the snapshot directory is writable")
				}
				logger.Debug("wrote snapshot", "path", dst)
				continue
			}

			old, err := readSnapshot(dst)
			if err != nil {
				return errors.NewSystemError(err, "")
			}
			if old == c.Content {
				continue
			}
			changed++
			writeLineDiff(w, rel, old, c.Content)
		}
	}

	if !snapshotCheck {
		fmt.Fprintf(w, "Wrote %d snapshot(s) to %s\n", total, dir)
		return nil
	}
	if changed > 0 {
		return errors.NewUserError(
			errors.Wrapf(ErrSnapshotDrift, "%d of %d differ", changed, total),
			"Run: cm snapshot")
	}
	fmt.Fprintf(w, "%d snapshot(s) up to date\n", total)
	return nil
}

// readSnapshot returns "" for a snapshot that does not exist yet.
func readSnapshot(p string) (string, error) {
	data, err := fileutil.ReadFileWithLimit(appFs, p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", errors.Wrapf(err, "reading snapshot %s", p)
	}
	return string(data), nil
}

// writeLineDiff prints a line-level diff from the stored snapshot to the
// fresh render, with unchanged lines omitted.
func writeLineDiff(w io.Writer, name, stored, fresh string) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(stored, fresh)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	fmt.Fprintf(w, "--- %s (snapshot)\n+++ %s (rendered)\n", name, name)
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			fmt.Fprintf(w, "%s%s\n", prefix, strings.TrimSuffix(line, "\n"))
		}
	}
}
