package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/richhaase/context-monkey/internal/errors"
	"github.com/richhaase/context-monkey/internal/paths"
	"github.com/richhaase/context-monkey/internal/target"
)

var targetsJSON bool

func init() {
	targetsCmd.Flags().BoolVar(&targetsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(targetsCmd)
}

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List supported targets and where their commands are installed",
	Args:  cobra.NoArgs,
	RunE:  runTargets,
}

type targetInfo struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Format     string `json:"format"`
	Agents     string `json:"agents"`
	CommandDir string `json:"command_dir,omitempty"`
	AgentDir   string `json:"agent_dir,omitempty"`
}

func describeTargets() ([]targetInfo, error) {
	all := target.All()
	out := make([]targetInfo, 0, len(all))
	for _, t := range all {
		rule, err := target.RuleFor(t)
		if err != nil {
			return nil, err
		}
		out = append(out, targetInfo{
			ID:         t.String(),
			Label:      t.Label(),
			Format:     string(t.Format()),
			Agents:     rule.Summary(),
			CommandDir: paths.Shorten(paths.CommandDir(t)),
			AgentDir:   paths.Shorten(paths.AgentDir(t)),
		})
	}
	return out, nil
}

func runTargets(cmd *cobra.Command, _ []string) error {
	infos, err := describeTargets()
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	if targetsJSON {
		return outputTargetsJSON(cmd.OutOrStdout(), infos)
	}
	return outputTargetsText(cmd.OutOrStdout(), infos)
}

func outputTargetsJSON(w io.Writer, infos []targetInfo) error {
	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling JSON")
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func outputTargetsText(w io.Writer, infos []targetInfo) error {
	bold := color.New(color.Bold).SprintFunc()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, bold("TARGET")+"\t"+bold("LABEL")+"\t"+bold("FORMAT")+"\t"+bold("AGENTS")+"\t"+bold("COMMANDS"))
	for _, i := range infos {
		dir := i.CommandDir
		if dir == "" {
			dir = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", i.ID, i.Label, i.Format, i.Agents, dir)
	}
	return tw.Flush()
}
