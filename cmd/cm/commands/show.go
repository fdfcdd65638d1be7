package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/richhaase/context-monkey/internal/errors"
	"github.com/richhaase/context-monkey/internal/logging"
	"github.com/richhaase/context-monkey/internal/render"
	"github.com/richhaase/context-monkey/internal/resource"
	"github.com/richhaase/context-monkey/internal/target"
	"github.com/richhaase/context-monkey/internal/translate"
)

const prettyWordWrap = 100

var (
	showTarget string
	showPretty bool
)

// pickCommand chooses a template when `cm show` gets no argument. Tests
// replace it.
var pickCommand = fuzzyPick

func init() {
	showCmd.Flags().StringVarP(&showTarget, "target", "t", string(target.Claude),
		"target to render for: claude, codex, gemini")
	showCmd.Flags().BoolVar(&showPretty, "pretty", false, "render Markdown for the terminal")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [command]",
	Short: "Preview one rendered command",
	Long: `Render a single command for one target and print it.

The command is named by its path under commands/, with or without the .md
extension. With no argument on a terminal, pick one interactively.`,
	Example: `  cm show plan
  cm show review/pr --target codex
  cm show --target gemini --pretty`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	t, err := target.Parse(showTarget)
	if err != nil {
		return errors.NewUserError(err, "valid targets: "+strings.Join(target.Strings(target.All()), ", "))
	}

	store := newStore(cmd)
	renderer := newRenderer(cmd, store)

	var tmpl *resource.Template
	if len(args) == 1 {
		tmpl, err = store.Command(args[0])
		if err != nil {
			return errors.NewUserError(err, "Run: cm render --target "+t.String()+" to list commands")
		}
	} else {
		if !logging.Interactive(cmd.InOrStdin(), cmd.OutOrStdout()) {
			return errors.NewUserError(errors.New("no command given"), "pass a command name, e.g. cm show plan")
		}
		templates, err := store.Commands()
		if err != nil {
			return errors.NewUserError(err, "Run: cm validate")
		}
		tmpl, err = pickCommand(templates, renderer, t)
		if err != nil {
			return err
		}
		if tmpl == nil {
			return nil
		}
	}

	rendered, err := renderer.Render(tmpl, t)
	if err != nil {
		return errors.NewUserError(err, "Run: cm validate")
	}

	w := cmd.OutOrStdout()
	if !showPretty {
		_, err := io.WriteString(w, rendered.Content)
		return err
	}
	return printPretty(w, rendered)
}

// fuzzyPick returns nil when the user aborts.
func fuzzyPick(templates []*resource.Template, r *render.Renderer, t target.Target) (*resource.Template, error) {
	if len(templates) == 0 {
		return nil, errors.New("no commands found")
	}

	idx, err := fuzzyfinder.Find(
		templates,
		func(i int) string { return templates[i].ID() },
		fuzzyfinder.WithPromptString(t.Label()+" > "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			c, err := r.Render(templates[i], t)
			if err != nil {
				return err.Error()
			}
			return c.Content
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "picking command")
	}
	return templates[idx], nil
}

// printPretty shows the description as a header and renders the prompt body
// through glamour. TOML output is decoded first so the prompt reads as
// Markdown.
func printPretty(w io.Writer, c *render.Command) error {
	description, body := c.Description, c.Content
	switch c.Format {
	case target.FormatTOML:
		decoded, err := translate.DecodeTOMLPrompt([]byte(c.Content))
		if err != nil {
			return errors.Wrap(err, "decoding rendered TOML")
		}
		description, body = decoded.Description, decoded.Prompt
	default:
		_, md, err := translate.DecodeMarkdown([]byte(c.Content))
		if err != nil {
			return errors.Wrap(err, "decoding rendered Markdown")
		}
		body = md
	}

	style := glamour.WithStandardStyle(styles.NoTTYStyle)
	if logging.SupportsColor(w) {
		style = glamour.WithAutoStyle()
	}
	tr, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(prettyWordWrap))
	if err != nil {
		return errors.Wrap(err, "creating Markdown renderer")
	}
	out, err := tr.Render(body)
	if err != nil {
		return errors.Wrap(err, "rendering Markdown")
	}

	fmt.Fprintf(w, "%s  %s\n", c.Target.Label(), render.SnapshotPath(c))
	if description != "" {
		fmt.Fprintf(w, "%s\n", description)
	}
	_, err = io.WriteString(w, out)
	return err
}
