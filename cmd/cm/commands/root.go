// Package commands implements the CLI commands for cm.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/richhaase/context-monkey/cmd"
	"github.com/richhaase/context-monkey/internal/config"
	"github.com/richhaase/context-monkey/internal/errors"
	"github.com/richhaase/context-monkey/internal/logging"
)

// debugEnv raises verbosity when no -v flag is given: 1 or true for debug,
// 2 for trace.
const debugEnv = "CM_DEBUG"

var (
	// verbosity holds the count of -v flags.
	verbosity int

	// quiet holds the value of the -q/--quiet flag.
	quiet bool

	logFormat string
	logFile   string

	// configFile is an explicit --config path.
	configFile string

	// resourcesFlag overrides resources_dir from the config.
	resourcesFlag string
)

var (
	cfg           *config.Config
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&verbosity, "verbose", "v", "increase verbosity level (e.g., -v, -vv)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "suppress everything but errors")
	flags.StringVar(&logFormat, "log-format", "text", "log format: text, json")
	flags.StringVar(&logFile, "log-file", "", "also write logs to file in JSON format")
	flags.StringVar(&configFile, "config", "", "config file (default: ./config.yaml or $XDG_CONFIG_HOME/context-monkey/config.yaml)")
	flags.StringVarP(&resourcesFlag, "resources", "r", "", "resources directory (default: resources_dir from config)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("cm version {{.Version}}\n")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "cm",
	Short: "Render Context Monkey commands for Claude Code, Codex CLI and Gemini CLI",
	Long: `cm renders one set of authored slash-command templates into the native
format of each supported agent CLI.

Commands live under <resources>/commands as Markdown, optionally with a
.md.hbs Handlebars layer. Agent blueprints under <resources>/agents are
delegated to on Claude Code and inlined into the prompt everywhere else.`,
	Example: `  # Check the resources tree
  cm validate

  # Render every command for Codex into a directory
  cm render --target codex --out ./dist

  # Preview one command as Gemini will see it
  cm show plan --target gemini --pretty`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		if configLoadErr != nil {
			return errors.NewConfigError(configLoadErr)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger from the verbosity flags and
// stores it in the command context.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("conflicting flags"), "use either --quiet or --verbose, not both")
	}

	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return errors.NewUserError(err, "use --log-format text or --log-format json")
	}

	level := slog.LevelError
	if !quiet {
		level = logging.LevelFromVerbosity(effectiveVerbosity())
	}

	var file io.Writer
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		file = f
	}

	logger := logging.New(logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		File:   file,
	})
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))
	return nil
}

// effectiveVerbosity prefers -v flags and falls back to CM_DEBUG.
func effectiveVerbosity() int {
	if verbosity > 0 {
		return verbosity
	}
	val, ok := os.LookupEnv(debugEnv)
	if !ok {
		return 0
	}
	if b, err := strconv.ParseBool(val); err == nil {
		if b {
			return 2
		}
		return 0
	}
	if n, err := strconv.Atoi(val); err == nil && n >= 2 {
		return 3
	}
	return 0
}

// Execute runs the root command and prints any error, with its suggestion,
// to stderr. The returned error carries the exit code.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "  %s\n", exitErr.Suggestion)
	}
}
