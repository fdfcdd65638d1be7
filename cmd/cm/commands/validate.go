package commands

import (
	"github.com/spf13/cobra"

	"github.com/richhaase/context-monkey/internal/errors"
	"github.com/richhaase/context-monkey/internal/logging"
	"github.com/richhaase/context-monkey/internal/validator"
)

var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the resources tree for broken references",
	Long: `Check every command template for a description, for partials that do
not exist and for agent blueprints that do not exist.

Nothing is written. Exits 1 when any issue is found.`,
	Example: `  cm validate
  cm validate --resources ./resources --json`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	root := resourcesDir()
	logging.FromContext(cmd.Context()).Debug("validating resources", "root", root)

	result := validator.ValidateResources(appFs, root)

	format := validator.FormatText
	if validateJSON {
		format = validator.FormatJSON
	}
	if err := validator.NewReporter(cmd.OutOrStdout(), format).Report(result); err != nil {
		return errors.NewSystemError(err, "")
	}

	if !result.OK {
		return errors.NewExitError(
			errors.Wrapf(errors.ErrValidationFailed, "%d issue(s) in %s", len(result.Issues), root),
			errors.ExitUser)
	}
	return nil
}
