// Package errors provides error handling conventions for the cm CLI.
//
// It forwards the common constructors to github.com/cockroachdb/errors,
// defines sentinel errors shared across packages, and an ExitError type for
// CLI exit code handling.
//
// # Sentinel Errors
//
//	if errors.Is(err, cmerrors.ErrNotFound) {
//	    // handle not found case
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error, including failed resource validation
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. Use [ExitCode] to map any error to the process exit status:
//
//	err := cmerrors.NewUserError(cmerrors.ErrInvalidConfig, "Check your config file")
//	os.Exit(cmerrors.ExitCode(err))
package errors
