// Package logging provides structured logging for the cm CLI using slog.
//
// Terminal output goes through [Handler], a colorized text handler, or a
// JSON handler. [Config.File] adds a JSON copy of every record, which is how
// --log-file works; [MultiHandler] does the fan-out.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("starting", "version", "1.0.0")
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
//
// # Context
//
// Commands store the configured logger with [NewContext]; library code
// retrieves it with [FromContext], which falls back to slog.Default().
//
// # Quiet Mode
//
// Use [NewDiscard] when log output should be suppressed entirely:
//
//	logger := logging.NewDiscard()
package logging
