// Package target defines the CLIs that cm renders commands for and the
// per-target rule table that drives the Markdown transforms.
//
// Rules are static data. [RuleFor] is the only way to obtain one, and every
// rule in the table passes [Rule.Validate]; tests assert this so a bad edit to
// the table fails fast rather than producing malformed output.
//
// # Modes
//
// A [ModeSkip] target (Claude Code) receives the authored body untouched and
// resolves agent references natively. A [ModeInline] target has no subagent
// support, so the renderer rewrites vocabulary and appends each referenced
// agent blueprint to the command body.
package target
