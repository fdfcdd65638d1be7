// Package paths resolves where cm reads its own configuration and where
// each target CLI expects installed commands.
//
// The package wraps github.com/adrg/xdg for the config home so the same
// layout works on Linux and macOS.
//
//	| Target | Config dir | Commands          | Agents  |
//	|--------|------------|-------------------|---------|
//	| claude | ~/.claude/ | commands/cm/      | agents/ |
//	| codex  | ~/.codex/  | prompts/          | -       |
//	| gemini | ~/.gemini/ | commands/cm/      | -       |
//
// Resolution never touches the filesystem; cm only reports these locations.
package paths
