// Package config loads cm's own settings.
//
// Settings come from config.yaml, searched in $CM_CONFIG_DIR, the current
// directory and <XDG config home>/context-monkey, then from CM_* environment
// variables:
//
//	version: 1
//	resources_dir: resources
//	default_targets: [claude, codex, gemini]
//	snapshots_dir: snapshots
//	snapshot_templates:
//	  - docs.md
//	  - plan.md
//
// [Load] validates what it reads; a bad target name or malformed path is
// returned as an error rather than silently ignored.
package config
