// Package resource loads command templates and agent blueprints from a
// resources tree.
//
// A tree looks like:
//
//	resources/
//	  commands/plan.md
//	  commands/review/pr.md.hbs
//	  agents/cm-planner.md
//	  partials/shared/header.hbs
//
// Files ending in .md are plain Markdown with optional YAML frontmatter;
// .md.hbs files are expanded with Handlebars before rendering. A template's
// identity is its path below commands/ or agents/ with the .hbs suffix
// removed, so "plan.md" and "plan.md.hbs" may not coexist.
//
// Store reads through an afero.Fs so tests can use an in-memory tree.
// Missing directories load as empty; malformed frontmatter is ignored and
// the whole file becomes the body.
package resource
