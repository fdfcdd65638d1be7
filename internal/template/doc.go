// Package template expands ".md.hbs" command templates with Handlebars.
//
// Each resources root gets one [Environment] holding the partials found under
// <root>/partials and the built-in helpers. A partial file
// partials/shared/header.hbs is available as {{> shared.header}}.
//
// Helpers:
//
//	noop  returns its argument unchanged
//	eq    reports whether two values are equal, for use in {{#if (eq a b)}}
//
// Environments are built lazily by a [Cache] and never invalidated; a
// process that edits partials must build a new Cache.
package template
