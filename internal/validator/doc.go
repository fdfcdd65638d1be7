// Package validator checks a resources tree before it is shipped.
//
// [ValidateResources] loads every command template and reports, per file:
//
//   - a missing or empty "description" frontmatter field
//   - {{> name}} references to partials that do not exist under partials/
//   - cm-* agent references with no matching file under agents/
//   - Handlebars syntax errors in .md.hbs commands
//
// Unknown names get a "did you mean" hint when an existing name is within a
// small edit distance. Validation never writes and never returns an error;
// load failures are reported as issues too.
//
// [Reporter] prints a [Result] as text or JSON.
package validator
