// Package render turns command templates into the files each target CLI
// reads.
//
// For every command the Renderer:
//
//  1. expands Handlebars when the source is a .md.hbs file,
//  2. rewrites the body through the target's rule (inline targets only),
//  3. appends an "Agent Blueprint" section per referenced agent (inline
//     targets only; blueprints that do not exist are skipped), and
//  4. encodes the result as Markdown or TOML under the target's file name.
//
// Output is a pure function of the resources tree: rendering the same
// template twice yields identical bytes.
package render
