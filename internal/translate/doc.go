// Package translate encodes rendered commands into the file formats the
// target CLIs read: Markdown with optional YAML frontmatter, and the Gemini
// TOML command file with a description and a multi-line prompt.
package translate
