// Package markdown parses command bodies into a goldmark AST, rewrites them
// and serializes the result back to normalized CommonMark.
//
// Rewrites touch literal text only. Code spans, fenced and indented code,
// autolinks, raw HTML, link destinations and image alt text are left alone.
//
// The serializer produces a fixed layout: ATX headings, backtick fences,
// "-" bullets with a single space after the marker, "*" and "**" emphasis
// and "---" for thematic breaks, with one blank line between blocks.
// Serializing a parsed serialization returns the same text.
package markdown
