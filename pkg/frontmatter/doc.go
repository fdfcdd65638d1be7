// Package frontmatter provides parsing and formatting of YAML frontmatter in
// the Markdown resources rendered by the cm CLI.
//
// Frontmatter is delimited by a leading "---" line and a closing "---" line.
// The content between delimiters is decoded as YAML into an ordered [Map] of
// lower-cased string keys to string values. Values that are not YAML strings
// (numbers, booleans, lists, mappings) are coerced to their canonical JSON
// text so callers only ever see strings. The content after the closing
// delimiter is returned as the body.
//
// # Basic Usage
//
//	meta, body, err := frontmatter.Parse(strings.NewReader(content))
//	switch {
//	case errors.Is(err, frontmatter.ErrNoFrontmatter):
//		// treat the whole file as body
//	case err != nil:
//		return err
//	}
//	fmt.Println(meta.Value("description"))
//
// # Error Handling
//
//   - [ErrNoFrontmatter]: content doesn't start with a "---" fence or the
//     fence is never closed
//   - [ErrInvalidYAML]: the fenced block is not a YAML mapping
//
// Both Unix (LF) and Windows (CRLF) line endings are handled.
package frontmatter
