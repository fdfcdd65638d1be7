package frontmatter

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for frontmatter parsing.
var (
	// ErrNoFrontmatter is returned when content has no complete "---" fenced block.
	ErrNoFrontmatter = errors.New("no frontmatter found")

	// ErrInvalidYAML is returned when the fenced block is not a YAML mapping.
	ErrInvalidYAML = errors.New("invalid YAML in frontmatter")
)

const delimiter = "---"

// Split separates the frontmatter block from the body.
// CRLF line endings are normalized to LF before splitting. The returned
// header excludes both fences; the body starts after the closing fence line.
func Split(content []byte) (header, body []byte, err error) {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))

	if !bytes.HasPrefix(content, []byte(delimiter+"\n")) {
		return nil, content, ErrNoFrontmatter
	}

	// Search from the newline that ends the opening fence so an empty
	// block ("---\n---") is found.
	rest := content[len(delimiter):]
	idx := bytes.Index(rest, []byte("\n"+delimiter))
	if idx < 0 {
		return nil, content, ErrNoFrontmatter
	}

	header = bytes.TrimPrefix(rest[:idx], []byte("\n"))
	body = rest[idx+len(delimiter)+1:]

	// Drop the remainder of the closing fence line.
	if nl := bytes.IndexByte(body, '\n'); nl >= 0 && len(bytes.TrimSpace(body[:nl])) == 0 {
		body = body[nl+1:]
	} else if nl < 0 && len(bytes.TrimSpace(body)) == 0 {
		body = nil
	}

	return header, body, nil
}

// Parse reads content from r and returns its frontmatter and body.
// When no frontmatter is present it returns an empty Map, the full content as
// body and ErrNoFrontmatter so callers can decide whether that matters.
func Parse(r io.Reader) (*Map, []byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}

	header, body, err := Split(content)
	if err != nil {
		return NewMap(), body, err
	}

	meta, err := ParseMap(header)
	if err != nil {
		return NewMap(), body, err
	}
	return meta, body, nil
}

// ParseMap decodes a YAML block into an ordered Map.
// Keys are lower-cased; non-string values are coerced to strings.
func ParseMap(header []byte) (*Map, error) {
	m := NewMap()
	if len(bytes.TrimSpace(header)) == 0 {
		return m, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(header, &doc); err != nil {
		return nil, errors.Join(ErrInvalidYAML, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return m, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.Join(ErrInvalidYAML, errors.New("frontmatter is not a mapping"))
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := strings.ToLower(strings.TrimSpace(root.Content[i].Value))
		if key == "" {
			continue
		}
		m.Set(key, stringValue(root.Content[i+1]))
	}
	return m, nil
}

// stringValue renders a YAML value node as its canonical string form.
func stringValue(n *yaml.Node) string {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	if n.Kind == yaml.ScalarNode {
		switch n.ShortTag() {
		case "!!str":
			return n.Value
		case "!!null":
			return ""
		case "!!int", "!!float", "!!bool":
			var v any
			if err := n.Decode(&v); err == nil {
				if out, err := json.Marshal(v); err == nil {
					return string(out)
				}
			}
		}
		return n.Value
	}

	var v any
	if err := n.Decode(&v); err != nil {
		return n.Value
	}
	if out, err := json.Marshal(v); err == nil {
		return string(out)
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return n.Value
	}
	return strings.TrimSpace(string(out))
}

// Format formats content with YAML frontmatter.
// The map is serialized to YAML in key order and wrapped in "---"
// delimiters, followed by a blank line and the body.
func Format(meta *Map, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")

	if meta.Len() > 0 {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(meta.node()); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	}

	buf.WriteString(delimiter + "\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}
