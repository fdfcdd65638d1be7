package translate

import (
	"bytes"
	"strings"

	"github.com/richhaase/context-monkey/internal/errors"
	"github.com/richhaase/context-monkey/pkg/frontmatter"
)

// EncodeMarkdown writes body under a frontmatter block holding meta. An empty
// map produces the body alone. The result ends with exactly one newline.
func EncodeMarkdown(meta *frontmatter.Map, body string) ([]byte, error) {
	body = strings.TrimRight(body, "\n")
	if meta.Len() == 0 {
		return []byte(body + "\n"), nil
	}
	out, err := frontmatter.Format(meta, body)
	if err != nil {
		return nil, errors.Wrap(err, "formatting frontmatter")
	}
	return out, nil
}

// DecodeMarkdown splits a document produced by EncodeMarkdown back into its
// frontmatter and trimmed body.
func DecodeMarkdown(data []byte) (*frontmatter.Map, string, error) {
	meta, body, err := frontmatter.Parse(bytes.NewReader(data))
	if err != nil && !errors.Is(err, frontmatter.ErrNoFrontmatter) {
		return nil, "", errors.Wrap(err, "parsing frontmatter")
	}
	return meta, strings.TrimSpace(string(body)), nil
}
