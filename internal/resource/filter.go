package resource

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/richhaase/context-monkey/internal/errors"
)

// ErrBadPattern is returned by Filter for a malformed glob.
var ErrBadPattern = errors.New("bad include pattern")

// Filter returns the templates whose RelativePath or ID matches any of the
// doublestar patterns, keeping input order. No patterns keeps everything.
func Filter(templates []*Template, patterns []string) ([]*Template, error) {
	if len(patterns) == 0 {
		return templates, nil
	}
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, errors.Wrapf(ErrBadPattern, "%q", p)
		}
	}

	out := make([]*Template, 0, len(templates))
	for _, t := range templates {
		for _, p := range patterns {
			if matched(p, t.RelativePath) || matched(p, t.ID()) {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

func matched(pattern, name string) bool {
	ok, _ := doublestar.Match(pattern, name)
	return ok
}
