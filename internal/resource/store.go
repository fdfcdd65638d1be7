package resource

import (
	"bytes"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/richhaase/context-monkey/internal/errors"
	"github.com/richhaase/context-monkey/pkg/fileutil"
	"github.com/richhaase/context-monkey/pkg/frontmatter"
)

// Sentinel errors returned by the Store.
var (
	// ErrDuplicateTemplate means two files map to the same RelativePath,
	// such as "plan.md" next to "plan.md.hbs".
	ErrDuplicateTemplate = errors.New("duplicate template")

	// ErrNotFound means a requested template does not exist.
	ErrNotFound = errors.New("template not found")
)

// Store loads templates from a resources tree:
//
//	<root>/commands/**.md[.hbs]
//	<root>/agents/**.md[.hbs]
//	<root>/partials/**.hbs
type Store struct {
	fs     afero.Fs
	root   string
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore returns a Store reading root through fsys. Relative roots are
// resolved against the working directory.
func NewStore(fsys afero.Fs, root string, opts ...Option) *Store {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	s := &Store{
		fs:     fsys,
		root:   filepath.Clean(root),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the resolved resources root.
func (s *Store) Root() string { return s.root }

// Fs returns the filesystem the store reads from.
func (s *Store) Fs() afero.Fs { return s.fs }

// Commands loads every command template, sorted by RelativePath.
// A missing commands/ directory yields no templates.
func (s *Store) Commands() ([]*Template, error) {
	return s.collect(KindCommand)
}

// Agents loads every agent blueprint, sorted by RelativePath.
// A missing agents/ directory yields no templates.
func (s *Store) Agents() ([]*Template, error) {
	return s.collect(KindAgent)
}

// Command loads a single command by relative path ("plan.md") or id ("plan").
func (s *Store) Command(name string) (*Template, error) {
	cmds, err := s.Commands()
	if err != nil {
		return nil, err
	}
	name = filepath.ToSlash(name)
	for _, c := range cmds {
		if c.RelativePath == name || c.ID() == name {
			return c, nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "command %q", name)
}

// Agent loads agents/<name>.md. Returns ErrNotFound when the file is absent
// or name is not a bare file name.
func (s *Store) Agent(name string) (*Template, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, errors.Wrapf(ErrNotFound, "agent %q", name)
	}
	rel := name + markdownExt
	p := filepath.Join(s.root, dirFor[KindAgent], filepath.FromSlash(rel))

	exists, err := afero.Exists(s.fs, p)
	if err != nil {
		return nil, errors.Wrapf(err, "checking agent %s", name)
	}
	if !exists {
		return nil, errors.Wrapf(ErrNotFound, "agent %q", name)
	}
	return s.load(KindAgent, p, rel)
}

// collect walks the directory for kind and loads each template file.
func (s *Store) collect(kind Kind) ([]*Template, error) {
	dir := filepath.Join(s.root, dirFor[kind])

	ok, err := afero.DirExists(s.fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "checking %s", dir)
	}
	if !ok {
		s.logger.Debug("resource directory missing", "dir", dir)
		return nil, nil
	}

	var templates []*Template
	byRel := make(map[string]string)

	err = afero.Walk(s.fs, dir, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ok, templated := isTemplateFile(info.Name())
		if !ok {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return errors.Wrapf(err, "relativizing %s", p)
		}
		rel = filepath.ToSlash(rel)

		// Blueprints are looked up as agents/<name>.md, so nothing else
		// may count as one.
		if kind == KindAgent && (templated || strings.Contains(rel, "/")) {
			s.logger.Debug("ignoring agent file outside agents/<name>.md", "path", p)
			return nil
		}

		t, err := s.load(kind, p, rel)
		if err != nil {
			return err
		}
		if prev, dup := byRel[t.RelativePath]; dup {
			return errors.Wrapf(ErrDuplicateTemplate, "%s and %s both define %s/%s",
				prev, t.SourceRelativePath, dirFor[kind], t.RelativePath)
		}
		byRel[t.RelativePath] = t.SourceRelativePath
		templates = append(templates, t)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", dirFor[kind])
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].RelativePath < templates[j].RelativePath
	})

	s.logger.Debug("loaded templates", "kind", string(kind), "count", len(templates))
	return templates, nil
}

// load reads and parses one template file. rel is relative to the kind's
// directory and slash-separated.
func (s *Store) load(kind Kind, p, rel string) (*Template, error) {
	data, err := fileutil.ReadFileWithLimit(s.fs, p)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", p)
	}

	raw := string(bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n")))
	meta, body, err := frontmatter.Parse(strings.NewReader(raw))
	switch {
	case err == nil:
	case errors.Is(err, frontmatter.ErrNoFrontmatter):
		body = []byte(raw)
	default:
		s.logger.Debug("ignoring malformed frontmatter", "path", p, "error", err)
		meta, body = frontmatter.NewMap(), []byte(raw)
	}

	_, templated := isTemplateFile(path.Base(rel))
	relPath := rel
	if templated {
		relPath = rel[:len(rel)-len(engineExt)]
	}

	return &Template{
		Kind:               kind,
		SourcePath:         p,
		RelativePath:       relPath,
		SourceRelativePath: rel,
		Root:               s.root,
		Frontmatter:        meta,
		Body:               strings.TrimSpace(string(body)),
		Raw:                raw,
		AgentRefs:          ScanAgentRefs(raw),
		IsTemplated:        templated,
	}, nil
}
