package template

import (
	"io/fs"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/aymerick/raymond"
	"github.com/spf13/afero"

	"github.com/richhaase/context-monkey/internal/errors"
	"github.com/richhaase/context-monkey/pkg/fileutil"
)

const partialExt = ".hbs"

// ErrSyntax wraps Handlebars parse failures.
var ErrSyntax = errors.New("template syntax error")

// Environment renders templates for one resources root.
type Environment struct {
	root     string
	partials map[string]string
	helpers  map[string]any
}

// NewEnvironment builds an environment for root, registering every partial
// under root/partials. A missing partials directory is not an error.
func NewEnvironment(fsys afero.Fs, root string) (*Environment, error) {
	partials, err := DiscoverPartials(fsys, root)
	if err != nil {
		return nil, err
	}
	return &Environment{
		root:     root,
		partials: partials,
		helpers:  builtinHelpers(),
	}, nil
}

// Root returns the resources root the environment was built for.
func (e *Environment) Root() string { return e.root }

// HasPartial reports whether name is registered.
func (e *Environment) HasPartial(name string) bool {
	_, ok := e.partials[name]
	return ok
}

// Partials returns the registered partial names, sorted.
func (e *Environment) Partials() []string {
	names := make([]string, 0, len(e.partials))
	for name := range e.partials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compile parses src without executing it.
func (e *Environment) Compile(src string) error {
	_, err := e.parse(src)
	return err
}

// Render expands src with ctx.
func (e *Environment) Render(src string, ctx Context) (string, error) {
	tpl, err := e.parse(src)
	if err != nil {
		return "", err
	}
	out, err := tpl.Exec(ctx.data())
	if err != nil {
		return "", errors.Wrap(err, "executing template")
	}
	return out, nil
}

func (e *Environment) parse(src string) (*raymond.Template, error) {
	tpl, err := raymond.Parse(src)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, ErrSyntax.Error()), ErrSyntax)
	}
	tpl.RegisterHelpers(e.helpers)
	tpl.RegisterPartials(e.partials)
	return tpl, nil
}

func builtinHelpers() map[string]any {
	return map[string]any{
		"noop": func(v any) any { return v },
		"eq":   func(a, b any) bool { return reflect.DeepEqual(a, b) },
	}
}

// DiscoverPartials reads every *.hbs file below root/partials. Keys are the
// slash path without extension, with "/" replaced by ".".
func DiscoverPartials(fsys afero.Fs, root string) (map[string]string, error) {
	dir := filepath.Join(root, "partials")
	partials := make(map[string]string)

	ok, err := afero.DirExists(fsys, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "checking %s", dir)
	}
	if !ok {
		return partials, nil
	}

	err = afero.Walk(fsys, dir, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(strings.ToLower(info.Name()), partialExt) {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		data, err := fileutil.ReadFileWithLimit(fsys, p)
		if err != nil {
			return errors.Wrapf(err, "reading partial %s", p)
		}
		partials[PartialName(rel)] = string(data)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "discovering partials")
	}
	return partials, nil
}

// PartialName converts a path relative to partials/ into its registered name:
// "shared/header.hbs" becomes "shared.header".
func PartialName(rel string) string {
	rel = filepath.ToSlash(rel)
	rel = rel[:len(rel)-len(partialExt)]
	return strings.ReplaceAll(rel, "/", ".")
}
