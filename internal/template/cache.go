package template

import (
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// Cache holds one Environment per resolved resources root. It is safe for
// concurrent use.
type Cache struct {
	fs   afero.Fs
	mu   sync.Mutex
	envs map[string]*Environment
}

// NewCache returns an empty cache reading partials through fsys.
func NewCache(fsys afero.Fs) *Cache {
	return &Cache{
		fs:   fsys,
		envs: make(map[string]*Environment),
	}
}

// Get returns the environment for root, building it on first use.
// Failed builds are not cached.
func (c *Cache) Get(root string) (*Environment, error) {
	key := root
	if abs, err := filepath.Abs(root); err == nil {
		key = abs
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if env, ok := c.envs[key]; ok {
		return env, nil
	}
	env, err := NewEnvironment(c.fs, key)
	if err != nil {
		return nil, err
	}
	c.envs[key] = env
	return env, nil
}

// Len returns the number of cached environments.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.envs)
}
