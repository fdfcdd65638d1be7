package commands

import (
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/richhaase/context-monkey/internal/config"
	"github.com/richhaase/context-monkey/internal/errors"
	"github.com/richhaase/context-monkey/internal/logging"
	"github.com/richhaase/context-monkey/internal/render"
	"github.com/richhaase/context-monkey/internal/resource"
	"github.com/richhaase/context-monkey/internal/target"
	"github.com/richhaase/context-monkey/internal/template"
)

// appFs is the filesystem every command reads and writes through.
var appFs = afero.NewOsFs()

// envCache is shared by every renderer in the process.
var envCache = template.NewCache(appFs)

// resourcesDir returns --resources, then resources_dir from the config.
func resourcesDir() string {
	if resourcesFlag != "" {
		return resourcesFlag
	}
	if cfg != nil && cfg.ResourcesDir != "" {
		return cfg.ResourcesDir
	}
	return "resources"
}

func newStore(cmd *cobra.Command) *resource.Store {
	return resource.NewStore(appFs, resourcesDir(),
		resource.WithLogger(logging.FromContext(cmd.Context())))
}

func newRenderer(cmd *cobra.Command, store *resource.Store) *render.Renderer {
	return render.New(store,
		render.WithCache(envCache),
		render.WithLogger(logging.FromContext(cmd.Context())))
}

// resolveTargets parses --target values, defaulting to default_targets from
// the config.
func resolveTargets(ids []string) ([]target.Target, error) {
	if len(ids) == 0 {
		if cfg == nil {
			return target.All(), nil
		}
		ids = cfg.DefaultTargets
	}

	out := make([]target.Target, 0, len(ids))
	seen := make(map[target.Target]bool)
	for _, id := range ids {
		t, err := target.Parse(id)
		if err != nil {
			return nil, errors.NewUserError(err,
				"valid targets: "+strings.Join(target.Strings(target.All()), ", "))
		}
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out, nil
}

// snapshotTemplates returns snapshot_templates from the config.
func snapshotTemplates() []string {
	if cfg == nil || len(cfg.SnapshotTemplates) == 0 {
		return config.DefaultSnapshotTemplates
	}
	return cfg.SnapshotTemplates
}
