package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/richhaase/context-monkey/internal/errors"
	"github.com/richhaase/context-monkey/internal/paths"
	"github.com/richhaase/context-monkey/internal/target"
)

// ConfigDirEnv overrides the directory searched for config.yaml.
const ConfigDirEnv = "CM_CONFIG_DIR"

// DefaultSnapshotTemplates are the commands captured by `cm snapshot`.
var DefaultSnapshotTemplates = []string{
	"docs.md",
	"stack-scan.md",
	"plan.md",
	"explain-repo.md",
}

// Config represents the top-level configuration structure.
type Config struct {
	Version           int      `mapstructure:"version" yaml:"version"`
	ResourcesDir      string   `mapstructure:"resources_dir" yaml:"resources_dir"`
	DefaultTargets    []string `mapstructure:"default_targets" yaml:"default_targets"`
	SnapshotsDir      string   `mapstructure:"snapshots_dir" yaml:"snapshots_dir"`
	SnapshotTemplates []string `mapstructure:"snapshot_templates" yaml:"snapshot_templates"`
}

// Targets returns DefaultTargets parsed. Invalid entries are rejected by
// Validate, so callers of a loaded config can ignore the error.
func (c *Config) Targets() ([]target.Target, error) {
	out := make([]target.Target, 0, len(c.DefaultTargets))
	for _, id := range c.DefaultTargets {
		t, err := target.Parse(id)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Init resets Viper and installs the default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		viper.AddConfigPath(dir)
	}
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.AppConfigDir())

	viper.SetEnvPrefix("CM")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("resources_dir", "resources")
	viper.SetDefault("default_targets", target.Strings(target.All()))
	viper.SetDefault("snapshots_dir", "snapshots")
	viper.SetDefault("snapshot_templates", DefaultSnapshotTemplates)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Only an implicit search may come up empty.
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}
