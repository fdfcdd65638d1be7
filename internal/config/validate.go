package config

import (
	"path/filepath"
	"strings"

	"github.com/richhaase/context-monkey/internal/errors"
	"github.com/richhaase/context-monkey/internal/target"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not 1.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidTarget indicates an unrecognized target name.
	ErrInvalidTarget = errors.New("invalid default target")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidPattern indicates a snapshot template entry is malformed.
	ErrInvalidPattern = errors.New("invalid snapshot template")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, errors.Mark(errors.Newf("unsupported config version: %d", cfg.Version), ErrUnsupportedVersion))
	}

	for _, id := range cfg.DefaultTargets {
		if !target.Target(id).Valid() {
			errs = append(errs, &TargetError{Target: id, Err: ErrInvalidTarget})
		}
	}

	if err := validatePath(cfg.ResourcesDir); err != nil {
		errs = append(errs, &PathError{Field: "resources_dir", Path: cfg.ResourcesDir, Err: err})
	}
	if err := validatePath(cfg.SnapshotsDir); err != nil {
		errs = append(errs, &PathError{Field: "snapshots_dir", Path: cfg.SnapshotsDir, Err: err})
	}

	for _, name := range cfg.SnapshotTemplates {
		if name == "" || filepath.IsAbs(name) || strings.HasPrefix(filepath.ToSlash(filepath.Clean(name)), "../") {
			errs = append(errs, &PathError{Field: "snapshot_templates", Path: name, Err: ErrInvalidPattern})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	return nil
}

// TargetError represents an error for a specific target name.
type TargetError struct {
	Target string
	Err    error
}

func (e *TargetError) Error() string {
	return e.Err.Error() + ": " + e.Target
}

func (e *TargetError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
