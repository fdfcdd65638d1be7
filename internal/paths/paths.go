package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/richhaase/context-monkey/internal/errors"
	"github.com/richhaase/context-monkey/internal/target"
)

// AppName names the per-user config directory.
const AppName = "context-monkey"

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// targetConfigDirs maps targets to their config directories relative to home.
var targetConfigDirs = map[target.Target]string{
	target.Claude: ".claude",
	target.Codex:  ".codex",
	target.Gemini: ".gemini",
}

// targetCommandDirs maps targets to where rendered commands are installed,
// relative to the target config directory.
var targetCommandDirs = map[target.Target]string{
	target.Claude: filepath.Join("commands", "cm"),
	target.Codex:  "prompts",
	target.Gemini: filepath.Join("commands", "cm"),
}

// Home returns the user's home directory, or "" when it cannot be resolved.
// Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", errors.Wrap(ErrHomeDirNotFound, "resolving home")
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
func ConfigHome() string {
	return xdg.ConfigHome
}

// AppConfigDir returns <ConfigHome>/context-monkey.
func AppConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// TargetConfigDir returns the global config directory of a target CLI, such
// as ~/.codex. Returns "" for unknown targets or when home is unresolvable.
func TargetConfigDir(t target.Target) string {
	rel, ok := targetConfigDirs[t]
	if !ok {
		return ""
	}
	home := Home()
	if home == "" {
		return ""
	}
	return filepath.Join(home, rel)
}

// CommandDir returns the directory the installer writes rendered commands to.
//
//   - claude: ~/.claude/commands/cm/
//   - codex: ~/.codex/prompts/
//   - gemini: ~/.gemini/commands/cm/
//
// Returns "" for unknown targets.
func CommandDir(t target.Target) string {
	base := TargetConfigDir(t)
	if base == "" {
		return ""
	}
	return filepath.Join(base, targetCommandDirs[t])
}

// AgentDir returns where agent blueprints are installed for targets that
// support subagents natively. Returns "" for inline targets.
func AgentDir(t target.Target) string {
	if !t.SupportsSubagents() {
		return ""
	}
	base := TargetConfigDir(t)
	if base == "" {
		return ""
	}
	return filepath.Join(base, "agents")
}

// Shorten replaces a leading home directory with "~" for display.
func Shorten(path string) string {
	home := Home()
	if home == "" || path == "" {
		return path
	}
	rel, err := filepath.Rel(home, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	if rel == "." {
		return "~"
	}
	return filepath.Join("~", rel)
}
