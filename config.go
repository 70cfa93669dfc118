package lazycoder

import (
	"os"
	"path/filepath"

	"github.com/go-stdlog/stdlog"

	"github.com/heyvito/lazycoder/internal"
)

type Config struct {
	// ConfigDir locates the directory holding the configuration file. If
	// unset, UserConfigDir is used.
	ConfigDir ConfigDirLocator

	// Snippets opens the snippet source for a given file path. If unset,
	// files are read through a memory mapping on every query.
	Snippets SnippetSource

	// Logger allows a given stdlog.Logger instance to be set as the system
	// logger. If unset, no logs will be generated.
	Logger stdlog.Logger
}

func (c Config) GetConfigDir() (string, bool) {
	if c.ConfigDir != nil {
		return c.ConfigDir.ConfigDir()
	}
	return UserConfigDir{}.ConfigDir()
}

func (c Config) GetLogger() stdlog.Logger {
	if c.Logger != nil {
		return c.Logger.Named("lazycoder")
	}
	return stdlog.Discard
}

// ConfigDirLocator reports the directory in which the configuration file is
// kept. The boolean result is false when no directory can be determined.
type ConfigDirLocator interface {
	ConfigDir() (string, bool)
}

// UserConfigDir locates the configuration under the platform's per-user
// configuration directory, e.g. $XDG_CONFIG_HOME/lazycoder on Linux or
// ~/Library/Application Support/lazycoder on macOS.
type UserConfigDir struct{}

func (UserConfigDir) ConfigDir() (string, bool) {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return "", false
	}
	return filepath.Join(base, internal.ConfigDirName), true
}

// StaticConfigDir always reports the same directory. An empty value reports
// no directory.
type StaticConfigDir string

func (s StaticConfigDir) ConfigDir() (string, bool) {
	return string(s), s != ""
}
