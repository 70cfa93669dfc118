package internal

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-stdlog/stdlog"
	"github.com/stretchr/testify/require"
)

type DummyConfig struct {
	ConfigDir    string
	HasConfigDir bool
	Logger       stdlog.Logger
}

func (d DummyConfig) GetConfigDir() (string, bool) {
	return d.ConfigDir, d.HasConfigDir
}

func (d DummyConfig) GetLogger() stdlog.Logger {
	return d.Logger
}

// WithLogger sends the logs of the component under test to w.
func WithLogger(w io.Writer) DummyOpt {
	return func(d *DummyConfig) { d.Logger = stdlog.NewStd(w) }
}

// WithoutConfigDir simulates a platform unable to report a configuration
// directory.
func WithoutConfigDir() DummyOpt {
	return func(d *DummyConfig) { d.ConfigDir, d.HasConfigDir = "", false }
}

// WithMissingConfigDir points the configuration at a directory that does not
// exist yet.
func WithMissingConfigDir() DummyOpt {
	return func(d *DummyConfig) { d.ConfigDir = filepath.Join(d.ConfigDir, "nested", ConfigDirName) }
}

type DummyOpt func(*DummyConfig)

func NewDummyConfig(t *testing.T, dummyOpts ...DummyOpt) *DummyConfig {
	t.Helper()
	d := &DummyConfig{
		ConfigDir:    t.TempDir(),
		HasConfigDir: true,
		Logger:       stdlog.Discard,
	}

	for _, opt := range dummyOpts {
		opt(d)
	}

	return d
}

func writeConfigFile(t *testing.T, d *DummyConfig, contents string) string {
	t.Helper()
	path := filepath.Join(d.ConfigDir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}
