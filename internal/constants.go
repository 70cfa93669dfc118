package internal

import "os"

const (
	// ConfigDirName is the directory created under the platform's per-user
	// configuration directory.
	ConfigDirName = "lazycoder"

	// ConfigFileName is the name of the file holding the cursor record.
	ConfigFileName = "lazycoder.toml"
)

const (
	configDirPerm  os.FileMode = 0755
	configFilePerm os.FileMode = 0644
)
