package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/heyvito/lazycoder/errors"
	"github.com/heyvito/lazycoder/internal/metrics"
)

// ConfigFilePath returns the location of the configuration file for the
// directory reported by the given configuration.
func ConfigFilePath(config Config) (string, error) {
	dir, ok := config.GetConfigDir()
	if !ok || dir == "" {
		return "", errors.ConfigDirError{}
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// LoadRecord reads and decodes the record stored in the configuration
// directory.
func LoadRecord(config Config) (*Record, error) {
	log := config.GetLogger().Named("storage")
	path, err := ConfigFilePath(config)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error(err, "Failed reading configuration file", "path", path)
		return nil, errors.ConfigFileError{Path: path, Err: err}
	}

	rec := &Record{}
	if err = DecodeRecord(data, rec); err != nil {
		log.Error(err, "Failed decoding configuration file", "path", path)
		return nil, errors.ConfigEncodingError{Path: path, Err: err}
	}

	log.Debug("Configuration loaded", "path", path, "file_path", rec.FilePath, "position", rec.Position)
	return rec, nil
}

// StoreRecord replaces the contents of the configuration file with the
// provided record. When createDir is false and the configuration directory
// does not exist, a ConfigDirError is returned.
func StoreRecord(config Config, rec *Record, createDir bool) error {
	defer metrics.Measure(metrics.StorePersistLatency)()
	log := config.GetLogger().Named("storage")

	path, err := ConfigFilePath(config)
	if err != nil {
		metrics.Simple(metrics.StorePersistFailures, 0)
		return err
	}
	dir := filepath.Dir(path)

	stat, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err) && createDir:
		log.Debug("Creating configuration directory", "path", dir)
		if err = os.MkdirAll(dir, configDirPerm); err != nil {
			metrics.Simple(metrics.StorePersistFailures, 0)
			return errors.ConfigDirError{Path: dir, Err: err}
		}
	case os.IsNotExist(err):
		metrics.Simple(metrics.StorePersistFailures, 0)
		return errors.ConfigDirError{Path: dir}
	case err != nil:
		metrics.Simple(metrics.StorePersistFailures, 0)
		return errors.ConfigDirError{Path: dir, Err: err}
	case !stat.IsDir():
		metrics.Simple(metrics.StorePersistFailures, 0)
		return errors.ConfigDirError{Path: dir, Err: fmt.Errorf("exists and is not a directory")}
	}

	data, err := EncodeRecord(rec)
	if err != nil {
		metrics.Simple(metrics.StorePersistFailures, 0)
		return errors.ConfigEncodingError{Path: path, Err: err}
	}

	if err = os.WriteFile(path, data, configFilePerm); err != nil {
		metrics.Simple(metrics.StorePersistFailures, 0)
		log.Error(err, "Failed writing configuration file", "path", path)
		return errors.ConfigFileError{Path: path, Err: err}
	}

	log.Info("Configuration written", "path", path, "position", rec.Position)
	return nil
}
