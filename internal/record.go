package internal

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

var (
	MissingFilePathErr  = fmt.Errorf("file_path is missing or empty")
	MissingPositionErr  = fmt.Errorf("position is missing")
	NegativePositionErr = fmt.Errorf("position must not be negative")
)

// Record is the persisted cursor state.
type Record struct {
	FilePath string `toml:"file_path"`
	Position uint64 `toml:"position"`
}

// rawRecord mirrors Record with optional fields so that absent keys can be
// told apart from zero values.
type rawRecord struct {
	FilePath *string `toml:"file_path"`
	Position *int64  `toml:"position"`
}

func EncodeRecord(r *Record) ([]byte, error) {
	return toml.Marshal(r)
}

func DecodeRecord(data []byte, into *Record) error {
	var raw rawRecord
	if err := toml.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.FilePath == nil || *raw.FilePath == "":
		return MissingFilePathErr
	case raw.Position == nil:
		return MissingPositionErr
	case *raw.Position < 0:
		return NegativePositionErr
	}

	into.FilePath = *raw.FilePath
	into.Position = uint64(*raw.Position)
	return nil
}
