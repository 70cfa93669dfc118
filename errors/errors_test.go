package errors

import (
	errs "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessages(t *testing.T) {
	assert.Equal(t, "snippet file not found: /tmp/demo", SnippetFileNotFoundError{Path: "/tmp/demo"}.Error())
	assert.Equal(t, "out of range of available snippets: position 4, 3 available", RunOutOfSnippetsError{Position: 4, Available: 3}.Error())
	assert.Equal(t, "operation out of range: cannot move cursor at position 3 by 5", OperationOutOfRangeError{Position: 3, Count: 5}.Error())
	assert.Equal(t, "no valid configuration directory path could be retrieved", ConfigDirError{}.Error())
	assert.Equal(t, "configuration directory /cfg does not exist", ConfigDirError{Path: "/cfg"}.Error())
}

func TestUnwrap(t *testing.T) {
	wrapped := []error{
		SnippetFileError{Path: "/tmp/demo", Err: fs.ErrPermission},
		ConfigDirError{Path: "/cfg", Err: fs.ErrPermission},
		ConfigFileError{Path: "/cfg/lazycoder.toml", Err: fs.ErrPermission},
		ConfigEncodingError{Path: "/cfg/lazycoder.toml", Err: fs.ErrPermission},
	}
	for _, err := range wrapped {
		assert.Truef(t, errs.Is(err, fs.ErrPermission), "%T should unwrap its cause", err)
	}
}
