package errors

import "fmt"

// SnippetFileNotFoundError indicates that the snippet file path does not
// reference an existing regular file.
type SnippetFileNotFoundError struct {
	Path string
}

func (s SnippetFileNotFoundError) Error() string {
	return fmt.Sprintf("snippet file not found: %s", s.Path)
}

// SnippetFileError indicates that the snippet file exists but could not be
// read. The underlying cause is kept in Err.
type SnippetFileError struct {
	Path string
	Err  error
}

func (s SnippetFileError) Error() string {
	return fmt.Sprintf("snippet file error: %s: %s", s.Path, s.Err)
}

func (s SnippetFileError) Unwrap() error { return s.Err }

// RunOutOfSnippetsError indicates that a position beyond the last snippet
// was requested. Available holds the amount of snippets present in the file
// at the time it was read.
type RunOutOfSnippetsError struct {
	Position  uint64
	Available int
}

func (r RunOutOfSnippetsError) Error() string {
	return fmt.Sprintf("out of range of available snippets: position %d, %d available", r.Position, r.Available)
}

// ConfigDirError indicates that the per-user configuration directory could
// not be determined, or that it is missing and could not be created. Err is
// nil when the platform could not provide a directory at all.
type ConfigDirError struct {
	Path string
	Err  error
}

func (c ConfigDirError) Error() string {
	switch {
	case c.Path == "":
		return "no valid configuration directory path could be retrieved"
	case c.Err == nil:
		return fmt.Sprintf("configuration directory %s does not exist", c.Path)
	default:
		return fmt.Sprintf("configuration directory %s: %s", c.Path, c.Err)
	}
}

func (c ConfigDirError) Unwrap() error { return c.Err }

// ConfigFileError indicates an I/O failure while reading or writing the
// configuration file.
type ConfigFileError struct {
	Path string
	Err  error
}

func (c ConfigFileError) Error() string {
	return fmt.Sprintf("configuration file error: %s: %s", c.Path, c.Err)
}

func (c ConfigFileError) Unwrap() error { return c.Err }

// ConfigEncodingError indicates that the contents of the configuration file
// do not decode into a valid cursor record.
type ConfigEncodingError struct {
	Path string
	Err  error
}

func (c ConfigEncodingError) Error() string {
	return fmt.Sprintf("configuration encoding error: %s: %s", c.Path, c.Err)
}

func (c ConfigEncodingError) Unwrap() error { return c.Err }

// OperationOutOfRangeError indicates that moving the cursor by Count from
// Position would leave the representable range, e.g. rewinding below zero.
type OperationOutOfRangeError struct {
	Position uint64
	Count    uint64
}

func (o OperationOutOfRangeError) Error() string {
	return fmt.Sprintf("operation out of range: cannot move cursor at position %d by %d", o.Position, o.Count)
}
