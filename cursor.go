package lazycoder

// Cursor is the persisted position within a snippet file. Mutating methods
// persist the new position before it becomes visible through Position; on
// failure the cursor is left untouched.
type Cursor interface {
	// FilePath returns the absolute path of the snippet file in use.
	FilePath() string

	// Position returns the zero-based index of the snippet that Next or Peek
	// will return.
	Position() uint64

	// Next returns the snippet at the current position and advances the
	// cursor by one. In case the snippet cannot be obtained, the position is
	// not changed and nothing is persisted.
	Next() (string, error)

	// Peek returns the snippet at the current position without moving the
	// cursor.
	Peek() (string, error)

	// Forward advances the cursor by count. Moving past the last snippet is
	// allowed, and only surfaces as an error on the next read. Positions are
	// bounded by the largest TOML integer.
	Forward(count uint64) error

	// Rewind moves the cursor back by count. Returns an
	// OperationOutOfRangeError in case the position would become negative.
	Rewind(count uint64) error

	// Persist writes the cursor to the configuration file, replacing its
	// contents. When createDir is set, a missing configuration directory is
	// created; otherwise a ConfigDirError is returned.
	Persist(createDir bool) error

	// Count returns the amount of snippets currently present in the snippet
	// file.
	Count() (int, error)
}
