// Package lazycoder keeps a persistent cursor over a file of snippets, so
// that consecutive invocations of a tool can hand them out one at a time.
//
// Snippets are separated by a line holding three hyphens surrounded by a
// newline before and a blank line after it. The cursor, together with the
// absolute path of the snippet file, is stored as TOML in a per-user
// configuration directory.
package lazycoder

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-stdlog/stdlog"

	"github.com/heyvito/lazycoder/errors"
	"github.com/heyvito/lazycoder/internal"
	"github.com/heyvito/lazycoder/internal/metrics"
	"github.com/heyvito/lazycoder/internal/snippet"
)

// SnippetProvider resolves a zero-based position into snippet text.
type SnippetProvider interface {
	Snippet(position uint64) (string, error)
}

// SnippetCounter is optionally implemented by a SnippetProvider able to
// report how many snippets it holds.
type SnippetCounter interface {
	Count() (int, error)
}

// SnippetSource opens the SnippetProvider for the snippet file at path.
type SnippetSource func(path string) (SnippetProvider, error)

// FileSnippets returns the default SnippetSource, which reads the whole file
// on every query. Returns a SnippetFileNotFoundError through the source in
// case path is not a regular file.
func FileSnippets(log stdlog.Logger) SnippetSource {
	return func(path string) (SnippetProvider, error) {
		h, err := snippet.New(path, snippet.WithLogger(log))
		if err != nil {
			return nil, err
		}
		return h, nil
	}
}

type Store interface {
	// Start resolves path to an absolute, existing file and persists a new
	// cursor pointing at its first snippet, replacing any previous one. The
	// configuration directory is created if needed. Returns a
	// SnippetFileNotFoundError in case path does not reference a file.
	Start(path string) (Cursor, error)

	// Load reads the cursor persisted by a previous call to Start.
	Load() (Cursor, error)

	// ConfigFilePath returns the location of the configuration file.
	ConfigFilePath() (string, error)
}

func New(config Config) Store {
	log := config.GetLogger()
	if config.Snippets == nil {
		config.Snippets = FileSnippets(log)
	}
	return &store{
		config: config,
		log:    log.Named("store"),
	}
}

type store struct {
	config Config
	log    stdlog.Logger
}

func (s *store) ConfigFilePath() (string, error) {
	return internal.ConfigFilePath(s.config)
}

func (s *store) Start(path string) (Cursor, error) {
	s.log.Info("Starting cursor", "path", path)
	resolved, err := canonicalize(path)
	if err != nil {
		s.log.Error(err, "Cannot use snippet file", "path", path)
		return nil, errors.SnippetFileNotFoundError{Path: path}
	}

	c := &cursor{
		store:  s,
		record: internal.Record{FilePath: resolved},
	}
	if err = c.Persist(true); err != nil {
		s.log.Error(err, "Failed creating configuration", "file_path", resolved)
		return nil, err
	}
	s.log.Debug("Cursor started", "file_path", resolved)
	return c, nil
}

func (s *store) Load() (Cursor, error) {
	rec, err := internal.LoadRecord(s.config)
	if err != nil {
		return nil, err
	}
	return &cursor{store: s, record: *rec}, nil
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	stat, err := os.Stat(resolved)
	if err != nil {
		return "", err
	}
	if !stat.Mode().IsRegular() {
		return "", fmt.Errorf("%s: is not a regular file", resolved)
	}
	return resolved, nil
}

type cursor struct {
	store  *store
	record internal.Record
}

func (c *cursor) FilePath() string { return c.record.FilePath }
func (c *cursor) Position() uint64 { return c.record.Position }

func (c *cursor) Persist(createDir bool) error {
	rec := c.record
	return internal.StoreRecord(c.store.config, &rec, createDir)
}

// commit persists next and adopts it as the current state only once it has
// been written.
func (c *cursor) commit(next internal.Record) error {
	if err := internal.StoreRecord(c.store.config, &next, false); err != nil {
		return err
	}
	c.record = next
	return nil
}

func (c *cursor) provider() (SnippetProvider, error) {
	return c.store.config.Snippets(c.record.FilePath)
}

func (c *cursor) snippet() (string, error) {
	p, err := c.provider()
	if err != nil {
		return "", err
	}
	return p.Snippet(c.record.Position)
}

func (c *cursor) Next() (string, error) {
	metrics.Simple(metrics.CursorNextCalls, 0)
	text, err := c.snippet()
	if err != nil {
		metrics.Simple(metrics.CursorNextFailures, 0)
		c.store.log.Error(err, "Failed obtaining next snippet", "position", c.record.Position)
		return "", err
	}

	next := c.record
	next.Position++
	if err = c.commit(next); err != nil {
		metrics.Simple(metrics.CursorNextFailures, 0)
		return "", err
	}
	c.store.log.Info("Cursor advanced", "position", c.record.Position)
	return text, nil
}

func (c *cursor) Peek() (string, error) {
	metrics.Simple(metrics.CursorPeekCalls, 0)
	text, err := c.snippet()
	if err != nil {
		metrics.Simple(metrics.CursorPeekFailures, 0)
		c.store.log.Error(err, "Failed obtaining current snippet", "position", c.record.Position)
		return "", err
	}
	return text, nil
}

func (c *cursor) Forward(count uint64) error {
	metrics.Simple(metrics.CursorForwardCalls, float64(count))
	if count > math.MaxInt64-c.record.Position {
		return errors.OperationOutOfRangeError{Position: c.record.Position, Count: count}
	}

	next := c.record
	next.Position += count
	if err := c.commit(next); err != nil {
		return err
	}
	c.store.log.Info("Cursor moved forward", "count", count, "position", c.record.Position)
	return nil
}

func (c *cursor) Rewind(count uint64) error {
	metrics.Simple(metrics.CursorRewindCalls, float64(count))
	if count > c.record.Position {
		metrics.Simple(metrics.CursorRewindFailures, 0)
		c.store.log.Warning("Attempt to rewind before first snippet", "count", count, "position", c.record.Position)
		return errors.OperationOutOfRangeError{Position: c.record.Position, Count: count}
	}

	next := c.record
	next.Position -= count
	if err := c.commit(next); err != nil {
		metrics.Simple(metrics.CursorRewindFailures, 0)
		return err
	}
	c.store.log.Info("Cursor rewound", "count", count, "position", c.record.Position)
	return nil
}

func (c *cursor) Count() (int, error) {
	p, err := c.provider()
	if err != nil {
		return 0, err
	}
	counter, ok := p.(SnippetCounter)
	if !ok {
		return 0, fmt.Errorf("snippet source for %s cannot count snippets", c.record.FilePath)
	}
	return counter.Count()
}
