// Package snippet resolves zero-based positions into the snippets of a
// delimiter-separated text file.
//
// The file is read in full and split on Delimiter on every query, so edits
// made between two calls are always observed. Splitting is purely textual: a
// snippet body containing the delimiter itself is split in two.
//
// MappedReader maps the file privately and copies it out. A truncation racing
// between the mapping and the copy may raise SIGBUS; that window is accepted
// along with the other check-then-read races on the snippet file.
package snippet

import (
	"os"
	"strings"

	"github.com/go-stdlog/stdlog"

	"github.com/heyvito/lazycoder/errors"
	"github.com/heyvito/lazycoder/internal/metrics"
)

// Delimiter separates two consecutive snippets: a newline, three hyphens and
// a blank line.
const Delimiter = "\n---\n\n"

// Provider resolves a position into snippet text.
type Provider interface {
	Snippet(position uint64) (string, error)
}

type Handler struct {
	path   string
	reader WholeFileReader
	log    stdlog.Logger
}

type Option func(h *Handler)

// WithReader replaces the reader used to obtain the file contents.
func WithReader(r WholeFileReader) Option {
	return func(h *Handler) { h.reader = r }
}

func WithLogger(l stdlog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l.Named("snippet")
		}
	}
}

// New returns a Handler for the file at path. Returns a
// SnippetFileNotFoundError in case path does not reference a regular file.
func New(path string, opts ...Option) (*Handler, error) {
	stat, err := os.Stat(path)
	if err != nil || !stat.Mode().IsRegular() {
		return nil, errors.SnippetFileNotFoundError{Path: path}
	}

	h := &Handler{
		path:   path,
		reader: NewMappedReader(path),
		log:    stdlog.Discard,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

func (h *Handler) Path() string { return h.path }

// Snippet returns the snippet at the given zero-based position. Returns a
// SnippetFileError in case the file cannot be read, or a
// RunOutOfSnippetsError when position is past the last snippet.
func (h *Handler) Snippet(position uint64) (string, error) {
	segments, err := h.segments()
	if err != nil {
		return "", err
	}
	if position >= uint64(len(segments)) {
		h.log.Debug("Position past last snippet", "position", position, "available", len(segments))
		return "", errors.RunOutOfSnippetsError{Position: position, Available: len(segments)}
	}
	return segments[position], nil
}

// Count returns the amount of snippets currently present in the file.
func (h *Handler) Count() (int, error) {
	segments, err := h.segments()
	if err != nil {
		return 0, err
	}
	return len(segments), nil
}

func (h *Handler) segments() ([]string, error) {
	defer metrics.Measure(metrics.SnippetReadLatency)()

	data, err := h.reader.ReadAll()
	if err != nil {
		metrics.Simple(metrics.SnippetReadFailures, 0)
		h.log.Error(err, "Failed reading snippet file", "path", h.path)
		return nil, errors.SnippetFileError{Path: h.path, Err: err}
	}

	segments := Split(string(data))
	metrics.Simple(metrics.SnippetSegmentsCount, float64(len(segments)))
	h.log.Debug("Snippet file read", "path", h.path, "size", len(data), "segments", len(segments))
	return segments, nil
}

// Split breaks content into its snippets. Empty content yields a single empty
// snippet.
func Split(content string) []string {
	return strings.Split(content, Delimiter)
}
