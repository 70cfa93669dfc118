package snippet

import (
	errs "errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyvito/lazycoder/errors"
)

const threeSnippets = "First snippet\n\n---\n\nSecond snippet\n\n---\n\nThird snippet\n"

type fakeReader struct {
	data  string
	err   error
	calls int
}

func (f *fakeReader) ReadAll() ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.data), nil
}

func makeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.lazycoder")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func makeHandler(t *testing.T, r WholeFileReader) *Handler {
	t.Helper()
	h, err := New(makeFile(t, ""), WithReader(r))
	require.NoError(t, err)
	return h
}

func TestNew(t *testing.T) {
	t.Run("Existing file", func(t *testing.T) {
		path := makeFile(t, "")
		h, err := New(path)
		require.NoError(t, err)
		assert.Equal(t, path, h.Path())
	})

	t.Run("Missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing")
		_, err := New(path)
		var notFound errors.SnippetFileNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, path, notFound.Path)
	})

	t.Run("Directory", func(t *testing.T) {
		_, err := New(t.TempDir())
		require.ErrorAs(t, err, &errors.SnippetFileNotFoundError{})
	})
}

func TestSnippet(t *testing.T) {
	h := makeHandler(t, &fakeReader{data: threeSnippets})

	tests := []struct {
		position uint64
		expected string
	}{
		{0, "First snippet\n"},
		{1, "Second snippet\n"},
		{2, "Third snippet\n"},
	}
	for _, tt := range tests {
		got, err := h.Snippet(tt.position)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got)
	}

	for _, position := range []uint64{3, 4, 1 << 40} {
		_, err := h.Snippet(position)
		var outOfSnippets errors.RunOutOfSnippetsError
		require.ErrorAs(t, err, &outOfSnippets)
		assert.Equal(t, position, outOfSnippets.Position)
		assert.Equal(t, 3, outOfSnippets.Available)
	}
}

func TestSnippetEmptyFile(t *testing.T) {
	h := makeHandler(t, &fakeReader{})

	got, err := h.Snippet(0)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = h.Snippet(1)
	require.ErrorAs(t, err, &errors.RunOutOfSnippetsError{})
}

func TestSnippetReadFailure(t *testing.T) {
	h := makeHandler(t, &fakeReader{err: fs.ErrNotExist})

	_, err := h.Snippet(0)
	var fileErr errors.SnippetFileError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, h.Path(), fileErr.Path)
	assert.True(t, errs.Is(err, fs.ErrNotExist))
}

func TestSnippetRereadsEveryCall(t *testing.T) {
	r := &fakeReader{data: "a"}
	h := makeHandler(t, r)

	got, err := h.Snippet(0)
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	r.data = "b" + Delimiter + "c"
	got, err = h.Snippet(1)
	require.NoError(t, err)
	assert.Equal(t, "c", got)
	assert.Equal(t, 2, r.calls)
}

func TestSnippetFromDisk(t *testing.T) {
	path := makeFile(t, threeSnippets)
	h, err := New(path)
	require.NoError(t, err)

	got, err := h.Snippet(1)
	require.NoError(t, err)
	assert.Equal(t, "Second snippet\n", got)

	require.NoError(t, os.WriteFile(path, []byte("Replaced\n"), 0644))
	got, err = h.Snippet(0)
	require.NoError(t, err)
	assert.Equal(t, "Replaced\n", got)

	require.NoError(t, os.Remove(path))
	_, err = h.Snippet(0)
	require.ErrorAs(t, err, &errors.SnippetFileError{})
}

func TestCount(t *testing.T) {
	h := makeHandler(t, &fakeReader{data: threeSnippets})
	n, err := h.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	h = makeHandler(t, &fakeReader{err: fs.ErrPermission})
	_, err = h.Count()
	require.ErrorAs(t, err, &errors.SnippetFileError{})
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{"empty", "", []string{""}},
		{"single", "only one\n", []string{"only one\n"}},
		{"three", threeSnippets, []string{"First snippet\n", "Second snippet\n", "Third snippet\n"}},
		{"leading delimiter", Delimiter + "x", []string{"", "x"}},
		{"trailing delimiter", "x" + Delimiter, []string{"x", ""}},
		{"no blank line after hyphens", "a\n---\nb", []string{"a\n---\nb"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, Split(tt.content)); diff != "" {
				t.Errorf("Split mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
