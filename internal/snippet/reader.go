package snippet

import (
	"os"

	"github.com/heyvito/gommap"
)

// WholeFileReader returns the complete contents of a snippet source each
// time ReadAll is called.
type WholeFileReader interface {
	ReadAll() ([]byte, error)
}

// MappedReader reads a file by mapping it read-only into memory and copying
// its contents out before unmapping it.
type MappedReader struct {
	Path string
}

func NewMappedReader(path string) *MappedReader {
	return &MappedReader{Path: path}
}

func (m *MappedReader) ReadAll() ([]byte, error) {
	fd, err := os.Open(m.Path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fd.Close() }()

	stat, err := fd.Stat()
	if err != nil {
		return nil, err
	}

	// mmap(2) refuses zero-length mappings.
	if stat.Size() == 0 {
		return []byte{}, nil
	}

	mapped, err := gommap.Map(fd.Fd(), gommap.PROT_READ, gommap.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}

	data := make([]byte, len(mapped))
	copy(data, mapped)
	if err = mapped.UnsafeUnmap(); err != nil {
		return nil, err
	}
	return data, nil
}
