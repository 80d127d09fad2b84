package source

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// FileSource reads a roster from a filesystem path.
type FileSource struct {
	fs   afero.Fs
	path string
}

// NewFileSource creates a file source. A nil fs means the OS filesystem.
func NewFileSource(fs afero.Fs, path string) *FileSource {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileSource{fs: fs, path: path}
}

// Open opens the file for reading.
func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := s.fs.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("roster path is a directory: %s", s.path)
	}

	f, err := s.fs.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening roster file: %w", err)
	}
	return f, nil
}

// Name returns the file path.
func (s *FileSource) Name() string {
	return s.path
}
