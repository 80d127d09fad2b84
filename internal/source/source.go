// Package source supplies roster bytes to the loader. The loader does not
// care where records come from as long as their order and content survive:
// a local file, standard input, or an object in S3.
package source

import (
	"context"
	"io"
)

// Source opens a roster for reading.
type Source interface {
	// Open returns a reader over the roster. The caller closes it.
	Open(ctx context.Context) (io.ReadCloser, error)
	// Name identifies the source in logs and error messages.
	Name() string
}

// StdinLocation is the location string that selects standard input.
const StdinLocation = "-"

// ReaderSource wraps an arbitrary reader, such as standard input or an
// in-memory buffer.
type ReaderSource struct {
	r    io.Reader
	name string
}

// NewReaderSource creates a source over r.
func NewReaderSource(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{name: name, r: r}
}

// Open returns the wrapped reader. Closing it does not close the underlying reader.
func (s *ReaderSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return io.NopCloser(s.r), nil
}

// Name returns the source name.
func (s *ReaderSource) Name() string {
	return s.name
}
