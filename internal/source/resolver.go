package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/joshsymonds/orgaudit/pkg/logger"
	"github.com/joshsymonds/orgaudit/pkg/pathutil"
)

// ResolverOption configures Resolve.
type ResolverOption func(*resolverOptions)

type resolverOptions struct {
	fs        afero.Fs
	stdin     io.Reader
	s3Client  S3API
	logger    logger.Logger
	s3Options S3Options
}

// WithFs sets the filesystem used for local paths.
func WithFs(fs afero.Fs) ResolverOption {
	return func(o *resolverOptions) {
		o.fs = fs
	}
}

// WithStdin sets the reader used for the "-" location.
func WithStdin(r io.Reader) ResolverOption {
	return func(o *resolverOptions) {
		o.stdin = r
	}
}

// WithS3Client sets a preconfigured S3 client. Without one, Resolve builds a
// client from the default AWS credential chain when an s3:// location is given.
func WithS3Client(client S3API) ResolverOption {
	return func(o *resolverOptions) {
		o.s3Client = client
	}
}

// WithS3Options sets the region and endpoint for the S3 client Resolve builds.
func WithS3Options(opts S3Options) ResolverOption {
	return func(o *resolverOptions) {
		o.s3Options = opts
	}
}

// WithLogger sets the logger for the resolver.
func WithLogger(l logger.Logger) ResolverOption {
	return func(o *resolverOptions) {
		o.logger = l
	}
}

// Resolve maps a location string to a Source: "-" is standard input,
// s3://bucket/key is an S3 object, and anything else is a filesystem path.
func Resolve(ctx context.Context, location string, opts ...ResolverOption) (Source, error) {
	options := &resolverOptions{
		fs:     afero.NewOsFs(),
		stdin:  os.Stdin,
		logger: logger.NopLogger{},
	}
	for _, opt := range opts {
		opt(options)
	}

	switch {
	case location == StdinLocation:
		options.logger.Debug("Reading roster from standard input")
		return NewReaderSource("stdin", options.stdin), nil

	case IsS3URI(location):
		bucket, key, err := ParseS3URI(location)
		if err != nil {
			return nil, err
		}

		client := options.s3Client
		if client == nil {
			c, err := NewS3Client(ctx, options.s3Options)
			if err != nil {
				return nil, err
			}
			client = c
		}

		options.logger.Debug("Reading roster from S3", "bucket", bucket, "key", key,
			"endpoint", options.s3Options.Endpoint)
		return NewS3Source(client, bucket, key), nil

	default:
		path, err := pathutil.CleanPath(location)
		if err != nil {
			return nil, fmt.Errorf("invalid roster path: %w", err)
		}
		options.logger.Debug("Reading roster from file", "path", path)
		return NewFileSource(options.fs, path), nil
	}
}
