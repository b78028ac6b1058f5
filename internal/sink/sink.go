package sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Lumos-Labs-HQ/catalogseed/internal/catalog"
)

var ErrUnknownFormat = errors.New("unknown output format")

const (
	FormatSQL  = "sql"
	FormatYAML = "yaml"
	FormatDB   = "db"
)

// Options selects and configures an output sink.
type Options struct {
	Format   string
	Path     string // "-" or "" writes to stdout
	Provider string
	URL      string // only used by FormatDB
	Stdout   io.Writer
}

// WriteCloser is a sink that must be closed to flush and release its output.
type WriteCloser interface {
	catalog.Sink
	Close() error
}

// Open builds the sink described by opts.
func Open(ctx context.Context, opts Options) (WriteCloser, error) {
	dialect, err := ParseDialect(opts.Provider)
	if err != nil {
		return nil, err
	}

	switch opts.Format {
	case FormatDB:
		db, err := OpenDB(ctx, dialect, opts.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return NewDB(db, dialect), nil
	case FormatSQL, FormatYAML:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}

	w, closeFn, err := openOutput(opts)
	if err != nil {
		return nil, err
	}

	if opts.Format == FormatYAML {
		y := NewYAMLWriter(w)
		return &fileSink{Sink: y, flush: y.Close, close: closeFn}, nil
	}
	return &fileSink{Sink: NewSQLWriter(w, dialect), close: closeFn}, nil
}

func openOutput(opts Options) (io.Writer, func() error, error) {
	if opts.Path == "" || opts.Path == "-" {
		out := opts.Stdout
		if out == nil {
			out = os.Stdout
		}
		return out, func() error { return nil }, nil
	}

	if dir := filepath.Dir(opts.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(opts.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

type fileSink struct {
	catalog.Sink
	flush func() error
	close func() error
}

func (f *fileSink) Close() error {
	if f.flush != nil {
		if err := f.flush(); err != nil {
			f.close()
			return err
		}
	}
	return f.close()
}
