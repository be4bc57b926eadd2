// Package source loads BEACON content from a local path or an HTTP(S) URL.
package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/vvka-141/beacon/internal/files/filesystem"
	"github.com/vvka-141/beacon/pkg/beacon"
)

// Fetcher downloads remote content.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// Loader resolves an input argument to its bytes.
type Loader struct {
	fs      filesystem.FileSystemProvider
	fetcher Fetcher
	logger  beacon.Logger
}

// NewLoader creates a loader. A nil fetcher disables URL input.
func NewLoader(fsProvider filesystem.FileSystemProvider, fetcher Fetcher, logger beacon.Logger) *Loader {
	return &Loader{fs: fsProvider, fetcher: fetcher, logger: logger}
}

// IsURL reports whether input should be downloaded rather than read from disk.
func IsURL(input string) bool {
	lower := strings.ToLower(input)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Load returns the content named by input.
//
// Local paths fail with beacon.ErrFileNotFound or beacon.ErrFileUnreadable.
// Download failures wrap beacon.ErrSourceUnavailable.
func (l *Loader) Load(ctx context.Context, input string) ([]byte, error) {
	if IsURL(input) {
		if l.fetcher == nil {
			return nil, fmt.Errorf("%w: URL input is not supported: %s", beacon.ErrSourceUnavailable, input)
		}
		return l.fetcher.Fetch(ctx, input)
	}
	return l.loadFile(input)
}

func (l *Loader) loadFile(path string) ([]byte, error) {
	info, err := l.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", beacon.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", beacon.ErrFileUnreadable, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", beacon.ErrFileUnreadable, path)
	}

	content, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", beacon.ErrFileUnreadable, path, err)
	}
	if l.logger != nil {
		l.logger.Verbose("Read %d bytes from %s", len(content), path)
	}
	return content, nil
}
