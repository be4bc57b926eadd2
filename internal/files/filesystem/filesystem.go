package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo.
type FileInfo = fs.FileInfo

// FileSystemProvider reads files by path.
type FileSystemProvider interface {
	// ReadFile returns the full content of the file at path.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for path.
	Stat(path string) (FileInfo, error)
}
