// Package filesystem provides the filesystem abstraction used to read local
// BEACON files.
//
// Implementations:
//   - OSFileSystem: production implementation using the OS filesystem
//   - MemoryFileSystem: in-memory implementation for tests
//
// Missing files are reported as *fs.PathError wrapping fs.ErrNotExist by
// both implementations, so callers can rely on errors.Is.
package filesystem
