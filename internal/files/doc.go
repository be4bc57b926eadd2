// Package files groups file access helpers.
//
// Sub-packages:
//   - filesystem: filesystem abstraction with OS and in-memory implementations
package files
