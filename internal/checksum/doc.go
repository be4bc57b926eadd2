// Package checksum fingerprints BEACON dumps.
//
// Two checksums are computed:
//
//   - Raw checksum: SHA-256 of the exact bytes (detects any change)
//   - Normalized checksum: SHA-256 after dropping formatting noise, so two
//     dumps with the same header and links share it
//
// # Normalization Strategy
//
//  1. Strip the byte order mark and unify line endings
//  2. Drop blank lines and comment lines
//  3. Collapse whitespace runs inside each line and trim it
//  4. Uppercase meta field names
//
// Link order and meta field order are kept: they are part of the content.
package checksum
