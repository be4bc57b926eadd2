// Package beacon parses, constructs and validates BEACON link dumps.
//
// # Overview
//
// A BEACON file is a line-oriented text format describing a bulk set of
// links between a source identifier set and a target identifier set.
// Header lines of the form "#NAME: value" (meta fields) control how the
// tokens of each link line are expanded into full URIs:
//
//	#FORMAT: BEACON
//	#PREFIX: http://example.org/
//	#TARGET: http://example.com/{ID}
//
//	alice
//	bob|annotation
//	charlie||http://example.net/charlie
//
// # Usage
//
// Parse content and construct links on demand:
//
//	doc, err := beacon.Parse(content)
//	var perr *beacon.ParseError
//	if errors.As(err, &perr) {
//	    // perr.Line is the 1-based line that failed
//	}
//	for _, link := range doc.Links() {
//	    fmt.Println(link.Source, "->", link.Target)
//	}
//
// Validate content without ever failing on malformed input:
//
//	result := beacon.Validate(content)
//	if !result.IsValid() {
//	    for _, msg := range result.Errors() { ... }
//	}
//
// # Package Structure
//
//   - classifier.go: line normalisation and per-line grammar tagging
//   - parser.go: two-state parser driving the classifier
//   - metafields.go: ordered, first-assignment-wins meta field table
//   - construct.go: URI pattern expansion into constructed links
//   - identity.go: deterministic link identities (UUID v5)
//   - validator.go, rules.go: validation check groups
//   - result.go: immutable validation result
//
// All functions are pure over their inputs and safe for concurrent use.
package beacon
