package beacon

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// parseState is the position of the parser within the file.
// The only transition is preamble -> links, and it is irreversible.
type parseState int

const (
	statePreamble parseState = iota
	stateLinks
)

func (s parseState) String() string {
	if s == stateLinks {
		return "links"
	}
	return "preamble"
}

// next returns the state after a line of the given kind has been consumed.
func (s parseState) next(kind LineKind) parseState {
	switch kind {
	case KindBlank, KindLink:
		return stateLinks
	}
	return s
}

// acceptsMeta reports whether meta fields may still appear.
func (s parseState) acceptsMeta() bool {
	return s == statePreamble
}

// Parse parses BEACON content. On failure it returns a *ParseError and no
// document.
func Parse(content []byte, opts ...Option) (*Document, error) {
	return ParseString(string(content), opts...)
}

// ParseString parses BEACON content held in a string.
func ParseString(content string, opts ...Option) (*Document, error) {
	o := newOptions(opts)
	doc := &Document{meta: &MetaFields{}}

	state := statePreamble
	seenContent := false

	for _, line := range Classify(content) {
		first := !seenContent && line.Kind != KindBlank
		if line.Kind != KindBlank {
			seenContent = true
		}

		if line.Kind == KindFormatMarker && first {
			continue
		}

		switch line.Kind {
		case KindFormatMarker, KindMetaField:
			if !state.acceptsMeta() {
				return nil, &ParseError{Line: line.Number, Message: "Meta field found after link section"}
			}
			name := strings.ToUpper(line.Name)
			if !doc.meta.Set(name, line.Value) {
				msg := fmt.Sprintf("Duplicate meta field '%s' on line %d ignored", name, line.Number)
				doc.warnings = append(doc.warnings, ParseWarning{Line: line.Number, Message: msg})
				o.logger.Verbose("%s", msg)
			}
		case KindMalformedMeta:
			return nil, &ParseError{Line: line.Number, Message: "Invalid meta field format", Text: line.Text}
		case KindLink:
			raw, ok, err := parseLinkLine(line, doc.meta)
			if err != nil {
				return nil, err
			}
			if ok {
				doc.links = append(doc.links, raw)
			}
		}

		state = state.next(line.Kind)
	}

	o.logger.Verbose("Parsed %d meta field(s) and %d link(s)", doc.meta.Len(), len(doc.links))
	return doc, nil
}

// ParseFile reads and parses a BEACON file.
func ParseFile(path string, opts ...Option) (*Document, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(content, opts...)
}

func readFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrFileUnreadable, path, err)
	}
	return content, nil
}

// parseLinkLine splits a link line into tokens. ok is false when the line
// has an empty source token and must be skipped.
func parseLinkLine(line Line, meta *MetaFields) (RawLink, bool, error) {
	parts := strings.Split(line.Text, "|")
	if len(parts) > 3 {
		return RawLink{}, false, &ParseError{Line: line.Number, Message: "Invalid link format", Text: line.Text}
	}

	source := normalizeWhitespace(parts[0])
	if source == "" {
		return RawLink{}, false, nil
	}

	var annotation, target string
	switch len(parts) {
	case 2:
		second := normalizeWhitespace(parts[1])
		if treatAsTarget(second, meta) {
			target = second
		} else {
			annotation = second
		}
	case 3:
		annotation = normalizeWhitespace(parts[1])
		target = normalizeWhitespace(parts[2])
	}

	return NewRawLink(source, annotation, target), true, nil
}

// treatAsTarget resolves the ambiguous second token of a two-field line.
// It depends on TARGET as parsed so far and compares against the literal
// default pattern, not against "TARGET unset".
func treatAsTarget(token string, meta *MetaFields) bool {
	if meta.GetOrDefault(FieldTarget, DefaultTarget) != DefaultTarget {
		return false
	}
	return strings.HasPrefix(token, "http://") || strings.HasPrefix(token, "https://")
}
