package beacon

// RawLink is a link line as it appears in the file, before any URI pattern
// expansion. It is immutable; empty tokens are stored as absent.
type RawLink struct {
	source     string
	annotation string
	target     string
}

// NewRawLink creates a raw link. Empty annotation or target tokens mean
// "absent".
func NewRawLink(source, annotation, target string) RawLink {
	return RawLink{source: source, annotation: annotation, target: target}
}

// Source returns the source token. It is never empty for links produced by the parser.
func (r RawLink) Source() string { return r.source }

// Annotation returns the annotation token and whether it is present.
func (r RawLink) Annotation() (string, bool) { return r.annotation, r.annotation != "" }

// Target returns the target token and whether it is present.
func (r RawLink) Target() (string, bool) { return r.target, r.target != "" }

// HasAnnotation reports whether an annotation token is present.
func (r RawLink) HasAnnotation() bool { return r.annotation != "" }

// HasTarget reports whether a target token is present.
func (r RawLink) HasTarget() bool { return r.target != "" }

// Link is a fully constructed link. An empty Annotation means the link has
// no annotation.
type Link struct {
	Source     string `json:"sourceIdentifier" yaml:"sourceIdentifier"`
	Target     string `json:"targetIdentifier" yaml:"targetIdentifier"`
	Relation   string `json:"relationType" yaml:"relationType"`
	Annotation string `json:"annotation,omitempty" yaml:"annotation,omitempty"`
}

// HasAnnotation reports whether the link carries an annotation.
func (l Link) HasAnnotation() bool { return l.Annotation != "" }

// ParseWarning is a non-fatal problem found while parsing.
type ParseWarning struct {
	Line    int
	Message string
}

// Document is the result of a successful parse.
type Document struct {
	meta     *MetaFields
	links    []RawLink
	warnings []ParseWarning
}

// MetaFields returns the meta field table.
func (d *Document) MetaFields() *MetaFields { return d.meta }

// RawLinks returns the raw links in file order.
func (d *Document) RawLinks() []RawLink {
	out := make([]RawLink, len(d.links))
	copy(out, d.links)
	return out
}

// LinkCount returns the number of raw links.
func (d *Document) LinkCount() int { return len(d.links) }

// Warnings returns the non-fatal parse warnings in file order.
func (d *Document) Warnings() []ParseWarning {
	out := make([]ParseWarning, len(d.warnings))
	copy(out, d.warnings)
	return out
}

// Links constructs every link on demand. Nothing is cached.
func (d *Document) Links() []Link {
	links := make([]Link, 0, len(d.links))
	for _, raw := range d.links {
		links = append(links, Construct(d.meta, raw))
	}
	return links
}
