package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/beacon/pkg/beacon"
)

// MetaEntry is one header field, kept in file order.
type MetaEntry struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// RawEntry holds the tokens of a link line as written.
type RawEntry struct {
	Source     string `json:"source" yaml:"source"`
	Annotation string `json:"annotation,omitempty" yaml:"annotation,omitempty"`
	Target     string `json:"target,omitempty" yaml:"target,omitempty"`
}

// LinkEntry is a constructed link with its identity.
type LinkEntry struct {
	ID         string   `json:"id" yaml:"id"`
	Raw        RawEntry `json:"raw" yaml:"raw"`
	Source     string   `json:"sourceIdentifier" yaml:"sourceIdentifier"`
	Target     string   `json:"targetIdentifier" yaml:"targetIdentifier"`
	Relation   string   `json:"relationType" yaml:"relationType"`
	Annotation string   `json:"annotation,omitempty" yaml:"annotation,omitempty"`
}

// Checksum fingerprints the dump content.
type Checksum struct {
	Raw        string `json:"raw" yaml:"raw"`
	Normalized string `json:"normalized" yaml:"normalized"`
}

// DocumentView is the serialisable form of a parsed BEACON file.
type DocumentView struct {
	Source    string      `json:"source,omitempty" yaml:"source,omitempty"`
	Checksum  *Checksum   `json:"checksum,omitempty" yaml:"checksum,omitempty"`
	Meta      []MetaEntry `json:"meta" yaml:"meta"`
	LinkCount int         `json:"linkCount" yaml:"linkCount"`
	Links     []LinkEntry `json:"links" yaml:"links"`
	Warnings  []string    `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// FromDocument builds the view, constructing every link. limit caps the
// number of links listed; zero or negative lists all.
func FromDocument(source string, doc *beacon.Document, limit int) DocumentView {
	v := DocumentView{
		Source:    source,
		Meta:      []MetaEntry{},
		LinkCount: doc.LinkCount(),
		Links:     []LinkEntry{},
	}
	for name, value := range doc.MetaFields().All() {
		v.Meta = append(v.Meta, MetaEntry{Name: name, Value: value})
	}

	raws := doc.RawLinks()
	for i, link := range doc.Links() {
		if limit > 0 && i >= limit {
			break
		}
		annotation, _ := raws[i].Annotation()
		target, _ := raws[i].Target()
		v.Links = append(v.Links, LinkEntry{
			ID:         link.ID().String(),
			Raw:        RawEntry{Source: raws[i].Source(), Annotation: annotation, Target: target},
			Source:     link.Source,
			Target:     link.Target,
			Relation:   link.Relation,
			Annotation: link.Annotation,
		})
	}

	for _, w := range doc.Warnings() {
		v.Warnings = append(v.Warnings, w.Message)
	}
	return v
}

// WriteDocument renders a parsed document. The text form lists meta
// fields, then one tab-separated line per link.
func (w *Writer) WriteDocument(v DocumentView) error {
	if w.format != FormatText {
		return w.encode(v)
	}

	p := newPalette(w.out, w.styled)
	var b strings.Builder

	if v.Checksum != nil {
		b.WriteString(p.muted("sha256: " + v.Checksum.Raw))
		b.WriteString("\n\n")
	}

	b.WriteString(p.heading("META:"))
	b.WriteString("\n")
	for _, m := range v.Meta {
		fmt.Fprintf(&b, "  #%s: %s\n", m.Name, m.Value)
	}

	b.WriteString("\n")
	b.WriteString(p.heading(fmt.Sprintf("LINKS (%d):", v.LinkCount)))
	b.WriteString("\n")
	for _, l := range v.Links {
		fields := []string{l.Source, l.Relation, l.Target}
		if l.Annotation != "" {
			fields = append(fields, l.Annotation)
		}
		b.WriteString("  ")
		b.WriteString(strings.Join(fields, "\t"))
		b.WriteString("\n")
	}
	if hidden := v.LinkCount - len(v.Links); hidden > 0 {
		b.WriteString(p.muted(fmt.Sprintf("  %s %d more", SymbolBullet, hidden)))
		b.WriteString("\n")
	}

	if len(v.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(p.heading("WARNINGS:"))
		b.WriteString("\n")
		for _, msg := range v.Warnings {
			b.WriteString("  - ")
			b.WriteString(p.warning(msg))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w.out, b.String())
	return err
}
