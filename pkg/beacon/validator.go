package beacon

import (
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"
)

const (
	// formatScanLimit is the last 0-based line index inspected for the FORMAT marker.
	formatScanLimit = 10
	// formatLateIndex is the last 0-based line index where the FORMAT marker is expected.
	formatLateIndex = 5
)

var uppercaseName = regexp.MustCompile(`^[A-Z]+$`)

// Validator runs every check group over BEACON content.
// A Validator holds no per-call state and is safe for concurrent use.
type Validator struct {
	opts options
}

// NewValidator creates a validator.
func NewValidator(opts ...Option) *Validator {
	return &Validator{opts: newOptions(opts)}
}

// Validate is a shorthand for NewValidator(opts...).Validate(content).
func Validate(content []byte, opts ...Option) Result {
	return NewValidator(opts...).Validate(content)
}

// Validate checks content. It never fails on malformed content: a parse
// failure becomes a single "Parse error" diagnostic and stops the pass.
func (v *Validator) Validate(content []byte) Result {
	return v.ValidateString(string(content))
}

// ValidateString checks content held in a string.
func (v *Validator) ValidateString(content string) Result {
	var b resultBuilder

	doc, err := ParseString(content, WithLogger(v.opts.logger))
	if err != nil {
		v.opts.logger.Verbose("Parse failed: %v", err)
		b.addError("Parse error: %s", err.Error())
		return b.freeze()
	}

	p := pass{content: content, lines: Classify(content), doc: doc, out: &b}
	p.checkStructure()
	p.checkMetaFields()
	p.checkLinks()
	p.checkBestPractices()

	v.opts.logger.Verbose("Validation finished: %d error(s), %d warning(s), %d info",
		len(b.errors), len(b.warnings), len(b.info))
	return b.freeze()
}

// ValidateFile reads and checks a file. I/O failures yield a single error
// and no parsing is attempted.
func (v *Validator) ValidateFile(path string) Result {
	var b resultBuilder

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			b.addError("File not found: %s", path)
		} else {
			b.addError("File is not readable: %s", path)
		}
		return b.freeze()
	}
	if info.IsDir() {
		b.addError("File is not readable: %s", path)
		return b.freeze()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		b.addError("Could not read file: %s", path)
		return b.freeze()
	}
	return v.Validate(content)
}

// pass holds the inputs of one validation run.
type pass struct {
	content string
	lines   []Line
	doc     *Document
	out     *resultBuilder
}

func (p *pass) checkStructure() {
	if strings.HasPrefix(p.content, byteOrderMark) {
		p.out.addInfo("File contains UTF-8 BOM")
	}

	hasFormat := false
	for i, line := range p.lines {
		if line.Kind == KindBlank {
			continue
		}
		if line.Kind == KindFormatMarker {
			hasFormat = true
			if i > formatLateIndex {
				p.out.addWarning("FORMAT line found at line %d - should be near the beginning", line.Number)
			}
			break
		}
		if i > formatScanLimit {
			break
		}
	}
	if !hasFormat {
		p.out.addWarning("No #FORMAT: BEACON line found - recommended for BEACON files")
	}

	for _, line := range p.lines {
		if line.Kind != KindMetaField && line.Kind != KindFormatMarker {
			continue
		}
		if !uppercaseName.MatchString(line.Name) {
			p.out.addWarning("Meta field '#%s:' on line %d uses non-standard casing. "+
				"BEACON specification requires uppercase A-Z only (METAFIELD = +( %%x41-5A ))",
				line.Name, line.Number)
		}
	}

	normalized := strings.ReplaceAll(p.content, "\r", "\n")
	if !strings.HasSuffix(normalized, "\n") {
		p.out.addWarning("File should end with a line break")
	}
}

func (p *pass) checkMetaFields() {
	meta := p.doc.MetaFields()

	for _, w := range p.doc.Warnings() {
		p.out.addWarning("%s", w.Message)
	}

	for name := range meta.All() {
		if !IsKnownMetaField(name) {
			p.out.addWarning("Unknown meta field: %s", name)
		}
	}

	for _, field := range uriMetaFields {
		if value, ok := meta.Get(field); ok && checkURIField(value) != nil {
			p.out.addError("Invalid URI in %s: %s", field, value)
		}
	}

	if value, ok := meta.Get(FieldRelation); ok && checkRelation(value) != nil {
		p.out.addError("RELATION must be a valid URI or URI pattern: %s", value)
	}

	if value, ok := meta.Get(FieldTimestamp); ok && checkTimestamp(value) != nil {
		p.out.addError("Invalid TIMESTAMP format. Expected ISO 8601 date/datetime: %s", value)
	}

	if value, ok := meta.Get(FieldUpdate); ok && checkUpdate(value) != nil {
		p.out.addError("Invalid UPDATE value: %s (must be one of: %s)", value, strings.Join(UpdateFrequencies, ", "))
	}

	if value, ok := meta.Get(FieldContact); ok && checkContact(value) != nil {
		p.out.addWarning("CONTACT field should contain a valid email address: %s", value)
	}

	for _, field := range recommendedMetaFields {
		if !meta.Has(field) {
			p.out.addInfo("Recommended meta field missing: %s", field)
		}
	}
}

func (p *pass) checkLinks() {
	if p.doc.LinkCount() == 0 {
		p.out.addWarning("No links found in BEACON file")
		return
	}

	links := p.doc.Links()

	seen := make(map[string]struct{}, len(links))
	duplicates := 0
	invalid := 0
	for _, link := range links {
		id := link.ID().String()
		if _, dup := seen[id]; dup {
			duplicates++
		} else {
			seen[id] = struct{}{}
		}

		for _, uri := range []string{link.Source, link.Target, link.Relation} {
			if !IsValidURI(uri) {
				invalid++
			}
		}
	}

	if duplicates > 0 {
		p.out.addWarning("Found %d duplicate links", duplicates)
	}
	if invalid > 0 {
		p.out.addError("Found %d invalid URIs in constructed links", invalid)
	}

	p.out.addInfo("Total links: %d", p.doc.LinkCount())
}

func (p *pass) checkBestPractices() {
	p.out.addInfo("Recommended MIME type: text/plain")
	p.out.addInfo("Recommended file extension: .txt")

	meta := p.doc.MetaFields()
	for _, field := range uriMetaFields {
		if value, ok := meta.Get(field); ok && strings.HasPrefix(value, "http://") {
			p.out.addInfo("Consider using HTTPS instead of HTTP for security")
			return
		}
	}
}
