package beacon

import (
	"regexp"
	"strings"
)

// LineKind tags a line with the grammar rule it matched.
type LineKind int

const (
	// KindBlank is an empty or whitespace-only line.
	KindBlank LineKind = iota
	// KindFormatMarker is a "#FORMAT: BEACON" line.
	KindFormatMarker
	// KindMetaField is a well-formed "#NAME: value" line.
	KindMetaField
	// KindMalformedMeta starts with '#' and a letter but is not a meta field.
	KindMalformedMeta
	// KindComment starts with '#' not followed by a letter.
	KindComment
	// KindLink is any other line.
	KindLink
)

func (k LineKind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindFormatMarker:
		return "format"
	case KindMetaField:
		return "meta"
	case KindMalformedMeta:
		return "malformed-meta"
	case KindComment:
		return "comment"
	case KindLink:
		return "link"
	default:
		return "unknown"
	}
}

// Line is a single classified line.
type Line struct {
	Number int      // 1-based
	Kind   LineKind // grammar rule matched
	Text   string   // trimmed line content
	Name   string   // field name as written (meta and format lines)
	Value  string   // trimmed field value (meta and format lines)
}

// lineTrimSet matches the characters stripped from both ends of a line.
const lineTrimSet = " \t\n\r\x00\x0B"

var (
	formatLineRegex = regexp.MustCompile(`(?i)^#FORMAT\s*:\s*BEACON\s*$`)
	metaLineRegex   = regexp.MustCompile(`^#([A-Za-z]+)\s*:\s*(.*)$`)
	metaLikeRegex   = regexp.MustCompile(`^#[A-Za-z]`)
	whitespaceRun   = regexp.MustCompile(`[\t\n\v\f\r ]+`)
)

// StripBOM removes a leading UTF-8 byte order mark.
func StripBOM(content string) string {
	return strings.TrimPrefix(content, byteOrderMark)
}

// SplitLines strips a BOM, normalises "\r\n" and "\r" to "\n" and splits
// the content into lines. A trailing line break yields a final empty line.
func SplitLines(content string) []string {
	content = StripBOM(content)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return strings.Split(content, "\n")
}

// ClassifyLine tags one raw line. number is the 1-based line number.
func ClassifyLine(number int, raw string) Line {
	text := strings.Trim(raw, lineTrimSet)
	line := Line{Number: number, Text: text}

	switch {
	case text == "":
		line.Kind = KindBlank
	case !strings.HasPrefix(text, "#"):
		line.Kind = KindLink
	default:
		m := metaLineRegex.FindStringSubmatch(text)
		switch {
		case m != nil:
			line.Kind = KindMetaField
			if formatLineRegex.MatchString(text) {
				line.Kind = KindFormatMarker
			}
			line.Name = m[1]
			line.Value = strings.Trim(m[2], lineTrimSet)
		case metaLikeRegex.MatchString(text):
			line.Kind = KindMalformedMeta
		default:
			line.Kind = KindComment
		}
	}
	return line
}

// Classify splits content into lines and classifies each one.
func Classify(content string) []Line {
	raw := SplitLines(content)
	lines := make([]Line, len(raw))
	for i, r := range raw {
		lines[i] = ClassifyLine(i+1, r)
	}
	return lines
}

// normalizeWhitespace collapses whitespace runs to a single space and trims.
func normalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
