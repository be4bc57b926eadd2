package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/vvka-141/beacon/pkg/beacon"
)

// Calculator computes dump checksums.
type Calculator interface {
	CalculateRaw(content []byte) string
	CalculateNormalized(content []byte) string
}

// SHA256 implements Calculator with SHA-256. It is a zero-size type and
// safe for concurrent use.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	hash := sha256.Sum256([]byte(c.normalize(string(content))))
	return hex.EncodeToString(hash[:])
}

func (c SHA256) normalize(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	for _, line := range beacon.Classify(content) {
		var text string
		switch line.Kind {
		case beacon.KindBlank, beacon.KindComment:
			continue
		case beacon.KindMetaField, beacon.KindFormatMarker:
			text = "#" + strings.ToUpper(line.Name) + ": " + strings.Join(strings.Fields(line.Value), " ")
		default:
			text = collapseLinkLine(line.Text)
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	return b.String()
}

// collapseLinkLine normalizes whitespace inside each "|" separated token.
func collapseLinkLine(text string) string {
	parts := strings.Split(text, "|")
	for i, p := range parts {
		parts[i] = strings.Join(strings.Fields(p), " ")
	}
	return strings.Join(parts, "|")
}
