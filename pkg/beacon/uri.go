package beacon

import (
	"net/url"
	"regexp"
	"strings"
)

const upperHex = "0123456789ABCDEF"

var schemeRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*$`)

// PercentEncode encodes every byte outside the RFC 3986 unreserved set
// (ALPHA / DIGIT / "-" / "." / "_" / "~") as %XX.
func PercentEncode(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}

// IsValidURI reports whether s is a syntactically valid absolute URI:
// printable ASCII only, a well-formed scheme, and a host whenever the URI
// is hierarchical ("scheme://") or uses http/https.
func IsValidURI(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] <= ' ' || s[i] >= 0x7F {
			return false
		}
	}

	u, err := url.Parse(s)
	if err != nil || !schemeRegex.MatchString(u.Scheme) {
		return false
	}

	scheme := strings.ToLower(u.Scheme)
	hierarchical := strings.HasPrefix(s[len(u.Scheme)+1:], "//")
	if hierarchical || scheme == "http" || scheme == "https" {
		return u.Host != "" && u.Hostname() != ""
	}
	return u.Opaque != "" || u.Path != ""
}
