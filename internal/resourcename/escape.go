package resourcename

import (
	"net/url"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// isPathChar reports whether c may appear unescaped in a path segment
// (rule pchar of RFC 3986, excluding pct-encoded).
func isPathChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '.', '_', '~', // unreserved
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=', // sub-delims
		':', '@':
		return true
	}
	return false
}

// EscapeSegment percent-encodes s so that it can be used as a single path
// segment. A space becomes %20 and '+' is kept as is.
func EscapeSegment(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isPathChar(s[i]) {
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
		if isPathChar(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

// UnescapeSegment decodes percent-encoded octets of a single path segment.
// '+' decodes to itself, not to a space.
func UnescapeSegment(s string) (string, error) {
	return url.PathUnescape(s)
}

// NormalizePath decodes and re-encodes every '/'-separated part of s, so
// that partially encoded multi-segment values end up in one canonical form.
// The separators themselves are kept as structure.
func NormalizePath(s string) (string, error) {
	parts := strings.Split(s, "/")
	for i, p := range parts {
		d, err := UnescapeSegment(p)
		if err != nil {
			return "", err
		}
		parts[i] = EscapeSegment(d)
	}
	return strings.Join(parts, "/"), nil
}
