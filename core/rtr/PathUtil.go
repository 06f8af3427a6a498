package rtr

import (
	"strings"

	"github.com/rohanthewiz/rroute/consts"
)

// NormalizePath brings a request or route path into canonical form:
// a single leading slash, duplicate slashes collapsed, and no trailing
// slash unless the path is exactly "/". An empty path normalizes to "/".
// The function is idempotent.
// Though we could have used the standard path package we wanted to maintain fine control.
func NormalizePath(path string) string {
	segments := SplitSegments(path)
	if len(segments) == 0 {
		return "/"
	}
	return "/" + strings.Join(segments, "/")
}

// SplitSegments splits a path on "/" into its non-empty segments.
// Empty segments from leading, trailing, or duplicate slashes are dropped.
func SplitSegments(path string) []string {
	var segments []string

	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == consts.RuneFwdSlash {
			if i > start {
				segments = append(segments, path[start:i])
			}
			start = i + 1
		}
	}
	return segments
}

// SplitPathQuery splits a raw request path into the path proper and the
// query string following the first "?". The "?" itself is dropped.
func SplitPathQuery(rawPath string) (path string, query string) {
	queryPos := strings.IndexByte(rawPath, consts.RuneQuestion)
	if queryPos != -1 {
		return rawPath[:queryPos], rawPath[queryPos+1:]
	}
	return rawPath, ""
}

// ParseQuery parses the substring after "?" into a key-unique map.
// Pairs are split on "&", keys from values on the first "=". A pair with
// no "=" is a key with an empty value. Keys and values are percent-decoded
// independently. A duplicate key overwrites the earlier value.
// Returns nil for an empty query string.
func ParseQuery(query string) map[string]string {
	if query == "" {
		return nil
	}

	params := make(map[string]string)

	for len(query) > 0 {
		pair := query
		if amp := strings.IndexByte(query, consts.RuneAmpersand); amp != -1 {
			pair = query[:amp]
			query = query[amp+1:]
		} else {
			query = ""
		}

		if pair == "" {
			continue
		}

		key, value := pair, ""
		if eq := strings.IndexByte(pair, consts.RuneEqual); eq != -1 {
			key = pair[:eq]
			value = pair[eq+1:]
		}

		params[DecodeComponent(key)] = DecodeComponent(value)
	}

	return params
}

// DecodeComponent percent-decodes a single query key or value.
// "+" becomes a space and "%XY" with two hex digits becomes the byte X*16+Y.
// An incomplete or invalid escape is passed through literally - never an
// error, never truncation. The bounds check is i+2 < len, not <=, so a
// truncated escape at the end of the string cannot read past it.
func DecodeComponent(s string) string {
	if strings.IndexByte(s, consts.RunePercent) == -1 &&
		strings.IndexByte(s, consts.RunePlus) == -1 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); {
		switch s[i] {
		case consts.RunePlus:
			sb.WriteByte(' ')
			i++
		case consts.RunePercent:
			if i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]) {
				sb.WriteByte(hexValue(s[i+1])<<4 | hexValue(s[i+2]))
				i += 3
			} else {
				sb.WriteByte(consts.RunePercent)
				i++
			}
		default:
			sb.WriteByte(s[i])
			i++
		}
	}

	return sb.String()
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}
