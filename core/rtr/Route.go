package rtr

import (
	"strings"

	"github.com/rohanthewiz/rroute/consts"
)

// Route is a single registered route entry. It is created once at
// registration and never mutated afterwards, so lookups may hold on to it
// (the cache does) without coordination.
type Route[T any] struct {
	// Pattern is the normalized registration pattern, e.g. /users/:id
	Pattern string
	// Handler is the payload returned to the caller on a match
	Handler T
	// ParamNames holds capture names in order of appearance.
	// A trailing wildcard appends the literal marker "*".
	ParamNames []string
	// Wildcard is set when the last pattern segment is a "*" catch-all
	Wildcard bool

	// segments are the pattern split on "/"
	segments []string
	// midWildcard marks a "*" before the final segment; such a route is
	// stored but can never match (mid-pattern wildcards are unsupported)
	midWildcard bool
}

// newRoute builds a route entry from an already-normalized pattern.
func newRoute[T any](pattern string, handler T) *Route[T] {
	route := &Route[T]{
		Pattern:  pattern,
		Handler:  handler,
		segments: SplitSegments(pattern),
	}

	for i, seg := range route.segments {
		switch seg[0] {
		case consts.RuneColon:
			route.ParamNames = append(route.ParamNames, seg[1:])
		case consts.RuneAsterisk:
			if i == len(route.segments)-1 {
				route.Wildcard = true
				route.ParamNames = append(route.ParamNames, consts.WildcardKey)
			} else {
				route.midWildcard = true
			}
		}
	}

	return route
}

// isStaticPattern reports whether the pattern has no captures or wildcards.
// Classification happens once, at registration.
func isStaticPattern(pattern string) bool {
	return strings.IndexByte(pattern, consts.RuneColon) == -1 &&
		strings.IndexByte(pattern, consts.RuneAsterisk) == -1
}

// SegmentCount returns the number of pattern segments.
func (route *Route[T]) SegmentCount() int {
	return len(route.segments)
}
