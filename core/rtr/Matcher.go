package rtr

import (
	"strings"

	"github.com/rohanthewiz/rroute/consts"
)

// match compares the request path segments pairwise against the route's
// pattern segments.
//
// Without a wildcard the segment counts must be equal and every pattern
// segment either matches the path segment literally or begins with ":" and
// captures it. With a trailing wildcard the fixed segments are matched the
// same way and the remaining path segments are rejoined with "/" and bound
// to the reserved key "*". A wildcard anywhere but last never matches.
//
// Captures are collected locally and only returned on a full match, so a
// failed candidate leaves nothing behind.
func (route *Route[T]) match(pathSegments []string) (params []Parameter, matched bool) {
	if route.midWildcard {
		return nil, false
	}

	fixed := len(route.segments)
	if route.Wildcard {
		fixed-- // everything before the "*" matches segment for segment
		if len(pathSegments) < fixed {
			return nil, false
		}
	} else if len(pathSegments) != fixed {
		return nil, false
	}

	if len(route.ParamNames) > 0 {
		params = make([]Parameter, 0, len(route.ParamNames))
	}

	for i := 0; i < fixed; i++ {
		pat := route.segments[i]
		if pat[0] == consts.RuneColon {
			params = append(params, Parameter{Key: pat[1:], Value: pathSegments[i]})
			continue
		}
		if pat != pathSegments[i] {
			return nil, false
		}
	}

	if route.Wildcard {
		params = append(params, Parameter{
			Key:   consts.WildcardKey,
			Value: strings.Join(pathSegments[fixed:], "/"),
		})
	}

	return params, true
}
