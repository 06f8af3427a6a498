package rtr

import "fmt"

// ParamRouter is the parameterized partition: per method, an ordered list
// of (pattern, route) entries for routes containing captures or wildcards,
// plus a segment-count index used to prune candidates before the linear scan.
type ParamRouter[T any] struct {
	lists [methodCount]paramList[T]
}

// paramList holds one method's parameterized routes in insertion order.
// byCount maps a pattern's segment count to indices into routes; wildcard
// patterns are left out of the index because their effective segment count
// depends on how much the wildcard swallows.
type paramList[T any] struct {
	routes  []*Route[T]
	byCount map[int][]int
}

// NewParamRouter creates a new parameterized-route router.
func NewParamRouter[T any]() *ParamRouter[T] {
	return &ParamRouter[T]{}
}

// Add appends a route to the method's list and indexes its segment count.
func (pr *ParamRouter[T]) Add(method Method, route *Route[T]) {
	if !method.valid() {
		return
	}
	pr.lists[method].add(route)
}

func (pl *paramList[T]) add(route *Route[T]) {
	index := len(pl.routes)
	pl.routes = append(pl.routes, route)

	if !route.Wildcard {
		if pl.byCount == nil {
			pl.byCount = make(map[int][]int)
		}
		count := route.SegmentCount()
		pl.byCount[count] = append(pl.byCount[count], index)
	}
}

// Lookup scans the method's parameterized routes for the first structural
// match against the request's path segments.
func (pr *ParamRouter[T]) Lookup(method Method, pathSegments []string) (*Route[T], []Parameter) {
	if !method.valid() {
		return nil, nil
	}
	return pr.lists[method].lookup(pathSegments)
}

// lookup tests exact-segment-count candidates first (cheap index prune),
// then falls back to the full list in insertion order. The fallback exists
// to catch wildcard routes, whose pattern segment count never equals the
// path's when the wildcard consumes more than one segment.
func (pl *paramList[T]) lookup(pathSegments []string) (*Route[T], []Parameter) {
	for _, index := range pl.byCount[len(pathSegments)] {
		route := pl.routes[index]
		if params, ok := route.match(pathSegments); ok {
			return route, params
		}
	}

	for _, route := range pl.routes {
		if !route.Wildcard && route.SegmentCount() == len(pathSegments) {
			continue // already tested via the index
		}
		if params, ok := route.match(pathSegments); ok {
			return route, params
		}
	}

	return nil, nil
}

// ListRoutes returns every registered route for inspection.
func (pr *ParamRouter[T]) ListRoutes() (routes []RouteList) {
	for m := MethodUnknown + 1; m < methodCount; m++ {
		for _, route := range pr.lists[m].routes {
			routes = append(routes, RouteList{
				Method:     m.String(),
				Path:       route.Pattern,
				HandlerRef: fmt.Sprintf("%v", route.Handler),
			})
		}
	}
	return
}
