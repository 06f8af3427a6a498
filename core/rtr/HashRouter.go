package rtr

import "fmt"

// HashRouter is the fast exact-match partition: one map per HTTP method,
// holding short static paths (below the length/segment threshold).
type HashRouter[T any] struct {
	tables [methodCount]map[string]*Route[T]
}

// NewHashRouter creates a new router containing initialized hashmaps for
// the common HTTP methods. The remaining maps are created on first use.
func NewHashRouter[T any]() *HashRouter[T] {
	hr := &HashRouter[T]{}
	hr.tables[MethodGet] = make(map[string]*Route[T], 16)
	hr.tables[MethodPost] = make(map[string]*Route[T], 8)
	return hr
}

// Add registers a route under the given method and normalized path.
func (hr *HashRouter[T]) Add(method Method, path string, route *Route[T]) {
	if !method.valid() {
		return
	}
	if hr.tables[method] == nil {
		hr.tables[method] = make(map[string]*Route[T])
	}
	hr.tables[method][path] = route
}

// Lookup finds the route for the given method and exact normalized path.
func (hr *HashRouter[T]) Lookup(method Method, path string) *Route[T] {
	if !method.valid() {
		return nil
	}
	return hr.tables[method][path]
}

// ListRoutes returns every registered route for inspection.
func (hr *HashRouter[T]) ListRoutes() (routes []RouteList) {
	for m := MethodUnknown + 1; m < methodCount; m++ {
		for path, route := range hr.tables[m] {
			routes = append(routes, RouteList{
				Method:     m.String(),
				Path:       path,
				HandlerRef: fmt.Sprintf("%v", route.Handler),
			})
		}
	}
	return
}
