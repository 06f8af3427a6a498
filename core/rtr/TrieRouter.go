package rtr

import "fmt"

// TrieRouter is the static-trie partition: one radix tree per HTTP method,
// holding long static paths whose shared prefixes make a flat map wasteful.
type TrieRouter[T any] struct {
	trees [methodCount]Tree[T]
}

// NewTrieRouter creates a new trie router. Trees are zero-value ready.
func NewTrieRouter[T any]() *TrieRouter[T] {
	return &TrieRouter[T]{}
}

// Add registers a route under the given method and normalized path.
func (tr *TrieRouter[T]) Add(method Method, path string, route *Route[T]) {
	if !method.valid() {
		return
	}
	tr.trees[method].Add(path, route)
}

// Lookup finds the route for the given method and exact normalized path.
func (tr *TrieRouter[T]) Lookup(method Method, path string) *Route[T] {
	if !method.valid() {
		return nil
	}
	return tr.trees[method].Lookup(path)
}

// ListRoutes returns every registered route for inspection.
func (tr *TrieRouter[T]) ListRoutes() (routes []RouteList) {
	for m := MethodUnknown + 1; m < methodCount; m++ {
		method := m.String()
		tr.trees[m].each(func(route *Route[T]) {
			routes = append(routes, RouteList{
				Method:     method,
				Path:       route.Pattern,
				HandlerRef: fmt.Sprintf("%v", route.Handler),
			})
		})
	}
	return
}
