// Package rroute is an in-process HTTP path router: given a method and a
// URL path it returns the registered handler plus the extracted path and
// query parameters. It performs no I/O and knows nothing about requests,
// responses, or connections - the host server owns all of that and simply
// translates a miss into its 404 handling.
//
// The router is generic over the handler payload, so the host chooses its
// own handler signature:
//
//	r := rroute.NewRouter[http.HandlerFunc]()
//	r.Get("/users/:id", getUser)
//	handler, params, query, ok := r.Lookup("GET", "/users/42?full=1")
package rroute

import (
	"github.com/rohanthewiz/rroute/core/rtr"
)

// Router is the user-facing facade over the matching engine in core/rtr.
type Router[T any] struct {
	engine *rtr.Router[T]
}

// NewRouter creates a router with the default lookup cache size.
func NewRouter[T any]() *Router[T] {
	return &Router[T]{engine: rtr.New[T]()}
}

// NewRouterWithCacheSize creates a router whose lookup cache holds up to
// cacheSize entries.
func NewRouterWithCacheSize[T any](cacheSize int) *Router[T] {
	return &Router[T]{engine: rtr.NewWithCacheSize[T](cacheSize)}
}

// Handle registers a handler for the given method string and pattern.
// The method is parsed case-insensitively; unrecognized methods are an error.
func (r *Router[T]) Handle(method string, pattern string, handler T) error {
	return r.engine.AddRoute(rtr.ParseMethod(method), pattern, handler)
}

// Get registers your handler for the given GET pattern.
func (r *Router[T]) Get(pattern string, handler T) error {
	return r.engine.AddRoute(rtr.MethodGet, pattern, handler)
}

// Post registers your handler for the given POST pattern.
func (r *Router[T]) Post(pattern string, handler T) error {
	return r.engine.AddRoute(rtr.MethodPost, pattern, handler)
}

// Put registers your handler for the given PUT pattern.
func (r *Router[T]) Put(pattern string, handler T) error {
	return r.engine.AddRoute(rtr.MethodPut, pattern, handler)
}

// Patch registers your handler for the given PATCH pattern.
func (r *Router[T]) Patch(pattern string, handler T) error {
	return r.engine.AddRoute(rtr.MethodPatch, pattern, handler)
}

// Delete registers your handler for the given DELETE pattern.
func (r *Router[T]) Delete(pattern string, handler T) error {
	return r.engine.AddRoute(rtr.MethodDelete, pattern, handler)
}

// Head registers your handler for the given HEAD pattern.
func (r *Router[T]) Head(pattern string, handler T) error {
	return r.engine.AddRoute(rtr.MethodHead, pattern, handler)
}

// Options registers your handler for the given OPTIONS pattern.
func (r *Router[T]) Options(pattern string, handler T) error {
	return r.engine.AddRoute(rtr.MethodOptions, pattern, handler)
}

// Connect registers your handler for the given CONNECT pattern.
func (r *Router[T]) Connect(pattern string, handler T) error {
	return r.engine.AddRoute(rtr.MethodConnect, pattern, handler)
}

// Trace registers your handler for the given TRACE pattern.
func (r *Router[T]) Trace(pattern string, handler T) error {
	return r.engine.AddRoute(rtr.MethodTrace, pattern, handler)
}

// Lookup resolves a method string and raw request path (which may carry a
// "?query" suffix) to a handler, path parameters, and query parameters.
// found is false on a miss.
func (r *Router[T]) Lookup(method string, rawPath string) (handler T, params []rtr.Parameter, queryParams map[string]string, found bool) {
	return r.engine.FindRoute(rtr.ParseMethod(method), rawPath)
}

// LookupUsing is Lookup with a caller-supplied cache, for serving
// concurrent lookups with one cache per worker goroutine.
func (r *Router[T]) LookupUsing(cache *rtr.LookupCache[T], method string, rawPath string) (handler T, params []rtr.Parameter, queryParams map[string]string, found bool) {
	return r.engine.FindRouteUsing(cache, rtr.ParseMethod(method), rawPath)
}

// NewCache creates an independent lookup cache for LookupUsing.
func (r *Router[T]) NewCache() *rtr.LookupCache[T] {
	return r.engine.NewCache()
}

// ClearCache drops all cached lookup results; the route table is unaffected.
func (r *Router[T]) ClearCache() {
	r.engine.ClearCache()
}

// ListRoutes returns every registered route for inspection.
func (r *Router[T]) ListRoutes() []rtr.RouteList {
	return r.engine.ListRoutes()
}

// Group creates a route group rooted at prefix. Middleware are handler
// wrappers applied, outermost first, to every handler registered through
// the group.
func (r *Router[T]) Group(prefix string, middleware ...func(T) T) *Group[T] {
	return &Group[T]{
		prefix:   prefix,
		router:   r,
		wrappers: middleware,
	}
}
