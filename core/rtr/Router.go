package rtr

import (
	"reflect"

	"github.com/rohanthewiz/serr"
)

// Static routes below both thresholds live in the hash partition; longer
// ones go to the trie, which amortizes their shared prefixes. The split is
// a performance heuristic - lookup order, not placement, decides matches.
const (
	staticHashMaxLen      = 24
	staticHashMaxSegments = 3
)

// Router is the route-matching engine. Per HTTP method it keeps three
// disjoint partitions - a hash map for short static paths, a radix trie
// for long static paths, and an ordered list for parameterized/wildcard
// patterns - plus a bounded LRU cache of lookup results.
//
// AddRoute is a structural mutation and must not run concurrently with
// any other call. The intended model is: register every route up front,
// then serve FindRoute from as many goroutines as you like, giving each
// worker its own LookupCache via FindRouteUsing (FindRoute itself uses
// the router-owned cache and is therefore single-goroutine).
type Router[T any] struct {
	hash   *HashRouter[T]
	trie   *TrieRouter[T]
	params *ParamRouter[T]
	cache  *LookupCache[T]
}

// New creates a router with the default lookup cache size.
func New[T any]() *Router[T] {
	return NewWithCacheSize[T](DefaultCacheSize)
}

// NewWithCacheSize creates a router whose owned cache holds up to
// cacheSize entries.
func NewWithCacheSize[T any](cacheSize int) *Router[T] {
	return &Router[T]{
		hash:   NewHashRouter[T](),
		trie:   NewTrieRouter[T](),
		params: NewParamRouter[T](),
		cache:  NewLookupCache[T](cacheSize),
	}
}

// AddRoute registers a handler under the given method and pattern.
//
// The pattern is normalized, then classified once: patterns containing
// ":" or "*" go to the parameterized list, everything else is static and
// lands in the hash map or the trie by the size thresholds. Any successful
// registration wipes the owned lookup cache, since stored paths and
// matching order may now differ.
//
// Invalid input - empty pattern, unknown method, nil handler - returns an
// error and leaves the route table and cache untouched.
func (router *Router[T]) AddRoute(method Method, pattern string, handler T) error {
	if pattern == "" {
		return serr.New("route pattern must not be empty")
	}
	if !method.valid() {
		return serr.New("unknown HTTP method", "pattern", pattern)
	}
	if isNilHandler(handler) {
		return serr.New("route handler must not be nil", "pattern", pattern)
	}

	path := NormalizePath(pattern)
	route := newRoute(path, handler)

	if isStaticPattern(path) {
		if len(path) <= staticHashMaxLen && route.SegmentCount() <= staticHashMaxSegments {
			router.hash.Add(method, path, route)
		} else {
			router.trie.Add(method, path, route)
		}
	} else {
		router.params.Add(method, route)
	}

	router.cache.Clear()
	return nil
}

// FindRoute resolves a raw request path (optionally carrying a "?query"
// suffix) to a registered handler, the extracted path parameters, and the
// parsed query parameters. A miss returns found == false; it is the
// normal outcome for unregistered paths, not an error.
//
// Results go through the router-owned cache; use FindRouteUsing to give
// each worker goroutine its own cache instance.
func (router *Router[T]) FindRoute(method Method, rawPath string) (handler T, params []Parameter, queryParams map[string]string, found bool) {
	return router.FindRouteUsing(router.cache, method, rawPath)
}

// FindRouteUsing is FindRoute with a caller-supplied lookup cache.
//
// Lookup order: cache, static hash, static trie, parameterized scan.
// Static routes always win over parameterized routes of the same
// effective path because their partitions are probed first.
//
// The cache key is the method plus the raw path including the original
// query string, so requests differing only in their query are cached as
// distinct entries. Query parameters are still parsed fresh on every
// call, cache hit or not.
//
// A worker-owned cache is only coherent while the route table is not
// mutated; callers registering routes after lookups have begun must clear
// their own caches.
func (router *Router[T]) FindRouteUsing(cache *LookupCache[T], method Method, rawPath string) (handler T, params []Parameter, queryParams map[string]string, found bool) {
	if rawPath == "" || !method.valid() {
		return
	}

	path, query := SplitPathQuery(rawPath)
	queryParams = ParseQuery(query)

	cacheKey := method.String() + " " + rawPath
	if entry, ok := cache.get(cacheKey); ok {
		return entry.handler, entry.params, queryParams, true
	}

	path = NormalizePath(path)

	route := router.hash.Lookup(method, path)
	if route == nil {
		route = router.trie.Lookup(method, path)
	}
	if route == nil {
		route, params = router.params.Lookup(method, SplitSegments(path))
	}
	if route == nil {
		return handler, nil, queryParams, false
	}

	cache.put(cacheKey, route.Handler, params)
	return route.Handler, params, queryParams, true
}

// NewCache creates an independent lookup cache sized like the router's
// own, for use with FindRouteUsing.
func (router *Router[T]) NewCache() *LookupCache[T] {
	return NewLookupCache[T](router.cache.capacity)
}

// ClearCache drops all cached lookup results from the router-owned cache.
// The route table is unaffected.
func (router *Router[T]) ClearCache() {
	router.cache.Clear()
}

// CacheStats returns hit/miss counters of the router-owned cache.
func (router *Router[T]) CacheStats() (hits, misses int64) {
	return router.cache.Stats()
}

// ListRoutes returns every registered route across all three partitions.
func (router *Router[T]) ListRoutes() []RouteList {
	routes := router.hash.ListRoutes()
	routes = append(routes, router.trie.ListRoutes()...)
	routes = append(routes, router.params.ListRoutes()...)
	return routes
}

// isNilHandler reports whether the handler boxes a nil value of a
// nillable kind. Non-nillable handler types (strings, struct values)
// are always accepted.
func isNilHandler(handler any) bool {
	if handler == nil {
		return true
	}
	v := reflect.ValueOf(handler)
	switch v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
