package rroute

import (
	"path"
)

// Group represents a route group with a common prefix and middleware.
// Routes registered through the group get the prefix prepended and every
// group middleware applied around their handler. Groups can be nested to
// build hierarchical route structures.
//
// Because the router is handler-agnostic, middleware here are plain
// handler wrappers (func(T) T) composed at registration time rather than
// a runtime chain.
type Group[T any] struct {
	// prefix is the URL path prefix for all routes in this group
	prefix string
	// router is the facade routes are ultimately registered on
	router *Router[T]
	// wrappers are applied around each handler, first wrapper outermost
	wrappers []func(T) T
}

// Group creates a sub-group with an additional prefix and optional
// middleware. The child inherits all parent middleware.
// Example: apiGroup.Group("/users", authWrap) registers under /api/users.
func (g *Group[T]) Group(prefix string, middleware ...func(T) T) *Group[T] {
	wrappers := make([]func(T) T, 0, len(g.wrappers)+len(middleware))
	wrappers = append(wrappers, g.wrappers...)
	wrappers = append(wrappers, middleware...)

	return &Group[T]{
		prefix:   path.Join(g.prefix, prefix),
		router:   g.router,
		wrappers: wrappers,
	}
}

// Use adds middleware to the group, affecting routes registered after
// this call.
func (g *Group[T]) Use(middleware ...func(T) T) {
	g.wrappers = append(g.wrappers, middleware...)
}

// Get registers a GET route with the group prefix
func (g *Group[T]) Get(pattern string, handler T) error {
	return g.addRoute("GET", pattern, handler)
}

// Post registers a POST route with the group prefix
func (g *Group[T]) Post(pattern string, handler T) error {
	return g.addRoute("POST", pattern, handler)
}

// Put registers a PUT route with the group prefix
func (g *Group[T]) Put(pattern string, handler T) error {
	return g.addRoute("PUT", pattern, handler)
}

// Patch registers a PATCH route with the group prefix
func (g *Group[T]) Patch(pattern string, handler T) error {
	return g.addRoute("PATCH", pattern, handler)
}

// Delete registers a DELETE route with the group prefix
func (g *Group[T]) Delete(pattern string, handler T) error {
	return g.addRoute("DELETE", pattern, handler)
}

// Head registers a HEAD route with the group prefix
func (g *Group[T]) Head(pattern string, handler T) error {
	return g.addRoute("HEAD", pattern, handler)
}

// Options registers an OPTIONS route with the group prefix
func (g *Group[T]) Options(pattern string, handler T) error {
	return g.addRoute("OPTIONS", pattern, handler)
}

// Connect registers a CONNECT route with the group prefix
func (g *Group[T]) Connect(pattern string, handler T) error {
	return g.addRoute("CONNECT", pattern, handler)
}

// Trace registers a TRACE route with the group prefix
func (g *Group[T]) Trace(pattern string, handler T) error {
	return g.addRoute("TRACE", pattern, handler)
}

// addRoute joins the group prefix with the route pattern, wraps the
// handler with the group middleware (reverse order, so the first wrapper
// ends up outermost), and registers the result on the router.
func (g *Group[T]) addRoute(method, pattern string, handler T) error {
	fullPath := path.Join("/", g.prefix, pattern)

	final := handler
	for i := len(g.wrappers) - 1; i >= 0; i-- {
		final = g.wrappers[i](final)
	}

	return g.router.Handle(method, fullPath, final)
}
