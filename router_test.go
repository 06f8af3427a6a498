package rroute_test

import (
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rroute"
)

func TestRouterVerbsAndLookup(t *testing.T) {
	r := rroute.NewRouter[string]()

	assert.Equal(t, r.Get("/things/:id", "get thing"), nil)
	assert.Equal(t, r.Post("/things", "post thing"), nil)

	data, params, query, found := r.Lookup("get", "/things/12?expand=true")
	assert.True(t, found)
	assert.Equal(t, data, "get thing")
	assert.Equal(t, params[0].Value, "12")
	assert.Equal(t, query["expand"], "true")

	data, _, _, found = r.Lookup("POST", "/things")
	assert.True(t, found)
	assert.Equal(t, data, "post thing")

	// unregistered method on a registered path
	_, _, _, found = r.Lookup("DELETE", "/things")
	assert.Equal(t, found, false)
}

func TestRouterHandleRejectsUnknownMethod(t *testing.T) {
	r := rroute.NewRouter[string]()

	err := r.Handle("BREW", "/coffee", "pot")
	assert.True(t, err != nil)

	_, _, _, found := r.Lookup("BREW", "/coffee")
	assert.Equal(t, found, false)
}

func TestRouterWorkerCaches(t *testing.T) {
	r := rroute.NewRouterWithCacheSize[string](16)
	_ = r.Get("/users/:id", "user")

	cache := r.NewCache()
	data, params, _, found := r.LookupUsing(cache, "GET", "/users/9")
	assert.True(t, found)
	assert.Equal(t, data, "user")
	assert.Equal(t, params[0].Value, "9")

	hits, misses := cache.Stats()
	assert.Equal(t, hits, int64(0))
	assert.Equal(t, misses, int64(1))
}

func TestRoutesOverview(t *testing.T) {
	r := rroute.NewRouter[string]()
	_ = r.Get("/users/:id", "user handler")
	_ = r.Post("/users", "create handler")

	html := r.RoutesOverview()

	assert.True(t, strings.Contains(html, "/users/:id"))
	assert.True(t, strings.Contains(html, "GET"))
	assert.True(t, strings.Contains(html, "POST"))
	assert.True(t, strings.Contains(html, "Registered Routes"))
}

func TestListRoutesFacade(t *testing.T) {
	r := rroute.NewRouter[string]()
	_ = r.Get("/a", "A")
	_ = r.Get("/files/*", "F")

	routes := r.ListRoutes()
	assert.Equal(t, len(routes), 2)
}
