package rroute_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rroute"
)

func TestGroupPrefixes(t *testing.T) {
	r := rroute.NewRouter[string]()

	api := r.Group("/api")
	v1 := api.Group("/v1")

	assert.Equal(t, v1.Get("/status", "Status"), nil)
	assert.Equal(t, v1.Get("/users/:id", "User"), nil)

	data, _, _, found := r.Lookup("GET", "/api/v1/status")
	assert.True(t, found)
	assert.Equal(t, data, "Status")

	data, params, _, found := r.Lookup("GET", "/api/v1/users/7")
	assert.True(t, found)
	assert.Equal(t, data, "User")
	assert.Equal(t, params[0].Key, "id")
	assert.Equal(t, params[0].Value, "7")

	// the unprefixed path is not registered
	_, _, _, found = r.Lookup("GET", "/status")
	assert.Equal(t, found, false)
}

func TestGroupMiddlewareOrder(t *testing.T) {
	wrapA := func(h string) string { return "A(" + h + ")" }
	wrapB := func(h string) string { return "B(" + h + ")" }

	r := rroute.NewRouter[string]()
	g := r.Group("/guarded", wrapA, wrapB)
	_ = g.Get("/x", "handler")

	// first middleware is outermost
	data, _, _, found := r.Lookup("GET", "/guarded/x")
	assert.True(t, found)
	assert.Equal(t, data, "A(B(handler))")
}

func TestGroupUseAffectsLaterRoutes(t *testing.T) {
	wrap := func(h string) string { return "W(" + h + ")" }

	r := rroute.NewRouter[string]()
	g := r.Group("/api")
	_ = g.Get("/before", "before")
	g.Use(wrap)
	_ = g.Get("/after", "after")

	data, _, _, _ := r.Lookup("GET", "/api/before")
	assert.Equal(t, data, "before")

	data, _, _, _ = r.Lookup("GET", "/api/after")
	assert.Equal(t, data, "W(after)")
}

func TestNestedGroupInheritsMiddleware(t *testing.T) {
	outer := func(h string) string { return "O(" + h + ")" }
	inner := func(h string) string { return "I(" + h + ")" }

	r := rroute.NewRouter[string]()
	g := r.Group("/a", outer).Group("/b", inner)
	_ = g.Post("/c", "handler")

	data, _, _, found := r.Lookup("POST", "/a/b/c")
	assert.True(t, found)
	assert.Equal(t, data, "O(I(handler))")
}

func TestGroupVerbs(t *testing.T) {
	r := rroute.NewRouter[string]()
	g := r.Group("/v")

	_ = g.Get("/r", "get")
	_ = g.Post("/r", "post")
	_ = g.Put("/r", "put")
	_ = g.Patch("/r", "patch")
	_ = g.Delete("/r", "delete")
	_ = g.Head("/r", "head")
	_ = g.Options("/r", "options")
	_ = g.Connect("/r", "connect")
	_ = g.Trace("/r", "trace")

	for _, method := range []string{
		"GET", "POST", "PUT", "PATCH", "DELETE",
		"HEAD", "OPTIONS", "CONNECT", "TRACE",
	} {
		data, _, _, found := r.Lookup(method, "/v/r")
		assert.True(t, found)
		assert.Equal(t, data, map[string]string{
			"GET": "get", "POST": "post", "PUT": "put", "PATCH": "patch",
			"DELETE": "delete", "HEAD": "head", "OPTIONS": "options",
			"CONNECT": "connect", "TRACE": "trace",
		}[method])
	}
}
