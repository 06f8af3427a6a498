package rtr_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rroute/core/rtr"
)

func TestParseMethod(t *testing.T) {
	assert.Equal(t, rtr.ParseMethod("GET"), rtr.MethodGet)
	assert.Equal(t, rtr.ParseMethod("get"), rtr.MethodGet)
	assert.Equal(t, rtr.ParseMethod("Post"), rtr.MethodPost)
	assert.Equal(t, rtr.ParseMethod("dElEtE"), rtr.MethodDelete)
	assert.Equal(t, rtr.ParseMethod("CONNECT"), rtr.MethodConnect)
	assert.Equal(t, rtr.ParseMethod("TRACE"), rtr.MethodTrace)

	assert.Equal(t, rtr.ParseMethod(""), rtr.MethodUnknown)
	assert.Equal(t, rtr.ParseMethod("BREW"), rtr.MethodUnknown)
}

func TestMethodString(t *testing.T) {
	methods := []rtr.Method{
		rtr.MethodGet, rtr.MethodPost, rtr.MethodPut, rtr.MethodPatch,
		rtr.MethodDelete, rtr.MethodHead, rtr.MethodOptions,
		rtr.MethodConnect, rtr.MethodTrace,
	}

	// round trip through the canonical uppercase rendering
	for _, m := range methods {
		assert.Equal(t, rtr.ParseMethod(m.String()), m)
	}

	assert.Equal(t, rtr.MethodUnknown.String(), "UNKNOWN")
	assert.Equal(t, rtr.Method(250).String(), "UNKNOWN")
}
