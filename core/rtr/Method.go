package rtr

import (
	"strings"

	"github.com/rohanthewiz/rroute/consts"
)

// Method identifies an HTTP request method.
// MethodUnknown is the sentinel for invalid or unparseable input and is
// rejected by every router operation.
type Method uint8

const (
	MethodUnknown Method = iota
	MethodGet
	MethodPost
	MethodPut
	MethodPatch
	MethodDelete
	MethodHead
	MethodOptions
	MethodConnect
	MethodTrace

	methodCount
)

// methodNames maps methods to their canonical uppercase form.
var methodNames = [methodCount]string{
	MethodUnknown: consts.MethodUnknown,
	MethodGet:     consts.MethodGet,
	MethodPost:    consts.MethodPost,
	MethodPut:     consts.MethodPut,
	MethodPatch:   consts.MethodPatch,
	MethodDelete:  consts.MethodDelete,
	MethodHead:    consts.MethodHead,
	MethodOptions: consts.MethodOptions,
	MethodConnect: consts.MethodConnect,
	MethodTrace:   consts.MethodTrace,
}

// ParseMethod converts a method string to a Method.
// Parsing is case-insensitive; anything not in the known set maps to MethodUnknown.
func ParseMethod(method string) Method {
	switch strings.ToUpper(method) {
	case consts.MethodGet:
		return MethodGet
	case consts.MethodPost:
		return MethodPost
	case consts.MethodPut:
		return MethodPut
	case consts.MethodPatch:
		return MethodPatch
	case consts.MethodDelete:
		return MethodDelete
	case consts.MethodHead:
		return MethodHead
	case consts.MethodOptions:
		return MethodOptions
	case consts.MethodConnect:
		return MethodConnect
	case consts.MethodTrace:
		return MethodTrace
	default:
		return MethodUnknown
	}
}

// String renders the method in canonical uppercase form.
func (m Method) String() string {
	if m >= methodCount {
		return consts.MethodUnknown
	}
	return methodNames[m]
}

// valid reports whether m can be used for registration or lookup.
func (m Method) valid() bool {
	return m > MethodUnknown && m < methodCount
}
