package consts

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodHead    = "HEAD"
	MethodOptions = "OPTIONS"
	MethodConnect = "CONNECT"
	MethodTrace   = "TRACE"
	MethodUnknown = "UNKNOWN"
)

const ( // route and query markers
	RuneFwdSlash  = '/'
	RuneColon     = ':'
	RuneAsterisk  = '*'
	RuneQuestion  = '?'
	RuneAmpersand = '&'
	RuneEqual     = '='
	RunePlus      = '+'
	RunePercent   = '%'
)

// WildcardKey is the reserved parameter name a trailing wildcard binds
// the rest of the request path to.
const WildcardKey = "*"
