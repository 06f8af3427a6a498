package rtr

// RouteList represents a registered route for debugging and inspection.
//
// Fields:
//   - Method: canonical HTTP method name (GET, POST, ...)
//   - Path: the registered pattern (e.g., "/users/:id")
//   - HandlerRef: string representation of the handler (for debugging)
type RouteList struct {
	Method     string
	Path       string
	HandlerRef string
}
