package rtr

// Parameter represents a URL parameter extracted from dynamic route segments.
//
// Example:
//   Route: /user/:id/posts/:postId
//   URL:   /user/123/posts/456
//   Result: []Parameter{{Key: "id", Value: "123"}, {Key: "postId", Value: "456"}}
//
// A trailing wildcard binds the rest of the path under the reserved key "*".
//
// Design notes:
// - Simple struct avoids allocation overhead compared to map[string]string
// - Ordered slice preserves parameter sequence from the route definition
type Parameter struct {
	Key   string
	Value string
}

// ParamValue returns the value bound to key, scanning params in order.
func ParamValue(params []Parameter, key string) (value string, found bool) {
	for _, p := range params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}
