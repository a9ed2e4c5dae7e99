package rtr

// Parameter is a value captured from a named pattern segment.
//
// Example:
//
//	Pattern: /store/:storeId
//	Path:    /store/42
//	Result:  []Parameter{{Key: "storeId", Value: "42"}}
//
// The slice form keeps the order of the segments in the pattern.
type Parameter struct {
	Key   string
	Value string
}

// ParamMap copies the parameters into a map keyed by name.
// The returned map is never nil.
func ParamMap(params []Parameter) map[string]string {
	m := make(map[string]string, len(params))
	for _, p := range params {
		m[p.Key] = p.Value
	}
	return m
}
