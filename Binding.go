package pathroute

// Binding pairs a pattern with the handler it selects.
// Handler is opaque to the resolver; typically a page name or a render function.
type Binding[H any] struct {
	Pattern string
	Handler H
}

// Result is the outcome of a successful resolution.
// It is built fresh for every call and belongs to the caller.
type Result[H any] struct {
	Handler H
	Pattern string            // the pattern that matched, as registered
	Params  map[string]string // never nil
}

// Param returns the value captured for name, or "" if the pattern has no such parameter.
func (r Result[H]) Param(name string) string {
	return r.Params[name]
}

// HasParam reports whether the pattern captured a parameter called name.
func (r Result[H]) HasParam(name string) bool {
	_, ok := r.Params[name]
	return ok
}
