package rtr

import (
	"fmt"
	"strconv"
)

// Table is an ordered list of pattern bindings.
// Lookups walk the bindings in insertion order and the first match wins.
//
// Zero value is ready to use. A Table must not be modified once it is shared
// between goroutines; concurrent lookups are safe because they only read.
type Table[T any] struct {
	bindings []binding[T]
	shapes   map[string]int // shape -> index of the binding that owns it
}

type binding[T any] struct {
	pattern Pattern
	data    T
}

// ConflictError is returned when a pattern has the same shape as an earlier one.
type ConflictError struct {
	Pattern       string
	Index         int
	Existing      string
	ExistingIndex int
}

func (e *ConflictError) Error() string {
	return "pattern " + quote(e.Pattern) + " (route " + strconv.Itoa(e.Index) +
		") has the same shape as " + quote(e.Existing) + " (route " + strconv.Itoa(e.ExistingIndex) + ")"
}

// Add parses the pattern and appends it to the table.
// The catch-all "*" is exempt from the shape check.
func (t *Table[T]) Add(pattern string, data T) error {
	p, err := ParsePattern(pattern)
	if err != nil {
		return err
	}

	idx := len(t.bindings)
	if !p.IsCatchAll() {
		shape := p.Shape()
		if t.shapes == nil {
			t.shapes = make(map[string]int, 8)
		}
		if prev, exists := t.shapes[shape]; exists {
			return &ConflictError{
				Pattern:       pattern,
				Index:         idx,
				Existing:      t.bindings[prev].pattern.String(),
				ExistingIndex: prev,
			}
		}
		t.shapes[shape] = idx
	}

	t.bindings = append(t.bindings, binding[T]{pattern: p, data: data})
	return nil
}

// Lookup finds the data and parameters for an already normalized path.
func (t *Table[T]) Lookup(path string) (data T, params []Parameter, pattern Pattern, ok bool) {
	parts := SplitPath(path)

	for i := range t.bindings {
		b := &t.bindings[i]
		if b.pattern.NumParams() > 0 {
			params = make([]Parameter, 0, b.pattern.NumParams())
		}
		matched := b.pattern.Match(parts, func(key, value string) {
			params = append(params, Parameter{Key: key, Value: value})
		})
		if matched {
			return b.data, params, b.pattern, true
		}
		params = nil
	}

	return data, nil, Pattern{}, false
}

// LookupNoAlloc finds the data for an already normalized path and reports
// parameters through addParameter instead of building a slice.
func (t *Table[T]) LookupNoAlloc(path string, addParameter func(string, string)) (data T, ok bool) {
	parts := SplitPath(path)

	for i := range t.bindings {
		if t.bindings[i].pattern.Match(parts, addParameter) {
			return t.bindings[i].data, true
		}
	}

	return data, false
}

// CatchAllIndex returns the position of the first catch-all binding, or -1.
func (t *Table[T]) CatchAllIndex() int {
	for i := range t.bindings {
		if t.bindings[i].pattern.IsCatchAll() {
			return i
		}
	}
	return -1
}

// Len returns the number of bindings.
func (t *Table[T]) Len() int {
	return len(t.bindings)
}

// ListRoutes returns the bindings in priority order.
func (t *Table[T]) ListRoutes() (routes []RouteList) {
	routes = make([]RouteList, 0, len(t.bindings))
	for i, b := range t.bindings {
		routes = append(routes, RouteList{
			Priority:   i,
			Pattern:    b.pattern.String(),
			Shape:      b.pattern.Shape(),
			HandlerRef: fmt.Sprintf("%v", b.data),
		})
	}
	return
}
