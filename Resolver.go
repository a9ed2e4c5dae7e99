// Package pathroute resolves a location path to a registered handler and the
// parameters captured from the path.
//
// A table is an ordered list of bindings. The first pattern that matches wins,
// so the catch-all "*" belongs at the end:
//
//	r, err := pathroute.NewWithTable([]pathroute.Binding[string]{
//		{Pattern: "/", Handler: "Home"},
//		{Pattern: "/store/:storeId", Handler: "Store"},
//		{Pattern: "/admin", Handler: "Admin"},
//		{Pattern: "*", Handler: "NotFound"},
//	})
//	res, err := r.Resolve("/store/42") // res.Handler == "Store", res.Param("storeId") == "42"
package pathroute

import (
	"errors"
	"strconv"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/pathroute/core/rtr"
)

// Resolver holds an immutable route table.
// Register must complete before the resolver is shared; after that, Resolve
// may be called from any number of goroutines.
type Resolver[H any] struct {
	table      rtr.Table[H]
	registered bool
}

// New creates an empty resolver. Call Register to give it a table.
func New[H any]() *Resolver[H] {
	return &Resolver[H]{}
}

// NewWithTable creates a resolver and registers the table in one step.
func NewWithTable[H any](table []Binding[H]) (*Resolver[H], error) {
	r := New[H]()
	if err := r.Register(table); err != nil {
		return nil, err
	}
	return r, nil
}

// MustNew is like NewWithTable but panics on a bad table.
// Useful for tables that are compiled into the program.
func MustNew[H any](table []Binding[H]) *Resolver[H] {
	r, err := NewWithTable(table)
	if err != nil {
		panic(err.Error())
	}
	return r
}

// Register validates the table and stores it, preserving order.
// Nothing is stored unless every binding is valid.
// It fails with a *ConfigurationError when a pattern is malformed, when two
// patterns other than the catch-all have the same shape, or when the resolver
// already holds a table.
func (r *Resolver[H]) Register(table []Binding[H]) error {
	if r.registered {
		return &ConfigurationError{Index: -1, Reason: "route table is already registered"}
	}

	var tbl rtr.Table[H]
	for i, b := range table {
		if err := tbl.Add(b.Pattern, b.Handler); err != nil {
			return configError(b.Pattern, i, err)
		}
	}

	r.warnOnOrdering(&tbl)

	r.table = tbl
	r.registered = true
	return nil
}

// Resolve matches the path against the table in registration order.
// The path is normalized first (see NormalizePath).
// It fails with a *RouteNotFoundError only when no binding matches, which
// cannot happen if the table contains the catch-all.
func (r *Resolver[H]) Resolve(path string) (Result[H], error) {
	path = NormalizePath(path)

	data, params, pattern, ok := r.table.Lookup(path)
	if !ok {
		return Result[H]{}, &RouteNotFoundError{Path: path}
	}

	return Result[H]{
		Handler: data,
		Pattern: pattern.String(),
		Params:  rtr.ParamMap(params),
	}, nil
}

// Routes lists the bindings in priority order.
func (r *Resolver[H]) Routes() []rtr.RouteList {
	return r.table.ListRoutes()
}

// Len returns the number of registered bindings.
func (r *Resolver[H]) Len() int {
	return r.table.Len()
}

// HasCatchAll reports whether the table contains the "*" pattern,
// in which case Resolve never fails.
func (r *Resolver[H]) HasCatchAll() bool {
	return r.table.CatchAllIndex() >= 0
}

// warnOnOrdering logs a catch-all that shadows later bindings.
// The table is still accepted: first match wins is the documented rule.
func (r *Resolver[H]) warnOnOrdering(tbl *rtr.Table[H]) {
	idx := tbl.CatchAllIndex()
	if idx < 0 || idx == tbl.Len()-1 {
		return
	}
	logger.Warn("catch-all route shadows later routes",
		"position", strconv.Itoa(idx),
		"shadowed", strconv.Itoa(tbl.Len()-1-idx))
}

func configError(pattern string, index int, err error) *ConfigurationError {
	ce := &ConfigurationError{Pattern: pattern, Index: index, Reason: err.Error(), Err: err}

	var pe *rtr.PatternError
	if errors.As(err, &pe) {
		ce.Reason = pe.Reason
	}
	return ce
}
