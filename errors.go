package pathroute

import (
	"errors"
	"strconv"
)

var (
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("route table configuration error")

	// ErrRouteNotFound is matched by every *RouteNotFoundError.
	ErrRouteNotFound = errors.New("route not found")
)

// ConfigurationError reports a route table that cannot be registered.
// It is fatal to startup: the table has to be fixed, retrying will not help.
type ConfigurationError struct {
	Pattern string
	Index   int // position in the table, -1 when the error is not about one binding
	Reason  string
	Err     error // underlying parse or conflict error, if any
}

func (e *ConfigurationError) Error() string {
	msg := ErrConfiguration.Error()
	if e.Index >= 0 {
		msg += ": route " + strconv.Itoa(e.Index) + " " + strconv.Quote(e.Pattern)
	}
	return msg + ": " + e.Reason
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// RouteNotFoundError is returned by Resolve when no binding matches and the
// table has no catch-all. The presentation layer is expected to handle it,
// typically by rendering a not-found page.
type RouteNotFoundError struct {
	Path string // the normalized path
}

func (e *RouteNotFoundError) Error() string {
	return ErrRouteNotFound.Error() + ": " + strconv.Quote(e.Path)
}

func (e *RouteNotFoundError) Is(target error) bool {
	return target == ErrRouteNotFound
}
