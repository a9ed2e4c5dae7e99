// Package routefile loads a route table from a TOML file.
//
// The file holds an array of route tables; file order is priority order:
//
//	[[route]]
//	pattern = "/store/:storeId"
//	handler = "Store"
//
//	[[route]]
//	pattern = "*"
//	handler = "NotFound"
package routefile

import (
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rohanthewiz/pathroute"
	"github.com/rohanthewiz/pathroute/consts"
	"github.com/rohanthewiz/serr"
)

// File is the decoded form of a route table file.
type File struct {
	Routes []Route `toml:"route"`
}

// Route is one [[route]] entry.
type Route struct {
	Pattern string `toml:"pattern"`
	Handler string `toml:"handler"`
}

// Load reads and parses a route table file.
func Load(path string) ([]pathroute.Binding[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, serr.Wrap(err, "file", path)
	}

	bindings, err := Parse(data)
	if err != nil {
		return nil, serr.Wrap(err, "file", path)
	}
	return bindings, nil
}

// Parse decodes TOML route table data into bindings, keeping file order.
// Patterns are checked later by Register; here only the entries themselves are validated.
func Parse(data []byte) ([]pathroute.Binding[string], error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, serr.Wrap(err, "parse route table")
	}

	if len(f.Routes) == 0 {
		return nil, serr.New("route table has no [[route]] entries")
	}

	bindings := make([]pathroute.Binding[string], 0, len(f.Routes))
	for i, r := range f.Routes {
		handler := strings.TrimSpace(r.Handler)
		if handler == "" {
			return nil, serr.New("route has no handler", "route", strconv.Itoa(i), "pattern", r.Pattern)
		}
		bindings = append(bindings, pathroute.Binding[string]{
			Pattern: strings.TrimSpace(r.Pattern),
			Handler: handler,
		})
	}
	return bindings, nil
}

// Resolver loads the file and registers it in a new resolver.
func Resolver(path string) (*pathroute.Resolver[string], error) {
	bindings, err := Load(path)
	if err != nil {
		return nil, err
	}
	return pathroute.NewWithTable(bindings)
}

// TablePath returns the route table file to use: the explicit path when given,
// else $PATHROUTE_TABLE, else routes.toml in the working directory.
func TablePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(consts.EnvRouteTable); env != "" {
		return env
	}
	return consts.DefaultRouteTable
}
