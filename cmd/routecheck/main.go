// Command routecheck validates a route table file and resolves paths against it.
//
//	routecheck -table routes.toml -list /store/42 /admin /nowhere
//
// Exit status is 0 when every path resolved, 1 when at least one did not,
// and 2 when the table could not be loaded or registered.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/pathroute"
	"github.com/rohanthewiz/pathroute/routefile"
)

const (
	exitOK       = 0
	exitNotFound = 1
	exitConfig   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("routecheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tablePath := fs.String("table", "", "route table file (default $PATHROUTE_TABLE or routes.toml)")
	list := fs.Bool("list", false, "print the route table in priority order")

	if err := fs.Parse(args); err != nil {
		return exitConfig
	}

	path := routefile.TablePath(*tablePath)
	r, err := routefile.Resolver(path)
	if err != nil {
		var ce *pathroute.ConfigurationError
		if errors.As(err, &ce) {
			fmt.Fprintf(stderr, "%s: %s\n", path, ce.Error())
		} else {
			logger.LogErr(err, "unable to load route table")
			fmt.Fprintf(stderr, "%s: unable to load route table\n", path)
		}
		return exitConfig
	}

	if *list {
		for _, rt := range r.Routes() {
			fmt.Fprintf(stdout, "%3d  %-32s %s\n", rt.Priority, rt.Pattern, rt.HandlerRef)
		}
	}

	status := exitOK
	for _, p := range fs.Args() {
		res, err := r.Resolve(p)
		if err != nil {
			if !errors.Is(err, pathroute.ErrRouteNotFound) {
				logger.LogErr(err, "unexpected resolve error", "path", p)
			}
			fmt.Fprintf(stdout, "%s -> not found\n", p)
			status = exitNotFound
			continue
		}
		fmt.Fprintf(stdout, "%s -> %s %s\n", p, res.Handler, formatParams(res.Params))
	}

	return status
}

// formatParams renders the parameters sorted by name, e.g. {productId=7 storeId=42}.
func formatParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	return "{" + strings.Join(pairs, " ") + "}"
}
