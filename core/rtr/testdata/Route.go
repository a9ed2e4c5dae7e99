package testdata

import (
	"os"
	"strings"
)

// Route represents a single line in a route table test file: "pattern handler".
type Route struct {
	Pattern string
	Handler string
}

// Routes loads all routes from a text file, skipping blank lines and # comments.
// A missing file yields no routes.
func Routes(fileName string) []Route {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil
	}

	var routes []Route
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		routes = append(routes, Route{
			Pattern: fields[0],
			Handler: fields[len(fields)-1],
		})
	}

	return routes
}
