package pathroute

import (
	"strings"

	"github.com/rohanthewiz/pathroute/consts"
)

// NormalizePath brings a location path into the form the table is matched against:
//   - the query string and fragment are dropped
//   - an empty path becomes "/"
//   - a missing leading slash is added
//   - a single trailing slash is removed, except for the root path
//
// Segments are not URL decoded and duplicate slashes are kept,
// so "/store//1" has an empty segment that no parameter will match.
func NormalizePath(path string) string {
	if i := strings.IndexAny(path, consts.PathTerminators); i >= 0 {
		path = path[:i]
	}

	path = addLeadingSlash(path)

	if len(path) > 1 && path[len(path)-1] == consts.RuneFwdSlash {
		path = path[:len(path)-1]
	}
	return path
}

func addLeadingSlash(path string) string {
	if len(path) == 0 || path[0] != consts.RuneFwdSlash {
		return consts.PathRoot + path
	}
	return path
}
