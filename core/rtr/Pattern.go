package rtr

import (
	"strings"

	"github.com/rohanthewiz/pathroute/consts"
)

// Pattern is a route template parsed once at registration time.
//
// Syntax:
//
//	/                  the root path
//	/admin/dashboard   literal segments
//	/store/:storeId    a named parameter capturing one non-empty segment
//	/admin/*           a trailing wildcard matching zero or more segments
//	*                  the catch-all, matching any path
//
// A trailing slash on the template is ignored, so "/admin/" and "/admin" are the same pattern.
type Pattern struct {
	raw      string
	segments []Segment
	catchAll bool
	params   int
}

// PatternError describes why a template was rejected.
type PatternError struct {
	Pattern string
	Reason  string
}

func (e *PatternError) Error() string {
	return "invalid pattern " + quote(e.Pattern) + ": " + e.Reason
}

// ParsePattern splits the template into literal, parameter and wildcard segments.
func ParsePattern(raw string) (Pattern, error) {
	p := Pattern{raw: raw}

	if raw == consts.PathCatchAll {
		p.catchAll = true
		p.segments = []Segment{{Kind: SegWildcard}}
		return p, nil
	}

	if raw == "" {
		return p, &PatternError{Pattern: raw, Reason: "pattern is empty"}
	}
	if raw[0] != consts.RuneFwdSlash {
		return p, &PatternError{Pattern: raw, Reason: "pattern must begin with " + quote(consts.PathSeparator)}
	}

	if strings.Contains(raw, "//") {
		return p, &PatternError{Pattern: raw, Reason: "empty segment"}
	}
	if strings.ContainsAny(raw, consts.PathTerminators) {
		return p, &PatternError{Pattern: raw, Reason: "query or fragment character in pattern"}
	}

	parts := SplitPath(trimTrailingSlash(raw))
	p.segments = make([]Segment, 0, len(parts))
	seen := make(map[string]struct{}, 2)

	for i, part := range parts {
		switch {
		case part == "":
			return p, &PatternError{Pattern: raw, Reason: "empty segment"}

		case part[0] == consts.RuneColon:
			name := part[1:]
			if name == "" {
				return p, &PatternError{Pattern: raw, Reason: "parameter name missing"}
			}
			if _, dup := seen[name]; dup {
				return p, &PatternError{Pattern: raw, Reason: "parameter " + quote(name) + " appears twice"}
			}
			seen[name] = struct{}{}
			p.segments = append(p.segments, Segment{Kind: SegParam, Value: name})
			p.params++

		case part[0] == consts.RuneAsterisk:
			if part != consts.PathCatchAll {
				return p, &PatternError{Pattern: raw, Reason: "named wildcards are not supported"}
			}
			if i != len(parts)-1 {
				return p, &PatternError{Pattern: raw, Reason: "wildcard must be the last segment"}
			}
			p.segments = append(p.segments, Segment{Kind: SegWildcard})

		default:
			p.segments = append(p.segments, Segment{Kind: SegLiteral, Value: part})
		}
	}

	return p, nil
}

// String returns the template as it was registered.
func (p Pattern) String() string {
	return p.raw
}

// Segments returns the parsed segments. The caller must not modify them.
func (p Pattern) Segments() []Segment {
	return p.segments
}

// IsCatchAll reports whether this is the reserved "*" pattern.
func (p Pattern) IsCatchAll() bool {
	return p.catchAll
}

// HasWildcard reports whether the pattern ends in a wildcard segment.
func (p Pattern) HasWildcard() bool {
	n := len(p.segments)
	return n > 0 && p.segments[n-1].Kind == SegWildcard
}

// NumParams returns the number of named parameters in the pattern.
func (p Pattern) NumParams() int {
	return p.params
}

// Shape is the pattern with parameter names erased.
// Two patterns with equal shapes match exactly the same set of paths.
func (p Pattern) Shape() string {
	if p.catchAll {
		return consts.PathCatchAll
	}
	if len(p.segments) == 0 {
		return consts.PathRoot
	}

	var sb strings.Builder
	for _, seg := range p.segments {
		sb.WriteByte(consts.RuneFwdSlash)
		sb.WriteString(seg.shapeToken())
	}
	return sb.String()
}

// Match compares the pattern to the already split path.
// Parameters are only reported through addParameter once the whole pattern has matched.
func (p Pattern) Match(parts []string, addParameter func(key string, value string)) bool {
	if p.catchAll {
		return true
	}

	segs := p.segments
	if p.HasWildcard() {
		segs = segs[:len(segs)-1]
		if len(parts) < len(segs) {
			return false
		}
	} else if len(parts) != len(segs) {
		return false
	}

	for i, seg := range segs {
		if !seg.matches(parts[i]) {
			return false
		}
	}

	if p.params == 0 || addParameter == nil {
		return true
	}

	for i, seg := range segs {
		if seg.Kind == SegParam {
			addParameter(seg.Value, parts[i])
		}
	}
	return true
}

// SplitPath returns the segments of a path that begins with a slash.
// The root path has no segments.
func SplitPath(path string) []string {
	if path == "" || path == consts.PathRoot {
		return nil
	}
	if path[0] == consts.RuneFwdSlash {
		path = path[1:]
	}
	return strings.Split(path, consts.PathSeparator)
}

func trimTrailingSlash(path string) string {
	if len(path) > 1 && path[len(path)-1] == consts.RuneFwdSlash {
		return path[:len(path)-1]
	}
	return path
}

func quote(s string) string {
	return `"` + s + `"`
}
