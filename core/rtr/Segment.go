package rtr

// SegmentKind tells how a single pattern segment is compared against a path segment.
type SegmentKind uint8

const (
	// SegLiteral matches only an identical path segment.
	SegLiteral SegmentKind = iota

	// SegParam matches any single non-empty path segment and captures it.
	SegParam

	// SegWildcard matches the rest of the path, zero or more segments.
	// It is only valid as the final segment of a pattern.
	SegWildcard
)

func (k SegmentKind) String() string {
	switch k {
	case SegLiteral:
		return "literal"
	case SegParam:
		return "param"
	case SegWildcard:
		return "wildcard"
	default:
		return "unknown"
	}
}

// Segment is one parsed piece of a pattern.
// Value holds the literal text for SegLiteral and the parameter name for SegParam.
// It is empty for SegWildcard.
type Segment struct {
	Kind  SegmentKind
	Value string
}

// matches reports whether the segment accepts the given path segment.
// Wildcards are handled by the caller since they consume more than one segment.
func (s Segment) matches(part string) bool {
	switch s.Kind {
	case SegLiteral:
		return s.Value == part
	case SegParam:
		return part != ""
	default:
		return false
	}
}

// shapeToken is the segment with any parameter name erased,
// so /store/:id and /store/:storeId produce the same shape.
func (s Segment) shapeToken() string {
	switch s.Kind {
	case SegParam:
		return ":"
	case SegWildcard:
		return "*"
	default:
		return s.Value
	}
}
