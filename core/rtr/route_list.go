package rtr

// RouteList describes one registered binding for debugging and inspection.
//
// Fields:
//   - Priority: zero based position in the table; lower wins
//   - Pattern: the template as registered (e.g. "/store/:storeId")
//   - Shape: the template with parameter names erased (e.g. "/store/:")
//   - HandlerRef: string form of the handler
type RouteList struct {
	Priority   int
	Pattern    string
	Shape      string
	HandlerRef string
}
