package algo

// EdgeRef addresses one edge in the adjacency list of a SearchGraph.
// It stays valid for the lifetime of the graph since edges are never removed.
type EdgeRef struct {
	From  int
	Index int
}

type PathItem[NT any, ET any] struct {
	NodeAttr NT
	// attr of the edge leaving this node along the path, zero for the last item
	EdgeAttr ET
}

type WalkNodeAttr struct {
	ID int64 // street node id from the network source
}
