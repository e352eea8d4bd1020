package node

// Edge is a directed, named connection from Src to Dst. Both endpoints keep
// a reference to the edge (Dst.InEdge(), Src.OutEdges()); removing the edge
// from one side without the other is done by Replace/RemoveEdge, never by
// mutating Edge.Src/Edge.Dst directly from outside this package.
type Edge struct {
	Name     string
	Src, Dst Node
	Metadata Metadata
}

// NewEdge constructs an edge with the given name between src and dst without
// registering it on either endpoint; callers use AddEdge on both, or more
// commonly call graph.Connect which does both validation and wiring.
func NewEdge(name string, src, dst Node) *Edge {
	return &Edge{Name: name, Src: src, Dst: dst}
}
