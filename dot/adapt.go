package dot

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"

	hwirgraph "github.com/katalvlaran/hwir/graph"
	hwnode "github.com/katalvlaran/hwir/node"
)

// dotGraph adapts one graph.Component's reachable node.Node set onto
// gonum's graph.Graph/graph.Directed, assigning each node a stable integer
// ID for the duration of one Emit call.
type dotGraph struct {
	compName string
	nodes    []hwnode.Node
	index    map[hwnode.Node]int64
	byID     map[int64]hwnode.Node
	cfg      Config
}

func newDotGraph(comp *hwirgraph.Component, cfg Config) *dotGraph {
	nodes := collectNodes(comp, cfg)
	g := &dotGraph{
		compName: comp.Name(),
		nodes:    nodes,
		index:    make(map[hwnode.Node]int64, len(nodes)),
		byID:     make(map[int64]hwnode.Node, len(nodes)),
		cfg:      cfg,
	}
	for i, n := range nodes {
		id := int64(i)
		g.index[n] = id
		g.byID[id] = n
	}
	return g
}

// DOTID implements gonum's dot.Graph, naming the top-level graph after the
// component.
func (g *dotGraph) DOTID() string { return sanitizeID(g.compName) }

func (g *dotGraph) Node(id int64) graph.Node {
	n, ok := g.byID[id]
	if !ok {
		return nil
	}
	return dotNode{n: n, id: id, owner: ownerName(n)}
}

func (g *dotGraph) Nodes() graph.Nodes {
	ns := make([]graph.Node, 0, len(g.nodes))
	for id, n := range g.nodes {
		ns = append(ns, dotNode{n: n, id: int64(id), owner: ownerName(n)})
	}
	return iterator.NewOrderedNodes(ns)
}

func (g *dotGraph) From(id int64) graph.Nodes {
	n, ok := g.byID[id]
	if !ok {
		return iterator.NewOrderedNodes(nil)
	}
	var out []graph.Node
	for _, e := range n.OutEdges() {
		if dstID, ok := g.index[e.Dst]; ok {
			out = append(out, dotNode{n: e.Dst, id: dstID, owner: ownerName(e.Dst)})
		}
	}
	if len(out) == 0 {
		return iterator.NewOrderedNodes(nil)
	}
	return iterator.NewOrderedNodes(out)
}

func (g *dotGraph) To(id int64) graph.Nodes {
	n, ok := g.byID[id]
	if !ok {
		return iterator.NewOrderedNodes(nil)
	}
	in := n.InEdge()
	if in == nil {
		return iterator.NewOrderedNodes(nil)
	}
	srcID, ok := g.index[in.Src]
	if !ok {
		return iterator.NewOrderedNodes(nil)
	}
	return iterator.NewOrderedNodes([]graph.Node{dotNode{n: in.Src, id: srcID, owner: ownerName(in.Src)}})
}

func (g *dotGraph) HasEdgeBetween(xid, yid int64) bool {
	return g.HasEdgeFromTo(xid, yid) || g.HasEdgeFromTo(yid, xid)
}

func (g *dotGraph) HasEdgeFromTo(uid, vid int64) bool {
	return g.findEdge(uid, vid) != nil
}

func (g *dotGraph) Edge(uid, vid int64) graph.Edge {
	e := g.findEdge(uid, vid)
	if e == nil {
		return nil
	}
	return dotEdge{e: e, fromID: uid, toID: vid}
}

func (g *dotGraph) findEdge(uid, vid int64) *hwnode.Edge {
	u, ok := g.byID[uid]
	if !ok {
		return nil
	}
	v, ok := g.byID[vid]
	if !ok {
		return nil
	}
	for _, e := range u.OutEdges() {
		if e.Dst == v {
			return e
		}
	}
	return nil
}

// collectNodes walks every node reachable from comp's ports, signals,
// parameters, arrays and instances, excluding kinds cfg hides, and pulling
// in any edge endpoint (a referenced literal, parameter or expression
// generic) transitively — so every edge Emit renders has both endpoints
// present in the node set.
func collectNodes(comp *hwirgraph.Component, cfg Config) []hwnode.Node {
	seen := make(map[hwnode.Node]bool)
	var out []hwnode.Node

	var visit func(n hwnode.Node)
	visit = func(n hwnode.Node) {
		if n == nil || seen[n] || hiddenKind(n.Kind(), cfg) {
			return
		}
		seen[n] = true
		out = append(out, n)
		if in := n.InEdge(); in != nil {
			visit(in.Src)
		}
		for _, e := range n.OutEdges() {
			visit(e.Dst)
		}
	}

	for _, p := range comp.Ports() {
		visit(p)
	}
	for _, s := range comp.Signals() {
		visit(s)
	}
	for _, p := range comp.Parameters() {
		visit(p)
	}
	for _, arr := range comp.PortArrays() {
		for _, c := range arr.Children() {
			visit(c)
		}
	}
	for _, arr := range comp.SignalArrays() {
		for _, c := range arr.Children() {
			visit(c)
		}
	}
	for _, inst := range comp.Instances() {
		for _, p := range inst.Ports() {
			visit(p)
		}
		for _, p := range inst.Parameters() {
			visit(p)
		}
	}
	return out
}

func hiddenKind(k hwnode.Kind, cfg Config) bool {
	switch k {
	case hwnode.KindLiteral:
		return cfg.HideLiterals
	case hwnode.KindParameter:
		return cfg.HideParameters
	case hwnode.KindSignal:
		return cfg.HideSignals
	case hwnode.KindPort:
		return cfg.HidePorts
	case hwnode.KindExpression:
		return cfg.HideExpressions
	default:
		return false
	}
}

// ownerName returns the display-qualifying prefix for a node's DOT label:
// its owner's name (a Component or Instance), or "" if unparented.
func ownerName(n hwnode.Node) string {
	if p := n.Parent(); p != nil {
		return p.OwnerName()
	}
	return ""
}

// dotNode adapts one node.Node onto gonum's graph.Node plus the dot package's
// Node (DOTID) and encoding.Attributer interfaces.
type dotNode struct {
	n     hwnode.Node
	id    int64
	owner string
}

func (d dotNode) ID() int64 { return d.id }

// DOTID qualifies the node's own name with its owner so that, e.g., two
// instances of the same blueprint each contribute a distinct "ia_a"/"ib_a"
// node identity rather than colliding on "a".
func (d dotNode) DOTID() string {
	if d.owner == "" {
		return sanitizeID(d.n.Name())
	}
	return sanitizeID(d.owner + "_" + d.n.Name())
}

// dotEdge adapts one node.Edge onto gonum's graph.Edge plus
// encoding.Attributer, labeling it with array-index information when one or
// both endpoints belong to a NodeArray (spec.md §4.I).
type dotEdge struct {
	e            *hwnode.Edge
	fromID, toID int64
}

func (d dotEdge) From() graph.Node { return dotNode{n: d.e.Src, id: d.fromID, owner: ownerName(d.e.Src)} }
func (d dotEdge) To() graph.Node   { return dotNode{n: d.e.Dst, id: d.toID, owner: ownerName(d.e.Dst)} }
func (d dotEdge) ReversedEdge() graph.Edge {
	return dotEdge{e: hwnode.NewEdge(d.e.Name, d.e.Dst, d.e.Src), fromID: d.toID, toID: d.fromID}
}

// arrayIndex returns the trailing "[n]" index embedded in an array child's
// name, and whether n.Array() reports it as array-owned at all.
func arrayIndex(n hwnode.Node) (int, bool) {
	if n.Array() == nil {
		return 0, false
	}
	name := n.Name()
	open := strings.IndexByte(name, '[')
	if open < 0 || !strings.HasSuffix(name, "]") {
		return 0, false
	}
	idx, err := strconv.Atoi(name[open+1 : len(name)-1])
	if err != nil {
		return 0, false
	}
	return idx, true
}
