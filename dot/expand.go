package dot

import (
	"gonum.org/v1/gonum/graph"
	godot "gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/iterator"

	hwnode "github.com/katalvlaran/hwir/node"
)

// Structure implements gonum dot's Structurer: when Config.ExpandExpressions
// is set, every Expression node in the rendered set contributes its own
// nested subgraph containing its two operands, with the Expression itself
// re-rendered as that subgraph's red root (spec.md §4.I, recovered from
// original_source/.../dot/style.h — SPEC_FULL.md §7.7). An Expression's
// Lhs()/Rhs() operands are plain struct fields, not node.Edge endpoints, so
// they never appear via collectNodes's edge walk — expansion is the only
// path that renders them at all.
func (g *dotGraph) Structure() []godot.Graph {
	if !g.cfg.ExpandExpressions {
		return nil
	}
	var out []godot.Graph
	for id, n := range g.nodes {
		expr, ok := n.(*hwnode.Expression)
		if !ok {
			continue
		}
		out = append(out, newExprSubgraph(int64(id), expr))
	}
	return out
}

// exprSubgraph is a tiny, self-contained graph.Graph holding one expanded
// Expression and its two operands, node IDs namespaced with a leading
// negative offset so they never collide with the parent graph's IDs.
type exprSubgraph struct {
	name  string
	nodes []graph.Node
	from  map[int64][]graph.Node
}

func newExprSubgraph(rootID int64, expr *hwnode.Expression) exprSubgraph {
	root := redRootNode{dotNode{n: expr, id: -(rootID*3 + 1), owner: ownerName(expr)}}
	var nodes []graph.Node
	nodes = append(nodes, root)
	from := make(map[int64][]graph.Node)

	addOperand := func(slot int64, operand hwnode.Node) {
		if operand == nil {
			return
		}
		opNode := dotNode{n: operand, id: -(rootID*3 + 1 + slot), owner: ownerName(operand)}
		nodes = append(nodes, opNode)
		from[root.ID()] = append(from[root.ID()], opNode)
	}
	addOperand(1, expr.Lhs())
	addOperand(2, expr.Rhs())

	return exprSubgraph{
		name:  sanitizeID(expr.Name()) + "_expr",
		nodes: nodes,
		from:  from,
	}
}

func (s exprSubgraph) DOTID() string { return s.name }

func (s exprSubgraph) Node(id int64) graph.Node {
	for _, n := range s.nodes {
		if n.ID() == id {
			return n
		}
	}
	return nil
}

func (s exprSubgraph) Nodes() graph.Nodes { return iterator.NewOrderedNodes(s.nodes) }

func (s exprSubgraph) From(id int64) graph.Nodes {
	to := s.from[id]
	if len(to) == 0 {
		return iterator.NewOrderedNodes(nil)
	}
	return iterator.NewOrderedNodes(to)
}

func (s exprSubgraph) HasEdgeBetween(xid, yid int64) bool {
	return s.HasEdgeFromTo(xid, yid) || s.HasEdgeFromTo(yid, xid)
}

func (s exprSubgraph) HasEdgeFromTo(uid, vid int64) bool {
	for _, n := range s.from[uid] {
		if n.ID() == vid {
			return true
		}
	}
	return false
}

func (s exprSubgraph) Edge(uid, vid int64) graph.Edge {
	if !s.HasEdgeFromTo(uid, vid) {
		return nil
	}
	return simpleEdge{from: s.Node(uid), to: s.Node(vid)}
}

// simpleEdge is a structural (not signal-flow) edge used only inside an
// expanded expression's subgraph, connecting the root to each operand.
type simpleEdge struct{ from, to graph.Node }

func (e simpleEdge) From() graph.Node         { return e.from }
func (e simpleEdge) To() graph.Node           { return e.to }
func (e simpleEdge) ReversedEdge() graph.Edge { return simpleEdge{from: e.to, to: e.from} }
