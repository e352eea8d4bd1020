// Package node implements HwIR's node sum type: Port, Signal, Parameter,
// Literal and Expression, plus NodeArray and Edge. Node kinds are dispatched
// via the Kind tag and an exhaustive switch rather than a type hierarchy,
// matching the tagged-variant convention called for in the source's design
// notes (no RTTI/dynamic casts).
//
// Ownership is a strict tree: a Node belongs to exactly one Owner (a
// Component or Instance, both defined in package graph) at a time. Node does
// not import package graph — Owner is the minimal interface both graph types
// satisfy, which is what keeps node and graph from cycling (graph already
// needs to import node for its object model).
package node

import (
	"errors"
	"fmt"
)

// Sentinel errors for node operations.
var (
	// ErrEdgeNotIncident indicates an Edge was added to a Node it does not
	// reference as either endpoint.
	ErrEdgeNotIncident = errors.New("node: edge not incident to this node")

	// ErrLiteralNoInput indicates an attempt to drive a Literal, which never
	// accepts an input edge.
	ErrLiteralNoInput = errors.New("node: literal cannot accept an input edge")

	// ErrExpressionNoInput indicates an attempt to drive an Expression node.
	ErrExpressionNoInput = errors.New("node: expression cannot accept an input edge")

	// ErrEdgeNotFound indicates RemoveEdge was called with an edge not
	// currently incident on this node.
	ErrEdgeNotFound = errors.New("node: edge not found on this node")

	// ErrNotArraySize indicates Replace was asked to update a NodeArray's
	// size node, but this node is not that array's size.
	ErrNotArraySize = errors.New("node: not this array's size node")
)

// Kind discriminates the node sum.
type Kind int

const (
	KindPort Kind = iota
	KindSignal
	KindParameter
	KindLiteral
	KindExpression
)

func (k Kind) String() string {
	switch k {
	case KindPort:
		return "Port"
	case KindSignal:
		return "Signal"
	case KindParameter:
		return "Parameter"
	case KindLiteral:
		return "Literal"
	case KindExpression:
		return "Expression"
	default:
		return "Unknown"
	}
}

// Direction is a Port's signal direction relative to its owning graph.
type Direction int

const (
	In Direction = iota
	Out
)

func (d Direction) String() string {
	if d == In {
		return "in"
	}
	return "out"
}

// ClockDomain is an identity-compared named marker carried by Ports and
// Signals. Equality is pointer identity, not name equality, matching
// spec.md's "identity-compared": two domains independently constructed with
// the same name are distinct domains.
type ClockDomain struct {
	name string
}

// NewClockDomain allocates a fresh, distinct clock domain.
func NewClockDomain(name string) *ClockDomain { return &ClockDomain{name: name} }

// Name returns the domain's display name (not used for equality).
func (c *ClockDomain) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Same reports whether c and other are the identical domain (or both nil).
func (c *ClockDomain) Same(other *ClockDomain) bool { return c == other }

// Metadata is the free-form annotation channel carried by every Node, Edge
// and graph.Graph (§6). It is a thin wrapper over map[string]string so the
// zero value is immediately usable.
type Metadata map[string]string

// Get returns the value for key and whether it was present.
func (m Metadata) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m[key]
	return v, ok
}

// Has reports whether key is set to the literal string "true".
func (m Metadata) Has(key string) bool {
	v, ok := m.Get(key)
	return ok && v == "true"
}

// Set stores value under key, allocating the backing map on first use. Since
// Metadata is a map type, Set mutates the caller's map in place; callers that
// hold a Metadata obtained from a Node should call Node.Metadata(), never
// keep a stale copy.
func (m *Metadata) Set(key, value string) {
	if *m == nil {
		*m = make(Metadata)
	}
	(*m)[key] = value
}

// Owner is the minimal contract a graph (Component or Instance) must satisfy
// for node ownership, copy-onto and NodeArray bookkeeping. Defined here
// rather than in package graph so that node does not import graph.
type Owner interface {
	// AddObject registers obj under its own name. Returns an error if the
	// name is already taken by a different object.
	AddObject(obj Node) error
	// GetNode looks up a node by name.
	GetNode(name string) (Node, bool)
	// HasObject reports whether name is already registered.
	HasObject(name string) bool
	// OwnerName identifies the owner in error messages (component/instance name).
	OwnerName() string
}

// Node is the common contract satisfied by Port, Signal, Parameter, Literal
// and Expression.
type Node interface {
	Name() string
	Kind() Kind
	Metadata() Metadata
	Parent() Owner
	SetParent(Owner)
	Array() *NodeArray
	setArray(*NodeArray)

	// InEdge returns the single driving edge, or nil if undriven or this kind
	// never accepts an input (Literal, Expression).
	InEdge() *Edge
	// OutEdges returns every edge for which this node is the source.
	OutEdges() []*Edge

	AddEdge(e *Edge) error
	RemoveEdge(e *Edge) error
	// Replace rewires every edge incident on this node onto r, registers r
	// on the owning graph (if any), and updates r's NodeArray size
	// back-reference (if this node was an array's size). This node itself
	// stays registered on the owning graph; it is not removed.
	Replace(r Node) error

	// Clone returns a structurally identical, unparented copy (no parent, no
	// array back-pointer, and no edges other than the default-driver edge a
	// Parameter clone gets from NewParameter). Used by CopyOnto.
	Clone() Node
}

// base implements the shared bookkeeping every Node kind needs: name,
// metadata, owning graph, array back-pointer, and the single-input /
// multi-output edge invariant. Concrete kinds embed base by value and
// forward AddEdge/RemoveEdge to it; the allowsInput flag (false for Literal
// and Expression) is what rejects input edges.
type base struct {
	name        string
	metadata    Metadata
	parent      Owner
	array       *NodeArray
	allowsInput bool
	inEdge      *Edge
	outEdges    []*Edge
}

func (b *base) Name() string         { return b.name }
func (b *base) Metadata() Metadata {
	if b.metadata == nil {
		b.metadata = make(Metadata)
	}
	return b.metadata
}
func (b *base) Parent() Owner        { return b.parent }
func (b *base) SetParent(o Owner)    { b.parent = o }
func (b *base) Array() *NodeArray    { return b.array }
func (b *base) setArray(a *NodeArray) { b.array = a }
func (b *base) InEdge() *Edge        { return b.inEdge }
func (b *base) OutEdges() []*Edge {
	out := make([]*Edge, len(b.outEdges))
	copy(out, b.outEdges)
	return out
}

// addEdge is the shared AddEdge body; self must be the concrete Node
// embedding this base, used for endpoint identity checks.
func (b *base) addEdge(e *Edge, self Node) error {
	isSrc := e.Src == self
	isDst := e.Dst == self
	if !isSrc && !isDst {
		return ErrEdgeNotIncident
	}
	if isDst {
		if !b.allowsInput {
			if self.Kind() == KindLiteral {
				return ErrLiteralNoInput
			}
			return ErrExpressionNoInput
		}
		if b.inEdge != nil && b.inEdge != e {
			detachSrcSide(b.inEdge)
		}
		b.inEdge = e
	}
	if isSrc {
		b.outEdges = append(b.outEdges, e)
	}
	return nil
}

func (b *base) removeEdge(e *Edge, self Node) error {
	if b.inEdge == e {
		b.inEdge = nil
		return nil
	}
	for i, oe := range b.outEdges {
		if oe == e {
			b.outEdges = append(b.outEdges[:i], b.outEdges[i+1:]...)
			return nil
		}
	}
	return ErrEdgeNotFound
}

// detachSrcSide removes e from e.Src's outgoing-edge list without touching
// e.Dst, used when a new driver bumps an old one off a single-input node.
func detachSrcSide(e *Edge) {
	if e.Src == nil {
		return
	}
	_ = e.Src.RemoveEdge(e)
}

// replace rewires every edge incident on self onto r (same direction),
// parents r on self's parent graph and registers it there if any (self is
// not removed from that graph), and fixes up self's NodeArray size
// back-reference if self was that array's size node. self and r must be
// distinct.
func replace(self, r Node) error {
	for _, e := range self.OutEdges() {
		e.Src = r
		_ = self.RemoveEdge(e)
		_ = r.AddEdge(e)
	}
	if in := self.InEdge(); in != nil {
		in.Dst = r
		_ = self.RemoveEdge(in)
		_ = r.AddEdge(in)
	}
	if p := self.Parent(); p != nil {
		r.SetParent(p)
		if err := p.AddObject(r); err != nil {
			return fmt.Errorf("node.Replace: %w", err)
		}
	}
	if arr := self.Array(); arr != nil && arr.Size() == self {
		arr.setSize(r)
	}
	return nil
}
