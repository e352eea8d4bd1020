package graph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hwir/flatten"
	"github.com/katalvlaran/hwir/hwtype"
	"github.com/katalvlaran/hwir/node"
)

// Sentinel errors specific to Connect's validity checks (§4.G).
var (
	// ErrNilEndpoint indicates Connect was called with a nil dst or src.
	ErrNilEndpoint = errors.New("graph: connect requires both endpoints")

	// ErrNoMapper indicates neither an explicit nor an implicit type mapper
	// exists between src's and dst's types (the same value as
	// flatten.ErrNoMapper).
	ErrNoMapper = flatten.ErrNoMapper

	// ErrCrossComponent indicates both endpoints belong to distinct
	// Components — only a Component and its own child Instances may be
	// connected directly.
	ErrCrossComponent = errors.New("graph: cannot connect ports across two distinct components")

	// ErrIllegalDirection indicates a port's direction/parent-kind
	// combination forbids it from acting as the role Connect assigned it.
	ErrIllegalDirection = errors.New("graph: port direction is illegal for this connection's role")
)

// Warning is a non-fatal finding from Connect, returned to the caller as a
// value rather than logged — HwIR does not wire a logging library (see
// DESIGN.md); callers decide how to surface it.
type Warning struct {
	Message string
}

// Connect implements spec.md §4.G's connect(dst, src):
//  1. Null-check both endpoints.
//  2. Clock-domain check (mismatched domains produce a Warning, not an
//     error — automatic crossing is out of scope).
//  3. Require a type mapper between src and dst (generating the implicit
//     identity mapper when the types are structurally equal).
//  4. Component-to-component boundary checks, plus inst→comp binding
//     bookkeeping when src is an instance child's parameter.
//  5. Port direction/parent-kind legality, for both endpoints.
//  6. Create the edge and register it on both endpoints.
func Connect(dst, src node.Node) (*node.Edge, *Warning, error) {
	if dst == nil || src == nil {
		return nil, nil, ErrNilEndpoint
	}

	warning := checkDomains(dst, src)

	if err := checkMapper(dst, src); err != nil {
		return nil, nil, err
	}

	if err := checkComponentBoundary(dst, src); err != nil {
		return nil, nil, err
	}

	if err := checkDirection(dst, true); err != nil {
		return nil, nil, fmt.Errorf("graph.Connect: dst: %w", err)
	}
	if err := checkDirection(src, false); err != nil {
		return nil, nil, fmt.Errorf("graph.Connect: src: %w", err)
	}

	name := fmt.Sprintf("%s_from_%s", dst.Name(), src.Name())
	e := node.NewEdge(name, src, dst)
	if err := src.AddEdge(e); err != nil {
		return nil, nil, fmt.Errorf("graph.Connect: %w", err)
	}
	if err := dst.AddEdge(e); err != nil {
		_ = src.RemoveEdge(e)
		return nil, nil, fmt.Errorf("graph.Connect: %w", err)
	}
	return e, warning, nil
}

type domained interface {
	Domain() *node.ClockDomain
}

func checkDomains(dst, src node.Node) *Warning {
	dd, dok := dst.(domained)
	ds, sok := src.(domained)
	if !dok || !sok {
		return nil
	}
	a, b := dd.Domain(), ds.Domain()
	if a == nil || b == nil || a.Same(b) {
		return nil
	}
	return &Warning{Message: fmt.Sprintf("connecting across clock domains %q and %q", a.Name(), b.Name())}
}

type typed interface {
	Type() hwtype.Type
}

// checkMapper requires a type mapper only when at least one endpoint is
// physically typed (a Port or Signal) — Parameter-to-Parameter and
// Expression connections carry no wire shape to map.
func checkMapper(dst, src node.Node) error {
	if !isWire(dst) && !isWire(src) {
		return nil
	}
	dt, dok := dst.(typed)
	st, sok := src.(typed)
	if !dok || !sok {
		return nil
	}
	_, err := flatten.GetOrMakeMapper(st.Type(), dt.Type())
	if err != nil {
		return fmt.Errorf("graph.Connect: %w", err)
	}
	return nil
}

func isWire(n node.Node) bool {
	return n.Kind() == node.KindPort || n.Kind() == node.KindSignal
}

// checkComponentBoundary implements §4.G step 4: two objects rooted in
// distinct Components may never connect directly; a Component connecting to
// a parameter of one of its own Instances records the binding into that
// instance's inst→comp map so the signalization pass can see it.
func checkComponentBoundary(dst, src node.Node) error {
	if bindInstanceParameter(dst, src) || bindInstanceParameter(src, dst) {
		return nil
	}

	dp, dHas := ownerComponent(dst)
	sp, sHas := ownerComponent(src)
	if !dHas || !sHas || dp == sp {
		return nil
	}
	return fmt.Errorf("graph.Connect: %w", ErrCrossComponent)
}

// bindInstanceParameter implements §4.G step 4's second bullet: if outer
// belongs directly to a Component and inner is a Parameter of one of that
// component's own child Instances, record the binding into the instance's
// inst→comp map (so the signalization pass later knows which outer value
// drives that instance's parameter) and report true.
func bindInstanceParameter(outer, inner node.Node) bool {
	comp, ok := outer.Parent().(*Component)
	if !ok {
		return false
	}
	param, ok := inner.(*node.Parameter)
	if !ok {
		return false
	}
	inst, ok := param.Parent().(*Instance)
	if !ok || inst.Parent() != comp {
		return false
	}
	inst.instComp[param.Name()] = outer
	return true
}

// ownerComponent walks up to the nearest Component ancestor: directly, if
// n's parent is a Component, or via n's parent Instance's containing
// Component (the one that created it, not the blueprint it was stamped
// from — two instances of the same leaf component placed inside the same
// parent still count as "the same component" for boundary purposes).
func ownerComponent(n node.Node) (*Component, bool) {
	switch p := n.Parent().(type) {
	case *Component:
		return p, true
	case *Instance:
		return p.Parent(), true
	default:
		return nil, false
	}
}

// checkDirection implements §4.G step 5's direction/parent-kind legality.
// As dst: an instance's Out port cannot be driven (it is itself a source),
// and a component's own In port cannot be driven from inside (internally it
// behaves as a source feeding the component's body). As src, the roles
// invert symmetrically: an instance's In port cannot act as a source, and a
// component's own Out port cannot act as a source from inside (internally
// it is what gets driven).
func checkDirection(n node.Node, isDst bool) error {
	p, ok := n.(*node.Port)
	if !ok {
		return nil
	}
	switch p.Parent().(type) {
	case *Instance:
		if isDst && p.Direction() == node.Out {
			return fmt.Errorf("instance port %q (out): %w", p.Name(), ErrIllegalDirection)
		}
		if !isDst && p.Direction() == node.In {
			return fmt.Errorf("instance port %q (in): %w", p.Name(), ErrIllegalDirection)
		}
	case *Component:
		if isDst && p.Direction() == node.In {
			return fmt.Errorf("component port %q (in): %w", p.Name(), ErrIllegalDirection)
		}
		if !isDst && p.Direction() == node.Out {
			return fmt.Errorf("component port %q (out): %w", p.Name(), ErrIllegalDirection)
		}
	}
	return nil
}
