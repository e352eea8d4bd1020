// Package graph implements spec.md §4.F/§4.G: Component and Instance, the
// two concrete node.Owner implementations, instantiation, and the edge
// connection rules that govern graph.Connect.
//
// Component and Instance satisfy node.Owner without package node importing
// package graph — node.Owner is the dependency-inversion seam documented in
// node/node.go. Like node and pool, this package carries no internal
// locking: spec.md §5 makes single-threaded use the explicit contract.
package graph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hwir/hwtype"
	"github.com/katalvlaran/hwir/node"
)

// Sentinel errors for graph operations.
var (
	// ErrDuplicateName indicates Add/AddObject was called with a name
	// already registered to a different object on this graph.
	ErrDuplicateName = errors.New("graph: name already registered")

	// ErrWrongParent indicates obj already belongs to a different graph.
	ErrWrongParent = errors.New("graph: object already belongs to a different graph")

	// ErrUnregisteredGeneric indicates obj's type references a Parameter or
	// Expression generic that is not yet registered on the target graph.
	ErrUnregisteredGeneric = errors.New("graph: referenced generic is not yet registered on this graph")

	// ErrFrozen indicates a mutation was attempted on a Component after its
	// first Instantiate call.
	ErrFrozen = errors.New("graph: component is frozen after its first instantiation")

	// ErrNotFound indicates a named lookup (GetNode, Ap, Prt, Sig, Par, ...)
	// found nothing under that name.
	ErrNotFound = errors.New("graph: object not found")

	// ErrWrongKind indicates a named lookup found an object, but not of the
	// kind the accessor requires (e.g. Prt("x") where x is a Signal).
	ErrWrongKind = errors.New("graph: object kind does not match requested accessor")
)

// Component is a reusable hardware building block: a named set of ports,
// parameters and signals, a record of child instances, and the metadata
// channel (§6). A Component is mutable until its first Instantiate call, at
// which point it freezes (per spec.md §4.F: "a component's interface is
// fixed once it has been instantiated at least once").
type Component struct {
	name      string
	objects   map[string]node.Node
	order     []string
	arrays    map[string]*node.NodeArray
	arrayOrd  []string
	instances []*Instance
	metadata  node.Metadata
	frozen    bool
}

// NewComponent builds an empty, unfrozen Component.
func NewComponent(name string) *Component {
	return &Component{
		name:    name,
		objects: make(map[string]node.Node),
		arrays:  make(map[string]*node.NodeArray),
	}
}

// OwnerName implements node.Owner.
func (c *Component) OwnerName() string { return c.name }

// Name returns the component's own name.
func (c *Component) Name() string { return c.name }

// Metadata returns the component's metadata map (§6's channel for
// primitive=true and similar VHDL-backend directives).
func (c *Component) Metadata() node.Metadata { return c.metadata }

// SetMeta stores a metadata key/value pair.
func (c *Component) SetMeta(key, value string) { c.metadata.Set(key, value) }

// Doc reads a metadata key, recovered from original_source's Graph::meta().
func (c *Component) Doc(key string) (string, bool) { return c.metadata.Get(key) }

// WasInstantiated reports whether this component has been frozen by a prior
// Instantiate call.
func (c *Component) WasInstantiated() bool { return c.frozen }

// Instances returns the child instances created by Instantiate, in creation
// order.
func (c *Component) Instances() []*Instance {
	out := make([]*Instance, len(c.instances))
	copy(out, c.instances)
	return out
}

// HasObject implements node.Owner.
func (c *Component) HasObject(name string) bool {
	if _, ok := c.objects[name]; ok {
		return true
	}
	_, ok := c.arrays[name]
	return ok
}

// GetNode implements node.Owner. It does not search array names directly —
// callers that want an array's element look it up via NodeArrayOf + At, or
// via Instance.Ap's "name[index]" syntax once instantiated.
func (c *Component) GetNode(name string) (node.Node, bool) {
	n, ok := c.objects[name]
	return n, ok
}

// AddObject implements node.Owner, delegating to Add.
func (c *Component) AddObject(obj node.Node) error { return c.Add(obj) }

// Add implements spec.md §4.F's add(obj): rejects a second object under the
// same name, rejects an object that already belongs to a different graph,
// and requires every Parameter/Expression generic the object's type
// references to already be registered here (a Literal generic is always
// acceptable — literals are pool-owned, not graph-owned). On success obj is
// parented onto c and registered.
//
// Once c is frozen (after its first instantiation as a child elsewhere),
// adding a Port or Parameter is a hard error; adding a Signal, Literal or
// Expression remains legal (spec.md's "adding signals, child instances, and
// edges remains legal" after first instantiation).
func (c *Component) Add(obj node.Node) error {
	if c.frozen && (obj.Kind() == node.KindPort || obj.Kind() == node.KindParameter) {
		return fmt.Errorf("Component.Add(%q): %w", obj.Name(), ErrFrozen)
	}
	if existing, ok := c.objects[obj.Name()]; ok && existing != obj {
		return fmt.Errorf("Component.Add(%q): %w", obj.Name(), ErrDuplicateName)
	}
	if p := obj.Parent(); p != nil && p != node.Owner(c) {
		return fmt.Errorf("Component.Add(%q): %w", obj.Name(), ErrWrongParent)
	}
	if err := c.checkGenericsRegistered(obj); err != nil {
		return err
	}
	if _, already := c.objects[obj.Name()]; !already {
		c.order = append(c.order, obj.Name())
	}
	obj.SetParent(c)
	c.objects[obj.Name()] = obj
	return nil
}

// checkGenericsRegistered implements the "referenced object already on this
// graph" half of spec.md §4.F's add(obj): a typed node's Vector (or nested
// Record field) generics must each be a Literal (unconditionally fine,
// pool-owned) or already present on c.
func (c *Component) checkGenericsRegistered(obj node.Node) error {
	t, ok := obj.(interface{ Type() hwtype.Type })
	if !ok {
		return nil
	}
	for _, g := range t.Type().Generics() {
		if _, isLit := g.(*node.Literal); isLit {
			continue
		}
		if c.HasObject(g.ID()) {
			continue
		}
		return fmt.Errorf("Component.Add(%q): generic %q: %w", obj.Name(), g.ID(), ErrUnregisteredGeneric)
	}
	return nil
}

// AddArray registers arr under its own name, parents it (and every child it
// already holds) onto c, and makes each current child independently
// reachable via GetNode/Ap.
func (c *Component) AddArray(arr *node.NodeArray) error {
	if c.frozen && arr.Base().Kind() == node.KindPort {
		return fmt.Errorf("Component.AddArray(%q): %w", arr.Name(), ErrFrozen)
	}
	if _, ok := c.arrays[arr.Name()]; ok {
		return fmt.Errorf("Component.AddArray(%q): %w", arr.Name(), ErrDuplicateName)
	}
	arr.SetParent(c)
	c.arrays[arr.Name()] = arr
	c.arrayOrd = append(c.arrayOrd, arr.Name())
	for _, child := range arr.Children() {
		c.objects[child.Name()] = child
	}
	return nil
}

// AppendArray grows the named array by one child (per NodeArray.Append's
// size-increment rules) and registers the new child so GetNode/Ap can find
// it by its "name[index]" identity.
func (c *Component) AppendArray(name string) (node.Node, error) {
	arr, ok := c.arrays[name]
	if !ok {
		return nil, fmt.Errorf("Component.AppendArray(%q): %w", name, ErrNotFound)
	}
	if c.frozen && arr.Base().Kind() == node.KindPort {
		return nil, fmt.Errorf("Component.AppendArray(%q): %w", name, ErrFrozen)
	}
	child, err := arr.Append()
	if err != nil {
		return nil, fmt.Errorf("Component.AppendArray(%q): %w", name, err)
	}
	c.objects[child.Name()] = child
	return child, nil
}

// NodeArrayOf looks up a registered array by name.
func (c *Component) NodeArrayOf(name string) (*node.NodeArray, bool) {
	a, ok := c.arrays[name]
	return a, ok
}

// NodesOf returns every object of the given kind, in registration order.
func (c *Component) NodesOf(k node.Kind) []node.Node {
	var out []node.Node
	for _, name := range c.order {
		if n := c.objects[name]; n.Kind() == k {
			out = append(out, n)
		}
	}
	return out
}

// ArraysOf returns every NodeArray whose base node is of the given kind, in
// registration order.
func (c *Component) ArraysOf(k node.Kind) []*node.NodeArray {
	var out []*node.NodeArray
	for _, name := range c.arrayOrd {
		if a := c.arrays[name]; a.Base().Kind() == k {
			out = append(out, a)
		}
	}
	return out
}

// Ports returns every Port object, in registration order.
func (c *Component) Ports() []*node.Port { return portsOf(c.NodesOf(node.KindPort)) }

// Signals returns every Signal object, in registration order.
func (c *Component) Signals() []*node.Signal { return signalsOf(c.NodesOf(node.KindSignal)) }

// Parameters returns every Parameter object, in registration order.
func (c *Component) Parameters() []*node.Parameter { return parametersOf(c.NodesOf(node.KindParameter)) }

// PortArrays returns every port-shaped NodeArray.
func (c *Component) PortArrays() []*node.NodeArray { return c.ArraysOf(node.KindPort) }

// SignalArrays returns every signal-shaped NodeArray.
func (c *Component) SignalArrays() []*node.NodeArray { return c.ArraysOf(node.KindSignal) }

// Prt looks up a Port by name, failing with ErrWrongKind if name resolves to
// a different kind.
func (c *Component) Prt(name string) (*node.Port, error) { return asPort(c.objects, name) }

// Sig looks up a Signal by name.
func (c *Component) Sig(name string) (*node.Signal, error) { return asSignal(c.objects, name) }

// Par looks up a Parameter by name.
func (c *Component) Par(name string) (*node.Parameter, error) { return asParameter(c.objects, name) }

// PrtArr looks up a port-shaped NodeArray by name.
func (c *Component) PrtArr(name string) (*node.NodeArray, error) {
	return asArrayOfKind(c.arrays, name, node.KindPort)
}

// SigArr looks up a signal-shaped NodeArray by name.
func (c *Component) SigArr(name string) (*node.NodeArray, error) {
	return asArrayOfKind(c.arrays, name, node.KindSignal)
}

func portsOf(ns []node.Node) []*node.Port {
	out := make([]*node.Port, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.(*node.Port))
	}
	return out
}

func signalsOf(ns []node.Node) []*node.Signal {
	out := make([]*node.Signal, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.(*node.Signal))
	}
	return out
}

func parametersOf(ns []node.Node) []*node.Parameter {
	out := make([]*node.Parameter, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.(*node.Parameter))
	}
	return out
}

func asPort(objects map[string]node.Node, name string) (*node.Port, error) {
	n, ok := objects[name]
	if !ok {
		return nil, fmt.Errorf("Prt(%q): %w", name, ErrNotFound)
	}
	p, ok := n.(*node.Port)
	if !ok {
		return nil, fmt.Errorf("Prt(%q): %w", name, ErrWrongKind)
	}
	return p, nil
}

func asSignal(objects map[string]node.Node, name string) (*node.Signal, error) {
	n, ok := objects[name]
	if !ok {
		return nil, fmt.Errorf("Sig(%q): %w", name, ErrNotFound)
	}
	s, ok := n.(*node.Signal)
	if !ok {
		return nil, fmt.Errorf("Sig(%q): %w", name, ErrWrongKind)
	}
	return s, nil
}

func asParameter(objects map[string]node.Node, name string) (*node.Parameter, error) {
	n, ok := objects[name]
	if !ok {
		return nil, fmt.Errorf("Par(%q): %w", name, ErrNotFound)
	}
	p, ok := n.(*node.Parameter)
	if !ok {
		return nil, fmt.Errorf("Par(%q): %w", name, ErrWrongKind)
	}
	return p, nil
}

func asArrayOfKind(arrays map[string]*node.NodeArray, name string, k node.Kind) (*node.NodeArray, error) {
	a, ok := arrays[name]
	if !ok {
		return nil, fmt.Errorf("array %q: %w", name, ErrNotFound)
	}
	if a.Base().Kind() != k {
		return nil, fmt.Errorf("array %q: %w", name, ErrWrongKind)
	}
	return a, nil
}
