package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/hwir/hwtype"
	"github.com/katalvlaran/hwir/node"
)

// Instance is a single use of a Component within a parent: a fresh copy of
// the component's parameters and ports, rebound against this instance's own
// generics via node.CopyOnto, plus an inst→comp node map recording which
// instance node mirrors which component node (spec.md §4.F's data model —
// consulted by the VHDL signalization pass to build generic/port maps).
type Instance struct {
	name     string
	comp     *Component
	parent   *Component
	objects  map[string]node.Node
	order    []string
	arrays   map[string]*node.NodeArray
	arrayOrd []string
	instComp map[string]node.Node
	metadata node.Metadata
}

// OwnerName implements node.Owner.
func (i *Instance) OwnerName() string { return i.name }

// Name returns the instance's own name.
func (i *Instance) Name() string { return i.name }

// Component returns the component blueprint this instance was stamped from.
func (i *Instance) Component() *Component { return i.comp }

// Parent returns the component that owns this instance as a child (the one
// whose Instantiate call created it).
func (i *Instance) Parent() *Component { return i.parent }

// Metadata returns the instance's metadata map.
func (i *Instance) Metadata() node.Metadata { return i.metadata }

// HasObject implements node.Owner.
func (i *Instance) HasObject(name string) bool {
	_, ok := i.objects[name]
	return ok
}

// GetNode implements node.Owner.
func (i *Instance) GetNode(name string) (node.Node, bool) {
	n, ok := i.objects[name]
	return n, ok
}

// AddObject implements node.Owner: registers obj under its own name,
// rejecting a second, different object under the same name. Used by
// node.CopyOnto during Instantiate.
func (i *Instance) AddObject(obj node.Node) error {
	if existing, ok := i.objects[obj.Name()]; ok && existing != obj {
		return fmt.Errorf("Instance.AddObject(%q): %w", obj.Name(), ErrDuplicateName)
	}
	if _, already := i.objects[obj.Name()]; !already {
		i.order = append(i.order, obj.Name())
	}
	i.objects[obj.Name()] = obj
	return nil
}

// AddArray registers arr under its own name and makes each current child
// (there are none on a freshly instantiated array — see CopyArrayOnto)
// independently reachable via GetNode/Ap, the Instance-side counterpart of
// Component.AddArray.
func (i *Instance) AddArray(arr *node.NodeArray) error {
	if _, ok := i.arrays[arr.Name()]; ok {
		return fmt.Errorf("Instance.AddArray(%q): %w", arr.Name(), ErrDuplicateName)
	}
	arr.SetParent(i)
	i.arrays[arr.Name()] = arr
	i.arrayOrd = append(i.arrayOrd, arr.Name())
	for _, child := range arr.Children() {
		i.registerChild(child)
	}
	return nil
}

// AppendArray grows the named array by one child (spec.md §8 scenario 5:
// "port array with expression-generic index" growing an instance's own copy
// after instantiation, the shape original_source's array.cc resets every
// copied array's size to for the caller to Append() back onto) and
// registers the new child so GetNode/Ap/Ports can find it by its
// "name[index]" identity.
func (i *Instance) AppendArray(name string) (node.Node, error) {
	arr, ok := i.arrays[name]
	if !ok {
		return nil, fmt.Errorf("Instance.AppendArray(%q): %w", name, ErrNotFound)
	}
	child, err := arr.Append()
	if err != nil {
		return nil, fmt.Errorf("Instance.AppendArray(%q): %w", name, err)
	}
	i.registerChild(child)
	return child, nil
}

// registerChild adds a just-created array element to both objects and order
// so it is visible to Ports()/nodesOf — unlike Component.AddArray, which
// registers into objects only.
func (i *Instance) registerChild(child node.Node) {
	if _, already := i.objects[child.Name()]; !already {
		i.order = append(i.order, child.Name())
	}
	i.objects[child.Name()] = child
}

// NodeArrayOf looks up a registered array by name.
func (i *Instance) NodeArrayOf(name string) (*node.NodeArray, bool) {
	a, ok := i.arrays[name]
	return a, ok
}

// PortArrays returns every port-shaped NodeArray, in registration order —
// always port-shaped in practice, since an Instance never owns Signals.
func (i *Instance) PortArrays() []*node.NodeArray {
	var out []*node.NodeArray
	for _, name := range i.arrayOrd {
		if a := i.arrays[name]; a.Base().Kind() == node.KindPort {
			out = append(out, a)
		}
	}
	return out
}

// Ports returns every copied Port object, in copy order.
func (i *Instance) Ports() []*node.Port { return portsOf(i.nodesOf(node.KindPort)) }

// Parameters returns every copied Parameter object, in copy order.
func (i *Instance) Parameters() []*node.Parameter { return parametersOf(i.nodesOf(node.KindParameter)) }

func (i *Instance) nodesOf(k node.Kind) []node.Node {
	var out []node.Node
	for _, name := range i.order {
		if n := i.objects[name]; n.Kind() == k {
			out = append(out, n)
		}
	}
	return out
}

// InstToComp looks up the component-side node a given instance node name was
// copied from (the inst→comp map).
func (i *Instance) InstToComp(instNodeName string) (node.Node, bool) {
	n, ok := i.instComp[instNodeName]
	return n, ok
}

// Ap implements spec.md §6's named object accessor ("Instance::ap(name)"),
// additionally searching port arrays by "name[index]" syntax (recovered
// from original_source's array-aware port lookup, §7).
func (i *Instance) Ap(name string) (node.Node, error) {
	if n, ok := i.objects[name]; ok {
		return n, nil
	}
	if base, idx, ok := parseArrayIndex(name); ok {
		if n, ok := i.objects[fmt.Sprintf("%s[%d]", base, idx)]; ok {
			return n, nil
		}
	}
	return nil, fmt.Errorf("Instance.Ap(%q): %w", name, ErrNotFound)
}

// parseArrayIndex splits "name[3]" into ("name", 3, true); anything else
// reports ok=false.
func parseArrayIndex(s string) (string, int, bool) {
	open := strings.IndexByte(s, '[')
	if open < 0 || !strings.HasSuffix(s, "]") {
		return "", 0, false
	}
	idx, err := strconv.Atoi(s[open+1 : len(s)-1])
	if err != nil {
		return "", 0, false
	}
	return s[:open], idx, true
}

// Instantiate implements spec.md §4.F's instantiate(comp, name) algorithm,
// with c as the parent gaining a new child instance of comp ("instances are
// owned by their parent component", spec.md §3):
//  1. Freeze comp (its interface can never change again).
//  2. Allocate a fresh instance name, suffixing "_inst{N}" on collision
//     against c's existing child instances, when none was supplied or the
//     supplied one is already taken.
//  3. Copy every parameter, then every port of comp onto the new Instance
//     via node.CopyOnto, threading one rebinding map across the whole call
//     so sibling ports sharing a width parameter converge on a single
//     copied parameter node.
//  4. Copy every port array as an empty, rebound template (node.CopyArrayOnto)
//     that the caller grows with Instance.AppendArray — a fresh instance
//     never inherits the blueprint's existing array elements (spec.md §8
//     scenario 5, grounded on original_source's array.cc resetting a copied
//     array's size to zero).
//  5. Record each copy in the instance's inst→comp map.
func (c *Component) Instantiate(comp *Component, name string) (*Instance, error) {
	comp.frozen = true
	name = c.allocateInstanceName(comp.name, name)

	inst := &Instance{
		name:     name,
		comp:     comp,
		parent:   c,
		objects:  make(map[string]node.Node),
		arrays:   make(map[string]*node.NodeArray),
		instComp: make(map[string]node.Node),
	}
	rebinding := make(map[string]hwtype.Generic)

	for _, p := range comp.Parameters() {
		copied, err := node.CopyOnto(p, inst, p.Name(), rebinding)
		if err != nil {
			return nil, fmt.Errorf("Component.Instantiate(%q): parameter %q: %w", name, p.Name(), err)
		}
		inst.instComp[copied.Name()] = p
	}
	for _, p := range comp.Ports() {
		copied, err := node.CopyOnto(p, inst, p.Name(), rebinding)
		if err != nil {
			return nil, fmt.Errorf("Component.Instantiate(%q): port %q: %w", name, p.Name(), err)
		}
		inst.instComp[copied.Name()] = p
	}
	for _, arr := range comp.PortArrays() {
		copied, err := node.CopyArrayOnto(arr, arr.Name(), inst, rebinding)
		if err != nil {
			return nil, fmt.Errorf("Component.Instantiate(%q): port array %q: %w", name, arr.Name(), err)
		}
		if err := inst.AddArray(copied); err != nil {
			return nil, fmt.Errorf("Component.Instantiate(%q): port array %q: %w", name, arr.Name(), err)
		}
	}

	c.instances = append(c.instances, inst)
	return inst, nil
}

// allocateInstanceName implements the "_inst{N} on collision" rule: an empty
// request defaults to the instantiated component's own name, and any
// collision with one of c's existing child instances is resolved by
// appending "_inst1", "_inst2", ... until a free name is found.
func (c *Component) allocateInstanceName(compName, requested string) string {
	candidate := requested
	if candidate == "" {
		candidate = compName
	}
	if !c.instanceNameTaken(candidate) {
		return candidate
	}
	for n := 1; ; n++ {
		next := fmt.Sprintf("%s_inst%d", candidate, n)
		if !c.instanceNameTaken(next) {
			return next
		}
	}
}

func (c *Component) instanceNameTaken(name string) bool {
	for _, inst := range c.instances {
		if inst.name == name {
			return true
		}
	}
	return false
}
