package node

import "fmt"

// NodeArray owns a base node (the template every child clones) and a size
// node (Literal, Parameter or Expression) that tracks how many children
// currently exist. Every child is a clone of base, belongs to the same
// parent graph, and carries a back-pointer to this array (Node.Array()).
type NodeArray struct {
	name     string
	base     Node
	size     Node
	children []Node
	parent   Owner
}

// NewNodeArray builds an array with zero children around base/size. base and
// size are not themselves added as children; base is the template Append
// clones from.
func NewNodeArray(name string, base, size Node) *NodeArray {
	return &NodeArray{name: name, base: base, size: size}
}

func (a *NodeArray) Name() string    { return a.name }
func (a *NodeArray) Base() Node      { return a.base }
func (a *NodeArray) Size() Node      { return a.size }
func (a *NodeArray) Parent() Owner   { return a.parent }
func (a *NodeArray) SetParent(o Owner) {
	a.parent = o
	for _, c := range a.children {
		c.SetParent(o)
	}
}
func (a *NodeArray) Children() []Node {
	out := make([]Node, len(a.children))
	copy(out, a.children)
	return out
}
func (a *NodeArray) Len() int { return len(a.children) }

func (a *NodeArray) setSize(n Node) { a.size = n }

// At returns the child at the given index, matching spec.md's array-indexed
// access.
func (a *NodeArray) At(i int) (Node, bool) {
	if i < 0 || i >= len(a.children) {
		return nil, false
	}
	return a.children[i], true
}

// Append clones base, names the clone "<array name>[<index>]", parents and
// array-back-references it, appends it to the children list, and — unless
// noIncrement is true — replaces the size node with a new one per spec.md
// §3's three strategies: literal → literal+1, parameter → fresh copy whose
// default is the incremented old default, expression → expression+1
// simplified. The noIncrement=true path is spec.md §7's recovered
// "NodeArray::Append(bool increment)" overload (exposed here as
// AppendNoIncrement), for callers that manage the size node themselves.
func (a *NodeArray) Append() (Node, error) {
	return a.append(false)
}

// AppendNoIncrement clones base without touching the size node.
func (a *NodeArray) AppendNoIncrement() (Node, error) {
	return a.append(true)
}

func (a *NodeArray) append(noIncrement bool) (Node, error) {
	idx := len(a.children)
	child := a.base.Clone()
	renameNode(child, fmt.Sprintf("%s[%d]", a.name, idx))
	child.SetParent(a.parent)
	child.setArray(a)
	a.children = append(a.children, child)

	if noIncrement {
		return child, nil
	}

	switch sz := a.size.(type) {
	case *Literal:
		a.size = NewIntLiteral(fmt.Sprintf("%s_size", a.name), sz.intVal+1)
	case *Parameter:
		oldDef := sz.def
		newDef := NewIntLiteral(oldDef.name+"_next", oldDef.intVal+1)
		a.size = NewParameter(sz.name, sz.typ, newDef)
	case *Expression:
		one := NewIntLiteral("1", 1)
		a.size = Minimize(Make(OpAdd, sz, one))
	}
	return child, nil
}

// renameNode stamps a new name onto a freshly cloned node. Clone()
// implementations always copy the template's name, so callers that need a
// distinct per-child name (array children) rename immediately after cloning.
func renameNode(n Node, name string) {
	switch v := n.(type) {
	case *Port:
		v.name = name
	case *Signal:
		v.name = name
	case *Parameter:
		v.name = name
	case *Literal:
		v.name = name
	case *Expression:
		v.name = name
	}
}
