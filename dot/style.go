package dot

import (
	"fmt"

	"gonum.org/v1/gonum/graph/encoding"

	"github.com/katalvlaran/hwir/hwtype"
	hwnode "github.com/katalvlaran/hwir/node"
)

// typed is satisfied by the physically-typed node kinds (Port, Signal) plus
// Parameter and Literal, every kind whose Type() decides record-vs-ellipse
// shape (spec.md §4.I: "shape (record for complex types, ellipse for
// primitives) with per-type styling").
type typed interface {
	Type() hwtype.Type
}

// Attributes implements encoding.Attributer, rendering one node's shape and
// fill color by kind (original_source/.../dot/style.h's per-kind palette,
// reproduced as a small, fixed table rather than a configurable theme since
// nothing downstream of Emit ever needs a second palette).
func (d dotNode) Attributes() []encoding.Attribute {
	shape := "ellipse"
	if t, ok := d.n.(typed); ok && t.Type().Kind() == hwtype.KindRecord {
		shape = "record"
	}
	attrs := []encoding.Attribute{
		{Key: "shape", Value: shape},
		{Key: "style", Value: "filled"},
		{Key: "fillcolor", Value: fillColor(d.n.Kind())},
		{Key: "label", Value: fmt.Sprintf("%q", d.n.Name())},
	}
	return attrs
}

func fillColor(k hwnode.Kind) string {
	switch k {
	case hwnode.KindPort:
		return "lightblue"
	case hwnode.KindSignal:
		return "lightyellow"
	case hwnode.KindParameter:
		return "lightgreen"
	case hwnode.KindLiteral:
		return "white"
	case hwnode.KindExpression:
		return "orange"
	default:
		return "white"
	}
}

// Attributes implements encoding.Attributer for an edge: a label equal to
// the array index when exactly one endpoint is inside a NodeArray, or
// "srcIdx to dstIdx" when both are (spec.md §4.I).
func (d dotEdge) Attributes() []encoding.Attribute {
	srcIdx, srcOK := arrayIndex(d.e.Src)
	dstIdx, dstOK := arrayIndex(d.e.Dst)

	var label string
	switch {
	case srcOK && dstOK:
		label = fmt.Sprintf("%d to %d", srcIdx, dstIdx)
	case srcOK:
		label = fmt.Sprintf("%d", srcIdx)
	case dstOK:
		label = fmt.Sprintf("%d", dstIdx)
	default:
		return nil
	}
	return []encoding.Attribute{{Key: "label", Value: fmt.Sprintf("%q", label)}}
}

// redRootNode wraps a dotNode so its fillcolor always renders red,
// overriding dotNode.Attributes's usual per-kind palette — the "red root"
// spec.md §4.I asks an expanded Expression's subgraph root to have.
type redRootNode struct {
	dotNode
}

func (r redRootNode) Attributes() []encoding.Attribute {
	attrs := r.dotNode.Attributes()
	for i, a := range attrs {
		if a.Key == "fillcolor" {
			attrs[i].Value = "red"
		}
	}
	return attrs
}
