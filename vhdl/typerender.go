package vhdl

import (
	"fmt"

	"github.com/katalvlaran/hwir/hwtype"
	"github.com/katalvlaran/hwir/node"
	"github.com/katalvlaran/hwir/value"
)

// forceVectorKey is the metadata flag (§7, recovered from
// original_source/.../vhdl/declaration.cc's meta::FORCE_VECTOR) that forces a
// scalar Bit port or signal to emit as a single-element std_logic_vector
// instead of a bare std_logic.
const forceVectorKey = "force_vector"

// genericValue resolves a hwtype.Generic (a width or array size) to a
// value.Value: a literal folds to its integer; a Parameter still carrying
// its own default renders as its upper-cased, sanitized name (the generic
// reference an entity declares); a Parameter rebound to something else
// (an instance parameter bound via graph.Connect to an outer value, per
// spec.md §4.G step 4) resolves through to that driver instead, since the
// parameter's own name is only meaningful inside the component that
// declares it, not in the parent scope a signalized signal is declared in.
func genericValue(g hwtype.Generic) value.Value {
	if lit, ok := g.Literal(); ok {
		return value.FromInt(lit)
	}
	if p, ok := g.(*node.Parameter); ok {
		if v := p.Value(); v != nil && v != node.Node(p.Default()) {
			if driver, ok := v.(hwtype.Generic); ok {
				return genericValue(driver)
			}
		}
	}
	if n, ok := g.(node.Node); ok {
		return value.FromFrag(upper(node.ToString(n)))
	}
	return value.Zero
}

// vhdlType renders t's declared VHDL type for a non-array port/signal/
// parameter. force mirrors the force_vector metadata flag: a scalar Bit
// becomes a one-element vector instead of std_logic.
func vhdlType(t hwtype.Type, force bool) string {
	switch t.Kind() {
	case hwtype.KindBit:
		if force {
			return "std_logic_vector(0 downto 0)"
		}
		return "std_logic"
	case hwtype.KindVector:
		hi := genericValue(t.Width()).Sub(value.FromInt(1))
		return fmt.Sprintf("std_logic_vector(%s downto 0)", hi.String())
	case hwtype.KindInteger:
		return "integer"
	case hwtype.KindString:
		return "string"
	case hwtype.KindBoolean:
		return "boolean"
	case hwtype.KindRecord:
		return sanitize(t.Name())
	default:
		return "std_logic"
	}
}

// vhdlArrayType renders the single concatenated VHDL type for an entire
// NodeArray of port-array or signal-array elements of base type t, replicated
// size times (spec.md §4.H: "port arrays expand into
// std_logic_vector(size*width-1 downto 0)").
func vhdlArrayType(t hwtype.Type, size hwtype.Generic) string {
	width := elementWidth(t)
	total := scaleWidth(width, genericValue(size))
	hi := total.Sub(value.FromInt(1))
	return fmt.Sprintf("std_logic_vector(%s downto 0)", hi.String())
}

// elementWidth returns a Bit or Vector element's own bit width as a Value;
// other kinds (Record, scalars) are not valid array element types for VHDL
// emission and fall back to 1 so callers still produce syntactically sound,
// if meaningless, output rather than panicking mid-emission.
func elementWidth(t hwtype.Type) value.Value {
	switch t.Kind() {
	case hwtype.KindBit:
		return value.FromInt(1)
	case hwtype.KindVector:
		return genericValue(t.Width())
	default:
		return value.FromInt(1)
	}
}

// scaleWidth multiplies width by size, folding to a literal product when
// both sides resolve to integers and otherwise keeping whichever side is
// symbolic as a scaled fragment (value.Value only tracks one named fragment
// at a time, so a symbolic width times a symbolic size falls back to a
// literal "*" expression string instead of a true Value).
func scaleWidth(width, size value.Value) value.Value {
	if width.Frag == "" {
		return size.Mul(width.Int)
	}
	if size.Frag == "" {
		return width.Mul(size.Int)
	}
	return value.FromFrag(fmt.Sprintf("%s*%s", size.String(), width.String()))
}
