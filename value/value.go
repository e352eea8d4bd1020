// Package value implements the symbolic "literal plus named fragment" arithmetic
// used for widths and range endpoints throughout HwIR. A Value is either a bare
// integer, a bare textual fragment (a parameter or expression name), or a sum of
// the two; it is not a general expression tree — see package node for that.
package value

import "fmt"

// Value is an integer literal plus an optional textual fragment, e.g. the VHDL
// text "TOP_WIDTH-1" is Value{Int: -1, Frag: "TOP_WIDTH"}. scale multiplies Frag
// when a width is replicated (array flattening), e.g. "2*TOP_WIDTH-1".
//
// Equality is syntactic: two Values are equal iff their fields are equal.
// "TOP_WIDTH+1" and "1+TOP_WIDTH" are therefore distinct Values even though
// they denote the same quantity; callers that build Values from a fixed
// traversal order (as flatten does) never observe this.
type Value struct {
	Int   int64
	Frag  string
	scale int64 // 0 or 1 means "no scaling"; only meaningful when Frag != ""
}

// Zero is the additive identity.
var Zero = Value{}

// FromInt wraps a bare integer literal.
func FromInt(n int64) Value { return Value{Int: n} }

// FromFrag wraps a bare textual fragment with no integer offset.
func FromFrag(frag string) Value { return Value{Frag: frag} }

// IsZero reports whether v is the literal zero (no fragment, Int == 0).
func (v Value) IsZero() bool { return v.Frag == "" && v.Int == 0 }

// Add returns v+other, applying the identities v+0=v and 0+v=v.
//
// Add only folds two Values when at most one carries a (differently-scaled or
// named) fragment; two distinct fragments cannot be summed into a single
// Value — the result would need a real expression tree, so package node's
// Expression exists for that case. Value only ever accumulates at most one
// named fragment plus a running integer constant and multiplier, which is all
// flatten's width arithmetic ever needs.
func (v Value) Add(other Value) Value {
	switch {
	case v.Frag == "":
		return Value{Int: v.Int + other.Int, Frag: other.Frag, scale: other.scale}
	case other.Frag == "":
		return Value{Int: v.Int + other.Int, Frag: v.Frag, scale: v.scale}
	case v.Frag == other.Frag && v.scale == other.scale:
		return Value{Int: v.Int + other.Int, Frag: v.Frag, scale: v.scale}
	default:
		panic(fmt.Sprintf("value: cannot Add distinct fragments %q and %q", v.Frag, other.Frag))
	}
}

// Sub returns v-other, applying the identity v-0=v. Subtracting a fragment
// requires it to match v's fragment (same restriction as Add); the matching
// fragments then cancel.
func (v Value) Sub(other Value) Value {
	if other.Frag == "" {
		return v.Add(Value{Int: -other.Int})
	}
	if v.Frag != other.Frag || v.scale != other.scale {
		panic(fmt.Sprintf("value: cannot Sub fragment %q from %q", other.Frag, v.Frag))
	}
	return Value{Int: v.Int - other.Int}
}

// Mul returns v scaled by the integer n, applying v*1=v and v*0=0.
//
// Scaling a fragment by an integer other than 0 or 1 produces a Value whose
// String form is a product expression, e.g. 2*W. HwIR only ever scales widths
// by small constant multipliers (array replication), so Mul keeps the
// fragment and records the multiplier rather than attempting general
// polynomial forms.
func (v Value) Mul(n int64) Value {
	switch {
	case n == 1:
		return v
	case n == 0:
		return Zero
	case v.Frag == "":
		return Value{Int: v.Int * n}
	default:
		scale := v.scale
		if scale == 0 {
			scale = 1
		}
		return Value{Int: v.Int * n, Frag: v.Frag, scale: scale * n}
	}
}

// String renders the Value as VHDL-style infix text: "FRAG+N", "FRAG-N",
// "K*FRAG", "FRAG", "N", or "0".
func (v Value) String() string {
	frag := v.Frag
	if v.scale != 0 && v.scale != 1 {
		frag = fmt.Sprintf("%d*%s", v.scale, frag)
	}
	switch {
	case frag == "" && v.Int == 0:
		return "0"
	case frag == "":
		return fmt.Sprintf("%d", v.Int)
	case v.Int == 0:
		return frag
	case v.Int > 0:
		return fmt.Sprintf("%s+%d", frag, v.Int)
	default:
		return fmt.Sprintf("%s-%d", frag, -v.Int)
	}
}
