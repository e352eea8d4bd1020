package node

import "github.com/katalvlaran/hwir/hwtype"

// LitKind discriminates the three literal payload shapes.
type LitKind int

const (
	LitInt LitKind = iota
	LitString
	LitBool
)

func (k LitKind) String() string {
	switch k {
	case LitInt:
		return "Int"
	case LitString:
		return "String"
	case LitBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// Literal is a no-input, multi-output constant node, normally obtained from
// the process literal pool and shared by every node that references the same
// (kind, value) pair. Literal implements hwtype.Generic so it can stand in
// directly for a Vector width or a Record field's generic.
type Literal struct {
	base
	litKind LitKind
	intVal  int64
	strVal  string
	boolVal bool
}

// NewIntLiteral builds a fresh, unpooled integer literal under the given
// name. Package pool wraps this (or the String/Bool variants) with interning
// by (kind, value); Expression folding uses it directly for intermediate
// results that never need to be shared.
func NewIntLiteral(name string, v int64) *Literal {
	return &Literal{base: base{name: name}, litKind: LitInt, intVal: v}
}

// NewStringLiteral builds a fresh string literal.
func NewStringLiteral(name, v string) *Literal {
	return &Literal{base: base{name: name}, litKind: LitString, strVal: v}
}

// NewBoolLiteral builds a fresh boolean literal.
func NewBoolLiteral(name string, v bool) *Literal {
	return &Literal{base: base{name: name}, litKind: LitBool, boolVal: v}
}

func (l *Literal) Kind() Kind          { return KindLiteral }
func (l *Literal) LitKind() LitKind    { return l.litKind }
func (l *Literal) IntValue() int64     { return l.intVal }
func (l *Literal) StringValue() string { return l.strVal }
func (l *Literal) BoolValue() bool     { return l.boolVal }

// Type returns the hwtype.Type a literal of this kind stands for: Integer,
// String or Boolean — literals are never Bit/Vector/Record-typed themselves,
// they are the non-physical scalar constants parameters hold.
func (l *Literal) Type() hwtype.Type {
	switch l.litKind {
	case LitString:
		return hwtype.String()
	case LitBool:
		return hwtype.Boolean()
	default:
		return hwtype.Integer()
	}
}

// ID implements hwtype.Generic.
func (l *Literal) ID() string { return l.name }

// Literal implements hwtype.Generic: an int literal always resolves; the
// other two kinds never do (a Vector width is never a string or a bool).
func (l *Literal) Literal() (int64, bool) {
	if l.litKind == LitInt {
		return l.intVal, true
	}
	return 0, false
}

func (l *Literal) AddEdge(e *Edge) error    { return l.base.addEdge(e, l) }
func (l *Literal) RemoveEdge(e *Edge) error { return l.base.removeEdge(e, l) }
func (l *Literal) Replace(r Node) error     { return replace(l, r) }

func (l *Literal) Clone() Node {
	return &Literal{
		base:    base{name: l.name, metadata: cloneMetadata(l.metadata)},
		litKind: l.litKind,
		intVal:  l.intVal,
		strVal:  l.strVal,
		boolVal: l.boolVal,
	}
}

func cloneMetadata(m Metadata) Metadata {
	if m == nil {
		return nil
	}
	cp := make(Metadata, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}
