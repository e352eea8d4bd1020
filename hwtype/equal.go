package hwtype

// IsEqual reports structural equality: for Record types, field count then
// in-order field *types* (field names are deliberately ignored — see the
// open question logged in DESIGN.md/SPEC_FULL.md §9.1). For Vector, widths
// are equal iff both resolve to the same literal, or neither is literal and
// they share the same generic ID. Integer/String/Boolean/Bit are equal iff
// both sides share the same Kind.
func (t Type) IsEqual(other Type) bool {
	if t.kind != other.kind {
		return false
	}
	switch t.kind {
	case KindBit, KindInteger, KindString, KindBoolean:
		return true
	case KindVector:
		return widthsEqual(t.width, other.width)
	case KindRecord:
		if len(t.fields) != len(other.fields) {
			return false
		}
		for i := range t.fields {
			if !t.fields[i].Type.IsEqual(other.fields[i].Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func widthsEqual(a, b Generic) bool {
	if a == nil || b == nil {
		return a == b
	}
	av, aLit := a.Literal()
	bv, bLit := b.Literal()
	if aLit && bLit {
		return av == bv
	}
	if aLit != bLit {
		return false
	}
	return a.ID() == b.ID()
}

// IsEqualStrict additionally requires field names (and Reversed/Sep flags) to
// match, closing the open question from spec.md §9 in the stricter direction
// for callers who want it. It is never used by connect()'s default mapper
// lookup — only IsEqual is, per spec.md's documented (name-blind) behavior.
func (t Type) IsEqualStrict(other Type) bool {
	if t.kind != other.kind {
		return false
	}
	if t.kind == KindRecord {
		if len(t.fields) != len(other.fields) {
			return false
		}
		for i := range t.fields {
			a, b := t.fields[i], other.fields[i]
			if a.Name != b.Name || a.Reversed != b.Reversed || a.Sep != b.Sep {
				return false
			}
			if !a.Type.IsEqualStrict(b.Type) {
				return false
			}
		}
		return true
	}
	return t.IsEqual(other)
}
