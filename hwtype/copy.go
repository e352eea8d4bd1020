package hwtype

// Copy deep-copies t. Whenever a generic reachable from t has an ID present
// in rebinding, the copy references the mapped Generic instead of the
// original. Mapper attachments are not part of Type's value representation
// (see package flatten's MapperRegistry), so Copy has nothing mapper-related
// to re-home; a freshly copied type simply starts with no mappers registered
// under its own key until something calls flatten.GetOrMakeMapper on it.
func (t Type) Copy(rebinding map[string]Generic) Type {
	switch t.kind {
	case KindVector:
		w := t.width
		if w != nil {
			if mapped, ok := rebinding[w.ID()]; ok {
				w = mapped
			}
		}
		return Type{kind: KindVector, name: t.name, width: w}
	case KindRecord:
		fields := make([]Field, len(t.fields))
		for i, f := range t.fields {
			fields[i] = Field{
				Name:     f.Name,
				Type:     f.Type.Copy(rebinding),
				Reversed: f.Reversed,
				Sep:      f.Sep,
			}
		}
		return Type{kind: KindRecord, name: t.name, fields: fields}
	default:
		return Type{kind: t.kind, name: t.name}
	}
}

// Rebind is the Go-idiomatic replacement for the source's operator(nodes)
// convenience: it rebinds t's Generics(), in pre-order, positionally against
// the supplied replacements. len(gens) must equal len(t.Generics()).
func (t Type) Rebind(gens ...Generic) (Type, error) {
	want := t.Generics()
	if len(gens) != len(want) {
		return Type{}, ErrNotGeneric
	}
	rebinding := make(map[string]Generic, len(want))
	for i, g := range want {
		rebinding[g.ID()] = gens[i]
	}
	return t.Copy(rebinding), nil
}
