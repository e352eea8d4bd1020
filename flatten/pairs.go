package flatten

import (
	"sort"

	"github.com/katalvlaran/hwir/hwtype"
	"github.com/katalvlaran/hwir/matrix"
	"github.com/katalvlaran/hwir/value"
)

// LeafRef names one flat leaf within a mapping pair: its index into the
// flattened slice it came from, the group ordinal it was recorded under
// (the matrix cell's value), and the leaf itself.
type LeafRef struct {
	FlatIndex int
	Ordinal   int
	FlatType  FlatType
}

// MappingPair is one ordinal group from a mapping matrix, resolved against
// both sides' flat-leaf lists. Exactly one of the three spec.md §4.E shapes
// holds: 1-to-1 (len(A) == len(B) == 1), many-to-1 from b onto a
// (len(A) == 1, len(B) > 1), or many-to-1 from a onto b (len(A) > 1,
// len(B) == 1). A and B are never both multi-leaf: set_next never marks a
// cell outside the row/col that already owns its ordinal's singleton, so a
// well-formed matrix cannot produce that shape.
type MappingPair struct {
	Ordinal int
	A       []LeafRef
	B       []LeafRef
}

// UniquePairs resolves every distinct nonzero ordinal in m into a
// MappingPair, in ascending ordinal order (matching spec.md's "order within
// each pair follows the ordinal stored in the matrix" — SetNext hands out
// strictly increasing ordinals in call order, so ascending-ordinal iteration
// reconstructs construction order). Within a pair, the multi-leaf side is
// ordered by ascending flat index.
func UniquePairs(m *matrix.MappingMatrix, a, b []FlatType) ([]MappingPair, error) {
	type group struct {
		as, bs []LeafRef
	}
	groups := make(map[int]*group)

	for y := 0; y < m.Rows(); y++ {
		for x := 0; x < m.Cols(); x++ {
			k, err := m.At(y, x)
			if err != nil {
				return nil, err
			}
			if k == 0 {
				continue
			}
			g := groups[k]
			if g == nil {
				g = &group{}
				groups[k] = g
			}
			g.as = appendUnique(g.as, LeafRef{FlatIndex: y, Ordinal: k, FlatType: a[y]})
			g.bs = appendUnique(g.bs, LeafRef{FlatIndex: x, Ordinal: k, FlatType: b[x]})
		}
	}

	ordinals := make([]int, 0, len(groups))
	for k := range groups {
		ordinals = append(ordinals, k)
	}
	sort.Ints(ordinals)

	pairs := make([]MappingPair, 0, len(ordinals))
	for _, k := range ordinals {
		g := groups[k]
		sort.Slice(g.as, func(i, j int) bool { return g.as[i].FlatIndex < g.as[j].FlatIndex })
		sort.Slice(g.bs, func(i, j int) bool { return g.bs[i].FlatIndex < g.bs[j].FlatIndex })
		pairs = append(pairs, MappingPair{Ordinal: k, A: g.as, B: g.bs})
	}
	return pairs, nil
}

func appendUnique(refs []LeafRef, r LeafRef) []LeafRef {
	for _, existing := range refs {
		if existing.FlatIndex == r.FlatIndex {
			return refs
		}
	}
	return append(refs, r)
}

// Width sums the bit-widths of every FlatType in refs as a value.Value. A
// leaf with no intrinsic width of its own (any kind other than Bit or
// Vector, e.g. a Record's own entry in the flattening, or a Vector with no
// width) contributes fallback instead, letting callers fold in a
// caller-supplied default for
// structural-only levels that have no physical bits of their own.
func Width(refs []LeafRef, fallback value.Value) value.Value {
	total := value.Zero
	for _, r := range refs {
		total = total.Add(leafWidth(r.FlatType, fallback))
	}
	return total
}

func leafWidth(ft FlatType, fallback value.Value) value.Value {
	switch ft.Type.Kind() {
	case hwtype.KindBit:
		return value.FromInt(1)
	case hwtype.KindVector:
		return widthFromGeneric(ft, fallback)
	default:
		return fallback
	}
}

func widthFromGeneric(ft FlatType, fallback value.Value) value.Value {
	w := ft.Type.Width()
	if w == nil {
		return fallback
	}
	if lit, ok := w.Literal(); ok {
		return value.FromInt(lit)
	}
	return value.FromFrag(w.ID())
}
