package hwtype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hwir/hwtype"
)

// fakeGeneric is a minimal hwtype.Generic stand-in for package-local tests,
// so hwtype's test suite does not need to import package node (which
// depends on hwtype) just to exercise the type algebra in isolation.
type fakeGeneric struct {
	id      string
	literal int64
	isLit   bool
}

func (f fakeGeneric) ID() string             { return f.id }
func (f fakeGeneric) Literal() (int64, bool) { return f.literal, f.isLit }

func lit(n int64) fakeGeneric        { return fakeGeneric{id: "", literal: n, isLit: true} }
func param(name string) fakeGeneric { return fakeGeneric{id: name, isLit: false} }

func TestVector_PhysicalAndGeneric(t *testing.T) {
	v8 := hwtype.Vector(lit(8))
	assert.True(t, v8.IsPhysical())
	assert.False(t, v8.IsGeneric())
	assert.Empty(t, v8.Generics())

	vw := hwtype.Vector(param("WIDTH"))
	assert.True(t, vw.IsPhysical())
	assert.True(t, vw.IsGeneric())
	require.Len(t, vw.Generics(), 1)
	assert.Equal(t, "WIDTH", vw.Generics()[0].ID())
}

func TestScalarTypes_NotPhysicalNotGeneric(t *testing.T) {
	for _, ty := range []hwtype.Type{hwtype.Integer(), hwtype.String(), hwtype.Boolean()} {
		assert.False(t, ty.IsPhysical())
		assert.False(t, ty.IsGeneric())
	}
	assert.True(t, hwtype.Bit().IsPhysical())
	assert.False(t, hwtype.Bit().IsGeneric())
}

func TestRecord_DuplicateFieldRejected(t *testing.T) {
	_, err := hwtype.Record("r", []hwtype.Field{
		{Name: "a", Type: hwtype.Bit()},
		{Name: "a", Type: hwtype.Bit()},
	})
	assert.ErrorIs(t, err, hwtype.ErrDuplicateField)
}

func TestRecord_PhysicalRequiresAllFieldsPhysical(t *testing.T) {
	r, err := hwtype.Record("r", []hwtype.Field{
		{Name: "data", Type: hwtype.Vector(lit(8))},
		{Name: "count", Type: hwtype.Integer()},
	})
	require.NoError(t, err)
	assert.False(t, r.IsPhysical())
}

func TestRecord_GenericFieldMakesRecordGeneric(t *testing.T) {
	r, err := hwtype.Record("r", []hwtype.Field{
		{Name: "data", Type: hwtype.Vector(param("W"))},
	})
	require.NoError(t, err)
	assert.True(t, r.IsGeneric())
	require.Len(t, r.Generics(), 1)
	assert.Equal(t, "W", r.Generics()[0].ID())
}

func TestIsEqual_IgnoresFieldNames(t *testing.T) {
	a, err := hwtype.Record("a", []hwtype.Field{{Name: "x", Type: hwtype.Bit()}})
	require.NoError(t, err)
	b, err := hwtype.Record("b", []hwtype.Field{{Name: "y", Type: hwtype.Bit()}})
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqualStrict(b))
}

func TestIsEqual_VectorLiteralWidths(t *testing.T) {
	assert.True(t, hwtype.Vector(lit(8)).IsEqual(hwtype.Vector(lit(8))))
	assert.False(t, hwtype.Vector(lit(8)).IsEqual(hwtype.Vector(lit(4))))
}

func TestIsEqual_VectorGenericWidthsByID(t *testing.T) {
	assert.True(t, hwtype.Vector(param("W")).IsEqual(hwtype.Vector(param("W"))))
	assert.False(t, hwtype.Vector(param("W")).IsEqual(hwtype.Vector(param("V"))))
	assert.False(t, hwtype.Vector(param("W")).IsEqual(hwtype.Vector(lit(8))))
}

func TestCopy_RebindsGenericWidth(t *testing.T) {
	v := hwtype.Vector(param("W"))
	cp := v.Copy(map[string]hwtype.Generic{"W": lit(8)})
	val, ok := cp.Width().Literal()
	require.True(t, ok)
	assert.Equal(t, int64(8), val)
}

func TestCopy_NoRebindIsValueEqual(t *testing.T) {
	v := hwtype.Vector(lit(8))
	cp := v.Copy(nil)
	assert.True(t, v.IsEqual(cp))
}

func TestRebind_Positional(t *testing.T) {
	r, err := hwtype.Record("pair", []hwtype.Field{
		{Name: "a", Type: hwtype.Vector(param("W1"))},
		{Name: "b", Type: hwtype.Vector(param("W2"))},
	})
	require.NoError(t, err)

	rebound, err := r.Rebind(lit(4), lit(8))
	require.NoError(t, err)
	v1, _ := rebound.Fields()[0].Type.Width().Literal()
	v2, _ := rebound.Fields()[1].Type.Width().Literal()
	assert.Equal(t, int64(4), v1)
	assert.Equal(t, int64(8), v2)
}

func TestRebind_WrongArityErrors(t *testing.T) {
	v := hwtype.Vector(param("W"))
	_, err := v.Rebind(lit(1), lit(2))
	assert.ErrorIs(t, err, hwtype.ErrNotGeneric)
}
