package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hwir/hwtype"
	"github.com/katalvlaran/hwir/node"
)

func TestParameter_DefaultIsDrivenAtConstruction(t *testing.T) {
	def := node.NewIntLiteral("eight", 8)
	p := node.NewParameter("W", hwtype.Integer(), def)

	require.NotNil(t, p.InEdge())
	assert.Same(t, def, p.Value())

	resolved, ok := p.Value().(*node.Literal)
	require.True(t, ok)
	v, isLit := resolved.Literal()
	require.True(t, isLit)
	assert.Equal(t, int64(8), v)

	// A Parameter is never itself classified as a literal generic, even
	// when its current driver is one (spec.md's generic classification is
	// by node kind, not by resolved value).
	_, ok = p.Literal()
	assert.False(t, ok)
}

func TestParameter_SetValueRewiresDriver(t *testing.T) {
	p := node.NewParameter("W", hwtype.Integer(), node.NewIntLiteral("eight", 8))
	newVal := node.NewIntLiteral("sixteen", 16)

	require.NoError(t, p.SetValue(newVal))
	assert.Same(t, newVal, p.Value())
}

func TestParameter_CopyIsNonMutating(t *testing.T) {
	orig := node.NewParameter("W", hwtype.Integer(), node.NewIntLiteral("eight", 8))
	cp := orig.Copy(nil)

	require.NoError(t, cp.SetValue(node.NewIntLiteral("zero", 0)))
	v, ok := orig.Value().(*node.Literal)
	require.True(t, ok)
	iv, _ := v.Literal()
	assert.Equal(t, int64(8), iv, "mutating the copy must not affect the original")
}
