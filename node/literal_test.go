package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hwir/node"
)

func TestLiteral_GenericContract(t *testing.T) {
	i := node.NewIntLiteral("three", 3)
	v, ok := i.Literal()
	assert.True(t, ok)
	assert.Equal(t, int64(3), v)
	assert.Equal(t, "three", i.ID())

	s := node.NewStringLiteral("hello", "world")
	_, ok = s.Literal()
	assert.False(t, ok)

	b := node.NewBoolLiteral("flag", true)
	_, ok = b.Literal()
	assert.False(t, ok)
	assert.True(t, b.BoolValue())
}

func TestLiteral_Type(t *testing.T) {
	assert.Equal(t, "Integer", node.NewIntLiteral("i", 1).Type().Kind().String())
	assert.Equal(t, "String", node.NewStringLiteral("s", "x").Type().Kind().String())
	assert.Equal(t, "Boolean", node.NewBoolLiteral("b", false).Type().Kind().String())
}
