package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hwir/hwtype"
	"github.com/katalvlaran/hwir/node"
)

func TestNodeArray_AppendIncrementsLiteralSize(t *testing.T) {
	base := node.NewPort("elem", hwtype.Bit(), node.In, nil)
	size := node.NewIntLiteral("n", 0)
	arr := node.NewNodeArray("elems", base, size)

	_, err := arr.Append()
	require.NoError(t, err)
	_, err = arr.Append()
	require.NoError(t, err)

	require.Equal(t, 2, arr.Len())
	lit, ok := arr.Size().(*node.Literal)
	require.True(t, ok)
	v, _ := lit.Literal()
	assert.Equal(t, int64(2), v)

	c0, ok := arr.At(0)
	require.True(t, ok)
	assert.Equal(t, "elems[0]", c0.Name())
}

func TestNodeArray_AppendIncrementsParameterSize(t *testing.T) {
	base := node.NewSignal("elem", hwtype.Bit(), nil)
	size := node.NewParameter("n", hwtype.Integer(), node.NewIntLiteral("n0", 0))
	arr := node.NewNodeArray("elems", base, size)

	_, err := arr.Append()
	require.NoError(t, err)

	param, ok := arr.Size().(*node.Parameter)
	require.True(t, ok)
	v, ok := param.Default().Literal()
	require.True(t, ok)
	assert.Equal(t, int64(1), v)
}

func TestNodeArray_AppendNoIncrement(t *testing.T) {
	base := node.NewPort("elem", hwtype.Bit(), node.In, nil)
	size := node.NewIntLiteral("n", 5)
	arr := node.NewNodeArray("elems", base, size)

	_, err := arr.AppendNoIncrement()
	require.NoError(t, err)

	lit := arr.Size().(*node.Literal)
	v, _ := lit.Literal()
	assert.Equal(t, int64(5), v, "no-increment append must leave the size node untouched")
	assert.Equal(t, 1, arr.Len())
}
