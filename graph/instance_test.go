package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hwir/graph"
	"github.com/katalvlaran/hwir/hwtype"
	"github.com/katalvlaran/hwir/node"
)

func newWidthPort(c *graph.Component, name string) *node.Port {
	width := node.NewParameter(name+"_width", hwtype.Integer(), node.NewIntLiteral("8", 8))
	_ = c.Add(width)
	port := node.NewPort(name, hwtype.Vector(width), node.In, nil)
	_ = c.Add(port)
	return port
}

func TestInstantiate_AllocatesFreshNameOnCollision(t *testing.T) {
	top := graph.NewComponent("top")
	c := graph.NewComponent("buf")
	require.NoError(t, c.Add(node.NewPort("a", hwtype.Bit(), node.In, nil)))

	first, err := top.Instantiate(c, "")
	require.NoError(t, err)
	assert.Equal(t, "buf", first.Name())

	second, err := top.Instantiate(c, "")
	require.NoError(t, err)
	assert.Equal(t, "buf_inst1", second.Name())
}

func TestInstantiate_CopiesParametersAndPortsWithSharedWidth(t *testing.T) {
	top := graph.NewComponent("top")
	c := graph.NewComponent("buf")
	newWidthPort(c, "data")

	inst, err := top.Instantiate(c, "buf0")
	require.NoError(t, err)

	param, err := inst.Ap("data_width")
	require.NoError(t, err)
	require.Equal(t, node.KindParameter, param.Kind())

	port, err := inst.Ap("data")
	require.NoError(t, err)
	portType := port.(*node.Port).Type()
	require.Equal(t, hwtype.KindVector, portType.Kind())
	assert.Same(t, param.(*node.Parameter), portType.Width())

	comp, ok := inst.InstToComp("data")
	require.True(t, ok)
	assert.Equal(t, "data", comp.Name())
}

func TestInstance_ApResolvesArrayIndexSyntax(t *testing.T) {
	top := graph.NewComponent("top")
	c := graph.NewComponent("mux")
	arr := node.NewNodeArray("lane", node.NewPort("lane", hwtype.Bit(), node.Out, nil), node.NewIntLiteral("lane_size", 0))
	require.NoError(t, c.AddArray(arr))
	_, err := c.AppendArray("lane")
	require.NoError(t, err)

	inst, err := top.Instantiate(c, "")
	require.NoError(t, err)

	// A freshly instantiated array copy starts empty (original_source's
	// array.cc resets a copied array's size to zero) — the blueprint's
	// existing "lane[0]" element is not itself copied onto the instance.
	_, err = inst.Ap("lane[0]")
	assert.ErrorIs(t, err, graph.ErrNotFound)

	_, err = inst.AppendArray("lane")
	require.NoError(t, err)

	n, err := inst.Ap("lane[0]")
	require.NoError(t, err)
	assert.Equal(t, "lane[0]", n.Name())
}
