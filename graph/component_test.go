package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hwir/graph"
	"github.com/katalvlaran/hwir/hwtype"
	"github.com/katalvlaran/hwir/node"
)

func TestComponent_AddRegistersAndAccessors(t *testing.T) {
	c := graph.NewComponent("adder")
	p := node.NewPort("a", hwtype.Bit(), node.In, nil)
	require.NoError(t, c.Add(p))

	got, err := c.Prt("a")
	require.NoError(t, err)
	assert.Same(t, p, got)

	_, err = c.Sig("a")
	assert.ErrorIs(t, err, graph.ErrWrongKind)

	_, err = c.Prt("missing")
	assert.ErrorIs(t, err, graph.ErrNotFound)
}

func TestComponent_AddRejectsDuplicateName(t *testing.T) {
	c := graph.NewComponent("adder")
	require.NoError(t, c.Add(node.NewPort("a", hwtype.Bit(), node.In, nil)))
	err := c.Add(node.NewPort("a", hwtype.Bit(), node.Out, nil))
	assert.ErrorIs(t, err, graph.ErrDuplicateName)
}

func TestComponent_AddRejectsUnregisteredGeneric(t *testing.T) {
	c := graph.NewComponent("buf")
	width := node.NewParameter("width", hwtype.Integer(), node.NewIntLiteral("8", 8))
	port := node.NewPort("data", hwtype.Vector(width), node.In, nil)

	err := c.Add(port)
	assert.ErrorIs(t, err, graph.ErrUnregisteredGeneric)

	require.NoError(t, c.Add(width))
	require.NoError(t, c.Add(port))
}

func TestComponent_AddAcceptsLiteralGenericUnconditionally(t *testing.T) {
	c := graph.NewComponent("buf")
	eight := node.NewIntLiteral("eight", 8)
	port := node.NewPort("data", hwtype.Vector(eight), node.In, nil)
	assert.NoError(t, c.Add(port))
}

func TestComponent_FrozenAfterInstantiate(t *testing.T) {
	c := graph.NewComponent("buf")
	require.NoError(t, c.Add(node.NewPort("a", hwtype.Bit(), node.Out, nil)))

	top := graph.NewComponent("top")
	_, err := top.Instantiate(c, "")
	require.NoError(t, err)
	assert.True(t, c.WasInstantiated())

	err = c.Add(node.NewPort("b", hwtype.Bit(), node.In, nil))
	assert.ErrorIs(t, err, graph.ErrFrozen)
}

func TestComponent_NodesOfAndArraysOf(t *testing.T) {
	c := graph.NewComponent("mux")
	require.NoError(t, c.Add(node.NewPort("sel", hwtype.Bit(), node.In, nil)))
	require.NoError(t, c.Add(node.NewSignal("tmp", hwtype.Bit(), nil)))

	ports := c.NodesOf(node.KindPort)
	require.Len(t, ports, 1)
	assert.Equal(t, "sel", ports[0].Name())

	arr := node.NewNodeArray("lanes", node.NewPort("lanes", hwtype.Bit(), node.In, nil), node.NewIntLiteral("lanes_size", 0))
	require.NoError(t, c.AddArray(arr))
	_, err := c.AppendArray("lanes")
	require.NoError(t, err)

	arrays := c.ArraysOf(node.KindPort)
	require.Len(t, arrays, 1)
	assert.Equal(t, 1, arrays[0].Len())

	got, err := c.PrtArr("lanes")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
}
