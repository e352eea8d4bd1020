package hwir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hwir/hwir"
)

func TestFacade_BuildAndConnectTwoPorts(t *testing.T) {
	c := hwir.NewComponent("buf")
	in := hwir.NewPort("a", hwir.Bit(), hwir.In, nil)
	out := hwir.NewPort("b", hwir.Bit(), hwir.Out, nil)
	require.NoError(t, c.Add(in))
	require.NoError(t, c.Add(out))

	edge, warning, err := hwir.Connect(out, in)
	require.NoError(t, err)
	assert.Nil(t, warning)
	assert.Equal(t, in, edge.Src)
	assert.Equal(t, out, edge.Dst)
}

func TestFacade_VectorWidthFromParameter(t *testing.T) {
	width := hwir.NewParameter("width", hwir.Integer(), hwir.Intl("width_default", 8))
	vec := hwir.Vector(width)
	assert.True(t, vec.IsGeneric())
	assert.Equal(t, hwir.Node(width), vec.Width().(hwir.Node))
}
