package hwir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hwir/dot"
	"github.com/katalvlaran/hwir/hwir"
	"github.com/katalvlaran/hwir/vhdl"
)

// End-to-end: build a parent component instantiating a sized child, connect
// an instance parameter to an outer one, then emit both VHDL and DOT for the
// same graph and check the two back ends agree on what exists.
func TestEndToEnd_ParentChildInstanceEmitsVHDLAndDOT(t *testing.T) {
	child := hwir.NewComponent("counter")
	width := hwir.NewParameter("width", hwir.Integer(), hwir.Intl("width_default", 8))
	require.NoError(t, child.Add(width))
	require.NoError(t, child.Add(hwir.NewPort("count", hwir.Vector(width), hwir.Out, nil)))

	top := hwir.NewComponent("top")
	topWidth := hwir.NewParameter("top_width", hwir.Integer(), hwir.Intl("top_width_default", 16))
	require.NoError(t, top.Add(topWidth))

	inst, err := top.Instantiate(child, "ci")
	require.NoError(t, err)

	instWidth, err := inst.Ap("width")
	require.NoError(t, err)
	_, _, err = hwir.Connect(instWidth, topWidth)
	require.NoError(t, err)

	instPort, err := inst.Ap("count")
	require.NoError(t, err)
	sig := hwir.NewSignal("ci_count", instPort.(*hwir.Port).Type(), nil)
	require.NoError(t, top.Add(sig))
	_, _, err = hwir.Connect(sig, instPort)
	require.NoError(t, err)

	vhdlOut, err := vhdl.Emit([]*hwir.Component{child, top}, nil)
	require.NoError(t, err)
	assert.Contains(t, vhdlOut["counter"], "WIDTH : integer := 8")
	assert.Contains(t, vhdlOut["top"], "WIDTH => TOP_WIDTH")
	assert.Contains(t, vhdlOut["top"], "signal ci_count")

	dotOut, err := dot.Emit(top, dot.Config{})
	require.NoError(t, err)
	assert.Contains(t, dotOut, "digraph")
	assert.Contains(t, dotOut, "top_top_width")
}
