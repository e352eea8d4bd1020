package vhdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hwir/hwtype"
	"github.com/katalvlaran/hwir/node"
)

// spec.md §8 scenario 3: a record with an inverted ready field flips the
// direction of just that one leaf's assignment.
func TestAssignmentLines_RecordReversedHandshakeFlipsReadyOnly(t *testing.T) {
	rec, err := hwtype.Record("handshake", []hwtype.Field{
		{Name: "valid", Type: hwtype.Bit(), Sep: true},
		{Name: "data", Type: hwtype.Vector(node.NewIntLiteral("dw", 4)), Sep: true},
		{Name: "ready", Type: hwtype.Bit(), Reversed: true, Sep: true},
	})
	require.NoError(t, err)

	dst := node.NewPort("x", rec, node.In, nil)
	src := node.NewPort("y", rec, node.Out, nil)

	lines, err := assignmentLines(dst, src)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"x_valid <= y_valid;",
		"x_data <= y_data;",
		"y_ready <= x_ready;",
	}, lines)
}
