package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hwir/hwtype"
	"github.com/katalvlaran/hwir/node"
)

func TestPort_DirectionAndDomain(t *testing.T) {
	cd := node.NewClockDomain("kcd")
	p := node.NewPort("clk", hwtype.Bit(), node.In, cd)

	assert.Equal(t, node.In, p.Direction())
	assert.True(t, p.Domain().Same(cd))
	assert.Equal(t, node.KindPort, p.Kind())
}

func TestClockDomain_IdentityNotNameEquality(t *testing.T) {
	a := node.NewClockDomain("kcd")
	b := node.NewClockDomain("kcd")
	assert.False(t, a.Same(b), "independently constructed domains with the same name must differ")
}

func TestSignal_Clone_IsIndependent(t *testing.T) {
	s := node.NewSignal("s", hwtype.Vector(fakeGenericWidth{8}), nil)
	cp := s.Clone().(*node.Signal)

	assert.Equal(t, s.Name(), cp.Name())
	assert.NotSame(t, s, cp)
}

type fakeGenericWidth struct{ v int64 }

func (f fakeGenericWidth) ID() string             { return "" }
func (f fakeGenericWidth) Literal() (int64, bool) { return f.v, true }
