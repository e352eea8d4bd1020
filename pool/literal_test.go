package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hwir/node"
	"github.com/katalvlaran/hwir/pool"
)

func TestLiteralPool_InternsIntByValue(t *testing.T) {
	p := pool.NewLiteralPool()
	a := p.Intl(3)
	b := p.Intl(3)
	assert.Same(t, a, b)

	c := p.Intl(4)
	assert.NotSame(t, a, c)
}

func TestLiteralPool_AddRejectsDuplicateName(t *testing.T) {
	p := pool.NewLiteralPool()
	l1 := node.NewIntLiteral("x", 1)
	l2 := node.NewIntLiteral("x", 2)

	require.NoError(t, p.Add(l1))
	err := p.Add(l2)
	assert.ErrorIs(t, err, pool.ErrDuplicateName)
}

func TestLiteralPool_ClearEmpties(t *testing.T) {
	p := pool.NewLiteralPool()
	p.Intl(1)
	p.Clear()
	_, ok := p.Get("int_1")
	assert.False(t, ok)
}
