package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	n      int
	resets int
}

func TestAcquireRelease(t *testing.T) {
	p := New[item](2, func(it *item) { it.resets++ })
	assert.Equal(t, 2, p.Free())
	assert.Equal(t, 0, p.InUse())

	a, ok := p.Acquire()
	require.True(t, ok)
	b, ok := p.Acquire()
	require.True(t, ok)
	assert.NotSame(t, a, b)
	assert.Equal(t, 1, a.resets)

	_, ok = p.Acquire()
	assert.False(t, ok, "pool of two must be exhausted")
	assert.Equal(t, p.Size(), p.Free()+p.InUse())

	p.Release(a)
	assert.Equal(t, 1, p.Free())

	c, ok := p.Acquire()
	require.True(t, ok)
	assert.Same(t, a, c, "released item is reused")
	assert.Equal(t, 2, c.resets)
	assert.Equal(t, p.Size(), p.Free()+p.InUse())
}

func TestReleaseTwicePanics(t *testing.T) {
	p := New[item](1, nil)
	a, _ := p.Acquire()
	p.Release(a)
	assert.Panics(t, func() { p.Release(a) })
	assert.Panics(t, func() { p.Release(&item{}) })
}
