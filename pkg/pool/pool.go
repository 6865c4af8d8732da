package pool

import "github.com/golangdaddy/doodledrive/pkg/assert"

// Pool manages a fixed arena of reusable items. Every item is allocated when
// the pool is built; Acquire and Release only move items between the free
// list and the caller, so Free()+InUse() never changes.
//
// A Pool is not safe for concurrent use.
type Pool[T any] struct {
	free  []*T
	out   map[*T]struct{}
	reset func(*T)
	size  int
}

// New creates a pool holding size items. reset, if non-nil, runs on an item
// each time it is acquired.
func New[T any](size int, reset func(*T)) *Pool[T] {
	p := &Pool[T]{
		free:  make([]*T, 0, size),
		out:   make(map[*T]struct{}, size),
		reset: reset,
		size:  size,
	}
	arena := make([]T, size)
	for i := range arena {
		p.free = append(p.free, &arena[i])
	}
	return p
}

// Acquire pops a free item. ok is false when the pool is exhausted.
func (p *Pool[T]) Acquire() (item *T, ok bool) {
	if len(p.free) == 0 {
		return nil, false
	}
	item = p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	if p.reset != nil {
		p.reset(item)
	}
	p.out[item] = struct{}{}
	return item, true
}

// Release returns an acquired item to the free list. Releasing an item that
// is not currently acquired is an invariant violation.
func (p *Pool[T]) Release(item *T) {
	_, acquired := p.out[item]
	assert.IsTrue(acquired, "release of an item not acquired from this pool")
	delete(p.out, item)
	p.free = append(p.free, item)
}

// Free returns the number of items ready to be acquired.
func (p *Pool[T]) Free() int { return len(p.free) }

// InUse returns the number of acquired items.
func (p *Pool[T]) InUse() int { return len(p.out) }

// Size returns the total number of items owned by the pool.
func (p *Pool[T]) Size() int { return p.size }
