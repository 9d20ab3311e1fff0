package tween

// PoolConfig configures a [Pool].
type PoolConfig[T any] struct {
	// Capacity is the maximum number of instances kept in the free list.
	// Releases beyond capacity discard the instance. Defaults to 20.
	Capacity int
	// New constructs a fresh instance when the free list is empty. Required.
	New func() T
	// OnAcquire runs on every instance handed out by Acquire, whether
	// recycled or freshly constructed. Optional.
	OnAcquire func(T)
	// OnRelease runs on every instance passed to Release, before it enters
	// the free list (or is discarded). Use it to reset all state so a
	// recycled instance cannot leak a prior user's references. Optional.
	OnRelease func(T)
}

// Pool is a fixed-capacity cache of reusable instances. Acquire and Release
// are the only operations that touch the free list, so an instance can never
// be simultaneously free and in active use as long as callers release an
// instance at most once.
//
// A Pool assumes exclusive single-threaded access, like everything else in
// this package.
type Pool[T any] struct {
	cfg  PoolConfig[T]
	free []T
}

// NewPool creates a Pool with the given configuration.
func NewPool[T any](cfg PoolConfig[T]) *Pool[T] {
	if cfg.New == nil {
		panic("tween: PoolConfig.New is required")
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = 20
	}
	return &Pool[T]{
		cfg:  cfg,
		free: make([]T, 0, cfg.Capacity),
	}
}

// Acquire pops an instance from the free list, or constructs a fresh one if
// the list is empty. The OnAcquire hook runs either way.
func (p *Pool[T]) Acquire() T {
	var v T
	if n := len(p.free); n > 0 {
		v = p.free[n-1]
		var zero T
		p.free[n-1] = zero
		p.free = p.free[:n-1]
	} else {
		v = p.cfg.New()
	}
	if p.cfg.OnAcquire != nil {
		p.cfg.OnAcquire(v)
	}
	return v
}

// Release runs the OnRelease hook and pushes the instance back onto the free
// list. If the list is at capacity the instance is discarded instead; that
// is not an error.
func (p *Pool[T]) Release(v T) {
	if p.cfg.OnRelease != nil {
		p.cfg.OnRelease(v)
	}
	if len(p.free) < p.cfg.Capacity {
		p.free = append(p.free, v)
	}
}

// Size returns the current number of instances waiting in the free list.
func (p *Pool[T]) Size() int {
	return len(p.free)
}

// EnsureCapacity raises the pool capacity to at least minCapacity.
func (p *Pool[T]) EnsureCapacity(minCapacity int) {
	if minCapacity > p.cfg.Capacity {
		p.cfg.Capacity = minCapacity
	}
}
