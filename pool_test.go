package tween

import (
	"testing"
)

func TestPoolRecyclesReleasedInstances(t *testing.T) {
	allocs := 0
	p := NewPool(PoolConfig[*point]{
		Capacity: 4,
		New:      func() *point { allocs++; return &point{} },
	})

	a := p.Acquire()
	if allocs != 1 {
		t.Fatalf("allocs = %d, want 1", allocs)
	}
	p.Release(a)
	if p.Size() != 1 {
		t.Fatalf("size = %d after release, want 1", p.Size())
	}

	b := p.Acquire()
	if b != a {
		t.Fatal("acquire after release must hand back the recycled instance")
	}
	if allocs != 1 {
		t.Errorf("allocs = %d, recycling must not construct", allocs)
	}
	if p.Size() != 0 {
		t.Errorf("size = %d after re-acquire, want 0", p.Size())
	}
}

func TestPoolCapacityDiscardsOverflow(t *testing.T) {
	p := NewPool(PoolConfig[*point]{
		Capacity: 1,
		New:      func() *point { return &point{} },
	})

	p.Release(&point{})
	p.Release(&point{})
	if p.Size() != 1 {
		t.Fatalf("size = %d, want overflow discarded at capacity 1", p.Size())
	}
}

func TestPoolHooksRunOnBothPaths(t *testing.T) {
	var acquired, released int
	p := NewPool(PoolConfig[*point]{
		Capacity:  2,
		New:       func() *point { return &point{} },
		OnAcquire: func(*point) { acquired++ },
		OnRelease: func(v *point) { released++; v.x = 0 },
	})

	fresh := p.Acquire() // fresh construction
	fresh.x = 9
	p.Release(fresh)
	recycled := p.Acquire() // recycled

	if acquired != 2 {
		t.Errorf("OnAcquire ran %d times, want 2 (fresh and recycled)", acquired)
	}
	if released != 1 {
		t.Errorf("OnRelease ran %d times, want 1", released)
	}
	if recycled.x != 0 {
		t.Errorf("recycled.x = %f, want the release hook to have reset it", recycled.x)
	}
}

func TestPoolEnsureCapacity(t *testing.T) {
	p := NewPool(PoolConfig[*point]{
		Capacity: 1,
		New:      func() *point { return &point{} },
	})

	p.EnsureCapacity(3)
	for i := 0; i < 4; i++ {
		p.Release(&point{})
	}
	if p.Size() != 3 {
		t.Fatalf("size = %d after raising capacity to 3, want 3", p.Size())
	}

	p.EnsureCapacity(2) // never shrinks
	p.Release(&point{})
	if p.Size() != 3 {
		t.Errorf("size = %d, EnsureCapacity must not shrink", p.Size())
	}
}

func TestPoolRequiresConstructor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a nil New")
		}
	}()
	NewPool(PoolConfig[*point]{})
}

func TestEngineTweenRoundTripResetsState(t *testing.T) {
	r := NewRegistry()
	r.Register(&point{}, pointAccessor{})
	e := NewEngine(r, Config{Pooling: true})
	p := &point{}

	tw := e.To(p, groupX, 100).Target(100).
		UserData("payload").
		On(EventComplete, func(EventType, Node) {}).
		Start()
	tw.Update(100)
	if !tw.IsFinished() {
		t.Fatal("should be finished")
	}

	tw.Update(0) // finished pooled tween returns itself to the pool
	if e.PoolSize() != 1 {
		t.Fatalf("pool size = %d, want 1", e.PoolSize())
	}
	if tw.target != nil || tw.engine != nil || tw.userData != nil {
		t.Error("recycled tween must not retain the prior target, engine, or user data")
	}
	if tw.started || tw.finished || tw.snapshot {
		t.Error("recycled tween must have zeroed lifecycle state")
	}

	again := e.To(&point{}, groupX, 50).Target(1)
	if again != tw {
		t.Error("the next To must reuse the recycled instance")
	}
}

func TestEngineWithoutPoolingAllocatesFresh(t *testing.T) {
	e := newTestEngine() // pooling off
	p := &point{}

	tw := e.To(p, groupX, 100).Target(1).Start()
	tw.Update(100)
	tw.Update(0)
	if e.PoolSize() != 0 {
		t.Errorf("pool size = %d with pooling disabled, want 0", e.PoolSize())
	}
}
