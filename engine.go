package tween

import (
	"github.com/tanema/gween/ease"
)

// Config configures an [Engine]. The zero value disables pooling.
type Config struct {
	// Pooling enables automatic reuse of finished tweens. A pooled tween
	// returns itself to the engine's pool after completion and must not be
	// used afterwards.
	Pooling bool
	// PoolCapacity is the maximum number of recycled tweens kept around.
	// Defaults to 20.
	PoolCapacity int
}

// Engine is the construction surface of the package: it owns the accessor
// registry and the tween pool, and stamps out configured [Tween] and
// [Timeline] instances. Independent engines share no mutable state, so
// several can coexist in one process.
type Engine struct {
	registry *Registry
	cfg      Config
	pool     *Pool[*Tween]
}

// NewEngine creates an engine around the given registry. A nil registry is
// replaced with an empty one (useful for engines that only run Call/Mark
// tweens and timelines).
func NewEngine(registry *Registry, cfg Config) *Engine {
	if registry == nil {
		registry = NewRegistry()
	}
	e := &Engine{registry: registry, cfg: cfg}
	e.pool = NewPool(PoolConfig[*Tween]{
		Capacity:  cfg.PoolCapacity,
		New:       func() *Tween { return &Tween{} },
		OnRelease: func(t *Tween) { t.reset() },
	})
	return e
}

// Registry returns the engine's accessor registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// To creates an interpolation from the target's values at start time (after
// the delay, if any) to the values set with [Tween.Target]. Defaults to
// linear easing.
func (e *Engine) To(target any, attributeGroup int, durationMs float32) *Tween {
	t := e.acquire()
	t.setup(e, target, attributeGroup, durationMs)
	t.equation = ease.Linear
	return t
}

// From creates a reversed interpolation: the values set with [Tween.Target]
// are the starting point and the target's values at start time are the
// destination. Defaults to linear easing.
func (e *Engine) From(target any, attributeGroup int, durationMs float32) *Tween {
	t := e.To(target, attributeGroup, durationMs)
	t.reversed = true
	return t
}

// Set creates an instantaneous apply: once its delay elapses, the values set
// with [Tween.Target] are written in a single tick with no interpolation.
func (e *Engine) Set(target any, attributeGroup int) *Tween {
	t := e.acquire()
	t.setup(e, target, attributeGroup, 0)
	return t
}

// Call creates a pure timer: no target, no values. The callback fires at the
// end of the delay, and again on each repetition if a repeat is configured.
func (e *Engine) Call(cb Callback) *Tween {
	t := e.acquire()
	t.setup(e, nil, 0, 0)
	t.On(EventStart, cb)
	return t
}

// Mark creates an empty tween. Useful as a beacon inside timelines: give it
// a delay and callbacks to trigger work at a precise point of a sequence.
func (e *Engine) Mark() *Tween {
	t := e.acquire()
	t.setup(e, nil, 0, 0)
	return t
}

// Sequence creates a timeline whose children run one after another.
func (e *Engine) Sequence() *Timeline {
	return newTimeline(e, ModeSequence)
}

// Parallel creates a timeline whose children all start together.
func (e *Engine) Parallel() *Timeline {
	return newTimeline(e, ModeParallel)
}

func (e *Engine) acquire() *Tween {
	if !e.cfg.Pooling {
		return &Tween{}
	}
	t := e.pool.Acquire()
	t.pooled = true
	return t
}

// PoolSize returns the number of tweens currently waiting in the pool.
// Mostly useful for tests and debugging.
func (e *Engine) PoolSize() int {
	return e.pool.Size()
}

// EnsurePoolCapacity raises the pool capacity to at least minCapacity.
func (e *Engine) EnsurePoolCapacity(minCapacity int) {
	e.pool.EnsureCapacity(minCapacity)
}
