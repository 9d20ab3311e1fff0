// Package tween is a delta-driven interpolation engine: it animates numeric
// attributes of arbitrary objects over time, with delays, repetition, yoyo
// playback, composable timelines, and object pooling.
//
// The engine is entirely pull-based. It never spawns a clock or goroutine;
// the host's frame loop feeds it delta times and every value write and
// callback happens synchronously inside that call. Pause, slow motion, and
// reverse playback all fall out of scaling the delta.
//
// # Quick start
//
// Implement an [Accessor] for each animatable type, register it, and create
// tweens through an [Engine]:
//
//	registry := tween.NewRegistry()
//	registry.Register(&Sprite{}, spriteAccessor{})
//
//	engine := tween.NewEngine(registry, tween.Config{Pooling: true})
//	manager := tween.NewManager()
//
//	engine.To(sprite, PositionXY, 500).
//		Target(200, 300).
//		Ease(ease.InOutQuad).
//		Delay(1000).
//		Repeat(2, 0).
//		AddTo(manager)
//
//	// Each frame:
//	manager.Update(deltaMs)
//
// The start values are captured when the delay elapses, not at construction,
// so a tween always animates from wherever its target actually is at start
// time. [Engine.From] runs the interpolation backwards, [Engine.Set] applies
// values in a single tick, and [Engine.Call] is a pure timer.
//
// # Timelines
//
// [Timeline] composes tweens and nested timelines in sequence or in
// parallel, with group-level delay, repetition, and yoyo. See
// [Engine.Sequence] and [Engine.Parallel].
//
// # Easing
//
// Easing functions are plain [Equation] values with the classic Penner
// signature. The [ease] package supplies the standard curves; To and From
// default to [ease.Linear].
//
// # Concurrency
//
// Everything in this package assumes exclusive single-threaded access. A
// host that drives a [Manager] from multiple goroutines must serialize the
// calls itself.
//
// [ease]: https://pkg.go.dev/github.com/tanema/gween/ease
package tween
