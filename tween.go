package tween

import (
	"github.com/tanema/gween/ease"
)

const (
	// MaxCombined is the maximum number of values a single Tween can
	// interpolate simultaneously.
	MaxCombined = 10

	// Infinite makes a tween or timeline repeat forever. An infinite node
	// only terminates via Kill.
	Infinite = -1
)

// Equation is a pluggable easing function with the classic Penner signature:
// elapsed time, start value, value delta, duration. Every function in
// [ease] satisfies it; custom equations just need to be pure.
type Equation = ease.TweenFunc

// Tween is the atomic interpolation state machine. It owns the timing state
// (delay, duration, repetition, direction), the start/target value arrays for
// one attribute group of one target object, and the callback subscriptions.
//
// Create tweens through an [Engine] factory ([Engine.To], [Engine.From],
// [Engine.Set], [Engine.Call], [Engine.Mark]), configure them with the
// chainable methods, then either Start them and call Update yourself or hand
// them to a [Manager]. Timing and value configuration is frozen once the
// tween starts; late mutation panics.
//
// A Tween never reads a wall clock. Feed it deltas and it will normalize
// elapsed time across iteration boundaries itself, so a single large delta
// (a window regaining focus after seconds of being frozen) fast-forwards
// through every intermediate repetition and fires every callback on the way.
type Tween struct {
	timing

	engine         *Engine
	target         any
	attributeGroup int
	accessor       Accessor
	equation       Equation

	relative bool
	snapshot bool // start values captured (once per lifecycle, after the first delay)
	combined int

	startValues  [MaxCombined]float32
	targetValues [MaxCombined]float32
	deltaValues  [MaxCombined]float32
	buffer       [MaxCombined]float32

	callbacks callbackSet
	userData  any
	pooled    bool
}

// reset returns every field to its zero state so a pooled instance cannot
// leak a prior animation's target or callbacks.
func (t *Tween) reset() {
	t.resetTiming()
	t.engine = nil
	t.target = nil
	t.attributeGroup = 0
	t.accessor = nil
	t.equation = nil
	t.relative = false
	t.snapshot = false
	t.combined = 0
	t.startValues = [MaxCombined]float32{}
	t.targetValues = [MaxCombined]float32{}
	t.deltaValues = [MaxCombined]float32{}
	t.buffer = [MaxCombined]float32{}
	t.callbacks.clear()
	t.userData = nil
	t.pooled = false
}

// setup configures a fresh or recycled instance. Resolves the accessor and
// learns the combined value count; both failures are programmer errors and
// panic before the tween can reach a pool or manager.
func (t *Tween) setup(e *Engine, target any, attributeGroup int, durationMs float32) {
	t.engine = e
	t.target = target
	t.attributeGroup = attributeGroup
	t.durationMs = durationMs

	if target == nil {
		return
	}
	accessor, err := e.registry.Accessor(target)
	if err != nil {
		panic(err)
	}
	t.accessor = accessor
	t.combined = accessor.GetValues(target, attributeGroup, t.buffer[:])
	if t.combined < 1 || t.combined > MaxCombined {
		panic("tween: accessor reported a combined value count outside [1, 10]")
	}
}

// --- Chainable configuration ---

// Target sets the absolute end values of the interpolation. The start values
// are whatever the accessor reads at start time, after the delay.
func (t *Tween) Target(values ...float32) *Tween {
	t.setTargets(values)
	return t
}

// TargetRelative sets the end values relative to the values at start time
// (after the delay): the given deltas are added to the start snapshot at the
// moment it is taken, not at this call.
func (t *Tween) TargetRelative(values ...float32) *Tween {
	t.setTargets(values)
	t.relative = true
	return t
}

// TargetCurrent sets the end values to the target object's values as of this
// call.
func (t *Tween) TargetCurrent() *Tween {
	t.guardStarted("targets")
	t.guardTarget()
	t.accessor.GetValues(t.target, t.attributeGroup, t.targetValues[:t.combined])
	return t
}

// TargetCurrentRelative sets the end values to the target object's values as
// of this call, plus the given deltas.
func (t *Tween) TargetCurrentRelative(values ...float32) *Tween {
	t.guardStarted("targets")
	t.guardTarget()
	if len(values) > MaxCombined {
		panic("tween: cannot set more than 10 target values")
	}
	t.accessor.GetValues(t.target, t.attributeGroup, t.targetValues[:t.combined])
	for i, v := range values {
		t.targetValues[i] += v
	}
	return t
}

func (t *Tween) setTargets(values []float32) {
	t.guardStarted("targets")
	if len(values) > MaxCombined {
		panic("tween: cannot set more than 10 target values")
	}
	copy(t.targetValues[:], values)
}

// Ease sets the easing equation. To and From default to [ease.Linear].
func (t *Tween) Ease(equation Equation) *Tween {
	t.guardStarted("easing")
	t.equation = equation
	return t
}

// Delay adds to the tween's delay. Multiple calls accumulate.
func (t *Tween) Delay(ms float32) *Tween {
	t.guardStarted("delay")
	t.delayMs += ms
	return t
}

// Repeat makes the tween replay count extra times, with delayMs between the
// end of one iteration and the start of the next. Use [Infinite] (or any
// negative count) to repeat forever.
func (t *Tween) Repeat(count int, delayMs float32) *Tween {
	t.guardStarted("repeat")
	t.repeatCount = count
	if delayMs > 0 {
		t.repeatDelayMs = delayMs
	} else {
		t.repeatDelayMs = 0
	}
	return t
}

// RepeatYoyo is Repeat with the playback direction flipping on every
// repetition, so odd iterations play backwards.
func (t *Tween) RepeatYoyo(count int, delayMs float32) *Tween {
	t.Repeat(count, delayMs)
	t.yoyo = true
	return t
}

// On registers a callback for the given event kind. Multiple callbacks per
// kind fire in registration order.
func (t *Tween) On(event EventType, cb Callback) *Tween {
	t.callbacks.add(event, cb)
	return t
}

// UserData attaches an opaque value retrievable with Data. The engine does
// not interpret it.
func (t *Tween) UserData(data any) *Tween {
	t.userData = data
	return t
}

func (t *Tween) guardStarted(what string) {
	if t.started {
		panic("tween: cannot change the " + what + " of a started tween")
	}
}

func (t *Tween) guardTarget() {
	if t.target == nil {
		panic("tween: cannot read current values from a tween without a target")
	}
}

// --- Getters ---

// Data returns the value attached with UserData, or nil.
func (t *Tween) Data() any { return t.userData }

// Easing returns the tween's easing equation, or nil for Set/Call tweens.
func (t *Tween) Easing() Equation { return t.equation }

// CombinedCount returns how many values this tween interpolates
// simultaneously, as reported by the accessor at construction.
func (t *Tween) CombinedCount() int { return t.combined }

// Duration returns the duration of one iteration in milliseconds.
func (t *Tween) Duration() float32 { return t.durationMs }

// --- Lifecycle ---

// Start arms the tween: the clock resets and subsequent Update calls advance
// it. Prefer [Tween.AddTo]: a Manager starts the tween and cleans it up when
// finished.
func (t *Tween) Start() *Tween {
	t.startNode()
	return t
}

// AddTo adds the tween to a manager and starts it.
func (t *Tween) AddTo(m *Manager) *Tween {
	m.Add(t)
	return t
}

// Kill forces the tween to the finished state without firing its natural
// completion event. EventKill fires if registered. If the tween is pooled it
// returns to the pool on its next update (its own, or its manager's pass).
func (t *Tween) Kill() {
	if t.finished {
		return
	}
	t.finished = true
	t.callbacks.fire(EventKill, t)
}

func (t *Tween) startNode() {
	t.currentMs = 0
	t.started = true
}

// restartNode rewinds the clock for another group iteration while keeping
// the start-value snapshot, so the animation replays from the values
// registered at the end of the first delay.
func (t *Tween) restartNode() {
	t.currentMs = 0
	t.iteration = 0
	t.finished = false
	t.delayDone = false
	t.started = true
}

func (t *Tween) flipReversed() {
	t.reversed = !t.reversed
}

func (t *Tween) span() float32 {
	return t.spanWith(t.durationMs)
}

func (t *Tween) release() {
	if !t.pooled || t.engine == nil {
		return
	}
	t.pooled = false
	t.engine.pool.Release(t)
}

// --- Update engine ---

// Update advances the tween by deltaMs milliseconds. All value writes and
// callbacks happen synchronously inside this call. Finished or unstarted
// tweens ignore the call, except that a finished pooled tween uses it to
// return itself to its engine's pool.
func (t *Tween) Update(deltaMs float32) {
	if t.finished && t.pooled {
		t.release()
		return
	}
	if t.finished || !t.started {
		return
	}

	if !t.begun {
		t.begun = true
		t.callbacks.fire(EventBegin, t)
	}

	t.currentMs += deltaMs
	t.initialize()
	if !t.delayDone {
		return
	}

	lastMs := t.currentMs - deltaMs
	lastIteration := t.iteration

	if t.period() <= 0 {
		t.completeInstant()
		return
	}

	t.normalize(lastMs)
	if t.iteration == lastIteration {
		t.fireBoundary(lastMs)
	} else if t.iteration > lastIteration {
		// The delta crossed into a fresh iteration; it may also have crossed
		// that iteration's own duration boundary into the rest zone.
		t.fireBoundary(0)
	}
	if t.checkBudget() {
		return
	}
	t.apply()
}

// initialize consumes the delay and, exactly once per lifecycle, snapshots
// the target's current values as the start values. Relative targets become
// absolute at this moment.
func (t *Tween) initialize() {
	if t.delayDone {
		return
	}
	if t.currentMs < t.delayMs {
		return
	}
	t.currentMs -= t.delayMs
	t.delayDone = true

	if !t.snapshot && t.target != nil {
		t.accessor.GetValues(t.target, t.attributeGroup, t.startValues[:t.combined])
		for i := 0; i < t.combined; i++ {
			if t.relative {
				t.targetValues[i] += t.startValues[i]
			}
			t.deltaValues[i] = t.targetValues[i] - t.startValues[i]
		}
		t.snapshot = true
	}
	if t.iterationValid(t.iteration) {
		t.callbacks.fire(EventStart, t)
	}
}

// normalize folds the clock back into [0, period), stepping the iteration
// index once per boundary crossed and firing the direction-appropriate
// events for every crossing.
func (t *Tween) normalize(lastMs float32) {
	p := t.period()
	stepLast := lastMs

	for t.currentMs >= p {
		if t.iterationValid(t.iteration) && (stepLast < t.durationMs || t.durationMs <= 0) {
			t.callbacks.fire(EventEnd, t)
		}
		t.currentMs -= p
		t.iteration++
		stepLast = 0
		if t.repeatCount >= 0 && t.iteration > t.repeatCount {
			break
		}
		if t.yoyo {
			t.flipReversed()
		}
		if t.iterationValid(t.iteration) {
			t.callbacks.fire(EventStart, t)
		}
	}

	for t.currentMs < 0 {
		if t.iterationValid(t.iteration) {
			t.callbacks.fire(EventBackEnd, t)
		}
		t.currentMs += p
		t.iteration--
		if t.repeatCount >= 0 && t.iteration < 0 {
			break
		}
		if t.yoyo {
			t.flipReversed()
		}
		if t.iterationValid(t.iteration) && t.currentMs < t.durationMs {
			t.callbacks.fire(EventBackStart, t)
		}
	}
}

// fireBoundary handles the duration boundary inside a single iteration: a
// tween with a repeat delay fires END when entering the rest zone and
// BACK_START when re-entering the active zone backwards.
func (t *Tween) fireBoundary(lastMs float32) {
	if !t.iterationValid(t.iteration) {
		return
	}
	if t.currentMs >= t.durationMs && lastMs < t.durationMs {
		t.callbacks.fire(EventEnd, t)
	} else if t.currentMs < t.durationMs && lastMs >= t.durationMs {
		t.callbacks.fire(EventBackStart, t)
	}
}

// checkBudget finishes the tween when the iteration index leaves the repeat
// budget in either direction, forcing values to the boundary state.
func (t *Tween) checkBudget() bool {
	if t.repeatCount < 0 {
		return false
	}
	if t.iteration > t.repeatCount {
		t.forceEndValues()
		t.callbacks.fire(EventComplete, t)
		t.finished = true
		return true
	}
	if t.iteration < 0 {
		t.forceStartValues()
		t.callbacks.fire(EventBackComplete, t)
		t.finished = true
		return true
	}
	return false
}

// completeInstant handles zero-period tweens (Set, Call, Mark): no
// interpolation, just the boundary events and the forced end state. Repeats
// collapse into the same tick; an infinite repeat count degenerates to a
// single shot.
func (t *Tween) completeInstant() {
	if t.currentMs < 0 {
		t.forceStartValues()
		t.iteration = -1
		t.callbacks.fire(EventBackComplete, t)
		t.finished = true
		return
	}
	n := t.repeatCount
	if n < 0 {
		n = 0
	}
	for i := 0; i <= n; i++ {
		if i > 0 {
			t.callbacks.fire(EventStart, t)
		}
		t.callbacks.fire(EventEnd, t)
	}
	t.iteration = n + 1
	t.forceEndValues()
	t.callbacks.fire(EventComplete, t)
	t.finished = true
}

// apply computes the eased values for the current within-iteration time and
// writes them through the accessor. Inside the repeat-delay rest zone the
// end values are held.
func (t *Tween) apply() {
	if t.target == nil || t.equation == nil || !t.snapshot {
		return
	}
	if t.currentMs >= t.durationMs {
		t.forceEndValues()
		return
	}
	for i := 0; i < t.combined; i++ {
		start, delta := t.startValues[i], t.deltaValues[i]
		if t.reversed {
			start, delta = t.targetValues[i], -delta
		}
		t.buffer[i] = t.equation(t.currentMs, start, delta, t.durationMs)
	}
	t.accessor.SetValues(t.target, t.attributeGroup, t.buffer[:t.combined])
}

func (t *Tween) forceEndValues() {
	if !t.snapshot || t.target == nil {
		return
	}
	if t.reversed {
		t.accessor.SetValues(t.target, t.attributeGroup, t.startValues[:t.combined])
	} else {
		t.accessor.SetValues(t.target, t.attributeGroup, t.targetValues[:t.combined])
	}
}

func (t *Tween) forceStartValues() {
	if !t.snapshot || t.target == nil {
		return
	}
	if t.reversed {
		t.accessor.SetValues(t.target, t.attributeGroup, t.targetValues[:t.combined])
	} else {
		t.accessor.SetValues(t.target, t.attributeGroup, t.startValues[:t.combined])
	}
}
