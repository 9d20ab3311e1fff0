package tween

// Mode selects how a [Timeline] schedules its children.
type Mode uint8

const (
	// ModeSequence runs children one after another: child n+1 starts when
	// child n's full time footprint (delay, duration, repeats) has elapsed.
	ModeSequence Mode = iota
	// ModeParallel starts all children together; the timeline's duration is
	// that of its longest child.
	ModeParallel
)

// Timeline composes tweens and nested timelines into one schedulable unit.
// It reuses the same delay/repeat/yoyo machinery as [Tween] at the group
// level, driving children instead of an accessor: the computed group
// duration plays the role of the tween duration.
//
// Build a timeline fluently from an [Engine]:
//
//	e.Sequence().
//		Push(e.To(obj, PositionXY, 500).Target(100, 200)).
//		PushPause(250).
//		BeginParallel().
//		Push(e.To(obj, Alpha, 300).Target(0)).
//		Push(e.To(obj, Rotation, 300).Target(3.14)).
//		End().
//		Repeat(1, 0).
//		AddTo(manager)
//
// Topology and timing are frozen once the timeline starts; the group
// duration is recomputed on every query before that.
//
// Yoyo repetition flips a direction flag down the whole subtree on each
// group iteration and mirrors the child offsets, so odd iterations play the
// children backwards without re-deriving any values.
type Timeline struct {
	timing

	engine   *Engine
	mode     Mode
	children []Node

	// Frozen at start.
	frozen  bool
	spans   []float32
	offsets []float32 // forward cumulative offsets; mirrored on the fly when reversed

	// Delivery bookkeeping: time handed to each child within the current
	// group iteration.
	played      []float32
	localCursor float32

	callbacks callbackSet
	userData  any

	parent  *Timeline // enclosing group while building, nil for the root
	current *Timeline // innermost open group for builder calls
}

func newTimeline(e *Engine, mode Mode) *Timeline {
	tl := &Timeline{engine: e, mode: mode}
	tl.current = tl
	return tl
}

// --- Builder ---

// Push appends a node to the innermost open group. The node must not be
// started and must not repeat forever.
func (tl *Timeline) Push(n Node) *Timeline {
	c := tl.current
	c.guardStarted()
	if n == nil {
		panic("tween: cannot push a nil node to a timeline")
	}
	if n.isStarted() {
		panic("tween: cannot push a started node to a timeline")
	}
	c.children = append(c.children, n)
	return tl
}

// PushPause appends a pure delay of ms milliseconds to the innermost open
// group. Only meaningful in sequences.
func (tl *Timeline) PushPause(ms float32) *Timeline {
	return tl.Push(tl.engine.Mark().Delay(ms))
}

// BeginSequence opens a nested sequence. Subsequent Push calls target it
// until the matching End.
func (tl *Timeline) BeginSequence() *Timeline {
	return tl.begin(ModeSequence)
}

// BeginParallel opens a nested parallel group. Subsequent Push calls target
// it until the matching End.
func (tl *Timeline) BeginParallel() *Timeline {
	return tl.begin(ModeParallel)
}

func (tl *Timeline) begin(mode Mode) *Timeline {
	c := tl.current
	c.guardStarted()
	nested := newTimeline(tl.engine, mode)
	nested.parent = c
	c.children = append(c.children, nested)
	tl.current = nested
	return tl
}

// End closes the innermost open group.
func (tl *Timeline) End() *Timeline {
	if tl.current.parent == nil {
		panic("tween: End without a matching BeginSequence/BeginParallel")
	}
	tl.current = tl.current.parent
	return tl
}

// Delay adds to the timeline's group-level delay. Multiple calls accumulate.
func (tl *Timeline) Delay(ms float32) *Timeline {
	tl.guardStarted()
	tl.delayMs += ms
	return tl
}

// Repeat replays the whole timeline count extra times, with delayMs between
// repetitions. Use [Infinite] to repeat forever (top-level timelines only).
func (tl *Timeline) Repeat(count int, delayMs float32) *Timeline {
	tl.guardStarted()
	tl.repeatCount = count
	if delayMs > 0 {
		tl.repeatDelayMs = delayMs
	} else {
		tl.repeatDelayMs = 0
	}
	return tl
}

// RepeatYoyo is Repeat with the subtree's playback direction flipping on
// every repetition.
func (tl *Timeline) RepeatYoyo(count int, delayMs float32) *Timeline {
	tl.Repeat(count, delayMs)
	tl.yoyo = true
	return tl
}

// On registers a callback for the given event kind on the timeline itself.
// Children keep their own subscriptions.
func (tl *Timeline) On(event EventType, cb Callback) *Timeline {
	tl.callbacks.add(event, cb)
	return tl
}

// UserData attaches an opaque value retrievable with Data.
func (tl *Timeline) UserData(data any) *Timeline {
	tl.userData = data
	return tl
}

func (tl *Timeline) guardStarted() {
	if tl.started {
		panic("tween: cannot modify a started timeline")
	}
}

// --- Getters ---

// Data returns the value attached with UserData, or nil.
func (tl *Timeline) Data() any { return tl.userData }

// Duration returns the length of one group iteration in milliseconds,
// derived from the children: the sum of their spans for a sequence, the
// maximum for a parallel group.
func (tl *Timeline) Duration() float32 {
	if tl.frozen {
		return tl.durationMs
	}
	return tl.computeDuration()
}

func (tl *Timeline) computeDuration() float32 {
	var d float32
	for _, c := range tl.children {
		if tl.mode == ModeSequence {
			d += c.span()
		} else if s := c.span(); s > d {
			d = s
		}
	}
	return d
}

// --- Lifecycle ---

// Start arms the timeline and all of its descendants. Topology is frozen
// from this point on.
func (tl *Timeline) Start() *Timeline {
	tl.startNode()
	return tl
}

// AddTo adds the timeline to a manager and starts it.
func (tl *Timeline) AddTo(m *Manager) *Timeline {
	m.Add(tl)
	return tl
}

// Kill force-finishes the timeline and every descendant without firing
// natural completion events.
func (tl *Timeline) Kill() {
	if tl.finished {
		return
	}
	for _, c := range tl.children {
		c.Kill()
	}
	tl.finished = true
	tl.callbacks.fire(EventKill, tl)
}

func (tl *Timeline) startNode() {
	if tl.current != tl {
		panic("tween: cannot start a timeline with an unclosed group")
	}
	tl.freeze()
	tl.currentMs = 0
	tl.started = true
	for _, c := range tl.children {
		c.startNode()
	}
	for i := range tl.played {
		tl.played[i] = 0
	}
	tl.localCursor = 0
}

func (tl *Timeline) restartNode() {
	tl.currentMs = 0
	tl.iteration = 0
	tl.finished = false
	tl.delayDone = false
	tl.started = true
	tl.restartChildren()
}

func (tl *Timeline) flipReversed() {
	tl.reversed = !tl.reversed
	for _, c := range tl.children {
		c.flipReversed()
	}
}

func (tl *Timeline) span() float32 {
	return tl.spanWith(tl.Duration())
}

// release is a no-op: timelines are not pooled, only tweens are.
func (tl *Timeline) release() {}

// freeze validates the children and locks in spans, offsets, and the group
// duration.
func (tl *Timeline) freeze() {
	if tl.frozen {
		return
	}
	tl.spans = make([]float32, len(tl.children))
	tl.offsets = make([]float32, len(tl.children))
	tl.played = make([]float32, len(tl.children))

	var cursor float32
	for i, c := range tl.children {
		if c.infiniteRepeat() {
			panic("tween: a timeline child cannot repeat forever")
		}
		tl.spans[i] = c.span()
		if tl.mode == ModeSequence {
			tl.offsets[i] = cursor
			cursor += tl.spans[i]
		}
	}
	tl.durationMs = tl.computeDuration()
	tl.frozen = true
}

// --- Update engine ---

// Update advances the timeline by deltaMs milliseconds, driving children
// through the same normalization algorithm a Tween uses for its own clock.
func (tl *Timeline) Update(deltaMs float32) {
	if tl.finished || !tl.started {
		return
	}

	if !tl.begun {
		tl.begun = true
		tl.callbacks.fire(EventBegin, tl)
	}

	tl.currentMs += deltaMs
	if !tl.delayDone {
		if tl.currentMs < tl.delayMs {
			return
		}
		tl.currentMs -= tl.delayMs
		tl.delayDone = true
		if tl.iterationValid(tl.iteration) {
			tl.callbacks.fire(EventStart, tl)
		}
	}

	lastMs := tl.currentMs - deltaMs
	lastIteration := tl.iteration

	if tl.period() <= 0 {
		// Empty timeline: a beacon with no children.
		if tl.currentMs >= 0 {
			tl.callbacks.fire(EventEnd, tl)
			tl.iteration++
			tl.callbacks.fire(EventComplete, tl)
		} else {
			tl.iteration = -1
			tl.callbacks.fire(EventBackComplete, tl)
		}
		tl.finished = true
		return
	}

	tl.normalize(lastMs)
	if tl.iteration == lastIteration {
		tl.fireBoundary(lastMs)
	} else if tl.iteration > lastIteration {
		// The delta crossed into a fresh iteration; it may also have crossed
		// that iteration's own duration boundary into the rest zone.
		tl.fireBoundary(0)
	}
	if tl.checkBudget() {
		return
	}
	tl.driveChildren(minf(tl.currentMs, tl.durationMs))
}

func (tl *Timeline) normalize(lastMs float32) {
	p := tl.period()
	stepLast := lastMs

	for tl.currentMs >= p {
		if tl.iterationValid(tl.iteration) {
			// Finish out the departing iteration before rolling over so
			// every child fires its own boundary events in order.
			tl.driveChildren(tl.durationMs)
			if stepLast < tl.durationMs || tl.durationMs <= 0 {
				tl.callbacks.fire(EventEnd, tl)
			}
		}
		tl.currentMs -= p
		tl.iteration++
		stepLast = 0
		if tl.repeatCount >= 0 && tl.iteration > tl.repeatCount {
			break
		}
		if tl.yoyo {
			tl.flipReversed()
		}
		tl.restartChildren()
		if tl.iterationValid(tl.iteration) {
			tl.callbacks.fire(EventStart, tl)
		}
	}

	for tl.currentMs < 0 {
		if tl.iterationValid(tl.iteration) {
			tl.callbacks.fire(EventBackEnd, tl)
		}
		tl.currentMs += p
		tl.iteration--
		if tl.repeatCount >= 0 && tl.iteration < 0 {
			break
		}
		if tl.yoyo {
			tl.flipReversed()
		}
		// Rebuild the previous iteration at its end state; the regular
		// drive below then rewinds unfinished children to the right spot.
		tl.restartChildren()
		tl.driveChildren(tl.durationMs)
		if tl.iterationValid(tl.iteration) && tl.currentMs < tl.durationMs {
			tl.callbacks.fire(EventBackStart, tl)
		}
	}
}

func (tl *Timeline) fireBoundary(lastMs float32) {
	if !tl.iterationValid(tl.iteration) {
		return
	}
	if tl.currentMs >= tl.durationMs && lastMs < tl.durationMs {
		tl.driveChildren(tl.durationMs)
		tl.callbacks.fire(EventEnd, tl)
	} else if tl.currentMs < tl.durationMs && lastMs >= tl.durationMs {
		tl.callbacks.fire(EventBackStart, tl)
	}
}

func (tl *Timeline) checkBudget() bool {
	if tl.repeatCount < 0 {
		return false
	}
	if tl.iteration > tl.repeatCount {
		tl.driveChildren(tl.durationMs)
		tl.callbacks.fire(EventComplete, tl)
		tl.finished = true
		return true
	}
	if tl.iteration < 0 {
		tl.driveChildren(0)
		tl.callbacks.fire(EventBackComplete, tl)
		tl.finished = true
		return true
	}
	return false
}

// driveChildren delivers to every child exactly the share of local time its
// offset window covers, as a delta against what it has already received. In
// a sequence only the currently-active child sees a non-zero delta; in a
// parallel group all running children do.
func (tl *Timeline) driveChildren(local float32) {
	ascending := local >= tl.localCursor
	n := len(tl.children)
	for k := 0; k < n; k++ {
		i := k
		if !ascending {
			i = n - 1 - k
		}
		offset := tl.offsets[i]
		if tl.reversed {
			offset = tl.durationMs - tl.offsets[i] - tl.spans[i]
		}
		want := clampf(local-offset, 0, tl.spans[i])
		if d := want - tl.played[i]; d != 0 {
			tl.children[i].Update(d)
			tl.played[i] = want
		}
	}
	tl.localCursor = local
}

func (tl *Timeline) restartChildren() {
	for i, c := range tl.children {
		c.restartNode()
		tl.played[i] = 0
	}
	tl.localCursor = 0
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
