package tween

// Node is the common surface of [Tween] and [Timeline]: anything a [Manager]
// can own and a Timeline can compose. Implementations live in this package;
// the engine drives nodes through unexported hooks that external types
// cannot satisfy.
type Node interface {
	// Update advances the node by deltaMs milliseconds. Negative deltas move
	// time backwards. Calling Update on a finished or unstarted node is a
	// no-op.
	Update(deltaMs float32)

	// Kill forces the node to the finished state immediately, without firing
	// its natural completion event. Fires EventKill if registered.
	Kill()

	// IsFinished reports whether the node has exhausted its repeat budget or
	// has been killed.
	IsFinished() bool

	// Duration returns the length of one iteration in milliseconds,
	// excluding delay and repeat delay. For a Timeline this is computed from
	// its children.
	Duration() float32

	// Data returns the opaque user attachment, or nil.
	Data() any

	startNode()
	restartNode()
	flipReversed()
	isStarted() bool
	infiniteRepeat() bool
	span() float32
	release()
}

// timing carries the clock, delay, and repetition state shared by Tween and
// Timeline. Elapsed time is pure delta accumulation: the engine never reads
// a wall clock, so pause, slow motion, and reverse playback compose freely.
type timing struct {
	durationMs    float32
	delayMs       float32
	repeatCount   int
	repeatDelayMs float32
	yoyo          bool

	currentMs float32 // time within the current iteration; may briefly run negative or past the period
	iteration int
	started   bool
	delayDone bool // delay consumed; start-of-iteration time base established
	begun     bool // EventBegin fired
	finished  bool
	reversed  bool
}

func (s *timing) resetTiming() {
	s.durationMs = 0
	s.delayMs = 0
	s.repeatCount = 0
	s.repeatDelayMs = 0
	s.yoyo = false
	s.currentMs = 0
	s.iteration = 0
	s.started = false
	s.delayDone = false
	s.begun = false
	s.finished = false
	s.reversed = false
}

// period is the length of one full iteration cycle.
func (s *timing) period() float32 {
	return s.durationMs + s.repeatDelayMs
}

// iterationValid reports whether iteration i is within the repeat budget.
// Every iteration is valid for infinite repetition.
func (s *timing) iterationValid(i int) bool {
	return (i >= 0 && i <= s.repeatCount) || s.repeatCount < 0
}

// spanWith is the total time footprint given one-iteration duration d:
// delay plus every repetition cycle including its repeat delay.
func (s *timing) spanWith(d float32) float32 {
	r := s.repeatCount
	if r < 0 {
		r = 0
	}
	return s.delayMs + float32(r+1)*(d+s.repeatDelayMs)
}

// IsFinished reports whether the repeat budget is exhausted or the node was
// killed.
func (s *timing) IsFinished() bool {
	return s.finished
}

func (s *timing) isStarted() bool {
	return s.started
}

func (s *timing) infiniteRepeat() bool {
	return s.repeatCount < 0
}
