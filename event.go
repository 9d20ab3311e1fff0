package tween

// EventType identifies a lifecycle event fired by a [Tween] or [Timeline].
// Register handlers with On; there is a single registration call per event
// kind, no callback sub-interfaces.
//
// Forward playback fires EventStart when an iteration begins and EventEnd
// when it finishes; backward playback (negative deltas, or a negative
// [Manager] speed) fires EventBackEnd and EventBackStart instead. EventBegin
// fires once, on the first update after the node starts. EventComplete and
// EventBackComplete fire when the repeat budget is exhausted in the forward
// or backward direction respectively. EventKill fires only on an explicit
// [Tween.Kill] or [Timeline.Kill], never on natural completion.
type EventType uint8

const (
	EventBegin EventType = iota
	EventStart
	EventEnd
	EventComplete
	EventBackStart
	EventBackEnd
	EventBackComplete
	EventKill

	eventCount
)

// String returns the event name, e.g. "START".
func (e EventType) String() string {
	switch e {
	case EventBegin:
		return "BEGIN"
	case EventStart:
		return "START"
	case EventEnd:
		return "END"
	case EventComplete:
		return "COMPLETE"
	case EventBackStart:
		return "BACK_START"
	case EventBackEnd:
		return "BACK_END"
	case EventBackComplete:
		return "BACK_COMPLETE"
	case EventKill:
		return "KILL"
	}
	return "UNKNOWN"
}

// Callback is invoked synchronously during Update when the subscribed event
// fires. The source is the node that fired the event. Callbacks may safely
// add new nodes to the source's Manager; removal of finished nodes is
// deferred to the end of the current update pass.
type Callback func(event EventType, source Node)

// callbackSet holds per-event handler lists. The zero value is ready to use.
type callbackSet struct {
	handlers [eventCount][]Callback
}

func (c *callbackSet) add(event EventType, cb Callback) {
	if event >= eventCount {
		panic("tween: unknown event type")
	}
	c.handlers[event] = append(c.handlers[event], cb)
}

func (c *callbackSet) fire(event EventType, source Node) {
	for _, cb := range c.handlers[event] {
		cb(event, source)
	}
}

func (c *callbackSet) clear() {
	for i := range c.handlers {
		c.handlers[i] = nil
	}
}
