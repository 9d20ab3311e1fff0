package tween

// Manager owns a set of top-level nodes and advances them once per external
// tick. It never spawns its own clock: the host's frame loop decides when
// and how fast time passes. Finished nodes are released to their pool and
// removed at the end of each update pass, so callbacks fired mid-pass may
// safely add new nodes.
//
// A Manager assumes exclusive single-threaded access.
type Manager struct {
	nodes  []Node
	speed  float32
	paused bool
}

// NewManager returns an empty manager with speed 1.
func NewManager() *Manager {
	return &Manager{speed: 1}
}

// Add adds nodes to the manager, starting any that are not already running.
// Adding a node the manager already owns is a no-op.
func (m *Manager) Add(nodes ...Node) {
	for _, n := range nodes {
		if n == nil || m.owns(n) {
			continue
		}
		m.nodes = append(m.nodes, n)
		if !n.isStarted() {
			n.startNode()
		}
	}
}

func (m *Manager) owns(n Node) bool {
	for _, owned := range m.nodes {
		if owned == n {
			return true
		}
	}
	return false
}

// Update scales deltaMs by the manager's speed and forwards it to every
// owned node. A negative speed plays everything backwards; a paused manager
// does nothing. Nodes that report finished after the pass are released and
// removed.
func (m *Manager) Update(deltaMs float32) {
	if m.paused {
		return
	}
	dt := deltaMs * m.speed

	// Nodes added by callbacks during this pass are updated starting next
	// pass, but they survive the removal sweep below.
	count := len(m.nodes)
	for i := 0; i < count; i++ {
		m.nodes[i].Update(dt)
	}

	kept := m.nodes[:0]
	for _, n := range m.nodes {
		if n.IsFinished() {
			n.release()
			continue
		}
		kept = append(kept, n)
	}
	for i := len(kept); i < len(m.nodes); i++ {
		m.nodes[i] = nil
	}
	m.nodes = kept
}

// KillAll force-finishes every owned node. The nodes are released and
// removed on the next Update pass.
func (m *Manager) KillAll() {
	for _, n := range m.nodes {
		n.Kill()
	}
}

// Pause suspends the manager: Update becomes a no-op until Resume.
func (m *Manager) Pause() {
	m.paused = true
}

// Resume lifts a pause.
func (m *Manager) Resume() {
	m.paused = false
}

// IsPaused reports whether the manager is paused.
func (m *Manager) IsPaused() bool {
	return m.paused
}

// SetSpeed sets the global time scale applied to incoming deltas. 1 is
// normal speed, 0.5 half speed, -1 reverse playback.
func (m *Manager) SetSpeed(multiplier float32) {
	m.speed = multiplier
}

// Speed returns the current time scale.
func (m *Manager) Speed() float32 {
	return m.speed
}

// Count returns the number of nodes the manager currently owns.
func (m *Manager) Count() int {
	return len(m.nodes)
}
