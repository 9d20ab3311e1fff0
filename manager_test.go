package tween

import (
	"testing"
)

func TestManagerAddStartsNodes(t *testing.T) {
	e := newTestEngine()
	m := NewManager()
	p := &point{}

	tw := e.To(p, groupX, 1000).Target(100)
	m.Add(tw)

	if m.Count() != 1 {
		t.Fatalf("count = %d, want 1", m.Count())
	}
	if !tw.isStarted() {
		t.Fatal("Add must start an unstarted node")
	}

	m.Update(500)
	if !approxEqual(p.x, 50, epsilon) {
		t.Errorf("x = %f, want 50", p.x)
	}
}

func TestManagerAddDuplicateAndNil(t *testing.T) {
	e := newTestEngine()
	m := NewManager()
	tw := e.To(&point{}, groupX, 1000).Target(100)

	m.Add(tw)
	m.Add(tw)
	m.Add(nil)

	if m.Count() != 1 {
		t.Fatalf("count = %d after duplicate and nil adds, want 1", m.Count())
	}
}

func TestManagerSpeedScalesDeltas(t *testing.T) {
	e := newTestEngine()
	m := NewManager()
	p := &point{}
	e.To(p, groupX, 1000).Target(100).AddTo(m)

	m.SetSpeed(2)
	if m.Speed() != 2 {
		t.Fatalf("speed = %f, want 2", m.Speed())
	}
	m.Update(250)
	if !approxEqual(p.x, 50, epsilon) {
		t.Errorf("x = %f at double speed, want 50", p.x)
	}

	m.SetSpeed(0.5)
	m.Update(200) // +100ms of tween time
	if !approxEqual(p.x, 60, epsilon) {
		t.Errorf("x = %f at half speed, want 60", p.x)
	}
}

func TestManagerNegativeSpeedRewinds(t *testing.T) {
	e := newTestEngine()
	m := NewManager()
	p := &point{}
	e.To(p, groupX, 1000).Target(100).AddTo(m)

	m.Update(600)
	if !approxEqual(p.x, 60, epsilon) {
		t.Fatalf("x = %f, want 60", p.x)
	}

	m.SetSpeed(-1)
	m.Update(200)
	if !approxEqual(p.x, 40, epsilon) {
		t.Errorf("x = %f after rewinding 200ms, want 40", p.x)
	}
}

func TestManagerPauseResume(t *testing.T) {
	e := newTestEngine()
	m := NewManager()
	p := &point{}
	e.To(p, groupX, 1000).Target(100).AddTo(m)

	m.Pause()
	if !m.IsPaused() {
		t.Fatal("should report paused")
	}
	m.Update(500)
	if p.x != 0 {
		t.Errorf("x = %f while paused, want 0", p.x)
	}

	m.Resume()
	m.Update(500)
	if !approxEqual(p.x, 50, epsilon) {
		t.Errorf("x = %f after resume, want 50", p.x)
	}
}

func TestManagerRemovesFinishedNodes(t *testing.T) {
	e := newTestEngine()
	m := NewManager()
	short := e.To(&point{}, groupX, 100).Target(1)
	long := e.To(&point{}, groupX, 1000).Target(1)
	m.Add(short, long)

	m.Update(100)
	if m.Count() != 1 {
		t.Fatalf("count = %d after the short tween finished, want 1", m.Count())
	}
	if !short.IsFinished() {
		t.Fatal("short tween should be finished")
	}

	m.Update(900)
	if m.Count() != 0 {
		t.Fatalf("count = %d after both finished, want 0", m.Count())
	}
}

func TestManagerKillAll(t *testing.T) {
	e := newTestEngine()
	m := NewManager()
	rec := &eventRecorder{}
	e.To(&point{}, groupX, 1000).Target(1).On(EventKill, rec.cb).AddTo(m)
	e.To(&point{}, groupX, 2000).Target(1).On(EventKill, rec.cb).AddTo(m)

	m.KillAll()
	if rec.count(EventKill) != 2 {
		t.Errorf("KILL fired %d times, want 2", rec.count(EventKill))
	}

	m.Update(0)
	if m.Count() != 0 {
		t.Fatalf("count = %d after the sweep, want 0", m.Count())
	}
}

func TestManagerCallbackMayAddNodes(t *testing.T) {
	e := newTestEngine()
	m := NewManager()
	p := &point{}

	e.Call(func(EventType, Node) {
		e.To(p, groupX, 100).Target(100).AddTo(m)
	}).AddTo(m)

	m.Update(16) // Call fires and enqueues the follow-up tween
	if m.Count() != 1 {
		t.Fatalf("count = %d, want the follow-up tween to survive the sweep", m.Count())
	}

	m.Update(100)
	if p.x != 100 {
		t.Errorf("x = %f, want the follow-up tween to have run to 100", p.x)
	}
	if m.Count() != 0 {
		t.Errorf("count = %d at the end, want 0", m.Count())
	}
}

func TestManagerReleasesPooledTweens(t *testing.T) {
	r := NewRegistry()
	r.Register(&point{}, pointAccessor{})
	e := NewEngine(r, Config{Pooling: true})
	m := NewManager()

	e.To(&point{}, groupX, 100).Target(1).AddTo(m)
	m.Update(100)

	if m.Count() != 0 {
		t.Fatalf("count = %d, want 0", m.Count())
	}
	if e.PoolSize() != 1 {
		t.Errorf("pool size = %d, want the finished tween recycled", e.PoolSize())
	}
}

func TestManagerDrivesTimelines(t *testing.T) {
	e := newTestEngine()
	m := NewManager()
	p := &point{}

	e.Sequence().
		Push(e.To(p, groupX, 100).Target(50)).
		Push(e.To(p, groupX, 100).Target(100)).
		AddTo(m)

	m.Update(100)
	if !approxEqual(p.x, 50, epsilon) {
		t.Errorf("x = %f after the first child, want 50", p.x)
	}
	m.Update(100)
	if p.x != 100 {
		t.Errorf("x = %f after the second child, want 100", p.x)
	}
	if m.Count() != 0 {
		t.Errorf("count = %d, want the finished timeline removed", m.Count())
	}
}
