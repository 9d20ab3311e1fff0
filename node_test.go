package tween

import (
	"testing"
)

func TestTimingSpan(t *testing.T) {
	tests := []struct {
		name                 string
		delay, dur, repDelay float32
		repeat               int
		want                 float32
	}{
		{"plain", 0, 100, 0, 0, 100},
		{"with delay", 50, 100, 0, 0, 150},
		{"repeats", 0, 100, 0, 2, 300},
		{"repeats with rest", 0, 100, 25, 2, 375},
		{"everything", 10, 100, 25, 1, 260},
		{"infinite counts one cycle", 0, 100, 50, Infinite, 150},
		{"zero duration", 30, 0, 0, 0, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := timing{
				delayMs:       tt.delay,
				repeatCount:   tt.repeat,
				repeatDelayMs: tt.repDelay,
			}
			if got := s.spanWith(tt.dur); got != tt.want {
				t.Errorf("spanWith(%v) = %v, want %v", tt.dur, got, tt.want)
			}
		})
	}
}

func TestTimingIterationValid(t *testing.T) {
	s := timing{repeatCount: 2}
	for i := 0; i <= 2; i++ {
		if !s.iterationValid(i) {
			t.Errorf("iteration %d should be within a budget of 2 repeats", i)
		}
	}
	if s.iterationValid(-1) || s.iterationValid(3) {
		t.Error("iterations outside [0, repeatCount] must be invalid")
	}

	inf := timing{repeatCount: Infinite}
	for _, i := range []int{-1, 0, 7, 100000} {
		if !inf.iterationValid(i) {
			t.Errorf("iteration %d should be valid under infinite repetition", i)
		}
	}
}

func TestTweenSpanIncludesDelayAndRepeats(t *testing.T) {
	e := newTestEngine()
	tw := e.To(&point{}, groupX, 100).Target(1).Delay(50).Repeat(1, 25)
	if got := tw.span(); got != 300 {
		t.Errorf("span = %v, want 300 (50 + 2*(100+25))", got)
	}
}
