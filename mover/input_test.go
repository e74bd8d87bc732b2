package mover

import "testing"

func TestEdgeDetector(t *testing.T) {
	held := []bool{false, true, true, false, true, false, false, true}
	want := []bool{false, true, false, false, true, false, false, true}

	var e EdgeDetector
	for i, h := range held {
		if got := e.Update(h); got != want[i] {
			t.Fatalf("step %d: held=%v expected pressed=%v, got %v", i, h, want[i], got)
		}
	}
}

func TestEdgeDetectorReset(t *testing.T) {
	var e EdgeDetector
	e.Update(true)
	e.Reset()
	if !e.Update(true) {
		t.Fatalf("held button should count as a press after reset")
	}
}

func TestInputTrackerSample(t *testing.T) {
	var tr InputTracker
	in := tr.Sample(-1, true, true)
	if in != (Input{Axis: -1, JumpPressed: true, DashPressed: true}) {
		t.Fatalf("unexpected first sample %+v", in)
	}
	in = tr.Sample(0.5, true, false)
	if in != (Input{Axis: 0.5}) {
		t.Fatalf("held buttons must not repeat: %+v", in)
	}
	in = tr.Sample(0, true, true)
	if in.JumpPressed || !in.DashPressed {
		t.Fatalf("expected only dash edge, got %+v", in)
	}
}

func TestLockPlanar(t *testing.T) {
	cases := []Pose{
		{X: 1, Y: 2, Z: 3, Rotation: 0.4},
		{X: -5, Y: 0, Z: -0.01, Rotation: -3},
		{},
	}
	for _, p := range cases {
		once := LockPlanar(p)
		twice := LockPlanar(once)
		if once != twice {
			t.Fatalf("lock is not idempotent: %+v vs %+v", once, twice)
		}
		if once.Z != 0 || once.Rotation != 0 || once.X != p.X || once.Y != p.Y {
			t.Fatalf("unexpected locked pose %+v from %+v", once, p)
		}
	}
}
