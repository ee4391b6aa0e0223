package hovergrid

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const tweenTolerance = 1e-4

func near(a, b float64) bool { return math.Abs(a-b) <= tweenTolerance }

func TestTrackReachesTarget(t *testing.T) {
	tests := []struct {
		name  string
		track func(n *Node) *Track
		check func(n *Node) bool
	}{
		{"MoveTo", func(n *Node) *Track { return MoveTo(n, 100, 200, 1, ease.Linear) },
			func(n *Node) bool { return n.X == 100 && n.Y == 200 }},
		{"ScaleTo", func(n *Node) *Track { return ScaleTo(n, 2, 3, 0.5, ease.OutQuad) },
			func(n *Node) bool { return n.ScaleX == 2 && n.ScaleY == 3 }},
		{"RotateTo", func(n *Node) *Track { return RotateTo(n, 1.5, 0.5, ease.InOutQuart) },
			func(n *Node) bool { return n.Rotation == 1.5 }},
		{"FadeTo", func(n *Node) *Track { return FadeTo(n, 0.25, 0.5, nil) },
			func(n *Node) bool { return n.Alpha == 0.25 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewContainer("n")
			n.X, n.Y = 10, 20
			tl := NewTimeline()
			tl.Add(tt.track(n), AtEnd())

			tl.Update(0.5)
			tl.Update(0.5)

			if !tl.Done {
				t.Fatal("expected Done after full duration")
			}
			if !tt.check(n) {
				t.Errorf("node did not reach target: %+v", n)
			}
		})
	}
}

func TestMoveToMidway(t *testing.T) {
	n := NewContainer("n")
	n.X = 10
	tl := NewTimeline()
	tl.Add(MoveTo(n, 110, 0, 1, ease.Linear), AtEnd())

	tl.Update(0.5)
	if !near(n.X, 60) {
		t.Errorf("X = %v, want ~60", n.X)
	}
	if tl.Done {
		t.Error("timeline should not be done halfway")
	}
	if !n.transformDirty {
		t.Error("writing a track value should mark the node dirty")
	}
}

func TestTrackCapturesFromOnStart(t *testing.T) {
	n := NewContainer("n")
	n.X, n.Y = 5, 6
	tr := MoveTo(n, 50, 60, 1, ease.Linear)
	if x, y := tr.From(); x != 0 || y != 0 {
		t.Errorf("From before start = (%v, %v), want (0, 0)", x, y)
	}

	tl := NewTimeline()
	tl.Add(tr, AtEnd())
	tl.Update(0.1)

	if x, y := tr.From(); x != 5 || y != 6 {
		t.Errorf("From after start = (%v, %v), want (5, 6)", x, y)
	}
	if x, y := tr.To(); x != 50 || y != 60 {
		t.Errorf("To = (%v, %v), want (50, 60)", x, y)
	}
}

// --- Placement ---

func TestPositions(t *testing.T) {
	n := NewContainer("n")
	tl := NewTimeline()

	a := tl.Add(MoveTo(n, 1, 1, 0.5, nil), AtEnd())
	b := tl.Add(MoveTo(n, 0, 0, 0.4, nil), Relative(-0.4))
	c := tl.Add(RotateTo(n, 1, 0.4, nil), AlignWith(a))
	d := tl.Add(FadeTo(n, 0, 0.2, nil), At(1))
	e := tl.Add(FadeTo(n, 1, 0.2, nil), Relative(-10))

	tests := []struct {
		name       string
		tr         *Track
		start, end float32
	}{
		{"AtEnd", a, 0, 0.5},
		{"Relative overlap", b, 0.1, 0.5},
		{"AlignWith", c, 0, 0.4},
		{"At", d, 1, 1.2},
		{"Relative clamps to zero", e, 0, 0.2},
	}
	for _, tt := range tests {
		if !near(float64(tt.tr.Start()), float64(tt.start)) {
			t.Errorf("%s: Start = %v, want %v", tt.name, tt.tr.Start(), tt.start)
		}
		if !near(float64(tt.tr.End()), float64(tt.end)) {
			t.Errorf("%s: End = %v, want %v", tt.name, tt.tr.End(), tt.end)
		}
	}
	if !near(float64(tl.Duration()), 1.2) {
		t.Errorf("Duration = %v, want 1.2", tl.Duration())
	}
	if len(tl.Tracks()) != 5 {
		t.Errorf("Tracks = %d, want 5", len(tl.Tracks()))
	}
}

func TestAlignWithNilStartsAtZero(t *testing.T) {
	tl := NewTimeline()
	tl.Add(FadeTo(NewContainer("a"), 0, 1, nil), AtEnd())
	tr := tl.Add(FadeTo(NewContainer("b"), 0, 1, nil), AlignWith(nil))
	if tr.Start() != 0 {
		t.Errorf("Start = %v, want 0", tr.Start())
	}
}

// --- Overlap ---

func TestLaterTrackWinsOnSharedField(t *testing.T) {
	n := NewContainer("n")
	tl := NewTimeline()
	tl.Add(MoveTo(n, 30, -12, 0.5, ease.Linear), AtEnd())
	tl.Add(MoveTo(n, 0, 0, 0.4, ease.Linear), Relative(-0.4))

	tl.Update(0.05)
	if !near(n.X, 3) {
		t.Errorf("X before overlap = %v, want ~3", n.X)
	}

	// Both tracks are active; the return track writes last.
	tl.Update(0.25)
	outOnly := 30 * 0.3 / 0.5
	if n.X >= outOnly {
		t.Errorf("X = %v, want below outbound-only value %v", n.X, outOnly)
	}

	tl.Update(1)
	if !tl.Done {
		t.Fatal("expected Done")
	}
	if n.X != 0 || n.Y != 0 {
		t.Errorf("final position = (%v, %v), want (0, 0)", n.X, n.Y)
	}
}

// --- Yoyo / repeat ---

func TestYoyoReturnsToStart(t *testing.T) {
	n := NewContainer("n")
	n.Rotation = 0.3
	tl := NewTimeline()
	tr := tl.Add(RotateFromTo(n, 0, 1, 0.4, ease.Linear).Yoyo(1), AtEnd())

	if !near(float64(tr.Span()), 0.8) {
		t.Fatalf("Span = %v, want 0.8", tr.Span())
	}

	tl.Update(0.2)
	if !near(n.Rotation, 0.5) {
		t.Errorf("rotation at 0.2 = %v, want ~0.5", n.Rotation)
	}
	tl.Update(0.2)
	if !near(n.Rotation, 1) {
		t.Errorf("rotation at peak = %v, want ~1", n.Rotation)
	}
	tl.Update(0.2)
	if !near(n.Rotation, 0.5) {
		t.Errorf("rotation on the way back = %v, want ~0.5", n.Rotation)
	}
	tl.Update(1)
	if !tl.Done {
		t.Fatal("expected Done")
	}
	if n.Rotation != 0 {
		t.Errorf("final rotation = %v, want 0", n.Rotation)
	}
}

func TestYoyoEvenRepeatEndsAtTarget(t *testing.T) {
	n := NewContainer("n")
	tl := NewTimeline()
	tl.Add(RotateFromTo(n, 0, 1, 0.1, ease.Linear).Yoyo(2), AtEnd())
	tl.Update(1)
	if n.Rotation != 1 {
		t.Errorf("final rotation = %v, want 1", n.Rotation)
	}
}

func TestRepeatEndsAtTarget(t *testing.T) {
	n := NewContainer("n")
	tl := NewTimeline()
	tr := tl.Add(MoveTo(n, 10, 0, 0.5, ease.Linear).Repeat(1), AtEnd())
	if tr.Span() != 1 {
		t.Errorf("Span = %v, want 1", tr.Span())
	}

	tl.Update(0.75)
	if !near(n.X, 5) {
		t.Errorf("X in second play = %v, want ~5", n.X)
	}
	tl.Update(1)
	if n.X != 10 {
		t.Errorf("final X = %v, want 10", n.X)
	}
}

func TestNegativeRepeatClamped(t *testing.T) {
	tr := RotateTo(NewContainer("n"), 1, 1, nil).Yoyo(-3)
	if tr.Span() != 1 {
		t.Errorf("Span = %v, want 1", tr.Span())
	}
}

// --- Playback ---

func TestTimeScale(t *testing.T) {
	n := NewContainer("n")
	tl := NewTimeline().SetTimeScale(2)
	tl.Add(MoveTo(n, 100, 0, 1, ease.Linear), AtEnd())

	tl.Update(0.25)
	if !near(n.X, 50) {
		t.Errorf("X = %v, want ~50 at double speed", n.X)
	}
	if !near(float64(tl.Elapsed()), 0.5) {
		t.Errorf("Elapsed = %v, want 0.5", tl.Elapsed())
	}

	tl.SetTimeScale(0)
	if tl.TimeScale() != 2 {
		t.Errorf("TimeScale = %v, non-positive scale should be ignored", tl.TimeScale())
	}
}

func TestElapsedClampedToDuration(t *testing.T) {
	tl := NewTimeline()
	tl.Add(FadeTo(NewContainer("n"), 0, 0.5, nil), AtEnd())
	tl.Update(3)
	if tl.Elapsed() != 0.5 {
		t.Errorf("Elapsed = %v, want 0.5", tl.Elapsed())
	}
}

func TestOnCompleteFiresOnce(t *testing.T) {
	calls := 0
	tl := NewTimeline().OnComplete(func() { calls++ })
	tl.Add(FadeTo(NewContainer("n"), 0, 0.5, nil), AtEnd())

	tl.Update(0.25)
	if calls != 0 {
		t.Fatalf("OnComplete fired early")
	}
	tl.Update(0.5)
	tl.Update(0.5)
	if calls != 1 {
		t.Errorf("OnComplete calls = %d, want 1", calls)
	}
}

func TestEmptyTimelineCompletesImmediately(t *testing.T) {
	done := false
	tl := NewTimeline().OnComplete(func() { done = true })
	tl.Update(1.0 / 60)
	if !tl.Done || !done {
		t.Error("empty timeline should complete on its first update")
	}
}

func TestDisposedTargetStopsTrack(t *testing.T) {
	n := NewContainer("n")
	n.X = 5
	tl := NewTimeline()
	tl.Add(MoveTo(n, 100, 0, 1, ease.Linear), AtEnd())

	n.Dispose()
	tl.Update(0.5)
	if n.X != 5 {
		t.Errorf("X = %v, disposed node should not be written", n.X)
	}
	tl.Update(1)
	if !tl.Done {
		t.Error("timeline should still complete")
	}
	if n.X != 5 {
		t.Errorf("X = %v after completion, want 5", n.X)
	}
}

func TestZeroDurationTrackJumps(t *testing.T) {
	n := NewContainer("n")
	tl := NewTimeline()
	tl.Add(MoveTo(n, 7, 8, 0, nil), AtEnd())
	tl.Update(1.0 / 60)
	if n.X != 7 || n.Y != 8 {
		t.Errorf("position = (%v, %v), want (7, 8)", n.X, n.Y)
	}
}

func BenchmarkTimelineUpdate(b *testing.B) {
	n := NewContainer("n")
	b.ReportAllocs()
	for b.Loop() {
		tl := NewTimeline().SetTimeScale(1.2)
		out := tl.Add(MoveTo(n, 30, -12, 0.5, ease.OutCubic), AtEnd())
		tl.Add(MoveTo(n, 0, 0, 0.4, ease.OutQuad), Relative(-0.4))
		tl.Add(RotateFromTo(n, 0, 0.1, 0.4, ease.InOutQuart).Yoyo(1), AlignWith(out))
		for !tl.Done {
			tl.Update(1.0 / 60)
		}
	}
}
