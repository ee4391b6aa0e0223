package hovergrid

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// property identifies a float64 field on a Node that a Track can animate.
type property uint8

const (
	propX property = iota
	propY
	propRotation
	propAlpha
	propScaleX
	propScaleY
)

func (p property) field(n *Node) *float64 {
	switch p {
	case propX:
		return &n.X
	case propY:
		return &n.Y
	case propRotation:
		return &n.Rotation
	case propAlpha:
		return &n.Alpha
	case propScaleX:
		return &n.ScaleX
	default:
		return &n.ScaleY
	}
}

// Track animates up to two float64 fields on a Node from their values at the
// moment the track starts (or explicit from-values) to fixed targets. Tracks
// are placed on a Timeline; they do nothing on their own.
type Track struct {
	target   *Node
	props    [2]property
	count    int
	from     [2]float64
	hasFrom  bool
	to       [2]float64
	duration float32
	easing   ease.TweenFunc
	yoyo     bool
	repeat   int

	start   float32
	tweens  [2]*gween.Tween
	started bool
	done    bool
}

func newTrack(node *Node, duration float32, fn ease.TweenFunc) *Track {
	if fn == nil {
		fn = ease.Linear
	}
	return &Track{target: node, duration: duration, easing: fn}
}

// MoveTo creates a Track that animates node.X and node.Y to (x, y).
func MoveTo(node *Node, x, y float64, duration float32, fn ease.TweenFunc) *Track {
	t := newTrack(node, duration, fn)
	t.props = [2]property{propX, propY}
	t.to = [2]float64{x, y}
	t.count = 2
	return t
}

// ScaleTo creates a Track that animates node.ScaleX and node.ScaleY.
func ScaleTo(node *Node, sx, sy float64, duration float32, fn ease.TweenFunc) *Track {
	t := newTrack(node, duration, fn)
	t.props = [2]property{propScaleX, propScaleY}
	t.to = [2]float64{sx, sy}
	t.count = 2
	return t
}

// RotateTo creates a Track that animates node.Rotation (radians).
func RotateTo(node *Node, r float64, duration float32, fn ease.TweenFunc) *Track {
	t := newTrack(node, duration, fn)
	t.props[0] = propRotation
	t.to[0] = r
	t.count = 1
	return t
}

// RotateFromTo creates a Track that jumps node.Rotation to from when it
// starts and animates it to to.
func RotateFromTo(node *Node, from, to float64, duration float32, fn ease.TweenFunc) *Track {
	t := RotateTo(node, to, duration, fn)
	t.from[0] = from
	t.hasFrom = true
	return t
}

// FadeTo creates a Track that animates node.Alpha.
func FadeTo(node *Node, a float64, duration float32, fn ease.TweenFunc) *Track {
	t := newTrack(node, duration, fn)
	t.props[0] = propAlpha
	t.to[0] = a
	t.count = 1
	return t
}

// Yoyo makes the track play back to its starting values after reaching its
// targets. repeat is the number of extra plays after the first; odd plays run
// in reverse, so Yoyo(1) ends where it began.
func (t *Track) Yoyo(repeat int) *Track {
	t.yoyo = true
	if repeat < 0 {
		repeat = 0
	}
	t.repeat = repeat
	return t
}

// Repeat plays the track repeat extra times without reversing.
func (t *Track) Repeat(repeat int) *Track {
	if repeat < 0 {
		repeat = 0
	}
	t.repeat = repeat
	return t
}

// Target returns the node the track animates.
func (t *Track) Target() *Node { return t.target }

// Start returns the track's start offset on its timeline, in timeline seconds.
func (t *Track) Start() float32 { return t.start }

// Duration returns the length of one play.
func (t *Track) Duration() float32 { return t.duration }

// Span returns the total length including repeats.
func (t *Track) Span() float32 { return t.duration * float32(t.repeat+1) }

// End returns the offset at which the track finishes.
func (t *Track) End() float32 { return t.start + t.Span() }

// To returns the target values. Single-field tracks report the second value as 0.
func (t *Track) To() (float64, float64) { return t.to[0], t.to[1] }

// From returns the starting values. Before the track starts these are the
// explicit from-values (zero when none were given).
func (t *Track) From() (float64, float64) { return t.from[0], t.from[1] }

// begin captures starting values and builds the interpolators.
func (t *Track) begin() {
	t.started = true
	for i := 0; i < t.count; i++ {
		if !t.hasFrom {
			t.from[i] = *t.props[i].field(t.target)
		}
		t.tweens[i] = gween.New(float32(t.from[i]), float32(t.to[i]), t.duration, t.easing)
	}
}

// seek writes the track's value at local time lt (seconds since its start).
func (t *Track) seek(lt float32) {
	if t.target.IsDisposed() {
		t.done = true
		return
	}
	if !t.started {
		t.begin()
	}

	if lt >= t.Span() || t.duration <= 0 {
		t.done = true
		reversed := t.yoyo && t.repeat%2 == 1
		for i := 0; i < t.count; i++ {
			if reversed {
				*t.props[i].field(t.target) = t.from[i]
			} else {
				*t.props[i].field(t.target) = t.to[i]
			}
		}
		t.target.MarkDirty()
		return
	}

	iter := int(lt / t.duration)
	local := lt - float32(iter)*t.duration
	if t.yoyo && iter%2 == 1 {
		local = t.duration - local
	}
	for i := 0; i < t.count; i++ {
		v, _ := t.tweens[i].Set(local)
		*t.props[i].field(t.target) = float64(v)
	}
	t.target.MarkDirty()
}

// Position places a Track on a Timeline.
type Position struct {
	kind   positionKind
	offset float32
	ref    *Track
}

type positionKind uint8

const (
	posEnd positionKind = iota
	posAbsolute
	posRelative
	posAlign
)

// AtEnd places a track where the timeline currently ends.
func AtEnd() Position { return Position{kind: posEnd} }

// At places a track at an absolute offset in seconds.
func At(t float32) Position { return Position{kind: posAbsolute, offset: t} }

// Relative places a track offset seconds from where the timeline currently
// ends. Negative values overlap the tail of earlier tracks.
func Relative(offset float32) Position { return Position{kind: posRelative, offset: offset} }

// AlignWith places a track at the same start as ref.
func AlignWith(ref *Track) Position { return Position{kind: posAlign, ref: ref} }

// Timeline plays Tracks placed at offsets, possibly overlapping, then stops.
// Tracks are applied in insertion order, so when two tracks write the same
// field the later one wins. Hand it to Scene.Play, or call Update each frame.
type Timeline struct {
	tracks     []*Track
	elapsed    float32
	timeScale  float32
	onComplete func()

	// Done is set once every track has reached its final value.
	Done bool
}

// NewTimeline creates an empty timeline with a time scale of 1.
func NewTimeline() *Timeline {
	return &Timeline{timeScale: 1}
}

// SetTimeScale sets the playback speed multiplier. Values <= 0 are ignored.
func (tl *Timeline) SetTimeScale(scale float32) *Timeline {
	if scale > 0 {
		tl.timeScale = scale
	}
	return tl
}

// TimeScale returns the playback speed multiplier.
func (tl *Timeline) TimeScale() float32 { return tl.timeScale }

// OnComplete registers fn to run once, right after the last track finishes.
func (tl *Timeline) OnComplete(fn func()) *Timeline {
	tl.onComplete = fn
	return tl
}

// Add places tr at pos and returns it. Offsets that resolve before zero are
// clamped to zero.
func (tl *Timeline) Add(tr *Track, pos Position) *Track {
	end := tl.Duration()
	var start float32
	switch pos.kind {
	case posEnd:
		start = end
	case posAbsolute:
		start = pos.offset
	case posRelative:
		start = end + pos.offset
	case posAlign:
		if pos.ref != nil {
			start = pos.ref.start
		}
	}
	if start < 0 {
		start = 0
	}
	tr.start = start
	tl.tracks = append(tl.tracks, tr)
	return tr
}

// Tracks returns the placed tracks in insertion order. The returned slice
// MUST NOT be mutated.
func (tl *Timeline) Tracks() []*Track { return tl.tracks }

// Duration returns the unscaled length of the timeline in seconds.
func (tl *Timeline) Duration() float32 {
	var end float32
	for _, tr := range tl.tracks {
		if e := tr.End(); e > end {
			end = e
		}
	}
	return end
}

// Elapsed returns the unscaled playhead position.
func (tl *Timeline) Elapsed() float32 { return tl.elapsed }

// Update advances the playhead by dt real seconds (scaled by the time scale)
// and writes every active track's values.
func (tl *Timeline) Update(dt float32) {
	if tl.Done {
		return
	}
	tl.elapsed += dt * tl.timeScale
	total := tl.Duration()
	if tl.elapsed > total {
		tl.elapsed = total
	}

	for _, tr := range tl.tracks {
		if tr.done || tl.elapsed < tr.start {
			continue
		}
		tr.seek(tl.elapsed - tr.start)
	}

	if tl.elapsed >= total {
		for _, tr := range tl.tracks {
			if !tr.done {
				tr.seek(tr.Span())
			}
		}
		tl.Done = true
		if tl.onComplete != nil {
			tl.onComplete()
		}
	}
}
