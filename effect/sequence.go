package effect

import (
	"math"
	"math/rand/v2"

	"github.com/phanxgames/hovergrid"
	"github.com/tanema/gween/ease"
)

// Params holds the numbers that shape a hover sequence. Durations are in
// seconds before the time scale is applied; angles are in degrees.
type Params struct {
	Multiplier       float64
	OutDuration      float32
	ReturnDuration   float32
	ReturnOverlap    float32
	RotationMin      float64
	RotationMax      float64
	RotationDuration float32
	RotationRepeat   int
	TimeScale        float32

	OutEase      ease.TweenFunc
	ReturnEase   ease.TweenFunc
	RotationEase ease.TweenFunc
}

// DefaultParams returns the tuned values of the effect.
func DefaultParams() Params {
	return Params{
		Multiplier:       3,
		OutDuration:      0.5,
		ReturnDuration:   0.4,
		ReturnOverlap:    0.4,
		RotationMin:      -6,
		RotationMax:      6,
		RotationDuration: 0.4,
		RotationRepeat:   1,
		TimeScale:        1.2,
		OutEase:          ease.OutCubic,
		ReturnEase:       ease.OutQuad,
		RotationEase:     ease.InOutQuart,
	}
}

// Angle maps a uniform sample from rnd, in [0, 1), onto [lo, hi).
func Angle(lo, hi float64, rnd func() float64) float64 {
	return lo + rnd()*(hi-lo)
}

// AngleSource produces a rotation target in degrees within [lo, hi).
type AngleSource func(lo, hi float64) float64

// RandomAngles returns an AngleSource drawing from r, or from the global
// generator when r is nil.
func RandomAngles(r *rand.Rand) AngleSource {
	if r == nil {
		return func(lo, hi float64) float64 { return Angle(lo, hi, rand.Float64) }
	}
	return func(lo, hi float64) float64 { return Angle(lo, hi, r.Float64) }
}

// Sequence is the timeline built for one hover together with the tracks
// that make it up.
type Sequence struct {
	Timeline *hovergrid.Timeline
	Outbound *hovergrid.Track
	Return   *hovergrid.Track
	Rotation *hovergrid.Track
	// AngleDeg is the rotation peak in degrees.
	AngleDeg float64
}

// BuildSequence builds the hover timeline for img seeded by the delta
// (dx, dy) and a rotation peak of angleDeg degrees:
//
//   - outbound: position toward (dx, dy) * Multiplier
//   - return: position back to (0, 0), starting ReturnOverlap before the
//     outbound motion ends
//   - rotation: 0 to angleDeg and back, starting with the outbound motion
func BuildSequence(img *hovergrid.Node, dx, dy, angleDeg float64, p Params) *Sequence {
	tl := hovergrid.NewTimeline().SetTimeScale(p.TimeScale)

	out := tl.Add(hovergrid.MoveTo(img, dx*p.Multiplier, dy*p.Multiplier, p.OutDuration, p.OutEase), hovergrid.AtEnd())
	back := tl.Add(hovergrid.MoveTo(img, 0, 0, p.ReturnDuration, p.ReturnEase), hovergrid.Relative(-p.ReturnOverlap))
	rot := tl.Add(
		hovergrid.RotateFromTo(img, 0, angleDeg*math.Pi/180, p.RotationDuration, p.RotationEase).Yoyo(p.RotationRepeat),
		hovergrid.AlignWith(out),
	)

	return &Sequence{
		Timeline: tl,
		Outbound: out,
		Return:   back,
		Rotation: rot,
		AngleDeg: angleDeg,
	}
}
