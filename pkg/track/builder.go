package track

import (
	"github.com/golangdaddy/slipstream/pkg/config"
)

// Piecewise geometry presets, in segments (lengths) and per-segment
// curvature rate (curves) and segment-lengths of elevation change (hills).
const (
	LengthShort  = 25
	LengthMedium = 50
	LengthLong   = 100

	CurveEasy   = 2.0
	CurveMedium = 4.0
	CurveHard   = 6.0

	HillLow    = 20.0
	HillMedium = 40.0
	HillHigh   = 60.0
)

// SpriteWidths reports the declared world width of an asset. The builder
// uses it to place side objects clear of the road and to stamp collision
// half-widths onto decorations.
type SpriteWidths func(asset string) float64

// Builder accumulates segments from piecewise primitives and produces an
// immutable Track. Deterministic; it has no failure mode.
type Builder struct {
	segments []Segment
	widthOf  SpriteWidths
}

func NewBuilder(widthOf SpriteWidths) *Builder {
	return &Builder{widthOf: widthOf}
}

func (b *Builder) lastY() float64 {
	if len(b.segments) == 0 {
		return 0
	}
	return b.segments[len(b.segments)-1].P2.Y
}

func (b *Builder) addSegment(curve, y float64) {
	idx := len(b.segments)
	band := BandLight
	if (idx/config.RumbleLength)%2 == 1 {
		band = BandDark
	}
	b.segments = append(b.segments, Segment{
		Index: idx,
		Curve: curve,
		P1:    EdgePoint{Y: b.lastY(), Z: float64(idx) * config.SegmentLength},
		P2:    EdgePoint{Y: y, Z: float64(idx+1) * config.SegmentLength},
		Band:  band,
	})
}

// AddRoad emits enter+hold+leave segments. Curvature eases in quadratically
// from 0 to curve, holds, then eases back to 0. The leave phase always
// returns to 0 rather than some new target, so consecutive calls stay
// continuous. Elevation eases across the entire span regardless of the
// curve sub-phase.
func (b *Builder) AddRoad(enter, hold, leave int, curve, elevDelta float64) {
	startY := b.lastY()
	endY := startY + elevDelta*config.SegmentLength
	total := float64(enter + hold + leave)

	n := 0
	for i := 0; i < enter; i++ {
		n++
		b.addSegment(EaseIn(0, curve, float64(i)/float64(enter)), EaseInOut(startY, endY, float64(n)/total))
	}
	for i := 0; i < hold; i++ {
		n++
		b.addSegment(curve, EaseInOut(startY, endY, float64(n)/total))
	}
	for i := 0; i < leave; i++ {
		n++
		b.addSegment(EaseInOut(curve, 0, float64(i)/float64(leave)), EaseInOut(startY, endY, float64(n)/total))
	}
}

func (b *Builder) AddStraight(n int) {
	b.AddRoad(n, n, n, 0, 0)
}

func (b *Builder) AddCurve(n int, curve, elev float64) {
	b.AddRoad(n, n, n, curve, elev)
}

func (b *Builder) AddHill(n int, height float64) {
	b.AddRoad(n, n, n, 0, height)
}

func (b *Builder) AddSCurves() {
	b.AddRoad(LengthMedium, LengthMedium, LengthMedium, -CurveEasy, 0)
	b.AddRoad(LengthMedium, LengthMedium, LengthMedium, CurveMedium, 0)
	b.AddRoad(LengthMedium, LengthMedium, LengthMedium, CurveEasy, -HillLow)
	b.AddRoad(LengthMedium, LengthMedium, LengthMedium, -CurveEasy, HillMedium)
	b.AddRoad(LengthMedium, LengthMedium, LengthMedium, -CurveMedium, -HillMedium)
}

func (b *Builder) AddBumps() {
	for _, h := range []float64{10, -10, 8, -5, 7, -7, 5, -8} {
		b.AddRoad(10, 10, 10, 0, h)
	}
}

func (b *Builder) AddLowRollingHills() {
	n := LengthShort
	b.AddRoad(n, n, n, 0, HillLow/2)
	b.AddRoad(n, n, n, 0, -HillLow)
	b.AddRoad(n, n, n, CurveEasy, HillLow)
	b.AddRoad(n, n, n, 0, 0)
	b.AddRoad(n, n, n, -CurveEasy, HillLow/2)
	b.AddRoad(n, n, n, 0, 0)
}

// AddDownhillToEnd returns elevation to zero over the remaining descent so
// the wrap from the last segment back to the first stays continuous.
func (b *Builder) AddDownhillToEnd(n int) {
	b.AddRoad(n, n, n, -CurveEasy, -b.lastY()/config.SegmentLength)
}

// AddSideObject attaches a decoration to segment index so that its inner
// edge clears the road edge, the rumble strip, and a safety margin no
// matter how wide the sprite is. side is -1 (left) or +1 (right).
func (b *Builder) AddSideObject(index int, asset string, side, margin float64) {
	if index < 0 || index >= len(b.segments) {
		return
	}
	halfWidthUnits := b.widthOf(asset) / 2 / config.RoadHalfWidth
	d := Decoration{
		Asset:     asset,
		Offset:    side * (1 + config.RumbleRatio + config.SideObjectGap + margin + halfWidthUnits),
		Mirror:    side > 0,
		HalfWidth: halfWidthUnits,
	}
	b.segments[index].Decor = append(b.segments[index].Decor, d)
}

// AddObstacle attaches a decoration on the road surface itself, at an
// explicit lateral offset.
func (b *Builder) AddObstacle(index int, asset string, offset float64) {
	if index < 0 || index >= len(b.segments) {
		return
	}
	b.segments[index].Decor = append(b.segments[index].Decor, Decoration{
		Asset:     asset,
		Offset:    offset,
		HalfWidth: b.widthOf(asset) / 2 / config.RoadHalfWidth,
	})
}

// Build flags the start band and finalizes the immutable track.
func (b *Builder) Build() *Track {
	if len(b.segments) > 3 {
		b.segments[2].Band = BandStart
		b.segments[3].Band = BandStart
	}
	return &Track{
		Segments:      b.segments,
		SegmentLength: config.SegmentLength,
		Length:        config.SegmentLength * float64(len(b.segments)),
	}
}
