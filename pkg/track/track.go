package track

import (
	"math"
)

// Band selects the repeating color scheme of a segment. Bands alternate
// every config.RumbleLength segments; the start band is flagged so the
// renderer can mark the start/finish line.
type Band int

const (
	BandLight Band = iota
	BandDark
	BandStart
)

// EdgePoint is one longitudinal edge of a segment: elevation and distance
// along the track centerline. The lateral coordinate is always 0 in world
// space; curvature is applied at projection time.
type EdgePoint struct {
	Y float64
	Z float64
}

// Decoration is a piece of roadside furniture attached to a segment.
// Offset is in road half-widths, signed by side. HalfWidth is the sprite's
// declared world half-width converted to the same units, stamped at build
// time so collision checks need no asset lookup.
type Decoration struct {
	Asset     string
	Offset    float64
	Mirror    bool
	HalfWidth float64
}

// Segment is one fixed-length slice of the track.
type Segment struct {
	Index int
	Curve float64
	P1    EdgePoint // near edge
	P2    EdgePoint // far edge
	Band  Band
	Decor []Decoration
}

// Track is the closed, immutable sequence of segments. Built once at
// startup and shared read-only between physics and rendering.
type Track struct {
	Segments      []Segment
	SegmentLength float64
	Length        float64
}

// AtPosition returns the segment owning a continuous track position.
// Floor-mod semantics make it correct for any real position and periodic
// under position + k*Length.
func (t *Track) AtPosition(pos float64) *Segment {
	n := len(t.Segments)
	i := int(math.Floor(pos / t.SegmentLength))
	i = ((i % n) + n) % n
	return &t.Segments[i]
}

// ElevationAt interpolates ground height at a continuous position from the
// owning segment's two edges.
func (t *Track) ElevationAt(pos float64) float64 {
	seg := t.AtPosition(pos)
	frac := pos/t.SegmentLength - math.Floor(pos/t.SegmentLength)
	return seg.P1.Y + (seg.P2.Y-seg.P1.Y)*frac
}

// Wrap maps any position into [0, Length).
func (t *Track) Wrap(pos float64) float64 {
	pos = math.Mod(pos, t.Length)
	if pos < 0 {
		pos += t.Length
	}
	return pos
}

// FracInSegment returns how far into its segment a position sits, in [0,1).
func (t *Track) FracInSegment(pos float64) float64 {
	f := pos / t.SegmentLength
	return f - math.Floor(f)
}
