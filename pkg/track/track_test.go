package track

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/slipstream/pkg/config"
)

func testWidths(string) float64 { return 500 }

func TestEaseEndpoints(t *testing.T) {
	assert.InDelta(t, 3.0, EaseIn(3, 7, 0), 1e-12)
	assert.InDelta(t, 7.0, EaseIn(3, 7, 1), 1e-12)
	assert.InDelta(t, 3.0, EaseInOut(3, 7, 0), 1e-12)
	assert.InDelta(t, 7.0, EaseInOut(3, 7, 1), 1e-12)
	assert.InDelta(t, 5.0, EaseInOut(3, 7, 0.5), 1e-12)
}

func TestBuildCircuitLength(t *testing.T) {
	trk := BuildCircuit(testWidths)
	require.NotEmpty(t, trk.Segments)

	assert.Equal(t, config.SegmentLength*float64(len(trk.Segments)), trk.Length)

	last := trk.Segments[len(trk.Segments)-1]
	assert.InDelta(t, trk.Length, last.P2.Z, 1e-9, "final far edge must close the loop")
}

func TestElevationContinuity(t *testing.T) {
	trk := BuildCircuit(testWidths)

	for i := 1; i < len(trk.Segments); i++ {
		assert.InDelta(t, trk.Segments[i-1].P2.Y, trk.Segments[i].P1.Y, 1e-9,
			"elevation discontinuity at segment %d", i)
	}
	// The wrap from last back to first must be continuous too.
	assert.InDelta(t, trk.Segments[len(trk.Segments)-1].P2.Y, trk.Segments[0].P1.Y, 1e-6)
}

func TestAtPositionPeriodic(t *testing.T) {
	trk := BuildCircuit(testWidths)

	positions := []float64{0, 1, config.SegmentLength * 1.5, trk.Length - 1, trk.Length / 3}
	for _, p := range positions {
		base := trk.AtPosition(p)
		for k := 1; k <= 3; k++ {
			assert.Same(t, base, trk.AtPosition(p+float64(k)*trk.Length), "position %f, k=%d", p, k)
		}
	}
}

func TestAtPositionFloorMod(t *testing.T) {
	trk := BuildCircuit(testWidths)

	assert.Equal(t, 0, trk.AtPosition(0).Index)
	assert.Equal(t, 0, trk.AtPosition(config.SegmentLength-0.001).Index)
	assert.Equal(t, 1, trk.AtPosition(config.SegmentLength).Index)
	assert.Equal(t, len(trk.Segments)-1, trk.AtPosition(trk.Length-0.001).Index)
	assert.Equal(t, 0, trk.AtPosition(trk.Length).Index)
}

func TestStartBandFlagged(t *testing.T) {
	trk := BuildCircuit(testWidths)

	assert.Equal(t, BandStart, trk.Segments[2].Band)
	assert.Equal(t, BandStart, trk.Segments[3].Band)
}

func TestAddSideObjectClearsRoad(t *testing.T) {
	wide := func(string) float64 { return 4000 } // twice the road width
	b := NewBuilder(wide)
	b.AddStraight(LengthShort)
	b.AddSideObject(5, AssetTree, 1, 0)
	b.AddSideObject(6, AssetTree, -1, 1.5)
	trk := b.Build()

	d := trk.Segments[5].Decor[0]
	// Inner edge = offset - halfWidth must clear road edge + rumble + safety.
	inner := d.Offset - d.HalfWidth
	assert.GreaterOrEqual(t, inner, 1+config.RumbleRatio+config.SideObjectGap-1e-9)

	d = trk.Segments[6].Decor[0]
	inner = -(d.Offset + d.HalfWidth) // left side
	assert.GreaterOrEqual(t, inner, 1+config.RumbleRatio+config.SideObjectGap+1.5-1e-9)
	assert.False(t, d.Mirror)
}

func TestWrapAndFrac(t *testing.T) {
	trk := BuildCircuit(testWidths)

	assert.InDelta(t, 10.0, trk.Wrap(trk.Length+10), 1e-9)
	assert.InDelta(t, trk.Length-10, trk.Wrap(-10), 1e-9)

	frac := trk.FracInSegment(config.SegmentLength * 2.25)
	assert.InDelta(t, 0.25, frac, 1e-9)
}

func TestElevationAtInterpolates(t *testing.T) {
	trk := BuildCircuit(testWidths)

	seg := trk.AtPosition(0)
	mid := trk.ElevationAt(config.SegmentLength / 2)
	assert.InDelta(t, (seg.P1.Y+seg.P2.Y)/2, mid, 1e-9)
	assert.False(t, math.IsNaN(mid))
}
