package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/slipstream/pkg/assets"
	"github.com/golangdaddy/slipstream/pkg/config"
	"github.com/golangdaddy/slipstream/pkg/race"
	"github.com/golangdaddy/slipstream/pkg/track"
	"github.com/golangdaddy/slipstream/pkg/vehicle"
)

func testTrack() *track.Track {
	b := track.NewBuilder(func(string) float64 { return 300 })
	b.AddStraight(track.LengthLong)
	return b.Build()
}

func testVehicle() *vehicle.Vehicle {
	return vehicle.New("p1", vehicle.Human, "car-blue", color.RGBA{A: 255}, 0)
}

func TestProjectWindowSize(t *testing.T) {
	trk := testTrack()
	c := NewComposer(trk, nil, 0, 0, 640, 480)
	own := testVehicle()

	camY, camZ := c.cameraFor(own, 0)
	c.projectWindow(own, camY, camZ)

	require.Len(t, c.scratch, config.LookBack+config.DrawDistance)
}

func TestProjectWindowDepthOrder(t *testing.T) {
	trk := testTrack()
	c := NewComposer(trk, nil, 0, 0, 640, 480)
	own := testVehicle()
	own.Position = 10 // just inside segment 0

	camY, camZ := c.cameraFor(own, 0)
	c.projectWindow(own, camY, camZ)

	// On a flat straight scale grows monotonically from far to near, and
	// the nearer segments are non-degenerate (far edge above near edge).
	// Distant segments may round to the same row; the painter skips those.
	drawable := 0
	prevScale := 0.0
	for i := len(c.scratch) - 1; i >= 0; i-- {
		s := c.scratch[i]
		if s.p1.Scale <= 0 || s.p2.Scale <= 0 {
			continue
		}
		assert.GreaterOrEqual(t, s.p1.Scale, prevScale)
		prevScale = s.p1.Scale
		if s.p2.Y < s.p1.Y {
			drawable++
		}
	}
	assert.Greater(t, drawable, 20)
}

func TestProjectWindowUnwrapsAtBoundary(t *testing.T) {
	trk := testTrack()
	c := NewComposer(trk, nil, 0, 0, 640, 480)
	own := testVehicle()
	// Base segment near the end of the loop: the draw window wraps.
	own.Position = trk.Length - 3*config.SegmentLength

	camY, camZ := c.cameraFor(own, 0)
	c.projectWindow(own, camY, camZ)

	visible := 0
	for _, s := range c.scratch {
		if s.p1.Scale > 0 {
			visible++
		}
	}
	// Without z unwrapping, wrapped segments would land behind the camera
	// and the window would collapse to a couple of segments.
	assert.Greater(t, visible, config.DrawDistance/2)
}

func TestFinishedVehicleViewportStillDrawsRoad(t *testing.T) {
	trk := testTrack()
	c := NewComposer(trk, nil, 0, 0, 640, 480)
	own := testVehicle()

	m := race.New(0, 1)
	m.Tick(1.0, 1.0/60, []*vehicle.Vehicle{own})
	require.Equal(t, race.Racing, m.Phase)

	// Final-lap crossing parks the car; its viewport must keep projecting
	// road for the results screen instead of collapsing behind the camera.
	own.Position = trk.Length + 5
	m.HandleLapCrossing(own, 30.0, trk.Length)
	require.True(t, own.Finished)

	camY, camZ := c.cameraFor(own, 0)
	c.projectWindow(own, camY, camZ)

	visible := 0
	for _, s := range c.scratch {
		if s.p1.Scale > 0 {
			visible++
		}
	}
	assert.Greater(t, visible, config.DrawDistance/2)
}

func TestProjectWindowShakeMovesCamera(t *testing.T) {
	trk := testTrack()
	c := NewComposer(trk, nil, 0, 0, 640, 480)
	own := testVehicle()

	calmY, _ := c.cameraFor(own, 0.03)
	own.Shake = config.ShakeMagnitude
	shakenY, _ := c.cameraFor(own, 0.03)

	assert.NotEqual(t, calmY, shakenY)
}

func TestCarAngleBands(t *testing.T) {
	// Straight ahead, no steering, no curvature.
	assert.Equal(t, assets.AngleStraight, CarAngleFor(0, 0, 0))

	// Hard steering dominates: sign selects side, magnitude near vs far.
	assert.Equal(t, assets.AngleLeft, CarAngleFor(0, 0, -1))
	assert.Equal(t, assets.AngleRight, CarAngleFor(0, 0, 1))
	assert.Equal(t, assets.AngleLeftFar, CarAngleFor(-1.5, -3, -1))
	assert.Equal(t, assets.AngleRightFar, CarAngleFor(1.5, 3, 1))

	// Curvature alone nudges the variant once sharp enough.
	assert.Equal(t, assets.AngleRight, CarAngleFor(0, 2, 0))
	assert.Equal(t, assets.AngleLeft, CarAngleFor(0, -2, 0))
}
