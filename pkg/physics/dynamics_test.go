package physics

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/slipstream/pkg/config"
	"github.com/golangdaddy/slipstream/pkg/track"
	"github.com/golangdaddy/slipstream/pkg/vehicle"
)

const dt = 1.0 / 60.0

func straightTrack() *track.Track {
	b := track.NewBuilder(func(string) float64 { return 300 })
	b.AddStraight(track.LengthLong)
	return b.Build()
}

func newCar() *vehicle.Vehicle {
	return vehicle.New("test", vehicle.Human, "car-blue", color.RGBA{R: 255, A: 255}, 0)
}

func TestSpeedClampsToNearestBound(t *testing.T) {
	trk := straightTrack()

	v := newCar()
	v.Speed = config.MaxSpeed * 2
	UpdateHuman(v, trk, Intent{Throttle: true}, dt)
	assert.Equal(t, config.MaxSpeed, v.Speed)

	v = newCar()
	v.Speed = config.MaxReverse * 3
	UpdateHuman(v, trk, Intent{Brake: true}, dt)
	assert.Equal(t, config.MaxReverse, v.Speed)
}

func TestThrottleAcceleratesOnRoad(t *testing.T) {
	trk := straightTrack()
	v := newCar()

	for i := 0; i < 60; i++ {
		UpdateHuman(v, trk, Intent{Throttle: true}, dt)
	}
	assert.InDelta(t, config.Accel, v.Speed, 1e-6, "one second of full throttle")
	assert.Greater(t, v.Position, 0.0)
}

func TestOffRoadThrottleReduced(t *testing.T) {
	trk := straightTrack()
	v := newCar()
	v.Lateral = 1.5

	prev := 0.0
	for i := 0; i < 60; i++ {
		UpdateHuman(v, trk, Intent{Throttle: true}, dt)
		require.LessOrEqual(t, v.Speed, config.MaxSpeed)
		require.Greater(t, v.Speed, prev, "must keep accelerating below the off-road limit")
		prev = v.Speed
	}

	perSecond := config.Accel*config.OffRoadAccelFactor - config.OffRoadDrag
	assert.InDelta(t, perSecond, v.Speed, 1e-6)
	assert.Less(t, v.Speed, config.Accel, "off-road rate must be below the on-road rate")
}

func TestOffRoadScrubsAboveLimit(t *testing.T) {
	trk := straightTrack()
	v := newCar()
	v.Lateral = 1.5
	v.Speed = config.MaxSpeed

	for i := 0; i < 600 && v.Speed > config.OffRoadLimit*1.05; i++ {
		UpdateHuman(v, trk, Intent{Throttle: true}, dt)
	}
	assert.LessOrEqual(t, v.Speed, config.OffRoadLimit*1.05,
		"hard scrub must pull speed down toward the off-road ceiling even under throttle")
}

func TestBrakeAtStandstillReverses(t *testing.T) {
	trk := straightTrack()
	v := newCar()

	UpdateHuman(v, trk, Intent{Brake: true}, dt)
	assert.InDelta(t, -config.ReverseAccelFactor*config.Accel*dt, v.Speed, 1e-9)
}

func TestNaturalDecelTowardZeroFromEitherSign(t *testing.T) {
	trk := straightTrack()

	v := newCar()
	v.Speed = 50
	UpdateHuman(v, trk, Intent{}, dt)
	assert.InDelta(t, 50-config.NaturalDecel*dt, v.Speed, 1e-9)

	v = newCar()
	v.Speed = -5
	UpdateHuman(v, trk, Intent{}, dt)
	assert.Equal(t, 0.0, v.Speed, "decel must not overshoot zero")
}

func TestTurnAuthorityFloor(t *testing.T) {
	trk := straightTrack()

	v := newCar()
	v.Speed = config.MaxSpeed
	UpdateHuman(v, trk, Intent{Throttle: true, Steer: 1}, dt)
	// At max speed the multiplier is floored at MinTurnAuthority.
	want := config.SteerSpeed * 1.0 * config.MinTurnAuthority * dt
	assert.InDelta(t, want, v.Lateral, 1e-9)
}

func TestLateralClamped(t *testing.T) {
	trk := straightTrack()
	v := newCar()
	v.Speed = config.MaxSpeed
	v.Lateral = 1.95

	for i := 0; i < 30; i++ {
		UpdateHuman(v, trk, Intent{Throttle: true, Steer: 1}, dt)
		require.LessOrEqual(t, v.Lateral, config.LateralClamp)
	}
	assert.Equal(t, config.LateralClamp, v.Lateral)
}

func TestCentrifugalPullQuadratic(t *testing.T) {
	b := track.NewBuilder(func(string) float64 { return 300 })
	b.AddCurve(10, track.CurveHard, 0)
	trk := b.Build()

	// Position inside the hold phase where curvature is at full value.
	holdStart := 10

	slow := newCar()
	slow.Position = float64(holdStart+2) * config.SegmentLength
	slow.Speed = config.MaxSpeed / 4
	UpdateHuman(slow, trk, Intent{Throttle: true}, dt)

	fast := newCar()
	fast.Position = float64(holdStart+2) * config.SegmentLength
	fast.Speed = config.MaxSpeed
	UpdateHuman(fast, trk, Intent{Throttle: true}, dt)

	assert.Less(t, fast.Lateral, 0.0, "right curve pulls the car left")
	assert.Greater(t, math.Abs(fast.Lateral), 10*math.Abs(slow.Lateral),
		"pull is quadratic in the speed fraction")
}

func TestDecayShake(t *testing.T) {
	v := newCar()
	v.Shake = config.ShakeMagnitude
	for i := 0; i < 120; i++ {
		DecayShake(v, dt)
	}
	assert.Equal(t, 0.0, v.Shake, "shake decays fully and snaps to zero")
}
