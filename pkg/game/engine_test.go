package game

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/slipstream/pkg/config"
	"github.com/golangdaddy/slipstream/pkg/physics"
	"github.com/golangdaddy/slipstream/pkg/race"
	"github.com/golangdaddy/slipstream/pkg/track"
	"github.com/golangdaddy/slipstream/pkg/vehicle"
)

// scripted replaces keyboard polling in tests.
type scripted struct {
	in physics.Intent
}

func (s *scripted) Intent() physics.Intent { return s.in }

func shortTrack() *track.Track {
	b := track.NewBuilder(func(string) float64 { return 300 })
	b.AddStraight(track.LengthShort)
	return b.Build()
}

func newEngine(countdown float64, laps int, entrants []Entrant) *Engine {
	return NewEngine(shortTrack(), race.New(countdown, laps), nil, entrants)
}

func human(name string, in *scripted) Entrant {
	v := vehicle.New(name, vehicle.Human, "car-blue", color.RGBA{A: 255}, -0.5)
	return Entrant{Vehicle: v, Input: in}
}

func TestMotionFrozenDuringCountdown(t *testing.T) {
	driver := &scripted{in: physics.Intent{Throttle: true}}
	e := newEngine(1.0, 3, []Entrant{human("p1", driver)})

	for i := 0; i < 30; i++ { // half a second, still counting down
		e.Step(1.0/60, false)
	}

	v := e.Vehicles()[0]
	assert.Equal(t, race.Countdown, e.Machine().Phase)
	assert.Zero(t, v.Position)
	assert.Zero(t, v.Speed)
}

func TestCountdownReleasesIntoRacing(t *testing.T) {
	driver := &scripted{in: physics.Intent{Throttle: true}}
	e := newEngine(0.5, 3, []Entrant{human("p1", driver)})

	for i := 0; i < 60; i++ {
		e.Step(1.0/60, false)
	}

	v := e.Vehicles()[0]
	assert.Equal(t, race.Racing, e.Machine().Phase)
	assert.Greater(t, v.Speed, 0.0)
	assert.Greater(t, v.Position, 0.0)
}

func TestFrameDeltaClamped(t *testing.T) {
	e := newEngine(10, 3, []Entrant{human("p1", &scripted{})})

	before := e.Clock()
	e.Step(5.0, false) // stalled frame
	assert.InDelta(t, before+config.MaxFrameDelta, e.Clock(), 1e-9)
}

func TestSoloRaceRunsToFinish(t *testing.T) {
	driver := &scripted{in: physics.Intent{Throttle: true}}
	e := newEngine(0.1, 1, []Entrant{human("p1", driver)})

	for i := 0; i < 60*30 && e.Machine().Phase != race.Finished; i++ {
		e.Step(1.0/60, false)
	}

	require.Equal(t, race.Finished, e.Machine().Phase)
	v := e.Vehicles()[0]
	assert.True(t, v.Finished)
	assert.Greater(t, v.FinishTime, 0.0)
	assert.Equal(t, "p1", e.Machine().Winner)
	assert.Zero(t, v.Speed)
}

func TestAIRivalDrivesItself(t *testing.T) {
	driver := &scripted{}
	rival := vehicle.New("rival", vehicle.AI, "car-red", color.RGBA{A: 255}, 0.5)
	rival.TargetLane = 0.4
	e := newEngine(0.1, 3, []Entrant{
		human("p1", driver),
		{Vehicle: rival},
	})

	for i := 0; i < 120; i++ {
		e.Step(1.0/60, false)
	}

	assert.Greater(t, rival.Speed, 0.0)
	assert.Greater(t, rival.Position, 0.0)
}

func TestDispatchFollowsVehicleKind(t *testing.T) {
	// A human with no input source coasts at the start line; an AI with a
	// (spurious) input source still drives itself. The vehicle's kind
	// decides, not the presence of an input.
	idle := vehicle.New("idle", vehicle.Human, "car-blue", color.RGBA{A: 255}, -0.5)
	rogue := vehicle.New("rogue", vehicle.AI, "car-red", color.RGBA{A: 255}, 0.5)
	e := newEngine(0.1, 3, []Entrant{
		{Vehicle: idle},
		{Vehicle: rogue, Input: &scripted{in: physics.Intent{Brake: true}}},
	})

	for i := 0; i < 120; i++ {
		e.Step(1.0/60, false)
	}

	require.Equal(t, race.Racing, e.Machine().Phase)
	assert.Zero(t, idle.Speed)
	assert.Zero(t, idle.Position)
	assert.Greater(t, rogue.Speed, 0.0, "AI ignores the brake intent")
	assert.Greater(t, rogue.Position, 0.0)
}

func TestConfirmRestartsAfterFinish(t *testing.T) {
	driver := &scripted{in: physics.Intent{Throttle: true}}
	e := newEngine(0.1, 1, []Entrant{human("p1", driver)})

	for i := 0; i < 60*30 && e.Machine().Phase != race.Finished; i++ {
		e.Step(1.0/60, false)
	}
	require.Equal(t, race.Finished, e.Machine().Phase)

	// Confirm is ignored until the race is over, then restarts it.
	e.Step(1.0/60, true)

	v := e.Vehicles()[0]
	assert.Equal(t, race.Countdown, e.Machine().Phase)
	assert.Equal(t, 1, v.Lap)
	assert.False(t, v.Finished)
	assert.Zero(t, v.Position)
	assert.Empty(t, e.Machine().Winner)
}
