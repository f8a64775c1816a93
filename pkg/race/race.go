package race

import (
	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/slipstream/pkg/config"
	"github.com/golangdaddy/slipstream/pkg/vehicle"
)

// Phase is the race progression state.
type Phase int

const (
	Countdown Phase = iota
	Racing
	Finished
)

func (p Phase) String() string {
	switch p {
	case Countdown:
		return "countdown"
	case Racing:
		return "racing"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Machine drives countdown/racing/finished progression, lap counting and
// winner determination for a set of vehicles. Timestamps are seconds on
// the game clock supplied by the frame loop.
type Machine struct {
	Phase     Phase
	Countdown float64 // remaining; keeps counting below zero for the GO display
	StartTime float64
	TotalLaps int
	Winner    string // empty until the first vehicle finishes

	countdownInit float64
}

// New returns a machine in Countdown with the given initial timer.
func New(countdown float64, laps int) *Machine {
	if laps < 1 {
		laps = config.DefaultLaps
	}
	return &Machine{
		Phase:         Countdown,
		Countdown:     countdown,
		TotalLaps:     laps,
		countdownInit: countdown,
	}
}

// MotionFrozen reports whether vehicle physics updates are skipped this
// frame. Motion runs only while Racing.
func (m *Machine) MotionFrozen() bool {
	return m.Phase != Racing
}

// Tick advances the countdown timer and performs the Countdown→Racing
// transition exactly once when the timer crosses zero, capturing the race
// start and every vehicle's lap-start timestamp. The timer keeps
// decrementing afterwards so the overlay can keep counting below zero.
func (m *Machine) Tick(now, dt float64, vehicles []*vehicle.Vehicle) {
	m.Countdown -= dt
	if m.Phase == Countdown && m.Countdown <= 0 {
		m.Phase = Racing
		m.StartTime = now
		for _, v := range vehicles {
			v.LapStart = now
		}
		log.Info().Float64("start", now).Msg("race started")
	}
}

// HandleLapCrossing processes a vehicle whose integrated position may have
// crossed the track-length boundary. Call after physics integration, while
// Racing. trackLength is the total loop length.
func (m *Machine) HandleLapCrossing(v *vehicle.Vehicle, now, trackLength float64) {
	if v.Position < trackLength {
		return
	}

	if v.Lap >= m.TotalLaps {
		// Final lap done: record the finish exactly once and park the car.
		// The position still wraps so the parked car renders from a valid
		// camera position for the rest of the session.
		if !v.Finished {
			v.Finished = true
			v.FinishTime = now - m.StartTime
			v.Speed = 0
			v.Position -= trackLength
			if m.Winner == "" {
				m.Winner = v.Name
				log.Info().Str("vehicle", v.Name).Float64("time", v.FinishTime).Msg("winner")
			} else {
				log.Info().Str("vehicle", v.Name).Float64("time", v.FinishTime).Msg("finished")
			}
		}
		return
	}

	v.Position -= trackLength
	v.Lap++
	v.LastLap = now - v.LapStart
	if v.BestLap == 0 || v.LastLap < v.BestLap {
		v.BestLap = v.LastLap
	}
	v.LapStart = now
}

// CheckFinished transitions to Finished once every vehicle has a recorded
// finish time. With a single vehicle this fires on its own finish.
func (m *Machine) CheckFinished(vehicles []*vehicle.Vehicle) {
	if m.Phase != Racing {
		return
	}
	for _, v := range vehicles {
		if !v.Finished {
			return
		}
	}
	m.Phase = Finished
}

// Reset returns the machine to Countdown with the original countdown
// duration and reinitializes every vehicle.
func (m *Machine) Reset(vehicles []*vehicle.Vehicle) {
	m.Phase = Countdown
	m.Countdown = m.countdownInit
	m.StartTime = 0
	m.Winner = ""
	for _, v := range vehicles {
		v.Reset()
	}
}
