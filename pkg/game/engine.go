package game

import (
	"math"

	"github.com/golangdaddy/slipstream/pkg/audio"
	"github.com/golangdaddy/slipstream/pkg/config"
	"github.com/golangdaddy/slipstream/pkg/physics"
	"github.com/golangdaddy/slipstream/pkg/race"
	"github.com/golangdaddy/slipstream/pkg/track"
	"github.com/golangdaddy/slipstream/pkg/vehicle"
)

// Entrant couples a vehicle with its intent source. Dispatch keys off
// Vehicle.Kind: humans consume the Input's intent (nil means no input),
// AI vehicles drive themselves and ignore Input.
type Entrant struct {
	Vehicle *vehicle.Vehicle
	Input   IntentSource
}

// Engine runs the per-frame simulation: intents, race progression, vehicle
// dynamics, collisions and lap accounting. It knows nothing about drawing;
// the ebiten shell calls Step once per Update and renders from the same
// state afterwards.
type Engine struct {
	trk      *track.Track
	machine  *race.Machine
	snd      *audio.System
	entrants []Entrant
	vehicles []*vehicle.Vehicle
	intents  []physics.Intent
	clock    float64
}

func NewEngine(trk *track.Track, machine *race.Machine, snd *audio.System, entrants []Entrant) *Engine {
	e := &Engine{
		trk:      trk,
		machine:  machine,
		snd:      snd,
		entrants: entrants,
		intents:  make([]physics.Intent, len(entrants)),
	}
	for _, en := range entrants {
		e.vehicles = append(e.vehicles, en.Vehicle)
	}
	return e
}

func (e *Engine) Vehicles() []*vehicle.Vehicle { return e.vehicles }
func (e *Engine) Machine() *race.Machine       { return e.machine }

// Clock is the accumulated game time in seconds. The HUD reads it for the
// running lap timer.
func (e *Engine) Clock() float64 { return e.clock }

// Step advances one frame. dt is wall-clock seconds since the previous
// frame, clamped so a stalled frame cannot tunnel a vehicle through an
// obstacle or a lap boundary. confirm restarts the race once finished.
func (e *Engine) Step(dt float64, confirm bool) {
	if dt > config.MaxFrameDelta {
		dt = config.MaxFrameDelta
	}
	e.clock += dt
	now := e.clock

	for i, en := range e.entrants {
		if en.Input != nil {
			e.intents[i] = en.Input.Intent()
		} else {
			e.intents[i] = physics.Intent{}
		}
	}

	// Engine tone follows the loudest human vehicle.
	if e.machine.Phase == race.Racing {
		load := 0.0
		for _, en := range e.entrants {
			if en.Vehicle.Kind != vehicle.Human {
				continue
			}
			if l := math.Abs(en.Vehicle.Speed) / config.MaxSpeed; l > load {
				load = l
			}
		}
		e.snd.SetLoad(load)
	} else {
		e.snd.Idle()
	}

	e.machine.Tick(now, dt, e.vehicles)

	if !e.machine.MotionFrozen() {
		for i, en := range e.entrants {
			v := en.Vehicle
			if v.Finished {
				continue
			}
			if v.Kind == vehicle.Human {
				physics.UpdateHuman(v, e.trk, e.intents[i], dt)
			} else {
				physics.UpdateAI(v, e.trk, dt)
			}
			physics.CheckCollision(v, e.trk, e.snd.Crash)
			e.machine.HandleLapCrossing(v, now, e.trk.Length)
		}
		e.machine.CheckFinished(e.vehicles)
	}

	// Shake is cosmetic and decays even while frozen.
	for _, v := range e.vehicles {
		physics.DecayShake(v, dt)
	}

	if e.machine.Phase == race.Finished && confirm {
		e.machine.Reset(e.vehicles)
	}
}
