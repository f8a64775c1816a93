package vehicle

import "image/color"

// Kind tags the variant supplying driving intent each frame. Both kinds
// share the same physics-state shape.
type Kind int

const (
	Human Kind = iota
	AI
)

// Vehicle is the per-entity simulation state. Owned and mutated only by its
// own dynamics/collision update; the renderer reads, never writes.
//
// Position is a continuous track position wrapped into [0, trackLength).
// Lateral is in road half-widths: 0 = centerline, ±1 = road edge, clamped
// to [-2, 2]. Timestamps are seconds on the game clock.
type Vehicle struct {
	Name      string
	Color     color.RGBA
	SpriteSet string // asset id prefix, e.g. "car-blue"
	Kind      Kind

	Position float64
	Speed    float64
	Lateral  float64

	Lap      int // current lap number, starting at 1
	LapStart float64
	LastLap  float64 // 0 = not yet set
	BestLap  float64 // 0 = not yet set

	Shake float64 // decaying screen-shake magnitude, world units

	Finished   bool
	FinishTime float64

	Steer float64 // last applied steering, -1..1; feeds sprite angle selection

	// AI only.
	TargetLane float64

	startLateral float64
}

// New returns a vehicle at its grid slot. lateral is remembered so Reset
// can restore it.
func New(name string, kind Kind, spriteSet string, clr color.RGBA, lateral float64) *Vehicle {
	return &Vehicle{
		Name:         name,
		Kind:         kind,
		SpriteSet:    spriteSet,
		Color:        clr,
		Lap:          1,
		Lateral:      lateral,
		TargetLane:   lateral,
		startLateral: lateral,
	}
}

// Reset reinitializes every mutable field to its documented initial value.
func (v *Vehicle) Reset() {
	v.Position = 0
	v.Speed = 0
	v.Lateral = v.startLateral
	v.Lap = 1
	v.LapStart = 0
	v.LastLap = 0
	v.BestLap = 0
	v.Shake = 0
	v.Finished = false
	v.FinishTime = 0
	v.Steer = 0
	v.TargetLane = v.startLateral
}
