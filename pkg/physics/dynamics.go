package physics

import (
	"math"

	"github.com/golangdaddy/slipstream/pkg/config"
	"github.com/golangdaddy/slipstream/pkg/track"
	"github.com/golangdaddy/slipstream/pkg/vehicle"
)

// Intent is one frame of driving input for a human vehicle.
type Intent struct {
	Throttle bool
	Brake    bool
	Steer    int // -1 left, 0 straight, +1 right
}

// UpdateHuman integrates one physics step for a human-controlled vehicle.
// Lateral offset and speed are clamped before position integration; with
// dt already clamped by the frame loop this keeps every field in range.
func UpdateHuman(v *vehicle.Vehicle, trk *track.Track, in Intent, dt float64) {
	seg := trk.AtPosition(v.Position)
	offRoad := math.Abs(v.Lateral) > 1

	// Longitudinal.
	switch {
	case in.Throttle:
		a := config.Accel
		if offRoad {
			a *= config.OffRoadAccelFactor
		}
		v.Speed += a * dt
	case in.Brake:
		if v.Speed > 0 {
			v.Speed -= config.BrakeRate * dt
		} else {
			// Holding brake at a standstill backs the car up.
			v.Speed -= config.ReverseAccelFactor * config.Accel * dt
		}
	default:
		v.Speed = toward(v.Speed, 0, config.NaturalDecel*dt)
	}

	// Off the road the tyres cap attainable speed rather than applying a
	// uniform slowdown: hard scrub above the limit, light drag below it.
	if offRoad {
		if math.Abs(v.Speed) > config.OffRoadLimit {
			v.Speed = toward(v.Speed, 0, config.OffRoadDecel*dt)
		} else {
			v.Speed = toward(v.Speed, 0, config.OffRoadDrag*dt)
		}
	}

	// Lateral. Turning authority degrades linearly above the limit speed,
	// floored at MinTurnAuthority.
	steer := float64(in.Steer)
	turnMult := 1.0
	if v.Speed > config.TurnLimitSpeed {
		turnMult = math.Max(config.MinTurnAuthority,
			1-(v.Speed-config.TurnLimitSpeed)/(config.MaxSpeed-config.TurnLimitSpeed))
	}
	v.Lateral += steer * config.SteerSpeed * (v.Speed / config.MaxSpeed) * turnMult * dt
	v.Steer = steer

	// Centrifugal pull, quadratic in the speed fraction: negligible when
	// crawling, dominant flat out on a sharp curve.
	sf := v.Speed / config.MaxSpeed
	v.Lateral -= seg.Curve * sf * sf * config.Centrifugal * dt

	v.Lateral = clamp(v.Lateral, -config.LateralClamp, config.LateralClamp)
	v.Speed = clamp(v.Speed, config.MaxReverse, config.MaxSpeed)

	v.Position += v.Speed * dt
	if v.Position < 0 {
		v.Position += trk.Length
	}
}

// DecayShake advances the vehicle's screen-shake decay.
func DecayShake(v *vehicle.Vehicle, dt float64) {
	v.Shake *= math.Exp(-config.ShakeDamping * dt)
	if v.Shake < 0.5 {
		v.Shake = 0
	}
}

// toward moves x by at most step in the direction of target, without
// overshooting.
func toward(x, target, step float64) float64 {
	if x > target {
		return math.Max(target, x-step)
	}
	return math.Min(target, x+step)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
