package physics

import (
	"math"

	"github.com/golangdaddy/slipstream/pkg/config"
	"github.com/golangdaddy/slipstream/pkg/track"
	"github.com/golangdaddy/slipstream/pkg/vehicle"
)

// UpdateAI integrates one physics step for the computer-driven rival. The
// state shape is identical to the human vehicle; only the intent differs:
// the lane is approached exponentially and the throttle follows curvature.
func UpdateAI(v *vehicle.Vehicle, trk *track.Track, dt float64) {
	seg := trk.AtPosition(v.Position)

	// Exponential approach to the assigned lane. The per-update delta,
	// scaled to -1..1, doubles as the steering intent for sprite angles.
	prev := v.Lateral
	v.Lateral += (v.TargetLane - v.Lateral) * config.AILaneGain
	v.Steer = clamp((v.Lateral-prev)*config.AISteerScale, -1, 1)

	// Brake into sharp curvature, proportionally to how sharp it is;
	// otherwise accelerate at a fixed rate.
	if math.Abs(seg.Curve) > config.AICurveThreshold {
		braked := v.Speed - math.Abs(seg.Curve)*config.AICornerDecel*dt
		v.Speed = math.Max(braked, math.Min(v.Speed, config.AIMinSpeed))
	} else {
		v.Speed += config.AIAccel * dt
	}

	// Lighter centrifugal term than the human model.
	sf := v.Speed / config.MaxSpeed
	v.Lateral -= seg.Curve * sf * sf * config.AICentrifugal * dt

	v.Lateral = clamp(v.Lateral, -config.LateralClamp, config.LateralClamp)
	v.Speed = clamp(v.Speed, 0, config.AIMaxSpeed)

	v.Position += v.Speed * dt
	if v.Position < 0 {
		v.Position += trk.Length
	}
}
