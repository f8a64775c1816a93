package physics

import (
	"math"

	"github.com/golangdaddy/slipstream/pkg/config"
	"github.com/golangdaddy/slipstream/pkg/track"
	"github.com/golangdaddy/slipstream/pkg/vehicle"
)

// CheckCollision tests a vehicle, after integration, against the
// decorations attached to the segment under its visual position (logical
// position plus the nose offset, wrapped). A hit requires the visual
// position to sit within the near-edge threshold of the segment, lateral
// overlap within the decoration's half-width plus slack, and forward
// motion. On a hit the vehicle stops dead, screen shake is armed, and the
// cue fires. Because a stopped vehicle no longer moves forward, repeated
// checks in the same or later frames are idempotent.
func CheckCollision(v *vehicle.Vehicle, trk *track.Track, onHit func()) bool {
	if v.Speed <= 0 {
		return false
	}

	visual := trk.Wrap(v.Position + config.NoseOffset)
	if trk.FracInSegment(visual) >= config.HitFraction {
		return false
	}

	seg := trk.AtPosition(visual)
	for _, d := range seg.Decor {
		if math.Abs(v.Lateral-d.Offset) < d.HalfWidth+config.HitSlack {
			v.Speed = 0
			v.Shake = config.ShakeMagnitude
			if onHit != nil {
				onHit()
			}
			return true
		}
	}
	return false
}
