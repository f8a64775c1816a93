package render

import "math"

// Vec3 is a point in world space: x lateral, y up, z along the track.
type Vec3 struct {
	X, Y, Z float64
}

// Camera is the pose used for the perspective divide. Depth is the
// projection-plane distance derived from the field of view.
type Camera struct {
	X, Y, Z float64
	Depth   float64
}

// ScreenPoint is a projected world point. Scale == 0 is the sentinel for
// "behind the camera, do not draw"; every painter checks it before
// touching the other fields.
type ScreenPoint struct {
	X, Y  float64
	HalfW float64 // projected road half-width at this depth
	Scale float64
}

// Project transforms a world point to screen space for a viewport of
// width x height pixels. Pure: results are per-frame outputs, never cached
// on the point.
func Project(p Vec3, cam Camera, width, height int, roadHalfWidth float64) ScreenPoint {
	cx := p.X - cam.X
	cy := p.Y - cam.Y
	cz := p.Z - cam.Z
	if cz <= 0 {
		return ScreenPoint{}
	}
	scale := cam.Depth / cz
	w2 := float64(width) / 2
	h2 := float64(height) / 2
	return ScreenPoint{
		X:     math.Round(w2 + scale*cx*w2),
		Y:     math.Round(h2 - scale*cy*h2),
		HalfW: math.Round(scale * roadHalfWidth * w2),
		Scale: scale,
	}
}
