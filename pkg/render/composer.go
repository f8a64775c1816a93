package render

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/slipstream/pkg/assets"
	"github.com/golangdaddy/slipstream/pkg/config"
	"github.com/golangdaddy/slipstream/pkg/track"
	"github.com/golangdaddy/slipstream/pkg/vehicle"
)

// Sprite-angle score weights and thresholds. The discrete bands are the
// contract; the exact constants are tuned by eye.
const (
	anglePosWeight   = 0.5
	angleCurveWeight = 0.2
	angleSteerWeight = 0.6
	angleNear        = 0.25
	angleFar         = 1.0
)

// CarAngleFor picks one of the five dynamic-sprite variants from a
// composite score: relative lateral position, local curvature, and the
// vehicle's own steering intent. Sign selects left vs right, magnitude
// selects near vs far.
func CarAngleFor(relLateral, curve, steer float64) assets.CarAngle {
	score := relLateral*anglePosWeight + curve*angleCurveWeight + steer*angleSteerWeight
	switch {
	case score <= -angleFar:
		return assets.AngleLeftFar
	case score <= -angleNear:
		return assets.AngleLeft
	case score >= angleFar:
		return assets.AngleRightFar
	case score >= angleNear:
		return assets.AngleRight
	}
	return assets.AngleStraight
}

// projSeg is the per-frame projection scratch for one segment in the draw
// window. Recomputed every frame for every viewport so nothing stale leaks
// across frames or viewports.
type projSeg struct {
	seg    *track.Segment
	p1, p2 ScreenPoint
}

// Composer renders one viewport: a projection pass over the draw window
// followed by a strict far-to-near paint pass. It reads vehicle and track
// state and never mutates gameplay state.
type Composer struct {
	trk *track.Track
	lib *assets.Library

	// Viewport rectangle on the screen.
	X, Y, W, H int

	backdrop *Backdrop
	scratch  []projSeg
}

// NewComposer builds a composer for a viewport. The track must have at
// least one segment.
func NewComposer(trk *track.Track, lib *assets.Library, x, y, w, h int) *Composer {
	return &Composer{
		trk:      trk,
		lib:      lib,
		X:        x, Y: y, W: w, H: h,
		backdrop: NewBackdrop(w, h, 1),
		scratch:  make([]projSeg, 0, config.LookBack+config.DrawDistance),
	}
}

// cameraFor derives the camera pose from the viewport's own vehicle:
// height above the interpolated ground plus decaying collision shake.
func (c *Composer) cameraFor(own *vehicle.Vehicle, now float64) (camY, camZ float64) {
	camY = c.trk.ElevationAt(own.Position) + config.CameraHeight
	if own.Shake > 0 {
		camY += own.Shake * math.Sin(now*config.ShakeFrequency)
	}
	return camY, own.Position
}

// projectWindow runs the projection pass: a running lateral offset x and
// its rate dx bend each locally-straight segment by the accumulated
// curvature of everything nearer. Z offsets are unwrapped when the index
// range crosses the wrap boundary.
func (c *Composer) projectWindow(own *vehicle.Vehicle, camY, camZ float64) {
	base := c.trk.AtPosition(own.Position)
	basePercent := c.trk.FracInSegment(own.Position)
	n := len(c.trk.Segments)

	x := 0.0
	dx := -(base.Curve * basePercent)

	c.scratch = c.scratch[:0]
	for i := -config.LookBack; i < config.DrawDistance; i++ {
		idx := base.Index + i
		seg := &c.trk.Segments[((idx%n)+n)%n]
		zoff := math.Floor(float64(idx)/float64(n)) * c.trk.Length

		// Curvature accumulation starts at the base segment; the
		// look-back slice sits at or behind the camera where bending
		// is invisible.
		xAcc, dxAcc := 0.0, 0.0
		if i >= 0 {
			xAcc, dxAcc = x, dx
		}

		cam := Camera{
			X:     own.Lateral*config.RoadHalfWidth - xAcc,
			Y:     camY,
			Z:     camZ,
			Depth: config.CameraDepth,
		}
		p1 := Project(Vec3{Y: seg.P1.Y, Z: seg.P1.Z + zoff}, cam, c.W, c.H, config.RoadHalfWidth)
		cam.X -= dxAcc
		p2 := Project(Vec3{Y: seg.P2.Y, Z: seg.P2.Z + zoff}, cam, c.W, c.H, config.RoadHalfWidth)

		c.scratch = append(c.scratch, projSeg{seg: seg, p1: p1, p2: p2})

		if i >= 0 {
			x += dx
			dx += seg.Curve
		}
	}
}

// Render draws the full scene for this viewport's vehicle.
func (c *Composer) Render(screen *ebiten.Image, own *vehicle.Vehicle, all []*vehicle.Vehicle, now float64) {
	camY, camZ := c.cameraFor(own, now)
	c.projectWindow(own, camY, camZ)

	frame := screen.SubImage(image.Rect(c.X, c.Y, c.X+c.W, c.Y+c.H)).(*ebiten.Image)
	ox, oy := float64(c.X), float64(c.Y)
	w, h := float64(c.W), float64(c.H)

	// Horizon strip over distant ground. Segment bands paint over this.
	c.backdrop.Draw(frame, ox, oy)
	fillRect(frame, ox, oy+h/2, w, h/2, lightBand.Grass)

	// Paint pass: strictly farthest to nearest; draw order is the only
	// occlusion mechanism.
	for i := len(c.scratch) - 1; i >= 0; i-- {
		s := c.scratch[i]
		if s.p1.Scale <= 0 || s.p2.Scale <= 0 {
			continue // behind the camera
		}
		if s.p2.Y >= s.p1.Y {
			continue // degenerate: far edge not above near edge
		}

		sch := bandScheme(s.seg.Band)

		fillRect(frame, ox, oy+s.p2.Y, w, s.p1.Y-s.p2.Y, sch.Grass)

		trapezoid(frame, ox+s.p1.X, oy+s.p1.Y, s.p1.HalfW, ox+s.p2.X, oy+s.p2.Y, s.p2.HalfW, sch.Road)

		r1 := s.p1.HalfW * config.RumbleRatio
		r2 := s.p2.HalfW * config.RumbleRatio
		trapezoid(frame, ox+s.p1.X-s.p1.HalfW-r1/2, oy+s.p1.Y, r1/2,
			ox+s.p2.X-s.p2.HalfW-r2/2, oy+s.p2.Y, r2/2, sch.Rumble)
		trapezoid(frame, ox+s.p1.X+s.p1.HalfW+r1/2, oy+s.p1.Y, r1/2,
			ox+s.p2.X+s.p2.HalfW+r2/2, oy+s.p2.Y, r2/2, sch.Rumble)

		if sch.Lane {
			trapezoid(frame, ox+s.p1.X, oy+s.p1.Y, s.p1.HalfW*config.LaneRatio/2,
				ox+s.p2.X, oy+s.p2.Y, s.p2.HalfW*config.LaneRatio/2, laneColor)
		}

		for _, d := range s.seg.Decor {
			anchorX := ox + s.p1.X + d.Offset*s.p1.HalfW
			c.drawSprite(frame, c.lib.Sprite(d.Asset), d.Mirror, anchorX, oy+s.p1.Y, s.p1.Scale)
		}

		for _, v := range all {
			if v == own || c.trk.AtPosition(v.Position).Index != s.seg.Index {
				continue
			}
			angle := CarAngleFor(v.Lateral-own.Lateral, s.seg.Curve, v.Steer)
			spr, mirror := c.lib.CarSprite(v.SpriteSet, angle)
			anchorX := ox + s.p1.X + v.Lateral*s.p1.HalfW
			c.drawSprite(frame, spr, mirror, anchorX, oy+s.p1.Y, s.p1.Scale)
		}
	}

	c.drawOwn(frame, own)
}

// drawOwn paints the viewport's own vehicle last, fixed near the bottom
// center and sized as if a constant nose offset ahead of the camera, so it
// never recedes while the camera tracks it.
func (c *Composer) drawOwn(frame *ebiten.Image, own *vehicle.Vehicle) {
	base := c.trk.AtPosition(own.Position)
	speedFrac := own.Speed / config.MaxSpeed
	angle := CarAngleFor(0, base.Curve*speedFrac, own.Steer)
	spr, mirror := c.lib.CarSprite(own.SpriteSet, angle)

	scale := config.CameraDepth / config.NoseOffset
	x := float64(c.X) + float64(c.W)/2
	y := float64(c.Y) + float64(c.H) - 10
	c.drawSprite(frame, spr, mirror, x, y, scale)
}

// drawSprite paints a bottom-anchored sprite centered on x, sized by the
// projected scale at its segment's near edge. A nil sprite or image is
// skipped silently; missing imagery degrades to "not drawn".
func (c *Composer) drawSprite(dst *ebiten.Image, spr *assets.Sprite, mirror bool, x, y, scale float64) {
	if spr == nil || spr.Image == nil || scale <= 0 {
		return
	}
	iw := spr.Image.Bounds().Dx()
	ih := spr.Image.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}
	destW := spr.WorldWidth * scale * float64(c.W) / 2
	destH := destW * float64(ih) / float64(iw)

	op := &ebiten.DrawImageOptions{}
	sx := destW / float64(iw)
	sy := destH / float64(ih)
	if mirror {
		op.GeoM.Scale(-sx, sy)
		op.GeoM.Translate(x+destW/2, y-destH)
	} else {
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(x-destW/2, y-destH)
	}
	dst.DrawImage(spr.Image, op)
}
