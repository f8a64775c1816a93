package render

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// Backdrop is a generated horizon strip: sky gradient, sun and two ridges
// of distant hills. Built once per viewport size and blitted behind the
// road every frame; the paint pass covers the lower half.
type Backdrop struct {
	img *ebiten.Image
}

var (
	skyTop    = color.RGBA{R: 40, G: 90, B: 180, A: 255}
	skyBottom = color.RGBA{R: 130, G: 190, B: 235, A: 255}
	sunColor  = color.RGBA{R: 255, G: 240, B: 180, A: 255}
	farRidge  = color.RGBA{R: 70, G: 110, B: 80, A: 255}
	nearRidge = color.RGBA{R: 50, G: 95, B: 60, A: 255}
)

// NewBackdrop generates the strip for a w by h viewport. The seed fixes
// the ridge shapes so both split-view halves match.
func NewBackdrop(w, h int, seed int64) *Backdrop {
	img := ebiten.NewImage(w, h)
	rng := rand.New(rand.NewSource(seed))

	horizon := h / 2

	// Vertical sky gradient down to the horizon.
	for y := 0; y < horizon; y++ {
		t := float64(y) / float64(horizon)
		c := color.RGBA{
			R: lerp8(skyTop.R, skyBottom.R, t),
			G: lerp8(skyTop.G, skyBottom.G, t),
			B: lerp8(skyTop.B, skyBottom.B, t),
			A: 255,
		}
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}

	drawSun(img, w*3/4, horizon*2/5, horizon/6)

	// Two ridge lines of overlapping hills, far behind near.
	drawRidge(img, w, horizon, horizon/5, farRidge, rng)
	drawRidge(img, w, horizon, horizon/9, nearRidge, rng)

	return &Backdrop{img: img}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func drawSun(img *ebiten.Image, cx, cy, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				img.Set(cx+dx, cy+dy, sunColor)
			}
		}
	}
}

// drawRidge fills from a wandering sine-plus-noise ridge line down to the
// horizon.
func drawRidge(img *ebiten.Image, w, horizon, amp int, c color.RGBA, rng *rand.Rand) {
	phase := rng.Float64() * 2 * math.Pi
	freq := 2.5 + rng.Float64()*2

	prev := 0.0
	for x := 0; x < w; x++ {
		t := float64(x) / float64(w)
		wave := math.Sin(t*freq*2*math.Pi + phase)
		// Low-pass the noise so the ridge stays smooth.
		prev = prev*0.9 + (rng.Float64()-0.5)*0.1
		top := horizon - int(float64(amp)*(0.6+0.4*wave)) - int(prev*float64(amp))
		if top < 0 {
			top = 0
		}
		for y := top; y < horizon; y++ {
			img.Set(x, y, c)
		}
	}
}

// Draw blits the strip at the viewport origin.
func (b *Backdrop) Draw(dst *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(b.img, op)
}
