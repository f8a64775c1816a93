package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/golangdaddy/slipstream/pkg/config"
	"github.com/golangdaddy/slipstream/pkg/race"
	"github.com/golangdaddy/slipstream/pkg/vehicle"
)

var face = text.NewGoXFace(bitmapfont.Face)

var pixel = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

var (
	panelColor  = color.RGBA{R: 20, G: 20, B: 30, A: 200}
	labelColor  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	valueColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	goColor     = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	numberColor = color.RGBA{R: 255, G: 220, B: 100, A: 255}
)

func drawTextAt(dst *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x/scale, y/scale)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
}

func textWidth(str string, scale float64) float64 {
	return text.Advance(str, face) * scale
}

func drawPanel(dst *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(panelColor)
	dst.DrawImage(pixel, op)
}

// FormatLapTime renders seconds as m:ss.mmm; a zero duration renders as a
// placeholder since no lap has completed yet.
func FormatLapTime(sec float64) string {
	if sec <= 0 {
		return "-:--.---"
	}
	mins := int(sec) / 60
	rem := sec - float64(mins)*60
	return fmt.Sprintf("%d:%06.3f", mins, rem)
}

// DrawHUD paints one viewport's readouts: speed, lap counter and lap
// times. x, y, w, h is the viewport rectangle on screen.
func DrawHUD(screen *ebiten.Image, x, y, w, h int, v *vehicle.Vehicle, m *race.Machine, now float64) {
	ox, oy := float64(x), float64(y)

	drawPanel(screen, ox+10, oy+10, 170, 92)

	kmh := math.Abs(v.Speed) / config.MaxSpeed * 320
	drawTextAt(screen, fmt.Sprintf("%3.0f", kmh), ox+20, oy+14, 3, speedColor(kmh))
	drawTextAt(screen, "KM/H", ox+110, oy+30, 1.5, labelColor)

	lap := v.Lap
	if lap > m.TotalLaps {
		lap = m.TotalLaps
	}
	drawTextAt(screen, fmt.Sprintf("LAP %d/%d", lap, m.TotalLaps), ox+20, oy+54, 1.5, valueColor)

	current := now - v.LapStart
	if m.Phase == race.Countdown {
		current = 0
	}
	if v.Finished {
		current = 0
	}
	drawTextAt(screen, "TIME "+FormatLapTime(current), ox+20, oy+72, 1, valueColor)
	drawTextAt(screen, "LAST "+FormatLapTime(v.LastLap), ox+20, oy+84, 1, labelColor)
	drawTextAt(screen, "BEST "+FormatLapTime(v.BestLap), ox+95, oy+84, 1, labelColor)
}

func speedColor(kmh float64) color.Color {
	switch {
	case kmh < 160:
		return color.RGBA{R: 100, G: 255, B: 100, A: 255}
	case kmh < 260:
		return color.RGBA{R: 255, G: 255, B: 100, A: 255}
	}
	return color.RGBA{R: 255, G: 100, B: 100, A: 255}
}

// DrawOverlay paints whole-screen race-phase chrome: the countdown digits,
// the GO flash, and the results panel with the restart hint.
func DrawOverlay(screen *ebiten.Image, w, h int, m *race.Machine, vehicles []*vehicle.Vehicle) {
	cx := float64(w) / 2

	switch m.Phase {
	case race.Countdown:
		n := int(math.Ceil(m.Countdown))
		if n < 1 {
			n = 1
		}
		s := fmt.Sprintf("%d", n)
		drawTextAt(screen, s, cx-textWidth(s, 8)/2, float64(h)/3, 8, numberColor)

	case race.Racing:
		// The timer keeps decrementing past zero; flash GO for the first
		// second of racing.
		if m.Countdown > -1 {
			drawTextAt(screen, "GO!", cx-textWidth("GO!", 8)/2, float64(h)/3, 8, goColor)
		}

	case race.Finished:
		pw, ph := 320.0, 80.0+float64(len(vehicles))*18
		px, py := cx-pw/2, float64(h)/2-ph/2
		drawPanel(screen, px, py, pw, ph)

		title := fmt.Sprintf("%s WINS", m.Winner)
		drawTextAt(screen, title, cx-textWidth(title, 2)/2, py+12, 2, numberColor)

		ty := py + 44
		for _, v := range vehicles {
			line := fmt.Sprintf("%-10s %s", v.Name, FormatLapTime(v.FinishTime))
			drawTextAt(screen, line, px+30, ty, 1.5, valueColor)
			ty += 18
		}

		hint := "PRESS ENTER TO RACE AGAIN"
		drawTextAt(screen, hint, cx-textWidth(hint, 1.5)/2, py+ph-22, 1.5, labelColor)
	}
}

// DrawLoading paints the asset-loading splash.
func DrawLoading(screen *ebiten.Image, w, h int) {
	s := "LOADING..."
	drawTextAt(screen, s, float64(w)/2-textWidth(s, 2)/2, float64(h)/2, 2, labelColor)
}
