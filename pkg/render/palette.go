package render

import (
	"image/color"

	"github.com/golangdaddy/slipstream/pkg/track"
)

// scheme is the color band of one segment run.
type scheme struct {
	Road   color.RGBA
	Grass  color.RGBA
	Rumble color.RGBA
	Lane   bool // lane markers drawn only on the light band
}

var (
	laneColor = color.RGBA{204, 204, 204, 255}
	lightBand = scheme{
		Road:   color.RGBA{107, 107, 107, 255},
		Grass:  color.RGBA{16, 170, 16, 255},
		Rumble: color.RGBA{85, 85, 85, 255},
		Lane:   true,
	}
	darkBand = scheme{
		Road:   color.RGBA{105, 105, 105, 255},
		Grass:  color.RGBA{0, 154, 0, 255},
		Rumble: color.RGBA{187, 187, 187, 255},
	}
	startBand = scheme{
		Road:   color.RGBA{255, 255, 255, 255},
		Grass:  color.RGBA{16, 170, 16, 255},
		Rumble: color.RGBA{255, 255, 255, 255},
	}
)

func bandScheme(b track.Band) scheme {
	switch b {
	case track.BandDark:
		return darkBand
	case track.BandStart:
		return startBand
	}
	return lightBand
}
