package assets

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog/log"
)

// CarAngle selects one of the five dynamic-sprite variants for a vehicle.
type CarAngle int

const (
	AngleStraight CarAngle = iota
	AngleLeft
	AngleLeftFar
	AngleRight
	AngleRightFar
)

func (a CarAngle) suffix() string {
	switch a {
	case AngleLeft:
		return "-left"
	case AngleLeftFar:
		return "-left-far"
	case AngleRight:
		return "-right"
	case AngleRightFar:
		return "-right-far"
	}
	return ""
}

func (a CarAngle) opposite() CarAngle {
	switch a {
	case AngleLeft:
		return AngleRight
	case AngleLeftFar:
		return AngleRightFar
	case AngleRight:
		return AngleLeft
	case AngleRightFar:
		return AngleLeftFar
	}
	return AngleStraight
}

// Sprite is a pre-cropped, background-keyed image plus its declared world
// width. Image may be nil when the file failed to load; a nil image means
// "not drawn", never a halted loop.
type Sprite struct {
	Image      *ebiten.Image
	WorldWidth float64
}

// worldWidths declares the world-space width of every known asset id.
// Collision geometry and side-object placement read these, so they are
// defined even when the imagery is missing.
var worldWidths = map[string]float64{
	"tree":      1400,
	"palm":      1000,
	"boulder":   600,
	"billboard": 1600,
	"sign":      600,
}

const carWorldWidth = 500

// DefaultWorldWidth covers asset ids without a declared width.
const DefaultWorldWidth = 500

// WorldWidth reports the declared world width for an asset id. Pure; does
// not require the imagery to have loaded.
func WorldWidth(id string) float64 {
	if w, ok := worldWidths[id]; ok {
		return w
	}
	return DefaultWorldWidth
}

// Library maps logical asset ids to sprites. Built once at startup.
type Library struct {
	sprites map[string]*Sprite
}

// carSets lists the sprite-set prefixes loaded for vehicles.
var carSets = []string{"car-blue", "car-red"}

// Load reads every known asset from dir. Failures degrade to absent
// imagery and a warning; loading never fails the startup.
func Load(dir string) *Library {
	l := &Library{sprites: make(map[string]*Sprite)}

	for id := range worldWidths {
		l.load(dir, id, WorldWidth(id))
	}
	for _, set := range carSets {
		for _, a := range []CarAngle{AngleStraight, AngleLeft, AngleLeftFar, AngleRight, AngleRightFar} {
			l.load(dir, set+a.suffix(), carWorldWidth)
		}
	}
	return l
}

func (l *Library) load(dir, id string, worldWidth float64) {
	path := filepath.Join(dir, fmt.Sprintf("%s.png", id))
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		log.Warn().Str("asset", id).Str("path", path).Err(err).Msg("asset missing, will not be drawn")
		l.sprites[id] = &Sprite{WorldWidth: worldWidth}
		return
	}
	l.sprites[id] = &Sprite{Image: img, WorldWidth: worldWidth}
}

// Sprite returns the sprite for an asset id, or nil when unknown.
func (l *Library) Sprite(id string) *Sprite {
	return l.sprites[id]
}

// CarSprite returns the sprite for a vehicle set at the given angle. A
// missing directional variant is synthesized by mirroring its opposite;
// the returned flag tells the renderer to flip horizontally.
func (l *Library) CarSprite(set string, angle CarAngle) (*Sprite, bool) {
	if s := l.sprites[set+angle.suffix()]; s != nil && s.Image != nil {
		return s, false
	}
	if angle != AngleStraight {
		if s := l.sprites[set+angle.opposite().suffix()]; s != nil && s.Image != nil {
			return s, true
		}
	}
	if s := l.sprites[set]; s != nil {
		return s, false
	}
	return nil, false
}
