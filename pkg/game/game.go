package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/slipstream/pkg/assets"
	"github.com/golangdaddy/slipstream/pkg/audio"
	"github.com/golangdaddy/slipstream/pkg/config"
	"github.com/golangdaddy/slipstream/pkg/data"
	"github.com/golangdaddy/slipstream/pkg/race"
	"github.com/golangdaddy/slipstream/pkg/render"
	"github.com/golangdaddy/slipstream/pkg/track"
	"github.com/golangdaddy/slipstream/pkg/ui"
	"github.com/golangdaddy/slipstream/pkg/vehicle"
)

type state int

const (
	stateLoading state = iota
	stateRacing
)

// viewport pairs a composer with the vehicle whose view it renders.
type viewport struct {
	composer *render.Composer
	own      *vehicle.Vehicle
}

// Game implements ebiten.Game. It owns the track, the entrants, the frame
// engine and one composer per viewport, and sequences the loading screen
// into the race.
type Game struct {
	settings *config.Settings
	trk      *track.Track
	snd      *audio.System
	engine   *Engine
	lib      *assets.Library

	state     state
	loaded    chan *assets.Library
	viewports []viewport
	lastTick  time.Time
}

// New assembles the full game from settings. Asset decoding runs on its
// own goroutine; frames show the loading splash until it lands.
func New(settings *config.Settings, snd *audio.System) *Game {
	trk := track.BuildCircuit(assets.WorldWidth)

	entrants := makeEntrants(settings)
	machine := race.New(config.CountdownSeconds, settings.Laps)

	g := &Game{
		settings: settings,
		trk:      trk,
		snd:      snd,
		engine:   NewEngine(trk, machine, snd, entrants),
		loaded:   make(chan *assets.Library, 1),
	}

	dir := settings.AssetsDir
	go func() {
		g.loaded <- assets.Load(dir)
	}()

	return g
}

// makeEntrants builds the grid: one human plus an AI rival, or two humans
// for split view.
func makeEntrants(settings *config.Settings) []Entrant {
	p1 := vehicle.New(settings.PlayerName, vehicle.Human, "car-blue",
		color.RGBA{R: 60, G: 120, B: 220, A: 255}, -0.5)

	rivalName := settings.RivalName

	if settings.TwoPlayer {
		if rivalName == "" {
			rivalName = "Player 2"
		}
		p2 := vehicle.New(rivalName, vehicle.Human, "car-red",
			color.RGBA{R: 220, G: 60, B: 60, A: 255}, 0.5)
		return []Entrant{
			{Vehicle: p1, Input: ArrowKeys},
			{Vehicle: p2, Input: WASDKeys},
		}
	}

	if rivalName == "" {
		rivalName = data.RandomCallsign()
	}
	rival := vehicle.New(rivalName, vehicle.AI, "car-red",
		color.RGBA{R: 220, G: 60, B: 60, A: 255}, 0.5)
	rival.TargetLane = 0.4
	return []Entrant{
		{Vehicle: p1, Input: ArrowKeys},
		{Vehicle: rival},
	}
}

// buildViewports lays out one full-width view, or two half-width views
// side by side for two humans.
func (g *Game) buildViewports() {
	w, h := g.settings.WindowWidth, g.settings.WindowHeight

	var humans []*vehicle.Vehicle
	for _, en := range g.engine.entrants {
		if en.Vehicle.Kind == vehicle.Human {
			humans = append(humans, en.Vehicle)
		}
	}

	if len(humans) == 2 {
		g.viewports = []viewport{
			{composer: render.NewComposer(g.trk, g.lib, 0, 0, w/2, h), own: humans[0]},
			{composer: render.NewComposer(g.trk, g.lib, w/2, 0, w-w/2, h), own: humans[1]},
		}
		return
	}
	g.viewports = []viewport{
		{composer: render.NewComposer(g.trk, g.lib, 0, 0, w, h), own: humans[0]},
	}
}

func (g *Game) Update() error {
	switch g.state {
	case stateLoading:
		select {
		case lib := <-g.loaded:
			g.lib = lib
			g.buildViewports()
			g.lastTick = time.Now()
			g.state = stateRacing
			log.Info().Int("viewports", len(g.viewports)).Msg("assets ready, race on")
		default:
		}
		return nil

	case stateRacing:
		now := time.Now()
		dt := now.Sub(g.lastTick).Seconds()
		g.lastTick = now
		g.engine.Step(dt, confirmPressed())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.settings.WindowWidth, g.settings.WindowHeight

	if g.state == stateLoading {
		ui.DrawLoading(screen, w, h)
		return
	}

	clock := g.engine.Clock()
	for _, vp := range g.viewports {
		vp.composer.Render(screen, vp.own, g.engine.Vehicles(), clock)
		ui.DrawHUD(screen, vp.composer.X, vp.composer.Y, vp.composer.W, vp.composer.H,
			vp.own, g.engine.Machine(), clock)
	}
	ui.DrawOverlay(screen, w, h, g.engine.Machine(), g.engine.Vehicles())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.settings.WindowWidth, g.settings.WindowHeight
}
