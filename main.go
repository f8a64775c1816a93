package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/slipstream/pkg/audio"
	"github.com/golangdaddy/slipstream/pkg/config"
	"github.com/golangdaddy/slipstream/pkg/game"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	settings, err := config.LoadSettings(".")
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	var snd *audio.System
	if settings.Audio {
		snd, err = audio.NewSystem()
		if err != nil {
			// No audio device is not fatal; the game runs silent.
			log.Warn().Err(err).Msg("audio unavailable")
			snd = nil
		}
	}

	g := game.New(settings, snd)

	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle("Slipstream")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game loop")
	}
}
