package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds the user-adjustable part of the configuration. Physics and
// geometry tuning stays in the constant blocks; these are the knobs a player
// may reasonably edit.
type Settings struct {
	WindowWidth  int    `json:"windowWidth" mapstructure:"windowWidth"`
	WindowHeight int    `json:"windowHeight" mapstructure:"windowHeight"`
	AssetsDir    string `json:"assetsDir" mapstructure:"assetsDir"`
	Audio        bool   `json:"audio" mapstructure:"audio"`
	TwoPlayer    bool   `json:"twoPlayer" mapstructure:"twoPlayer"`
	Laps         int    `json:"laps" mapstructure:"laps"`
	PlayerName   string `json:"playerName" mapstructure:"playerName"`
	RivalName    string `json:"rivalName" mapstructure:"rivalName"`
}

// LoadSettings reads slipstream.cfg.json from configDir and fills in
// defaults for anything not present. A missing config file is not an
// error; every key has a default.
func LoadSettings(configDir string) (*Settings, error) {
	v := viper.New()

	v.SetDefault("windowWidth", WindowWidth)
	v.SetDefault("windowHeight", WindowHeight)
	v.SetDefault("assetsDir", "assets")
	v.SetDefault("audio", true)
	v.SetDefault("twoPlayer", false)
	v.SetDefault("laps", DefaultLaps)
	v.SetDefault("playerName", "Player 1")
	v.SetDefault("rivalName", "") // empty picks a random AI callsign

	v.SetConfigName("slipstream.cfg.json")
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if s.Laps < 1 {
		s.Laps = DefaultLaps
	}
	if s.WindowWidth < 320 || s.WindowHeight < 240 {
		s.WindowWidth = WindowWidth
		s.WindowHeight = WindowHeight
	}
	return &s, nil
}
