package config

import (
	"encoding/json"

	"triax/core"
)

// Config holds the host-side controller configuration: the serial device
// carrying the command protocol and the wiring of the three axes. Every
// field has a compiled-in default, so running without a config file works.
type Config struct {
	Device string  `json:"device"`
	Baud   int     `json:"baud"`
	Pins   PinsCfg `json:"pins"`
}

// PinsCfg mirrors core.PinMap in JSON-friendly form. GPIO numbers are
// BCM numbering on the Raspberry Pi build.
type PinsCfg struct {
	Step    [3]uint32 `json:"step"`
	Dir     [3]uint32 `json:"dir"`
	Forward [3]uint32 `json:"forward"`
	Reverse [3]uint32 `json:"reverse"`

	SpeedChannel uint8 `json:"speed_channel"`
	ModeChannel  uint8 `json:"mode_channel"`
}

// Load parses a JSON configuration and fills in defaults for anything
// omitted.
func Load(jsonData []byte) (*Config, error) {
	cfg := Default()
	if err := json.Unmarshal(jsonData, cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, nil
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		Device: "/dev/ttyAMA0",
		Baud:   115200,
		Pins: PinsCfg{
			Step:         [3]uint32{17, 27, 22},
			Dir:          [3]uint32{5, 6, 13},
			Forward:      [3]uint32{23, 24, 25},
			Reverse:      [3]uint32{16, 20, 21},
			SpeedChannel: 0,
			ModeChannel:  1,
		},
	}
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Device == "" {
		cfg.Device = def.Device
	}
	if cfg.Baud == 0 {
		cfg.Baud = def.Baud
	}

	// An all-zero pin group means the section was omitted; zero is not a
	// usable pin for any of these outputs, so fall back per group.
	if cfg.Pins.Step == ([3]uint32{}) {
		cfg.Pins.Step = def.Pins.Step
	}
	if cfg.Pins.Dir == ([3]uint32{}) {
		cfg.Pins.Dir = def.Pins.Dir
	}
	if cfg.Pins.Forward == ([3]uint32{}) {
		cfg.Pins.Forward = def.Pins.Forward
	}
	if cfg.Pins.Reverse == ([3]uint32{}) {
		cfg.Pins.Reverse = def.Pins.Reverse
	}
}

// PinMap converts the configuration to the controller's pin map.
func (c *Config) PinMap() core.PinMap {
	var pm core.PinMap
	for i := 0; i < core.NumAxes; i++ {
		pm.Step[i] = core.GPIOPin(c.Pins.Step[i])
		pm.Dir[i] = core.GPIOPin(c.Pins.Dir[i])
		pm.Forward[i] = core.GPIOPin(c.Pins.Forward[i])
		pm.Reverse[i] = core.GPIOPin(c.Pins.Reverse[i])
	}
	pm.Speed = core.ADCChannelID(c.Pins.SpeedChannel)
	pm.ModeSelect = core.ADCChannelID(c.Pins.ModeChannel)
	return pm
}
