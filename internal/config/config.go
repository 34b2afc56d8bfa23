// Package config loads the showroom's settings from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Config holds the window, asset and timing settings of the showroom.
type Config struct {
	Width  int    `env:"SHOWROOM_WIDTH"  envDefault:"1280"`
	Height int    `env:"SHOWROOM_HEIGHT" envDefault:"720"`
	Title  string `env:"SHOWROOM_TITLE"  envDefault:"Showroom"`

	AssetDir  string `env:"SHOWROOM_ASSET_DIR"  envDefault:"./assets"`
	HouseFile string `env:"SHOWROOM_HOUSE_FILE" envDefault:"house/house.glb"`
	CarFile   string `env:"SHOWROOM_CAR_FILE"   envDefault:"car/car.glb"`
	CarRoot   string `env:"SHOWROOM_CAR_ROOT"   envDefault:"mesh_mm2"`

	PreDelay         time.Duration `env:"SHOWROOM_PRE_DELAY"         envDefault:"500ms"`
	PostDelay        time.Duration `env:"SHOWROOM_POST_DELAY"        envDefault:"500ms"`
	AnimationTimeout time.Duration `env:"SHOWROOM_ANIMATION_TIMEOUT" envDefault:"0s"`
	WaitForCar       bool          `env:"SHOWROOM_WAIT_FOR_CAR"`

	Inspector bool `env:"SHOWROOM_INSPECTOR"`
}

// Load reads the Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.PreDelay < 0 || cfg.PostDelay < 0 || cfg.AnimationTimeout < 0 {
		return Config{}, fmt.Errorf("delays must not be negative")
	}
	return cfg, nil
}
