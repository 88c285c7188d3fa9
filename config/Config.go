package config

import (
	"PongArena/core"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	ArenaWidthKey    = "ARENA_WIDTH"
	ArenaHeightKey   = "ARENA_HEIGHT"
	PhysicsTickKey   = "PHYSICS_TICK_MS"
	FrameTickKey     = "FRAME_TICK_MS"
	KeyHoldKey       = "KEY_HOLD_MS"
	Player1UpKey     = "P1_UP"
	Player1DownKey   = "P1_DOWN"
	Player2UpKey     = "P2_UP"
	Player2DownKey   = "P2_DOWN"
	DefaultEnv       = "game"
	propertiesFolder = "properties"
)

type Config struct {
	ArenaWidth    float64
	ArenaHeight   float64
	PhysicsPeriod time.Duration
	FramePeriod   time.Duration
	KeyHold       time.Duration
	Keys          map[core.Action]string

	// FromFile is false when no properties file was found and defaults were used.
	FromFile bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ArenaWidthKey, 800)
	v.SetDefault(ArenaHeightKey, 600)
	v.SetDefault(PhysicsTickKey, 16)
	v.SetDefault(FrameTickKey, 33)
	v.SetDefault(KeyHoldKey, 250)
	v.SetDefault(Player1UpKey, "Rune[w]")
	v.SetDefault(Player1DownKey, "Rune[s]")
	v.SetDefault(Player2UpKey, "Up")
	v.SetDefault(Player2DownKey, "Down")
}

// Default returns the configuration used when no properties file exists.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

// ReadProperties loads <dir>/properties/<env>.properties on top of the defaults.
func ReadProperties(dir, env string) (Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("properties")
	v.AddConfigPath(filepath.Join(dir, propertiesFolder))
	setDefaults(v)

	fromFile := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read %s properties: %w", env, err)
		}
		fromFile = false
	}

	cfg := fromViper(v)
	cfg.FromFile = fromFile
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) Config {
	return Config{
		ArenaWidth:    cast.ToFloat64(v.Get(ArenaWidthKey)),
		ArenaHeight:   cast.ToFloat64(v.Get(ArenaHeightKey)),
		PhysicsPeriod: millis(v.Get(PhysicsTickKey)),
		FramePeriod:   millis(v.Get(FrameTickKey)),
		KeyHold:       millis(v.Get(KeyHoldKey)),
		Keys: map[core.Action]string{
			core.Player1Up:   cast.ToString(v.Get(Player1UpKey)),
			core.Player1Down: cast.ToString(v.Get(Player1DownKey)),
			core.Player2Up:   cast.ToString(v.Get(Player2UpKey)),
			core.Player2Down: cast.ToString(v.Get(Player2DownKey)),
		},
	}
}

func millis(value interface{}) time.Duration {
	return time.Duration(cast.ToInt64(value)) * time.Millisecond
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if c.ArenaWidth <= 0 || c.ArenaHeight <= 0 {
		return fmt.Errorf("arena must be positive, got %vx%v", c.ArenaWidth, c.ArenaHeight)
	}
	if c.PhysicsPeriod <= 0 {
		return fmt.Errorf("%s must be positive", PhysicsTickKey)
	}
	if c.FramePeriod <= 0 {
		return fmt.Errorf("%s must be positive", FrameTickKey)
	}
	if c.KeyHold <= 0 {
		return fmt.Errorf("%s must be positive", KeyHoldKey)
	}
	seen := make(map[string]core.Action, len(c.Keys))
	for action, key := range c.Keys {
		if key == "" {
			return fmt.Errorf("no key bound to %s", action)
		}
		if other, ok := seen[key]; ok {
			return fmt.Errorf("key %q bound to both %s and %s", key, other, action)
		}
		seen[key] = action
	}
	return nil
}

// KeyMap converts the bindings into the game's lookup table.
func (c Config) KeyMap() core.KeyMap {
	km := make(core.KeyMap, len(c.Keys))
	for action, key := range c.Keys {
		km[key] = action
	}
	return km
}
