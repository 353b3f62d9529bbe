// Package config provides YAML-based ruleset loading for the console.
// A ruleset bundles the compiled-in constants of one firmware revision:
// control scheme, escape mechanism and the RoboDodge and TicTacToe tuning.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Escape selects how a running game is abandoned.
type Escape string

const (
	// EscapeChord opens a pause menu (Resume / Restart / Exit).
	EscapeChord Escape = "chord"
	// EscapeLongPress returns to the main menu after holding the stick button.
	EscapeLongPress Escape = "long_press"
)

// Steering selects the control scheme.
type Steering string

const (
	SteeringButtons  Steering = "buttons"
	SteeringJoystick Steering = "joystick"
)

// CursorStart selects where the TicTacToe cursor starts a new game.
type CursorStart string

const (
	CursorCenter CursorStart = "center"
	CursorOrigin CursorStart = "origin"
)

// Ruleset contains every tunable of one firmware revision.
type Ruleset struct {
	Name        string          `yaml:"name"`
	TickMS      int             `yaml:"tick_ms" env:"CONSOLE_TICK_MS"`
	Escape      Escape          `yaml:"escape" env:"CONSOLE_ESCAPE"`
	Steering    Steering        `yaml:"steering" env:"CONSOLE_STEERING"`
	LongPressMS int             `yaml:"long_press_ms" env:"CONSOLE_LONG_PRESS_MS"`
	Joystick    JoystickConfig  `yaml:"joystick"`
	RoboDodge   RoboDodgeConfig `yaml:"robododge"`
	TicTacToe   TicTacToeConfig `yaml:"tictactoe"`
}

// JoystickConfig defines the three-zone split of the analog axes.
type JoystickConfig struct {
	LowThreshold  float64 `yaml:"low_threshold" env:"CONSOLE_JOYSTICK_LOW"`
	HighThreshold float64 `yaml:"high_threshold" env:"CONSOLE_JOYSTICK_HIGH"`
}

// RoboDodgeConfig defines play-field geometry and entity tuning for RoboDodge.
type RoboDodgeConfig struct {
	FieldWidth      int  `yaml:"field_width"`
	FieldHeight     int  `yaml:"field_height"`
	PlayerWidth     int  `yaml:"player_width"`
	PlayerStep      int  `yaml:"player_step"`  // Pixels per button press
	PlayerSpeed     int  `yaml:"player_speed"` // Pixels per tick with the stick deflected
	PlayerRow       int  `yaml:"player_row"`   // Y of the player's center
	BulletSpawnY    int  `yaml:"bullet_spawn_y"`
	BulletSpeed     int  `yaml:"bullet_speed"`
	SpawnIntervalMS int  `yaml:"spawn_interval_ms" env:"CONSOLE_SPAWN_INTERVAL_MS"`
	SpawnMargin     int  `yaml:"spawn_margin"`
	EnemySpeedMin   int  `yaml:"enemy_speed_min"`
	EnemySpeedMax   int  `yaml:"enemy_speed_max" env:"CONSOLE_ENEMY_SPEED_MAX"`
	HitDistance     int  `yaml:"hit_distance"`
	ShieldEnabled   bool `yaml:"shield_enabled" env:"CONSOLE_SHIELD"`
	ShieldFull      int  `yaml:"shield_full"`
}

// TicTacToeConfig defines TicTacToe options.
type TicTacToeConfig struct {
	CursorStart CursorStart `yaml:"cursor_start" env:"CONSOLE_CURSOR_START"`
}

// Tick returns the loop interval.
func (r Ruleset) Tick() time.Duration {
	return time.Duration(r.TickMS) * time.Millisecond
}

// LongPressTicks returns how many loop iterations make a long press.
func (r Ruleset) LongPressTicks() int {
	if r.TickMS <= 0 {
		return 0
	}
	return (r.LongPressMS + r.TickMS - 1) / r.TickMS
}

// SpawnInterval returns the minimum time between two enemy spawns.
func (c RoboDodgeConfig) SpawnInterval() time.Duration {
	return time.Duration(c.SpawnIntervalMS) * time.Millisecond
}

// ErrInvalidRuleset is wrapped by every validation failure.
var ErrInvalidRuleset = errors.New("invalid ruleset")

// Validate checks that the ruleset describes a playable console.
func (r Ruleset) Validate() error {
	switch r.Escape {
	case EscapeChord, EscapeLongPress:
	default:
		return fmt.Errorf("%w: unknown escape %q", ErrInvalidRuleset, r.Escape)
	}
	switch r.Steering {
	case SteeringButtons, SteeringJoystick:
	default:
		return fmt.Errorf("%w: unknown steering %q", ErrInvalidRuleset, r.Steering)
	}
	switch r.TicTacToe.CursorStart {
	case CursorCenter, CursorOrigin:
	default:
		return fmt.Errorf("%w: unknown cursor start %q", ErrInvalidRuleset, r.TicTacToe.CursorStart)
	}

	if r.TickMS <= 0 {
		return fmt.Errorf("%w: tick_ms must be positive", ErrInvalidRuleset)
	}
	if r.Escape == EscapeLongPress && r.LongPressMS <= 0 {
		return fmt.Errorf("%w: long_press_ms must be positive", ErrInvalidRuleset)
	}

	j := r.Joystick
	if j.LowThreshold <= 0 || j.HighThreshold >= 1 || j.LowThreshold >= j.HighThreshold {
		return fmt.Errorf("%w: joystick thresholds must satisfy 0 < low < high < 1", ErrInvalidRuleset)
	}

	d := r.RoboDodge
	if d.FieldWidth <= 0 || d.FieldHeight <= 0 || d.PlayerWidth <= 0 {
		return fmt.Errorf("%w: robododge field and player sizes must be positive", ErrInvalidRuleset)
	}
	if d.PlayerWidth >= d.FieldWidth {
		return fmt.Errorf("%w: player wider than the field", ErrInvalidRuleset)
	}
	if d.BulletSpeed <= 0 || d.SpawnIntervalMS <= 0 || d.HitDistance <= 0 {
		return fmt.Errorf("%w: bullet speed, spawn interval and hit distance must be positive", ErrInvalidRuleset)
	}
	if d.EnemySpeedMin <= 0 || d.EnemySpeedMax < d.EnemySpeedMin {
		return fmt.Errorf("%w: enemy speed range [%d, %d]", ErrInvalidRuleset, d.EnemySpeedMin, d.EnemySpeedMax)
	}
	if 2*d.SpawnMargin >= d.FieldWidth {
		return fmt.Errorf("%w: spawn margin leaves no room", ErrInvalidRuleset)
	}
	if d.ShieldEnabled && d.ShieldFull <= 0 {
		return fmt.Errorf("%w: shield_full must be positive", ErrInvalidRuleset)
	}
	return nil
}
