package config

import (
	_ "embed"
	"sort"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/baseline.yaml
var defaultBaselineYAML []byte

// Preset names of the embedded rulesets.
const (
	PresetClassic  = "classic"
	PresetBaseline = "baseline"
)

// DefaultPreset is used when no preset is requested.
const DefaultPreset = PresetClassic

// DefaultClassic returns the classic ruleset without reading YAML.
func DefaultClassic() Ruleset {
	return Ruleset{
		Name:        PresetClassic,
		TickMS:      33,
		Escape:      EscapeChord,
		Steering:    SteeringButtons,
		LongPressMS: 1500,
		Joystick: JoystickConfig{
			LowThreshold:  0.4,
			HighThreshold: 0.6,
		},
		RoboDodge: RoboDodgeConfig{
			FieldWidth:      128,
			FieldHeight:     64,
			PlayerWidth:     8,
			PlayerStep:      3,
			PlayerSpeed:     2,
			PlayerRow:       56, // field height - 8
			BulletSpawnY:    50, // field height - 14
			BulletSpeed:     4,
			SpawnIntervalMS: 700,
			SpawnMargin:     8,
			EnemySpeedMin:   1,
			EnemySpeedMax:   1,
			HitDistance:     6,
			ShieldEnabled:   false,
			ShieldFull:      5,
		},
		TicTacToe: TicTacToeConfig{
			CursorStart: CursorCenter,
		},
	}
}

// DefaultBaseline returns the baseline ruleset without reading YAML.
func DefaultBaseline() Ruleset {
	r := DefaultClassic()
	r.Name = PresetBaseline
	r.Escape = EscapeLongPress
	r.Steering = SteeringJoystick
	r.RoboDodge.EnemySpeedMax = 2
	r.RoboDodge.ShieldEnabled = true
	r.TicTacToe.CursorStart = CursorOrigin
	return r
}

// Presets returns the names of the embedded rulesets, sorted.
func Presets() []string {
	names := []string{PresetClassic, PresetBaseline}
	sort.Strings(names)
	return names
}

// GetDefaultYAML returns the embedded YAML of a preset.
func GetDefaultYAML(preset string) []byte {
	switch preset {
	case PresetClassic:
		return defaultClassicYAML
	case PresetBaseline:
		return defaultBaselineYAML
	default:
		return nil
	}
}

// hardcodedPreset returns the Go-literal fallback of a preset.
func hardcodedPreset(preset string) (Ruleset, bool) {
	switch preset {
	case PresetClassic:
		return DefaultClassic(), true
	case PresetBaseline:
		return DefaultBaseline(), true
	default:
		return Ruleset{}, false
	}
}
