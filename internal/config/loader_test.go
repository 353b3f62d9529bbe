package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedPresetsMatchHardcoded(t *testing.T) {
	for _, preset := range Presets() {
		t.Run(preset, func(t *testing.T) {
			var fromYAML Ruleset
			require.NoError(t, yaml.Unmarshal(GetDefaultYAML(preset), &fromYAML))

			want, ok := hardcodedPreset(preset)
			require.True(t, ok)
			assert.Equal(t, want, fromYAML)
			assert.NoError(t, fromYAML.Validate())
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty preset loads classic", func(t *testing.T) {
		r, err := Load("", "")
		require.NoError(t, err)
		assert.Equal(t, PresetClassic, r.Name)
		assert.Equal(t, EscapeChord, r.Escape)
		assert.Equal(t, SteeringButtons, r.Steering)
		assert.False(t, r.RoboDodge.ShieldEnabled)
	})

	t.Run("baseline enables the shield and long press", func(t *testing.T) {
		r, err := Load(PresetBaseline, "")
		require.NoError(t, err)
		assert.Equal(t, EscapeLongPress, r.Escape)
		assert.Equal(t, SteeringJoystick, r.Steering)
		assert.True(t, r.RoboDodge.ShieldEnabled)
		assert.Equal(t, 2, r.RoboDodge.EnemySpeedMax)
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := Load("turbo", "")
		assert.ErrorIs(t, err, ErrUnknownPreset)
	})

	t.Run("custom file overrides a subset", func(t *testing.T) {
		// Given: a file changing only the spawn interval
		path := filepath.Join(t.TempDir(), "rules.yaml")
		data := []byte("robododge:\n  spawn_interval_ms: 350\n")
		require.NoError(t, os.WriteFile(path, data, 0o600))

		// When: loading it over classic
		r, err := Load(PresetClassic, path)

		// Then: the rest of classic is kept
		require.NoError(t, err)
		assert.Equal(t, 350, r.RoboDodge.SpawnIntervalMS)
		assert.Equal(t, 128, r.RoboDodge.FieldWidth)
		assert.Equal(t, EscapeChord, r.Escape)
	})

	t.Run("missing custom file", func(t *testing.T) {
		_, err := Load(PresetClassic, filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid custom file is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte("escape: sideways\n"), 0o600))

		_, err := Load(PresetClassic, path)
		assert.ErrorIs(t, err, ErrInvalidRuleset)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("CONSOLE_SHIELD", "true")
		t.Setenv("CONSOLE_ESCAPE", "long_press")

		r, err := Load(PresetClassic, "")
		require.NoError(t, err)
		assert.True(t, r.RoboDodge.ShieldEnabled)
		assert.Equal(t, EscapeLongPress, r.Escape)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Ruleset)
	}{
		{"unknown steering", func(r *Ruleset) { r.Steering = "mouse" }},
		{"unknown cursor start", func(r *Ruleset) { r.TicTacToe.CursorStart = "corner" }},
		{"zero tick", func(r *Ruleset) { r.TickMS = 0 }},
		{"thresholds out of order", func(r *Ruleset) { r.Joystick.LowThreshold = 0.7 }},
		{"inverted enemy speeds", func(r *Ruleset) { r.RoboDodge.EnemySpeedMin = 3 }},
		{"margin too wide", func(r *Ruleset) { r.RoboDodge.SpawnMargin = 64 }},
		{"shield without charge", func(r *Ruleset) {
			r.RoboDodge.ShieldEnabled = true
			r.RoboDodge.ShieldFull = 0
		}},
		{"long press without duration", func(r *Ruleset) {
			r.Escape = EscapeLongPress
			r.LongPressMS = 0
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := DefaultClassic()
			tc.mutate(&r)
			assert.ErrorIs(t, r.Validate(), ErrInvalidRuleset)
		})
	}
}

func TestDerivedDurations(t *testing.T) {
	r := DefaultClassic()

	assert.Equal(t, 33*time.Millisecond, r.Tick())
	assert.Equal(t, 700*time.Millisecond, r.RoboDodge.SpawnInterval())
	// 1500 / 33 rounded up
	assert.Equal(t, 46, r.LongPressTicks())
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultBaseline())
	require.NoError(t, err)
	assert.Contains(t, string(data), "escape: long_press")
}
