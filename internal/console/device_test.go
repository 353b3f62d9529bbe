package console

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pocket-console/internal/config"
	"github.com/vovakirdan/pocket-console/internal/core"
	"github.com/vovakirdan/pocket-console/internal/display"
	"github.com/vovakirdan/pocket-console/internal/hal"
	"github.com/vovakirdan/pocket-console/internal/storage"
)

// dotRender lights one pixel per mode kind so frames are distinguishable.
func dotRender(c *display.Canvas, s Snapshot) {
	c.Pixel(int(s.Mode.Kind), 0, display.On)
}

func TestBootFailsWithoutDisplay(t *testing.T) {
	cause := errors.New("panel not responding")
	d := NewDevice(config.DefaultClassic(), hal.NewVirtualPins(), hal.NewFailingDisplay(cause), dotRender, 1)

	err := d.Boot()

	assert.ErrorIs(t, err, ErrDisplayInit)
	assert.ErrorIs(t, err, cause)

	_, err = d.Step(time.Now())
	assert.ErrorIs(t, err, ErrNotBooted)
}

func TestBootPresentsMenu(t *testing.T) {
	disp := hal.NewMemoryDisplay()
	d := NewDevice(config.DefaultClassic(), hal.NewVirtualPins(), disp, dotRender, 1)

	require.NoError(t, d.Boot())

	assert.Equal(t, 1, disp.Frames())
	assert.True(t, disp.Frame().Lit(int(KindMenu), 0))
}

func TestStepIsGated(t *testing.T) {
	disp := hal.NewMemoryDisplay()
	d := NewDevice(config.DefaultClassic(), hal.NewVirtualPins(), disp, dotRender, 1)
	require.NoError(t, d.Boot())
	t0 := time.Unix(1000, 0)

	ran, err := d.Step(t0)
	require.NoError(t, err)
	assert.True(t, ran, "first poll ticks")

	ran, _ = d.Step(t0.Add(10 * time.Millisecond))
	assert.False(t, ran, "too early")
	ran, _ = d.Step(t0.Add(32 * time.Millisecond))
	assert.False(t, ran)

	ran, _ = d.Step(t0.Add(33 * time.Millisecond))
	assert.True(t, ran)

	assert.Equal(t, uint64(2), d.Ticks())
	assert.Equal(t, 3, disp.Frames(), "boot frame plus one per tick")
}

func TestStepDrivesTheMachine(t *testing.T) {
	pins := hal.NewVirtualPins()
	disp := hal.NewMemoryDisplay()
	d := NewDevice(config.DefaultClassic(), pins, disp, dotRender, 1)
	require.NoError(t, d.Boot())
	now := time.Unix(0, 0)

	pins.Press(core.ButtonBlue)
	_, err := d.Step(now)
	require.NoError(t, err)

	assert.Equal(t, ModeOf(KindRoboDodge), d.Machine().Mode())
	assert.True(t, disp.Frame().Lit(int(KindRoboDodge), 0))
	assert.False(t, disp.Frame().Lit(int(KindMenu), 0), "canvas is cleared every frame")
}

func TestScoresAreRecorded(t *testing.T) {
	store, err := storage.OpenSession()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	pins := hal.NewVirtualPins()
	d := NewDevice(doomed(config.DefaultClassic()), pins, hal.NewMemoryDisplay(), dotRender, 1,
		WithScoreboard(store), WithLogger(logger))
	require.NoError(t, d.Boot())

	now := time.Unix(0, 0)
	pins.Press(core.ButtonBlue)
	for i := 0; i < 500 && d.Machine().Mode().Kind != KindGameOver; i++ {
		_, err := d.Step(now)
		require.NoError(t, err)
		now = now.Add(d.Interval())
	}
	require.Equal(t, ModeOf(KindGameOver), d.Machine().Mode())

	scores, err := store.TopScores(GameRoboDodge, 10)
	require.NoError(t, err)
	assert.Len(t, scores, 1)
	assert.Contains(t, buf.String(), "mode")
	assert.Contains(t, buf.String(), "score")
}

// brokenBoard fails every write.
type brokenBoard struct{}

func (brokenBoard) SaveScore(string, int) (int64, error) { return 0, errors.New("disk full") }
func (brokenBoard) HighScore(string) (int, error)        { return 0, errors.New("disk full") }
func (brokenBoard) SaveMatch(string, int) (int64, error) { return 0, errors.New("disk full") }

func TestScoreboardFailureIsNotFatal(t *testing.T) {
	var buf bytes.Buffer
	d := NewDevice(doomed(config.DefaultClassic()), hal.NewVirtualPins(), hal.NewMemoryDisplay(), dotRender, 1,
		WithScoreboard(brokenBoard{}), WithLogger(log.New(&buf)))
	require.NoError(t, d.Boot())

	d.recordScore(4)

	assert.Equal(t, 4, d.Machine().Best(), "best falls back to the session maximum")
	assert.Contains(t, buf.String(), "could not save score")
}
