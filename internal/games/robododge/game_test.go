package robododge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pocket-console/internal/config"
	"github.com/vovakirdan/pocket-console/internal/core"
)

const tick = 33 * time.Millisecond

func newClassic(t *testing.T) *Game {
	t.Helper()
	return New(config.DefaultClassic().RoboDodge, 42)
}

func newBaseline(t *testing.T) *Game {
	t.Helper()
	return New(config.DefaultBaseline().RoboDodge, 42)
}

func TestPoolsNeverExceedCapacity(t *testing.T) {
	g := newBaseline(t)

	for i := 0; i < 2000; i++ {
		in := Input{Fire: true, Steer: core.Direction(i/40%3 - 1)}
		if g.Tick(in, tick) == PlayerDied {
			g.Reset()
		}
		require.LessOrEqual(t, g.ActiveBullets(), BulletCapacity)
		require.LessOrEqual(t, g.ActiveEnemies(), EnemyCapacity)
	}
}

func TestFireRejectedWhenPoolFull(t *testing.T) {
	t.Run("direct fire", func(t *testing.T) {
		g := newClassic(t)
		for i := 0; i < BulletCapacity; i++ {
			require.Equal(t, core.Accepted, g.Fire())
		}
		before := g.Snapshot()

		assert.Equal(t, core.Rejected, g.Fire())
		assert.Equal(t, before, g.Snapshot(), "rejected fire leaves the pool untouched")
	})

	t.Run("five shots before any bullet leaves the field", func(t *testing.T) {
		// Given: a fresh session with the spawn timer held still
		g := newClassic(t)
		for i := 0; i < BulletCapacity; i++ {
			require.Equal(t, Continue, g.Tick(Input{Fire: true}, 0))
		}
		require.Equal(t, BulletCapacity, g.ActiveBullets())

		// When: a sixth shot is requested
		g.Tick(Input{Fire: true}, 0)

		// Then: it is dropped and the pool stays full
		assert.Equal(t, BulletCapacity, g.ActiveBullets())
	})
}

func TestBulletSpawnsAbovePlayer(t *testing.T) {
	g := newClassic(t)
	require.Equal(t, core.Accepted, g.Fire())

	s := g.Snapshot()
	assert.Equal(t, Bullet{X: 64, Y: 50, Active: true}, s.Bullets[0])

	g.Tick(Input{}, 0)
	assert.Equal(t, 46, g.Snapshot().Bullets[0].Y)
}

func TestBulletLeavesTop(t *testing.T) {
	g := newClassic(t)
	g.bullets[0] = Bullet{X: 10, Y: 3, Active: true}

	g.Tick(Input{}, 0)

	assert.Equal(t, 0, g.ActiveBullets())
}

func TestBulletHitsEnemy(t *testing.T) {
	t.Run("pair within range on both axes", func(t *testing.T) {
		// Given: a bullet and an enemy converging to 2px / 4px apart
		g := newClassic(t)
		g.enemies[0] = Enemy{X: 40, Y: 20, Speed: 1, Active: true}
		g.bullets[0] = Bullet{X: 42, Y: 29, Active: true}

		// When
		out := g.Tick(Input{}, 0)

		// Then: both are gone and the score rose by one
		assert.Equal(t, Continue, out)
		assert.Equal(t, 1, g.Score())
		assert.Equal(t, 0, g.ActiveBullets())
		assert.Equal(t, 0, g.ActiveEnemies())
	})

	t.Run("close on one axis only", func(t *testing.T) {
		g := newClassic(t)
		g.enemies[0] = Enemy{X: 40, Y: 20, Speed: 1, Active: true}
		g.bullets[0] = Bullet{X: 46, Y: 25, Active: true}

		g.Tick(Input{}, 0)

		assert.Equal(t, 0, g.Score())
		assert.Equal(t, 1, g.ActiveBullets())
		assert.Equal(t, 1, g.ActiveEnemies())
	})

	t.Run("destroyed enemy is not matched by a second bullet", func(t *testing.T) {
		g := newClassic(t)
		g.enemies[0] = Enemy{X: 40, Y: 20, Speed: 1, Active: true}
		g.bullets[0] = Bullet{X: 40, Y: 25, Active: true}
		g.bullets[1] = Bullet{X: 41, Y: 26, Active: true}

		g.Tick(Input{}, 0)

		assert.Equal(t, 1, g.Score())
		assert.Equal(t, 1, g.ActiveBullets())
		assert.False(t, g.bullets[0].Active)
		assert.True(t, g.bullets[1].Active)
	})

	t.Run("spent bullet is not matched by a second enemy", func(t *testing.T) {
		g := newClassic(t)
		g.enemies[0] = Enemy{X: 40, Y: 20, Speed: 1, Active: true}
		g.enemies[1] = Enemy{X: 41, Y: 21, Speed: 1, Active: true}
		g.bullets[0] = Bullet{X: 40, Y: 25, Active: true}

		g.Tick(Input{}, 0)

		assert.Equal(t, 1, g.Score())
		assert.Equal(t, 1, g.ActiveEnemies())
		assert.True(t, g.enemies[1].Active)
	})
}

func TestEnemyReachesPlayer(t *testing.T) {
	t.Run("without shield the player dies", func(t *testing.T) {
		g := newClassic(t)
		g.enemies[0] = Enemy{X: 64, Y: 54, Speed: 1, Active: true}

		assert.Equal(t, PlayerDied, g.Tick(Input{}, 0))
		assert.True(t, g.Over())
		assert.Equal(t, StateDead, g.Snapshot().State)
	})

	t.Run("raised shield absorbs the enemy", func(t *testing.T) {
		// Given: a full charge and an enemy about to land on the player
		g := newBaseline(t)
		g.charge = g.cfg.ShieldFull
		g.enemies[0] = Enemy{X: 64, Y: 54, Speed: 1, Active: true}

		// When: the shield is raised in the same tick
		out := g.Tick(Input{Shield: true}, 0)

		// Then
		assert.Equal(t, Continue, out)
		s := g.Snapshot()
		assert.False(t, s.ShieldActive, "shield is consumed")
		assert.Equal(t, 0, s.Charge)
		assert.Equal(t, 0, g.ActiveEnemies())
		assert.Equal(t, 0, g.Score(), "absorbed enemies do not score")
	})

	t.Run("death latches until reset", func(t *testing.T) {
		g := newClassic(t)
		g.enemies[0] = Enemy{X: 64, Y: 54, Speed: 1, Active: true}
		require.Equal(t, PlayerDied, g.Tick(Input{}, 0))
		frozen := g.Snapshot()

		assert.Equal(t, PlayerDied, g.Tick(Input{Fire: true, Step: core.DirLow}, tick))
		assert.Equal(t, core.Rejected, g.Fire())
		assert.Equal(t, frozen, g.Snapshot())

		g.Reset()
		assert.False(t, g.Over())
	})
}

func TestShieldCharge(t *testing.T) {
	t.Run("kills charge the shield up to full", func(t *testing.T) {
		g := newBaseline(t)
		for i := 0; i < 7; i++ {
			g.enemies[0] = Enemy{X: 20, Y: 20, Speed: 1, Active: true}
			g.bullets[0] = Bullet{X: 20, Y: 25, Active: true}
			g.Tick(Input{}, 0)
		}

		assert.Equal(t, 7, g.Score())
		assert.Equal(t, g.cfg.ShieldFull, g.Snapshot().Charge)
	})

	t.Run("partial charge cannot raise the shield", func(t *testing.T) {
		g := newBaseline(t)
		g.charge = g.cfg.ShieldFull - 1

		assert.Equal(t, core.Rejected, g.ActivateShield())
		assert.Equal(t, g.cfg.ShieldFull-1, g.charge)
		assert.False(t, g.shieldActive)
	})

	t.Run("disabled shield never charges or raises", func(t *testing.T) {
		g := newClassic(t)
		g.enemies[0] = Enemy{X: 20, Y: 20, Speed: 1, Active: true}
		g.bullets[0] = Bullet{X: 20, Y: 25, Active: true}
		g.Tick(Input{}, 0)
		assert.Equal(t, 0, g.charge)

		g.charge = g.cfg.ShieldFull
		assert.Equal(t, core.Rejected, g.ActivateShield())
	})
}

func TestPlayerMovement(t *testing.T) {
	t.Run("button steps are clamped to half the sprite", func(t *testing.T) {
		g := newClassic(t)
		g.Tick(Input{Step: core.DirHigh}, 0)
		assert.Equal(t, 67, g.playerX)

		for i := 0; i < 40; i++ {
			g.Tick(Input{Step: core.DirLow}, 0)
		}
		assert.Equal(t, 4, g.playerX)

		for i := 0; i < 60; i++ {
			g.Tick(Input{Step: core.DirHigh}, 0)
		}
		assert.Equal(t, 124, g.playerX)
	})

	t.Run("stick steers every tick", func(t *testing.T) {
		g := newBaseline(t)
		for i := 0; i < 5; i++ {
			g.Tick(Input{Steer: core.DirLow}, 0)
		}
		assert.Equal(t, 64-5*g.cfg.PlayerSpeed, g.playerX)
	})
}

func TestEnemySpawning(t *testing.T) {
	t.Run("first enemy once the interval is exceeded", func(t *testing.T) {
		g := newClassic(t)
		for i := 0; i < 21; i++ {
			g.Tick(Input{}, tick)
		}
		require.Equal(t, 0, g.ActiveEnemies(), "693ms is not past the interval")

		g.Tick(Input{}, tick)

		require.Equal(t, 1, g.ActiveEnemies())
		e := g.enemies[0]
		assert.GreaterOrEqual(t, e.X, 8)
		assert.Less(t, e.X, 120)
		assert.Equal(t, 1, e.Y, "spawned at the top and advanced once")
	})

	t.Run("baseline speeds stay in range", func(t *testing.T) {
		g := newBaseline(t)
		for i := 0; i < 500 && !g.Over(); i++ {
			g.Tick(Input{}, tick)
			for _, e := range g.enemies {
				if e.Active {
					assert.GreaterOrEqual(t, e.Speed, 1)
					assert.LessOrEqual(t, e.Speed, 2)
				}
			}
		}
	})

	t.Run("full pool skips the spawn", func(t *testing.T) {
		g := newClassic(t)
		for i := range g.enemies {
			g.enemies[i] = Enemy{X: 10 + i, Y: 5, Speed: 1, Active: true}
		}
		g.sinceSpawn = time.Second

		g.Tick(Input{}, tick)

		assert.Equal(t, EnemyCapacity, g.ActiveEnemies())
		assert.Equal(t, time.Duration(0), g.sinceSpawn, "timer restarts even when skipped")
	})

	t.Run("enemy leaves the bottom", func(t *testing.T) {
		g := newClassic(t)
		g.enemies[0] = Enemy{X: 10, Y: 64, Speed: 1, Active: true}

		assert.Equal(t, Continue, g.Tick(Input{}, 0))
		assert.Equal(t, 0, g.ActiveEnemies())
	})
}

func TestResetIsIdempotent(t *testing.T) {
	g := newBaseline(t)
	for i := 0; i < 100; i++ {
		g.Tick(Input{Fire: i%3 == 0, Steer: core.DirHigh}, tick)
	}

	g.Reset()
	once := g.Snapshot()
	g.Reset()
	twice := g.Snapshot()

	assert.Equal(t, once, twice)
	assert.Equal(t, newBaseline(t).Snapshot(), once)
	assert.Equal(t, 0, once.Score)
	assert.Equal(t, 64, once.PlayerX)
}

func TestDeterminism(t *testing.T) {
	g1 := newBaseline(t)
	g2 := newBaseline(t)

	for i := 0; i < 600; i++ {
		in := Input{Fire: i%7 == 0, Shield: i%50 == 0, Steer: core.Direction(i/30%3 - 1)}
		o1 := g1.Tick(in, tick)
		o2 := g2.Tick(in, tick)
		require.Equal(t, o1, o2, "tick %d", i)
		if o1 == PlayerDied {
			g1.Reset()
			g2.Reset()
		}
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}
