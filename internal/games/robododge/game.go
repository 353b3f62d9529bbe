// Package robododge implements the RoboDodge shooter: the player slides along
// the bottom row, fires upward and dodges enemies falling from the top.
// All entities live in fixed-capacity pools; the engine never allocates
// while ticking.
package robododge

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/pocket-console/internal/config"
	"github.com/vovakirdan/pocket-console/internal/core"
)

// Pool capacities.
const (
	BulletCapacity = 5
	EnemyCapacity  = 6
)

// Outcome is the result of one tick.
type Outcome uint8

const (
	Continue Outcome = iota
	PlayerDied
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	if o == PlayerDied {
		return "PlayerDied"
	}
	return "Continue"
}

// Input carries the player's intents for one tick.
type Input struct {
	Step   core.Direction // Discrete move: one PlayerStep per press
	Steer  core.Direction // Stick level: PlayerSpeed every tick while deflected
	Fire   bool
	Shield bool
}

// Game holds the complete RoboDodge state.
type Game struct {
	cfg config.RoboDodgeConfig
	rng *rand.Rand

	tick       uint64
	playerX    int
	bullets    [BulletCapacity]Bullet
	enemies    [EnemyCapacity]Enemy
	score      int
	sinceSpawn time.Duration

	charge       int
	shieldActive bool
	over         bool
}

// New creates a game with the given tuning and random seed.
// The seed drives enemy placement; it is not rewound by Reset.
func New(cfg config.RoboDodgeConfig, seed int64) *Game {
	g := &Game{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	g.Reset()
	return g
}

// Reset clears both pools, centers the player and zeroes score, spawn timer
// and shield.
func (g *Game) Reset() {
	g.tick = 0
	g.playerX = g.cfg.FieldWidth / 2
	g.bullets = [BulletCapacity]Bullet{}
	g.enemies = [EnemyCapacity]Enemy{}
	g.score = 0
	g.sinceSpawn = 0
	g.charge = 0
	g.shieldActive = false
	g.over = false
}

// Tick advances the game by one loop iteration of length dt.
// After PlayerDied has been reported the game is frozen until Reset.
func (g *Game) Tick(in Input, dt time.Duration) Outcome {
	if g.over {
		return PlayerDied
	}
	g.tick++

	g.movePlayer(in)
	if in.Fire {
		g.Fire()
	}
	if in.Shield {
		g.ActivateShield()
	}
	g.advanceBullets()

	g.sinceSpawn += dt
	if g.sinceSpawn > g.cfg.SpawnInterval() {
		g.spawnEnemy()
		g.sinceSpawn = 0
	}
	g.advanceEnemies()

	g.resolveHits()
	if g.resolvePlayer() {
		g.over = true
		return PlayerDied
	}
	return Continue
}

// Fire launches a bullet from the player's position into the first free
// slot. A full pool rejects the request and changes nothing.
func (g *Game) Fire() core.Result {
	if g.over {
		return core.Rejected
	}
	for i := range g.bullets {
		b := &g.bullets[i]
		if b.Active {
			continue
		}
		*b = Bullet{X: g.playerX, Y: g.cfg.BulletSpawnY, Active: true}
		return core.Accepted
	}
	return core.Rejected
}

// ActivateShield raises the shield when the charge is full, consuming it.
func (g *Game) ActivateShield() core.Result {
	if g.over || !g.cfg.ShieldEnabled || g.shieldActive || g.charge < g.cfg.ShieldFull {
		return core.Rejected
	}
	g.charge = 0
	g.shieldActive = true
	return core.Accepted
}

// Score returns the number of enemies shot since the last Reset.
func (g *Game) Score() int {
	return g.score
}

// Over reports whether the player has died.
func (g *Game) Over() bool {
	return g.over
}

func (g *Game) movePlayer(in Input) {
	dx := int(in.Step)*g.cfg.PlayerStep + int(in.Steer)*g.cfg.PlayerSpeed
	if dx == 0 {
		return
	}
	half := g.cfg.PlayerWidth / 2
	g.playerX = core.Clamp(g.playerX+dx, half, g.cfg.FieldWidth-half)
}

func (g *Game) advanceBullets() {
	for i := range g.bullets {
		b := &g.bullets[i]
		if !b.Active {
			continue
		}
		b.Y -= g.cfg.BulletSpeed
		if b.Y < 0 {
			b.Active = false
		}
	}
}

// spawnEnemy drops one enemy into the first free slot. A full pool skips the
// spawn without consuming randomness.
func (g *Game) spawnEnemy() {
	for i := range g.enemies {
		e := &g.enemies[i]
		if e.Active {
			continue
		}
		span := g.cfg.FieldWidth - 2*g.cfg.SpawnMargin
		speed := g.cfg.EnemySpeedMin
		x := g.cfg.SpawnMargin + g.rng.Intn(span)
		if spread := g.cfg.EnemySpeedMax - g.cfg.EnemySpeedMin; spread > 0 {
			speed += g.rng.Intn(spread + 1)
		}
		*e = Enemy{X: x, Y: 0, Speed: speed, Active: true}
		return
	}
}

func (g *Game) advanceEnemies() {
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Active {
			continue
		}
		e.Y += e.Speed
		if e.Y > g.cfg.FieldHeight {
			e.Active = false
		}
	}
}

// resolveHits pairs every active enemy with every active bullet. Flags are
// re-checked before each comparison so a destroyed entity is never matched
// twice in the same tick.
func (g *Game) resolveHits() {
	for i := range g.enemies {
		e := &g.enemies[i]
		for j := range g.bullets {
			if !e.Active {
				break
			}
			b := &g.bullets[j]
			if !b.Active || !core.Near(e.X, e.Y, b.X, b.Y, g.cfg.HitDistance) {
				continue
			}
			e.Active = false
			b.Active = false
			g.score++
			if g.cfg.ShieldEnabled && g.charge < g.cfg.ShieldFull {
				g.charge++
			}
		}
	}
}

// resolvePlayer reports whether an enemy reached the player. A raised shield
// absorbs one enemy and drops.
func (g *Game) resolvePlayer() bool {
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Active || !core.Near(e.X, e.Y, g.playerX, g.cfg.PlayerRow, g.cfg.HitDistance) {
			continue
		}
		if g.shieldActive {
			g.shieldActive = false
			e.Active = false
			continue
		}
		return true
	}
	return false
}
