package robododge

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying GameStateType = "playing"
	StateDead    GameStateType = "dead"
)

// Snapshot captures the complete game state for rendering and determinism
// checks. Pools are copied by value.
type Snapshot struct {
	Tick        uint64
	FieldWidth  int
	FieldHeight int
	PlayerX     int
	PlayerRow   int
	PlayerWidth int
	Bullets     [BulletCapacity]Bullet
	Enemies     [EnemyCapacity]Enemy
	Score       int

	ShieldEnabled bool
	ShieldActive  bool
	Charge        int
	ChargeFull    int

	State GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.over {
		state = StateDead
	}
	return Snapshot{
		Tick:          g.tick,
		FieldWidth:    g.cfg.FieldWidth,
		FieldHeight:   g.cfg.FieldHeight,
		PlayerX:       g.playerX,
		PlayerRow:     g.cfg.PlayerRow,
		PlayerWidth:   g.cfg.PlayerWidth,
		Bullets:       g.bullets,
		Enemies:       g.enemies,
		Score:         g.score,
		ShieldEnabled: g.cfg.ShieldEnabled,
		ShieldActive:  g.shieldActive,
		Charge:        g.charge,
		ChargeFull:    g.cfg.ShieldFull,
		State:         state,
	}
}
