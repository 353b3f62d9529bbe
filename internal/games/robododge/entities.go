package robododge

// Bullet is one slot of the bullet pool. Bullets travel straight up.
type Bullet struct {
	X, Y   int
	Active bool
}

// Enemy is one slot of the enemy pool. Enemies fall at a fixed speed.
type Enemy struct {
	X, Y   int
	Speed  int
	Active bool
}

// ActiveBullets counts the occupied bullet slots.
func (g *Game) ActiveBullets() int {
	n := 0
	for _, b := range g.bullets {
		if b.Active {
			n++
		}
	}
	return n
}

// ActiveEnemies counts the occupied enemy slots.
func (g *Game) ActiveEnemies() int {
	n := 0
	for _, e := range g.enemies {
		if e.Active {
			n++
		}
	}
	return n
}
