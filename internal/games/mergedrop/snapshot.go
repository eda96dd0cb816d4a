package mergedrop

// Snapshot captures the observable game state for determinism checks.
type Snapshot struct {
	Tick         uint64
	Score        int
	Bodies       int
	Drops        int
	DropX        float64
	CurrentLevel int
	NextLevel    int
	Cooldown     int
	GameOver     bool
	Levels       []int
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	levels := make([]int, 0, g.world.Count())
	for _, b := range g.world.Bodies() {
		levels = append(levels, b.Level)
	}
	return Snapshot{
		Tick:         g.tick,
		Score:        g.ctrl.Score(),
		Bodies:       g.world.Count(),
		Drops:        g.drops,
		DropX:        g.dropX,
		CurrentLevel: g.currentLevel,
		NextLevel:    g.nextLevel,
		Cooldown:     g.cooldown,
		GameOver:     g.ctrl.GameOver(),
		Levels:       levels,
	}
}
