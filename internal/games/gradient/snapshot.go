package gradient

// Snapshot captures the observable game state for determinism checks.
type Snapshot struct {
	Tick      uint64
	Level     int
	CursorRow int
	CursorCol int
	Selected  int
	Swaps     int
	Hints     int
	Score     int
	Won       bool
	GameOver  bool
	TileIDs   []int
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	ids := make([]int, len(g.tiles))
	for i, t := range g.tiles {
		ids[i] = t.ID
	}
	return Snapshot{
		Tick:      g.tick,
		Level:     g.level,
		CursorRow: g.cursorRow,
		CursorCol: g.cursorCol,
		Selected:  g.selected,
		Swaps:     g.swaps,
		Hints:     g.hints,
		Score:     g.score,
		Won:       g.won,
		GameOver:  g.gameOver,
		TileIDs:   ids,
	}
}
