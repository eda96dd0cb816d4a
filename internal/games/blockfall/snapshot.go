package blockfall

// Snapshot captures the observable game state for determinism checks.
type Snapshot struct {
	Tick      uint64
	Placed    int
	NextIdx   int
	ActiveID  int
	ActiveRow int
	ActiveCol int
	ActiveRot int
	Score     int
	Won       bool
	GameOver  bool
	OrderIDs  []int
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	ids := make([]int, len(g.order))
	for i, p := range g.order {
		ids[i] = p.ID
	}
	s := Snapshot{
		Tick:     g.tick,
		Placed:   g.placed,
		NextIdx:  g.nextIdx,
		ActiveID: -1,
		Score:    g.score,
		Won:      g.won,
		GameOver: g.gameOver,
		OrderIDs: ids,
	}
	if g.hasActive {
		s.ActiveID = g.active.Piece.ID
		s.ActiveRow = g.active.Row
		s.ActiveCol = g.active.Col
		s.ActiveRot = g.active.Rot
	}
	return s
}
