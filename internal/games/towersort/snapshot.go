package towersort

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Moves      int
	HistoryLen int
	Cursor     int
	Source     int
	Score      int
	Won        bool
	GameOver   bool
	Pegs       [][]Ring
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Moves:      g.engine.MoveCount(),
		HistoryLen: g.engine.HistoryLen(),
		Cursor:     g.cursor,
		Source:     g.source,
		Score:      g.score,
		Won:        g.won,
		GameOver:   g.gameOver,
		Pegs:       g.engine.State(),
	}
}
