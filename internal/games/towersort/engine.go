// Package towersort implements the ring-sorting tower puzzle.
// Rings are stacked on pegs; a move transfers the contiguous top block of
// same-colored rings onto an empty peg or a peg with a matching top color.
// The goal is to sort every ring so that each non-empty peg holds a full,
// single-colored stack.
package towersort

import "github.com/vovakirdan/tui-puzzles/internal/core"

// Ring is a single colored ring. Identity is stable across moves and undo.
type Ring struct {
	ID    int
	Color uint8
}

// Config defines a tower-sort difficulty.
// The ring pool size is (Pegs-2)*Height, which must divide evenly by Colors.
// This is validated by tests at config-definition time, not at runtime.
type Config struct {
	Pegs   int `yaml:"pegs"`
	Height int `yaml:"height"`
	Colors int `yaml:"colors"`
}

// HistoryCap bounds the undo history. When full, the oldest snapshot
// is evicted on push.
const HistoryCap = 200

// MoveResult is the outcome tag of a Move call.
type MoveResult int

const (
	MoveInvalid MoveResult = iota // illegal move, state untouched
	MoveOK
	MoveWin
	MoveDeadlock
)

// String returns a human-readable name for the result.
func (r MoveResult) String() string {
	switch r {
	case MoveInvalid:
		return "invalid"
	case MoveOK:
		return "ok"
	case MoveWin:
		return "win"
	case MoveDeadlock:
		return "deadlock"
	default:
		return "unknown"
	}
}

// Engine holds the mutable puzzle state behind a narrow move/undo/hint API.
// All randomness comes from the injected RNG, so the same seed always
// produces the same deal.
type Engine struct {
	cfg     Config
	pegs    [][]Ring   // bottom -> top
	history [][][]Ring // deep-copied prior states, newest last
	moves   int
}

// NewEngine creates an engine with a fresh seeded deal.
func NewEngine(cfg Config, rng *core.RNG) *Engine {
	e := &Engine{cfg: cfg}
	e.deal(rng)
	return e
}

// deal builds the ring pool with colors assigned round-robin, shuffles it,
// and fills every peg except the last two to full height.
func (e *Engine) deal(rng *core.RNG) {
	poolSize := (e.cfg.Pegs - 2) * e.cfg.Height
	pool := make([]Ring, poolSize)
	for i := range pool {
		pool[i] = Ring{ID: i, Color: uint8(i % e.cfg.Colors)}
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	e.pegs = make([][]Ring, e.cfg.Pegs)
	next := 0
	for p := 0; p < e.cfg.Pegs-2; p++ {
		e.pegs[p] = make([]Ring, 0, e.cfg.Height)
		for len(e.pegs[p]) < e.cfg.Height {
			e.pegs[p] = append(e.pegs[p], pool[next])
			next++
		}
	}
	for p := e.cfg.Pegs - 2; p < e.cfg.Pegs; p++ {
		e.pegs[p] = make([]Ring, 0, e.cfg.Height)
	}

	e.history = nil
	e.moves = 0
}

// Config returns the difficulty configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// State returns a deep copy of the current peg stacks.
func (e *Engine) State() [][]Ring {
	return cloneState(e.pegs)
}

// HistoryLen returns the number of undoable snapshots.
func (e *Engine) HistoryLen() int {
	return len(e.history)
}

// MoveCount returns the number of applied moves minus undos.
func (e *Engine) MoveCount() int {
	return e.moves
}

// topBlockSize returns the length of the maximal same-colored run at the
// top of the peg, or 0 for an empty peg.
func topBlockSize(peg []Ring) int {
	n := len(peg)
	if n == 0 {
		return 0
	}
	color := peg[n-1].Color
	size := 1
	for i := n - 2; i >= 0 && peg[i].Color == color; i-- {
		size++
	}
	return size
}

// CanMove reports whether the top block of peg from can legally move to peg to.
// A move is legal iff the target is empty or its top color matches the source's
// top color, and the target has room for the whole block.
func (e *Engine) CanMove(from, to int) bool {
	if from == to || from < 0 || to < 0 || from >= len(e.pegs) || to >= len(e.pegs) {
		return false
	}

	src := e.pegs[from]
	if len(src) == 0 {
		return false
	}

	block := topBlockSize(src)
	dst := e.pegs[to]
	if len(dst) > 0 && dst[len(dst)-1].Color != src[len(src)-1].Color {
		return false
	}

	return e.cfg.Height-len(dst) >= block
}

// Move transfers the top same-color block from one peg to another.
// Illegal moves return MoveInvalid and never touch state or history.
// Terminal conditions are evaluated after the transfer: win first,
// then deadlock.
func (e *Engine) Move(from, to int) MoveResult {
	if !e.CanMove(from, to) {
		return MoveInvalid
	}

	e.pushHistory()

	block := topBlockSize(e.pegs[from])
	cut := len(e.pegs[from]) - block
	moved := e.pegs[from][cut:]
	e.pegs[to] = append(e.pegs[to], moved...)
	e.pegs[from] = e.pegs[from][:cut]
	e.moves++

	switch {
	case e.CheckWin():
		return MoveWin
	case e.IsDeadlocked():
		return MoveDeadlock
	default:
		return MoveOK
	}
}

// pushHistory snapshots the current state, evicting the oldest entry
// when the buffer is at capacity.
func (e *Engine) pushHistory() {
	snap := cloneState(e.pegs)
	if len(e.history) >= HistoryCap {
		copy(e.history, e.history[1:])
		e.history[len(e.history)-1] = snap
		return
	}
	e.history = append(e.history, snap)
}

// Undo restores the most recent snapshot. Returns false if there is
// nothing to undo. Redo is not supported.
func (e *Engine) Undo() bool {
	if len(e.history) == 0 {
		return false
	}

	last := len(e.history) - 1
	e.pegs = e.history[last]
	e.history = e.history[:last]
	if e.moves > 0 {
		e.moves--
	}
	return true
}

// Hint scans all ordered peg pairs (outer loop source, inner loop target)
// and returns the first legal move. ok is false when no move exists.
func (e *Engine) Hint() (from, to int, ok bool) {
	for f := 0; f < len(e.pegs); f++ {
		for t := 0; t < len(e.pegs); t++ {
			if f == t {
				continue
			}
			if e.CanMove(f, t) {
				return f, t, true
			}
		}
	}
	return 0, 0, false
}

// CheckWin reports whether the puzzle is solved: every non-empty peg is
// full and single-colored, and each color occupies exactly its share of pegs.
func (e *Engine) CheckWin() bool {
	pegsPerColor := (e.cfg.Pegs - 2) / e.cfg.Colors
	fullPegs := make(map[uint8]int)

	for _, peg := range e.pegs {
		if len(peg) == 0 {
			continue
		}
		if len(peg) != e.cfg.Height {
			return false
		}
		color := peg[0].Color
		for _, ring := range peg[1:] {
			if ring.Color != color {
				return false
			}
		}
		fullPegs[color]++
	}

	if len(fullPegs) != e.cfg.Colors {
		return false
	}
	for _, n := range fullPegs {
		if n != pegsPerColor {
			return false
		}
	}
	return true
}

// IsDeadlocked reports whether no legal move exists from the current state.
func (e *Engine) IsDeadlocked() bool {
	_, _, ok := e.Hint()
	return !ok
}

// cloneState deep-copies peg stacks, preserving ring identities.
func cloneState(pegs [][]Ring) [][]Ring {
	out := make([][]Ring, len(pegs))
	for i, peg := range pegs {
		out[i] = make([]Ring, len(peg))
		copy(out[i], peg)
	}
	return out
}
