package mergedrop

import "github.com/vovakirdan/tui-puzzles/internal/core"

// mergeAction records a collision-detected merge for the next drain.
type mergeAction struct {
	aID   int
	bID   int
	level int
	mid   core.Vec2
}

// Controller layers the merge rule over the simulation. Collisions only
// flag bodies and enqueue actions; the queue is drained exactly once per
// tick, after the simulation step, so bodies are never mutated inside the
// collision iteration.
type Controller struct {
	world *World

	queue []mergeAction

	score    int
	gameOver bool

	dangerY     float64
	dangerDelay int
	aboveTicks  map[int]int
}

// NewController creates a controller over a world. Balls staying above
// dangerY for dangerDelayTicks consecutive ticks end the game.
func NewController(world *World, dangerY float64, dangerDelayTicks int) *Controller {
	return &Controller{
		world:       world,
		dangerY:     dangerY,
		dangerDelay: dangerDelayTicks,
		aboveTicks:  make(map[int]int),
	}
}

// HandleCollision is the world's collision callback. A same-level pair
// below the top rung is flagged merging and queued; nothing is mutated in
// the world here.
func (c *Controller) HandleCollision(a, b *Body) {
	if a.Merging || b.Merging {
		return
	}
	if a.Level != b.Level || a.Level >= MaxLevel() {
		return
	}

	a.Merging = true
	b.Merging = true
	c.queue = append(c.queue, mergeAction{
		aID:   a.ID,
		bID:   b.ID,
		level: a.Level,
		mid:   a.Pos.Midpoint(b.Pos),
	})
}

// Tick advances the simulation, then applies queued merges, then updates
// the above-line timers.
func (c *Controller) Tick() {
	c.world.Step(c.HandleCollision)
	c.drainMerges()
	c.checkDanger()
}

// drainMerges replaces each still-present flagged pair with one ball of the
// next level at the recorded midpoint and scores its point value.
func (c *Controller) drainMerges() {
	pending := c.queue
	c.queue = nil

	for _, m := range pending {
		a := c.world.Find(m.aID)
		b := c.world.Find(m.bID)
		if a == nil || b == nil {
			if a != nil {
				a.Merging = false
			}
			if b != nil {
				b.Merging = false
			}
			continue
		}

		c.world.Remove(m.aID)
		c.world.Remove(m.bID)
		delete(c.aboveTicks, m.aID)
		delete(c.aboveTicks, m.bID)

		c.world.Spawn(m.level+1, m.mid)
		c.score += Ladder[m.level+1].Points
	}
}

// checkDanger tracks a continuous above-line tick count per ball; exceeding
// the delay is a permanent game over.
func (c *Controller) checkDanger() {
	if c.gameOver {
		return
	}

	above := make(map[int]bool)
	for _, b := range c.world.Bodies() {
		if b.Pos.Y-b.Radius < c.dangerY {
			above[b.ID] = true
			c.aboveTicks[b.ID]++
			if c.aboveTicks[b.ID] >= c.dangerDelay {
				c.gameOver = true
			}
		}
	}
	for id := range c.aboveTicks {
		if !above[id] {
			delete(c.aboveTicks, id)
		}
	}
}

// Score returns the accumulated score. It never decreases.
func (c *Controller) Score() int {
	return c.score
}

// GameOver reports whether the danger timeout has fired.
func (c *Controller) GameOver() bool {
	return c.gameOver
}

// PendingMerges returns the number of queued, not yet applied merges.
func (c *Controller) PendingMerges() int {
	return len(c.queue)
}
