package mergedrop

import (
	"github.com/vovakirdan/tui-puzzles/internal/config"
	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// Body is one rigid circle in the simulation.
type Body struct {
	ID      int
	Pos     core.Vec2
	Vel     core.Vec2
	Radius  float64
	Level   int
	Merging bool // Claimed by a pending merge; skipped by collision pairing
}

// World is a minimal rigid-circle simulation: gravity, velocity damping,
// wall and floor bounces, and pairwise overlap resolution. Collision pairs
// are reported through a callback; the callback must not mutate the body
// set while Step is iterating.
type World struct {
	width  float64
	height float64

	gravity     float64
	damping     float64
	restitution float64

	bodies []*Body
	nextID int
}

// NewWorld creates an empty world of the given size.
func NewWorld(width, height float64, phys config.MergePhysics) *World {
	return &World{
		width:       width,
		height:      height,
		gravity:     phys.Gravity,
		damping:     phys.Damping,
		restitution: phys.Restitution,
	}
}

// Spawn adds a ball of the given ladder level at a position.
func (w *World) Spawn(level int, pos core.Vec2) *Body {
	b := &Body{
		ID:     w.nextID,
		Pos:    pos,
		Radius: Ladder[level].Radius,
		Level:  level,
	}
	w.nextID++
	w.bodies = append(w.bodies, b)
	return b
}

// Remove deletes a body by ID. Returns false when it is already gone.
func (w *World) Remove(id int) bool {
	for i, b := range w.bodies {
		if b.ID == id {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the body with the given ID, or nil.
func (w *World) Find(id int) *Body {
	for _, b := range w.bodies {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// Bodies returns the live body slice. Callers must not hold it across Step.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Count returns the number of live bodies.
func (w *World) Count() int {
	return len(w.bodies)
}

// Step advances the simulation one tick: integrate, bounce off the
// container, separate overlapping pairs, and report each overlapping pair
// to onCollision exactly once per tick.
func (w *World) Step(onCollision func(a, b *Body)) {
	for _, b := range w.bodies {
		b.Vel.Y += w.gravity
		b.Vel = b.Vel.Scale(w.damping)
		b.Pos = b.Pos.Add(b.Vel)
		w.collideWalls(b)
	}

	for i := 0; i < len(w.bodies); i++ {
		for j := i + 1; j < len(w.bodies); j++ {
			a, b := w.bodies[i], w.bodies[j]
			if w.resolveOverlap(a, b) && onCollision != nil {
				onCollision(a, b)
			}
		}
	}
}

// collideWalls clamps a body inside the container, reflecting velocity with
// the restitution factor.
func (w *World) collideWalls(b *Body) {
	if b.Pos.X-b.Radius < 0 {
		b.Pos.X = b.Radius
		b.Vel.X = -b.Vel.X * w.restitution
	}
	if b.Pos.X+b.Radius > w.width {
		b.Pos.X = w.width - b.Radius
		b.Vel.X = -b.Vel.X * w.restitution
	}
	if b.Pos.Y+b.Radius > w.height {
		b.Pos.Y = w.height - b.Radius
		b.Vel.Y = -b.Vel.Y * w.restitution
	}
	if b.Pos.Y-b.Radius < 0 {
		b.Pos.Y = b.Radius
		if b.Vel.Y < 0 {
			b.Vel.Y = 0
		}
	}
}

// resolveOverlap separates two overlapping circles along their center line
// and exchanges a simple restitution impulse. Returns true when the pair
// was overlapping.
func (w *World) resolveOverlap(a, b *Body) bool {
	delta := b.Pos.Sub(a.Pos)
	dist := delta.Len()
	minDist := a.Radius + b.Radius
	if dist >= minDist {
		return false
	}

	// Coincident centers: nudge apart deterministically.
	var normal core.Vec2
	if dist == 0 {
		normal = core.Vec2{X: 1, Y: 0}
		dist = minDist / 2
	} else {
		normal = delta.Scale(1 / dist)
	}

	overlap := minDist - dist
	a.Pos = a.Pos.Sub(normal.Scale(overlap / 2))
	b.Pos = b.Pos.Add(normal.Scale(overlap / 2))

	relVel := (b.Vel.X-a.Vel.X)*normal.X + (b.Vel.Y-a.Vel.Y)*normal.Y
	if relVel < 0 {
		impulse := normal.Scale(relVel * (1 + w.restitution) / 2)
		a.Vel = a.Vel.Add(impulse)
		b.Vel = b.Vel.Sub(impulse)
	}
	return true
}
