package spacegarbage

import "github.com/vovakirdan/space-garbage/internal/core"

// Obstacle is the current bounding box of one falling piece of debris.
// It is registered by its fall task right before the task yields and
// removed right after it resumes, so the set only ever holds one box per
// piece of debris.
type Obstacle struct {
	ID        int
	Box       core.Rect
	Collision bool // Set by a projectile; never reset
}

// MarkCollision flags the obstacle as hit.
func (o *Obstacle) MarkCollision() {
	o.Collision = true
}

// ObstacleSet holds the obstacles currently in flight, in registration order.
type ObstacleSet struct {
	items  []*Obstacle
	nextID int
}

// NewObstacleSet creates an empty set.
func NewObstacleSet() *ObstacleSet {
	return &ObstacleSet{items: make([]*Obstacle, 0, 16)}
}

// Register adds a new obstacle for the given box and returns it.
func (s *ObstacleSet) Register(box core.Rect) *Obstacle {
	s.nextID++
	o := &Obstacle{ID: s.nextID, Box: box}
	s.items = append(s.items, o)
	return o
}

// Remove drops an obstacle. Removing an absent obstacle is a no-op.
func (s *ObstacleSet) Remove(o *Obstacle) {
	for i, item := range s.items {
		if item == o {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Hit returns the first obstacle intersecting box that has not been hit
// yet, or nil.
func (s *ObstacleSet) Hit(box core.Rect) *Obstacle {
	for _, o := range s.items {
		if o.Collision {
			continue
		}
		if o.Box.Intersects(box) {
			return o
		}
	}
	return nil
}

// Len returns the number of obstacles in flight.
func (s *ObstacleSet) Len() int {
	return len(s.items)
}

// Clear removes every obstacle.
func (s *ObstacleSet) Clear() {
	for i := range s.items {
		s.items[i] = nil
	}
	s.items = s.items[:0]
}

// Boxes returns a snapshot of the registered boxes.
func (s *ObstacleSet) Boxes() []core.Rect {
	boxes := make([]core.Rect, len(s.items))
	for i, o := range s.items {
		boxes[i] = o.Box
	}
	return boxes
}
