package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// Position is a pixel position in the play field
type Position struct {
	X int
	Y int
}

// Player is the placeholder player the in-game view draws.
// Nothing moves it yet.
type Player struct {
	ID       EntityID
	Position Position
	Moving   bool
}

// Obstacle is a placeholder hazard
type Obstacle struct {
	ID       EntityID
	Position Position
}

// StageCounter tracks the current stage number, starting at 1
type StageCounter struct {
	Stage int
}

// NewStageCounter returns a counter at stage 1
func NewStageCounter() StageCounter {
	return StageCounter{Stage: 1}
}

// Advance moves to the next stage and returns its number
func (c *StageCounter) Advance() int {
	c.Stage++
	return c.Stage
}

// World holds the in-game entities of one run
type World struct {
	Counter   StageCounter
	Player    Player
	Obstacles []Obstacle
	nextID    EntityID
}

// NewWorld creates a world with the player at spawn and one obstacle per
// position. Entity IDs start at 1 with the player.
func NewWorld(stage int, spawn Position, obstacles []Position) *World {
	if stage < 1 {
		stage = 1
	}
	w := &World{Counter: StageCounter{Stage: stage}}
	w.Player = Player{ID: w.newID(), Position: spawn}
	for _, pos := range obstacles {
		w.AddObstacle(pos)
	}
	return w
}

// AddObstacle places a new obstacle and returns it
func (w *World) AddObstacle(pos Position) Obstacle {
	o := Obstacle{ID: w.newID(), Position: pos}
	w.Obstacles = append(w.Obstacles, o)
	return o
}

// EntityCount returns the number of entities, player included
func (w *World) EntityCount() int {
	return 1 + len(w.Obstacles)
}

func (w *World) newID() EntityID {
	w.nextID++
	return w.nextID
}
