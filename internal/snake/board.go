// Package snake holds the simulation state of one session: the snake body,
// its applied heading, the food cell and the score. It advances exactly one
// grid step per Step call and knows nothing about timers or terminals.
package snake

import (
	"errors"
	"fmt"
	"math/rand"
)

// Outcome is the result of a single Step.
type Outcome int

const (
	Idle      Outcome = iota // neutral heading, nothing moved
	Moved                    // head advanced, tail followed
	Grew                     // head advanced onto food, tail kept
	Collision                // next head left the board or hit the snake; session over
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Idle:
		return "idle"
	case Moved:
		return "moved"
	case Grew:
		return "grew"
	case Collision:
		return "collision"
	default:
		return "unknown"
	}
}

// Errors returned when a board is built from an explicit body or validated.
var (
	ErrEmptySnake  = errors.New("snake: empty snake")
	ErrOutOfBounds = errors.New("snake: segment out of bounds")
	ErrOverlap     = errors.New("snake: overlapping segments")
	ErrFoodOnSnake = errors.New("snake: food on snake")
	ErrBadTiles    = errors.New("snake: tile count must be positive")
)

// Board is the simulation state of a single session.
// It is not safe for concurrent use; the scheduler drives it from one goroutine.
type Board struct {
	tiles   int
	rng     *rand.Rand
	body    []Position // Head at index 0
	cells   []bool     // Occupancy, indexed y*tiles+x
	heading Heading    // Last applied heading
	food    Position
	hasFood bool
	score   int
}

// NewBoard creates a board with a one-segment snake at start, facing the given
// heading, and places the first food.
func NewBoard(tiles int, start Position, facing Heading, rng *rand.Rand) (*Board, error) {
	return NewBoardFrom(tiles, []Position{start}, facing, rng)
}

// NewBoardFrom creates a board with an arbitrary snake body (head first).
// The body is checked: it must be non-empty, in bounds and free of overlaps.
func NewBoardFrom(tiles int, body []Position, facing Heading, rng *rand.Rand) (*Board, error) {
	if tiles <= 0 {
		return nil, ErrBadTiles
	}
	if len(body) == 0 {
		return nil, ErrEmptySnake
	}
	if !facing.Valid() {
		return nil, fmt.Errorf("snake: invalid facing %v", facing)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	b := &Board{
		tiles:   tiles,
		rng:     rng,
		body:    make([]Position, 0, len(body)+1),
		cells:   make([]bool, tiles*tiles),
		heading: facing,
	}
	for _, p := range body {
		if !b.InBounds(p) {
			return nil, fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, p, tiles, tiles)
		}
		if b.Occupied(p) {
			return nil, fmt.Errorf("%w: %v", ErrOverlap, p)
		}
		b.cells[b.index(p)] = true
		b.body = append(b.body, p)
	}

	b.PlaceFood()
	return b, nil
}

// Tiles returns the board edge length in cells.
func (b *Board) Tiles() int {
	return b.tiles
}

// Head returns the head position.
func (b *Board) Head() Position {
	return b.body[0]
}

// Len returns the snake length.
func (b *Board) Len() int {
	return len(b.body)
}

// Body returns a copy of the snake, head first.
func (b *Board) Body() []Position {
	out := make([]Position, len(b.body))
	copy(out, b.body)
	return out
}

// Heading returns the last applied heading.
func (b *Board) Heading() Heading {
	return b.heading
}

// Food returns the food cell and whether any food is on the board.
func (b *Board) Food() (Position, bool) {
	return b.food, b.hasFood
}

// Score returns the number of food eaten.
func (b *Board) Score() int {
	return b.score
}

// Full reports whether the snake covers every cell.
func (b *Board) Full() bool {
	return len(b.body) == b.tiles*b.tiles
}

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Position) bool {
	return p.X >= 0 && p.X < b.tiles && p.Y >= 0 && p.Y < b.tiles
}

// Occupied reports whether a snake segment covers p.
func (b *Board) Occupied(p Position) bool {
	if !b.InBounds(p) {
		return false
	}
	return b.cells[b.index(p)]
}

func (b *Board) index(p Position) int {
	return p.Y*b.tiles + p.X
}

// Step advances the snake one cell along h.
//
// A neutral heading is a no-op. Otherwise the next head is checked against the
// board edges and then against every current segment, tail included. On food
// the snake keeps its tail, the score rises and new food is placed.
func (b *Board) Step(h Heading) Outcome {
	if h.IsNeutral() {
		return Idle
	}

	next := b.Head().Add(h)
	if !b.InBounds(next) || b.Occupied(next) {
		return Collision
	}

	b.heading = h
	b.body = append(b.body, Position{})
	copy(b.body[1:], b.body)
	b.body[0] = next
	b.cells[b.index(next)] = true

	if b.hasFood && next == b.food {
		b.score++
		b.PlaceFood()
		return Grew
	}

	tail := b.body[len(b.body)-1]
	b.body = b.body[:len(b.body)-1]
	b.cells[b.index(tail)] = false
	return Moved
}

// PlaceFood puts food on a uniformly chosen free cell.
// It samples from the free cells directly, so it terminates however full the
// board is. Returns false, leaving the board without food, when no cell is free.
func (b *Board) PlaceFood() bool {
	free := b.FreeCells()
	if len(free) == 0 {
		b.hasFood = false
		b.food = Position{X: -1, Y: -1}
		return false
	}
	b.food = free[b.rng.Intn(len(free))]
	b.hasFood = true
	return true
}

// FreeCells lists every cell not covered by the snake, row by row.
func (b *Board) FreeCells() []Position {
	free := make([]Position, 0, len(b.cells)-len(b.body))
	for y := 0; y < b.tiles; y++ {
		for x := 0; x < b.tiles; x++ {
			if !b.cells[y*b.tiles+x] {
				free = append(free, Position{X: x, Y: y})
			}
		}
	}
	return free
}

// Validate checks every board invariant and returns the first violation.
func (b *Board) Validate() error {
	if len(b.body) == 0 {
		return ErrEmptySnake
	}
	seen := make(map[Position]bool, len(b.body))
	for _, p := range b.body {
		if !b.InBounds(p) {
			return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
		if seen[p] {
			return fmt.Errorf("%w: %v", ErrOverlap, p)
		}
		seen[p] = true
	}

	occupied := 0
	for _, c := range b.cells {
		if c {
			occupied++
		}
	}
	if occupied != len(b.body) {
		return fmt.Errorf("snake: occupancy %d does not match length %d", occupied, len(b.body))
	}

	if b.hasFood && seen[b.food] {
		return fmt.Errorf("%w: %v", ErrFoodOnSnake, b.food)
	}
	return nil
}

// Frame is a read-only copy of what a render sink needs.
type Frame struct {
	Tiles   int
	Snake   []Position // Head first
	Food    Position
	HasFood bool
	Score   int
	Heading Heading
}

// Frame returns a copy of the drawable state.
func (b *Board) Frame() Frame {
	return Frame{
		Tiles:   b.tiles,
		Snake:   b.Body(),
		Food:    b.food,
		HasFood: b.hasFood,
		Score:   b.score,
		Heading: b.heading,
	}
}
