package snake

// Snapshot captures the board state for determinism testing and logging.
type Snapshot struct {
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Heading  Heading
	FoodX    int
	FoodY    int
	HasFood  bool
}

// Snapshot returns the current board snapshot.
func (b *Board) Snapshot() Snapshot {
	head := b.Head()
	return Snapshot{
		Score:    b.score,
		SnakeLen: len(b.body),
		HeadX:    head.X,
		HeadY:    head.Y,
		Heading:  b.heading,
		FoodX:    b.food.X,
		FoodY:    b.food.Y,
		HasFood:  b.hasFood,
	}
}
