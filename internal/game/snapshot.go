package game

// Snapshot captures the session state for determinism testing and debugging.
type Snapshot struct {
	Tick     uint64
	State    State
	Reason   EndReason
	Score    int
	SnakeLen int
	HeadRow  int
	HeadCol  int
	Heading  string
	FruitRow int // -1 when the board has no fruit
	FruitCol int
	HasFruit bool
	Eaten    int
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	snap := Snapshot{
		Tick:     g.tick,
		State:    g.state,
		Reason:   g.reason,
		Score:    g.Score(),
		SnakeLen: g.snake.Len(),
		HeadRow:  head.Row,
		HeadCol:  head.Col,
		Heading:  g.heading.String(),
		FruitRow: -1,
		FruitCol: -1,
		Eaten:    g.eaten,
	}

	if pos, ok := g.fruit.Position(); ok {
		snap.FruitRow = pos.Row
		snap.FruitCol = pos.Col
		snap.HasFruit = true
	}
	return snap
}
