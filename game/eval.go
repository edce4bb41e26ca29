package game

// EvaluateMaterial scores the game by the difference between the computer's
// and the human's store.
func EvaluateMaterial(g *Game) int {
	computer := g.State.Store(g.Sides.Computer)
	human := g.State.Store(g.Sides.Human)
	return computer - human
}

// EvaluateStoresAndPits counts the seeds still in each side's pits as well as
// its store. Remaining seeds end up in their owner's store once the game is
// over, so this estimates the final margin more closely mid-game.
func EvaluateStoresAndPits(g *Game) int {
	return EvaluateMaterial(g) + pitSeeds(&g.State, g.Sides.Computer) - pitSeeds(&g.State, g.Sides.Human)
}

func pitSeeds(b *Board, side Side) int {
	seeds := 0
	for _, pit := range side.Pits() {
		seeds += b[pit]
	}
	return seeds
}
