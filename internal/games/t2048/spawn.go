package t2048

// Spawn4Probability is the chance that a spawned tile is a 4 instead of a 2.
const Spawn4Probability = 0.1

// RandomSource is the randomness the engine needs. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// SpawnRandomTile places a new tile in a uniformly chosen empty cell.
// The value is 2 with probability 0.9, otherwise 4. The new tile takes a fresh
// ID from ids. On a full board it returns the board unchanged and ok=false.
func SpawnRandomTile(board Board, rng RandomSource, ids *TileIDs) (next Board, at Pos, ok bool) {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return board, Pos{}, false
	}

	at = empty[rng.Intn(len(empty))]

	value := 2
	if rng.Float64() < Spawn4Probability {
		value = 4
	}

	next = board
	next[at.Row][at.Col] = Tile{ID: ids.Next(), Value: value}
	return next, at, true
}
