package t2048

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRandom returns the same answers forever and counts calls.
type fixedRandom struct {
	intn  int
	float float64
	calls int
}

func (f *fixedRandom) Intn(n int) int {
	f.calls++
	return f.intn % n
}

func (f *fixedRandom) Float64() float64 {
	f.calls++
	return f.float
}

// randomBoard fills roughly density of the cells with small powers of two.
func randomBoard(rng *rand.Rand, density float64, maxExp int) Board {
	var values [BoardSize][BoardSize]int
	for r := range BoardSize {
		for c := range BoardSize {
			if rng.Float64() < density {
				values[r][c] = 1 << (1 + rng.Intn(maxExp))
			}
		}
	}
	var ids TileIDs
	return NewBoardFromValues(values, &ids)
}

func mirrorRows(b Board) Board {
	var out Board
	for r := range BoardSize {
		for c := range BoardSize {
			out[r][BoardSize-1-c] = b[r][c]
		}
	}
	return out
}

func mirrorCols(b Board) Board {
	var out Board
	for r := range BoardSize {
		out[BoardSize-1-r] = b[r]
	}
	return out
}

func checkerboard() Board {
	return boardOf([BoardSize][BoardSize]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
}

func TestEngineReset(t *testing.T) {
	e := NewEngine(rand.New(rand.NewSource(1)))
	e.Move(DirDown)
	e.Move(DirRight)

	e.Reset()

	b := e.Board()
	assert.Equal(t, Tile{ID: 0, Value: 2}, b[0][0])
	assert.Equal(t, Tile{ID: 1, Value: 2}, b[0][1])
	assert.Equal(t, 2, b.TileCount())
	assert.Zero(t, e.Score())
	assert.False(t, e.Terminal())
}

func TestEngineEndToEnd(t *testing.T) {
	e := NewEngine(rand.New(rand.NewSource(7)))

	turn := e.Move(DirLeft)

	require.True(t, turn.Accepted)
	assert.Equal(t, 4, turn.ScoreDelta)
	assert.Equal(t, 4, e.Score())
	assert.False(t, turn.Terminal)

	b := e.Board()
	assert.Equal(t, Tile{ID: 0, Value: 4}, b[0][0], "merged tile keeps the leading ID")
	assert.Equal(t, 2, b.TileCount(), "one merged tile plus one spawned tile")

	spawned := b.At(turn.Spawned)
	assert.Contains(t, []int{2, 4}, spawned.Value)
	assert.Equal(t, uint64(2), spawned.ID)
	assert.Equal(t, turn.SpawnedID, spawned.ID)
	assert.NotEqual(t, Pos{Row: 0, Col: 0}, turn.Spawned)
}

func TestEngineNoOpMove(t *testing.T) {
	rng := &fixedRandom{float: 0.5}
	e := NewEngine(rng)
	before := e.Board()

	// Both starting tiles already sit on the top edge.
	turn := e.Move(DirUp)

	assert.False(t, turn.Accepted)
	assert.Equal(t, before, e.Board())
	assert.Zero(t, e.Score())
	assert.False(t, e.Terminal())
	assert.Zero(t, rng.calls, "no-op moves must not consume randomness")
}

func TestEngineReachesTerminalAndRejectsMoves(t *testing.T) {
	e := NewEngine(&fixedRandom{float: 0.5})
	e.board = boardOf([BoardSize][BoardSize]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 0, 4},
	})
	e.ids.next = 15

	turn := e.Move(DirLeft)
	require.True(t, turn.Accepted)
	assert.Equal(t, Pos{Row: 3, Col: 3}, turn.Spawned)
	assert.True(t, turn.Terminal)
	assert.True(t, e.Terminal())
	assert.Equal(t, checkerboard().Values(), e.Board().Values())

	before := e.Board()
	for _, dir := range Directions {
		turn = e.Move(dir)
		assert.False(t, turn.Accepted, "terminal game must reject %s", dir)
		assert.True(t, turn.Terminal)
	}
	assert.Equal(t, before, e.Board())

	e.Reset()
	assert.False(t, e.Terminal(), "reset clears the terminal flag")
}

func TestTerminalCheckerboard(t *testing.T) {
	b := checkerboard()
	assert.True(t, IsTerminal(b))

	b[0][1] = Tile{ID: 99, Value: 2}
	assert.False(t, IsTerminal(b), "one equal adjacent pair makes the board playable")

	b = checkerboard()
	b[1][0] = Tile{ID: 99, Value: 2}
	assert.False(t, IsTerminal(b), "vertical pairs count too")

	b = checkerboard()
	b[2][2] = Tile{}
	assert.False(t, IsTerminal(b), "a board with an empty cell is never terminal")
}

func TestTerminalMatchesNoChangingMove(t *testing.T) {
	rng := rand.New(rand.NewSource(2048))
	terminals := 0

	for range 2000 {
		// About one full board in ten over eleven values has no equal neighbours.
		b := randomBoard(rng, 1.0, 11)
		if rng.Intn(4) == 0 {
			b = randomBoard(rng, 0.8, 3)
		}

		anyChange := false
		for _, dir := range Directions {
			if _, _, changed := ApplyMove(b, dir); changed {
				anyChange = true
			}
		}

		if IsTerminal(b) {
			terminals++
		}
		require.Equal(t, !anyChange, IsTerminal(b), "board:\n%s", b)
	}

	assert.Positive(t, terminals, "sample should contain terminal boards")
}

func TestMoveConservesTileSum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for range 500 {
		b := randomBoard(rng, 0.6, 6)
		for _, dir := range Directions {
			res := Slide(b, dir)
			if !res.Changed {
				assert.Zero(t, res.Score)
				continue
			}

			require.Equal(t, b.Sum(), res.Board.Sum(), "merging conserves the tile sum")

			merged := make(map[Pos]bool)
			for _, m := range res.Moves {
				if m.Merged {
					merged[m.To] = true
				}
			}
			delta := 0
			for p := range merged {
				delta += res.Board.At(p).Value
			}
			require.Equal(t, delta, res.Score, "score counts each merge result once")
			require.Equal(t, b.TileCount()-len(merged), res.Board.TileCount())
			require.NoError(t, res.Board.Validate())
		}
	}
}

func TestDirectionalSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for range 500 {
		b := randomBoard(rng, 0.5, 4)

		right, rightScore, _ := ApplyMove(b, DirRight)
		left, leftScore, _ := ApplyMove(mirrorRows(b), DirLeft)
		require.Equal(t, right.Values(), mirrorRows(left).Values())
		require.Equal(t, rightScore, leftScore)

		down, downScore, _ := ApplyMove(b, DirDown)
		up, upScore, _ := ApplyMove(mirrorCols(b), DirUp)
		require.Equal(t, down.Values(), mirrorCols(up).Values())
		require.Equal(t, downScore, upScore)
	}
}

func TestSingleMergePerLine(t *testing.T) {
	b := boardOf([BoardSize][BoardSize]int{{2, 2, 2, 0}})

	got, score, changed := ApplyMove(b, DirLeft)

	assert.True(t, changed)
	assert.Equal(t, 4, score)
	assert.Equal(t, [BoardSize]int{4, 2, 0, 0}, got.Values()[0])
}

func TestSpawnBias(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	var ids TileIDs
	counts := map[int]int{}

	const trials = 20000
	for range trials {
		b, at, ok := SpawnRandomTile(Board{}, rng, &ids)
		require.True(t, ok)
		counts[b.At(at).Value]++
	}

	assert.Len(t, counts, 2, "only 2s and 4s spawn")
	ratio := float64(counts[4]) / trials
	assert.InDelta(t, Spawn4Probability, ratio, 0.015)
}

func TestSpawnOnFullBoard(t *testing.T) {
	rng := &fixedRandom{}
	var ids TileIDs
	b := checkerboard()

	next, _, ok := SpawnRandomTile(b, rng, &ids)

	assert.False(t, ok)
	assert.Equal(t, b, next)
	assert.Zero(t, rng.calls)
}

func TestSpawnUsesEmptyCellAndFreshID(t *testing.T) {
	b := checkerboard()
	b[1][2] = Tile{}
	b[3][0] = Tile{}
	ids := TileIDs{next: 16}

	next, at, ok := SpawnRandomTile(b, &fixedRandom{intn: 1, float: 0.05}, &ids)

	require.True(t, ok)
	assert.Equal(t, Pos{Row: 3, Col: 0}, at)
	assert.Equal(t, Tile{ID: 16, Value: 4}, next.At(at))
	assert.Equal(t, uint64(17), ids.next)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, checkerboard().Validate())

	b := checkerboard()
	b[0][0].Value = 3
	assert.Error(t, b.Validate())

	b = checkerboard()
	b[0][0].Value = 1
	assert.Error(t, b.Validate())

	b = checkerboard()
	b[0][0].ID = b[0][1].ID
	assert.Error(t, b.Validate())

	assert.Panics(t, func() { mustValidate(b) })

	assert.Error(t, Board{}.Validate(), "a board needs at least one tile")
}

func TestNewEngineFromValues(t *testing.T) {
	rng := &fixedRandom{}

	e := NewEngineFromValues([BoardSize][BoardSize]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}, 120, rng)
	assert.True(t, e.Terminal())
	assert.Equal(t, 120, e.Score())
	assert.Equal(t, 16, e.Board().TileCount())

	e = NewEngineFromValues([BoardSize][BoardSize]int{{8, 8}}, 0, rng)
	assert.False(t, e.Terminal())
	assert.Equal(t, 8, e.MaxTile())

	assert.Panics(t, func() {
		NewEngineFromValues([BoardSize][BoardSize]int{{3}}, 0, rng)
	})
	assert.Panics(t, func() {
		NewEngineFromValues([BoardSize][BoardSize]int{}, 0, rng)
	}, "empty board")
	assert.Panics(t, func() {
		NewEngineFromValues([BoardSize][BoardSize]int{{2}}, -10, rng)
	}, "negative score")
}

func TestProgress(t *testing.T) {
	tests := []struct {
		maxTile int
		pct     int
		display int
		tier    ProgressTier
	}{
		{maxTile: 2, pct: 0, display: 0, tier: TierPoor},
		{maxTile: 64, pct: 3, display: 3, tier: TierPoor},
		{maxTile: 128, pct: 6, display: 6, tier: TierUncommon},
		{maxTile: 256, pct: 13, display: 13, tier: TierRare},
		{maxTile: 512, pct: 25, display: 25, tier: TierEpic},
		{maxTile: 1024, pct: 50, display: 50, tier: TierLegendary},
		{maxTile: 2048, pct: 100, display: 100, tier: TierArtifact},
		{maxTile: 4096, pct: 200, display: 100, tier: TierBeyond},
	}

	for _, tt := range tests {
		pct := ProgressPercent(tt.maxTile)
		assert.Equal(t, tt.pct, pct, "ProgressPercent(%d)", tt.maxTile)
		assert.Equal(t, tt.display, DisplayProgress(pct))
		assert.Equal(t, tt.tier, TierFor(pct), "TierFor(%d)", pct)
	}
}
