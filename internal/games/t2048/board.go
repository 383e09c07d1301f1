package t2048

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// BoardSize is the board dimension. The board is always 4x4.
const BoardSize = 4

// Board is a 4x4 grid of optional tiles, indexed [row][col].
type Board [BoardSize][BoardSize]Tile

// Pos is a cell coordinate on the board.
type Pos struct {
	Row int
	Col int
}

// NewBoardFromValues builds a board from raw values, assigning IDs in row-major
// order from ids. Zero values are empty cells.
func NewBoardFromValues(values [BoardSize][BoardSize]int, ids *TileIDs) Board {
	var b Board
	for r := range BoardSize {
		for c := range BoardSize {
			if values[r][c] == 0 {
				continue
			}
			b[r][c] = Tile{ID: ids.Next(), Value: values[r][c]}
		}
	}
	return b
}

// At returns the tile at p.
func (b Board) At(p Pos) Tile {
	return b[p.Row][p.Col]
}

// Values returns the tile values with 0 for empty cells.
func (b Board) Values() [BoardSize][BoardSize]int {
	var v [BoardSize][BoardSize]int
	for r := range BoardSize {
		for c := range BoardSize {
			v[r][c] = b[r][c].Value
		}
	}
	return v
}

// SameLayout reports whether both boards have the same values in the same cells.
// Tile IDs are ignored.
func (b Board) SameLayout(other Board) bool {
	return b.Values() == other.Values()
}

// Tiles returns all non-empty tiles in row-major order.
func (b Board) Tiles() []Tile {
	tiles := make([]Tile, 0, BoardSize*BoardSize)
	for r := range BoardSize {
		for c := range BoardSize {
			if !b[r][c].Empty() {
				tiles = append(tiles, b[r][c])
			}
		}
	}
	return tiles
}

// TileCount returns the number of occupied cells.
func (b Board) TileCount() int {
	return len(b.Tiles())
}

// Sum returns the total of all tile values.
func (b Board) Sum() int {
	return lo.SumBy(b.Tiles(), func(t Tile) int { return t.Value })
}

// MaxTile returns the highest tile value, or 0 for an empty board.
func (b Board) MaxTile() int {
	tiles := b.Tiles()
	if len(tiles) == 0 {
		return 0
	}
	return lo.MaxBy(tiles, func(a, best Tile) bool { return a.Value > best.Value }).Value
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (b Board) EmptyCells() []Pos {
	var cells []Pos
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c].Empty() {
				cells = append(cells, Pos{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Validate checks the board invariants: at least one tile, every value is a
// power of two no smaller than 2 and no tile ID appears twice.
func (b Board) Validate() error {
	if b.TileCount() == 0 {
		return fmt.Errorf("t2048: board has no tiles")
	}

	seen := make(map[uint64]Pos)
	for r := range BoardSize {
		for c := range BoardSize {
			t := b[r][c]
			if t.Empty() {
				continue
			}
			if t.Value < 2 || bits.OnesCount(uint(t.Value)) != 1 {
				return fmt.Errorf("t2048: invalid tile value %d at (%d,%d)", t.Value, r, c)
			}
			if prev, dup := seen[t.ID]; dup {
				return fmt.Errorf("t2048: tile id %d at (%d,%d) duplicates (%d,%d)",
					t.ID, r, c, prev.Row, prev.Col)
			}
			seen[t.ID] = Pos{Row: r, Col: c}
		}
	}
	return nil
}

// mustValidate panics on a malformed board. A malformed board is a logic bug,
// never a runtime condition.
func mustValidate(b Board) {
	if err := b.Validate(); err != nil {
		panic(err.Error())
	}
}

// String renders the board as a plain text grid.
func (b Board) String() string {
	var sb strings.Builder
	sep := "+" + strings.Repeat("------+", BoardSize) + "\n"
	sb.WriteString(sep)
	for r := range BoardSize {
		sb.WriteString("|")
		for c := range BoardSize {
			cell := "."
			if !b[r][c].Empty() {
				cell = strconv.Itoa(b[r][c].Value)
			}
			fmt.Fprintf(&sb, "%5s |", cell)
		}
		sb.WriteString("\n")
		sb.WriteString(sep)
	}
	return sb.String()
}
