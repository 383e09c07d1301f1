package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all move directions.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a direction name (up/down/left/right, or the
// w/s/a/d shorthand) into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "w":
		return DirUp, nil
	case "down", "s":
		return DirDown, nil
	case "left", "a":
		return DirLeft, nil
	case "right", "d":
		return DirRight, nil
	default:
		return 0, fmt.Errorf("t2048: unknown direction %q", s)
	}
}

// TileMove describes how one tile travelled during a move.
type TileMove struct {
	ID     uint64 // ID of the tile before the move
	From   Pos
	To     Pos
	Value  int  // Value before the move
	Merged bool // Whether this tile merged with another
}

// MoveResult is the full outcome of applying a move to a board.
type MoveResult struct {
	Board   Board
	Score   int  // Sum of all merge results
	Changed bool // Whether any cell differs by value or occupancy
	Moves   []TileMove
}

// lineCells returns the board coordinates of line k for dir, ordered so that
// index 0 is the cell tiles slide toward. Left and Up read rows and columns
// forward; Right and Down read them reversed.
func lineCells(dir Direction, k int) [BoardSize]Pos {
	var cells [BoardSize]Pos
	for i := range BoardSize {
		switch dir {
		case DirLeft:
			cells[i] = Pos{Row: k, Col: i}
		case DirRight:
			cells[i] = Pos{Row: k, Col: BoardSize - 1 - i}
		case DirUp:
			cells[i] = Pos{Row: i, Col: k}
		case DirDown:
			cells[i] = Pos{Row: BoardSize - 1 - i, Col: k}
		default:
			panic(fmt.Sprintf("t2048: invalid direction %d", int(dir)))
		}
	}
	return cells
}

// Slide applies a move and reports the per-tile movement alongside the result.
func Slide(board Board, dir Direction) MoveResult {
	var res MoveResult

	for k := range BoardSize {
		cells := lineCells(dir, k)

		var in line
		for i, p := range cells {
			in[i] = board.At(p)
		}

		out, score, steps := reduceLine(in)
		for i, p := range cells {
			res.Board[p.Row][p.Col] = out[i]
		}
		res.Score += score

		for _, s := range steps {
			src := in[s.from]
			res.Moves = append(res.Moves, TileMove{
				ID:     src.ID,
				From:   cells[s.from],
				To:     cells[s.to],
				Value:  src.Value,
				Merged: s.merged,
			})
		}
	}

	res.Changed = !res.Board.SameLayout(board)
	return res
}

// ApplyMove slides all tiles in dir and merges equal neighbours.
// Returns the new board, score gained, and whether the board changed.
// The input board is not modified.
func ApplyMove(board Board, dir Direction) (Board, int, bool) {
	res := Slide(board, dir)
	return res.Board, res.Score, res.Changed
}
