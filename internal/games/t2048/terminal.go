package t2048

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c].Empty() {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any two horizontally or vertically adjacent
// tiles share a value.
func HasPossibleMerge(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			val := board[r][c].Value
			if val == 0 {
				continue
			}
			if c < BoardSize-1 && board[r][c+1].Value == val {
				return true
			}
			if r < BoardSize-1 && board[r+1][c].Value == val {
				return true
			}
		}
	}
	return false
}

// IsTerminal reports whether no move can change the board: every cell is
// occupied and no adjacent pair shares a value.
func IsTerminal(board Board) bool {
	return !HasEmptyCell(board) && !HasPossibleMerge(board)
}
