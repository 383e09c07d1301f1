package t2048

// Tile is a single numbered tile. The zero Tile is an empty cell.
type Tile struct {
	ID    uint64 // Stable identity across moves, used for animation
	Value int    // Power of two, 2 or more; 0 for an empty cell
}

// Empty reports whether the cell holds no tile.
func (t Tile) Empty() bool {
	return t.Value == 0
}

// TileIDs hands out tile identities for one game session.
// IDs are never reused until Reset is called by a new game.
type TileIDs struct {
	next uint64
}

// Next returns a fresh tile ID.
func (g *TileIDs) Next() uint64 {
	id := g.next
	g.next++
	return id
}

// Reset restarts numbering from zero.
func (g *TileIDs) Reset() {
	g.next = 0
}
