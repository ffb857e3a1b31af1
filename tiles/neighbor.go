package tiles

// RelativeTileId returns the tile that is deltaRows rows and deltaColumns columns away from the given tile. There is
// no wraparound at the grid edges: NoTile is returned when the resulting row or column is outside the grid.
func (g *Grid) RelativeTileId(tileId int, deltaRows int, deltaColumns int) int {
	if !g.Valid(tileId) {
		return NoTile
	}
	row, column := g.RowColumn(tileId)
	return g.TileIdFromColumnRow(column+deltaColumns, row+deltaRows)
}

// TileOffsets returns the row and column offsets from the initial tile to the other tile. Both ids must be valid, they
// don't need to be adjacent.
func (g *Grid) TileOffsets(initialTileId int, otherTileId int) (int, int) {
	initialRow, initialColumn := g.RowColumn(initialTileId)
	otherRow, otherColumn := g.RowColumn(otherTileId)
	return otherRow - initialRow, otherColumn - initialColumn
}

// RightNeighbor returns the tile east of the given one or NoTile at the right edge.
func (g *Grid) RightNeighbor(tileId int) int {
	return g.RelativeTileId(tileId, 0, 1)
}

// LeftNeighbor returns the tile west of the given one or NoTile at the left edge.
func (g *Grid) LeftNeighbor(tileId int) int {
	return g.RelativeTileId(tileId, 0, -1)
}

// TopNeighbor returns the tile north of the given one or NoTile at the top edge.
func (g *Grid) TopNeighbor(tileId int) int {
	return g.RelativeTileId(tileId, 1, 0)
}

// BottomNeighbor returns the tile south of the given one or NoTile at the bottom edge.
func (g *Grid) BottomNeighbor(tileId int) int {
	return g.RelativeTileId(tileId, -1, 0)
}

// Neighbors returns the four orthogonal neighbors in the order right, left, top, bottom. Neighbors outside the grid are
// NoTile.
func (g *Grid) Neighbors(tileId int) [4]int {
	return [4]int{
		g.RightNeighbor(tileId),
		g.LeftNeighbor(tileId),
		g.TopNeighbor(tileId),
		g.BottomNeighbor(tileId),
	}
}
