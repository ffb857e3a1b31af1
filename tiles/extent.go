package tiles

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb"
)

// TileIndex is the column and row of a tile.
type TileIndex [2]int

func (t TileIndex) Column() int { return t[0] }

func (t TileIndex) Row() int { return t[1] }

func (t TileIndex) isBelowOrLeftOf(other TileIndex) bool {
	return t.Column() < other.Column() || t.Row() < other.Row()
}

func (t TileIndex) isAboveOrRightOf(other TileIndex) bool {
	return t.Column() > other.Column() || t.Row() > other.Row()
}

// Extent is a rectangle of tiles given by its lower left and upper right tile, both inclusive.
type Extent [2]TileIndex

func (e Extent) LowerLeftTile() TileIndex { return e[0] }

func (e Extent) UpperRightTile() TileIndex { return e[1] }

// Expand returns the smallest extent containing this extent and the given tile.
func (e Extent) Expand(tile TileIndex) Extent {
	if e.Contains(tile) {
		return e
	}

	minColumn := min(e.LowerLeftTile().Column(), tile.Column())
	minRow := min(e.LowerLeftTile().Row(), tile.Row())
	maxColumn := max(e.UpperRightTile().Column(), tile.Column())
	maxRow := max(e.UpperRightTile().Row(), tile.Row())

	return Extent{
		TileIndex{minColumn, minRow},
		TileIndex{maxColumn, maxRow},
	}
}

func (e Extent) Contains(tile TileIndex) bool {
	return !tile.isAboveOrRightOf(e.UpperRightTile()) && !tile.isBelowOrLeftOf(e.LowerLeftTile())
}

// TileCount returns the number of tiles within this extent.
func (e Extent) TileCount() int {
	columns := e.UpperRightTile().Column() - e.LowerLeftTile().Column() + 1
	rows := e.UpperRightTile().Row() - e.LowerLeftTile().Row() + 1
	if columns <= 0 || rows <= 0 {
		return 0
	}
	return columns * rows
}

// Index returns the column and row of the given valid tile id.
func (g *Grid) Index(tileId int) TileIndex {
	row, column := g.RowColumn(tileId)
	return TileIndex{column, row}
}

// Extent returns the extent of all tiles intersecting the given bounding box, clamped to the grid. The boolean is false
// when the bounding box doesn't intersect the grid at all. Unlike TileList, the bounding box center doesn't need to be
// within the grid.
func (g *Grid) Extent(bbox orb.Bound) (Extent, bool) {
	if !isOrdered(bbox) || !g.bounds.Intersects(bbox) {
		return Extent{}, false
	}

	minColumn, maxColumn := g.xAxis().touched(bbox.Min.X(), bbox.Max.X())
	minRow, maxRow := g.yAxis().touched(bbox.Min.Y(), bbox.Max.Y())

	return Extent{
		TileIndex{minColumn, minRow},
		TileIndex{maxColumn, maxRow},
	}, true
}

// TileIds returns the ids of the tiles within the extent ordered by id, at most maxTiles many. The extent must lie
// within the grid.
func (g *Grid) TileIds(extent Extent, maxTiles int) []int {
	ids := make([]int, 0, max(min(extent.TileCount(), maxTiles), 0))
	for row := extent.LowerLeftTile().Row(); row <= extent.UpperRightTile().Row(); row++ {
		for column := extent.LowerLeftTile().Column(); column <= extent.UpperRightTile().Column(); column++ {
			if len(ids) >= maxTiles {
				return ids
			}
			ids = append(ids, row*g.columns+column)
		}
	}
	return ids
}

// ClampedTileList returns all tiles intersecting the given bounding box ordered by id, at most maxTiles many. Other
// than TileList, the part of the bounding box within the grid is used, so the center of the bounding box may be
// outside the grid.
func (g *Grid) ClampedTileList(bbox orb.Bound, maxTiles int) []int {
	extent, ok := g.Extent(bbox)
	if !ok {
		sigolo.Debugf("Bbox %v doesn't intersect the grid, no tiles found", bbox)
		return []int{}
	}
	return g.TileIds(extent, maxTiles)
}
