package tiles

import (
	"github.com/paulmach/orb"
	"math"
	"testing"
	"tilegrid/util"
)

func TestTileIndex_isBelowOrLeftOf(t *testing.T) {
	tile := TileIndex{10, 10}
	/*
		[ 9,11]   [10,11]   [11,11]

		[ 9,10]   [10,10]   [11,10]

		[ 9, 9]   [10, 9]   [11, 9]
	*/

	// First Column
	util.AssertTrue(t, tile.isBelowOrLeftOf(TileIndex{9, 11}))
	util.AssertFalse(t, tile.isBelowOrLeftOf(TileIndex{9, 10}))
	util.AssertFalse(t, tile.isBelowOrLeftOf(TileIndex{9, 9}))

	// Second column
	util.AssertTrue(t, tile.isBelowOrLeftOf(TileIndex{10, 11}))
	util.AssertFalse(t, tile.isBelowOrLeftOf(TileIndex{10, 10}))
	util.AssertFalse(t, tile.isBelowOrLeftOf(TileIndex{10, 9}))

	// Third column
	util.AssertTrue(t, tile.isBelowOrLeftOf(TileIndex{11, 11}))
	util.AssertTrue(t, tile.isBelowOrLeftOf(TileIndex{11, 10}))
	util.AssertTrue(t, tile.isBelowOrLeftOf(TileIndex{11, 9}))
}

func TestExtent_expand(t *testing.T) {
	extent := Extent{TileIndex{10, 10}, TileIndex{20, 20}}

	util.AssertEqual(t, extent, extent.Expand(TileIndex{10, 10}))
	util.AssertEqual(t, extent, extent.Expand(TileIndex{15, 15}))
	util.AssertEqual(t, extent, extent.Expand(TileIndex{20, 20}))

	util.AssertEqual(t, Extent{TileIndex{9, 9}, TileIndex{20, 20}}, extent.Expand(TileIndex{9, 9}))
	util.AssertEqual(t, Extent{TileIndex{10, 10}, TileIndex{21, 21}}, extent.Expand(TileIndex{21, 21}))
	util.AssertEqual(t, Extent{TileIndex{9, 10}, TileIndex{20, 21}}, extent.Expand(TileIndex{9, 21}))
	util.AssertEqual(t, Extent{TileIndex{10, 9}, TileIndex{21, 20}}, extent.Expand(TileIndex{21, 9}))
}

func TestExtent_contains(t *testing.T) {
	extent := Extent{TileIndex{10, 10}, TileIndex{20, 20}}

	// Lower-left corner
	util.AssertFalse(t, extent.Contains(TileIndex{9, 10}))
	util.AssertTrue(t, extent.Contains(TileIndex{10, 10}))
	util.AssertFalse(t, extent.Contains(TileIndex{10, 9}))

	// Upper-right corner
	util.AssertTrue(t, extent.Contains(TileIndex{20, 20}))
	util.AssertFalse(t, extent.Contains(TileIndex{21, 20}))
	util.AssertFalse(t, extent.Contains(TileIndex{20, 21}))

	util.AssertTrue(t, extent.Contains(TileIndex{15, 12}))
	util.AssertEqual(t, 121, extent.TileCount())
}

func TestGrid_extent(t *testing.T) {
	grid := newTestGrid(t)

	extent, ok := grid.Extent(orb.Bound{Min: orb.Point{25, 25}, Max: orb.Point{45, 45}})
	util.AssertTrue(t, ok)
	util.AssertEqual(t, Extent{TileIndex{2, 2}, TileIndex{4, 4}}, extent)
	util.AssertEqual(t, []int{22, 23, 24, 32, 33, 34, 42, 43, 44}, grid.TileIds(extent, DefaultMaxTiles))

	// Touching borders include the neighboring tiles
	extent, ok = grid.Extent(grid.TileBounds(55))
	util.AssertTrue(t, ok)
	util.AssertEqual(t, Extent{TileIndex{4, 4}, TileIndex{6, 6}}, extent)

	// Clamped to the grid, the center doesn't need to be inside the grid
	extent, ok = grid.Extent(orb.Bound{Min: orb.Point{90, 40}, Max: orb.Point{150, 60}})
	util.AssertTrue(t, ok)
	util.AssertEqual(t, Extent{TileIndex{8, 3}, TileIndex{9, 6}}, extent)

	_, ok = grid.Extent(orb.Bound{Min: orb.Point{200, 200}, Max: orb.Point{300, 300}})
	util.AssertFalse(t, ok)

	_, ok = grid.Extent(orb.Bound{Min: orb.Point{45, 45}, Max: orb.Point{25, 25}})
	util.AssertFalse(t, ok)

	_, ok = grid.Extent(orb.Bound{Min: orb.Point{math.NaN(), 45}, Max: orb.Point{25, 55}})
	util.AssertFalse(t, ok)
}

func TestGrid_extentWithInexactTileSize(t *testing.T) {
	tileSize := 0.1
	lower := 8.7
	upper := lower + 12*tileSize
	grid, err := NewGrid(orb.Bound{Min: orb.Point{lower, lower}, Max: orb.Point{upper, upper}}, tileSize)
	util.AssertNil(t, err)

	for column := 0; column < grid.Columns(); column++ {
		tileBounds := grid.TileBoundsFromColumnRow(column, column)

		// Act
		extent, ok := grid.Extent(tileBounds)

		// Assert
		util.AssertTrue(t, ok)
		util.AssertEqual(t, TileIndex{max(column-1, 0), max(column-1, 0)}, extent.LowerLeftTile())
		util.AssertEqual(t, TileIndex{min(column+1, 11), min(column+1, 11)}, extent.UpperRightTile())
		util.AssertSameElements(t, grid.TileIds(extent, DefaultMaxTiles), grid.TileList(tileBounds, DefaultMaxTiles))
	}
}

func TestGrid_tileIds_truncation(t *testing.T) {
	grid := newTestGrid(t)
	extent := Extent{TileIndex{2, 2}, TileIndex{4, 4}}

	util.AssertEqual(t, []int{22, 23, 24, 32}, grid.TileIds(extent, 4))
	util.AssertEqual(t, 9, len(grid.TileIds(extent, 100)))
	util.AssertEqual(t, 0, len(grid.TileIds(extent, 0)))
	util.AssertEqual(t, 0, len(grid.TileIds(extent, -1)))
}

func TestGrid_clampedTileList(t *testing.T) {
	grid := newTestGrid(t)

	// Act
	result := grid.ClampedTileList(orb.Bound{Min: orb.Point{90, 40}, Max: orb.Point{150, 60}}, DefaultMaxTiles)

	// Assert
	util.AssertEqual(t, []int{38, 39, 48, 49, 58, 59, 68, 69}, result)

	// The center is outside the grid, so the spiral search finds nothing
	util.AssertEqual(t, 0, len(grid.TileList(orb.Bound{Min: orb.Point{90, 40}, Max: orb.Point{150, 60}}, DefaultMaxTiles)))
}

func TestGrid_clampedTileList_noTiles(t *testing.T) {
	grid := newTestGrid(t)

	util.AssertEqual(t, []int{}, grid.ClampedTileList(orb.Bound{Min: orb.Point{200, 200}, Max: orb.Point{300, 300}}, DefaultMaxTiles))
	util.AssertEqual(t, []int{}, grid.ClampedTileList(orb.Bound{Min: orb.Point{36, 36}, Max: orb.Point{34, 34}}, DefaultMaxTiles))
	util.AssertEqual(t, []int{38, 39}, grid.ClampedTileList(orb.Bound{Min: orb.Point{90, 40}, Max: orb.Point{150, 60}}, 2))
	util.AssertEqual(t, []int{}, grid.ClampedTileList(orb.Bound{Min: orb.Point{90, 40}, Max: orb.Point{150, 60}}, 0))
}

func TestGrid_extentMatchesTileList(t *testing.T) {
	grid := newTestGrid(t)

	for _, bbox := range []orb.Bound{
		{Min: orb.Point{0, 0}, Max: orb.Point{100, 100}},
		{Min: orb.Point{1, 2}, Max: orb.Point{3, 4}},
		{Min: orb.Point{10, 10}, Max: orb.Point{20, 20}},
		{Min: orb.Point{-40, 33}, Max: orb.Point{71, 38}},
	} {
		extent, ok := grid.Extent(bbox)
		util.AssertTrue(t, ok)
		util.AssertSameElements(t, grid.TileIds(extent, DefaultMaxTiles), grid.TileList(bbox, DefaultMaxTiles))
	}
}
