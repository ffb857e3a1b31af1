package tiles

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"math"
)

// NoTile is returned by all lookups when a coordinate, row, column or tile id lies outside the grid.
const NoTile = -1

// Grid is a uniform tiling of a rectangular extent into square tiles of equal size. Tile ids start with 0 at the lower
// left corner (min x, min y) and increase by column (eastwards) first and then by row (northwards):
//
//	id = row*columns + column
//
// A Grid is immutable after construction and all of its methods can be called concurrently.
type Grid struct {
	bounds   orb.Bound
	tileSize float64
	rows     int
	columns  int
}

// NewGrid creates a new grid covering the given bounds. The tile size must be positive and the bounds must have a
// positive width and height. When the extent is not a multiple of the tile size, the last row and column extend beyond
// the upper edge of the bounds.
func NewGrid(bounds orb.Bound, tileSize float64) (*Grid, error) {
	if math.IsNaN(tileSize) || math.IsInf(tileSize, 0) || tileSize <= 0 {
		return nil, errors.Errorf("Tile size must be a positive number but was %f", tileSize)
	}
	for _, v := range []float64{bounds.Min.X(), bounds.Min.Y(), bounds.Max.X(), bounds.Max.Y()} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Errorf("Grid bounds %v must only contain finite coordinates", bounds)
		}
	}
	if bounds.Max.X() <= bounds.Min.X() || bounds.Max.Y() <= bounds.Min.Y() {
		return nil, errors.Errorf("Grid bounds %v must have a positive width and height", bounds)
	}

	// Checked as floats, the conversion of huge values to int is undefined
	columnsEstimate := (bounds.Max.X() - bounds.Min.X()) / tileSize
	rowsEstimate := (bounds.Max.Y() - bounds.Min.Y()) / tileSize
	if columnsEstimate > math.MaxInt32 || rowsEstimate > math.MaxInt32 || columnsEstimate*rowsEstimate > math.MaxInt32 {
		return nil, errors.Errorf("Grid bounds %v with tile size %g have too many tiles, use a larger tile size", bounds, tileSize)
	}

	columns := axisTileCount(bounds.Min.X(), bounds.Max.X(), tileSize)
	rows := axisTileCount(bounds.Min.Y(), bounds.Max.Y(), tileSize)
	if rows*columns > math.MaxInt32 {
		return nil, errors.Errorf("Grid with %d rows and %d columns has too many tiles, use a larger tile size", rows, columns)
	}

	return &Grid{
		bounds:   bounds,
		tileSize: tileSize,
		rows:     rows,
		columns:  columns,
	}, nil
}

// axisTileCount returns the number of tiles needed to cover [lower, upper]. A tile whose lower edge is not below upper
// is not part of the grid, even when the division rounded up to it.
func axisTileCount(lower float64, upper float64, tileSize float64) int {
	count := int(math.Ceil((upper - lower) / tileSize))
	for count > 1 && lower+float64(count-1)*tileSize >= upper {
		count--
	}
	return max(count, 1)
}

func (g *Grid) Bounds() orb.Bound { return g.bounds }

func (g *Grid) TileSize() float64 { return g.tileSize }

func (g *Grid) Rows() int { return g.rows }

func (g *Grid) Columns() int { return g.columns }

// TileCount returns the number of tiles in the grid. Valid tile ids are in [0, TileCount()).
func (g *Grid) TileCount() int {
	return g.rows * g.columns
}

// Valid returns true when the given id denotes a tile of this grid.
func (g *Grid) Valid(tileId int) bool {
	return tileId >= 0 && tileId < g.TileCount()
}

// Row returns the row containing the given y coordinate or NoTile when y is outside the grid bounds. The upper edge
// belongs to the grid, so y == max y maps to the last row.
func (g *Grid) Row(y float64) int {
	return g.yAxis().index(y)
}

// Column returns the column containing the given x coordinate or NoTile when x is outside the grid bounds. The right
// edge belongs to the grid, so x == max x maps to the last column.
func (g *Grid) Column(x float64) int {
	return g.xAxis().index(x)
}

// TileId returns the id of the tile containing the given point or NoTile when the point is outside the grid. A point
// on a shared edge belongs to the tile above/right of that edge, except on the upper and right grid boundary.
func (g *Grid) TileId(point orb.Point) int {
	row := g.Row(point.Y())
	column := g.Column(point.X())
	if row == NoTile || column == NoTile {
		return NoTile
	}
	return row*g.columns + column
}

// TileIdFromColumnRow returns the id of the tile at the given column and row. Out of range values are not clamped,
// NoTile is returned instead.
func (g *Grid) TileIdFromColumnRow(column int, row int) int {
	if column < 0 || column >= g.columns || row < 0 || row >= g.rows {
		return NoTile
	}
	return row*g.columns + column
}

// RowColumn decomposes a valid tile id into its row and column.
func (g *Grid) RowColumn(tileId int) (int, int) {
	return tileId / g.columns, tileId % g.columns
}

// Base returns the lower left corner of the given tile. The id must be valid.
func (g *Grid) Base(tileId int) orb.Point {
	row, column := g.RowColumn(tileId)
	return g.base(column, row)
}

func (g *Grid) base(column int, row int) orb.Point {
	return orb.Point{g.xAxis().edge(column), g.yAxis().edge(row)}
}

// Center returns the center point of the given tile. The id must be valid.
func (g *Grid) Center(tileId int) orb.Point {
	return g.TileBounds(tileId).Center()
}

// TileBounds returns the extent of the given tile. The id must be valid.
func (g *Grid) TileBounds(tileId int) orb.Bound {
	row, column := g.RowColumn(tileId)
	return g.TileBoundsFromColumnRow(column, row)
}

// TileBoundsFromColumnRow returns the extent of the tile at the given column and row. Neighboring tiles share their
// edges exactly and the last row and column reach at least to the upper grid bounds.
func (g *Grid) TileBoundsFromColumnRow(column int, row int) orb.Bound {
	x := g.xAxis()
	y := g.yAxis()
	return orb.Bound{
		Min: orb.Point{x.edge(column), y.edge(row)},
		Max: orb.Point{x.upperEdge(column), y.upperEdge(row)},
	}
}
