package tiles

import "math"

// axis holds the tile edges along the x or y axis of a grid. Every lookup is corrected against edge(), otherwise the
// division in index() and the multiplication in edge() can disagree by one tile for tile sizes like 0.1.
type axis struct {
	lower    float64
	upper    float64
	tileSize float64
	count    int
}

func (g *Grid) xAxis() axis {
	return axis{g.bounds.Min.X(), g.bounds.Max.X(), g.tileSize, g.columns}
}

func (g *Grid) yAxis() axis {
	return axis{g.bounds.Min.Y(), g.bounds.Max.Y(), g.tileSize, g.rows}
}

// edge returns the lower edge of the tile with the given index.
func (a axis) edge(index int) float64 {
	return a.lower + float64(index)*a.tileSize
}

// upperEdge returns the upper edge of the tile with the given index, which is the lower edge of the next tile. The last
// tile reaches at least to the upper bound of the axis.
func (a axis) upperEdge(index int) float64 {
	if index == a.count-1 {
		return math.Max(a.edge(a.count), a.upper)
	}
	return a.edge(index + 1)
}

// index returns the index of the tile with edge(index) <= v < upperEdge(index) or NoTile when v is not within the
// bounds. The upper bound maps to the last tile.
func (a axis) index(v float64) int {
	if !(v >= a.lower && v <= a.upper) {
		return NoTile
	}
	if v == a.upper {
		return a.count - 1
	}

	index := a.clamp(math.Floor((v - a.lower) / a.tileSize))
	for index > 0 && a.edge(index) > v {
		index--
	}
	for index+1 < a.count && a.edge(index+1) <= v {
		index++
	}
	return index
}

// touched returns the first and last index of all tiles whose closed interval intersects [from, to]. A value exactly
// on a tile edge touches the tiles on both sides. The interval must intersect the bounds of the axis.
func (a axis) touched(from float64, to float64) (int, int) {
	first := a.clamp(math.Ceil((from-a.lower)/a.tileSize) - 1)
	for first > 0 && a.upperEdge(first-1) >= from {
		first--
	}
	for first+1 < a.count && a.upperEdge(first) < from {
		first++
	}

	last := a.clamp(math.Floor((to - a.lower) / a.tileSize))
	for last+1 < a.count && a.edge(last+1) <= to {
		last++
	}
	for last > 0 && a.edge(last) > to {
		last--
	}

	return first, last
}

// clamp converts the estimated index into a valid index. NaN becomes 0.
func (a axis) clamp(estimate float64) int {
	if !(estimate > 0) {
		return 0
	}
	if estimate >= float64(a.count-1) {
		return a.count - 1
	}
	return int(estimate)
}
