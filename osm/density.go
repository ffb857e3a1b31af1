package osm

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"tilegrid/tiles"
)

// TileDensityAggregator counts the nodes within each tile of a grid. Nodes outside the grid are skipped.
type TileDensityAggregator struct {
	TileToNodeCount     map[int]int
	InputDataTileExtent *tiles.Extent
	SkippedNodes        int
	grid                *tiles.Grid
}

func NewTileDensityAggregator(grid *tiles.Grid) *TileDensityAggregator {
	return &TileDensityAggregator{
		TileToNodeCount: map[int]int{},
		grid:            grid,
	}
}

func (a *TileDensityAggregator) Name() string {
	return "TileDensityAggregator"
}

func (a *TileDensityAggregator) Init() error {
	return nil
}

func (a *TileDensityAggregator) HandleNode(node *osm.Node) error {
	tileId := a.grid.TileId(orb.Point{node.Lon, node.Lat})
	if tileId == tiles.NoTile {
		a.SkippedNodes++
		return nil
	}

	a.TileToNodeCount[tileId]++

	tile := a.grid.Index(tileId)
	if a.InputDataTileExtent == nil {
		a.InputDataTileExtent = &tiles.Extent{tile, tile}
	} else {
		newExtent := a.InputDataTileExtent.Expand(tile)
		a.InputDataTileExtent = &newExtent
	}

	return nil
}

func (a *TileDensityAggregator) HandleWay(way *osm.Way) error {
	return nil
}

func (a *TileDensityAggregator) HandleRelation(relation *osm.Relation) error {
	return nil
}

func (a *TileDensityAggregator) Done() error {
	sigolo.Debugf("Counted nodes in %d tiles, skipped %d nodes outside of the grid", len(a.TileToNodeCount), a.SkippedNodes)
	if a.InputDataTileExtent != nil {
		sigolo.Debugf("Input data covers tile extent %v", *a.InputDataTileExtent)
	}
	return nil
}
