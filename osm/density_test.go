package osm

import (
	"github.com/paulmach/orb"
	"strings"
	"testing"
	"tilegrid/tiles"
	"tilegrid/util"
)

const testOsmData = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="test">
  <node id="1" lat="55.5" lon="55.5" version="1"/>
  <node id="2" lat="57" lon="52" version="1"/>
  <node id="3" lat="25" lon="35" version="1"/>
  <node id="4" lat="100" lon="100" version="1"/>
  <node id="5" lat="-5" lon="40" version="1"/>
  <way id="10" version="1">
    <nd ref="1"/>
    <nd ref="2"/>
  </way>
</osm>`

func TestTileDensityAggregator(t *testing.T) {
	// Arrange
	grid, err := tiles.NewGrid(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{100, 100}}, 10)
	util.AssertNil(t, err)
	aggregator := NewTileDensityAggregator(grid)

	// Act
	err = ReadXml(strings.NewReader(testOsmData), aggregator)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, map[int]int{55: 2, 23: 1, 99: 1}, aggregator.TileToNodeCount)
	util.AssertEqual(t, 1, aggregator.SkippedNodes)
	util.AssertNotNil(t, aggregator.InputDataTileExtent)
	util.AssertEqual(t, tiles.Extent{tiles.TileIndex{3, 2}, tiles.TileIndex{9, 9}}, *aggregator.InputDataTileExtent)
}

func TestTileDensityAggregator_noNodes(t *testing.T) {
	// Arrange
	grid, err := tiles.NewGrid(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{100, 100}}, 10)
	util.AssertNil(t, err)
	aggregator := NewTileDensityAggregator(grid)

	// Act
	err = ReadXml(strings.NewReader(`<osm version="0.6"></osm>`), aggregator)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, 0, len(aggregator.TileToNodeCount))
	util.AssertTrue(t, aggregator.InputDataTileExtent == nil)
}
