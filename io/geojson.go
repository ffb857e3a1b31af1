package io

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"io"
	"os"
	"tilegrid/tiles"
	"time"
)

// TileToFeature creates a GeoJSON feature with the bounds of the given valid tile as polygon.
func TileToFeature(grid *tiles.Grid, tileId int) *geojson.Feature {
	feature := geojson.NewFeature(grid.TileBounds(tileId).ToPolygon())
	row, column := grid.RowColumn(tileId)
	feature.ID = tileId
	feature.Properties["id"] = tileId
	feature.Properties["row"] = row
	feature.Properties["column"] = column
	return feature
}

// TilesToFeatureCollection converts the tiles into features, keeping their order. When counts are given, each
// feature gets a "count" property.
func TilesToFeatureCollection(grid *tiles.Grid, tileIds []int, counts map[int]int) (*geojson.FeatureCollection, error) {
	featureCollection := geojson.NewFeatureCollection()
	for _, tileId := range tileIds {
		if !grid.Valid(tileId) {
			return nil, errors.Errorf("Tile %d is not part of the grid with %d tiles", tileId, grid.TileCount())
		}

		feature := TileToFeature(grid, tileId)
		if counts != nil {
			feature.Properties["count"] = counts[tileId]
		}
		featureCollection.Append(feature)
	}
	return featureCollection, nil
}

func WriteTilesAsGeoJsonFile(grid *tiles.Grid, tileIds []int, counts map[int]int, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "Unable to create GeoJSON file %s", filename)
	}

	defer func() {
		err = file.Close()
		sigolo.FatalCheck(errors.Wrapf(err, "Unable to close file handle for GeoJSON file %s", file.Name()))
	}()

	return WriteTilesAsGeoJson(grid, tileIds, counts, file)
}

func WriteTilesAsGeoJson(grid *tiles.Grid, tileIds []int, counts map[int]int, writer io.Writer) error {
	sigolo.Debugf("Write %d tiles to GeoJSON", len(tileIds))
	writeStartTime := time.Now()

	featureCollection, err := TilesToFeatureCollection(grid, tileIds, counts)
	if err != nil {
		return err
	}

	geojsonBytes, err := featureCollection.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Unable to marshal GeoJSON feature collection")
	}

	_, err = writer.Write(geojsonBytes)
	if err != nil {
		return errors.Wrap(err, "Unable to write GeoJSON")
	}

	sigolo.Debugf("Finished writing in %s", time.Since(writeStartTime))

	return nil
}
