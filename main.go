package main

import (
	"fmt"
	"github.com/alecthomas/kong"
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb"
	"os"
	"sort"
	"strings"
	ownIo "tilegrid/io"
	"tilegrid/osm"
	"tilegrid/tiles"
	"tilegrid/util"
	"tilegrid/web"
)

const VERSION = "v0.1.0"

var cli struct {
	Logging  string      `help:"Logging verbosity." enum:"info,debug,trace" short:"l" default:"info"`
	Version  VersionFlag `help:"Print version information and quit" name:"version" short:"v"`
	MinX     float64     `help:"Minimum x coordinate (longitude) of the grid." default:"-180"`
	MinY     float64     `help:"Minimum y coordinate (latitude) of the grid." default:"-90"`
	MaxX     float64     `help:"Maximum x coordinate (longitude) of the grid." default:"180"`
	MaxY     float64     `help:"Maximum y coordinate (latitude) of the grid." default:"90"`
	TileSize float64     `help:"Width and height of each tile." short:"s" default:"0.25"`
	Tile     struct {
		X float64 `help:"The x coordinate." arg:""`
		Y float64 `help:"The y coordinate." arg:""`
	} `cmd:"" help:"Prints the tile containing the given coordinate."`
	Bounds struct {
		Id int `help:"The tile id." arg:""`
	} `cmd:"" help:"Prints base, center and bounds of the given tile."`
	Neighbors struct {
		Id int `help:"The tile id." arg:""`
	} `cmd:"" help:"Prints the right, left, top and bottom neighbors of the given tile."`
	List struct {
		MinX     float64 `help:"Minimum x coordinate of the query." arg:""`
		MinY     float64 `help:"Minimum y coordinate of the query." arg:""`
		MaxX     float64 `help:"Maximum x coordinate of the query." arg:""`
		MaxY     float64 `help:"Maximum y coordinate of the query." arg:""`
		MaxTiles int     `help:"Maximum number of tiles to list." short:"m" default:"4096"`
		GeoJson  bool    `help:"Print the tiles as GeoJSON instead of plain ids." name:"geojson"`
		Clamp    bool    `help:"Use the part of the bounding box within the grid and list the tiles ordered by id. Finds tiles even when the center of the bounding box is outside the grid."`
	} `cmd:"" help:"Lists all tiles intersecting the given bounding box."`
	Density struct {
		Input  string `help:"The input file. Either .osm or .osm.pbf." placeholder:"<input-file>" arg:"" type:"existingfile"`
		Output string `help:"The GeoJSON output file." short:"o" default:"density.geojson"`
	} `cmd:"" help:"Counts the nodes of the given OSM file per tile and writes the tiles as GeoJSON."`
	Server struct {
		Port      string `help:"The port this server should listen to." short:"p" default:"8080"`
		TlsCert   string `help:"The certificate file for TLS. TLS is enabled when this and the key file are given." name:"tls-cert"`
		TlsKey    string `help:"The key file for TLS." name:"tls-key"`
		CacheSize int    `help:"Number of tile list results to cache, 0 disables the cache." default:"1000"`
	} `cmd:"" help:"Starts a server serving tile queries via HTTP."`
}

type VersionFlag string

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(vars["version"])
	app.Exit(0)
	return nil
}

func main() {
	ctx := kong.Parse(
		&cli,
		kong.Name("Tile grid"),
		kong.Description("A tool to convert coordinates into tiles of a uniform grid and to query tiles."),
		kong.Vars{
			"version": VERSION,
		},
	)

	if strings.ToLower(cli.Logging) == "debug" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_DEBUG)
	} else if strings.ToLower(cli.Logging) == "trace" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	} else if strings.ToLower(cli.Logging) == "info" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_INFO)
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
	} else {
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
		sigolo.Fatalf("Unknown logging level '%s'", cli.Logging)
	}

	grid, err := tiles.NewGrid(orb.Bound{Min: orb.Point{cli.MinX, cli.MinY}, Max: orb.Point{cli.MaxX, cli.MaxY}}, cli.TileSize)
	sigolo.FatalCheck(err)
	sigolo.Debugf("Using grid with %d rows and %d columns", grid.Rows(), grid.Columns())

	switch ctx.Command() {
	case "tile <x> <y>":
		tileId := grid.TileId(orb.Point{cli.Tile.X, cli.Tile.Y})
		if tileId == tiles.NoTile {
			sigolo.Fatalf("Coordinate %f, %f is outside of the grid", cli.Tile.X, cli.Tile.Y)
		}
		row, column := grid.RowColumn(tileId)
		fmt.Printf("id=%d row=%d column=%d\n", tileId, row, column)
	case "bounds <id>":
		requireValidTile(grid, cli.Bounds.Id)
		bounds := grid.TileBounds(cli.Bounds.Id)
		fmt.Printf("base=%v center=%v bounds=%v,%v\n", grid.Base(cli.Bounds.Id), grid.Center(cli.Bounds.Id), bounds.Min, bounds.Max)
	case "neighbors <id>":
		requireValidTile(grid, cli.Neighbors.Id)
		neighbors := grid.Neighbors(cli.Neighbors.Id)
		fmt.Printf("right=%d left=%d top=%d bottom=%d\n", neighbors[0], neighbors[1], neighbors[2], neighbors[3])
	case "list <min-x> <min-y> <max-x> <max-y>":
		bbox := orb.Bound{Min: orb.Point{cli.List.MinX, cli.List.MinY}, Max: orb.Point{cli.List.MaxX, cli.List.MaxY}}
		var tileIds []int
		if cli.List.Clamp {
			tileIds = grid.ClampedTileList(bbox, cli.List.MaxTiles)
		} else {
			tileIds = grid.TileList(bbox, cli.List.MaxTiles)
		}
		sigolo.Debugf("Found %d tiles", len(tileIds))

		if cli.List.GeoJson {
			err = ownIo.WriteTilesAsGeoJson(grid, tileIds, nil, os.Stdout)
			sigolo.FatalCheck(err)
		} else {
			for _, tileId := range tileIds {
				fmt.Println(tileId)
			}
		}
	case "density <input>":
		aggregator := osm.NewTileDensityAggregator(grid)
		err = osm.ReadFile(cli.Density.Input, aggregator)
		sigolo.FatalCheck(err)

		var tileIds []int
		for tileId := range aggregator.TileToNodeCount {
			tileIds = append(tileIds, tileId)
		}
		sort.Ints(tileIds)

		sigolo.Infof("Found nodes in %d tiles, %d nodes were outside of the grid", len(tileIds), aggregator.SkippedNodes)
		err = ownIo.WriteTilesAsGeoJsonFile(grid, tileIds, aggregator.TileToNodeCount, cli.Density.Output)
		sigolo.FatalCheck(err)
	case "server":
		if cli.Server.TlsCert != "" && cli.Server.TlsKey != "" {
			web.StartServerTls(cli.Server.Port, cli.Server.TlsCert, cli.Server.TlsKey, grid, cli.Server.CacheSize)
		} else {
			web.StartServer(cli.Server.Port, grid, cli.Server.CacheSize)
		}
	default:
		util.LogFatalBug("Unknown command '%s'", ctx.Command())
	}
}

func requireValidTile(grid *tiles.Grid, tileId int) {
	if !grid.Valid(tileId) {
		sigolo.Fatalf("Tile %d does not exist, valid ids are 0 to %d", tileId, grid.TileCount()-1)
	}
}
