package web

import (
	"encoding/json"
	"fmt"
	"github.com/gorilla/mux"
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"net/http"
	"strconv"
	"strings"
	ownIo "tilegrid/io"
	"tilegrid/tiles"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func NewErrorResponse(message string, err error) ErrorResponse {
	response := ErrorResponse{Error: message}
	if err != nil {
		response.Details = err.Error()
	}
	return response
}

type NeighborsResponse struct {
	Right  int `json:"right"`
	Left   int `json:"left"`
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
}

func StartServer(port string, grid *tiles.Grid, cacheSize int) {
	r := InitRouter(grid, cacheSize)
	sigolo.Infof("Start server without TLS support on port %s", port)
	err := http.ListenAndServe(":"+port, r)
	sigolo.FatalCheck(err)
}

func StartServerTls(port string, certFile string, keyFile string, grid *tiles.Grid, cacheSize int) {
	r := InitRouter(grid, cacheSize)
	sigolo.Infof("Start server with TLS support on port %s", port)
	err := http.ListenAndServeTLS(":"+port, certFile, keyFile, r)
	sigolo.FatalCheck(err)
}

// InitRouter creates the routes for the given grid. The grid is shared by all requests, every tile list request uses
// its own search state. Up to cacheSize tile list results are cached, a size of 0 disables the cache.
func InitRouter(grid *tiles.Grid, cacheSize int) *mux.Router {
	r := mux.NewRouter()
	cache := newLruCache(cacheSize)

	r.HandleFunc("/tiles", func(writer http.ResponseWriter, request *http.Request) {
		setHeaders(writer)

		bbox, err := parseBbox(request.URL.Query().Get("bbox"))
		if err != nil {
			writeError(writer, http.StatusBadRequest, "Invalid bbox parameter.", err)
			return
		}

		maxTiles := tiles.DefaultMaxTiles
		if maxParam := request.URL.Query().Get("max"); maxParam != "" {
			maxTiles, err = strconv.Atoi(maxParam)
			if err != nil || maxTiles <= 0 {
				writeError(writer, http.StatusBadRequest, "Invalid max parameter, must be a positive integer.", err)
				return
			}
		}

		clamp := false
		if clampParam := request.URL.Query().Get("clamp"); clampParam != "" {
			clamp, err = strconv.ParseBool(clampParam)
			if err != nil {
				writeError(writer, http.StatusBadRequest, "Invalid clamp parameter, must be true or false.", err)
				return
			}
		}

		cacheKey := tileListCacheKey(bbox, maxTiles, clamp)
		tileIds, cached := cache.get(cacheKey)
		if !cached {
			if clamp {
				tileIds = grid.ClampedTileList(bbox, maxTiles)
			} else {
				tileIds = grid.TileList(bbox, maxTiles)
			}
			cache.insert(cacheKey, tileIds)
		}
		sigolo.Debugf("Found %d tiles for bbox %v (clamp=%v, cached=%v)", len(tileIds), bbox, clamp, cached)

		err = ownIo.WriteTilesAsGeoJson(grid, tileIds, nil, writer)
		if err != nil {
			sigolo.Errorf("Error writing tile list: %+v", err)
			writeError(writer, http.StatusInternalServerError, "Error writing tile list.", err)
		}
	}).Methods(http.MethodGet)

	r.HandleFunc("/tiles/{id:-?[0-9]+}", func(writer http.ResponseWriter, request *http.Request) {
		setHeaders(writer)

		tileId, ok := parseTileId(writer, request, grid)
		if !ok {
			return
		}

		featureBytes, err := ownIo.TileToFeature(grid, tileId).MarshalJSON()
		if err != nil {
			sigolo.Errorf("Error marshalling tile %d: %+v", tileId, err)
			writeError(writer, http.StatusInternalServerError, "Error marshalling tile.", err)
			return
		}
		writeBytes(writer, featureBytes)
	}).Methods(http.MethodGet)

	r.HandleFunc("/tiles/{id:-?[0-9]+}/neighbors", func(writer http.ResponseWriter, request *http.Request) {
		setHeaders(writer)

		tileId, ok := parseTileId(writer, request, grid)
		if !ok {
			return
		}

		neighbors := grid.Neighbors(tileId)
		responseBytes, err := json.Marshal(NeighborsResponse{
			Right:  neighbors[0],
			Left:   neighbors[1],
			Top:    neighbors[2],
			Bottom: neighbors[3],
		})
		if err != nil {
			sigolo.Errorf("Error marshalling neighbors of tile %d: %+v", tileId, err)
			writeError(writer, http.StatusInternalServerError, "Error marshalling neighbors.", err)
			return
		}
		writeBytes(writer, responseBytes)
	}).Methods(http.MethodGet)

	return r
}

func setHeaders(writer http.ResponseWriter) {
	writer.Header().Set("Access-Control-Allow-Origin", "*")
	writer.Header().Set("Content-Type", "application/json")
}

// parseBbox parses a "minX,minY,maxX,maxY" string.
func parseBbox(bboxString string) (orb.Bound, error) {
	parts := strings.Split(bboxString, ",")
	if len(parts) != 4 {
		return orb.Bound{}, errors.Errorf("Expected four comma separated numbers but got '%s'", bboxString)
	}

	var values [4]float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return orb.Bound{}, errors.Wrapf(err, "Unable to parse bbox value '%s'", part)
		}
		values[i] = value
	}

	return orb.Bound{Min: orb.Point{values[0], values[1]}, Max: orb.Point{values[2], values[3]}}, nil
}

func parseTileId(writer http.ResponseWriter, request *http.Request, grid *tiles.Grid) (int, bool) {
	idString := mux.Vars(request)["id"]
	tileId, err := strconv.Atoi(idString)
	if err != nil {
		writeError(writer, http.StatusBadRequest, fmt.Sprintf("Invalid tile id '%s'.", idString), err)
		return tiles.NoTile, false
	}
	if !grid.Valid(tileId) {
		writeError(writer, http.StatusNotFound, fmt.Sprintf("Tile %d does not exist.", tileId), nil)
		return tiles.NoTile, false
	}
	return tileId, true
}

func writeError(writer http.ResponseWriter, status int, message string, err error) {
	writer.WriteHeader(status)

	errorResponseBytes, err := json.Marshal(NewErrorResponse(message, err))
	if err != nil {
		sigolo.Errorf("Error creating and marshalling error response object: %+v", err)
		return
	}
	writeBytes(writer, errorResponseBytes)
}

func writeBytes(writer http.ResponseWriter, data []byte) {
	_, err := writer.Write(data)
	if err != nil {
		sigolo.Errorf("Error writing response: %+v", err)
	}
}
