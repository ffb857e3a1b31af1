package tiles

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb"
)

// DefaultMaxTiles is the usual upper limit of tiles returned by a TileList call.
const DefaultMaxTiles = 4096

// SearchState holds the buffers of one tile list search: the found tiles in discovery order, the FIFO queue of tiles
// still to check and the visited markers of all tiles ever queued. A state must not be used by two searches at the
// same time, but it can be reused for consecutive searches to avoid allocations.
type SearchState struct {
	result  []int
	pending []int
	head    int // Position of the next tile in pending
	visited []bool
}

func NewSearchState() *SearchState {
	return &SearchState{}
}

// reset clears all buffers and makes sure the visited markers cover the given amount of tiles.
func (s *SearchState) reset(tileCount int) {
	s.result = s.result[:0]
	s.pending = s.pending[:0]
	s.head = 0

	if cap(s.visited) < tileCount {
		s.visited = make([]bool, tileCount)
	} else {
		s.visited = s.visited[:tileCount]
		clear(s.visited)
	}
}

func (s *SearchState) enqueue(tileId int) {
	s.visited[tileId] = true
	s.pending = append(s.pending, tileId)
}

func (s *SearchState) dequeue() int {
	tileId := s.pending[s.head]
	s.head++
	return tileId
}

func (s *SearchState) hasPending() bool {
	return s.head < len(s.pending)
}

// TileList returns all tiles intersecting the given bounding box, at most maxTiles many. A tile touching the bounding
// box only at an edge or corner counts as intersecting. See TileListWithState for details.
func (g *Grid) TileList(bbox orb.Bound, maxTiles int) []int {
	return g.TileListWithState(NewSearchState(), bbox, maxTiles)
}

// TileListWithState finds all tiles intersecting the given bounding box. The search starts at the tile containing the
// center of the bounding box and spirals outwards by checking the right, left, top and bottom neighbors of every
// intersecting tile in breadth-first order. Tiles not intersecting the bounding box are not expanded.
//
// The result is in discovery order, free of duplicates and contains at most maxTiles ids. When there are more
// intersecting tiles, the result is truncated deterministically. An empty result is returned when the center of the
// bounding box is outside the grid or when the bounding box is inverted, i.e. its min corner lies above or right of its
// max corner.
//
// The returned slice belongs to the given state and is overwritten by the next search using that state.
func (g *Grid) TileListWithState(state *SearchState, bbox orb.Bound, maxTiles int) []int {
	state.reset(g.TileCount())

	if maxTiles <= 0 {
		return state.result
	}

	if !isOrdered(bbox) {
		sigolo.Debugf("Bbox %v has its min corner above or right of its max corner, no tiles found", bbox)
		return state.result
	}

	centerTileId := g.TileId(bbox.Center())
	if centerTileId == NoTile {
		sigolo.Debugf("Center of bbox %v is outside the grid, no tiles found", bbox)
		return state.result
	}

	state.enqueue(centerTileId)

	for state.hasPending() && len(state.result) < maxTiles {
		tileId := state.dequeue()

		if !g.TileBounds(tileId).Intersects(bbox) {
			continue
		}

		state.result = append(state.result, tileId)

		for _, neighborId := range g.Neighbors(tileId) {
			if neighborId != NoTile && !state.visited[neighborId] {
				state.enqueue(neighborId)
			}
		}
	}

	if sigolo.ShouldLogTrace() {
		sigolo.Tracef("Found %d tiles (max=%d) for bbox %v, checked %d tiles", len(state.result), maxTiles, bbox, state.head)
	}

	return state.result
}

// isOrdered returns true when the min corner of the bounding box is not above or right of its max corner. Bounding boxes
// with NaN coordinates are not ordered.
func isOrdered(bbox orb.Bound) bool {
	return bbox.Min.X() <= bbox.Max.X() && bbox.Min.Y() <= bbox.Max.Y()
}
