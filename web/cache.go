package web

import (
	"github.com/paulmach/orb"
	"math"
	"strconv"
	"sync"
)

// lruTileListCache is a simple LRU (least recently used) cache for tile list results. It has an internal locking
// mechanism and can be used in concurrent goroutines. The recency of an entry is a counter increased on every read and
// insert. Cached lists are shared between callers and must not be modified.
type lruTileListCache struct {
	tileLists       map[string][]int
	lastAccessTimes map[string]uint64
	accessCounter   uint64
	mutex           *sync.Mutex
	maxSize         int // Maximum number of entries this cache should hold
}

func newLruCache(maxSize int) *lruTileListCache {
	return &lruTileListCache{
		tileLists:       map[string][]int{},
		lastAccessTimes: map[string]uint64{},
		mutex:           &sync.Mutex{},
		maxSize:         maxSize,
	}
}

// tileListCacheKey identifies a tile list request. Equal bounding boxes, limits and clamp modes result in equal keys.
func tileListCacheKey(bbox orb.Bound, maxTiles int, clamp bool) string {
	key := make([]byte, 0, 64)
	for _, v := range []float64{bbox.Min.X(), bbox.Min.Y(), bbox.Max.X(), bbox.Max.Y()} {
		key = strconv.AppendFloat(key, v, 'g', -1, 64)
		key = append(key, ',')
	}
	key = strconv.AppendInt(key, int64(maxTiles), 10)
	if clamp {
		key = append(key, ",clamp"...)
	}
	return string(key)
}

// get returns the cached tile list and true or nil and false when the key is not cached.
func (c *lruTileListCache) get(key string) ([]int, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	tileIds, ok := c.tileLists[key]
	if !ok {
		return nil, false
	}

	c.touch(key)
	return tileIds, true
}

// insert adds or replaces the tile list of the given key. If the cache is full, the entry that hasn't been used longest
// will be evicted from the cache.
func (c *lruTileListCache) insert(key string, tileIds []int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.maxSize <= 0 {
		return
	}

	if _, ok := c.tileLists[key]; !ok && len(c.tileLists) >= c.maxSize {
		longestUnusedKey := c.getMinEntry()
		delete(c.tileLists, longestUnusedKey)
		delete(c.lastAccessTimes, longestUnusedKey)
	}

	c.touch(key)
	c.tileLists[key] = tileIds
}

// touch marks the key as most recently used. This function does NOT use locking and is meant for internal use only!
func (c *lruTileListCache) touch(key string) {
	c.accessCounter++
	c.lastAccessTimes[key] = c.accessCounter
}

// getMinEntry returns the entry that hasn't been used longest. This function does NOT use locking and is meant for
// internal use only!
func (c *lruTileListCache) getMinEntry() string {
	minAccessTime := uint64(math.MaxUint64)
	minKey := ""

	for key, accessTime := range c.lastAccessTimes {
		if accessTime < minAccessTime {
			minAccessTime = accessTime
			minKey = key
		}
	}

	return minKey
}
