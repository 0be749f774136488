package geometry

import "github.com/zyedidia/generic/mapset"

// RegionAt returns the region id of p, or -1 when p is outside the map or not walkable.
func RegionAt(regionMap RegionMap, p Point) int {
	if p.X < 0 || p.Y < 0 || p.X >= regionMap.Width || p.Y >= regionMap.Height {
		return -1
	}
	return regionMap.TileRegionIDs[p.Y*regionMap.Width+p.X]
}

// Connected reports whether every point sits on a walkable cell of one shared region.
// An empty list is trivially connected.
func Connected(regionMap RegionMap, points []Point) bool {
	ids := mapset.New[int]()
	for _, p := range points {
		id := RegionAt(regionMap, p)
		if id == -1 {
			return false
		}
		ids.Put(id)
	}
	return ids.Size() <= 1
}
