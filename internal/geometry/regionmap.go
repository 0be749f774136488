package geometry

// BuildRegionMap labels the 4-connected components of walkable cells.
// Cells that are not walkable keep region -1.
func BuildRegionMap(width, height int, walkable func(x, y int) bool) RegionMap {
	w := width
	h := height
	total := w * h
	tileRegionIDs := make([]int, total)
	for i := range tileRegionIDs {
		tileRegionIDs[i] = -1
	}

	regionID := 0
	qx := make([]int, 0, total)
	qy := make([]int, 0, total)

	visit := func(nx, ny int) {
		nidx := ny*w + nx
		if tileRegionIDs[nidx] == -1 && walkable(nx, ny) {
			tileRegionIDs[nidx] = regionID
			qx = append(qx, nx)
			qy = append(qy, ny)
		}
	}

	for y := range h {
		for x := range w {
			idx := y*w + x
			if tileRegionIDs[idx] != -1 || !walkable(x, y) {
				continue
			}
			tileRegionIDs[idx] = regionID
			qx = qx[:0]
			qy = qy[:0]
			qx = append(qx, x)
			qy = append(qy, y)

			for len(qx) > 0 {
				cx := qx[0]
				cy := qy[0]
				qx = qx[1:]
				qy = qy[1:]

				if cx > 0 {
					visit(cx-1, cy)
				}
				if cx < w-1 {
					visit(cx+1, cy)
				}
				if cy > 0 {
					visit(cx, cy-1)
				}
				if cy < h-1 {
					visit(cx, cy+1)
				}
			}
			regionID++
		}
	}

	return RegionMap{Width: w, Height: h, TileRegionIDs: tileRegionIDs, RegionsCount: regionID}
}
