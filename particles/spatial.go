package particles

// Hit is a particle returned by a radius query, with its exact Euclidean
// distance from the query center.
type Hit struct {
	Index int
	X, Y  float32
	Dist  float32
}

// entry is a particle reference bucketed into a grid cell. The index owns no
// particle data; the structure is rebuilt from the store every frame it is
// queried.
type entry struct {
	index int
	x, y  float32
}

// SpatialHash partitions the plane into square cells for O(1)-amortized
// radius queries. Query cost is bounded by local density rather than total
// particle count.
type SpatialHash struct {
	cellSize      float32
	cols, rows    int
	width, height float32
	cells         [][]entry // flat grid of cell buckets
}

// NewSpatialHash creates a grid covering width x height with square cells.
func NewSpatialHash(width, height, cellSize float32) *SpatialHash {
	g := &SpatialHash{cellSize: cellSize}
	g.Resize(width, height)
	return g
}

// Resize updates the covered dimensions and reallocates the cell grid.
// The grid is empty afterwards; callers rebuild it before querying.
func (g *SpatialHash) Resize(width, height float32) {
	g.width = width
	g.height = height
	g.cols = max(1, int(width/g.cellSize)+1)
	g.rows = max(1, int(height/g.cellSize)+1)

	g.cells = make([][]entry, g.cols*g.rows)
	for i := range g.cells {
		g.cells[i] = make([]entry, 0, 8) // pre-allocate small capacity
	}
}

// Clear removes all entries from the grid, keeping bucket capacity.
func (g *SpatialHash) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds a particle reference at the given position. Positions outside
// the covered area are clamped into the edge cells.
func (g *SpatialHash) Insert(index int, x, y float32) {
	idx := g.cellIndex(x, y)
	g.cells[idx] = append(g.cells[idx], entry{index: index, x: x, y: y})
}

// QueryRadius returns all particles within radius of (cx, cy).
func (g *SpatialHash) QueryRadius(cx, cy, radius float32) []Hit {
	return g.QueryRadiusInto(nil, cx, cy, radius)
}

// QueryRadiusInto finds particles within radius and appends them to dst,
// returning the updated slice. Reuse dst across calls to avoid allocations.
// It enumerates the cells overlapping the circle's bounding box, then filters
// by exact distance.
func (g *SpatialHash) QueryRadiusInto(dst []Hit, cx, cy, radius float32) []Hit {
	minCol := clampInt(int((cx-radius)/g.cellSize), 0, g.cols-1)
	maxCol := clampInt(int((cx+radius)/g.cellSize), 0, g.cols-1)
	minRow := clampInt(int((cy-radius)/g.cellSize), 0, g.rows-1)
	maxRow := clampInt(int((cy+radius)/g.cellSize), 0, g.rows-1)

	radiusSq := radius * radius

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			for _, e := range g.cells[row*g.cols+col] {
				dx := e.x - cx
				dy := e.y - cy
				distSq := dx*dx + dy*dy
				if distSq <= radiusSq {
					dst = append(dst, Hit{
						Index: e.index,
						X:     e.x,
						Y:     e.y,
						Dist:  hypot32(dx, dy),
					})
				}
			}
		}
	}

	return dst
}

// cellIndex returns the flat cell index for a position, clamped to the grid.
func (g *SpatialHash) cellIndex(x, y float32) int {
	col := clampInt(int(x/g.cellSize), 0, g.cols-1)
	row := clampInt(int(y/g.cellSize), 0, g.rows-1)
	return row*g.cols + col
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
