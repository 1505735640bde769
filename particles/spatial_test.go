package particles

import "testing"

func TestQueryRadiusExactDistance(t *testing.T) {
	g := NewSpatialHash(1000, 1000, 50)
	g.Insert(0, 100, 100)
	g.Insert(1, 140, 100) // 40 away
	g.Insert(2, 100, 160) // 60 away
	g.Insert(3, 500, 500) // far

	hits := g.QueryRadius(100, 100, 50)

	if len(hits) != 2 {
		t.Fatalf("hits = %d, want 2", len(hits))
	}
	found := map[int]float32{}
	for _, h := range hits {
		found[h.Index] = h.Dist
	}
	if found[1] != 40 {
		t.Errorf("dist to index 1 = %v, want 40", found[1])
	}
	if _, ok := found[0]; !ok || found[0] != 0 {
		t.Errorf("query center should report itself at distance 0, got %v", found)
	}
}

func TestQueryRadiusBoundaryInclusive(t *testing.T) {
	g := NewSpatialHash(1000, 1000, 50)
	g.Insert(0, 150, 100) // exactly radius away

	hits := g.QueryRadius(100, 100, 50)
	if len(hits) != 1 {
		t.Errorf("hit exactly on the radius should be included, got %d hits", len(hits))
	}
}

func TestInsertOutsideBoundsClamped(t *testing.T) {
	g := NewSpatialHash(200, 200, 50)
	g.Insert(0, -50, -50)
	g.Insert(1, 500, 500)

	// Both should land in edge cells and still be findable
	if hits := g.QueryRadius(0, 0, 80); len(hits) != 1 {
		t.Errorf("negative-position entry not found, hits = %d", len(hits))
	}
	if hits := g.QueryRadius(500, 500, 800); len(hits) != 2 {
		t.Errorf("want both entries within large radius, hits = %d", len(hits))
	}
}

func TestQueryRadiusIntoReusesSlice(t *testing.T) {
	g := NewSpatialHash(1000, 1000, 50)
	for i := 0; i < 10; i++ {
		g.Insert(i, float32(i*5), 100)
	}

	buf := make([]Hit, 0, 16)
	first := g.QueryRadiusInto(buf, 25, 100, 100)
	second := g.QueryRadiusInto(first[:0], 25, 100, 100)

	if len(first) != len(second) {
		t.Fatalf("reused query returned %d hits, want %d", len(second), len(first))
	}
	if cap(second) != cap(first) {
		t.Errorf("reuse reallocated: cap %d -> %d", cap(first), cap(second))
	}
}

func TestClearKeepsGridUsable(t *testing.T) {
	g := NewSpatialHash(1000, 1000, 50)
	g.Insert(0, 100, 100)
	g.Clear()

	if hits := g.QueryRadius(100, 100, 50); len(hits) != 0 {
		t.Errorf("hits after clear = %d, want 0", len(hits))
	}

	g.Insert(1, 100, 100)
	if hits := g.QueryRadius(100, 100, 50); len(hits) != 1 {
		t.Errorf("hits after reinsert = %d, want 1", len(hits))
	}
}

func TestResizeRebuildsEmptyGrid(t *testing.T) {
	g := NewSpatialHash(1000, 1000, 50)
	g.Insert(0, 100, 100)

	g.Resize(500, 500)

	if hits := g.QueryRadius(100, 100, 50); len(hits) != 0 {
		t.Errorf("grid should be empty after resize, hits = %d", len(hits))
	}
	if g.cols != 11 || g.rows != 11 {
		t.Errorf("grid = %dx%d, want 11x11", g.cols, g.rows)
	}
}
