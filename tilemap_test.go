package mintcrate

import "testing"

func TestTilemapTileAt(t *testing.T) {
	m := NewTilemap(16, 16, 3, 2)
	m.SetLayer(LayerSolid, []int{
		1, 2, 3,
		4, 5, 6,
	})

	tests := []struct {
		name     string
		col, row int
		want     int
	}{
		{"top-left", 0, 0, 1},
		{"middle", 1, 1, 5},
		{"bottom-right", 2, 1, 6},
		{"col out of range", 3, 0, 0},
		{"row out of range", 0, 2, 0},
		{"negative", -1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.TileAt(LayerSolid, tt.col, tt.row); got != tt.want {
				t.Errorf("TileAt(%d, %d) = %d, want %d", tt.col, tt.row, got, tt.want)
			}
		})
	}

	if got := m.TileAt(LayerSpring, 0, 0); got != 0 {
		t.Errorf("TileAt on a missing layer = %d, want 0", got)
	}
}

func TestTilemapSetLayerPadsShortGrids(t *testing.T) {
	m := NewTilemap(16, 16, 4, 4)
	m.SetLayer(LayerSolid, []int{1, 1}) // 2 of 16 cells

	if got := m.TileAt(LayerSolid, 1, 0); got != 1 {
		t.Errorf("TileAt(1, 0) = %d, want 1", got)
	}
	if got := m.TileAt(LayerSolid, 3, 3); got != 0 {
		t.Errorf("TileAt(3, 3) = %d, want 0 (zero padded)", got)
	}
}

func TestTilemapLayersIndependent(t *testing.T) {
	m := NewTilemap(16, 16, 2, 2)
	m.SetLayer(LayerSolid, []int{1, 0, 0, 0})
	m.SetLayer(LayerPlatform, []int{0, 0, 0, 7})

	box := Rect{X: 0, Y: 0, Width: 32, Height: 32}
	if got := len(m.Collisions(box, LayerSolid)); got != 1 {
		t.Errorf("solid records = %d, want 1", got)
	}
	if got := len(m.Collisions(box, LayerPlatform)); got != 1 {
		t.Errorf("platform records = %d, want 1", got)
	}

	rec := m.Collisions(box, LayerPlatform)[0]
	if rec.Left != 16 || rec.Top != 16 {
		t.Errorf("platform record = %+v, want cell (1,1)", rec)
	}
}

func TestTilemapCollisionsClampedToGrid(t *testing.T) {
	m := NewTilemap(16, 16, 2, 2)
	m.SetLayer(LayerSolid, []int{1, 1, 1, 1})

	// Box much larger than the whole map, starting far negative.
	box := Rect{X: -100, Y: -100, Width: 1000, Height: 1000}
	if got := len(m.Collisions(box, LayerSolid)); got != 4 {
		t.Errorf("records = %d, want all 4 cells", got)
	}

	// Box entirely outside the grid.
	outside := Rect{X: 200, Y: 200, Width: 16, Height: 16}
	if got := len(m.Collisions(outside, LayerSolid)); got != 0 {
		t.Errorf("records = %d for an outside box, want 0", got)
	}
}

func TestTilemapCollisionsDegenerateBox(t *testing.T) {
	m := NewTilemap(16, 16, 2, 2)
	m.SetLayer(LayerSolid, []int{1, 1, 1, 1})

	if got := len(m.Collisions(Rect{X: 8, Y: 8}, LayerSolid)); got != 0 {
		t.Errorf("records = %d for a zero-size box, want 0", got)
	}
}

func TestTilemapAccessors(t *testing.T) {
	m := NewTilemap(8, 12, 40, 30)
	if tw, th := m.TileSize(); tw != 8 || th != 12 {
		t.Errorf("TileSize = %dx%d, want 8x12", tw, th)
	}
	if cols, rows := m.Size(); cols != 40 || rows != 30 {
		t.Errorf("Size = %dx%d, want 40x30", cols, rows)
	}
}
