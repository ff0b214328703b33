package mintcrate

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Common semantic layer identifiers. A game may use any int; these cover
// the conventional platformer set.
const (
	LayerSolid    = 1 // solid obstacle
	LayerPlatform = 2 // one-way platform
	LayerSpring   = 3 // spring / bouncer
)

// Tilemap is a set of row-major tile-code grids, one grid per semantic
// layer, sharing a uniform tile size. Cell (c, r) has fixed world edges
// left = c*tw, top = r*th; the mapping never changes at runtime. Tilemaps
// are immutable after room setup.
type Tilemap struct {
	tileWidth  int
	tileHeight int
	cols       int
	rows       int
	layers     map[int][]int

	// Visuals (optional): a tileset sheet blitted by the draw pass. Tile
	// code N draws cell N-1 of the sheet, left-to-right, top-to-bottom.
	// Code 0 is empty.
	sheet       *ebiten.Image
	visualLayer int
}

// NewTilemap creates a tilemap with the given tile size and grid dimensions
// in cells.
func NewTilemap(tileWidth, tileHeight, cols, rows int) *Tilemap {
	return &Tilemap{
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		cols:       cols,
		rows:       rows,
		layers:     make(map[int][]int),
	}
}

// SetLayer installs the tile-code grid for a semantic layer. The grid is
// row-major with length cols*rows; a shorter grid is treated as padded with
// zeros. Part of room setup; not for use after the room starts.
func (m *Tilemap) SetLayer(layer int, codes []int) *Tilemap {
	grid := make([]int, m.cols*m.rows)
	copy(grid, codes)
	m.layers[layer] = grid
	return m
}

// SetSheet attaches a tileset sheet for the draw pass and selects which
// layer's codes index into it. Purely visual; collision queries ignore it.
func (m *Tilemap) SetSheet(sheet *ebiten.Image, layer int) *Tilemap {
	m.sheet = sheet
	m.visualLayer = layer
	return m
}

// TileSize returns the tile width and height in pixels.
func (m *Tilemap) TileSize() (int, int) {
	return m.tileWidth, m.tileHeight
}

// Size returns the grid dimensions in cells.
func (m *Tilemap) Size() (cols, rows int) {
	return m.cols, m.rows
}

// TileAt returns the tile code at cell (col, row) on the given layer.
// Out-of-range cells and missing layers yield 0.
func (m *Tilemap) TileAt(layer, col, row int) int {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return 0
	}
	grid, ok := m.layers[layer]
	if !ok {
		return 0
	}
	return grid[row*m.cols+col]
}

// Collisions returns one CollisionRecord per non-empty cell on the given
// layer whose fixed world rectangle overlaps box, in row-major scan order
// (top-to-bottom, then left-to-right). A missing or empty layer yields an
// empty result, never an error.
func (m *Tilemap) Collisions(box Rect, layer int) []CollisionRecord {
	grid, ok := m.layers[layer]
	if !ok {
		return nil
	}

	tw := float64(m.tileWidth)
	th := float64(m.tileHeight)

	// Inclusive cell range the box overlaps. The right/bottom edge of the
	// box lying exactly on a cell boundary does not reach into the next
	// cell (strict overlap, matching Rect.Overlaps).
	startCol := int(math.Floor(box.X / tw))
	startRow := int(math.Floor(box.Y / th))
	endCol := int(math.Ceil((box.X+box.Width)/tw)) - 1
	endRow := int(math.Ceil((box.Y+box.Height)/th)) - 1

	if startCol < 0 {
		startCol = 0
	}
	if startRow < 0 {
		startRow = 0
	}
	if endCol >= m.cols {
		endCol = m.cols - 1
	}
	if endRow >= m.rows {
		endRow = m.rows - 1
	}
	if startCol > endCol || startRow > endRow || box.Width <= 0 || box.Height <= 0 {
		return nil
	}

	var records []CollisionRecord
	for row := startRow; row <= endRow; row++ {
		rowOffset := row * m.cols
		for col := startCol; col <= endCol; col++ {
			if grid[rowOffset+col] == 0 {
				continue
			}
			left := float64(col) * tw
			top := float64(row) * th
			records = append(records, CollisionRecord{
				Left:   left,
				Right:  left + tw,
				Top:    top,
				Bottom: top + th,
			})
		}
	}
	return records
}
