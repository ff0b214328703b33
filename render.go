package mintcrate

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Draw renders the frame: room background, backdrops, tilemap visuals,
// actives, paragraphs, then the fade overlay. Implements ebiten.Game.
// The traversal is read-only; draw order is the registry's two-level
// ordering and nothing else.
func (g *Game) Draw(screen *ebiten.Image) {
	room := g.rooms.Current()
	if room == nil {
		return
	}
	screen.Fill(room.Background.toRGBA())

	camX, camY := room.CameraX, room.CameraY

	for _, b := range g.registry.backdrops {
		if b.Visible {
			drawBackdrop(screen, b, camX, camY)
		}
	}
	if room.tilemap != nil {
		drawTilemap(screen, room.tilemap, camX, camY)
	}
	for _, a := range g.registry.actives {
		if a.Visible {
			drawActive(screen, a, camX, camY)
		}
	}
	for _, p := range g.registry.paragraphs {
		if p.Visible {
			drawParagraph(screen, p, camX, camY)
		}
	}

	if color, alpha := room.FadeOverlay(); alpha > 0 {
		drawOverlay(screen, color, alpha)
	}
}

func drawBackdrop(screen *ebiten.Image, b *Backdrop, camX, camY float64) {
	def := b.def
	if def == nil || def.Texture == nil {
		return
	}
	x := b.X - camX
	y := b.Y - camY

	if !b.Mosaic {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		screen.DrawImage(def.Texture, op)
		return
	}

	// Mosaic: repeat the texture across the draw area, clipping the
	// partial tiles at the right and bottom edges.
	areaW, areaH := b.DrawSize()
	texW := float64(def.Width)
	texH := float64(def.Height)
	if texW <= 0 || texH <= 0 {
		return
	}
	for ty := 0.0; ty < areaH; ty += texH {
		for tx := 0.0; tx < areaW; tx += texW {
			src := def.Texture
			w := texW
			h := texH
			if tx+w > areaW {
				w = areaW - tx
			}
			if ty+h > areaH {
				h = areaH - ty
			}
			if w < texW || h < texH {
				src = def.Texture.SubImage(image.Rect(0, 0, int(w), int(h))).(*ebiten.Image)
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x+tx, y+ty)
			screen.DrawImage(src, op)
		}
	}
}

func drawTilemap(screen *ebiten.Image, m *Tilemap, camX, camY float64) {
	if m.sheet == nil {
		return
	}
	grid, ok := m.layers[m.visualLayer]
	if !ok {
		return
	}
	sheetCols := m.sheet.Bounds().Dx() / m.tileWidth
	if sheetCols <= 0 {
		return
	}
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			code := grid[row*m.cols+col]
			if code <= 0 {
				continue
			}
			cell := code - 1
			sx := (cell % sheetCols) * m.tileWidth
			sy := (cell / sheetCols) * m.tileHeight
			src := m.sheet.SubImage(image.Rect(sx, sy, sx+m.tileWidth, sy+m.tileHeight)).(*ebiten.Image)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(col*m.tileWidth)-camX, float64(row*m.tileHeight)-camY)
			screen.DrawImage(src, op)
		}
	}
}

func drawActive(screen *ebiten.Image, a *Active, camX, camY float64) {
	def := a.def
	if def == nil || def.Sheet == nil || def.FrameWidth <= 0 || def.FrameHeight <= 0 {
		return
	}
	anim := a.animDef()
	row := 0
	if anim != nil {
		row = anim.Row
	}
	sx := a.frame * def.FrameWidth
	sy := row * def.FrameHeight
	src := def.Sheet.SubImage(image.Rect(sx, sy, sx+def.FrameWidth, sy+def.FrameHeight)).(*ebiten.Image)

	fw := float64(def.FrameWidth)
	fh := float64(def.FrameHeight)
	off := a.VisualOffset()

	scaleX, scaleY := a.ScaleX, a.ScaleY
	if a.FlipX {
		scaleX = -scaleX
	}
	if a.FlipY {
		scaleY = -scaleY
	}

	// Scale, flip, and rotate about the frame center, then place the
	// frame's top-left at the entity position plus the visual offset.
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-fw/2, -fh/2)
	op.GeoM.Scale(scaleX, scaleY)
	op.GeoM.Rotate(a.Rotation)
	op.GeoM.Translate(a.X+off.X-camX+fw/2, a.Y+off.Y-camY+fh/2)
	if a.Opacity < 1 {
		op.ColorScale.ScaleAlpha(float32(clamp01(a.Opacity)))
	}
	screen.DrawImage(src, op)
}

func drawParagraph(screen *ebiten.Image, p *Paragraph, camX, camY float64) {
	font := p.font
	if font == nil || font.Sheet == nil {
		return
	}
	lines := p.Lines()
	paraW, _ := p.Measure()
	lineAdvance := p.GlyphHeight() + p.LineSpacing

	for i, line := range lines {
		x := p.X + p.lineOffsetX(line, paraW) - camX
		y := p.Y + float64(i)*lineAdvance - camY
		for _, r := range line {
			col, row, ok := font.glyphCell(r)
			if ok {
				gx := col * font.GlyphWidth
				gy := row * font.GlyphHeight
				src := font.Sheet.SubImage(
					image.Rect(gx, gy, gx+font.GlyphWidth, gy+font.GlyphHeight),
				).(*ebiten.Image)
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(x, y)
				screen.DrawImage(src, op)
			}
			x += float64(font.GlyphWidth)
		}
	}
}

// drawOverlay blends the fade color over the whole frame at the given
// alpha. The overlay is a draw-pass transform, not an entity.
func drawOverlay(screen *ebiten.Image, c Color, alpha float64) {
	bounds := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()), float64(bounds.Dy()))
	op.GeoM.Translate(float64(bounds.Min.X), float64(bounds.Min.Y))
	a := clamp01(alpha)
	op.ColorScale.Scale(
		float32(clamp01(c.R)*a),
		float32(clamp01(c.G)*a),
		float32(clamp01(c.B)*a),
		float32(a),
	)
	screen.DrawImage(ensureWhitePixel(), op)
}
