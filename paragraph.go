package mintcrate

import "strings"

// Paragraph is a formatted bitmap-text entity. Paragraphs draw after every
// backdrop and active, so text is always topmost.
type Paragraph struct {
	Entity

	// Align positions each line within the paragraph's measured width.
	Align TextAlign

	// WordWrap breaks lines at word boundaries so no line exceeds
	// MaxLineChars characters. Words longer than a line are broken hard.
	WordWrap bool

	// MaxLineChars is the wrap width in characters. Zero disables wrapping
	// even when WordWrap is set.
	MaxLineChars int

	// LineSpacing is the extra vertical gap between lines, in pixels, on
	// top of the font's glyph height.
	LineSpacing float64

	text        string
	font        *FontDef
	lines       []string
	layoutDirty bool
}

// Text returns the raw text content.
func (p *Paragraph) Text() string {
	return p.text
}

// SetText replaces the text content and invalidates the cached layout.
func (p *Paragraph) SetText(text string) {
	if checkDestroyed(&p.Entity, "SetText") {
		return
	}
	if text == p.text {
		return
	}
	p.text = text
	p.layoutDirty = true
}

// FontName returns the name of the FontDef this paragraph renders with.
func (p *Paragraph) FontName() string {
	if p.font == nil {
		return ""
	}
	return p.font.Name
}

// GlyphHeight returns the font's glyph height in pixels: the derived
// vertical metric for one line before LineSpacing.
func (p *Paragraph) GlyphHeight() float64 {
	if p.font == nil {
		return 0
	}
	return float64(p.font.GlyphHeight)
}

// Lines returns the laid-out lines after newline splitting and word wrap.
// The returned slice MUST NOT be mutated by the caller.
func (p *Paragraph) Lines() []string {
	p.layout()
	return p.lines
}

// Measure returns the paragraph's rendered size in pixels.
func (p *Paragraph) Measure() (w, h float64) {
	p.layout()
	if p.font == nil || len(p.lines) == 0 {
		return 0, 0
	}
	longest := 0
	for _, line := range p.lines {
		if n := len([]rune(line)); n > longest {
			longest = n
		}
	}
	w = float64(longest * p.font.GlyphWidth)
	h = float64(len(p.lines))*p.GlyphHeight() +
		float64(len(p.lines)-1)*p.LineSpacing
	return w, h
}

// layout recomputes the cached line list if dirty.
func (p *Paragraph) layout() {
	if !p.layoutDirty {
		return
	}
	p.layoutDirty = false
	p.lines = p.lines[:0]

	for _, raw := range strings.Split(p.text, "\n") {
		if !p.WordWrap || p.MaxLineChars <= 0 {
			p.lines = append(p.lines, raw)
			continue
		}
		p.lines = appendWrapped(p.lines, raw, p.MaxLineChars)
	}
}

// appendWrapped splits one logical line into physical lines of at most
// width characters, breaking at spaces where possible.
func appendWrapped(lines []string, text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return append(lines, "")
	}

	var cur strings.Builder
	curLen := 0
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curLen = 0
	}

	for _, word := range words {
		wordLen := len([]rune(word))

		// Hard-break words that can never fit on one line.
		for wordLen > width {
			if curLen > 0 {
				flush()
			}
			runes := []rune(word)
			lines = append(lines, string(runes[:width]))
			word = string(runes[width:])
			wordLen = len(runes) - width
		}

		sep := 0
		if curLen > 0 {
			sep = 1
		}
		if curLen+sep+wordLen > width {
			flush()
			sep = 0
		}
		if sep == 1 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(word)
		curLen += wordLen
	}
	if curLen > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// lineOffsetX returns the horizontal offset for one line given the
// paragraph's measured width, honoring the alignment.
func (p *Paragraph) lineOffsetX(line string, paragraphW float64) float64 {
	if p.font == nil {
		return 0
	}
	lineW := float64(len([]rune(line)) * p.font.GlyphWidth)
	switch p.Align {
	case TextAlignCenter:
		return (paragraphW - lineW) / 2
	case TextAlignEnd:
		return paragraphW - lineW
	default:
		return 0
	}
}

// Destroy removes the Paragraph from its registry immediately and
// invalidates the handle. Idempotent; always returns the nil sentinel.
func (p *Paragraph) Destroy() *Paragraph {
	if p == nil || p.destroyed {
		return nil
	}
	p.reg.removeParagraph(p)
	p.destroyed = true
	return nil
}

// BringForward swaps the Paragraph with its immediate successor in the
// paragraph collection.
func (p *Paragraph) BringForward() {
	if checkDestroyed(&p.Entity, "BringForward") {
		return
	}
	swapForward(p.reg.paragraphs, p)
}

// SendBackward swaps the Paragraph with its immediate predecessor.
func (p *Paragraph) SendBackward() {
	if checkDestroyed(&p.Entity, "SendBackward") {
		return
	}
	swapBackward(p.reg.paragraphs, p)
}

// BringToFront moves the Paragraph to the tail of the paragraph collection.
func (p *Paragraph) BringToFront() {
	if checkDestroyed(&p.Entity, "BringToFront") {
		return
	}
	p.reg.paragraphs = moveToTail(p.reg.paragraphs, p)
}

// SendToBack moves the Paragraph to the head of the paragraph collection.
func (p *Paragraph) SendToBack() {
	if checkDestroyed(&p.Entity, "SendToBack") {
		return
	}
	p.reg.paragraphs = moveToHead(p.reg.paragraphs, p)
}
