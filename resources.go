package mintcrate

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// ActiveDef is the declarative definition an Active is created from:
// collision geometry, sprite-sheet slicing, and the named animation table.
// Definitions are immutable lookup tables once the game starts; textures
// are attached by the host during setup.
type ActiveDef struct {
	Name             string
	Collider         Collider
	Animations       map[string]*AnimationDef
	DefaultAnimation string

	// Sheet is the sprite sheet; frame f of an animation on row r is the
	// cell at (f*FrameWidth, r*FrameHeight).
	Sheet       *ebiten.Image
	FrameWidth  int
	FrameHeight int

	// ActionPointX/Y is a semantic anchor offset for game logic.
	ActionPointX float64
	ActionPointY float64
}

// BackdropDef is the declarative definition a Backdrop is created from.
// Width and Height mirror the texture dimensions so layout logic can run
// without the texture attached (headless tests, tooling).
type BackdropDef struct {
	Name    string
	Texture *ebiten.Image
	Width   int
	Height  int
	Mosaic  bool
}

// Library is the name-keyed table of entity and font definitions consumed
// by a Registry. Register everything during setup; the library is treated
// as immutable once the game runs.
type Library struct {
	actives   map[string]*ActiveDef
	backdrops map[string]*BackdropDef
	fonts     map[string]*FontDef
}

// NewLibrary creates an empty definition library.
func NewLibrary() *Library {
	return &Library{
		actives:   make(map[string]*ActiveDef),
		backdrops: make(map[string]*BackdropDef),
		fonts:     make(map[string]*FontDef),
	}
}

// RegisterActive adds an ActiveDef under def.Name, replacing any previous
// definition with that name.
func (l *Library) RegisterActive(def *ActiveDef) error {
	if def == nil || def.Name == "" {
		return fmt.Errorf("mintcrate: active definition needs a name")
	}
	if def.Animations == nil {
		def.Animations = make(map[string]*AnimationDef)
	}
	if def.DefaultAnimation != "" {
		if _, ok := def.Animations[def.DefaultAnimation]; !ok {
			return fmt.Errorf("mintcrate: active %q: default animation %q not defined",
				def.Name, def.DefaultAnimation)
		}
	}
	for name, anim := range def.Animations {
		if anim.FrameCount <= 0 {
			return fmt.Errorf("mintcrate: active %q: animation %q needs at least one frame",
				def.Name, name)
		}
	}
	l.actives[def.Name] = def
	return nil
}

// RegisterBackdrop adds a BackdropDef under def.Name.
func (l *Library) RegisterBackdrop(def *BackdropDef) error {
	if def == nil || def.Name == "" {
		return fmt.Errorf("mintcrate: backdrop definition needs a name")
	}
	l.backdrops[def.Name] = def
	return nil
}

// RegisterFont adds a FontDef under def.Name.
func (l *Library) RegisterFont(def *FontDef) error {
	if def == nil || def.Name == "" {
		return fmt.Errorf("mintcrate: font definition needs a name")
	}
	if def.GlyphWidth <= 0 || def.GlyphHeight <= 0 || def.Columns <= 0 {
		return fmt.Errorf("mintcrate: font %q: glyph size and columns must be positive", def.Name)
	}
	l.fonts[def.Name] = def
	return nil
}

// ActiveDef returns the registered ActiveDef, or nil. Intended for setup
// code attaching textures.
func (l *Library) ActiveDef(name string) *ActiveDef { return l.actives[name] }

// BackdropDef returns the registered BackdropDef, or nil.
func (l *Library) BackdropDef(name string) *BackdropDef { return l.backdrops[name] }

// FontDef returns the registered FontDef, or nil.
func (l *Library) FontDef(name string) *FontDef { return l.fonts[name] }

func (l *Library) active(name string) *ActiveDef     { return l.actives[name] }
func (l *Library) backdrop(name string) *BackdropDef { return l.backdrops[name] }
func (l *Library) font(name string) *FontDef         { return l.fonts[name] }

// --- YAML loading ---

type yamlLibrary struct {
	Actives   map[string]yamlActive   `yaml:"actives"`
	Backdrops map[string]yamlBackdrop `yaml:"backdrops"`
	Fonts     map[string]yamlFont     `yaml:"fonts"`
}

type yamlActive struct {
	Collider         yamlCollider             `yaml:"collider"`
	FrameWidth       int                      `yaml:"frame_width"`
	FrameHeight      int                      `yaml:"frame_height"`
	DefaultAnimation string                   `yaml:"default_animation"`
	ActionPoint      yamlVec                  `yaml:"action_point"`
	Animations       map[string]yamlAnimation `yaml:"animations"`
}

type yamlCollider struct {
	Shape   string  `yaml:"shape"` // "rectangle" (default) or "circle"
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Radius  float64 `yaml:"radius"`
}

type yamlAnimation struct {
	Frames    int       `yaml:"frames"`
	Duration  int       `yaml:"duration"`
	Durations []int     `yaml:"durations"`
	Loop      bool      `yaml:"loop"`
	Row       int       `yaml:"row"`
	OffsetX   float64   `yaml:"offset_x"`
	OffsetY   float64   `yaml:"offset_y"`
	Offsets   []yamlVec `yaml:"offsets"`
}

type yamlVec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type yamlBackdrop struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Mosaic bool `yaml:"mosaic"`
}

type yamlFont struct {
	GlyphWidth  int    `yaml:"glyph_width"`
	GlyphHeight int    `yaml:"glyph_height"`
	Columns     int    `yaml:"columns"`
	Charset     string `yaml:"charset"`
}

// LoadLibrary parses a YAML definition table into a Library. Textures are
// not part of the file; attach them afterwards via the *Def accessors.
func LoadLibrary(data []byte) (*Library, error) {
	var doc yamlLibrary
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("mintcrate: parse library: %w", err)
	}

	lib := NewLibrary()
	for name, ya := range doc.Actives {
		def := &ActiveDef{
			Name:             name,
			Collider:         ya.Collider.collider(),
			FrameWidth:       ya.FrameWidth,
			FrameHeight:      ya.FrameHeight,
			DefaultAnimation: ya.DefaultAnimation,
			ActionPointX:     ya.ActionPoint.X,
			ActionPointY:     ya.ActionPoint.Y,
			Animations:       make(map[string]*AnimationDef, len(ya.Animations)),
		}
		for animName, yn := range ya.Animations {
			anim := &AnimationDef{
				FrameCount:     yn.Frames,
				FrameDuration:  yn.Duration,
				FrameDurations: yn.Durations,
				Loop:           yn.Loop,
				Row:            yn.Row,
				OffsetX:        yn.OffsetX,
				OffsetY:        yn.OffsetY,
			}
			for _, v := range yn.Offsets {
				anim.FrameOffsets = append(anim.FrameOffsets, Vec2{X: v.X, Y: v.Y})
			}
			def.Animations[animName] = anim
		}
		if err := lib.RegisterActive(def); err != nil {
			return nil, err
		}
	}
	for name, yb := range doc.Backdrops {
		def := &BackdropDef{
			Name:   name,
			Width:  yb.Width,
			Height: yb.Height,
			Mosaic: yb.Mosaic,
		}
		if err := lib.RegisterBackdrop(def); err != nil {
			return nil, err
		}
	}
	for name, yf := range doc.Fonts {
		def := &FontDef{
			Name:        name,
			GlyphWidth:  yf.GlyphWidth,
			GlyphHeight: yf.GlyphHeight,
			Columns:     yf.Columns,
			Charset:     yf.Charset,
		}
		if err := lib.RegisterFont(def); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

func (c yamlCollider) collider() Collider {
	shape := ColliderRectangle
	if c.Shape == "circle" {
		shape = ColliderCircle
	}
	return Collider{
		Shape:   shape,
		OffsetX: c.OffsetX,
		OffsetY: c.OffsetY,
		Width:   c.Width,
		Height:  c.Height,
		Radius:  c.Radius,
	}
}
