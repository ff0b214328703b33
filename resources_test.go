package mintcrate

import (
	"strings"
	"testing"
)

func TestRegisterActiveValidation(t *testing.T) {
	lib := NewLibrary()

	tests := []struct {
		name    string
		def     *ActiveDef
		wantErr string
	}{
		{"nil def", nil, "needs a name"},
		{"empty name", &ActiveDef{}, "needs a name"},
		{
			"missing default animation",
			&ActiveDef{
				Name:             "slime",
				DefaultAnimation: "walk",
				Animations:       map[string]*AnimationDef{"idle": {FrameCount: 1}},
			},
			"not defined",
		},
		{
			"zero frame count",
			&ActiveDef{
				Name:       "slime",
				Animations: map[string]*AnimationDef{"idle": {FrameCount: 0}},
			},
			"at least one frame",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := lib.RegisterActive(tt.def)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}

	// No animations at all is fine (a static prop).
	if err := lib.RegisterActive(&ActiveDef{Name: "crate"}); err != nil {
		t.Errorf("RegisterActive(crate): %v", err)
	}
}

func TestRegisterFontValidation(t *testing.T) {
	lib := NewLibrary()
	err := lib.RegisterFont(&FontDef{Name: "bad", GlyphWidth: 8, GlyphHeight: 0, Columns: 16})
	if err == nil {
		t.Error("zero glyph height must be rejected")
	}
	err = lib.RegisterFont(&FontDef{Name: "bad", GlyphWidth: 8, GlyphHeight: 8, Columns: 0})
	if err == nil {
		t.Error("zero columns must be rejected")
	}
}

const testLibraryYAML = `
actives:
  player:
    frame_width: 16
    frame_height: 24
    default_animation: idle
    collider:
      width: 12
      height: 22
      offset_x: 2
      offset_y: 2
    action_point:
      x: 14
      y: 12
    animations:
      idle:
        frames: 4
        duration: 10
        loop: true
      jump:
        frames: 3
        durations: [4, 6, 8]
        row: 1
        offset_y: -2
  bullet:
    collider:
      shape: circle
      radius: 3
      offset_x: 3
      offset_y: 3
    default_animation: fly
    animations:
      fly:
        frames: 2
        duration: 2
        loop: true
        offsets:
          - {x: 0, y: 0}
          - {x: 0, y: -1}
backdrops:
  clouds:
    width: 320
    height: 96
    mosaic: true
fonts:
  hud:
    glyph_width: 8
    glyph_height: 8
    columns: 16
    charset: " 0123456789"
`

func TestLoadLibrary(t *testing.T) {
	lib, err := LoadLibrary([]byte(testLibraryYAML))
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}

	player := lib.ActiveDef("player")
	if player == nil {
		t.Fatal("player definition missing")
	}
	if player.FrameWidth != 16 || player.FrameHeight != 24 {
		t.Errorf("frame size = %dx%d, want 16x24", player.FrameWidth, player.FrameHeight)
	}
	if player.Collider.Shape != ColliderRectangle || player.Collider.Width != 12 {
		t.Errorf("collider = %+v, want a 12-wide rectangle", player.Collider)
	}
	if player.ActionPointX != 14 || player.ActionPointY != 12 {
		t.Errorf("action point = (%v, %v), want (14, 12)", player.ActionPointX, player.ActionPointY)
	}

	idle := player.Animations["idle"]
	if idle == nil || idle.FrameCount != 4 || idle.FrameDuration != 10 || !idle.Loop {
		t.Errorf("idle = %+v, want 4 frames x 10 ticks looping", idle)
	}
	jump := player.Animations["jump"]
	if jump == nil || len(jump.FrameDurations) != 3 || jump.FrameDurations[2] != 8 {
		t.Errorf("jump durations = %+v, want [4 6 8]", jump)
	}
	if jump.Row != 1 || jump.OffsetY != -2 {
		t.Errorf("jump row/offset = %d/%v, want 1/-2", jump.Row, jump.OffsetY)
	}

	bullet := lib.ActiveDef("bullet")
	if bullet == nil || bullet.Collider.Shape != ColliderCircle || bullet.Collider.Radius != 3 {
		t.Fatalf("bullet collider = %+v, want a circle of radius 3", bullet.Collider)
	}
	fly := bullet.Animations["fly"]
	if len(fly.FrameOffsets) != 2 || fly.FrameOffsets[1] != (Vec2{0, -1}) {
		t.Errorf("fly offsets = %+v, want per-frame offsets", fly.FrameOffsets)
	}

	clouds := lib.BackdropDef("clouds")
	if clouds == nil || !clouds.Mosaic || clouds.Width != 320 {
		t.Errorf("clouds = %+v, want a 320-wide mosaic", clouds)
	}

	hud := lib.FontDef("hud")
	if hud == nil || hud.Columns != 16 || hud.Charset != " 0123456789" {
		t.Errorf("hud = %+v, want the declared grid font", hud)
	}
}

func TestLoadLibraryDrivesRegistry(t *testing.T) {
	lib, err := LoadLibrary([]byte(testLibraryYAML))
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	reg := NewRegistry(lib)

	a, err := reg.AddActive("player", 0, 0)
	if err != nil {
		t.Fatalf("AddActive: %v", err)
	}
	if a.AnimationName() != "idle" {
		t.Errorf("AnimationName = %q, want the YAML default", a.AnimationName())
	}
	if a.Collider.OffsetX != 2 {
		t.Errorf("collider offset = %v, want copied from YAML", a.Collider.OffsetX)
	}
}

func TestLoadLibraryBadSyntax(t *testing.T) {
	_, err := LoadLibrary([]byte("actives: [not: a map"))
	if err == nil {
		t.Fatal("malformed YAML must fail")
	}
	if !strings.Contains(err.Error(), "parse library") {
		t.Errorf("err = %v, want a parse error", err)
	}
}

func TestLoadLibraryInvalidDefinition(t *testing.T) {
	_, err := LoadLibrary([]byte(`
actives:
  broken:
    default_animation: gone
    animations:
      idle:
        frames: 1
`))
	if err == nil {
		t.Fatal("a YAML definition that fails registration must surface the error")
	}
}
