package mintcrate

import "github.com/hajimehoshi/ebiten/v2"

// ControlState is the per-tick edge state of one logical control.
type ControlState uint8

const (
	ControlUp       ControlState = iota // not down
	ControlPressed                      // went down this tick
	ControlHeld                         // down beyond the first tick
	ControlReleased                     // went up this tick
)

// stickDeadzone is the minimum axis magnitude treated as "down" for
// axis-mapped bindings.
const stickDeadzone = 0.2

// BindingKind distinguishes raw device binding types.
type BindingKind uint8

const (
	BindKey           BindingKind = iota // keyboard key
	BindGamepadButton                    // standard gamepad button
	BindGamepadAxis                      // standard gamepad axis direction
)

// Binding maps a logical control to one raw device input. The mapping is
// host configuration; the state machine only consumes the boolean sample.
type Binding struct {
	Kind   BindingKind
	Key    ebiten.Key
	Button ebiten.StandardGamepadButton
	Axis   ebiten.StandardGamepadAxis
	// AxisDir selects the axis direction: a sample is down when
	// value*AxisDir exceeds the deadzone.
	AxisDir float64
}

// Key binds a keyboard key.
func Key(k ebiten.Key) Binding {
	return Binding{Kind: BindKey, Key: k}
}

// GamepadButton binds a standard gamepad button on the first gamepad.
func GamepadButton(b ebiten.StandardGamepadButton) Binding {
	return Binding{Kind: BindGamepadButton, Button: b}
}

// GamepadAxis binds a standard gamepad axis direction on the first gamepad.
// dir is +1 or -1.
func GamepadAxis(a ebiten.StandardGamepadAxis, dir float64) Binding {
	return Binding{Kind: BindGamepadAxis, Axis: a, AxisDir: dir}
}

// InputSource supplies per-tick boolean "is this raw input currently down"
// samples. The framework does no device polling itself; the default source
// reads Ebiten, and tests substitute a scripted source.
type InputSource interface {
	IsDown(b Binding) bool
}

// ebitenSource reads the keyboard and the first connected standard gamepad.
type ebitenSource struct {
	gamepadBuf []ebiten.GamepadID
}

func (s *ebitenSource) IsDown(b Binding) bool {
	switch b.Kind {
	case BindKey:
		return ebiten.IsKeyPressed(b.Key)
	case BindGamepadButton:
		id, ok := s.firstGamepad()
		return ok && ebiten.IsStandardGamepadButtonPressed(id, b.Button)
	case BindGamepadAxis:
		id, ok := s.firstGamepad()
		if !ok {
			return false
		}
		return ebiten.StandardGamepadAxisValue(id, b.Axis)*b.AxisDir > stickDeadzone
	}
	return false
}

func (s *ebitenSource) firstGamepad() (ebiten.GamepadID, bool) {
	s.gamepadBuf = ebiten.AppendGamepadIDs(s.gamepadBuf[:0])
	if len(s.gamepadBuf) == 0 {
		return 0, false
	}
	return s.gamepadBuf[0], true
}

type control struct {
	name     string
	state    ControlState
	bindings []Binding
}

// InputState tracks the edge-triggered state of every defined control.
// One refresh per tick converts the raw boolean sample into the
// Up/Pressed/Held/Released cycle game logic reads from. Edge detection has
// exactly one tick of latency; a press and release inside one raw sample is
// not representable.
type InputState struct {
	source   InputSource
	controls map[string]*control
	order    []string
}

// NewInputState creates an input tracker reading from source. A nil source
// selects the Ebiten-backed default.
func NewInputState(source InputSource) *InputState {
	if source == nil {
		source = &ebitenSource{}
	}
	return &InputState{
		source:   source,
		controls: make(map[string]*control),
	}
}

// Define registers a logical control with its raw device bindings.
// Defining an existing name replaces its bindings and resets its state.
func (s *InputState) Define(name string, bindings ...Binding) {
	if _, exists := s.controls[name]; !exists {
		s.order = append(s.order, name)
	}
	s.controls[name] = &control{name: name, bindings: bindings}
}

// refresh advances every control's state machine from this tick's raw
// samples. Called once per tick by the tick driver, before room logic.
func (s *InputState) refresh() {
	for _, name := range s.order {
		c := s.controls[name]
		down := false
		for _, b := range c.bindings {
			if s.source.IsDown(b) {
				down = true
				break
			}
		}
		c.state = nextControlState(c.state, down)
	}
}

// nextControlState is the edge-trigger transition table.
func nextControlState(cur ControlState, down bool) ControlState {
	switch cur {
	case ControlUp:
		if down {
			return ControlPressed
		}
		return ControlUp
	case ControlPressed, ControlHeld:
		if down {
			return ControlHeld
		}
		return ControlReleased
	default: // ControlReleased
		return ControlUp
	}
}

// State returns the control's current edge state. Unknown names read as
// ControlUp.
func (s *InputState) State(name string) ControlState {
	if c, ok := s.controls[name]; ok {
		return c.state
	}
	return ControlUp
}

// Pressed reports whether the control went down this tick.
func (s *InputState) Pressed(name string) bool {
	return s.State(name) == ControlPressed
}

// Held reports whether the control is currently down: the Pressed tick and
// every Held tick after it, but not the just-released tick.
func (s *InputState) Held(name string) bool {
	st := s.State(name)
	return st == ControlPressed || st == ControlHeld
}

// Released reports whether the control went up this tick.
func (s *InputState) Released(name string) bool {
	return s.State(name) == ControlReleased
}

// Up reports whether the control is idle.
func (s *InputState) Up(name string) bool {
	return s.State(name) == ControlUp
}
