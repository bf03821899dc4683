package memedit

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key the editor or its hosts react to.
type Key int

const (
	KeyNone Key = iota
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyTab
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyC
	KeyG
	KeyO
	KeyQ
	KeyS
	KeyV
	KeyF5
	KeyCount
)

// Key repeat timing constants
const (
	KeyRepeatDelay    float32 = 0.4  // Initial delay before repeat starts (seconds)
	KeyRepeatInterval float32 = 0.03 // Repeat interval once repeating (seconds)
)

// InputState holds polled input for the current frame.
// Backends fill it from GLFW callbacks or terminal events.
type InputState struct {
	MouseX, MouseY float32
	// MouseValid is false when the pointer is outside the window.
	MouseValid bool

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool
	mouseUp      [MouseButtonCount]bool

	// MouseWheelY is positive when the wheel is rolled away from the user.
	MouseWheelY float32

	keyDown     [KeyCount]bool
	keyPressed  [KeyCount]bool
	keyUp       [KeyCount]bool
	keyHoldTime [KeyCount]float32
	repeatDelta float32

	// InputChars holds the characters typed this frame.
	InputChars []rune

	ModCtrl  bool
	ModShift bool
	ModAlt   bool
	ModSuper bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
		MouseValid: true,
	}
}

// Reset clears per-frame events. Call it before collecting the next
// frame's input.
func (s *InputState) Reset() {
	clear(s.mouseClicked[:])
	clear(s.mouseUp[:])
	clear(s.keyPressed[:])
	clear(s.keyUp[:])
	s.InputChars = s.InputChars[:0]
	s.MouseWheelY = 0
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
	s.MouseValid = true
}

// MousePos returns the pointer position, or nil when the pointer is
// outside the window.
func (s *InputState) MousePos() *Vec2 {
	if !s.MouseValid {
		return nil
	}
	return &Vec2{X: s.MouseX, Y: s.MouseY}
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down
	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	wasDown := s.keyDown[key]
	s.keyDown[key] = down
	if down && !wasDown {
		s.keyPressed[key] = true
		s.keyHoldTime[key] = 0
	}
	if !down && wasDown {
		s.keyUp[key] = true
		s.keyHoldTime[key] = 0
	}
}

// TapKey records a press and release within one frame. Terminal
// backends use it since they never see key releases.
func (s *InputState) TapKey(key Key) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	s.keyPressed[key] = true
	s.keyUp[key] = true
	s.keyDown[key] = false
	s.keyHoldTime[key] = 0
}

// UpdateKeyRepeat advances key hold times. Call it once per frame with
// the frame's delta time.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	s.repeatDelta = dt
	for key := Key(0); key < KeyCount; key++ {
		if s.keyDown[key] {
			s.keyHoldTime[key] += dt
		}
	}
}

// SetMouseWheel sets the vertical wheel delta in lines.
func (s *InputState) SetMouseWheel(y float32) {
	s.MouseWheelY = y
}

// AddInputChar adds a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was pressed this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was pressed this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyRepeated returns true on the initial press, then after
// KeyRepeatDelay, then every KeyRepeatInterval while the key is held.
func (s *InputState) KeyRepeated(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] {
		return false
	}
	held := s.keyHoldTime[key]
	if held < KeyRepeatDelay {
		return false
	}
	dt := s.repeatDelta
	if dt <= 0 {
		dt = 1.0 / 60
	}
	since := held - KeyRepeatDelay
	return int(since/KeyRepeatInterval) > int((since-dt)/KeyRepeatInterval)
}

// ConsumeInputChars drops the characters typed this frame so a hotkey
// letter does not also reach a text field.
func (s *InputState) ConsumeInputChars() {
	s.InputChars = s.InputChars[:0]
}
