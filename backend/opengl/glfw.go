package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/memedit"
)

// GLFWInputAdapter adapts GLFW input to memedit.InputState.
//
// Per frame call NewFrame before glfw.PollEvents, so the events the
// callbacks record survive until the editor sees them, then Update.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *memedit.InputState
}

// NewGLFWInputAdapter installs input callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  memedit.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)
	window.SetCursorEnterCallback(adapter.cursorEnterCallback)

	return adapter
}

// NewFrame clears the previous frame's events.
func (a *GLFWInputAdapter) NewFrame() {
	a.input.Reset()
}

// Update samples modifiers and advances key repeat after events were
// polled. dt is the frame time in seconds.
func (a *GLFWInputAdapter) Update(dt float32) *memedit.InputState {
	pressed := func(l, r glfw.Key) bool {
		return a.window.GetKey(l) == glfw.Press || a.window.GetKey(r) == glfw.Press
	}
	a.input.ModCtrl = pressed(glfw.KeyLeftControl, glfw.KeyRightControl)
	a.input.ModShift = pressed(glfw.KeyLeftShift, glfw.KeyRightShift)
	a.input.ModAlt = pressed(glfw.KeyLeftAlt, glfw.KeyRightAlt)
	a.input.ModSuper = pressed(glfw.KeyLeftSuper, glfw.KeyRightSuper)

	a.input.UpdateKeyRepeat(dt)
	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *memedit.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == memedit.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButton(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(a.input.MouseWheelY + float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

func (a *GLFWInputAdapter) cursorEnterCallback(w *glfw.Window, entered bool) {
	if !entered {
		a.input.MouseValid = false
	}
}

func glfwKeyToKey(key glfw.Key) memedit.Key {
	switch key {
	case glfw.KeyBackspace:
		return memedit.KeyBackspace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return memedit.KeyEnter
	case glfw.KeyEscape:
		return memedit.KeyEscape
	case glfw.KeyTab:
		return memedit.KeyTab
	case glfw.KeyUp:
		return memedit.KeyUp
	case glfw.KeyDown:
		return memedit.KeyDown
	case glfw.KeyPageUp:
		return memedit.KeyPageUp
	case glfw.KeyPageDown:
		return memedit.KeyPageDown
	case glfw.KeyHome:
		return memedit.KeyHome
	case glfw.KeyC:
		return memedit.KeyC
	case glfw.KeyG:
		return memedit.KeyG
	case glfw.KeyO:
		return memedit.KeyO
	case glfw.KeyQ:
		return memedit.KeyQ
	case glfw.KeyS:
		return memedit.KeyS
	case glfw.KeyV:
		return memedit.KeyV
	case glfw.KeyF5:
		return memedit.KeyF5
	default:
		return memedit.KeyNone
	}
}

func glfwMouseButton(button glfw.MouseButton) memedit.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return memedit.MouseButtonLeft
	case glfw.MouseButtonRight:
		return memedit.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return memedit.MouseButtonMiddle
	default:
		return -1
	}
}

// GLFWClipboard implements memedit.ClipboardProvider with the window's
// clipboard.
type GLFWClipboard struct {
	window *glfw.Window
}

// NewGLFWClipboard creates a clipboard bound to window.
func NewGLFWClipboard(window *glfw.Window) *GLFWClipboard {
	return &GLFWClipboard{window: window}
}

// GetText returns the clipboard contents.
func (c *GLFWClipboard) GetText() string {
	return c.window.GetClipboardString()
}

// SetText replaces the clipboard contents.
func (c *GLFWClipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}
