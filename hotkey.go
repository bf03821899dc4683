package memedit

// HotkeyCheck returns true if a hotkey is pressed this frame.
type HotkeyCheck func(input *InputState) bool

// Ctrl returns a check for Ctrl+key.
func Ctrl(key Key) HotkeyCheck {
	return func(input *InputState) bool {
		return input.ModCtrl && input.KeyPressed(key)
	}
}

// Press returns a check for key pressed without Ctrl.
func Press(key Key) HotkeyCheck {
	return func(input *InputState) bool {
		return !input.ModCtrl && input.KeyPressed(key)
	}
}

// HotkeyEntry holds a registered hotkey with its handler.
type HotkeyEntry struct {
	Name    string      // Name for debugging
	Check   HotkeyCheck // Returns true if the hotkey is pressed
	Handler func()
	// Condition must return true for the handler to run (nil = always).
	Condition func() bool
}

// HotkeyRegistry dispatches application shortcuts such as quit, refresh
// or "focus the jump input".
type HotkeyRegistry struct {
	entries []HotkeyEntry
}

// NewHotkeyRegistry creates an empty registry.
func NewHotkeyRegistry() *HotkeyRegistry {
	return &HotkeyRegistry{entries: make([]HotkeyEntry, 0, 8)}
}

// Register adds a hotkey.
func (r *HotkeyRegistry) Register(name string, check HotkeyCheck, handler func()) {
	r.entries = append(r.entries, HotkeyEntry{Name: name, Check: check, Handler: handler})
}

// RegisterWithCondition adds a hotkey that only fires while condition holds.
func (r *HotkeyRegistry) RegisterWithCondition(name string, check HotkeyCheck, handler func(), condition func() bool) {
	r.entries = append(r.entries, HotkeyEntry{Name: name, Check: check, Handler: handler, Condition: condition})
}

// Handle runs the first matching hotkey. It does nothing while ctx
// reports a focused text field. Returns true if a handler ran.
func (r *HotkeyRegistry) Handle(ctx *Context, input *InputState) bool {
	if input == nil || (ctx != nil && ctx.WantCaptureKeyboard) {
		return false
	}
	for i := range r.entries {
		e := &r.entries[i]
		if e.Check == nil || !e.Check(input) {
			continue
		}
		if e.Condition != nil && !e.Condition() {
			continue
		}
		if verbose() {
			editorLogger.Debug("Hotkey: triggered", "name", e.Name)
		}
		e.Handler()
		input.ConsumeInputChars()
		return true
	}
	return false
}

// Unregister removes a hotkey by name.
func (r *HotkeyRegistry) Unregister(name string) {
	for i, e := range r.entries {
		if e.Name == name {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

// Names lists the registered hotkey names in registration order.
func (r *HotkeyRegistry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}
