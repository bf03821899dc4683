package memedit_test

import (
	"slices"
	"testing"

	"github.com/go-theft-auto/memedit"
)

func TestHotkeyCtrlAndPress(t *testing.T) {
	var got []string
	r := memedit.NewHotkeyRegistry()
	r.Register("jump", memedit.Ctrl(memedit.KeyG), func() { got = append(got, "jump") })
	r.Register("refresh", memedit.Press(memedit.KeyF5), func() { got = append(got, "refresh") })

	input := memedit.NewInputState()
	input.TapKey(memedit.KeyG)
	if r.Handle(nil, input) {
		t.Error("Expected G without Ctrl not to match")
	}

	input.Reset()
	input.ModCtrl = true
	input.TapKey(memedit.KeyG)
	input.AddInputChar('g')
	if !r.Handle(nil, input) {
		t.Error("Expected Ctrl+G to match")
	}
	if len(input.InputChars) != 0 {
		t.Error("Expected the hotkey to consume typed chars")
	}

	input.Reset()
	input.TapKey(memedit.KeyF5)
	if r.Handle(nil, input) {
		t.Error("Expected F5 with Ctrl held not to match Press")
	}
	input.ModCtrl = false
	r.Handle(nil, input)

	if !slices.Equal(got, []string{"jump", "refresh"}) {
		t.Errorf("Unexpected handler calls %v", got)
	}
}

func TestHotkeyCondition(t *testing.T) {
	enabled := false
	fired := 0
	r := memedit.NewHotkeyRegistry()
	r.RegisterWithCondition("quit", memedit.Ctrl(memedit.KeyQ), func() { fired++ }, func() bool { return enabled })

	input := memedit.NewInputState()
	input.ModCtrl = true
	input.TapKey(memedit.KeyQ)

	r.Handle(nil, input)
	enabled = true
	r.Handle(nil, input)

	if fired != 1 {
		t.Errorf("Expected 1 call, got %d", fired)
	}
}

func TestHotkeySkippedWhileTyping(t *testing.T) {
	fired := 0
	r := memedit.NewHotkeyRegistry()
	r.Register("refresh", memedit.Press(memedit.KeyF5), func() { fired++ })

	ctx := memedit.NewContext()
	ctx.WantCaptureKeyboard = true
	input := memedit.NewInputState()
	input.TapKey(memedit.KeyF5)

	if r.Handle(ctx, input) || fired != 0 {
		t.Error("Expected hotkeys to be skipped while a text field has focus")
	}
	if r.Handle(nil, nil) {
		t.Error("Expected nil input to be ignored")
	}
}

func TestHotkeyUnregister(t *testing.T) {
	r := memedit.NewHotkeyRegistry()
	r.Register("a", memedit.Press(memedit.KeyUp), func() {})
	r.Register("b", memedit.Press(memedit.KeyDown), func() {})
	r.Register("c", memedit.Press(memedit.KeyHome), func() {})

	r.Unregister("b")
	r.Unregister("missing")

	if got := r.Names(); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("Expected [a c], got %v", got)
	}
}
