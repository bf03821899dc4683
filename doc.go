/*
Package memedit provides a hex memory editor widget: a scrollable grid of
addresses, hex bytes and their ASCII rendering over any MemorySource,
with a status bar for jumping and writing and an options panel for the
row length, the preview format and the ASCII column.

# Overview

The editor never owns the memory it shows. A MemorySource hands out
byte ranges, decides which addresses are writable and stores the
display options, so the same editor works over a byte slice, a file or
a live process. Each frame the editor fetches only the window it can
display and re-reads the options, so changes made by other writers show
up after Refresh.

# Quick Start

Retained, with the OpenGL backend:

	renderer, _ := opengl.NewRenderer(1280, 720)
	ui := memedit.New(renderer, memedit.WithGUIStyle(memedit.GTAStyle()))
	editor := memedit.NewMemoryEditor(source.NewBuffer(data))

	for !window.ShouldClose() {
	    input := adapter.Update(dt)

	    ctx := ui.Begin(input, memedit.Vec2{X: 1280, Y: 720}, dt)
	    memedit.RenderAll(ctx, editor)
	    ui.End()
	    window.SwapBuffers()
	}

Immediate, keyed by label and kept alive while it is drawn every frame:

	ctx := ui.Begin(input, size, dt)
	ctx.MemoryEditor("ram", ram, memedit.Rect{W: 640, H: size.Y})
	ctx.MemoryEditor("rom", rom, memedit.Rect{X: 640, W: 640, H: size.Y})
	ui.End()

Without a GPU, backend/terminal runs the same editor inside a bubbletea
program, drawing into a cell canvas.

# Surfaces

Layout, Draw and the input methods only need a Surface: something that
can fill and stroke rectangles, draw and measure text, and clip. The
frame Context is one, backed by a DrawList. The terminal Canvas is
another. The editor is monospace: it measures "0" once per layout and
derives every column from that cell size.

# Mouse and Keyboard Reference

	Left click on a byte      Select it (hex or ASCII column)
	Left click elsewhere      Clear the selection
	Wheel                     Scroll one row per notch
	Click "Options"           Open or close the options panel
	Click the address box     Focus the jump input
	Click the byte box        Focus the write input (writable selection only)

While an input has focus:

	0-9 a-f A-F               Append a hex digit
	Backspace                 Remove the last digit
	Enter                     Jump, or write the byte
	Escape                    Leave the input
	Ctrl+V                    Paste hex digits

Without focus, Ctrl+C copies the selected byte. Everything else is left
to the host; HotkeyRegistry skips its bindings while WantCaptureKeyboard
is set.

# Actions

Every user-visible change is reported through the ActionHandler: a jump
or scroll that moves the data window, a byte written, or an option
changed from the panel. Option changes are also written back to the
source, which may persist them.

# Logging

Debug events go to slog. SetVerbose(true) enables them for the package
logger; WithLogger routes one editor elsewhere.
*/
package memedit
