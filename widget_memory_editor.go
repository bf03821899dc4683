package memedit

import (
	"fmt"
	"log/slog"
)

// MemoryEditor is a hex and ASCII view over a MemorySource with a status
// bar and an options panel. It is a retained component: state lives in
// the editor between frames, while the data window and the options are
// re-read from the source whenever they may have changed.
//
// Hosts either call Render/HandleInput with a frame Context, or drive
// Layout, Draw and the input methods directly against any Surface.
type MemoryEditor struct {
	source MemorySource
	state  EditorState
	opts   Options

	style    Style
	hasStyle bool

	viewport      Rect
	fixedViewport bool
	metrics       Metrics
	laidOut       bool

	logger    *slog.Logger
	clipboard ClipboardProvider
	onAction  ActionHandler
}

var _ InteractiveComponent = (*MemoryEditor)(nil)

// EditorOption configures a MemoryEditor.
type EditorOption func(*MemoryEditor)

// WithStyle sets the editor's colors. Without it the editor uses the
// style of the Context it renders into, or DefaultStyle.
func WithStyle(style Style) EditorOption {
	return func(e *MemoryEditor) {
		e.style = style
		e.hasStyle = true
	}
}

// WithActionHandler registers a callback for user actions.
func WithActionHandler(h ActionHandler) EditorOption {
	return func(e *MemoryEditor) {
		e.onAction = h
	}
}

// WithLogger sets the logger used for debug events.
func WithLogger(l *slog.Logger) EditorOption {
	return func(e *MemoryEditor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClipboard sets the clipboard used by copy and paste. Without it
// the global provider from SetClipboardProvider is used.
func WithClipboard(cp ClipboardProvider) EditorOption {
	return func(e *MemoryEditor) {
		e.clipboard = cp
	}
}

// WithViewport pins the editor to r instead of the whole display.
func WithViewport(r Rect) EditorOption {
	return func(e *MemoryEditor) {
		e.viewport = r
		e.fixedViewport = true
	}
}

// NewMemoryEditor creates an editor over src.
func NewMemoryEditor(src MemorySource, opts ...EditorOption) *MemoryEditor {
	e := &MemoryEditor{
		source: src,
		state:  newEditorState(),
		style:  DefaultStyle(),
		logger: editorLogger,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.opts = src.Options().Normalize()
	return e
}

// Source returns the editor's memory source.
func (e *MemoryEditor) Source() MemorySource { return e.source }

// State returns a copy of the editor state. Data aliases the editor's
// window and must not be modified.
func (e *MemoryEditor) State() EditorState { return e.state }

// Options returns the options used by the last layout.
func (e *MemoryEditor) Options() Options { return e.opts }

// StartAddress returns the first visible address.
func (e *MemoryEditor) StartAddress() uint64 { return e.state.StartAddress }

// Selected returns the selected address, if any.
func (e *MemoryEditor) Selected() (uint64, bool) { return e.state.Selected() }

// HasFocus reports whether a text input holds keyboard focus.
func (e *MemoryEditor) HasFocus() bool { return e.state.HasFocusedInput() }

// Dimensions returns the geometry of the last layout.
func (e *MemoryEditor) Dimensions() Dimensions { return e.state.Dimensions }

// Bounds returns the control rectangles of the last layout.
func (e *MemoryEditor) Bounds() Bounds { return e.state.Bounds }

// Viewport returns the rectangle of the last layout.
func (e *MemoryEditor) Viewport() Rect { return e.viewport }

// SetViewport pins the editor to r.
func (e *MemoryEditor) SetViewport(r Rect) {
	e.viewport = r
	e.fixedViewport = true
	e.laidOut = false
}

// SetStyle replaces the editor's colors.
func (e *MemoryEditor) SetStyle(style Style) {
	e.style = style
	e.hasStyle = true
}

// SetActionHandler replaces the action callback.
func (e *MemoryEditor) SetActionHandler(h ActionHandler) {
	e.onAction = h
}

// Refresh drops the cached window so the next layout reads the source
// again. Call it when another writer changed the memory.
func (e *MemoryEditor) Refresh() {
	e.state.invalidate()
}

// Layout measures the surface, re-reads the options from the source and
// refetches the data window when it is stale. Relayout is reported when
// the geometry differs from the previous layout.
func (e *MemoryEditor) Layout(s Surface, viewport Rect) Status {
	m := MeasureMetrics(s)
	changed := !e.laidOut || m != e.metrics || viewport != e.viewport
	e.metrics = m
	e.viewport = viewport
	e.laidOut = true

	st := e.relayout()
	if changed {
		st.Relayout = true
		st.Redraw = true
	}
	return st
}

// relayout recomputes geometry with the current metrics and viewport.
func (e *MemoryEditor) relayout() Status {
	var st Status
	opts := e.source.Options().Normalize()
	if opts != e.opts {
		st.Redraw = true
	}
	prev := e.state.Dimensions
	e.opts = opts
	e.state.Dimensions = ComputeDimensions(e.metrics, opts.RowLength, e.viewport.H, e.state.OptionsOpen)
	e.state.Bounds = ComputeBounds(e.state.Dimensions, e.viewport)
	if e.state.Dimensions != prev {
		st.Relayout = true
	}
	if e.state.needsFetch() {
		e.fetch()
		st.Redraw = true
	}
	return st
}

func (e *MemoryEditor) fetch() {
	e.state.fetch(e.source)
	if verbose() {
		start, end := e.state.windowRange()
		e.logger.Debug("Fetch: data window",
			"start", fmt.Sprintf("%#x", start),
			"end", fmt.Sprintf("%#x", end),
			"got", len(e.state.Data))
	}
}

// refetch reloads the window immediately, as after a write or a jump.
func (e *MemoryEditor) refetch() {
	e.state.invalidate()
	e.relayout()
}

func (e *MemoryEditor) emit(a Action) {
	if e.onAction != nil {
		e.onAction(a)
	}
}

func (e *MemoryEditor) clipboardProvider() ClipboardProvider {
	if e.clipboard != nil {
		return e.clipboard
	}
	return GetClipboardProvider()
}

// viewportFor returns the pinned viewport or the whole display.
func (e *MemoryEditor) viewportFor(ctx *Context) Rect {
	if e.fixedViewport {
		return e.viewport
	}
	return Rect{W: ctx.DisplaySize.X, H: ctx.DisplaySize.Y}
}

// HandleInput lays out against ctx and applies the frame's input.
// It sets ctx.WantCaptureKeyboard while a text input has focus and
// ctx.WantCaptureMouse while the pointer is over the editor.
func (e *MemoryEditor) HandleInput(ctx *Context, input *InputState) bool {
	e.Layout(ctx, e.viewportFor(ctx))
	if input == nil {
		return false
	}
	st := e.Update(input)
	if e.state.HasFocusedInput() {
		ctx.WantCaptureKeyboard = true
	}
	if pos := input.MousePos(); pos != nil && e.viewport.Contains(*pos) {
		ctx.WantCaptureMouse = true
	}
	return st.Captured
}

// Render lays out against ctx and draws the editor.
func (e *MemoryEditor) Render(ctx *Context) {
	if !e.hasStyle {
		e.style = ctx.Style()
	}
	e.Layout(ctx, e.viewportFor(ctx))
	e.Draw(ctx)
}

// MemoryEditor is the immediate-mode form of NewMemoryEditor: it returns
// the editor kept under label, creating it on first use, then handles
// the frame's input and draws it into viewport. An editor that is not
// drawn for a whole frame is dropped along with its selection and inputs.
//
// opts apply only when the editor is created.
func (ctx *Context) MemoryEditor(label string, src MemorySource, viewport Rect, opts ...EditorOption) *MemoryEditor {
	id := ctx.GetID(label)
	e := ctx.editors.Get(id, ctx.FrameCount, func() *MemoryEditor {
		return NewMemoryEditor(src, opts...)
	})
	if e.source != src {
		e.source = src
		e.Refresh()
	}
	if !e.fixedViewport || e.viewport != viewport {
		e.SetViewport(viewport)
	}
	RenderAll(ctx, e)
	return e
}

// ForgetMemoryEditor drops the editor kept under label right away.
func (ctx *Context) ForgetMemoryEditor(label string) {
	ctx.editors.Delete(ctx.GetID(label))
}
