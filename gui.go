package memedit

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI drives frames for a host window: it owns the frame Context and
// hands finished draw lists to the Renderer.
type GUI struct {
	renderer     Renderer
	style        Style
	ctx          *Context
	fontProvider FontProvider
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithGUIStyle sets the style frames start with.
func WithGUIStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// WithFontProvider sets the font provider frames draw text with.
func WithFontProvider(fp FontProvider) GUIOption {
	return func(g *GUI) { g.fontProvider = fp }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		style:    DefaultStyle(),
		ctx:      NewContext(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Begin starts a new frame and returns its context.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx
	ctx.DrawList = AcquireDrawList()
	ctx.Input = input
	ctx.FrameCount++
	ctx.SetStyle(g.style)
	ctx.SetFontProvider(g.fontProvider)
	ctx.FontTextureID = g.renderer.FontTextureID()
	ctx.Reset(displaySize, deltaTime)
	return ctx
}

// End finishes the frame and renders it.
func (g *GUI) End() error {
	dl := g.ctx.DrawList
	if dl == nil {
		return nil
	}
	g.ctx.DrawList = nil
	defer ReleaseDrawList(dl)
	return g.renderer.Render(dl)
}

// Context returns the current frame context.
// Only valid between Begin() and End() calls.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Style returns the current GUI style.
func (g *GUI) Style() Style {
	return g.style
}

// SetStyle sets the GUI style, effective from the next frame.
func (g *GUI) SetStyle(style Style) {
	g.style = style
}

// SetFontProvider sets the font provider, effective from the next frame.
func (g *GUI) SetFontProvider(fp FontProvider) {
	g.fontProvider = fp
}

// Resize notifies the renderer of a display size change.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}
