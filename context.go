package memedit

// Context holds all state for rendering a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
// It implements Surface over its DrawList, so editors draw straight
// into the frame's vertex buffers.
type Context struct {
	DrawList *DrawList
	Input    *InputState

	DisplaySize Vec2
	FrameCount  uint64
	DeltaTime   float32

	// FontTextureID is the built-in atlas texture, set by the renderer.
	FontTextureID uint32

	style        Style
	fontProvider FontProvider

	// glyphBuffer is reused between Text calls.
	glyphBuffer []GlyphQuad
	// textMeasureCache is valid for the current frame only.
	textMeasureCache map[string]Vec2

	idStack []ID
	editors *FrameStore[*MemoryEditor]

	// Input capture flags (output to the application). A host should
	// skip its own hotkeys while WantCaptureKeyboard is set.
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// NewContext creates a new frame context with default settings.
func NewContext() *Context {
	return &Context{
		style:            DefaultStyle(),
		glyphBuffer:      make([]GlyphQuad, 0, 256),
		textMeasureCache: make(map[string]Vec2, 64),
		idStack:          make([]ID, 0, 8),
		editors:          NewFrameStore[*MemoryEditor](),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the style.
func (ctx *Context) SetStyle(style Style) {
	if ctx.style.FontScale != style.FontScale || ctx.style.CharWidth != style.CharWidth {
		clear(ctx.textMeasureCache)
	}
	ctx.style = style
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false
	clear(ctx.textMeasureCache)
	ctx.idStack = ctx.idStack[:0]
	ctx.editors.Cleanup(ctx.FrameCount)
}

// SetFontProvider sets the font provider. Pass nil to use the built-in
// monospace atlas.
func (ctx *Context) SetFontProvider(fp FontProvider) {
	ctx.fontProvider = fp
	clear(ctx.textMeasureCache)
}

// FontProvider returns the current font provider, or nil if not set.
func (ctx *Context) FontProvider() FontProvider {
	return ctx.fontProvider
}

func (ctx *Context) activeFont() Font {
	if ctx.fontProvider != nil {
		return ctx.fontProvider.ActiveFont()
	}
	return nil
}

// LineHeight returns the height of a single line of text.
// Uses the font provider if available, otherwise CharHeight * FontScale.
func (ctx *Context) LineHeight() float32 {
	if f := ctx.activeFont(); f != nil {
		return f.LineHeight(ctx.style.FontScale)
	}
	return ctx.style.CharHeight * ctx.style.FontScale
}

// MeasureText returns the size of rendered text.
// Results are cached per frame.
func (ctx *Context) MeasureText(text string) Vec2 {
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}

	var result Vec2
	if f := ctx.activeFont(); f != nil {
		result = f.MeasureText(text, ctx.style.FontScale)
	} else {
		charW := ctx.style.CharWidth * ctx.style.FontScale
		result = Vec2{X: float32(len(text)) * charW, Y: ctx.LineHeight()}
	}

	if ctx.textMeasureCache != nil {
		ctx.textMeasureCache[text] = result
	}
	return result
}

// Text draws text with its top-left corner at pos.
// Uses the font provider if available, otherwise the built-in atlas.
func (ctx *Context) Text(pos Vec2, text string, color uint32) {
	if ctx.DrawList == nil || text == "" {
		return
	}
	if f := ctx.activeFont(); f != nil {
		ctx.glyphBuffer = f.AppendGlyphQuads(ctx.glyphBuffer[:0], text, pos.X, pos.Y, ctx.style.FontScale)
		ctx.DrawList.SetTexture(f.TextureID())
		ctx.DrawList.AddGlyphQuads(ctx.glyphBuffer, color)
		ctx.DrawList.SetTexture(0)
		return
	}

	scale := ctx.style.FontScale
	ctx.DrawList.SetTexture(ctx.FontTextureID)
	ctx.DrawList.AddText(pos, text, color, ctx.style.CharWidth*scale, ctx.style.CharHeight*scale)
	ctx.DrawList.SetTexture(0)
}

// FillRect draws a filled rectangle.
func (ctx *Context) FillRect(r Rect, color uint32) {
	if ctx.DrawList != nil {
		ctx.DrawList.AddRect(r, color)
	}
}

// StrokeRect draws a rectangle outline.
func (ctx *Context) StrokeRect(r Rect, color uint32, thickness float32) {
	if ctx.DrawList != nil {
		ctx.DrawList.AddRectOutline(r, color, thickness)
	}
}

// PushClip clips following draws to r.
func (ctx *Context) PushClip(r Rect) {
	if ctx.DrawList != nil {
		ctx.DrawList.PushClipRect(r)
	}
}

// PopClip restores the previous clip rectangle.
func (ctx *Context) PopClip() {
	if ctx.DrawList != nil {
		ctx.DrawList.PopClipRect()
	}
}

var _ Surface = (*Context)(nil)
