package memedit

import "sync"

// drawListPool reuses DrawList buffers between frames. The whole editor
// is redrawn every frame, so buffers are kept instead of reallocated.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 4096),
			IdxBuffer: make([]uint16, 0, 8192),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 4),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates draw commands for a frame.
// Primitives are batched by texture and clip rectangle.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32 // vertex offset of the open command
	idxCmdOffset uint32 // index offset of the open command
}

// Clear resets the DrawList for a new frame, keeping capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect clips all following primitives to r.
func (dl *DrawList) PushClipRect(r Rect) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{r.X, r.Y, r.X + r.W, r.Y + r.H}
	dl.splitDraw()
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.currentClip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.splitDraw()
}

// SetTexture sets the texture for subsequent primitives (0 = untextured).
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw closes the open command and starts a new one with the
// current clip and texture.
func (dl *DrawList) splitDraw() {
	if n := len(dl.CmdBuffer); n > 0 {
		dl.CmdBuffer[n-1].ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addQuad appends one textured quad to the open command.
func (dl *DrawList) addQuad(x0, y0, x1, y1, u0, v0, u1, v1 float32, color uint32) {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
	// Indices are 16-bit and relative to the command's vertex offset.
	if len(dl.VtxBuffer)-int(dl.cmdOffset) > 0xFFFF-4 {
		dl.splitDraw()
	}
	idx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{u0, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{u1, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{u1, v1}, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{u0, v1}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(r Rect, color uint32) {
	if color&0xFF000000 == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	dl.addQuad(r.X, r.Y, r.X+r.W, r.Y+r.H, 0, 0, 0, 0, color)
}

// AddRectOutline draws a rectangle outline of the given thickness.
func (dl *DrawList) AddRectOutline(r Rect, color uint32, thickness float32) {
	if color&0xFF000000 == 0 || thickness <= 0 {
		return
	}
	dl.AddRect(Rect{X: r.X, Y: r.Y, W: r.W, H: thickness}, color)
	dl.AddRect(Rect{X: r.X, Y: r.Y + r.H - thickness, W: r.W, H: thickness}, color)
	dl.AddRect(Rect{X: r.X, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
	dl.AddRect(Rect{X: r.X + r.W - thickness, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
}

// Built-in font atlas layout: ASCII 32..127 in a 16x6 grid of 8x16
// cells. Renderers upload an alpha texture of AtlasCols*AtlasCellW by
// AtlasRows*AtlasCellH pixels.
const (
	AtlasCols  = 16
	AtlasRows  = 6
	AtlasCellW = 8
	AtlasCellH = 16
)

// AddText draws monospace text from the built-in font atlas.
// cellW and cellH are the on-screen size of one character cell.
func (dl *DrawList) AddText(pos Vec2, text string, color uint32, cellW, cellH float32) {
	if color&0xFF000000 == 0 || text == "" {
		return
	}
	const texW = AtlasCols * AtlasCellW
	const texH = AtlasRows * AtlasCellH

	x := pos.X
	for _, r := range text {
		if r < 32 || r > 127 {
			r = '?'
		}
		idx := int(r - 32)
		col := float32(idx % AtlasCols)
		row := float32(idx / AtlasCols)
		u0 := col * AtlasCellW / texW
		v0 := row * AtlasCellH / texH
		u1 := (col + 1) * AtlasCellW / texW
		v1 := (row + 1) * AtlasCellH / texH
		if r != ' ' {
			dl.addQuad(x, pos.Y, x+cellW, pos.Y+cellH, u0, v0, u1, v1, color)
		}
		x += cellW
	}
}

// GlyphQuad is a single character's screen and texture rectangle.
type GlyphQuad struct {
	X0, Y0 float32 // Screen top-left
	X1, Y1 float32 // Screen bottom-right
	U0, V0 float32 // Texture top-left
	U1, V1 float32 // Texture bottom-right
}

// AddGlyphQuads draws pre-positioned glyph quads with one color.
func (dl *DrawList) AddGlyphQuads(quads []GlyphQuad, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	for _, q := range quads {
		dl.addQuad(q.X0, q.Y0, q.X1, q.Y1, q.U0, q.V0, q.U1, q.V1, color)
	}
}

// Finalize closes the open command and drops empty ones.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if n := len(dl.CmdBuffer); n > 0 {
		dl.CmdBuffer[n-1].ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
