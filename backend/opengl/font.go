package opengl

import (
	"image"
	"unicode/utf8"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/memedit"
)

// glyphTop is the blank rows above each glyph in an atlas cell.
const glyphTop = 1

// RasterizeAtlas draws ASCII 32..127 of face into an alpha image laid
// out as memedit's built-in atlas grid. Glyphs larger than a cell are
// clipped by their neighbours.
func RasterizeAtlas(face font.Face) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0,
		memedit.AtlasCols*memedit.AtlasCellW,
		memedit.AtlasRows*memedit.AtlasCellH))

	ascent := face.Metrics().Ascent.Ceil()
	d := &font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for r := rune(32); r < 128; r++ {
		idx := int(r - 32)
		x := (idx % memedit.AtlasCols) * memedit.AtlasCellW
		y := (idx / memedit.AtlasCols) * memedit.AtlasCellH
		d.Dot = fixed.P(x, y+glyphTop+ascent)
		d.DrawString(string(r))
	}
	return img
}

// uploadAlphaTexture creates a single-channel texture from img.
func uploadAlphaTexture(img *image.Alpha) uint32 {
	w, h := img.Rect.Dx(), img.Rect.Dy()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(w), int32(h), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// BasicFont is basicfont.Face7x13 drawn from the renderer's atlas with
// its real 7 pixel advance. It is both a memedit.Font and a
// memedit.FontProvider.
type BasicFont struct {
	tex     uint32
	advance float32
	height  float32
}

var (
	_ memedit.Font         = (*BasicFont)(nil)
	_ memedit.FontProvider = (*BasicFont)(nil)
)

// NewBasicFont wraps the atlas texture of a Renderer.
func NewBasicFont(tex uint32) *BasicFont {
	face := basicfont.Face7x13
	return &BasicFont{
		tex:     tex,
		advance: float32(face.Advance),
		height:  float32(face.Height + 2*glyphTop),
	}
}

// ActiveFont implements memedit.FontProvider.
func (f *BasicFont) ActiveFont() memedit.Font { return f }

// TextureID returns the atlas texture.
func (f *BasicFont) TextureID() uint32 { return f.tex }

// HasGlyph reports whether r is printable ASCII.
func (f *BasicFont) HasGlyph(r rune) bool {
	return r >= 32 && r < 127
}

// MeasureText returns the size of text at scale.
func (f *BasicFont) MeasureText(text string, scale float32) memedit.Vec2 {
	n := utf8.RuneCountInString(text)
	return memedit.Vec2{X: float32(n) * f.advance * scale, Y: f.height * scale}
}

// LineHeight returns the glyph height plus padding at scale.
func (f *BasicFont) LineHeight(scale float32) float32 {
	return f.height * scale
}

// AppendGlyphQuads lays text out on the atlas cells.
func (f *BasicFont) AppendGlyphQuads(dst []memedit.GlyphQuad, text string, x, y, scale float32) []memedit.GlyphQuad {
	const texW = float32(memedit.AtlasCols * memedit.AtlasCellW)
	const texH = float32(memedit.AtlasRows * memedit.AtlasCellH)
	cellW := float32(memedit.AtlasCellW) * scale
	cellH := float32(memedit.AtlasCellH) * scale

	for _, r := range text {
		if !f.HasGlyph(r) {
			r = '?'
		}
		if r != ' ' {
			idx := int(r - 32)
			col := float32(idx % memedit.AtlasCols)
			row := float32(idx / memedit.AtlasCols)
			dst = append(dst, memedit.GlyphQuad{
				X0: x, Y0: y,
				X1: x + cellW, Y1: y + cellH,
				U0: col * memedit.AtlasCellW / texW,
				V0: row * memedit.AtlasCellH / texH,
				U1: (col + 1) * memedit.AtlasCellW / texW,
				V1: (row + 1) * memedit.AtlasCellH / texH,
			})
		}
		x += f.advance * scale
	}
	return dst
}
