package memedit

// FontProvider supplies the font a Context draws text with.
// The package does not depend on any concrete font implementation;
// backends inject one (see backend/opengl.BasicFont).
type FontProvider interface {
	// ActiveFont returns the font to render with, or nil to fall back to
	// the built-in atlas.
	ActiveFont() Font
}

// Font is a single monospace font backed by a texture atlas.
type Font interface {
	// TextureID returns the texture holding the glyph atlas.
	TextureID() uint32

	// HasGlyph returns true if the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// MeasureText returns the pixel size of text at scale.
	MeasureText(text string, scale float32) Vec2

	// AppendGlyphQuads appends the quads for text drawn with its top-left
	// corner at (x, y) and returns the extended slice.
	AppendGlyphQuads(dst []GlyphQuad, text string, x, y, scale float32) []GlyphQuad

	// LineHeight returns the line height at scale.
	LineHeight(scale float32) float32
}
