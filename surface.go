package memedit

// Surface is the draw capability the editor renders into.
//
// Coordinates are in the surface's own units: pixels for the OpenGL
// backend, cells for the terminal backend. Text is drawn with its
// top-left corner at pos using a single monospace face.
type Surface interface {
	FillRect(r Rect, color uint32)
	StrokeRect(r Rect, color uint32, thickness float32)
	Text(pos Vec2, text string, color uint32)

	// MeasureText returns the advance width and height of text.
	MeasureText(text string) Vec2
	// LineHeight returns the height of one line of text.
	LineHeight() float32

	PushClip(r Rect)
	PopClip()
}

// Metrics are the character cell measurements the editor lays out with.
type Metrics struct {
	CharWidth  float32
	CharHeight float32
}

// MeasureMetrics reads the cell size of a surface's monospace face.
func MeasureMetrics(s Surface) Metrics {
	return Metrics{
		CharWidth:  s.MeasureText("0").X,
		CharHeight: s.LineHeight(),
	}
}
