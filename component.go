package memedit

// Component is anything that draws itself into a frame Context.
// MemoryEditor implements it, so hosts can treat the editor like any
// other panel content.
type Component interface {
	// Render draws the component using the provided context.
	Render(ctx *Context)
}

// InteractiveComponent is a component that can receive input.
type InteractiveComponent interface {
	Component
	// HandleInput processes the frame's input and returns true if the
	// component consumed it.
	HandleInput(ctx *Context, input *InputState) bool
}

// RenderAll handles input for and then draws each component in order.
// Components that only implement Component are drawn without input.
func RenderAll(ctx *Context, components ...Component) {
	for _, c := range components {
		if ic, ok := c.(InteractiveComponent); ok && ctx.Input != nil {
			ic.HandleInput(ctx, ctx.Input)
		}
		c.Render(ctx)
	}
}
