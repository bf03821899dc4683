package memedit

import "hash/fnv"

// ID identifies an immediate-mode editor across frames. The same label
// under the same parent yields the same ID every frame.
type ID uint64

// GetID returns the ID for label under the current parent.
func (ctx *Context) GetID(label string) ID {
	h := fnv.New64a()
	var parent [8]byte
	p := uint64(ctx.CurrentID())
	for i := range parent {
		parent[i] = byte(p >> (8 * i))
	}
	h.Write(parent[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// PushID scopes following GetID calls under label, so two windows can
// each hold an editor called "memory".
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PopID removes the last ID from the stack.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the current parent ID (top of stack).
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}
