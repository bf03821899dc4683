package memedit

// ActionKind identifies a user action performed in an editor.
type ActionKind int

const (
	ActionRowLengthChanged ActionKind = iota + 1
	ActionPreviewFormatChanged
	ActionShowASCIIChanged
	ActionByteWritten
	ActionDataRangeChanged
	ActionOptionsToggled
)

func (k ActionKind) String() string {
	switch k {
	case ActionRowLengthChanged:
		return "row-length-changed"
	case ActionPreviewFormatChanged:
		return "preview-format-changed"
	case ActionShowASCIIChanged:
		return "show-ascii-changed"
	case ActionByteWritten:
		return "byte-written"
	case ActionDataRangeChanged:
		return "data-range-changed"
	case ActionOptionsToggled:
		return "options-toggled"
	default:
		return "unknown"
	}
}

// Action describes a change an editor made. Only the fields relevant to
// Kind are set.
type Action struct {
	Kind ActionKind

	// Options holds the options after a row length, format or ASCII change.
	Options Options

	// Address is the written address for ActionByteWritten and the new
	// start address for ActionDataRangeChanged.
	Address uint64
	// End is the exclusive end of the new window for ActionDataRangeChanged.
	End uint64
	// Value is the byte stored by ActionByteWritten.
	Value byte

	// OptionsOpen is the panel state after ActionOptionsToggled.
	OptionsOpen bool
}

// ActionHandler receives actions from an editor. It runs synchronously
// inside the input call that caused the action.
type ActionHandler func(Action)

// Status tells the host what an editor call changed.
type Status struct {
	// Captured is true when the event was consumed by the editor.
	Captured bool
	// Relayout is true when geometry changed and Layout must run again.
	Relayout bool
	// Redraw is true when the next Draw will differ.
	Redraw bool
}

// Merge combines two statuses.
func (s Status) Merge(o Status) Status {
	return Status{
		Captured: s.Captured || o.Captured,
		Relayout: s.Relayout || o.Relayout,
		Redraw:   s.Redraw || o.Redraw || s.Relayout || o.Relayout,
	}
}
