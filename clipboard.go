package memedit

// ClipboardProvider abstracts system clipboard access.
// backend/opengl wraps the GLFW window clipboard and backend/terminal
// wraps the system clipboard tools.
type ClipboardProvider interface {
	// GetText returns the clipboard text, or "" if it holds none.
	GetText() string

	// SetText copies text to the clipboard.
	SetText(text string)
}

// Global clipboard provider (set by application during initialization).
var clipboardProvider ClipboardProvider

// SetClipboardProvider sets the global clipboard provider. Editors
// created without WithClipboard use it.
func SetClipboardProvider(cp ClipboardProvider) {
	clipboardProvider = cp
}

// GetClipboardProvider returns the current clipboard provider, or nil if not set.
func GetClipboardProvider() ClipboardProvider {
	return clipboardProvider
}
