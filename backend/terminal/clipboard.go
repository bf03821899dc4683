package terminal

import (
	"log/slog"

	"github.com/atotto/clipboard"
)

// Clipboard implements memedit.ClipboardProvider with the system
// clipboard tools (xclip, xsel, wl-clipboard, pbcopy or the Windows API).
type Clipboard struct {
	logger *slog.Logger
}

// NewClipboard creates a system clipboard. A nil logger uses
// slog.Default.
func NewClipboard(logger *slog.Logger) *Clipboard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Clipboard{logger: logger}
}

// Available reports whether a clipboard tool was found.
func (c *Clipboard) Available() bool {
	return !clipboard.Unsupported
}

// GetText returns the clipboard text, or "" when it cannot be read.
func (c *Clipboard) GetText() string {
	if clipboard.Unsupported {
		return ""
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		c.logger.Debug("Clipboard: read failed", "error", err)
		return ""
	}
	return text
}

// SetText copies text to the clipboard.
func (c *Clipboard) SetText(text string) {
	if clipboard.Unsupported {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		c.logger.Debug("Clipboard: write failed", "error", err)
	}
}
