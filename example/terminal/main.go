// Terminal runs the memory editor in a terminal over a file or a random
// buffer.
//
//	go run ./example/terminal/ -file image.bin -w
//	go run ./example/terminal/ -size 4096
//
// Hotkeys: Ctrl+G focuses the jump input, Ctrl+O toggles the options
// panel, PageUp/PageDown scroll a page, Home jumps to 0, F5 refreshes,
// Ctrl+Q or Escape quits.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/memedit"
	"github.com/go-theft-auto/memedit/backend/terminal"
	"github.com/go-theft-auto/memedit/internal/config"
	"github.com/go-theft-auto/memedit/source"
)

func main() {
	var (
		path     = flag.String("file", "", "file to inspect (default: a random buffer)")
		writable = flag.Bool("w", false, "open the file for writing")
		size     = flag.Int("size", 64<<10, "random buffer size in bytes")
		seed     = flag.Uint64("seed", 1, "random buffer seed")
		cfgPath  = flag.String("config", config.Path(), "config file")
		logPath  = flag.String("log", "", "write debug logs to this file")
	)
	flag.Parse()

	if err := run(*path, *writable, *size, *seed, *cfgPath, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string, writable bool, size int, seed uint64, cfgPath, logPath string) error {
	// The screen belongs to bubbletea; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "memedit")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	cfg, cfgErr := config.Load(cfgPath)
	verbose := logPath != "" || cfg.Verbose
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	memedit.SetVerbose(verbose)
	if cfgErr != nil {
		logger.Warn("Config: using defaults", "error", cfgErr)
	}

	saveOptions := func(opts memedit.Options) {
		cfg.SetOptions(opts)
		if err := cfg.Save(cfgPath); err != nil {
			logger.Warn("Config: save failed", "error", err)
		}
	}

	var src memedit.MemorySource
	if path != "" {
		f, err := source.OpenFile(path, writable)
		if err != nil {
			return err
		}
		defer f.Close()
		f.SetOptions(cfg.Options())
		f.SetOptionsHook(saveOptions)
		src = f
	} else {
		src = source.NewRandomBuffer(size, seed,
			source.WithOptions(cfg.Options()),
			source.WithOptionsHook(saveOptions))
	}

	cb := terminal.NewClipboard(logger)
	if !cb.Available() {
		logger.Info("Clipboard: no clipboard tool found, copy and paste are disabled")
	}

	editor := memedit.NewMemoryEditor(src,
		memedit.WithStyle(terminal.TerminalStyle(cfg.Style())),
		memedit.WithLogger(logger),
		memedit.WithClipboard(cb))

	var model *terminal.Model
	hotkeys := memedit.NewHotkeyRegistry()
	hotkeys.Register("quit", memedit.Ctrl(memedit.KeyQ), func() { model.Quit() })
	hotkeys.Register("quit-escape", memedit.Press(memedit.KeyEscape), func() { model.Quit() })
	hotkeys.Register("refresh", memedit.Press(memedit.KeyF5), editor.Refresh)
	hotkeys.Register("jump", memedit.Ctrl(memedit.KeyG), func() { editor.FocusAddressInput() })
	hotkeys.Register("options", memedit.Ctrl(memedit.KeyO), func() { editor.ToggleOptions() })
	hotkeys.Register("home", memedit.Press(memedit.KeyHome), func() { editor.JumpTo(0) })
	hotkeys.Register("page-up", memedit.Press(memedit.KeyPageUp), func() {
		editor.Scroll(-float32(editor.Dimensions().RowCount))
	})
	hotkeys.Register("page-down", memedit.Press(memedit.KeyPageDown), func() {
		editor.Scroll(float32(editor.Dimensions().RowCount))
	})
	hotkeys.Register("row-up", memedit.Press(memedit.KeyUp), func() { editor.Scroll(-1) })
	hotkeys.Register("row-down", memedit.Press(memedit.KeyDown), func() { editor.Scroll(1) })

	model = terminal.NewModel(editor,
		terminal.WithHotkeys(hotkeys),
		terminal.WithRefresh(500*time.Millisecond))

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
