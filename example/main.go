// Example opens an OpenGL window with a memory editor over a live
// buffer. A background goroutine keeps changing the buffer like a
// running program would.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Hotkeys: Ctrl+G focuses the jump input, Ctrl+O toggles the options
// panel, PageUp/PageDown scroll a page, F5 refreshes, Ctrl+Q quits.
// Options changed in the panel are saved to the config file.
package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/memedit"
	"github.com/go-theft-auto/memedit/backend/opengl"
	"github.com/go-theft-auto/memedit/internal/config"
	"github.com/go-theft-auto/memedit/source"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "memedit example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		verbose = flag.Bool("v", false, "enable debug logging")
		size    = flag.Int("size", 64<<10, "buffer size in bytes")
		seed    = flag.Uint64("seed", 1, "seed for the initial buffer contents")
		cfgPath = flag.String("config", config.Path(), "config file")
	)
	flag.Parse()

	if err := run(*cfgPath, *size, *seed, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfgPath string, size int, seed uint64, verbose bool) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Warn("Config: using defaults", "error", err)
	}
	memedit.SetVerbose(verbose || cfg.Verbose)

	buf := source.NewRandomBuffer(size, seed,
		source.WithOptions(cfg.Options()),
		source.WithOptionsHook(func(opts memedit.Options) {
			cfg.SetOptions(opts)
			if err := cfg.Save(cfgPath); err != nil {
				slog.Warn("Config: save failed", "error", err)
			}
		}),
		// The first page stays read-only so the emulator's registers are safe.
		source.WithWritable(func(addr uint64) bool { return addr >= 0x100 }),
	)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("memedit renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)
	memedit.SetClipboardProvider(opengl.NewGLFWClipboard(window))

	ui := memedit.New(renderer,
		memedit.WithGUIStyle(cfg.Style()),
		memedit.WithFontProvider(opengl.NewBasicFont(renderer.FontTextureID())))

	editor := memedit.NewMemoryEditor(buf, memedit.WithActionHandler(func(a memedit.Action) {
		if a.Kind == memedit.ActionByteWritten {
			slog.Info("Byte written", "addr", fmt.Sprintf("%#x", a.Address), "value", a.Value)
		}
	}))

	hotkeys := memedit.NewHotkeyRegistry()
	hotkeys.Register("quit", memedit.Ctrl(memedit.KeyQ), func() { window.SetShouldClose(true) })
	hotkeys.Register("refresh", memedit.Press(memedit.KeyF5), editor.Refresh)
	hotkeys.Register("jump", memedit.Ctrl(memedit.KeyG), func() { editor.FocusAddressInput() })
	hotkeys.Register("options", memedit.Ctrl(memedit.KeyO), func() { editor.ToggleOptions() })
	hotkeys.Register("page-up", memedit.Press(memedit.KeyPageUp), func() {
		editor.Scroll(-float32(editor.Dimensions().RowCount))
	})
	hotkeys.Register("page-down", memedit.Press(memedit.KeyPageDown), func() {
		editor.Scroll(float32(editor.Dimensions().RowCount))
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go emulate(ctx, buf)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		inputAdapter.NewFrame()
		glfw.PollEvents()

		now := glfw.GetTime()
		dt := float32(now - last)
		last = now
		input := inputAdapter.Update(dt)

		w, h := window.GetFramebufferSize()
		ui.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		// The emulator writes behind the editor's back.
		editor.Refresh()

		frame := ui.Begin(input, memedit.Vec2{X: float32(w), Y: float32(h)}, dt)
		memedit.RenderAll(frame, editor)
		hotkeys.Handle(frame, input)

		if err := ui.End(); err != nil {
			return fmt.Errorf("memedit render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

// emulate stands in for a running program: it counts frames into the
// first eight bytes and scribbles over one byte per tick.
func emulate(ctx context.Context, buf *source.Buffer) {
	ticker := time.NewTicker(time.Second / 30)
	defer ticker.Stop()

	var frame uint64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		frame++
		buf.Mutate(func(data []byte) {
			if len(data) >= 8 {
				binary.LittleEndian.PutUint64(data, frame)
			}
			if i := 0x10 + int(frame%0xF0); i < len(data) {
				data[i]++
			}
		})
	}
}
