// Command gen renders the memory editor in a few states, captures the
// framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/memedit"
	"github.com/go-theft-auto/memedit/backend/opengl"
	"github.com/go-theft-auto/memedit/source"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single editor screenshot to capture.
type screenshot struct {
	name   string                        // filename without extension
	width  int                           // viewport width
	height int                           // viewport height
	style  memedit.Style                 // GUI style
	opts   memedit.Options               // options the source starts with
	setup  func(e *memedit.MemoryEditor) // runs after the first layout
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("memedit renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only update the renderer projection. GLFW resizes asynchronously,
	// so the hidden window stays at 800x600 (larger than every shot).
	renderer.Resize(s.width, s.height)

	// Fresh GUI and editor per screenshot.
	ui := memedit.New(renderer,
		memedit.WithGUIStyle(s.style),
		memedit.WithFontProvider(opengl.NewBasicFont(renderer.FontTextureID())))
	buf := source.NewRandomBuffer(4096, 7, source.WithOptions(s.opts))
	buf.Mutate(func(data []byte) { copy(data[0x40:], "Hello, memory editor!") })
	editor := memedit.NewMemoryEditor(buf)

	displaySize := memedit.Vec2{X: float32(s.width), Y: float32(s.height)}
	for i := 0; i < 2; i++ {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(memedit.NewInputState(), displaySize, 1.0/60.0)
		editor.Layout(ctx, memedit.Rect{W: displaySize.X, H: displaySize.Y})
		if i == 0 && s.setup != nil {
			s.setup(editor)
		}
		editor.Render(ctx)
		if err := ui.End(); err != nil {
			return err
		}
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// clickByte selects the byte at index i of the first row.
func clickByte(e *memedit.MemoryEditor, i int) {
	d := e.Dimensions()
	e.Click(&memedit.Vec2{X: d.ByteX(i) + d.CharWidth, Y: d.CharHeight / 2})
}

func buildScreenshots() []screenshot {
	opts := memedit.DefaultOptions()

	wide := opts
	wide.RowLength = 32
	wide.PreviewFormat = memedit.PreviewU32

	noASCII := opts
	noASCII.ShowASCII = false

	return []screenshot{
		{name: "editor", width: 640, height: 360, style: memedit.DefaultStyle(), opts: opts},
		{
			name: "editor_selection", width: 640, height: 360, style: memedit.DefaultStyle(), opts: opts,
			setup: func(e *memedit.MemoryEditor) { clickByte(e, 3) },
		},
		{
			name: "editor_options", width: 640, height: 360, style: memedit.GTAStyle(), opts: opts,
			setup: func(e *memedit.MemoryEditor) { e.ToggleOptions() },
		},
		{
			name: "editor_wide", width: 800, height: 300, style: memedit.DarkStyle(), opts: wide,
			setup: func(e *memedit.MemoryEditor) { clickByte(e, 8) },
		},
		{name: "editor_no_ascii", width: 480, height: 240, style: memedit.LightStyle(), opts: noASCII},
		{
			name: "editor_jump", width: 640, height: 360, style: memedit.DefaultStyle(), opts: opts,
			setup: func(e *memedit.MemoryEditor) {
				e.JumpTo(0x40)
				e.FocusAddressInput()
				for _, r := range "0080" {
					e.TypeChar(r)
				}
			},
		},
	}
}
