package terminal

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/memedit"
)

// refreshMsg asks the model to re-read a live source.
type refreshMsg struct{}

// Model is a bubbletea model that runs one MemoryEditor full screen.
// Mouse clicks and the wheel need tea.WithMouseCellMotion.
type Model struct {
	editor  *memedit.MemoryEditor
	canvas  *Canvas
	input   *memedit.InputState
	hotkeys *memedit.HotkeyRegistry

	refreshEvery time.Duration
	quitting     bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithHotkeys routes unhandled keys to r while no editor input has focus.
func WithHotkeys(r *memedit.HotkeyRegistry) ModelOption {
	return func(m *Model) {
		m.hotkeys = r
	}
}

// WithRefresh re-reads the source every d, for sources that change
// underneath the editor.
func WithRefresh(d time.Duration) ModelOption {
	return func(m *Model) {
		m.refreshEvery = d
	}
}

// TerminalStyle adapts a style to cell units. The options panel loses
// its border: its first label row would sit on it.
func TerminalStyle(s memedit.Style) memedit.Style {
	s.ShadowOffset = memedit.Vec2{X: 1, Y: 1}
	s.BorderSize = 0
	return s
}

// NewModel creates a model around editor. The editor should use
// TerminalStyle.
func NewModel(editor *memedit.MemoryEditor, opts ...ModelOption) *Model {
	m := &Model{
		editor: editor,
		canvas: NewCanvas(0, 0, memedit.ColorWhite, memedit.ColorBlack),
		input:  memedit.NewInputState(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Editor returns the hosted editor.
func (m *Model) Editor() *memedit.MemoryEditor { return m.editor }

// Canvas returns the canvas the last View drew into.
func (m *Model) Canvas() *Canvas { return m.canvas }

// Quit makes the next Update end the program.
func (m *Model) Quit() { m.quitting = true }

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	if m.refreshEvery <= 0 {
		return nil
	}
	return tea.Tick(m.refreshEvery, func(time.Time) tea.Msg { return refreshMsg{} })
}

func (m *Model) viewport() memedit.Rect {
	w, h := m.canvas.Size()
	return memedit.Rect{W: float32(w), H: float32(h)}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.input.Reset()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, msg.Height)
		m.editor.Layout(m.canvas, m.viewport())
		return m, nil

	case refreshMsg:
		m.editor.Refresh()
		return m, m.tick()

	case tea.KeyMsg:
		m.translateKey(msg)

	case tea.MouseMsg:
		if !m.translateMouse(msg) {
			return m, nil
		}

	default:
		return m, nil
	}

	m.frame()
	if m.quitting {
		return m, tea.Quit
	}
	return m, nil
}

// frame runs one input pass of the editor and then the hotkeys. Keys
// seen while an input had focus, such as the Escape that blurs it,
// never reach the hotkeys.
func (m *Model) frame() {
	m.editor.Layout(m.canvas, m.viewport())
	focused := m.editor.HasFocus()
	m.editor.Update(m.input)
	if m.hotkeys != nil && !focused && !m.editor.HasFocus() {
		m.hotkeys.Handle(nil, m.input)
	}
	// Terminals report presses only; release the button right away.
	m.input.SetMouseButton(memedit.MouseButtonLeft, false)
}

func (m *Model) View() string {
	w, h := m.canvas.Size()
	if w == 0 || h == 0 {
		return ""
	}
	m.canvas.Clear()
	m.editor.Layout(m.canvas, m.viewport())
	m.editor.Draw(m.canvas)
	return m.canvas.Render()
}

var ctrlKeys = map[tea.KeyType]memedit.Key{
	tea.KeyCtrlC: memedit.KeyC,
	tea.KeyCtrlG: memedit.KeyG,
	tea.KeyCtrlO: memedit.KeyO,
	tea.KeyCtrlQ: memedit.KeyQ,
	tea.KeyCtrlS: memedit.KeyS,
	tea.KeyCtrlV: memedit.KeyV,
}

var namedKeys = map[tea.KeyType]memedit.Key{
	tea.KeyEnter:     memedit.KeyEnter,
	tea.KeyBackspace: memedit.KeyBackspace,
	tea.KeyEscape:    memedit.KeyEscape,
	tea.KeyTab:       memedit.KeyTab,
	tea.KeyUp:        memedit.KeyUp,
	tea.KeyDown:      memedit.KeyDown,
	tea.KeyPgUp:      memedit.KeyPageUp,
	tea.KeyPgDown:    memedit.KeyPageDown,
	tea.KeyHome:      memedit.KeyHome,
	tea.KeyF5:        memedit.KeyF5,
}

func (m *Model) translateKey(msg tea.KeyMsg) {
	m.input.ModCtrl = false
	m.input.ModAlt = msg.Alt

	if k, ok := ctrlKeys[msg.Type]; ok {
		m.input.ModCtrl = true
		m.input.TapKey(k)
		return
	}
	if k, ok := namedKeys[msg.Type]; ok {
		m.input.TapKey(k)
		return
	}
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return
		}
		for _, r := range msg.Runes {
			m.input.AddInputChar(r)
		}
	case tea.KeySpace:
		m.input.AddInputChar(' ')
	}
}

// translateMouse reports whether msg produced input worth a frame.
func (m *Model) translateMouse(msg tea.MouseMsg) bool {
	// Drawing rounds to the nearest cell, so cell x covers [x-0.5, x+0.5).
	m.input.SetMousePos(float32(msg.X), float32(msg.Y))
	if msg.Action != tea.MouseActionPress {
		return false
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		m.input.SetMouseButton(memedit.MouseButtonLeft, true)
	case tea.MouseButtonWheelUp:
		m.input.SetMouseWheel(1)
	case tea.MouseButtonWheelDown:
		m.input.SetMouseWheel(-1)
	default:
		return false
	}
	return true
}
