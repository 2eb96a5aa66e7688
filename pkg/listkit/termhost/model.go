// Package termhost runs a listkit list inside a bubbletea program.
//
// Rows are one cell tall with no spacing, the scrollbar is a one-column
// strip, and one terminal cell stands in for one pixel of the widget's
// geometry.
package termhost

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/BrandonKowalski/listkit/pkg/listkit/internal"
)

const drainInterval = 50 * time.Millisecond

// NewList creates a list sized for terminal cells.
func NewList(mode constants.SelectionMode) *listkit.List {
	bar := listkit.NewScrollbar()
	bar.SetMinThumb(1)

	settings := listkit.DefaultListSettings()
	settings.ItemHeight = 1
	settings.Spacing = 0
	settings.ScrollbarWidth = 1
	settings.TextPadding = internal.HorizontalPadding(1)
	settings.SelectionMode = mode
	settings.ScrollBar = bar
	return listkit.New(settings)
}

// Action is bound to a key and runs on the UI goroutine.
type Action func(m *Model) tea.Cmd

// Options configures a Model.
type Options struct {
	Status              func(l *listkit.List) string // Footer text; nil hides the footer
	Actions             map[string]Action            // Keyed by tea.KeyMsg.String()
	OnActivate          func(m *Model, index int) tea.Cmd
	DoubleClickInterval time.Duration
}

type drainMsg struct{}

// Model is a bubbletea model wrapping a List.
type Model struct {
	list    *listkit.List
	canvas  *CellCanvas
	opts    Options
	width   int
	height  int
	flash   string
	confirm *pendingConfirm

	now            func() time.Time
	lastClick      time.Time
	lastClickIndex int
	activated      int
}

type pendingConfirm struct {
	prompt string
	onYes  func(m *Model) tea.Cmd
}

// New wraps l. Use NewList for a list with terminal geometry.
func New(l *listkit.List, opts Options) *Model {
	if opts.DoubleClickInterval <= 0 {
		opts.DoubleClickInterval = constants.DefaultDoubleClickInterval
	}
	m := &Model{
		list:           l,
		canvas:         NewCellCanvas(0, 0, l.Theme().BackgroundColor),
		opts:           opts,
		now:            time.Now,
		lastClickIndex: listkit.NoIndex,
		activated:      listkit.NoIndex,
	}
	l.OnItemDoubleClicked(func(index int) { m.activated = index })
	return m
}

// List returns the wrapped list.
func (m *Model) List() *listkit.List {
	return m.list
}

// Flash replaces the footer with text until the next key press.
func (m *Model) Flash(text string) {
	m.flash = text
}

// Confirm asks a yes/no question in the footer. onYes runs when the user
// answers y; any other key dismisses the question.
func (m *Model) Confirm(prompt string, onYes func(m *Model) tea.Cmd) {
	m.confirm = &pendingConfirm{prompt: prompt, onYes: onYes}
}

func drainTick() tea.Cmd {
	return tea.Tick(drainInterval, func(time.Time) tea.Msg { return drainMsg{} })
}

func (m *Model) Init() tea.Cmd {
	return drainTick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case drainMsg:
		m.list.Drain()
		cmd = drainTick()
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	}
	m.layout()
	return m, cmd
}

func (m *Model) footerLines() int {
	if m.opts.Status == nil && m.flash == "" && m.confirm == nil {
		return 0
	}
	return 1
}

// layout sizes the list to the terminal minus the footer line.
func (m *Model) layout() {
	w, h := m.width, max(0, m.height-m.footerLines())
	if b := m.list.Bounds(); b.W != w || b.H != h {
		m.list.Resize(w, h)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	m.flash = ""

	if c := m.confirm; c != nil {
		m.confirm = nil
		if key == "y" || key == "Y" {
			return c.onYes(m)
		}
		return nil
	}

	switch key {
	case "ctrl+c", "esc", "q":
		return tea.Quit
	}

	if action, ok := m.opts.Actions[key]; ok {
		return action(m)
	}

	k, mods := translateKey(key)
	if k == constants.KeyUnassigned {
		return nil
	}
	m.list.KeyPress(k, mods)
	return m.takeActivation()
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	p := listkit.Point{X: msg.X, Y: msg.Y}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.list.Wheel(1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.list.Wheel(-1)
	case msg.Action == tea.MouseActionMotion:
		if m.list.Bounds().Contains(p) {
			m.list.MouseMove(p)
		} else {
			m.list.MouseLeave()
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		var mods constants.Modifier
		if msg.Ctrl {
			mods |= constants.ModCtrl
		}
		if msg.Shift {
			mods |= constants.ModShift
		}
		if msg.Alt {
			mods |= constants.ModAlt
		}
		m.list.MousePress(p, mods)

		index, now := m.list.IndexAt(p), m.now()
		if index != listkit.NoIndex && index == m.lastClickIndex && now.Sub(m.lastClick) <= m.opts.DoubleClickInterval {
			m.list.MouseDoubleClick(p)
			m.lastClickIndex = listkit.NoIndex
		} else {
			m.lastClick, m.lastClickIndex = now, index
		}
	}
	return m.takeActivation()
}

func (m *Model) takeActivation() tea.Cmd {
	index := m.activated
	m.activated = listkit.NoIndex
	if index == listkit.NoIndex || m.opts.OnActivate == nil {
		return nil
	}
	return m.opts.OnActivate(m, index)
}

func translateKey(key string) (constants.Key, constants.Modifier) {
	mods := constants.ModNone
	for {
		switch {
		case strings.HasPrefix(key, "ctrl+"):
			mods |= constants.ModCtrl
			key = strings.TrimPrefix(key, "ctrl+")
			continue
		case strings.HasPrefix(key, "shift+"):
			mods |= constants.ModShift
			key = strings.TrimPrefix(key, "shift+")
			continue
		case strings.HasPrefix(key, "alt+"):
			mods |= constants.ModAlt
			key = strings.TrimPrefix(key, "alt+")
			continue
		}
		break
	}

	switch key {
	case "up", "k":
		return constants.KeyUp, mods
	case "down", "j":
		return constants.KeyDown, mods
	case "pgup":
		return constants.KeyPageUp, mods
	case "pgdown":
		return constants.KeyPageDown, mods
	case "home", "g":
		return constants.KeyHome, mods
	case "end", "G":
		return constants.KeyEnd, mods
	case " ", "space":
		return constants.KeySpace, mods
	case "enter":
		return constants.KeyEnter, mods
	}
	return constants.KeyUnassigned, mods
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	bounds := m.list.Bounds()
	m.canvas.background = m.list.Theme().BackgroundColor
	m.canvas.Resize(bounds.W, bounds.H)
	m.list.Paint(m.canvas, listkit.Rect{})
	paintScrollbar(m.canvas, m.list)

	view := m.canvas.Render()
	if footer := m.footer(); m.footerLines() > 0 {
		view += "\n" + footer
	}
	return view
}

func (m *Model) footer() string {
	switch {
	case m.confirm != nil:
		return m.confirm.prompt + " (y/n)"
	case m.flash != "":
		return m.flash
	case m.opts.Status != nil:
		return m.opts.Status(m.list)
	}
	return ""
}

// paintScrollbar draws the built-in Scrollbar as a column of glyphs.
func paintScrollbar(c *CellCanvas, l *listkit.List) {
	bar, ok := l.ScrollBar().(*listkit.Scrollbar)
	if !ok || !bar.Visible() {
		return
	}

	theme := l.Theme()
	track := l.ScrollbarRect()
	thumb := bar.ThumbRect(track)
	for y := track.Y; y < track.Y+track.H; y++ {
		cellRect := listkit.Rect{X: track.X, Y: y, W: track.W, H: 1}
		c.FillRect(cellRect, theme.BackgroundColor)
		if y >= thumb.Y && y < thumb.Y+thumb.H {
			c.DrawText(cellRect, constants.ThumbGlyph, listkit.FontSpec{}, theme.ScrollbarThumbColor, constants.TextAlignLeft)
		} else {
			c.DrawText(cellRect, constants.TrackGlyph, listkit.FontSpec{}, theme.ScrollbarTrackColor, constants.TextAlignLeft)
		}
	}
}
