package vlist

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/jcikl/jcikl-member-app-sub001/scroll"
	"github.com/jcikl/jcikl-member-app-sub001/style"
	"github.com/jcikl/jcikl-member-app-sub001/ui/anim"
	"github.com/jcikl/jcikl-member-app-sub001/ui/common"
	"github.com/jcikl/jcikl-member-app-sub001/viewport"
	"github.com/jcikl/jcikl-member-app-sub001/window"
)

// wheelStep is how many lines one mouse-wheel notch scrolls.
const wheelStep = 3

// ---------------------------------------------------------------------------
// Options
// ---------------------------------------------------------------------------

type options struct {
	itemSize    int
	overscan    int
	emptyText   string
	loadingText string
	scrollbar   bool
	keys        KeyMap
	observer    *viewport.Observer
	log         *zap.Logger
}

// Option is a functional option for New.
type Option func(*options)

// WithItemSize sets the height of every row in terminal lines. Values below
// 1 are rejected by New with a *window.ConfigurationError.
func WithItemSize(lines int) Option {
	return func(o *options) { o.itemSize = lines }
}

// WithOverscan sets the number of extra rows rendered above and below the
// visible range.
func WithOverscan(n int) Option {
	return func(o *options) { o.overscan = n }
}

// WithEmptyText sets the placeholder shown when the dataset has no rows.
func WithEmptyText(s string) Option {
	return func(o *options) { o.emptyText = s }
}

// WithLoadingText sets the label of the loading placeholder.
func WithLoadingText(s string) Option {
	return func(o *options) { o.loadingText = s }
}

// WithScrollbar toggles the one-column scrollbar on the right edge.
func WithScrollbar(on bool) Option {
	return func(o *options) { o.scrollbar = on }
}

// WithKeyMap replaces the default navigation bindings.
func WithKeyMap(k KeyMap) Option {
	return func(o *options) { o.keys = k }
}

// WithObserver makes the list follow an existing size observer instead of
// owning one. A viewport.Fixed observer pins the list to a configured size.
func WithObserver(obs *viewport.Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithLogger attaches a logger, passed down to the scroll controller.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Model is a bubbletea component showing a virtualized list. Copies share
// the same scroll controller and size observer, so the value-receiver
// Update/View pattern keeps working.
type Model struct {
	ctrl     *scroll.Controller
	box      *viewport.Observer
	release  func()
	render   RenderRowFunc
	itemSize int

	cursor    int
	loading   bool
	spinner   anim.Model
	emptyText string
	scrollbar bool
	keys      KeyMap
}

// New builds a list that calls render for every row inside the window.
func New(render RenderRowFunc, opts ...Option) (Model, error) {
	o := options{
		itemSize:    1,
		overscan:    window.DefaultOverscan,
		emptyText:   "No rows",
		loadingText: "Loading",
		scrollbar:   true,
		keys:        DefaultKeyMap(),
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	ctrl, err := scroll.New(scroll.Config{
		ItemSize: float64(o.itemSize),
		Overscan: o.overscan,
	}, scroll.WithLogger(o.log))
	if err != nil {
		return Model{}, err
	}

	box := o.observer
	if box == nil {
		box = &viewport.Observer{}
	}
	cancel := box.Subscribe(func(v viewport.Viewport) {
		ctrl.SetViewport(v.Height)
	})

	return Model{
		ctrl:      ctrl,
		box:       box,
		release:   cancel,
		render:    render,
		itemSize:  o.itemSize,
		spinner:   anim.New(o.loadingText, style.GradColorA, style.GradColorB),
		emptyText: o.emptyText,
		scrollbar: o.scrollbar,
		keys:      o.keys,
	}, nil
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// SetSize reports the box the list may draw into. Only changes reach the
// scroll controller.
func (m *Model) SetSize(w, h int) {
	m.box.Report(viewport.Viewport{Width: float64(w), Height: float64(h)})
}

// SetDataset installs a dataset of count rows identified by identity. A new
// identity scrolls back to the top and resets the cursor.
func (m *Model) SetDataset(identity any, count int) {
	replaced := identity != m.ctrl.Identity()
	m.ctrl.SetDataset(identity, count)
	if replaced {
		m.cursor = 0
		return
	}
	m.cursor = m.clampCursor(m.cursor)
}

// SetLoading switches the loading placeholder on or off. While loading no
// rows are rendered. The returned command drives the spinner.
func (m *Model) SetLoading(on bool) tea.Cmd {
	m.loading = on
	if on {
		return m.spinner.Start()
	}
	m.spinner.Stop()
	return nil
}

// Loading reports whether the loading placeholder is active.
func (m Model) Loading() bool { return m.loading }

// SetEmptyText changes the empty-dataset placeholder.
func (m *Model) SetEmptyText(s string) { m.emptyText = s }

// Release detaches the list from its size observer. Size reports arriving
// afterwards no longer reach the controller.
func (m *Model) Release() {
	if m.release != nil {
		m.release()
		m.release = nil
	}
}

// ---------------------------------------------------------------------------
// Scroll
// ---------------------------------------------------------------------------

// OnScroll sets the scroll offset in lines.
func (m *Model) OnScroll(offset int) { m.ctrl.OnScroll(float64(offset)) }

// ScrollToIndex scrolls row i into view and selects it.
func (m *Model) ScrollToIndex(i int, align scroll.Align) {
	m.cursor = m.clampCursor(i)
	m.ctrl.ScrollToIndex(i, align)
}

// ScrollToTop scrolls to the first row and selects it.
func (m *Model) ScrollToTop() {
	m.cursor = 0
	m.ctrl.ScrollToTop()
}

// Cursor returns the selected row index.
func (m Model) Cursor() int { return m.cursor }

// Controller exposes the scroll controller for hosts that subscribe to
// scroll state.
func (m Model) Controller() *scroll.Controller { return m.ctrl }

// State returns the current scroll state.
func (m Model) State() scroll.State { return m.ctrl.State() }

func (m Model) clampCursor(i int) int {
	n := m.ctrl.Count()
	if n == 0 {
		return 0
	}
	return min(max(i, 0), n-1)
}

// pageRows is the number of whole rows one viewport shows.
func (m Model) pageRows() int {
	return max(1, int(m.ctrl.ViewportHeight())/m.itemSize)
}

func (m *Model) moveCursor(delta int) {
	m.cursor = m.clampCursor(m.cursor + delta)
	m.ctrl.ScrollToIndex(m.cursor, scroll.AlignAuto)
}

func (m *Model) page(rows int) {
	m.ctrl.ScrollBy(float64(rows * m.itemSize))
	m.moveCursor(rows)
}

// ---------------------------------------------------------------------------
// Update (bubbletea)
// ---------------------------------------------------------------------------

// Update handles navigation keys, mouse wheel and spinner ticks. Callers
// forward whichever tea.Msg events they want the list to respond to.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case anim.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseWheelMsg:
		if m.loading {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseWheelUp:
			m.ctrl.ScrollBy(-wheelStep)
		case tea.MouseWheelDown:
			m.ctrl.ScrollBy(wheelStep)
		}

	case tea.KeyPressMsg:
		if m.loading || m.ctrl.Count() == 0 {
			return m, nil
		}
		switch {
		case key.Matches[tea.KeyPressMsg](msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches[tea.KeyPressMsg](msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches[tea.KeyPressMsg](msg, m.keys.PageUp):
			m.page(-m.pageRows())
		case key.Matches[tea.KeyPressMsg](msg, m.keys.PageDown):
			m.page(m.pageRows())
		case key.Matches[tea.KeyPressMsg](msg, m.keys.HalfPageUp):
			m.page(-max(1, m.pageRows()/2))
		case key.Matches[tea.KeyPressMsg](msg, m.keys.HalfPageDown):
			m.page(max(1, m.pageRows()/2))
		case key.Matches[tea.KeyPressMsg](msg, m.keys.Top):
			m.ScrollToTop()
		case key.Matches[tea.KeyPressMsg](msg, m.keys.Bottom):
			m.ScrollToIndex(m.ctrl.Count()-1, scroll.AlignEnd)
		}
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

// Frame runs one layout cycle for the current state.
func (m Model) Frame() Frame {
	return Layout(m.ctrl.State(), m.loading, Placeholders{
		Empty:   func() string { return m.emptyText },
		Loading: m.spinner.View,
	}, m.cursor, m.render)
}

// View renders the windowed rows clipped to the viewport, with a scrollbar
// sized to the full surface.
func (m Model) View() string {
	size, ok := m.box.Last()
	if !ok {
		return ""
	}
	w, h := int(size.Width), int(size.Height)
	if w <= 0 || h <= 0 {
		return ""
	}

	f := m.Frame()
	switch f.Kind {
	case FrameEmpty, FrameLoading:
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
			style.Placeholder.Render(f.Placeholder))
	case FrameUnmeasured:
		return ""
	}

	contentW := w
	if m.scrollbar && w > 1 {
		contentW = w - 1
	}
	offset := int(f.Offset)

	lines := make([]string, h)
	for _, row := range f.Rows {
		rowLines := strings.Split(row.Content, "\n")
		top := int(row.Top) - offset
		for j := 0; j < m.itemSize; j++ {
			y := top + j
			if y < 0 || y >= h {
				continue
			}
			if j < len(rowLines) {
				lines[y] = rowLines[j]
			}
		}
	}
	for i, l := range lines {
		lines[i] = fitLine(l, contentW)
	}
	body := strings.Join(lines, "\n")

	if contentW == w {
		return body
	}
	bar := common.Scrollbar(h, int(f.SurfaceHeight), offset)
	return lipgloss.JoinHorizontal(lipgloss.Top, body, bar)
}

// fitLine truncates or pads s to exactly width cells.
func fitLine(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
