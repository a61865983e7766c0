// Package app is the member browser page: a search box over a virtualized
// member table.
package app

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/jcikl/jcikl-member-app-sub001/config"
	"github.com/jcikl/jcikl-member-app-sub001/dataset"
	"github.com/jcikl/jcikl-member-app-sub001/msg"
	"github.com/jcikl/jcikl-member-app-sub001/scroll"
	"github.com/jcikl/jcikl-member-app-sub001/style"
	"github.com/jcikl/jcikl-member-app-sub001/ui/anim"
	"github.com/jcikl/jcikl-member-app-sub001/ui/common"
	"github.com/jcikl/jcikl-member-app-sub001/ui/status"
	"github.com/jcikl/jcikl-member-app-sub001/ui/toast"
	"github.com/jcikl/jcikl-member-app-sub001/ui/vlist"
	"github.com/jcikl/jcikl-member-app-sub001/viewport"
)

// -- Options ------------------------------------------------------------------

type options struct {
	log     *zap.Logger
	initial viewport.Viewport
	keys    KeyMap
}

// Option is a functional option for New.
type Option func(*options)

// WithLogger attaches a logger to the page and its list.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithInitialSize seeds the list box before the first resize message, for
// example from viewport.Probe.
func WithInitialSize(v viewport.Viewport) Option {
	return func(o *options) { o.initial = v }
}

// WithKeyMap replaces the page bindings.
func WithKeyMap(k KeyMap) Option {
	return func(o *options) { o.keys = k }
}

// -- Model --------------------------------------------------------------------

// Model is the root Bubble Tea model of the member browser.
type Model struct {
	list   vlist.Model
	search textinput.Model
	status status.Model
	toasts toast.Model
	rows   *rowSource

	ctx    context.Context
	source dataset.Source
	log    *zap.Logger

	query       dataset.Query
	seq         int
	state       State
	keys        KeyMap
	listKeys    vlist.KeyMap
	layout      Layout
	fixedHeight int
	help        string
	err         error
	initCmd     tea.Cmd
}

// New constructs the page. The first load starts in Init; until it returns
// the list shows the loading placeholder.
func New(ctx context.Context, src dataset.Source, cfg *config.Config, opts ...Option) (Model, error) {
	o := options{log: zap.NewNop(), keys: DefaultKeyMap()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}

	rows := &rowSource{data: dataset.FromSlice(nil), itemSize: cfg.List.ItemSize}
	listKeys := vlist.DefaultKeyMap()
	listOpts := []vlist.Option{
		vlist.WithItemSize(cfg.List.ItemSize),
		vlist.WithOverscan(cfg.List.OverscanCount),
		vlist.WithEmptyText(cfg.List.EmptyText),
		vlist.WithLoadingText(cfg.List.LoadingText),
		vlist.WithScrollbar(cfg.List.Scrollbar),
		vlist.WithKeyMap(listKeys),
		vlist.WithLogger(o.log.Named("list")),
	}
	if cfg.List.Height > 0 {
		listOpts = append(listOpts, vlist.WithObserver(
			viewport.Fixed(o.initial.Width, float64(cfg.List.Height))))
	}
	list, err := vlist.New(rows.render, listOpts...)
	if err != nil {
		return Model{}, err
	}
	if cfg.List.Height == 0 && o.initial.Measured() {
		list.SetSize(int(o.initial.Width), int(o.initial.Height))
	}

	ti := textinput.New()
	ti.Placeholder = "Search name or email"
	ti.Prompt = "/ "
	s := ti.Styles()
	s.Focused.Prompt = style.PromptChar
	s.Blurred.Prompt = style.Faint
	ti.SetStyles(s)

	m := Model{
		list:        list,
		search:      ti,
		status:      status.New(),
		toasts:      toast.New(),
		rows:        rows,
		ctx:         ctx,
		source:      src,
		log:         o.log,
		keys:        o.keys,
		listKeys:    listKeys,
		fixedHeight: cfg.List.Height,
	}
	m.initCmd = m.startLoad(dataset.Query{})
	m.syncStatus()
	return m, nil
}

// Init runs the first dataset load.
func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// State returns the current input mode.
func (m Model) State() State { return m.state }

// Query returns the query of the dataset on screen, or of the load in flight.
func (m Model) Query() dataset.Query { return m.query }

// List exposes the member list.
func (m Model) List() vlist.Model { return m.list }

// Err returns the last load error, cleared by the next successful load.
func (m Model) Err() error { return m.err }

// startLoad lists members for q in a command. Every call bumps the sequence
// number so only the newest result is installed.
func (m *Model) startLoad(q dataset.Query) tea.Cmd {
	m.seq++
	m.query = q
	seq, src, ctx := m.seq, m.source, m.ctx
	m.log.Debug("loading members", zap.String("search", q.Search), zap.Int("seq", seq))

	spin := m.list.SetLoading(true)
	load := func() tea.Msg {
		d, err := src.List(ctx, q)
		if err != nil {
			return msg.LoadFailed{Seq: seq, Query: q, Err: err}
		}
		return msg.DatasetLoaded{Seq: seq, Query: q, Dataset: d}
	}
	return tea.Batch(spin, load)
}

// -- Update -------------------------------------------------------------------

func (m Model) Update(rawMsg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(rawMsg)
	next.syncStatus()
	return next, cmd
}

// syncStatus copies the list state into the status bar.
func (m *Model) syncStatus() {
	m.status.SetList(m.list.State(), m.list.Cursor())
	m.status.SetLoading(m.list.Loading())
	m.status.SetError(m.err)
}

func (m Model) update(rawMsg tea.Msg) (Model, tea.Cmd) {
	switch v := rawMsg.(type) {

	case tea.WindowSizeMsg:
		m.layout = ComputeLayout(v, m.fixedHeight)
		m.list.SetSize(int(m.layout.List.Width), int(m.layout.List.Height))
		m.search.SetWidth(max(0, v.Width-lipgloss.Width(m.search.Prompt)-1))
		m.status.SetWidth(v.Width)
		if m.state == StateHelp {
			m.help = m.renderHelp()
		}
		return m, nil

	case msg.DatasetLoaded:
		if v.Seq != m.seq {
			m.log.Debug("dropping superseded load", zap.Int("seq", v.Seq), zap.Int("current", m.seq))
			return m, nil
		}
		m.err = nil
		m.rows.data = v.Dataset
		m.list.SetLoading(false)
		m.list.SetDataset(v.Dataset.Identity(), v.Dataset.Len())
		m.log.Info("dataset loaded",
			zap.String("search", v.Query.Search),
			zap.Int("count", v.Dataset.Len()),
			zap.Uint64("token", uint64(v.Dataset.Identity())))
		return m, m.toasts.Add(fmt.Sprintf("%d members", v.Dataset.Len()), toast.Info)

	case msg.LoadFailed:
		if v.Seq != m.seq {
			return m, nil
		}
		m.err = v.Err
		m.list.SetLoading(false)
		m.log.Error("loading members failed", zap.String("search", v.Query.Search), zap.Error(v.Err))
		return m, m.toasts.Add("load failed", toast.Error)

	case toast.ExpireMsg:
		m.toasts.Prune()
		return m, nil

	case anim.TickMsg:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(v)
		return m, cmd

	case tea.MouseWheelMsg:
		if m.state == StateBrowsing {
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(v)
			return m, cmd
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(v)
	}

	if m.state == StateSearching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(rawMsg)
		return m, cmd
	}
	return m, nil
}

// -- Key handling -------------------------------------------------------------

func (m Model) handleKey(k tea.KeyPressMsg) (Model, tea.Cmd) {
	if key.Matches(k, m.keys.ForceQuit) {
		return m.quit()
	}
	switch m.state {
	case StateSearching:
		return m.handleSearchKey(k)
	case StateHelp:
		return m.handleHelpKey(k)
	default:
		return m.handleBrowseKey(k)
	}
}

func (m Model) handleBrowseKey(k tea.KeyPressMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(k, m.keys.Quit):
		return m.quit()

	case key.Matches(k, m.keys.Search):
		m.state = StateSearching
		return m, m.search.Focus()

	case key.Matches(k, m.keys.Help):
		m.state = StateHelp
		m.help = m.renderHelp()
		return m, nil

	case key.Matches(k, m.keys.Reload):
		return m, m.startLoad(m.query)

	case key.Matches(k, m.keys.Center):
		m.list.ScrollToIndex(m.list.Cursor(), scroll.AlignCenter)
		return m, nil

	case key.Matches(k, m.keys.Escape):
		if m.query.Search == "" {
			return m, nil
		}
		m.search.SetValue("")
		return m, m.startLoad(dataset.Query{})
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(k)
	return m, cmd
}

func (m Model) handleSearchKey(k tea.KeyPressMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(k, m.keys.Escape):
		m.state = StateBrowsing
		m.search.Blur()
		m.search.SetValue(m.query.Search)
		return m, nil

	case key.Matches(k, m.keys.Submit):
		m.state = StateBrowsing
		m.search.Blur()
		q := dataset.Query{Search: strings.TrimSpace(m.search.Value())}
		if q == m.query {
			return m, nil
		}
		return m, m.startLoad(q)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(k)
	return m, cmd
}

func (m Model) handleHelpKey(k tea.KeyPressMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(k, m.keys.Quit):
		return m.quit()
	case key.Matches(k, m.keys.Escape), key.Matches(k, m.keys.Help):
		m.state = StateBrowsing
	}
	return m, nil
}

func (m Model) quit() (Model, tea.Cmd) {
	m.list.Release()
	return m, tea.Quit
}

func (m Model) renderHelp() string {
	w := min(max(20, m.layout.TermWidth-6), 80)
	return renderMarkdown(helpMarkdown(m.keys, m.listKeys), w)
}

// -- View ---------------------------------------------------------------------

func (m Model) View() tea.View {
	v := tea.NewView(m.renderView())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// renderView composes the full terminal frame as a string.
func (m Model) renderView() string {
	if m.state == StateHelp {
		return lipgloss.Place(m.layout.TermWidth, m.layout.TermHeight,
			lipgloss.Center, lipgloss.Center, style.ModalBorder.Render(m.help))
	}

	sections := []string{
		m.renderTitle(),
		m.search.View(),
		headerLine(m.layout.TermWidth),
		m.list.View(),
		m.status.View(),
		m.renderHints(),
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderTitle() string {
	title := style.Title.Render("Members")
	if m.query.Search != "" {
		title += " " + style.Subtitle.Render(fmt.Sprintf("matching %q", m.query.Search))
	}
	return title
}

func (m Model) renderHints() string {
	if m.toasts.Len() > 0 {
		return m.toasts.View(m.layout.TermWidth)
	}
	if m.state == StateSearching {
		return common.KeyHelp(m.keys.Submit, m.keys.Escape)
	}
	return common.KeyHelp(m.keys.Search, m.listKeys.Down, m.listKeys.PageDown, m.keys.Help, m.keys.Quit)
}
