package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/phaseline/internal/cli/formatter"
	"github.com/alexanderramin/phaseline/internal/domain"
	"github.com/alexanderramin/phaseline/internal/service"
	"github.com/alexanderramin/phaseline/internal/timeline"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type pagerOptions struct {
	cached bool
	watch  bool
	start  string
}

// ── messages ─────────────────────────────────────────────────────────────────

// dataLoadedMsg carries the result of a refresh or cache read.
type dataLoadedMsg struct {
	res *service.LoadResult
	err error
}

// sourceChangedMsg is sent by the file watcher when the CSV changes on disk.
type sourceChangedMsg struct{}

// ── model ────────────────────────────────────────────────────────────────────

const chromeLines = 4 // tab bar, range line, status line, help line

// pagerModel pages a fixed-width viewport across the data span. It owns the
// viewport and navigator; every move re-renders all charts from the records.
type pagerModel struct {
	app  *App
	opts pagerOptions
	keys pagerKeys
	help help.Model
	body viewport.Model

	set      *service.ChartSet
	nav      timeline.Navigator
	view     timeline.Viewport
	active   int
	loaded   bool
	loading  bool
	status   string
	err      error
	width    int
	height   int
	quitting bool
}

func newPagerModel(app *App, opts pagerOptions) pagerModel {
	keys := defaultPagerKeys()
	body := viewport.New(formatter.DefaultWidth, 20)
	body.KeyMap = viewport.KeyMap{
		Up:       keys.Up,
		Down:     keys.Down,
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
	}

	return pagerModel{
		app:     app,
		opts:    opts,
		keys:    keys,
		help:    help.New(),
		body:    body,
		width:   formatter.DefaultWidth,
		loading: true,
	}
}

func (m pagerModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m pagerModel) loadCmd() tea.Cmd {
	app, cached := m.app, m.opts.cached
	return func() tea.Msg {
		ctx := context.Background()
		if cached {
			res, err := app.Load.Cached(ctx)
			return dataLoadedMsg{res: res, err: err}
		}
		res, err := app.Load.Refresh(ctx)
		return dataLoadedMsg{res: res, err: err}
	}
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.body.Width = msg.Width
		m.body.Height = max(msg.Height-chromeLines, 1)
		m.refreshBody()
		return m, nil

	case dataLoadedMsg:
		m.loading = false
		m.applyLoad(msg)
		return m, nil

	case sourceChangedMsg:
		m.loading = true
		m.status = "Source changed, reloading..."
		return m, m.loadCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m pagerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		m.status = "Reloading..."
		return m, m.loadCmd()
	}

	if m.set == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.page(service.PageBackward)
	case key.Matches(msg, m.keys.Forward):
		m.page(service.PageForward)
	case key.Matches(msg, m.keys.Next):
		m.cycle(1)
	case key.Matches(msg, m.keys.Prev):
		m.cycle(-1)
	case key.Matches(msg, m.keys.Up, m.keys.Down, m.body.KeyMap.PageUp, m.body.KeyMap.PageDown):
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyLoad renders the new dataset, staying on the current viewport month
// when it still fits.
func (m *pagerModel) applyLoad(msg dataLoadedMsg) {
	m.err = msg.err
	m.status = ""

	var records []domain.Record
	if msg.err == nil && msg.res != nil {
		records = msg.res.Records
		switch {
		case msg.res.Degraded:
			m.status = fmt.Sprintf("Could not read the spreadsheet (%v); showing no projects.", msg.res.Err)
		case len(msg.res.Warnings) > 0:
			m.status = fmt.Sprintf("%d date cells could not be read.", len(msg.res.Warnings))
		case m.loaded:
			m.status = fmt.Sprintf("Reloaded %d projects.", len(records))
		}
	}
	if msg.err != nil && m.set != nil {
		// Keep drawing the previous data.
		return
	}

	req := service.RenderRequest{Today: m.app.today()}
	if m.loaded {
		keep := m.view
		req.Keep = &keep
	} else if m.opts.start != "" {
		if start, err := time.Parse(monthLayout, m.opts.start); err == nil {
			req.Start = &start
		}
	}

	set, err := m.app.Charts.Render(records, req)
	if err != nil {
		m.err = err
		return
	}
	m.setCharts(set)
	m.loaded = true
}

func (m *pagerModel) setCharts(set *service.ChartSet) {
	m.set = set
	m.view = set.Viewport
	m.nav = timeline.NewNavigator(set.Span, set.Viewport.Months)
	if n := len(set.Charts()); m.active >= n {
		m.active = 0
	}
	m.refreshBody()
}

func (m *pagerModel) page(dir service.PageDirection) {
	var ok bool
	if dir == service.PageBackward {
		_, ok = m.nav.PageBackward(m.view)
	} else {
		_, ok = m.nav.PageForward(m.view)
	}
	if !ok {
		if dir == service.PageBackward {
			m.status = "Already at the start of the data."
		} else {
			m.status = "Already at the end of the data."
		}
		return
	}

	next, _ := m.app.Charts.Page(m.set, dir)
	m.status = ""
	m.setCharts(next)
}

func (m *pagerModel) cycle(step int) {
	n := len(m.set.Charts())
	if n == 0 {
		return
	}
	m.active = (m.active + step + n) % n
	m.body.GotoTop()
	m.refreshBody()
}

func (m *pagerModel) refreshBody() {
	if m.set == nil {
		return
	}
	charts := m.set.Charts()
	if len(charts) == 0 {
		m.body.SetContent("")
		return
	}
	m.body.SetContent(formatter.RenderChart(charts[m.active], m.width))
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m pagerModel) View() string {
	if m.quitting {
		return ""
	}
	if m.set == nil {
		if m.err != nil {
			return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n" + m.help.View(m.keys)
		}
		return formatter.Dim("Loading charts...") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n")
	b.WriteString(formatter.Dim(formatter.MonthRange(m.view.Start, m.view.End())))
	b.WriteString("  ")
	b.WriteString(formatter.NavHint(m.set.CanBack, m.set.CanForward))
	b.WriteString("\n")
	b.WriteString(m.body.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m pagerModel) tabBar() string {
	charts := m.set.Charts()
	tabs := make([]string, len(charts))
	for i, c := range charts {
		if i == m.active {
			tabs[i] = formatter.StyleHeader.Render("[" + c.Title + "]")
		} else {
			tabs[i] = formatter.Dim(" " + c.Title + " ")
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m pagerModel) statusLine() string {
	switch {
	case m.err != nil:
		return formatter.StyleRed.Render("Error: " + m.err.Error())
	case m.loading:
		return formatter.Dim("Loading...")
	default:
		return formatter.Dim(m.status)
	}
}
