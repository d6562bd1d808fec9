package ui

import (
	"context"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"sitesearch/internal/clipboard"
	"sitesearch/internal/config"
	"sitesearch/internal/domain"
	"sitesearch/internal/eventbus"
	"sitesearch/internal/logging"
	"sitesearch/internal/search"
	"sitesearch/internal/ui/input"
	inputtypes "sitesearch/internal/ui/input/types"
	"sitesearch/internal/ui/state"
	"sitesearch/internal/ui/views"
)

// statusTTL is how long a status line notice stays up
const statusTTL = 3 * time.Second

// Model represents the UI state
type Model struct {
	// ctx lives as long as the view. Every pending timer selects on it.
	ctx    context.Context
	cancel context.CancelFunc

	// searchCancel stops the in-flight search when it is replaced
	searchCancel context.CancelFunc

	bus       eventbus.EventBus
	config    *config.Config
	state     *state.AppState // centralized state
	engine    search.Engine
	clipboard clipboard.Writer
	log       *zap.Logger

	// UI-specific state not in AppState
	width         int
	height        int
	help          help.Model
	spinner       spinner.Model
	viewport      viewport.Model
	statusIsError bool
	statusSeq     int
	inPagerMode   bool // tracks if we're currently in pager mode

	renderer     *views.Renderer
	inputHandler *input.Handler
	pager        *Pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, engine search.Engine, clip clipboard.Writer) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if engine == nil {
		engine = search.NewTemplateEngine(cfg.Site)
	}
	if clip == nil {
		clip = clipboard.New(cfg.ClipboardMode())
	}

	ctx, cancel := context.WithCancel(context.Background())

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		ctx:          ctx,
		cancel:       cancel,
		bus:          bus,
		config:       cfg,
		state:        state.NewAppState(cfg.Site),
		engine:       engine,
		clipboard:    clip,
		log:          logging.Named("ui"),
		help:         help.New(),
		spinner:      sp,
		viewport:     viewport.New(80, 10),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pager:        NewPager(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// State exposes the view state, mainly for tests
func (m *Model) State() *state.AppState {
	return m.state
}

// HasResults implements inputtypes.Context
func (m *Model) HasResults() bool {
	return len(m.state.Results) > 0
}

// IsSearching implements inputtypes.Context
func (m *Model) IsSearching() bool {
	return m.state.Searching
}

// ShowingHelp implements inputtypes.Context
func (m *Model) ShowingHelp() bool {
	return m.state.ShowHelp
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.inputHandler.TextInput().Focus()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.inputHandler.SetWidth(m.renderer.BodyWidth(msg.Width, false) - 8)
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchDoneMsg:
		return m, m.completeSearch(msg)

	case copyResetMsg:
		if m.state.ClearCopied() {
			m.log.Debug("copied marker reset", zap.String("copied_by", msg.id))
		}
		return m, nil

	case spinner.TickMsg:
		if !m.state.Searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.state.StatusMessage = ""
			m.statusIsError = false
		}
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			m.log.Warn("pager failed", zap.Error(msg.err))
			return m, m.setStatus("Pager failed: "+msg.err.Error(), true)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case EventMsg:
		m.log.Debug("event", zap.String("type", string(msg.Event.Type())))
		return m, nil
	}

	// Cursor blink and friends
	return m, m.inputHandler.Update(msg)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		m.state.SetQuery(a.Text)
		return nil

	case inputtypes.SubmitAction:
		return m.submit()

	case inputtypes.NavigateAction:
		delta := a.Delta
		if a.ToEdge {
			delta *= len(m.state.Results)
		}
		m.state.Move(delta)
		return nil

	case inputtypes.CopyLinkAction:
		result, ok := m.state.SelectedResult()
		if !ok {
			return nil
		}
		return m.copyLink(result.ID)

	case inputtypes.VoteAction:
		result, ok := m.state.SelectedResult()
		if !ok {
			return nil
		}
		return m.vote(result.ID, a.Vote)

	case inputtypes.OpenPagerAction:
		return m.openPager()

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		return nil

	case inputtypes.QuitAction:
		m.Close()
		return tea.Quit
	}
	return nil
}

// submit starts a search for the current query, replacing any in-flight one
func (m *Model) submit() tea.Cmd {
	req, ok := m.state.Submit()
	if !ok {
		return nil
	}

	if m.searchCancel != nil {
		m.searchCancel()
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.searchCancel = cancel

	if req.Superseded != "" {
		m.log.Info("search superseded", zap.String("request_id", req.Superseded))
		m.publish(eventbus.SearchSupersededEvent{RequestID: req.Superseded, Query: req.Query})
	}
	m.log.Info("search submitted",
		zap.String("request_id", req.Token),
		zap.String("query", req.Query),
		zap.String("engine", m.engine.Name()))
	m.publish(eventbus.SearchSubmittedEvent{RequestID: req.Token, Query: req.Query, Site: m.state.Site})

	return tea.Batch(m.runSearch(ctx, req), m.spinner.Tick)
}

// runSearch waits out the search delay, then asks the engine for results
func (m *Model) runSearch(ctx context.Context, req state.Request) tea.Cmd {
	engine := m.engine
	delay := m.config.SearchDelay()
	return func() tea.Msg {
		if err := sleep(ctx, delay); err != nil {
			return searchDoneMsg{token: req.Token, query: req.Query, err: err}
		}
		results, err := engine.Search(ctx, req.Query)
		return searchDoneMsg{token: req.Token, query: req.Query, results: results, err: err}
	}
}

func (m *Model) completeSearch(msg searchDoneMsg) tea.Cmd {
	if !m.state.IsCurrent(msg.token) {
		m.log.Debug("dropping stale search completion", zap.String("request_id", msg.token))
		return nil
	}

	var cmd tea.Cmd
	results := msg.results
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return nil
		}
		m.log.Error("search failed", zap.String("request_id", msg.token), zap.Error(msg.err))
		results = nil
		cmd = m.setStatus("Search failed: "+msg.err.Error(), true)
	}

	if !m.state.Complete(msg.token, results) {
		return cmd
	}
	m.log.Info("search completed",
		zap.String("request_id", msg.token),
		zap.Int("results", len(results)))
	m.publish(eventbus.SearchCompletedEvent{
		RequestID:   msg.token,
		Query:       msg.query,
		ResultCount: len(results),
		Err:         msg.err,
	})
	return cmd
}

// copyLink hands the result URL to the clipboard and starts its copied window
func (m *Model) copyLink(id string) tea.Cmd {
	url, ok := m.state.CopyLink(id)
	if !ok {
		return nil
	}

	cmds := []tea.Cmd{m.resetCopied(id)}
	if err := m.clipboard.WriteText(url); err != nil {
		m.log.Warn("clipboard write failed", zap.String("result_id", id), zap.Error(err))
		m.publish(eventbus.ClipboardFailedEvent{ResultID: id, Err: err})
		cmds = append(cmds, m.setStatus("Clipboard unavailable: "+url, true))
	} else {
		m.log.Info("link copied", zap.String("result_id", id), zap.String("url", url))
		m.publish(eventbus.LinkCopiedEvent{ResultID: id, URL: url})
	}
	return tea.Batch(cmds...)
}

// resetCopied ends the copy window started by copying id.
// The timer is bound to the view lifetime only.
func (m *Model) resetCopied(id string) tea.Cmd {
	ctx := m.ctx
	d := m.config.CopyReset()
	return func() tea.Msg {
		if err := sleep(ctx, d); err != nil {
			return nil
		}
		return copyResetMsg{id: id}
	}
}

func (m *Model) vote(id string, vote domain.Vote) tea.Cmd {
	current, ok := m.state.Vote(id, vote)
	if !ok {
		return nil
	}
	m.log.Info("feedback", zap.String("result_id", id), zap.Stringer("vote", current))
	m.publish(eventbus.FeedbackGivenEvent{ResultID: id, Vote: current})
	if current == domain.VoteNone {
		return m.setStatus("Feedback cleared", false)
	}
	return m.setStatus("Thanks for your feedback", false)
}

// openPager returns a command that shows the result list in the ov pager
func (m *Model) openPager() tea.Cmd {
	if m.program == nil {
		return m.setStatus("Pager unavailable", true)
	}
	report := BuildReport(m.state.Site, m.state.SubmittedQuery, m.state.Results, m.state.Feedback, m.state.SelectedIndex)
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(report)
		m.program.Send(resumeRenderingMsg{})
		return pagerMsg{err: err}
	}
}

// setStatus shows msg on the status line and schedules its removal
func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	m.state.StatusMessage = msg
	m.statusIsError = isError
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// Close tears the view down. Pending timers are cancelled and any completion
// that still arrives is ignored.
func (m *Model) Close() {
	m.state.Close()
	m.cancel()
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// sleep waits for d unless ctx ends first
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	vs := m.buildViewState()

	body, span := m.renderer.RenderBody(vs)
	m.viewport.Width = m.renderer.BodyWidth(m.width, vs.ShowSidebar)
	m.viewport.Height = m.renderer.BodyHeight(m.height)
	m.viewport.SetContent(body)
	if vs.Phase == state.PhaseResults {
		m.ensureVisible(span)
	} else {
		m.viewport.GotoTop()
	}
	vs.Body = m.viewport.View()

	return m.renderer.Render(vs)
}

// ensureVisible scrolls the viewport so the selected card is on screen
func (m *Model) ensureVisible(span views.Span) {
	if m.state.SelectedIndex == 0 {
		m.viewport.GotoTop()
		return
	}
	if span.Top < m.viewport.YOffset {
		m.viewport.SetYOffset(span.Top)
	} else if span.Bottom >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(span.Bottom - m.viewport.Height + 1)
	}
}

func (m *Model) buildViewState() views.ViewState {
	keys := m.inputHandler.Keys()
	var shortHelp, fullHelp string
	if m.inputHandler.CurrentMode() == inputtypes.ModeResults {
		km := inputtypes.ResultsHelp{KeyMap: keys}
		shortHelp = m.help.ShortHelpView(km.ShortHelp())
		fullHelp = m.help.FullHelpView(km.FullHelp())
	} else {
		km := inputtypes.QueryHelp{KeyMap: keys}
		shortHelp = m.help.ShortHelpView(km.ShortHelp())
		fullHelp = m.help.FullHelpView(inputtypes.ResultsHelp{KeyMap: keys}.FullHelp())
	}

	return views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Site:           m.state.Site,
		Phase:          m.state.Phase(),
		SubmittedQuery: m.state.SubmittedQuery,
		Results:        m.state.Results,
		SelectedIndex:  m.state.SelectedIndex,
		CopiedID:       m.state.CopiedID,
		Feedback:       m.state.Feedback,
		InputView:      m.inputHandler.TextInput().View(),
		InputFocused:   m.inputHandler.CurrentMode() == inputtypes.ModeQuery,
		Spinner:        m.spinner.View(),
		StatusMessage:  m.state.StatusMessage,
		StatusIsError:  m.statusIsError,
		ShowSidebar:    m.config.UISettings.ShowSidebar,
		ShowHelp:       m.state.ShowHelp,
		ShortHelp:      shortHelp,
		FullHelp:       fullHelp,
	}
}
