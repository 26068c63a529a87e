package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// softDropHold is how long soft drop stays on after the last down key.
// Terminals report no key release; key auto-repeat keeps it alive.
const softDropHold = 150 * time.Millisecond

// flashDuration is how long an award stays in the side panel.
const flashDuration = time.Second

// scoreFeed follows the session's score observer and remembers the last
// award for the side panel.
type scoreFeed struct {
	prev   tetris.Score
	points int
	lines  int
	at     time.Duration // Session time of the award
}

func (f *scoreFeed) observe(s tetris.Score, at time.Duration) {
	f.points = s.Points - f.prev.Points
	f.lines = s.Lines - f.prev.Lines
	f.prev = s
	f.at = at
}

// flash returns the award text while it is fresh.
func (f *scoreFeed) flash(now time.Duration) string {
	if f.points == 0 || now-f.at > flashDuration {
		return ""
	}
	if f.lines == 4 {
		return fmt.Sprintf("TETRIS +%d", f.points)
	}
	return fmt.Sprintf("+%d", f.points)
}

// Model is the Bubble Tea model for a tetris game.
type Model struct {
	rules     tetris.Config
	session   *tetris.Session
	feed      *scoreFeed
	screen    *core.Screen
	config    core.RuntimeConfig
	fixedSeed bool
	keys      KeyMap
	help      help.Model
	logger    *log.Logger

	lastTick   time.Time // Timestamp of the previous frame
	softDropAt time.Time // Frame time of the last soft drop key
	paused     bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model playing under rules.
// A zero seed picks one from the clock for every game.
func NewModel(rules tetris.Config, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		rules:     rules,
		screen:    core.NewScreen(0, 0),
		config:    cfg,
		fixedSeed: cfg.Seed != 0,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		logger:    logger,
	}
	if err := m.start(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// start begins a new session and wires its observers.
func (m *Model) start() error {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}

	session, err := tetris.NewSession(m.rules, m.config.Seed)
	if err != nil {
		return fmt.Errorf("cannot start game: %w", err)
	}

	feed := &scoreFeed{prev: session.Score()}
	session.OnScore(func(s tetris.Score) {
		feed.observe(s, session.Elapsed())
	})
	logger := m.logger
	session.OnGameOver(func(s tetris.Score) {
		logger.Info("game over", "score", s.Points, "lines", s.Lines, "level", s.Level, "time", session.Elapsed().Round(time.Second))
	})

	m.session = session
	m.feed = feed
	m.paused = false
	m.softDropAt = time.Time{}
	m.logger.Info("game started", "seed", m.config.Seed, "columns", m.rules.Columns, "rows", m.rules.Rows)
	return nil
}

// Session returns the running session.
func (m Model) Session() *tetris.Session {
	return m.session
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.session.Score().Points)
		return m, tea.Quit

	case core.ActionPause:
		if !m.session.GameOver() {
			m.paused = !m.paused
			m.logger.Debug("pause", "paused", m.paused)
		}
		return m, nil

	case core.ActionRestart:
		if m.session.GameOver() {
			if err := m.start(); err != nil {
				m.logger.Error("restart failed", "error", err)
			}
		}
		return m, nil
	}

	if m.paused {
		return m, nil
	}
	if action == core.ActionSoftDrop {
		m.softDropAt = m.lastTick
	}
	m.session.Apply(action)
	return m, nil
}

// handleTick reports the time since the previous frame to the session.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if !m.paused && !m.session.GameOver() {
		snap := m.session.Snapshot()
		switch {
		case !snap.SoftDrop:
		case m.softDropAt.IsZero():
			// Pressed before the first frame.
			m.softDropAt = now
		case now.Sub(m.softDropAt) > softDropHold:
			m.session.Apply(core.ActionSoftDropOff)
		}
		m.session.OnTick(dt)
	}

	return m, tickCmd(m.config.TickInterval())
}

// status returns the banner text for the current state.
func (m Model) status() string {
	switch {
	case m.session.GameOver():
		return "GAME OVER"
	case m.paused:
		return "PAUSED"
	}
	return ""
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	w, h := LayoutSize(snap.Columns, snap.Rows, len(snap.Next))
	if m.config.ScreenW > 0 && (m.config.ScreenW < w || m.config.ScreenH < h+2) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", w, h+2, m.config.ScreenW, m.config.ScreenH)
	}

	decor := Decor{Status: m.status(), Flash: m.feed.flash(snap.Elapsed)}
	if m.session.GameOver() {
		decor.Flash = "r to restart"
	}

	m.screen.Resize(w, h)
	m.screen.Clear()
	DrawGame(m.screen, snap, core.V(0, 0), decor)

	content := lipgloss.JoinVertical(lipgloss.Left,
		bannerStyle.Render("TETRIS"),
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys)),
	)
	if m.config.ScreenW <= 0 {
		return content
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program with a new game.
func Run(rules tetris.Config, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(rules, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
