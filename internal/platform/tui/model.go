package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// ResultSaver stores finished games. *storage.Store satisfies it.
type ResultSaver interface {
	SaveResult(r storage.Result) (string, error)
}

// Options carries the optional collaborators of a Model.
type Options struct {
	Saver  ResultSaver // nil disables the score history
	Logger *log.Logger
	UI     config.UIConfig
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	game   *game.Game
	saver  ResultSaver
	log    *log.Logger
	config core.RuntimeConfig
	ui     config.UIConfig

	keys  KeyMap
	help  help.Model
	theme Theme

	inputFrame core.InputFrame
	gameState  core.GameState
	highlight  pop
	quitting   bool
	scoreSaved bool // Whether the result has been saved for the current game over
	lastSaved  string
}

// NewModel creates a model and starts the first game.
func NewModel(g *game.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ui := opts.UI
	if ui.TickRate <= 0 {
		ui = config.Default().UI
	}
	if ui.Theme.Tiles == nil {
		ui.Theme = config.DefaultTheme()
	}

	g.SetMinSize(ui.MinWidth, ui.MinHeight)
	g.Reset(cfg)

	m := Model{
		game:       g,
		saver:      opts.Saver,
		log:        logger,
		config:     cfg,
		ui:         ui,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		theme:      NewTheme(ui.Theme),
		inputFrame: core.NewInputFrame(),
		gameState:  g.State(),
	}
	m.highlight.start(g.Snapshot().LastSpawn, ui.PopTicks)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.ui.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the game running at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.game.Resize(msg.Width, msg.Height)
	m.gameState = m.game.State()
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one game step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.highlight.start(m.game.Snapshot().LastSpawn, m.ui.PopTicks)
		m.inputFrame.Clear()
		return m, tickCmd(m.ui.TickInterval())
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.highlight.step()
	if result.Moved {
		m.highlight.start(m.game.Snapshot().LastSpawn, m.ui.PopTicks)
	}

	// Save result on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveResult()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.ui.TickInterval())
}

// saveResult stores the finished game. Failures are logged and play goes on.
func (m *Model) saveResult() {
	if m.saver == nil || m.gameState.Score <= 0 {
		return
	}

	r := m.game.Result()
	id, err := m.saver.SaveResult(storage.Result{
		Score:    r.Score,
		MaxTile:  r.MaxTile,
		Moves:    r.Moves,
		Duration: r.Duration,
		Seed:     r.Seed,
		Won:      r.Won,
		Source:   storage.SourcePlay,
	})
	if err != nil {
		m.log.Warn("cannot save result", "err", err)
		return
	}
	m.lastSaved = id
	m.log.Info("result saved", "id", id, "score", r.Score, "max_tile", r.MaxTile)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.game.TooSmall() {
		minW, minH := m.game.MinSize()
		return renderTooSmall(m.config.ScreenW, m.config.ScreenH, minW, minH)
	}

	snap := m.game.Snapshot()
	board := renderBoard(snap, m.theme, m.highlight)
	width := lipgloss.Width(board)

	content := lipgloss.JoinVertical(lipgloss.Center,
		renderHUD(snap, m.theme, width),
		board,
		renderStatus(snap, m.theme),
		m.theme.Help.Render(m.help.View(m.keys)),
	)

	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return content
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, content)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for one session.
func Run(g *game.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(g, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

// LastSavedID returns the history ID of the most recently saved result.
func (m Model) LastSavedID() string {
	return m.lastSaved
}
