package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bogger/internal/core"
	"github.com/vovakirdan/bogger/internal/registry"
	"github.com/vovakirdan/bogger/internal/storage"
)

// summarizer is implemented by games that report finished runs.
type summarizer interface {
	Summary() (core.RunSummary, bool)
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	latchStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	input      *InputState
	ticker     *scoreTicker
	gameState  core.GameState
	embedded   bool // Back returns to a parent menu instead of quitting
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the run has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		input:     NewInputState(),
		ticker:    newScoreTicker(cfg.TickRate),
	}
}

// newEmbeddedModel creates a model that hands control back to a menu on Back.
func newEmbeddedModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	m := NewModel(game, store, cfg)
	m.embedded = true
	return m
}

// gameHeight leaves the last terminal row for the status bar.
func gameHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return 1
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.ticker.Snap(m.game.State().Score)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		// The playfield is in world units, so a resize only rescales the view.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, gameHeight(msg.Height))
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack && m.embedded && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	m.input.Press(action, now)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	frame := m.input.Frame(now)

	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.ticker.Snap(m.gameState.Score)
		m.input.Release()
		m.runSaved = false
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(frame)
	m.gameState = result.State
	m.ticker.Update(m.gameState.Score)

	if m.gameState.GameOver {
		m.input.Release()
		m.saveRun()
	} else {
		// A continue starts a new run.
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run once.
func (m *Model) saveRun() {
	if m.runSaved {
		return
	}
	m.runSaved = true
	s, ok := m.game.(summarizer)
	if !ok || m.store == nil {
		return
	}
	if sum, ok := s.Summary(); ok {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveRun(m.game.ID(), sum)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".bogger", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// statusBar renders the eased score, the spool/retract latches and key hints.
func (m Model) statusBar() string {
	var b strings.Builder
	b.WriteString(statusStyle.Render(fmt.Sprintf(" score %d ", m.ticker.Value())))
	if m.input.Spooling() {
		b.WriteString(latchStyle.Render(" SPOOL "))
	}
	if m.input.Retracting() {
		b.WriteString(latchStyle.Render(" RETRACT "))
	}
	hints := " arrows move  space spool  x retract  p pause  q quit"
	if m.embedded {
		hints += "  b menu"
	}
	b.WriteString(statusStyle.Render(hints))
	return b.String()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusBar()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
