package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/game"
	"github.com/vovakirdan/tui-runner/internal/score"
	"github.com/vovakirdan/tui-runner/internal/settings"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// SubmitOutcomeMsg carries the terminal state of a score submission back
// into the update loop.
type SubmitOutcomeMsg struct {
	Outcome score.Outcome
}

// Session bundles everything one player session needs. Submitter and
// Scores may be nil when the database is unavailable; the game then runs
// with local-only continuity.
type Session struct {
	Game       *game.Game
	Submitter  *score.Submitter
	Scores     *score.Service
	PlayerName string
	Settings   settings.PlayerSettings

	// LocalPath is the fallback state file for personal-best continuity.
	// Empty disables it.
	LocalPath string
}

// Model is the Bubble Tea model for a runner session.
type Model struct {
	session    Session
	screen     *core.Screen
	renderer   *Renderer
	keyMapper  *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState

	personalBest int
	submitting   bool
	outcome      *score.Outcome
	quitting     bool
}

// NewModel creates a new Bubble Tea model for the session.
func NewModel(s Session, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		session:    s,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   NewRenderer(s.Settings.BackgroundTheme, s.Settings.DinoColor),
		keyMapper:  NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	m.personalBest = m.loadPersonalBest()
	m.session.Game.Reset(cfg)

	return m
}

// loadPersonalBest prefers the durable store, falling back to the local
// state file when the store is unreachable.
func (m *Model) loadPersonalBest() int {
	if m.session.Scores != nil {
		if best, err := m.session.Scores.BestScore(); err == nil {
			return best
		}
	}
	if st, err := storage.LoadLocal(m.session.LocalPath); err == nil {
		return st.PersonalBest
	}
	return 0
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
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

	case SubmitOutcomeMsg:
		m.submitting = false
		m.outcome = &msg.Outcome
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// A mid-run resize invalidates obstacle positions; reset to Waiting.
	// The game-over screen is preserved so the result stays visible.
	if m.gameState.Phase != core.PhaseGameOver {
		m.session.Game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart reseeds so the next run gets a fresh obstacle sequence.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.Phase == core.PhaseGameOver {
		m.config.Seed = time.Now().UnixNano()
		m.session.Game.Reset(m.config)
		m.gameState = m.session.Game.State()
		m.outcome = nil
		m.submitting = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.session.Game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}

	if result.Finished != nil {
		res := *result.Finished
		res.PlayerName = m.session.PlayerName
		cmds = append(cmds, m.finishRun(res))
	}

	return m, tea.Batch(cmds...)
}

// finishRun records the personal best and kicks off the submission task.
// Called at most once per run; the game emits Finished exactly once.
func (m *Model) finishRun(res game.RunResult) tea.Cmd {
	if res.Score > m.personalBest {
		m.personalBest = res.Score
		if m.session.LocalPath != "" {
			st, _ := storage.LoadLocal(m.session.LocalPath)
			st.PersonalBest = res.Score
			//nolint:errcheck // Best-effort save, game continues regardless
			storage.SaveLocal(m.session.LocalPath, st)
		}
	}

	if m.session.Submitter == nil {
		return nil
	}

	m.submitting = true
	m.outcome = nil
	submitter := m.session.Submitter
	return func() tea.Msg {
		return SubmitOutcomeMsg{Outcome: submitter.Submit(context.Background(), res)}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Game.Render(m.screen)

	if m.personalBest > 0 {
		m.screen.DrawText(2, 1, fmt.Sprintf(" Best: %d ", m.personalBest))
	}
	if m.gameState.Phase == core.PhaseGameOver {
		m.screen.DrawText(2, 2, " "+m.submissionStatus()+" ")
	}

	return m.renderer.Render(m.screen)
}

// submissionStatus describes the leaderboard submission on the
// game-over screen.
func (m Model) submissionStatus() string {
	switch {
	case m.session.Submitter == nil:
		return "Offline: score kept locally"
	case m.submitting:
		return "Submitting score..."
	case m.outcome == nil:
		return ""
	case m.outcome.Accepted():
		if m.outcome.Receipt.IsNewTopRank {
			return "NEW TOP SCORE!"
		}
		return fmt.Sprintf("Leaderboard rank: #%d", m.outcome.Receipt.Rank)
	case m.outcome.GaveUp:
		return "Score not submitted (leaderboard unreachable)"
	default:
		return "Score rejected"
	}
}

// Run starts the Bubble Tea program for a local session.
func Run(s Session, cfg core.RuntimeConfig) error {
	model := NewModel(s, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
