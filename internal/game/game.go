// Package game implements the side-scrolling runner simulation: an agent
// runs forward at increasing speed and must jump over spawned obstacles.
// The package is pure logic with no external dependencies; the platform
// layer handles input mapping, timing and terminal rendering.
package game

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	RunnerBody  = '█'
	RunnerHead  = '◆'
	RunnerLeg1  = '╱'
	RunnerLeg2  = '╲'
	CactusSmall = '▒'
	CactusLarge = '▓'
	RockChar    = '█'
	GroundChar  = '═'
)

// StepResult is returned after each simulation tick.
type StepResult struct {
	State core.GameState

	// Finished carries the frozen RunResult on the tick that transitions
	// to GameOver, and is nil on every other tick. It is emitted exactly
	// once per run, which is what bounds submissions to one per run.
	Finished *RunResult
}

// Game owns the physics body, the obstacle spawner and the run lifecycle:
// Waiting -> Playing -> (Paused) -> GameOver -> Waiting.
type Game struct {
	phase   core.Phase
	body    Body
	spawner *Spawner
	run     *Run

	cfg     config.RunnerConfig
	scaler  config.Scaler
	runtime core.RuntimeConfig

	groundY    int
	legFrame   int
	lastResult *RunResult // Kept for the game-over display
}

// New creates a game with the given configuration.
func New(cfg config.RunnerConfig) *Game {
	return &Game{
		cfg:    cfg,
		scaler: config.NewScaler(cfg.Difficulty),
	}
}

// Reset puts the game into Waiting with the given runtime parameters.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.groundY = runtime.ScreenH - g.cfg.Player.GroundOffset
	g.phase = core.PhaseWaiting
	g.body = NewBody()
	g.run = nil
	g.lastResult = nil
	g.legFrame = 0

	interval := g.cfg.Difficulty.BaseSpawnInterval
	if g.spawner == nil {
		g.spawner = NewSpawner(runtime.Seed, runtime.ScreenW, interval)
	} else {
		g.spawner.SetScreenWidth(runtime.ScreenW)
		g.spawner.Reset(runtime.Seed, interval)
	}
}

// startRun transitions Waiting -> Playing, resetting all run state.
func (g *Game) startRun() {
	g.body = NewBody()
	g.run = NewRun(g.cfg.Difficulty.BaseSpeed, g.cfg.Difficulty.BaseSpawnInterval)
	g.spawner.Reset(g.runtime.Seed, g.run.SpawnInterval)
	g.lastResult = nil
	g.legFrame = 0
	g.phase = core.PhasePlaying
}

// Step advances the state machine by one tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	switch g.phase {
	case core.PhaseWaiting:
		if in.Has(core.ActionStart) || in.Has(core.ActionJump) {
			g.startRun()
		}
		return StepResult{State: g.State()}

	case core.PhasePaused:
		if in.Has(core.ActionPause) {
			g.phase = core.PhasePlaying
		}
		return StepResult{State: g.State()}

	case core.PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.phase = core.PhaseWaiting
			g.run = nil
		}
		return StepResult{State: g.State()}
	}

	// Playing
	if in.Has(core.ActionPause) {
		g.phase = core.PhasePaused
		return StepResult{State: g.State()}
	}

	g.run.Ticks++
	g.legFrame = (g.legFrame + 1) % 10

	// 1) Physics: jump input is a no-op while airborne.
	if in.Has(core.ActionJump) {
		g.body.Jump(g.cfg.Physics.JumpImpulse)
	}
	g.body.Step(g.cfg.Physics.Gravity, g.cfg.Physics.MaxFallSpeed)

	// 2) Obstacles: spawn, scroll, retire. Each retirement counts as
	// avoided and earns the avoidance bonus.
	avoided := g.spawner.Advance(g.run.Speed, g.run.SpawnInterval)
	g.run.Avoided += avoided
	g.run.AddScore(float64(avoided * g.cfg.Scoring.AvoidBonus))

	// 3) Continuous time-based score.
	g.run.AddScore(g.cfg.Scoring.PointsPerTick)

	// 4) Difficulty feedback from the updated score.
	score := g.run.Score()
	g.run.SetSpeed(g.scaler.Speed(score))
	g.run.SpawnInterval = g.scaler.SpawnInterval(score)

	// 5) Collision against this tick's final positions.
	if g.spawner.Collides(g.runnerRect(), g.groundY) {
		return g.endRun()
	}

	return StepResult{State: g.State()}
}

// endRun transitions Playing -> GameOver and emits the frozen result.
func (g *Game) endRun() StepResult {
	g.phase = core.PhaseGameOver
	res := g.run.Freeze(g.runtime.TickRate)
	g.lastResult = &res
	return StepResult{State: g.State(), Finished: &res}
}

// runnerRect returns the runner's collision rectangle in screen coordinates.
func (g *Game) runnerRect() core.Rect {
	screenY := g.groundY - g.cfg.Player.Height - g.body.Height()
	return core.NewRect(g.cfg.Player.X, screenY, g.cfg.Player.Width, g.cfg.Player.Height)
}

// State returns the current phase and score.
func (g *Game) State() core.GameState {
	score := 0
	if g.run != nil {
		score = g.run.Score()
	} else if g.lastResult != nil {
		score = g.lastResult.Score
	}
	return core.GameState{Phase: g.phase, Score: score}
}

// LastResult returns the most recent finished run, or nil.
func (g *Game) LastResult() *RunResult {
	return g.lastResult
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawHLine(0, g.groundY, dst.Width(), GroundChar, core.ColorGray)

	for _, o := range g.spawner.Obstacles() {
		g.drawObstacle(dst, o)
	}

	g.drawRunner(dst)

	score := g.State().Score
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", score))
	if g.run != nil {
		speedText := fmt.Sprintf(" Spd: %.1f  Avoided: %d ", g.run.Speed, g.run.Avoided)
		dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText)
	}

	switch g.phase {
	case core.PhaseWaiting:
		g.drawCenteredMessage(dst, "RUNNER", "Press Space to start")
	case core.PhasePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case core.PhaseGameOver:
		sub := fmt.Sprintf("Score: %d  |  Press R to restart", score)
		g.drawCenteredMessage(dst, "GAME OVER", sub)
	}
}

// drawRunner renders the player character.
func (g *Game) drawRunner(dst *core.Screen) {
	baseY := g.groundY - g.cfg.Player.Height - g.body.Height()
	x := g.cfg.Player.X

	// Simple runner sprite (3x3)
	//  ◆█
	// ███
	// ╱╲

	dst.SetColored(x+1, baseY, RunnerHead, core.ColorRunner)
	dst.SetColored(x+2, baseY, RunnerBody, core.ColorRunner)

	dst.SetColored(x, baseY+1, RunnerBody, core.ColorRunner)
	dst.SetColored(x+1, baseY+1, RunnerBody, core.ColorRunner)
	dst.SetColored(x+2, baseY+1, RunnerBody, core.ColorRunner)

	// Legs animate while grounded, tuck in the air
	if g.body.Grounded {
		if g.legFrame < 5 {
			dst.SetColored(x, baseY+2, RunnerLeg1, core.ColorRunner)
			dst.Set(x+1, baseY+2, ' ')
			dst.SetColored(x+2, baseY+2, RunnerLeg2, core.ColorRunner)
		} else {
			dst.Set(x, baseY+2, ' ')
			dst.SetColored(x+1, baseY+2, RunnerLeg1, core.ColorRunner)
			dst.SetColored(x+2, baseY+2, RunnerLeg2, core.ColorRunner)
		}
	} else {
		dst.SetColored(x, baseY+2, RunnerLeg1, core.ColorRunner)
		dst.SetColored(x+1, baseY+2, RunnerLeg2, core.ColorRunner)
		dst.Set(x+2, baseY+2, ' ')
	}
}

// drawObstacle renders a single obstacle by its variant.
func (g *Game) drawObstacle(dst *core.Screen, o Obstacle) {
	var ch rune
	var col core.Color
	switch o.Variant {
	case VariantCactusLarge:
		ch, col = CactusLarge, core.ColorGreen
	case VariantRock:
		ch, col = RockChar, core.ColorGray
	default:
		ch, col = CactusSmall, core.ColorGreen
	}

	x := int(o.X)
	for dy := 0; dy < o.Height; dy++ {
		for dx := 0; dx < o.Width; dx++ {
			dst.SetColored(x+dx, g.groundY-o.Height+dy, ch, col)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
