package gamemode

import (
	"context"
	"fmt"
	"time"

	"github.com/mvolt/ascend/internal/config"
	"github.com/mvolt/ascend/internal/draw"
	"github.com/mvolt/ascend/internal/effects"
	"github.com/mvolt/ascend/internal/entity"
	"github.com/mvolt/ascend/internal/scale"
)

// Deps wires the single-player mode to its collaborators. Player and
// Scale are required; everything else may be nil, in which case the
// corresponding side effects are silently skipped.
type Deps struct {
	Player    *entity.Player
	Scale     *scale.Provider
	Obstacles ObstacleField
	Display   Display
	Particles ParticleField
	Sounds    SoundPlayer
}

// SinglePlayer is the single-player game mode: it applies input to the
// player, delegates obstacle physics, evaluates the winning line and
// collisions, and manages score and the difficulty ramp.
type SinglePlayer struct {
	player    *entity.Player
	scaler    *scale.Provider
	obstacles ObstacleField
	display   Display
	particles ParticleField
	sounds    SoundPlayer

	state       State
	score       int
	highScore   int // Persists across round resets within the session
	initialized bool
}

// Compile-time check that SinglePlayer implements GameMode.
var _ GameMode = (*SinglePlayer)(nil)

// NewSinglePlayer creates the mode. Call Initialize before the first frame.
func NewSinglePlayer(deps Deps) *SinglePlayer {
	return &SinglePlayer{
		player:    deps.Player,
		scaler:    deps.Scale,
		obstacles: deps.Obstacles,
		display:   deps.Display,
		particles: deps.Particles,
		sounds:    deps.Sounds,
		state:     StateReady,
	}
}

// Initialize performs session setup. It must succeed before the host
// issues the first frame update.
func (m *SinglePlayer) Initialize(ctx context.Context) error {
	if m.player == nil || m.scaler == nil {
		return fmt.Errorf("initialize mode: player and scale provider are required")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("initialize mode: %w", err)
	}
	m.Reset()
	m.state = StateReady
	m.initialized = true
	return nil
}

// Update runs the simulation step for one frame. Only the playing state
// is simulated; every other state is a no-op.
func (m *SinglePlayer) Update(in InputState, delta time.Duration, now time.Time) {
	if !m.initialized || m.state != StatePlaying {
		return
	}
	_ = delta // Steps are latch-driven, not time-integrated

	m.player.SetMovementKey(entity.DirUp, in.Up)
	m.player.SetMovementKey(entity.DirDown, in.Down)
	m.player.SetMovementKey(entity.DirLeft, in.Left)
	m.player.SetMovementKey(entity.DirRight, in.Right)

	f := m.scaler.Factors()

	// Held-key climb boost: applied every frame on top of the debounced
	// step, so "up" feels snappier than the other directions. Intentional
	// asymmetry.
	if in.Up && m.player.Y > config.UpBoostMinY*f.Height {
		m.player.Nudge(-config.UpBoost * f.Height)
	}

	m.player.Move()

	if m.obstacles != nil {
		m.obstacles.Update(now, m.score, f)
		if hit := m.obstacles.CheckCollisions(m.player); hit != nil {
			m.handleCollision(hit)
		}
	}
}

// PostUpdate evaluates the winning line and updates score and high score.
// Only acts while playing.
func (m *SinglePlayer) PostUpdate() {
	if !m.initialized || m.state != StatePlaying {
		return
	}

	f := m.scaler.Factors()
	line := config.WinningLineOffset * f.Height

	if m.player.Y < line {
		m.score++
		if m.display != nil {
			m.display.UpdateScore(m.score)
		}
		m.progressDifficulty()
		if m.particles != nil {
			m.particles.CreateCelebration(effects.CelebrationOpts{
				X:       m.player.X + m.player.Width/2,
				Y:       line,
				Count:   10 + m.score*2,
				MinSize: 3 * f.Height,
				MaxSize: 8 * f.Height,
				MinLife: 0.4,
				MaxLife: 1.0,
			})
		}
		m.playSound("score", 0.5)
		m.player.ResetPosition()
	}

	if m.score > m.highScore {
		m.highScore = m.score
		if m.display != nil {
			m.display.UpdateHighScore(m.highScore)
		}
	}
}

// Render draws mode-specific overlays. Single-player has none; the host
// renderer draws the scene.
func (m *SinglePlayer) Render(now time.Time) {}

// handleCollision ends the round: sound, screen flash, game-over display
// wired with the restart callback.
func (m *SinglePlayer) handleCollision(_ *entity.Obstacle) {
	m.playSound("collision", 0.6)
	if m.display != nil {
		m.display.FlashScreen(draw.BgRed, config.FlashDuration)
	}
	m.state = StateGameOver
	if m.display != nil {
		m.display.ShowGameOver(m.score, m.highScore, m.CompleteReset)
	}
}

// progressDifficulty adds obstacles on a score-gated schedule: one per
// scoring event during the bootstrap phase, then one at every ramp
// interval. On narrow viewports additions stop once the field is crowded;
// existing obstacles are never removed.
func (m *SinglePlayer) progressDifficulty() {
	if m.obstacles == nil {
		return
	}

	f := m.scaler.Factors()
	if f.Width < config.CrowdScaleCutoff && len(m.obstacles.Obstacles()) > config.CrowdObstacleCap {
		return
	}

	if m.score <= config.BootstrapScore {
		m.obstacles.AddObstacle()
	}
	if m.score%config.RampInterval == 0 {
		m.obstacles.AddObstacle()
	}
}

// Reset performs a round reset: zero the score, reset obstacles and the
// player position, clear effects. Game state and high score are untouched.
func (m *SinglePlayer) Reset() {
	m.score = 0
	if m.display != nil {
		m.display.UpdateScore(0)
	}
	if m.obstacles != nil {
		m.obstacles.Reset()
	}
	m.player.ResetPosition()
	if m.particles != nil {
		m.particles.Clear()
	}
}

// CompleteReset is the post-game-over reset: hide the game-over display,
// round reset, back to playing. Wired into the UI as the restart callback.
func (m *SinglePlayer) CompleteReset() {
	if m.display != nil {
		m.display.HideGameOver()
	}
	m.Reset()
	m.state = StatePlaying
}

// Start begins the first game from the title screen.
func (m *SinglePlayer) Start() {
	if m.state != StateReady && m.state != StateStarting {
		return
	}
	m.Reset()
	m.state = StatePlaying
}

// Pause suspends gameplay.
func (m *SinglePlayer) Pause() {
	if m.state == StatePlaying {
		m.state = StatePaused
	}
}

// Resume continues a paused game.
func (m *SinglePlayer) Resume() {
	if m.state == StatePaused {
		m.state = StatePlaying
	}
}

// Dispose releases mode resources at session end.
func (m *SinglePlayer) Dispose() {
	if m.particles != nil {
		m.particles.Clear()
	}
	m.initialized = false
	m.state = StateReady
}

// State returns the current game state.
func (m *SinglePlayer) State() State {
	return m.state
}

// Score returns the current round score.
func (m *SinglePlayer) Score() int {
	return m.score
}

// HighScore returns the session high score.
func (m *SinglePlayer) HighScore() int {
	return m.highScore
}

func (m *SinglePlayer) playSound(name string, volume float64) {
	if m.sounds != nil {
		m.sounds.PlaySound(name, volume)
	}
}
