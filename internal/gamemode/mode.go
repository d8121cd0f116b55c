// Package gamemode contains the per-frame game state machine. The host
// loop drives a GameMode with update / postUpdate / render once per frame;
// the mode owns scoring, difficulty, and win/lose transitions while
// collaborators own obstacles, effects, sound, and the UI.
package gamemode

import (
	"context"
	"time"

	"github.com/mvolt/ascend/internal/effects"
	"github.com/mvolt/ascend/internal/entity"
	"github.com/mvolt/ascend/internal/scale"
)

// State represents the current game phase.
type State int

const (
	StateReady    State = iota // Title screen, before the first game
	StateWaiting               // Reserved for networked modes
	StateStarting              // Reserved for networked modes
	StatePlaying               // Active gameplay
	StateGameOver              // Collision happened, waiting for restart
	StatePaused                // Gameplay suspended
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateWaiting:
		return "waiting"
	case StateStarting:
		return "starting"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// InputState holds the four directional flags for one frame.
type InputState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// GameMode is the capability every mode implements. The host loop calls
// Update, PostUpdate, and Render once per frame in that order; Initialize
// must complete before the first frame and its error aborts the session.
type GameMode interface {
	Initialize(ctx context.Context) error
	Update(in InputState, delta time.Duration, now time.Time)
	PostUpdate()
	Render(now time.Time)
	Reset()
	Dispose()
}

// ObstacleField owns the obstacle set. The mode only queries and commands
// it; obstacle motion and collision geometry live behind this interface.
type ObstacleField interface {
	Update(now time.Time, score int, factors scale.Factors)
	CheckCollisions(p *entity.Player) *entity.Obstacle
	Reset()
	AddObstacle()
	Obstacles() []*entity.Obstacle
}

// Display is the UI surface the mode notifies. Implementations render
// asynchronously from stored state; calls never block.
type Display interface {
	FlashScreen(color string, duration time.Duration)
	ShowGameOver(score, highScore int, onReset func())
	HideGameOver()
	UpdateScore(score int)
	UpdateHighScore(score int)
}

// ParticleField spawns and clears visual effects.
type ParticleField interface {
	CreateCelebration(o effects.CelebrationOpts)
	Clear()
}

// SoundPlayer plays a named effect. Resolved at construction; a nil
// player disables sound without any further checks at call sites.
type SoundPlayer interface {
	PlaySound(name string, volume float64)
}
