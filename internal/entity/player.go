// Package entity holds the game entities: the player block and the
// horizontally-moving bar obstacles it has to dodge.
package entity

import (
	"github.com/mvolt/ascend/internal/config"
	"github.com/mvolt/ascend/internal/draw"
	"github.com/mvolt/ascend/internal/physics"
	"github.com/mvolt/ascend/internal/scale"
)

// Direction identifies one of the four movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	numDirections
)

// Player is the player-controlled block. It climbs in discrete, debounced
// steps: each direction moves at most once per Move call while its key
// stays held, and only re-arms when the key is released.
type Player struct {
	X, Y          float64 // Position (top-left corner)
	Width, Height float64

	keys    [numDirections]bool // Last-applied key state
	canMove [numDirections]bool // Per-direction debounce latches

	scaler *scale.Provider
}

// NewPlayer creates a player sized for the current scale and placed at the
// start position.
func NewPlayer(scaler *scale.Provider) *Player {
	p := &Player{scaler: scaler}
	for d := range p.canMove {
		p.canMove[d] = true
	}
	p.ResetPosition()
	return p
}

// SetMovementKey records the raw key state for a direction. Releasing a
// key re-arms its debounce latch.
func (p *Player) SetMovementKey(dir Direction, pressed bool) {
	if dir < 0 || dir >= numDirections {
		return
	}
	p.keys[dir] = pressed
	if !pressed {
		p.canMove[dir] = true
	}
}

// MovementKey reports the last-applied key state for a direction.
func (p *Player) MovementKey(dir Direction) bool {
	if dir < 0 || dir >= numDirections {
		return false
	}
	return p.keys[dir]
}

// Move advances the player by at most one step per held direction. A step
// that would cross a boundary is a silent no-op and leaves the latch
// armed, so movement resumes as soon as the boundary clears. Axes are
// independent; diagonal steps are allowed.
func (p *Player) Move() {
	f := p.scaler.Factors()
	canvasW, canvasH := p.scaler.CanvasSize()

	stepX := maxf(config.StepFraction*config.BaseWidth, config.MinStep) * f.Width
	stepY := maxf(config.StepFraction*config.BaseHeight, config.MinStep) * f.Height

	if p.keys[DirUp] && p.canMove[DirUp] {
		// Climbing is allowed only while still below the winning line;
		// crossing it is what scores.
		limit := config.WinningLineOffset*f.Height - p.Height/2
		if p.Y > limit {
			p.Y -= stepY
			if p.Y < 0 {
				p.Y = 0
			}
			p.canMove[DirUp] = false
		}
	}

	if p.keys[DirDown] && p.canMove[DirDown] {
		if p.Y+stepY+p.Height <= canvasH-config.BottomPadding*f.Height {
			p.Y += stepY
			p.canMove[DirDown] = false
		}
	}

	if p.keys[DirLeft] && p.canMove[DirLeft] {
		if p.X-stepX >= config.SidePadding*f.Width {
			p.X -= stepX
			p.canMove[DirLeft] = false
		}
	}

	if p.keys[DirRight] && p.canMove[DirRight] {
		if p.X+stepX <= canvasW-p.Width-config.SidePadding*f.Width {
			p.X += stepX
			p.canMove[DirRight] = false
		}
	}
}

// Nudge shifts the player vertically without touching the debounce
// latches. Used for the held-key climb boost; clamps at the top edge.
func (p *Player) Nudge(dy float64) {
	p.Y += dy
	if p.Y < 0 {
		p.Y = 0
	}
}

// ResetPosition recomputes the player size from the current scale and
// moves it to the start position: centered horizontally, anchored near
// the bottom.
func (p *Player) ResetPosition() {
	f := p.scaler.Factors()
	canvasW, canvasH := p.scaler.CanvasSize()

	p.Width = maxf(config.BasePlayerSize*f.Width, config.MinPlayerSize)
	p.Height = maxf(config.BasePlayerSize*f.Height, config.MinPlayerSize)

	p.X = canvasW/2 - p.Width/2
	p.Y = canvasH - p.Height - config.BottomPadding*f.Height
}

// Bounds returns the player's collision rectangle.
func (p *Player) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Draw renders the player as a filled block.
func (p *Player) Draw(c *draw.Canvas) {
	c.FillRect(p.X, p.Y, p.Width, p.Height)
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
