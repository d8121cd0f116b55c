package entity

import (
	"math/rand"
	"time"

	"github.com/mvolt/ascend/internal/config"
	"github.com/mvolt/ascend/internal/draw"
	"github.com/mvolt/ascend/internal/physics"
	"github.com/mvolt/ascend/internal/scale"
)

// Obstacle is a horizontal bar sweeping across the play-field. Speed is in
// base px/sec; its sign encodes the direction of travel.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
}

// Bounds returns the obstacle's collision rectangle.
func (o *Obstacle) Bounds() physics.Rect {
	return physics.Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

// Draw renders the obstacle as a filled bar.
func (o *Obstacle) Draw(c *draw.Canvas) {
	c.FillRect(o.X, o.Y, o.Width, o.Height)
}

// maxUpdateStep caps the simulated time of a single update so a stalled
// frame cannot teleport obstacles through the player.
const maxUpdateStep = 100 * time.Millisecond

// Field owns the obstacle set: it advances their motion from supplied
// timestamps, answers collision queries, and spawns new bars on request
// up to the configured maximum.
type Field struct {
	scaler     *scale.Provider
	obstacles  []*Obstacle
	lastUpdate time.Time
}

// NewField creates an empty obstacle field.
func NewField(scaler *scale.Provider) *Field {
	return &Field{scaler: scaler}
}

// Update advances all obstacles to the given timestamp. Speed grows with
// score up to a cap and scales with the current width factor; bars wrap
// around the horizontal edges.
func (f *Field) Update(now time.Time, score int, factors scale.Factors) {
	if f.lastUpdate.IsZero() {
		f.lastUpdate = now
		return
	}
	dt := now.Sub(f.lastUpdate)
	f.lastUpdate = now
	if dt <= 0 {
		return
	}
	if dt > maxUpdateStep {
		dt = maxUpdateStep
	}

	canvasW, _ := f.scaler.CanvasSize()
	ramp := score
	if ramp > config.DifficultyCap {
		ramp = config.DifficultyCap
	}
	speedMul := (1 + float64(ramp)*config.DifficultyRate) * factors.Width * dt.Seconds()

	for _, o := range f.obstacles {
		o.X += o.Speed * speedMul
		if o.Speed > 0 && o.X > canvasW {
			o.X = -o.Width
		}
		if o.Speed < 0 && o.X+o.Width < 0 {
			o.X = canvasW
		}
	}
}

// CheckCollisions returns the first obstacle overlapping the player, or
// nil when the player is clear.
func (f *Field) CheckCollisions(p *Player) *Obstacle {
	bounds := p.Bounds()
	for _, o := range f.obstacles {
		if physics.RectsOverlap(bounds, o.Bounds()) {
			return o
		}
	}
	return nil
}

// AddObstacle spawns one bar at a random row between the winning line and
// the player start band. No-op once the field is full.
func (f *Field) AddObstacle() {
	if len(f.obstacles) >= config.MaxObstacles {
		return
	}

	fc := f.scaler.Factors()
	canvasW, canvasH := f.scaler.CanvasSize()

	top := (config.WinningLineOffset + 20) * fc.Height
	bottom := canvasH - (config.BottomPadding+config.BasePlayerSize+40)*fc.Height
	if bottom < top {
		bottom = top
	}

	width := (config.MinObstacleWidth + rand.Float64()*(config.MaxObstacleWidth-config.MinObstacleWidth)) * fc.Width
	speed := config.BaseObstacleSpeed * (0.6 + 0.8*rand.Float64())
	if rand.Intn(2) == 0 {
		speed = -speed
	}

	f.obstacles = append(f.obstacles, &Obstacle{
		X:      rand.Float64() * canvasW,
		Y:      top + rand.Float64()*(bottom-top),
		Width:  width,
		Height: config.ObstacleHeight * fc.Height,
		Speed:  speed,
	})
}

// Obstacles returns the live obstacle set.
func (f *Field) Obstacles() []*Obstacle {
	return f.obstacles
}

// Reset removes all obstacles and clears the motion clock.
func (f *Field) Reset() {
	f.obstacles = f.obstacles[:0]
	f.lastUpdate = time.Time{}
}

// Draw renders all obstacles.
func (f *Field) Draw(c *draw.Canvas) {
	for _, o := range f.obstacles {
		o.Draw(c)
	}
}
