// Package effects provides short-lived visual effects: the celebration
// burst fired when the player crosses the winning line.
package effects

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/mvolt/ascend/internal/config"
	"github.com/mvolt/ascend/internal/draw"
)

// particlePool reuses Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a single short-lived effect pixel.
type Particle struct {
	X, Y        float64 // Position
	VX, VY      float64 // Velocity (px/sec)
	Size        float64 // Square side in px
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity decay (1.0 = no drag)
}

// CelebrationOpts describes a celebration burst.
type CelebrationOpts struct {
	X, Y             float64 // Burst origin
	Count            int     // Number of particles (bounded)
	MinSize, MaxSize float64 // Particle size range in px
	MinLife, MaxLife float64 // Lifetime range in seconds
}

// System owns the live particle set.
type System struct {
	particles []*Particle
}

// NewSystem creates an empty particle system.
func NewSystem() *System {
	return &System{}
}

// CreateCelebration bursts particles from the origin with an upward bias.
// Count is clamped to the configured maximum.
func (s *System) CreateCelebration(o CelebrationOpts) {
	count := o.Count
	if count > config.MaxCelebrationParticles {
		count = config.MaxCelebrationParticles
	}

	for i := 0; i < count; i++ {
		// Spread across the upper half-circle plus a little spill below
		angle := -math.Pi*rand.Float64()*1.2 + math.Pi*0.1
		speed := 40.0 + rand.Float64()*80.0

		p := particlePool.Get().(*Particle)
		p.X = o.X
		p.Y = o.Y
		p.VX = math.Cos(angle) * speed
		p.VY = math.Sin(angle) * speed
		p.Size = o.MinSize + rand.Float64()*(o.MaxSize-o.MinSize)
		p.Lifetime = o.MinLife + rand.Float64()*(o.MaxLife-o.MinLife)
		p.MaxLifetime = p.Lifetime
		p.Drag = 0.9
		s.particles = append(s.particles, p)
	}
}

// Update advances all particles and drops expired ones.
func (s *System) Update(delta time.Duration) {
	dt := delta.Seconds()
	if dt <= 0 {
		return
	}

	kept := s.particles[:0] // reuse backing array
	for _, p := range s.particles {
		p.Lifetime -= dt
		if p.Lifetime <= 0 {
			particlePool.Put(p)
			continue
		}

		dragFactor := math.Pow(p.Drag, dt*60) // Normalize drag to ~60fps
		p.VX *= dragFactor
		p.VY *= dragFactor
		p.X += p.VX * dt
		p.Y += p.VY * dt

		kept = append(kept, p)
	}
	s.particles = kept
}

// Draw renders all particles. Particles in their last quarter of life are
// skipped for a cheap fade-out.
func (s *System) Draw(c *draw.Canvas) {
	for _, p := range s.particles {
		if p.MaxLifetime > 0 && p.Lifetime/p.MaxLifetime < 0.25 {
			continue
		}
		c.FillRect(p.X-p.Size/2, p.Y-p.Size/2, p.Size, p.Size)
	}
}

// Clear removes all particles.
func (s *System) Clear() {
	for _, p := range s.particles {
		particlePool.Put(p)
	}
	s.particles = s.particles[:0]
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.particles)
}
