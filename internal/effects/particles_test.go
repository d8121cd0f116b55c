package effects

import (
	"testing"
	"time"

	"github.com/mvolt/ascend/internal/config"
)

func TestCreateCelebrationClampsCount(t *testing.T) {
	s := NewSystem()
	s.CreateCelebration(CelebrationOpts{
		Count:   config.MaxCelebrationParticles * 3,
		MinSize: 2, MaxSize: 5,
		MinLife: 0.5, MaxLife: 1.0,
	})
	if s.Len() != config.MaxCelebrationParticles {
		t.Fatalf("particle count = %d, want clamp %d", s.Len(), config.MaxCelebrationParticles)
	}
}

func TestUpdateExpiresParticles(t *testing.T) {
	s := NewSystem()
	s.CreateCelebration(CelebrationOpts{
		Count:   10,
		MinSize: 2, MaxSize: 5,
		MinLife: 0.1, MaxLife: 0.1,
	})

	s.Update(50 * time.Millisecond)
	if s.Len() != 10 {
		t.Fatalf("particles expired early: %d left", s.Len())
	}

	s.Update(100 * time.Millisecond)
	if s.Len() != 0 {
		t.Fatalf("particles survived their lifetime: %d left", s.Len())
	}
}

func TestClearRemovesAll(t *testing.T) {
	s := NewSystem()
	s.CreateCelebration(CelebrationOpts{
		Count:   10,
		MinSize: 2, MaxSize: 5,
		MinLife: 1, MaxLife: 2,
	})
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("clear left %d particles", s.Len())
	}
}
