package entity

import (
	"math/rand"
	"testing"

	"github.com/mvolt/ascend/internal/config"
	"github.com/mvolt/ascend/internal/scale"
)

func newTestPlayer() (*Player, *scale.Provider) {
	scaler := scale.NewProvider(config.BaseWidth, config.BaseHeight)
	return NewPlayer(scaler), scaler
}

func TestResetPositionAnchorsNearBottom(t *testing.T) {
	p, _ := newTestPlayer()

	wantX := config.BaseWidth/2 - p.Width/2
	wantY := config.BaseHeight - p.Height - config.BottomPadding
	if p.X != wantX {
		t.Fatalf("start x = %f, want %f", p.X, wantX)
	}
	if p.Y != wantY {
		t.Fatalf("start y = %f, want %f", p.Y, wantY)
	}
	if p.Width != config.BasePlayerSize || p.Height != config.BasePlayerSize {
		t.Fatalf("size at scale 1 = %fx%f, want %fx%f", p.Width, p.Height, config.BasePlayerSize, config.BasePlayerSize)
	}
}

func TestMoveIsDebouncedPerDirection(t *testing.T) {
	p, _ := newTestPlayer()

	x0 := p.X
	p.SetMovementKey(DirLeft, true)
	for i := 0; i < 10; i++ {
		p.Move()
	}

	step := config.StepFraction * config.BaseWidth
	if got := x0 - p.X; got != step {
		t.Fatalf("held key moved %f over 10 calls, want exactly one step %f", got, step)
	}

	// Release re-arms the latch; the next press moves one more step
	p.SetMovementKey(DirLeft, false)
	p.SetMovementKey(DirLeft, true)
	p.Move()
	if got := x0 - p.X; got != 2*step {
		t.Fatalf("after release+press moved %f total, want %f", got, 2*step)
	}
}

func TestMoveAllowsDiagonal(t *testing.T) {
	p, _ := newTestPlayer()

	x0, y0 := p.X, p.Y
	p.SetMovementKey(DirUp, true)
	p.SetMovementKey(DirLeft, true)
	p.Move()

	if p.X >= x0 {
		t.Fatalf("expected left step, x %f -> %f", x0, p.X)
	}
	if p.Y >= y0 {
		t.Fatalf("expected up step, y %f -> %f", y0, p.Y)
	}
}

func TestMoveBlockedAtBoundaryIsNoOp(t *testing.T) {
	p, _ := newTestPlayer()

	// Walk to the left wall
	for i := 0; i < 50; i++ {
		p.SetMovementKey(DirLeft, false)
		p.SetMovementKey(DirLeft, true)
		p.Move()
	}
	xWall := p.X
	if xWall < config.SidePadding {
		t.Fatalf("player passed the left wall: x = %f", xWall)
	}

	// Blocked step must not consume the latch: once room appears the
	// same press moves without a release
	p.X += config.StepFraction * config.BaseWidth * 2
	before := p.X
	p.Move()
	if p.X >= before {
		t.Fatalf("latch was consumed by a blocked step: x stayed at %f", p.X)
	}
}

func TestMoveUpStopsAtWinningLine(t *testing.T) {
	p, _ := newTestPlayer()

	limit := config.WinningLineOffset - p.Height/2
	p.Y = limit - 1 // Already at/above the line
	p.SetMovementKey(DirUp, true)
	p.Move()
	if p.Y != limit-1 {
		t.Fatalf("up moved while at the line: y = %f", p.Y)
	}
}

func TestMoveBoundariesProperty(t *testing.T) {
	p, scaler := newTestPlayer()
	f := scaler.Factors()
	canvasW, canvasH := scaler.CanvasSize()

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		p.ResetPosition()
		p.X = config.SidePadding + rng.Float64()*(canvasW-p.Width-2*config.SidePadding)
		p.Y = rng.Float64() * (canvasH - p.Height - config.BottomPadding)

		for step := 0; step < 50; step++ {
			for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
				p.SetMovementKey(d, rng.Intn(2) == 0)
			}
			p.Move()

			if p.X < config.SidePadding*f.Width-1e-9 {
				t.Fatalf("trial %d: x = %f is left of the side padding", trial, p.X)
			}
			if p.X > canvasW-p.Width-config.SidePadding*f.Width+1e-9 {
				t.Fatalf("trial %d: x = %f is right of the side padding", trial, p.X)
			}
			if p.Y < 0 {
				t.Fatalf("trial %d: y = %f is above the top", trial, p.Y)
			}
			if p.Y+p.Height > canvasH-config.BottomPadding*f.Height+1e-9 {
				t.Fatalf("trial %d: bottom = %f exceeds the bottom padding", trial, p.Y+p.Height)
			}
		}
	}
}

func TestStepScalesWithCanvas(t *testing.T) {
	scaler := scale.NewProvider(config.BaseWidth/2, config.BaseHeight/2)
	p := NewPlayer(scaler)

	x0 := p.X
	p.SetMovementKey(DirLeft, true)
	p.Move()

	want := config.StepFraction * config.BaseWidth * 0.5
	if got := x0 - p.X; got != want {
		t.Fatalf("step at half scale = %f, want %f", got, want)
	}
}

func TestSizeFloorAtSmallScale(t *testing.T) {
	scaler := scale.NewProvider(config.BaseWidth/10, config.BaseHeight/10)
	p := NewPlayer(scaler)

	if p.Width != config.MinPlayerSize || p.Height != config.MinPlayerSize {
		t.Fatalf("size at tiny scale = %fx%f, want floor %f", p.Width, p.Height, config.MinPlayerSize)
	}
}

func TestNudgeClampsAtTop(t *testing.T) {
	p, _ := newTestPlayer()

	p.Y = 2
	p.Nudge(-10)
	if p.Y != 0 {
		t.Fatalf("nudge past the top: y = %f, want 0", p.Y)
	}
}
