// Package loop provides the host frame loop: it drives the game mode with
// update → postUpdate → render once per frame and owns the terminal
// input/output plumbing around it.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mvolt/ascend/internal/config"
	"github.com/mvolt/ascend/internal/draw"
	"github.com/mvolt/ascend/internal/effects"
	"github.com/mvolt/ascend/internal/entity"
	"github.com/mvolt/ascend/internal/gamemode"
	"github.com/mvolt/ascend/internal/input"
	"github.com/mvolt/ascend/internal/scale"
	"github.com/mvolt/ascend/internal/ui"
)

// Options configures a game session.
type Options struct {
	// TermSizeFunc reports the terminal size; defaults to the local
	// terminal. SSH sessions supply their own tracker.
	TermSizeFunc draw.TermSizeFunc

	// Sounds is the optional sound capability; nil plays nothing.
	Sounds gamemode.SoundPlayer
}

// Run starts a game session with the standard Input → Update → Draw cycle
// and blocks until the player quits, the input reader closes, or writing
// to the terminal fails.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}

	termW, termH, err := sizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	canvasW, canvasH := scale.FromTerminal(termW, termH)
	scaler := scale.NewProvider(canvasW, canvasH)
	player := entity.NewPlayer(scaler)
	field := entity.NewField(scaler)
	particles := effects.NewSystem()
	display := ui.NewDisplay()

	mode := gamemode.NewSinglePlayer(gamemode.Deps{
		Player:    player,
		Scale:     scaler,
		Obstacles: field,
		Display:   display,
		Particles: particles,
		Sounds:    opts.Sounds,
	})
	defer mode.Dispose()

	// Initialization must complete before the first frame; a failure
	// aborts the session.
	if err := mode.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	stream := input.StartStream(r)
	canvas := draw.NewCanvas(termW, termH, canvasW, canvasH)
	cw := draw.NewChunkWriter(w, 0, 0)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	lastTime := time.Now()
	var prev input.Input

	for {
		select {
		case <-ctx.Done():
			draw.ClearScreen(w)
			return ctx.Err()
		default:
		}

		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Quit || stream.Closed() {
			draw.ClearScreen(w)
			return nil
		}
		handleControlKeys(mode, display, stream, in, prev)
		prev = in

		// ===== RESIZE CHECK =====
		if tw, th, err := sizeFunc(); err == nil && (tw != termW || th != termH) {
			termW, termH = tw, th
			canvasW, canvasH = scale.FromTerminal(termW, termH)
			scaler.Resize(canvasW, canvasH)
			canvas.Resize(termW, termH, canvasW, canvasH)
			draw.ClearScreen(w)
		}

		// ===== UPDATE PHASE =====
		mode.Update(gamemode.InputState{
			Up:    in.Up,
			Down:  in.Down,
			Left:  in.Left,
			Right: in.Right,
		}, delta, frameStart)
		mode.PostUpdate()
		particles.Update(delta)

		// ===== DRAW PHASE =====
		draw.ClearScreen(cw)
		canvas.Clear()

		f := scaler.Factors()
		canvas.DashedHLine(config.WinningLineOffset*f.Height, 12*f.Width, 8*f.Width)
		field.Draw(canvas)
		player.Draw(canvas)
		particles.Draw(canvas)

		canvas.Render(cw)
		display.Render(cw, termW, termH, mode.State())
		mode.Render(frameStart)

		if err := cw.Flush(); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}
}

// handleControlKeys applies host-driven transitions: start, restart,
// pause toggle. Edge-triggered against the previous frame so a held key
// fires once.
func handleControlKeys(mode *gamemode.SinglePlayer, display *ui.Display, stream *input.Stream, in, prev input.Input) {
	switch mode.State() {
	case gamemode.StateReady:
		if in.Start && !prev.Start {
			input.Reset(stream)
			mode.Start()
		}
	case gamemode.StateGameOver:
		if in.Start && !prev.Start {
			input.Reset(stream)
			display.RequestRestart()
		}
	case gamemode.StatePlaying:
		if in.Pause && !prev.Pause {
			mode.Pause()
		}
	case gamemode.StatePaused:
		if in.Pause && !prev.Pause {
			mode.Resume()
		}
	}
}
