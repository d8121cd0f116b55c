// Package ui renders the HUD and screen overlays: score readouts, the
// title and pause screens, the game-over panel, and the collision flash.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mvolt/ascend/internal/draw"
	"github.com/mvolt/ascend/internal/gamemode"
)

// Display implements the gamemode Display contract. Calls from the mode
// only store state; actual drawing happens once per frame in Render.
type Display struct {
	score     int
	highScore int

	gameOver   bool
	finalScore int
	finalHigh  int
	onReset    func()

	flashColor string
	flashUntil time.Time

	now func() time.Time // Injected for tests
}

// Compile-time check that Display satisfies the mode contract.
var _ gamemode.Display = (*Display)(nil)

// NewDisplay creates an empty display.
func NewDisplay() *Display {
	return &Display{now: time.Now}
}

// FlashScreen paints the play-field background with the given ANSI color
// for the duration.
func (d *Display) FlashScreen(color string, duration time.Duration) {
	d.flashColor = color
	d.flashUntil = d.now().Add(duration)
}

// ShowGameOver displays the game-over panel and stores the restart
// callback; RequestRestart fires it.
func (d *Display) ShowGameOver(score, highScore int, onReset func()) {
	d.gameOver = true
	d.finalScore = score
	d.finalHigh = highScore
	d.onReset = onReset
}

// HideGameOver dismisses the game-over panel.
func (d *Display) HideGameOver() {
	d.gameOver = false
	d.onReset = nil
}

// UpdateScore sets the HUD score.
func (d *Display) UpdateScore(score int) {
	d.score = score
}

// UpdateHighScore sets the HUD high score.
func (d *Display) UpdateHighScore(score int) {
	d.highScore = score
}

// GameOverVisible reports whether the game-over panel is showing.
func (d *Display) GameOverVisible() bool {
	return d.gameOver
}

// RequestRestart invokes the stored reset callback, if the game-over
// panel is showing. The restart path is callback-wired, not polled.
func (d *Display) RequestRestart() {
	if d.gameOver && d.onReset != nil {
		d.onReset()
	}
}

// Render draws the flash, HUD, and state overlays. termWidth and
// termHeight are the canvas area in cells; cw applies centering offsets.
func (d *Display) Render(cw *draw.ChunkWriter, termWidth, termHeight int, st gamemode.State) {
	d.renderFlash(cw, termWidth, termHeight)

	switch st {
	case gamemode.StateReady:
		d.renderTitle(cw, termWidth, termHeight)
	case gamemode.StatePlaying:
		d.renderHUD(cw, termWidth)
	case gamemode.StatePaused:
		d.renderHUD(cw, termWidth)
		centerText(cw, termWidth, termHeight/2, "P A U S E D")
		centerText(cw, termWidth, termHeight/2+2, "Press P to resume")
	case gamemode.StateGameOver:
		d.renderHUD(cw, termWidth)
		if d.gameOver {
			d.renderGameOver(cw, termWidth, termHeight)
		}
	}
}

func (d *Display) renderFlash(cw *draw.ChunkWriter, termWidth, termHeight int) {
	if d.flashColor == "" || d.now().After(d.flashUntil) {
		return
	}
	row := strings.Repeat(" ", termWidth)
	cw.WriteString(d.flashColor)
	for y := 1; y <= termHeight; y++ {
		cw.WriteAt(1, y, row)
	}
	cw.WriteString(draw.Reset)
}

func (d *Display) renderHUD(cw *draw.ChunkWriter, termWidth int) {
	cw.WriteAt(2, 1, fmt.Sprintf("Score: %d", d.score))
	high := fmt.Sprintf("Best: %d", d.highScore)
	cw.WriteAt(termWidth-len(high)-1, 1, high)
}

func (d *Display) renderTitle(cw *draw.ChunkWriter, termWidth, termHeight int) {
	centerY := termHeight / 2
	centerText(cw, termWidth, centerY-2, "A S C E N D")
	centerText(cw, termWidth, centerY+1, "Climb to the line. Dodge the bars.")
	centerText(cw, termWidth, centerY+3, "Press SPACE to start")
	centerText(cw, termWidth, centerY+5, "Arrows/WASD to move, P to pause, Q to quit")
}

func (d *Display) renderGameOver(cw *draw.ChunkWriter, termWidth, termHeight int) {
	centerY := termHeight / 2
	centerText(cw, termWidth, centerY-2, draw.FgBold+"G A M E  O V E R"+draw.Reset)
	centerText(cw, termWidth, centerY, fmt.Sprintf("Score: %d   Best: %d", d.finalScore, d.finalHigh))
	centerText(cw, termWidth, centerY+2, "Press SPACE to play again")
}

func centerText(cw *draw.ChunkWriter, termWidth, row int, s string) {
	// ANSI sequences take no columns; measure without them
	visible := len(stripANSI(s))
	col := termWidth/2 - visible/2
	if col < 1 {
		col = 1
	}
	cw.WriteAt(col, row, s)
}

func stripANSI(s string) string {
	var b strings.Builder
	inSeq := false
	for _, r := range s {
		switch {
		case inSeq:
			if r == 'm' {
				inSeq = false
			}
		case r == '\033':
			inSeq = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
