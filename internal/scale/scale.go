// Package scale derives per-frame scale factors from the current canvas
// size versus the fixed base resolution. Everything that computes a
// distance multiplies by these factors at the point of use.
package scale

import "github.com/mvolt/ascend/internal/config"

// Factors holds the width and height scale of the current canvas relative
// to the base resolution. Both are always positive.
type Factors struct {
	Width  float64
	Height float64
}

// Provider tracks the current canvas size and exposes the derived factors.
// Resize it whenever the terminal changes; consumers must not cache scaled
// values across a resize.
type Provider struct {
	canvasW float64
	canvasH float64
}

// NewProvider creates a provider for the given canvas size in pixels.
// Dimensions are floored at 1 so factors stay positive.
func NewProvider(canvasW, canvasH float64) *Provider {
	p := &Provider{}
	p.Resize(canvasW, canvasH)
	return p
}

// Resize updates the canvas size.
func (p *Provider) Resize(canvasW, canvasH float64) {
	if canvasW < 1 {
		canvasW = 1
	}
	if canvasH < 1 {
		canvasH = 1
	}
	p.canvasW = canvasW
	p.canvasH = canvasH
}

// Factors returns the current scale factors.
func (p *Provider) Factors() Factors {
	return Factors{
		Width:  p.canvasW / config.BaseWidth,
		Height: p.canvasH / config.BaseHeight,
	}
}

// CanvasSize returns the current canvas dimensions in pixels.
func (p *Provider) CanvasSize() (w, h float64) {
	return p.canvasW, p.canvasH
}

// FromTerminal returns the canvas pixel size for a terminal of the given
// cell dimensions.
func FromTerminal(cols, rows int) (w, h float64) {
	return float64(cols) * config.CellPixelWidth, float64(rows) * config.CellPixelHeight
}
