package draw

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Game coordinates (pixels) are scaled to terminal cells on
// every draw call, so a resize only needs to update the scale factors.
type Canvas struct {
	termWidth      int    // Actual terminal columns
	termHeight     int    // Actual terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x] - true if pixel is set

	// Scaling from game pixels to terminal sub-pixels
	gameWidth  float64
	gameHeight float64
	scaleX     float64 // termWidth / gameWidth
	scaleY     float64 // (termHeight*2) / gameHeight

	renderBuf strings.Builder // Reusable buffer for batching render output
}

// NewCanvas creates a canvas mapping a game area of gameWidth x gameHeight
// pixels onto a terminal of termWidth x termHeight cells.
func NewCanvas(termWidth, termHeight int, gameWidth, gameHeight float64) *Canvas {
	c := &Canvas{}
	c.Resize(termWidth, termHeight, gameWidth, gameHeight)
	return c
}

// Resize updates the canvas for new terminal and game dimensions.
func (c *Canvas) Resize(termWidth, termHeight int, gameWidth, gameHeight float64) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	if gameWidth < 1 {
		gameWidth = 1
	}
	if gameHeight < 1 {
		gameHeight = 1
	}
	c.gameWidth = gameWidth
	c.gameHeight = gameHeight
	c.scaleX = float64(termWidth) / gameWidth
	c.scaleY = float64(subPixelHeight) / gameHeight
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at terminal sub-pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Set sets a pixel at game coordinates (applies scaling).
func (c *Canvas) Set(x, y float64) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	c.setPixel(px, py)
}

// FillRect fills an axis-aligned rectangle given in game coordinates.
func (c *Canvas) FillRect(x, y, width, height float64) {
	x1 := int(math.Round(x * c.scaleX))
	y1 := int(math.Round(y * c.scaleY))
	x2 := int(math.Round((x + width) * c.scaleX))
	y2 := int(math.Round((y + height) * c.scaleY))

	// Keep at least one sub-pixel so small objects stay visible
	if x2 <= x1 {
		x2 = x1 + 1
	}
	if y2 <= y1 {
		y2 = y1 + 1
	}

	for py := y1; py < y2; py++ {
		for px := x1; px < x2; px++ {
			c.setPixel(px, py)
		}
	}
}

// DashedHLine draws a dashed horizontal line across the canvas at game
// coordinate y. dash and gap are in game pixels.
func (c *Canvas) DashedHLine(y, dash, gap float64) {
	py := int(math.Round(y * c.scaleY))
	period := dash + gap
	if period <= 0 {
		return
	}
	for px := 0; px < c.termWidth; px++ {
		gx := float64(px) / c.scaleX
		if math.Mod(gx, period) < dash {
			c.setPixel(px, py)
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1400 bytes stays under typical MTU size for smooth SSH transmission.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using half-block characters.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 12) // Estimate ~12 bytes per cell

	for row := 0; row < c.termHeight; row++ {
		topY := row * 2
		bottomY := row*2 + 1
		topOffset := topY * c.termWidth
		bottomOffset := bottomY * c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := bottomY < c.subPixelHeight && c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue // Skip empty cells
			}

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1, col+1, ch)
		}
	}

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}
