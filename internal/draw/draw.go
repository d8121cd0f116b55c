// Package draw renders the game to the terminal using half-block
// characters for doubled vertical resolution.
package draw

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)
