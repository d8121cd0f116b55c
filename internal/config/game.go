// Package config centralizes all tunable game parameters.
package config

import "time"

// Base resolution - all gameplay distances are expressed at this size and
// multiplied by the current scale factors at the point of use.
const (
	BaseWidth  = 800.0
	BaseHeight = 550.0
)

// Nominal pixel size of a terminal cell. The game canvas size in pixels is
// derived from the terminal size with these, so a typical ~115x40 terminal
// plays close to the base resolution (scale factors near 1.0).
const (
	CellPixelWidth  = 7.0
	CellPixelHeight = 14.0
)

// Player
const (
	BasePlayerSize = 40.0 // Square side at base resolution
	MinPlayerSize  = 20.0 // Absolute size floor in px
	StepFraction   = 0.05 // Step = this fraction of the base dimension per axis
	MinStep        = 20.0 // Step floor at base resolution
	SidePadding    = 5.0  // Horizontal bound inset
	BottomPadding  = 10.0 // Bottom bound inset
	UpBoost        = 4.0  // Extra upward px per frame while up is held
	UpBoostMinY    = 20.0 // Boost only applies while y is below the very top
)

// Winning line - distance from the top of the canvas at base resolution.
const WinningLineOffset = 40.0

// Obstacles
const (
	BaseObstacleSpeed = 120.0 // px/sec at base resolution
	MinObstacleWidth  = 60.0
	MaxObstacleWidth  = 140.0
	ObstacleHeight    = 18.0
	MaxObstacles      = 12
	DifficultyRate    = 0.15 // Speed multiplier growth per score point
	DifficultyCap     = 20   // Score beyond this stops speeding obstacles up
)

// Difficulty ramp
const (
	BootstrapScore   = 2   // One obstacle per scoring event up to this score
	RampInterval     = 4   // Then one extra obstacle every Nth point
	CrowdScaleCutoff = 0.7 // Width scale below which the crowd cap applies
	CrowdObstacleCap = 7   // Obstacle count above which additions are skipped
)

// Effects
const (
	MaxCelebrationParticles = 40
	FlashDuration           = 150 * time.Millisecond
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)
