package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the runner.
const (
	ColorDefault       Color = iota // Terminal default
	ColorRed                        // Lives
	ColorGreen                      // Ground line
	ColorBlue                       // Platforms
	ColorWhite                      // HUD text
	ColorBrightRed                  // Spikes, extra life
	ColorBrightGreen                // Score boost
	ColorBrightYellow               // Shield, invincible player, record score
	ColorBrightBlue                 // Platform tops
	ColorBrightMagenta              // Slow time
	ColorBrightCyan                 // Player
	ColorGray                       // Ground fill
)
