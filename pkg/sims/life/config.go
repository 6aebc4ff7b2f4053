package life

// Config holds the board dimensions and randomization settings.
type Config struct {
	Width  int
	Height int

	// Seed drives Randomize. Equal seeds produce equal boards.
	Seed int64
	// Density is the probability that Randomize marks a cell alive.
	Density float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 55, Height: 30, Seed: 42, Density: 0.5}
}
