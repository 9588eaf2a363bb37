package problemgen

import "fmt"

// MaxTable is the largest times table offered for practice.
const MaxTable = 20

// GenConfig controls the factor ranges of the RandomGenerator.
type GenConfig struct {
	// MinFactor and MaxFactor bound both factors (inclusive).
	MinFactor int
	MaxFactor int

	// Table fixes the first factor when > 0, e.g. 7 for the seven times
	// table. Zero means both factors are random.
	Table int
}

// DefaultGenConfig returns the classic 1-12 times tables.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		MinFactor: 1,
		MaxFactor: 12,
	}
}

// Validate reports whether the configuration can produce questions.
func (c GenConfig) Validate() error {
	if c.MinFactor < 0 {
		return fmt.Errorf("min factor %d: must not be negative", c.MinFactor)
	}
	if c.MaxFactor < c.MinFactor {
		return fmt.Errorf("max factor %d is below min factor %d", c.MaxFactor, c.MinFactor)
	}
	if c.Table != 0 && (c.Table < 2 || c.Table > MaxTable) {
		return fmt.Errorf("table %d: must be between 2 and %d", c.Table, MaxTable)
	}
	return nil
}
