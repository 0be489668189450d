package prop

import (
	"flag"
	"time"
)

// Config controls how many inputs a property is checked against and how
// hard the runner works to shrink a counterexample (spec.md §4.5, §6).
type Config struct {
	// Seed seeds the random source. Zero means "pick one from the clock
	// and report it", so a failure can always be replayed.
	Seed int64

	// Examples is the number of passing inputs to require before
	// declaring the property OK.
	Examples int

	// MaxShrink bounds the number of shrink steps attempted per
	// counterexample, guarding against pathologically deep shrink trees.
	MaxShrink int

	// MaxDiscardRatio bounds the number of discarded inputs tolerated per
	// requested example before the run aborts as too-many-discards.
	MaxDiscardRatio int
}

var (
	flagSeed      = flag.Int64("prop.seed", 0, "seed for property test random generation")
	flagExamples  = flag.Int("prop.examples", 100, "number of examples to run per property")
	flagMaxShrink = flag.Int("prop.maxshrink", 1000, "maximum shrink steps attempted per failure")
	flagDiscard   = flag.Int("prop.discardratio", 10, "max discarded inputs tolerated per example")
)

// Default returns a Config seeded from the registered command-line flags,
// the way the teacher's own prop.Default did; call flag.Parse (or let `go
// test` do it) before relying on the flag values.
func Default() Config {
	return Config{
		Seed:            *flagSeed,
		Examples:        *flagExamples,
		MaxShrink:       *flagMaxShrink,
		MaxDiscardRatio: *flagDiscard,
	}
}

func (c Config) effectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func (c Config) examples() int {
	if c.Examples > 0 {
		return c.Examples
	}
	return 100
}

func (c Config) maxShrink() int {
	if c.MaxShrink > 0 {
		return c.MaxShrink
	}
	return 1000
}

func (c Config) maxDiscards() int {
	n := c.MaxDiscardRatio
	if n <= 0 {
		n = 10
	}
	return n * c.examples()
}
