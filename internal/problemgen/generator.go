package problemgen

import (
	"math/rand/v2"
	"time"
)

// Generator produces the next question to ask.
type Generator interface {
	// Next returns a fresh question. It never fails and does not touch
	// any session state.
	Next() Question
}

// RandomGenerator draws factors uniformly from the configured range.
type RandomGenerator struct {
	cfg GenConfig
	rng *rand.Rand
}

var _ Generator = (*RandomGenerator)(nil)

// New creates a RandomGenerator seeded from the wall clock. The config is
// expected to have passed Validate.
func New(cfg GenConfig) *RandomGenerator {
	seed := uint64(time.Now().UnixNano())
	return NewWithRand(cfg, rand.New(rand.NewPCG(seed, seed>>1)))
}

// NewWithRand creates a RandomGenerator using rng, for deterministic tests.
func NewWithRand(cfg GenConfig, rng *rand.Rand) *RandomGenerator {
	if cfg.MaxFactor < cfg.MinFactor {
		cfg.MaxFactor = cfg.MinFactor
	}
	return &RandomGenerator{cfg: cfg, rng: rng}
}

func (g *RandomGenerator) Next() Question {
	a := g.factor()
	if g.cfg.Table > 0 {
		a = g.cfg.Table
	}
	return NewQuestion(a, g.factor())
}

func (g *RandomGenerator) factor() int {
	span := g.cfg.MaxFactor - g.cfg.MinFactor + 1
	return g.cfg.MinFactor + g.rng.IntN(span)
}
