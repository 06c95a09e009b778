package problemgen

import "math/rand/v2"

// Generator produces problems from the difficulty table.
type Generator interface {
	// Generate draws a problem for the given age, stage and operator.
	Generate(age Age, stage Stage, op Operator) Problem
}

// RandomGenerator draws operands uniformly at random.
type RandomGenerator struct {
	rng *rand.Rand
}

var _ Generator = (*RandomGenerator)(nil)

// New creates a RandomGenerator seeded from the runtime's random source.
func New() *RandomGenerator {
	return &RandomGenerator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded creates a RandomGenerator with a fixed seed, for tests and
// reproducible runs.
func NewSeeded(seed uint64) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate draws operand1 and operand2 independently from the ranges for
// (age, stage). Subtraction swaps the operands when needed so the answer
// is never negative. An unknown operator falls back to addition.
func (g *RandomGenerator) Generate(age Age, stage Stage, op Operator) Problem {
	b := BoundsFor(age, stage)
	n1 := g.draw(b.First)
	n2 := g.draw(b.Second)

	switch op {
	case OpSubtract:
		if n1 < n2 {
			n1, n2 = n2, n1
		}
		return Problem{Operand1: n1, Operand2: n2, Operator: OpSubtract, Answer: n1 - n2}
	default:
		return Problem{Operand1: n1, Operand2: n2, Operator: OpAdd, Answer: n1 + n2}
	}
}

func (g *RandomGenerator) draw(r Range) int {
	return r.Min + g.rng.IntN(r.Max-r.Min+1)
}
