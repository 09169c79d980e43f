package problemgen

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
)

// Sequence is an ordered list of signed terms produced by a generator.
// The running total never drops below zero, matching what a learner can
// physically represent on an abacus.
type Sequence struct {
	Terms []int
	Trace *Trace
}

// Trace records how the generator arrived at a sequence. Display-only.
type Trace struct {
	Steps int // candidate terms examined
	Cost  int // accumulated complexity cost
}

// Spec constrains a single generation request.
type Spec struct {
	// TermCount is the number of terms in the sequence. Minimum 2.
	TermCount int

	// MaxAbs bounds the absolute value of each term.
	MaxAbs int

	// AllowNegative permits subtraction terms after the first.
	AllowNegative bool

	// Budget caps the accumulated complexity cost. Zero means unlimited.
	Budget int
}

// Generator produces term sequences for practice problems.
type Generator interface {
	Generate(ctx context.Context, spec Spec) (Sequence, error)
}

// ErrSpecInvalid is returned when a Spec cannot produce any sequence.
var ErrSpecInvalid = errors.New("problemgen: invalid spec")

// RodGenerator generates sequences with a seeded PRNG. Deterministic for a
// given seed, which keeps plans reproducible in tests.
type RodGenerator struct {
	rng *rand.Rand
}

// New creates a RodGenerator from the given seed.
func New(seed int64) *RodGenerator {
	return &RodGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Generate produces a sequence satisfying spec. The first term is always
// positive and every prefix sum stays non-negative.
func (g *RodGenerator) Generate(_ context.Context, spec Spec) (Sequence, error) {
	if spec.TermCount < 2 || spec.MaxAbs < 1 {
		return Sequence{}, fmt.Errorf("%w: terms=%d maxAbs=%d", ErrSpecInvalid, spec.TermCount, spec.MaxAbs)
	}

	trace := &Trace{}
	terms := make([]int, 0, spec.TermCount)
	running := 0

	for i := 0; i < spec.TermCount; i++ {
		term := g.pickTerm(spec, i, running, trace)
		terms = append(terms, term)
		running += term
		trace.Cost += termCost(term, running)

		if spec.Budget > 0 && trace.Cost > spec.Budget && i >= 1 {
			// Over budget: close out with small positive terms.
			for j := i + 1; j < spec.TermCount; j++ {
				t := 1 + g.rng.Intn(3)
				terms = append(terms, t)
				running += t
				trace.Steps++
			}
			break
		}
	}

	return Sequence{Terms: terms, Trace: trace}, nil
}

func (g *RodGenerator) pickTerm(spec Spec, index, running int, trace *Trace) int {
	for {
		trace.Steps++
		term := 1 + g.rng.Intn(spec.MaxAbs)
		if spec.AllowNegative && index > 0 && g.rng.Intn(2) == 0 {
			term = -term
		}
		if running+term >= 0 {
			return term
		}
		// A subtraction that would go negative: clamp to what is available.
		if running > 0 {
			return -running
		}
	}
}

// termCost scores one term. Larger magnitudes and ten-crossings cost more;
// the planner uses the total to keep slots inside their complexity bound.
func termCost(term, runningAfter int) int {
	cost := 1
	mag := term
	if mag < 0 {
		cost++
		mag = -mag
	}
	if mag >= 10 {
		cost++
	}
	before := runningAfter - term
	if before/10 != runningAfter/10 {
		cost++ // crossed a tens boundary
	}
	return cost
}
