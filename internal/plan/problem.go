package plan

import (
	"fmt"
	"strings"

	"github.com/abhisek/sumleap/internal/problemgen"
)

// Problem is an ordered sequence of signed terms with a single sum answer.
// Immutable once created.
type Problem struct {
	Terms  []int
	Answer int
	Trace  *problemgen.Trace
}

// NewProblem builds a Problem from terms, computing the answer.
func NewProblem(terms []int) Problem {
	sum := 0
	for _, t := range terms {
		sum += t
	}
	return Problem{Terms: terms, Answer: sum}
}

// FromSequence wraps a generated sequence, keeping its trace for display.
func FromSequence(seq problemgen.Sequence) Problem {
	p := NewProblem(seq.Terms)
	p.Trace = seq.Trace
	return p
}

// PrefixSums returns the running totals after each term. The last entry
// equals Answer. Used for partial-sum help detection.
func (p Problem) PrefixSums() []int {
	sums := make([]int, len(p.Terms))
	running := 0
	for i, t := range p.Terms {
		running += t
		sums[i] = running
	}
	return sums
}

// String renders the problem as a linear expression, e.g. "3 + 5 - 2".
func (p Problem) String() string {
	var b strings.Builder
	for i, t := range p.Terms {
		if i == 0 {
			fmt.Fprintf(&b, "%d", t)
			continue
		}
		if t < 0 {
			fmt.Fprintf(&b, " - %d", -t)
		} else {
			fmt.Fprintf(&b, " + %d", t)
		}
	}
	return b.String()
}
