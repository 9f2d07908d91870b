package problemgen

import (
	"fmt"
	"math/rand"
	"time"
)

// Generator produces arithmetic problems. It is a pure function of its
// inputs plus the injected random source, so tests can seed it.
type Generator struct {
	rnd *rand.Rand
}

// New creates a Generator backed by the given random source.
func New(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// NewSeeded creates a Generator seeded with the current time.
func NewSeeded() *Generator {
	return New(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// mulLimit returns the operand limit for multiplication.
func mulLimit(d Difficulty) int {
	switch d {
	case DiffEasy:
		return 5
	case DiffMedium:
		return 10
	case DiffHard:
		return 12
	default:
		panic(fmt.Sprintf("problemgen: unknown difficulty %q", d))
	}
}

// divLimit returns the divisor/quotient limit for division.
func divLimit(d Difficulty) int {
	if d == DiffEasy {
		return 5
	}
	return 10
}

// Generate produces a problem for the given operation and difficulty.
// OpMixed first samples uniformly among the four concrete operations.
// Unknown enum values are a programming error and panic.
func (g *Generator) Generate(op Operation, diff Difficulty) *Problem {
	if op == OpMixed {
		concrete := []Operation{OpAdd, OpSub, OpMul, OpDiv}
		op = concrete[g.rnd.Intn(len(concrete))]
	}

	max := diff.Ceiling()

	var a, b, answer int
	switch op {
	case OpAdd:
		// a + b never exceeds the ceiling.
		a = g.rnd.Intn(max-1) + 1
		b = g.rnd.Intn(max-a) + 1
		answer = a + b
	case OpSub:
		// Answers are never negative.
		a = g.rnd.Intn(max) + 1
		b = g.rnd.Intn(a)
		answer = a - b
	case OpMul:
		limit := mulLimit(diff)
		a = g.rnd.Intn(limit) + 1
		b = g.rnd.Intn(limit) + 1
		answer = a * b
	case OpDiv:
		// The dividend is derived so division is always exact.
		limit := divLimit(diff)
		b = g.rnd.Intn(limit) + 1
		answer = g.rnd.Intn(limit) + 1
		a = b * answer
	default:
		panic(fmt.Sprintf("problemgen: unknown operation %q", op))
	}

	return &Problem{
		A:       a,
		B:       b,
		Op:      op,
		Answer:  answer,
		Options: g.Options(answer, max),
	}
}
