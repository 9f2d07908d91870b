package problemgen

import "fmt"

// Operation selects which arithmetic operation a problem uses.
type Operation string

const (
	OpAdd Operation = "add"
	OpSub Operation = "sub"
	OpMul Operation = "mul"
	OpDiv Operation = "div"

	// OpMixed resamples a concrete operation for every question.
	OpMixed Operation = "mix"
)

// AllOperations returns the selectable operations in menu order.
func AllOperations() []Operation {
	return []Operation{OpAdd, OpSub, OpMul, OpDiv, OpMixed}
}

// DisplayName returns a human-readable label for the operation.
func (o Operation) DisplayName() string {
	switch o {
	case OpAdd:
		return "Addition"
	case OpSub:
		return "Subtraction"
	case OpMul:
		return "Multiplication"
	case OpDiv:
		return "Division"
	case OpMixed:
		return "Mixed"
	default:
		return string(o)
	}
}

// Symbol returns the operator glyph used in question text.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	default:
		return "?"
	}
}

// Difficulty selects the operand range for a problem.
type Difficulty string

const (
	DiffEasy   Difficulty = "easy"
	DiffMedium Difficulty = "medium"
	DiffHard   Difficulty = "hard"
)

// AllDifficulties returns the selectable difficulties in menu order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DiffEasy, DiffMedium, DiffHard}
}

// DisplayName returns a human-readable label for the difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DiffEasy:
		return "Easy"
	case DiffMedium:
		return "Medium"
	case DiffHard:
		return "Hard"
	default:
		return string(d)
	}
}

// Ceiling returns the operand ceiling for addition and subtraction.
func (d Difficulty) Ceiling() int {
	switch d {
	case DiffEasy:
		return 10
	case DiffMedium:
		return 50
	case DiffHard:
		return 100
	default:
		panic(fmt.Sprintf("problemgen: unknown difficulty %q", d))
	}
}

// OptionCount is the fixed size of every answer option set.
const OptionCount = 4

// Problem is a single generated arithmetic question.
type Problem struct {
	A      int
	B      int
	Op     Operation // concrete operation, never OpMixed
	Answer int

	// Options holds OptionCount distinct non-negative integers
	// including Answer, in randomized order.
	Options []int
}

// Text renders the question prompt, e.g. "7 + 5 = ?".
func (p *Problem) Text() string {
	return fmt.Sprintf("%d %s %d = ?", p.A, p.Op.Symbol(), p.B)
}
