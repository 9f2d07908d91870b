package problemgen

import (
	"math/rand"
	"testing"
)

func testGen(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

func TestGenerateBounds(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		diff Difficulty
	}{
		{"add easy", OpAdd, DiffEasy},
		{"add medium", OpAdd, DiffMedium},
		{"add hard", OpAdd, DiffHard},
		{"sub easy", OpSub, DiffEasy},
		{"sub medium", OpSub, DiffMedium},
		{"sub hard", OpSub, DiffHard},
		{"mul easy", OpMul, DiffEasy},
		{"mul medium", OpMul, DiffMedium},
		{"mul hard", OpMul, DiffHard},
		{"div easy", OpDiv, DiffEasy},
		{"div medium", OpDiv, DiffMedium},
		{"div hard", OpDiv, DiffHard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGen(1)
			for i := 0; i < 500; i++ {
				p := g.Generate(tt.op, tt.diff)

				if p.Op != tt.op {
					t.Fatalf("Op = %q, want %q", p.Op, tt.op)
				}
				if p.Answer < 0 {
					t.Fatalf("Answer = %d, want >= 0", p.Answer)
				}

				switch tt.op {
				case OpAdd:
					max := tt.diff.Ceiling()
					if p.A < 1 || p.B < 1 {
						t.Fatalf("operands %d, %d, want >= 1", p.A, p.B)
					}
					if p.A+p.B > max {
						t.Fatalf("%d + %d exceeds ceiling %d", p.A, p.B, max)
					}
					if p.Answer != p.A+p.B {
						t.Fatalf("Answer = %d, want %d", p.Answer, p.A+p.B)
					}
				case OpSub:
					max := tt.diff.Ceiling()
					if p.A < 1 || p.A > max {
						t.Fatalf("A = %d, want 1..%d", p.A, max)
					}
					if p.B < 0 || p.B >= p.A {
						t.Fatalf("B = %d, want 0..%d", p.B, p.A-1)
					}
					if p.Answer != p.A-p.B {
						t.Fatalf("Answer = %d, want %d", p.Answer, p.A-p.B)
					}
				case OpMul:
					limit := mulLimit(tt.diff)
					if p.A < 1 || p.A > limit || p.B < 1 || p.B > limit {
						t.Fatalf("operands %d, %d, want 1..%d", p.A, p.B, limit)
					}
					if p.Answer != p.A*p.B {
						t.Fatalf("Answer = %d, want %d", p.Answer, p.A*p.B)
					}
				case OpDiv:
					limit := divLimit(tt.diff)
					if p.B < 1 || p.B > limit {
						t.Fatalf("B = %d, want 1..%d", p.B, limit)
					}
					if p.Answer < 1 || p.Answer > limit {
						t.Fatalf("Answer = %d, want 1..%d", p.Answer, limit)
					}
					if p.A != p.B*p.Answer {
						t.Fatalf("A = %d, want %d", p.A, p.B*p.Answer)
					}
				}
			}
		})
	}
}

func TestGenerateMixedResolvesOperation(t *testing.T) {
	g := testGen(2)
	seen := map[Operation]bool{}
	for i := 0; i < 200; i++ {
		p := g.Generate(OpMixed, DiffMedium)
		if p.Op == OpMixed {
			t.Fatal("generated problem kept the mixed operation")
		}
		seen[p.Op] = true
	}
	for _, op := range []Operation{OpAdd, OpSub, OpMul, OpDiv} {
		if !seen[op] {
			t.Errorf("mixed never produced %q in 200 draws", op)
		}
	}
}

func TestGenerateUnknownEnumsPanic(t *testing.T) {
	g := testGen(3)

	assertPanics := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		fn()
	}

	assertPanics("unknown operation", func() { g.Generate(Operation("pow"), DiffEasy) })
	assertPanics("unknown difficulty", func() { g.Generate(OpAdd, Difficulty("brutal")) })
}

func TestOptions(t *testing.T) {
	g := testGen(4)
	for i := 0; i < 500; i++ {
		answer := g.rnd.Intn(100)
		opts := g.Options(answer, 100)

		if len(opts) != OptionCount {
			t.Fatalf("len(opts) = %d, want %d", len(opts), OptionCount)
		}

		seen := map[int]bool{}
		hasAnswer := false
		for _, o := range opts {
			if o < 0 {
				t.Fatalf("option %d is negative", o)
			}
			if seen[o] {
				t.Fatalf("duplicate option %d in %v", o, opts)
			}
			seen[o] = true
			if o == answer {
				hasAnswer = true
			}
		}
		if !hasAnswer {
			t.Fatalf("options %v missing answer %d", opts, answer)
		}
	}
}

// A ceiling of zero leaves only the near-miss window to draw from; the
// window must widen instead of looping forever.
func TestOptionsTinyCeiling(t *testing.T) {
	g := testGen(5)
	opts := g.Options(0, 0)

	if len(opts) != OptionCount {
		t.Fatalf("len(opts) = %d, want %d", len(opts), OptionCount)
	}
	seen := map[int]bool{}
	for _, o := range opts {
		if o < 0 || seen[o] {
			t.Fatalf("bad option set %v", opts)
		}
		seen[o] = true
	}
	if !seen[0] {
		t.Fatalf("options %v missing answer 0", opts)
	}
}

func TestProblemText(t *testing.T) {
	p := &Problem{A: 7, B: 5, Op: OpAdd, Answer: 12}
	if got := p.Text(); got != "7 + 5 = ?" {
		t.Errorf("Text() = %q, want %q", got, "7 + 5 = ?")
	}

	p = &Problem{A: 20, B: 4, Op: OpDiv, Answer: 5}
	if got := p.Text(); got != "20 ÷ 4 = ?" {
		t.Errorf("Text() = %q, want %q", got, "20 ÷ 4 = ?")
	}
}
