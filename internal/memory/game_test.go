package memory

import (
	"math/rand"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestNewBoard(t *testing.T) {
	cards := NewBoard(testRand())

	if len(cards) != BoardSize {
		t.Fatalf("len(cards) = %d, want %d", len(cards), BoardSize)
	}

	byPair := map[int][]Card{}
	values := map[int]bool{}
	for _, c := range cards {
		byPair[c.PairKey] = append(byPair[c.PairKey], c)
		if c.FaceUp || c.Matched {
			t.Fatalf("card %s dealt face up or matched", c.ID)
		}
	}

	if len(byPair) != PairCount {
		t.Fatalf("pair keys = %d, want %d", len(byPair), PairCount)
	}

	for key, pair := range byPair {
		if len(pair) != 2 {
			t.Fatalf("pair %d has %d cards", key, len(pair))
		}
		if pair[0].Value != pair[1].Value {
			t.Fatalf("pair %d values differ: %d vs %d", key, pair[0].Value, pair[1].Value)
		}
		if pair[0].Kind == pair[1].Kind {
			t.Fatalf("pair %d is not one number card plus one visual card", key)
		}

		v := pair[0].Value
		if v < 1 || v > 10 {
			t.Fatalf("pair %d value = %d, want 1..10", key, v)
		}
		if values[v] {
			t.Fatalf("value %d used by two pairs", v)
		}
		values[v] = true
	}
}

func TestFlipMatch(t *testing.T) {
	g := NewGame(testRand())

	first, second := findPair(g, true)

	res := g.Flip(first)
	if !res.Flipped || res.Matched || res.Mismatched {
		t.Fatalf("first flip = %+v", res)
	}
	if g.Phase() != AwaitingSecond {
		t.Fatalf("phase = %v, want AwaitingSecond", g.Phase())
	}
	if g.Moves != 0 {
		t.Errorf("Moves = %d, want 0 after first flip", g.Moves)
	}

	res = g.Flip(second)
	if !res.Matched {
		t.Fatalf("second flip = %+v, want match", res)
	}
	if g.Moves != 1 {
		t.Errorf("Moves = %d, want 1", g.Moves)
	}
	if g.MatchedPairs != 1 {
		t.Errorf("MatchedPairs = %d, want 1", g.MatchedPairs)
	}
	if !g.Cards[first].Matched || !g.Cards[second].Matched {
		t.Error("matched cards not marked")
	}
	if g.Phase() != AwaitingFirst {
		t.Errorf("phase = %v, want AwaitingFirst", g.Phase())
	}
}

func TestFlipMismatchLocksUntilConceal(t *testing.T) {
	g := NewGame(testRand())

	first, second := findPair(g, false)

	g.Flip(first)
	res := g.Flip(second)
	if !res.Mismatched {
		t.Fatalf("flip = %+v, want mismatch", res)
	}
	if g.Phase() != Resolving {
		t.Fatalf("phase = %v, want Resolving", g.Phase())
	}

	// Flips are ignored while resolving.
	for i := range g.Cards {
		if !g.Cards[i].FaceUp && !g.Cards[i].Matched {
			if r := g.Flip(i); r.Flipped {
				t.Fatal("flip accepted while resolving")
			}
			break
		}
	}

	g.ConcealMismatch()
	if g.Cards[first].FaceUp || g.Cards[second].FaceUp {
		t.Error("mismatched cards still face up after conceal")
	}
	if g.Phase() != AwaitingFirst {
		t.Errorf("phase = %v, want AwaitingFirst", g.Phase())
	}
}

func TestFlipIgnoresFaceUpAndOutOfRange(t *testing.T) {
	g := NewGame(testRand())

	g.Flip(0)
	if res := g.Flip(0); res.Flipped {
		t.Error("re-flipping a face-up card accepted")
	}
	if res := g.Flip(-1); res.Flipped {
		t.Error("negative index accepted")
	}
	if res := g.Flip(len(g.Cards)); res.Flipped {
		t.Error("out-of-range index accepted")
	}
}

func TestCompleteGameAndBonus(t *testing.T) {
	g := NewGame(testRand())

	var last FlipResult
	for pair := 0; pair < PairCount; pair++ {
		first, second := -1, -1
		for i, c := range g.Cards {
			if c.PairKey == pair {
				if first == -1 {
					first = i
				} else {
					second = i
				}
			}
		}
		g.Flip(first)
		last = g.Flip(second)
	}

	if !last.Completed {
		t.Fatal("final match did not complete the game")
	}
	if g.Phase() != Complete {
		t.Fatalf("phase = %v, want Complete", g.Phase())
	}
	if g.Moves != PairCount {
		t.Fatalf("Moves = %d, want %d", g.Moves, PairCount)
	}
	// 8 perfect moves leave the full bonus: 50 - 8.
	if got := g.Bonus(); got != 42 {
		t.Errorf("Bonus = %d, want 42", got)
	}

	if res := g.Flip(0); res.Flipped {
		t.Error("flip accepted after completion")
	}
}

func TestBonusFloor(t *testing.T) {
	g := &Game{Moves: 60}
	if got := g.Bonus(); got != 5 {
		t.Errorf("Bonus = %d, want floor of 5", got)
	}
}

// findPair returns two card indexes that match (or deliberately do
// not) by pair key.
func findPair(g *Game, matching bool) (int, int) {
	for i, a := range g.Cards {
		for j := i + 1; j < len(g.Cards); j++ {
			b := g.Cards[j]
			if matching && a.PairKey == b.PairKey {
				return i, j
			}
			if !matching && a.PairKey != b.PairKey {
				return i, j
			}
		}
	}
	panic("unreachable board layout")
}
