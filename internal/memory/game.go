package memory

import (
	"math/rand"

	"github.com/abhisek/mathgarden/internal/audio"
)

// Phase is the flip state machine position.
type Phase int

const (
	// AwaitingFirst means no unresolved card is face up.
	AwaitingFirst Phase = iota
	// AwaitingSecond means one unresolved card is face up.
	AwaitingSecond
	// Resolving means a mismatched pair is face up awaiting
	// concealment; input is locked until ConcealMismatch.
	Resolving
	// Complete means all pairs are matched.
	Complete
)

// Game is one memory-match play-through.
type Game struct {
	Cards        []Card
	MatchedPairs int
	Moves        int

	phase Phase
	first int // index of the first flipped card, -1 when none
	miss  [2]int
}

// NewGame deals a fresh board.
func NewGame(rnd *rand.Rand) *Game {
	return &Game{
		Cards: NewBoard(rnd),
		first: -1,
	}
}

// Phase returns the current flip state.
func (g *Game) Phase() Phase {
	return g.phase
}

// FlipResult describes the effect of one flip.
type FlipResult struct {
	// Flipped is false when the flip was ignored (locked board,
	// face-up card, out-of-range index).
	Flipped bool

	// Matched / Mismatched are set after the second flip of a pair.
	Matched    bool
	Mismatched bool

	// Completed is set when the flip matched the final pair.
	Completed bool

	Cue audio.Cue
}

// Flip turns the card at index face up. Flips are ignored while a
// mismatch is resolving and on cards already showing.
func (g *Game) Flip(index int) FlipResult {
	if g.phase == Resolving || g.phase == Complete {
		return FlipResult{}
	}
	if index < 0 || index >= len(g.Cards) {
		return FlipResult{}
	}
	card := &g.Cards[index]
	if card.FaceUp || card.Matched {
		return FlipResult{}
	}

	card.FaceUp = true

	if g.phase == AwaitingFirst {
		g.first = index
		g.phase = AwaitingSecond
		return FlipResult{Flipped: true, Cue: audio.CueClick}
	}

	// Second flip resolves the pair.
	g.Moves++
	firstCard := &g.Cards[g.first]

	if firstCard.PairKey == card.PairKey {
		firstCard.Matched = true
		card.Matched = true
		g.MatchedPairs++
		g.first = -1
		if g.MatchedPairs == PairCount {
			g.phase = Complete
			return FlipResult{Flipped: true, Matched: true, Completed: true, Cue: audio.CueWin}
		}
		g.phase = AwaitingFirst
		return FlipResult{Flipped: true, Matched: true, Cue: audio.CueCorrect}
	}

	// Mismatch: lock until the view calls ConcealMismatch after its
	// display delay.
	g.miss = [2]int{g.first, index}
	g.first = -1
	g.phase = Resolving
	return FlipResult{Flipped: true, Mismatched: true, Cue: audio.CueWrong}
}

// ConcealMismatch flips the mismatched pair back face down and
// unlocks the board. No-op outside Resolving.
func (g *Game) ConcealMismatch() {
	if g.phase != Resolving {
		return
	}
	g.Cards[g.miss[0]].FaceUp = false
	g.Cards[g.miss[1]].FaceUp = false
	g.phase = AwaitingFirst
}

// Bonus returns the star reward for a completed board: fewer moves,
// bigger bonus, floored at 5.
func (g *Game) Bonus() int {
	bonus := 50 - g.Moves
	if bonus < 5 {
		bonus = 5
	}
	return bonus
}
