// Package memory implements the memory-match mini game: a 4x4 board
// pairing number cards with visual cards, scored by move count.
package memory

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// PairCount is the number of card pairs on a board.
const PairCount = 8

// BoardSize is the total card count.
const BoardSize = PairCount * 2

// CardKind distinguishes the two halves of a pair.
type CardKind string

const (
	KindNumber CardKind = "number"
	KindVisual CardKind = "visual"
)

// pairIcons are the icons cycled across pairs; visual cards repeat
// their icon as many times as the paired number.
var pairIcons = []string{"🍎", "🍌", "🍇", "🍊", "🍓", "🍒", "🧁", "🎈"}

// Card is one face on the board.
type Card struct {
	ID      string
	PairKey int
	Kind    CardKind

	// Value is the number both halves of the pair represent.
	Value int

	// Content is the display face: the digit for number cards, the
	// repeated icon row for visual cards.
	Content string

	FaceUp  bool
	Matched bool
}

// NewBoard deals a shuffled board: PairCount pairs, each one number
// card plus one visual card. Numbers are drawn without repeats from
// 1-10 so no two pairs look alike.
func NewBoard(rnd *rand.Rand) []Card {
	pool := make([]int, 10)
	for i := range pool {
		pool[i] = i + 1
	}
	rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	cards := make([]Card, 0, BoardSize)
	for i := 0; i < PairCount; i++ {
		num := pool[i]
		icon := pairIcons[i%len(pairIcons)]
		cards = append(cards,
			Card{
				ID:      fmt.Sprintf("p%d_n", i),
				PairKey: i,
				Kind:    KindNumber,
				Value:   num,
				Content: strconv.Itoa(num),
			},
			Card{
				ID:      fmt.Sprintf("p%d_v", i),
				PairKey: i,
				Kind:    KindVisual,
				Value:   num,
				Content: strings.Repeat(icon, num),
			},
		)
	}

	rnd.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}
