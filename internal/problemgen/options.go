package problemgen

// nearWindow is the half-width of the "near miss" sampling window
// around the correct answer.
const nearWindow = 5

// nearProbability is the chance a candidate distractor is drawn from
// the near-miss window rather than the full [0, ceiling] range.
const nearProbability = 0.7

// stallLimit is how many consecutive rejected candidates are tolerated
// before the near-miss window widens. Tiny ranges (e.g. ceiling 0)
// otherwise cannot produce four distinct values.
const stallLimit = 32

// Options builds the answer option set: OptionCount distinct
// non-negative integers including answer, in randomized order.
func (g *Generator) Options(answer, ceiling int) []int {
	window := nearWindow
	seen := map[int]bool{answer: true}
	opts := []int{answer}
	rejected := 0

	for len(opts) < OptionCount {
		lo := answer - window
		if lo < 0 {
			lo = 0
		}
		hi := answer + window

		var candidate int
		if g.rnd.Float64() < nearProbability {
			candidate = lo + g.rnd.Intn(hi-lo+1)
		} else {
			candidate = g.rnd.Intn(ceiling + 1)
		}

		if candidate < 0 || seen[candidate] {
			rejected++
			if rejected >= stallLimit {
				window += nearWindow
				rejected = 0
			}
			continue
		}

		seen[candidate] = true
		opts = append(opts, candidate)
	}

	g.rnd.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts
}
