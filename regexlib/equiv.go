package regexlib

// Equivalent reports whether a and b accept the same language. When they do
// not, it also returns a shortest input on which their verdicts differ.
// The pair automaton is explored breadth first; an empty name stands for the
// implicit sink reached by a missing move.
func Equivalent(a, b *DFA) (bool, string) {
	type pair struct{ p, q string }

	alpha := map[rune]struct{}{}
	for _, d := range []*DFA{a, b} {
		for _, r := range d.Alphabet() {
			alpha[r] = struct{}{}
		}
	}
	symbols := sortedRunes(alpha)

	start := pair{a.Start, b.Start}
	word := map[pair]string{start: ""}
	queue := []pair{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		w := word[cur]
		if a.Finals[cur.p] != b.Finals[cur.q] {
			return false, w
		}
		for _, c := range symbols {
			np, _ := a.Next(cur.p, c)
			nq, _ := b.Next(cur.q, c)
			nxt := pair{np, nq}
			if nxt == (pair{}) {
				continue
			}
			if _, seen := word[nxt]; !seen {
				word[nxt] = w + string(c)
				queue = append(queue, nxt)
			}
		}
	}
	return true, ""
}
