package regexlib

import (
	"github.com/bits-and-blooms/bitset"
)

// Minimize merges indistinguishable states with Hopcroft's partition
// refinement. The partition starts as {finals, non-finals} with only the
// finals on the worklist. A missing move counts as a move into an implicit
// non-final sink, which takes part in refinement but never appears in the
// result. A destination that is not a table key is the sink too, as it is
// for Simulate. Each class is named after its lexicographically smallest
// member, so D10 names a class holding D10 and D2. d is left untouched.
func Minimize(d *DFA) *DFA {
	if d == nil || d.Start == "" {
		return d
	}

	states := d.States()
	index := make(map[string]int, len(states))
	for i, s := range states {
		index[s] = i
	}
	sink := len(states)
	size := uint(sink + 1)
	symbols := d.Alphabet()

	// next[i][k] is the destination of state i on symbols[k].
	next := make([][]int, sink+1)
	for i := range next {
		next[i] = make([]int, len(symbols))
		for k, c := range symbols {
			next[i][k] = sink
			if i == sink {
				continue
			}
			if to, ok := d.Next(states[i], c); ok {
				if j, known := index[to]; known {
					next[i][k] = j
				}
			}
		}
	}

	// --- 1. initial partition -------------------------------------------
	finals, non := bitset.New(size), bitset.New(size)
	for i, s := range states {
		if d.Finals[s] {
			finals.Set(uint(i))
		} else {
			non.Set(uint(i))
		}
	}
	non.Set(uint(sink))

	var partitions []*bitset.BitSet
	var work []int // indexes into partitions
	if finals.Any() {
		partitions = append(partitions, finals)
		work = append(work, 0)
	}
	partitions = append(partitions, non)

	inWork := func(idx int) bool {
		for _, w := range work {
			if w == idx {
				return true
			}
		}
		return false
	}

	// --- 2. refine --------------------------------------------------------
	for len(work) > 0 {
		a := partitions[work[len(work)-1]]
		work = work[:len(work)-1]

		for k := range symbols {
			// X is the preimage of A on symbols[k].
			x := bitset.New(size)
			for i := range next {
				if a.Test(uint(next[i][k])) {
					x.Set(uint(i))
				}
			}

			for p, count := 0, len(partitions); p < count; p++ {
				y := partitions[p]
				inter := y.Intersection(x)
				diff := y.Difference(x)
				if inter.None() || diff.None() {
					continue
				}

				partitions[p] = inter
				partitions = append(partitions, diff)
				split := len(partitions) - 1
				switch {
				case inWork(p):
					work = append(work, split)
				case inter.Count() <= diff.Count():
					work = append(work, p)
				default:
					work = append(work, split)
				}
			}
		}
	}

	// --- 3. build the reduced DFA ----------------------------------------
	rep := make(map[string]string, len(states))
	for _, block := range partitions {
		var members []string
		for i, ok := block.NextSet(0); ok; i, ok = block.NextSet(i + 1) {
			if int(i) != sink {
				members = append(members, states[i])
			}
		}
		if len(members) == 0 {
			continue
		}
		smallest := members[0]
		for _, m := range members[1:] {
			if m < smallest {
				smallest = m
			}
		}
		for _, m := range members {
			rep[m] = smallest
		}
	}

	min := &DFA{
		Start:  rep[d.Start],
		Finals: map[string]bool{},
		Table:  make(map[string]map[rune]string),
	}
	for _, s := range states {
		if _, ok := min.Table[rep[s]]; !ok {
			min.Table[rep[s]] = map[rune]string{}
		}
	}
	for _, s := range states {
		for c, to := range d.Table[s] {
			if _, known := index[to]; !known {
				continue
			}
			min.Table[rep[s]][c] = rep[to]
		}
		if d.Finals[s] {
			min.Finals[rep[s]] = true
		}
	}
	return min
}
