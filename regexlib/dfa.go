package regexlib

import (
	"container/list"
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

// DFA is a deterministic automaton keyed by state name. A missing
// (state, symbol) entry means there is no move. Every state referenced as a
// source or destination is a key of Table.
type DFA struct {
	Start  string
	Finals map[string]bool
	Table  map[string]map[rune]string
}

func (n *NFA) newSet() *bitset.BitSet {
	var max StateID
	for id := range n.Table {
		if id > max {
			max = id
		}
	}
	return bitset.New(uint(max) + 1)
}

// closure follows ε-moves from every state in set until nothing new is added.
func (n *NFA) closure(set *bitset.BitSet) *bitset.BitSet {
	res := set.Clone()
	stack := list.New()
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		stack.PushBack(StateID(i))
	}
	for stack.Len() > 0 {
		s := stack.Remove(stack.Back()).(StateID)
		for _, t := range n.Table[s][Epsilon] {
			if !res.Test(uint(t)) {
				res.Set(uint(t))
				stack.PushBack(t)
			}
		}
	}
	return res
}

// move is the union of the sym-moves of every state in set.
func (n *NFA) move(set *bitset.BitSet, sym rune) *bitset.BitSet {
	res := n.newSet()
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		for _, t := range n.Table[StateID(i)][sym] {
			res.Set(uint(t))
		}
	}
	return res
}

func (n *NFA) setOf(states []StateID) *bitset.BitSet {
	set := n.newSet()
	for _, s := range states {
		set.Set(uint(s))
	}
	return set
}

func idsOf(set *bitset.BitSet) []StateID {
	out := make([]StateID, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out = append(out, StateID(i))
	}
	return out
}

// EpsilonClosure returns the states reachable from states through zero or
// more ε-moves, in ascending order.
func (n *NFA) EpsilonClosure(states ...StateID) []StateID {
	return idsOf(n.closure(n.setOf(states)))
}

// Move returns the states reached from states on one sym-move, in ascending order.
func (n *NFA) Move(states []StateID, sym rune) []StateID {
	return idsOf(n.move(n.setOf(states), sym))
}

func dfaName(i int) string { return "D" + strconv.Itoa(i) }

// NFAToDFA runs the subset construction. The start closure is D0; further
// sets are named D1, D2, ... in discovery order, with the worklist popped
// last-in first-out and symbols tried in ascending order. Empty targets
// record no transition.
func NFAToDFA(n *NFA) *DFA {
	symbols := n.Symbols()
	start := n.newSet()
	start.Set(uint(n.Start))
	start = n.closure(start)

	names := map[string]string{start.String(): dfaName(0)}
	sets := []*bitset.BitSet{start}
	d := &DFA{
		Start:  dfaName(0),
		Finals: map[string]bool{},
		Table:  map[string]map[rune]string{dfaName(0): {}},
	}

	unmarked := list.New()
	unmarked.PushBack(start)
	for unmarked.Len() > 0 {
		cur := unmarked.Remove(unmarked.Back()).(*bitset.BitSet)
		curName := names[cur.String()]
		for _, sym := range symbols {
			next := n.closure(n.move(cur, sym))
			if next.None() {
				continue
			}
			key := next.String()
			name, ok := names[key]
			if !ok {
				name = dfaName(len(sets))
				names[key] = name
				sets = append(sets, next)
				d.Table[name] = map[rune]string{}
				unmarked.PushBack(next)
			}
			d.Table[curName][sym] = name
		}
	}

	for i, set := range sets {
		if set.Test(uint(n.Accept)) {
			d.Finals[dfaName(i)] = true
		}
	}
	return d
}
