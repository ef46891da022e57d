package regexlib

import (
	"fmt"
	"sort"
	"strconv"
)

// StateID identifies an NFA state. IDs are allocated from 1 by each
// construction and print as q1, q2, ...
type StateID int

func (s StateID) String() string { return "q" + strconv.Itoa(int(s)) }

// NFA is a Thompson automaton: one start state, one accepting state and a
// table holding every state as a key, possibly with no outgoing moves.
// Epsilon keys the silent moves.
type NFA struct {
	Start  StateID
	Accept StateID
	Table  map[StateID]map[rune][]StateID
}

type nfaFrag struct {
	start, accept StateID
}

// thompson owns the state counter and table of one construction.
type thompson struct {
	last  StateID
	table map[StateID]map[rune][]StateID
}

func (b *thompson) newState() StateID {
	b.last++
	b.table[b.last] = map[rune][]StateID{}
	return b.last
}

func (b *thompson) edge(from StateID, sym rune, to ...StateID) {
	b.table[from][sym] = append(b.table[from][sym], to...)
}

func (b *thompson) basic(sym rune) nfaFrag {
	s, e := b.newState(), b.newState()
	b.edge(s, sym, e)
	return nfaFrag{start: s, accept: e}
}

func (b *thompson) concat(f1, f2 nfaFrag) nfaFrag {
	b.edge(f1.accept, Epsilon, f2.start)
	return nfaFrag{start: f1.start, accept: f2.accept}
}

func (b *thompson) union(f1, f2 nfaFrag) nfaFrag {
	s, e := b.newState(), b.newState()
	b.edge(s, Epsilon, f1.start, f2.start)
	b.edge(f1.accept, Epsilon, e)
	b.edge(f2.accept, Epsilon, e)
	return nfaFrag{start: s, accept: e}
}

func (b *thompson) star(f nfaFrag) nfaFrag {
	s, e := b.newState(), b.newState()
	b.edge(s, Epsilon, f.start, e)
	b.edge(f.accept, Epsilon, f.start, e)
	return nfaFrag{start: s, accept: e}
}

// BuildNFA evaluates a postfix token stream with a stack of fragments.
// A token outside operands and ". + *" yields an UnknownToken error. A stream
// that does not reduce to exactly one fragment is a caller bug and panics.
func BuildNFA(postfix string) (*NFA, error) {
	b := &thompson{table: map[StateID]map[rune][]StateID{}}
	var stack []nfaFrag
	pop := func() nfaFrag {
		if len(stack) == 0 {
			panic(fmt.Sprintf("regexlib: postfix %q: operator without operand", postfix))
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f
	}

	for _, r := range postfix {
		switch {
		case isOperand(r):
			stack = append(stack, b.basic(r))
		case r == opConcat:
			f2 := pop()
			f1 := pop()
			stack = append(stack, b.concat(f1, f2))
		case r == opUnion:
			f2 := pop()
			f1 := pop()
			stack = append(stack, b.union(f1, f2))
		case r == opStar:
			stack = append(stack, b.star(pop()))
		default:
			return nil, &SyntaxError{Kind: UnknownToken, Pos: -1, Token: r}
		}
	}
	if len(stack) != 1 {
		panic(fmt.Sprintf("regexlib: postfix %q left %d fragments", postfix, len(stack)))
	}
	return &NFA{Start: stack[0].start, Accept: stack[0].accept, Table: b.table}, nil
}

// Symbols returns the input alphabet: every non-ε symbol labelling a move,
// in ascending order.
func (n *NFA) Symbols() []rune {
	seen := map[rune]struct{}{}
	for _, moves := range n.Table {
		for sym := range moves {
			if sym != Epsilon {
				seen[sym] = struct{}{}
			}
		}
	}
	return sortedRunes(seen)
}

func (n *NFA) ids() []StateID {
	ids := make([]StateID, 0, len(n.Table))
	for id := range n.Table {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (n *NFA) States() []string {
	ids := n.ids()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// Alphabet is Symbols preceded by Epsilon when any silent move exists.
func (n *NFA) Alphabet() []rune {
	syms := n.Symbols()
	for _, moves := range n.Table {
		if _, ok := moves[Epsilon]; ok {
			return append([]rune{Epsilon}, syms...)
		}
	}
	return syms
}

func (n *NFA) StartState() string { return n.Start.String() }

func (n *NFA) IsFinal(state string) bool { return state == n.Accept.String() }

func (n *NFA) Targets(state string, sym rune) []string {
	id, ok := parseStateID(state)
	if !ok {
		return nil
	}
	dests := n.Table[id][sym]
	out := make([]string, len(dests))
	for i, d := range dests {
		out[i] = d.String()
	}
	return out
}

func parseStateID(name string) (StateID, bool) {
	if len(name) < 2 || name[0] != 'q' {
		return 0, false
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil {
		return 0, false
	}
	return StateID(n), true
}

func sortedRunes(set map[rune]struct{}) []rune {
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
