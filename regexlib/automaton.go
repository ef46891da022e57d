package regexlib

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Automaton is the read-only view renderers and reporters work from.
// *NFA and *DFA implement it.
type Automaton interface {
	// States lists every state in a stable display order.
	States() []string
	// Alphabet lists the symbols labelling at least one move. For an NFA
	// with silent moves it starts with Epsilon.
	Alphabet() []rune
	StartState() string
	IsFinal(state string) bool
	// Targets returns the destinations of state on sym, empty when none.
	Targets(state string, sym rune) []string
}

var (
	_ Automaton = (*NFA)(nil)
	_ Automaton = (*DFA)(nil)
)

func (d *DFA) States() []string {
	out := make([]string, 0, len(d.Table))
	for s := range d.Table {
		out = append(out, s)
	}
	sortStates(out)
	return out
}

func (d *DFA) Alphabet() []rune {
	seen := map[rune]struct{}{}
	for _, moves := range d.Table {
		for sym := range moves {
			seen[sym] = struct{}{}
		}
	}
	return sortedRunes(seen)
}

func (d *DFA) StartState() string { return d.Start }

func (d *DFA) IsFinal(state string) bool { return d.Finals[state] }

func (d *DFA) Targets(state string, sym rune) []string {
	if to, ok := d.Next(state, sym); ok {
		return []string{to}
	}
	return nil
}

// Next returns the destination of state on sym.
func (d *DFA) Next(state string, sym rune) (string, bool) {
	to, ok := d.Table[state][sym]
	return to, ok
}

// FinalStates returns the accepting states in display order.
func (d *DFA) FinalStates() []string {
	out := make([]string, 0, len(d.Finals))
	for s, ok := range d.Finals {
		if ok {
			out = append(out, s)
		}
	}
	sortStates(out)
	return out
}

// Validate checks a DFA built outside this package: a start state, finals
// and destinations that are all keys of the table, and no ε-moves.
func (d *DFA) Validate() error {
	if d.Start == "" {
		return errors.New("start state is required")
	}
	if _, ok := d.Table[d.Start]; !ok {
		return fmt.Errorf("start state %q not found in table", d.Start)
	}
	for s, ok := range d.Finals {
		if _, known := d.Table[s]; ok && !known {
			return fmt.Errorf("final state %q not found in table", s)
		}
	}
	for from, moves := range d.Table {
		for sym, to := range moves {
			if sym == Epsilon {
				return fmt.Errorf("state %q: ε-move in a DFA", from)
			}
			if _, ok := d.Table[to]; !ok {
				return fmt.Errorf("invalid transition target %q (state %q, symbol %q)", to, from, sym)
			}
		}
	}
	return nil
}

// sortStates orders names by their non-numeric prefix, then by numeric
// suffix, so D2 comes before D10.
func sortStates(names []string) {
	sort.Slice(names, func(i, j int) bool {
		pi, ni := splitName(names[i])
		pj, nj := splitName(names[j])
		if pi != pj {
			return pi < pj
		}
		if ni != nj {
			return ni < nj
		}
		return names[i] < names[j]
	})
}

func splitName(name string) (string, int) {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == len(name) {
		return name, -1
	}
	n, err := strconv.Atoi(name[i:])
	if err != nil {
		return name, -1
	}
	return name[:i], n
}
