package regexlib

import "fmt"

// Step is one move of a simulation. To is empty when From has no move on
// Symbol; such a step always ends the trace.
type Step struct {
	From   string
	Symbol rune
	To     string
}

// Stuck reports whether the step found no transition.
func (s Step) Stuck() bool { return s.To == "" }

func (s Step) String() string {
	if s.Stuck() {
		return fmt.Sprintf("%s --%c--> None", s.From, s.Symbol)
	}
	return fmt.Sprintf("%s --%c--> %s", s.From, s.Symbol, s.To)
}

// Simulate runs input on d from its start state. The first symbol without a
// move appends a stuck step and rejects; otherwise the input is accepted iff
// the last state is final. An empty input yields no steps.
func Simulate(d *DFA, input string) ([]Step, bool) {
	cur := d.Start
	steps := make([]Step, 0, len(input))
	for _, sym := range input {
		to, ok := d.Next(cur, sym)
		if !ok {
			steps = append(steps, Step{From: cur, Symbol: sym})
			return steps, false
		}
		steps = append(steps, Step{From: cur, Symbol: sym, To: to})
		cur = to
	}
	return steps, d.Finals[cur]
}
