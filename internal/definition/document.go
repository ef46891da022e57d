package definition

import (
	"fmt"

	"github.com/MRehanMehdi/automata-regex-engine/regexlib"
)

// Document is the YAML/JSON form of a DFA.
type Document struct {
	Start       string                       `json:"start" yaml:"start"`
	Final       []string                     `json:"final" yaml:"final"`
	Transitions map[string]map[string]string `json:"transitions" yaml:"transitions"`
}

// DFA checks the document and converts it. Start, finals and destinations
// become table keys.
func (doc *Document) DFA() (*regexlib.DFA, error) {
	d := &regexlib.DFA{Start: doc.Start, Finals: map[string]bool{}, Table: map[string]map[rune]string{}}
	addState := func(s string) {
		if _, ok := d.Table[s]; !ok {
			d.Table[s] = map[rune]string{}
		}
	}
	if doc.Start != "" {
		addState(doc.Start)
	}
	for _, s := range doc.Final {
		d.Finals[s] = true
		addState(s)
	}
	for from, moves := range doc.Transitions {
		addState(from)
		for symbol, to := range moves {
			sym, err := symbolOf(symbol)
			if err != nil {
				return nil, fmt.Errorf("state %q: %w", from, err)
			}
			addState(to)
			d.Table[from][sym] = to
		}
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// FromDFA is the inverse of Document.DFA.
func FromDFA(d *regexlib.DFA) Document {
	doc := Document{
		Start:       d.Start,
		Final:       d.FinalStates(),
		Transitions: make(map[string]map[string]string, len(d.Table)),
	}
	for state, moves := range d.Table {
		m := make(map[string]string, len(moves))
		for sym, to := range moves {
			m[string(sym)] = to
		}
		doc.Transitions[state] = m
	}
	return doc
}
