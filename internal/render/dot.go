package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/MRehanMehdi/automata-regex-engine/regexlib"
)

// DOT writes a Graphviz description of a. State names are quoted, so any
// name a definition file accepts is a valid node ID. Parallel moves between
// the same two states share one edge labelled "a,b".
func DOT(w io.Writer, a regexlib.Automaton) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")

	states := a.States()
	for _, s := range states {
		shape := "circle"
		if a.IsFinal(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    %q [shape=%s];\n", s, shape)
	}

	syms := a.Alphabet()
	for _, from := range states {
		var order []string
		labels := map[string][]string{}
		for _, sym := range syms {
			for _, to := range a.Targets(from, sym) {
				if _, ok := labels[to]; !ok {
					order = append(order, to)
				}
				labels[to] = append(labels[to], SymbolLabel(sym))
			}
		}
		for _, to := range order {
			fmt.Fprintf(w, "    %q -> %q [label=%q];\n", from, to, strings.Join(labels[to], ","))
		}
	}

	fmt.Fprintf(w, "    _start [shape=point]; _start -> %q;\n", a.StartState())
	fmt.Fprintln(w, "}")
}
