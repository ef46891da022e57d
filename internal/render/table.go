// Package render prints automata and simulation traces for people: plain
// transition tables, Graphviz DOT and coloured verdicts. It only reads
// through regexlib.Automaton.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/MRehanMehdi/automata-regex-engine/regexlib"
)

var (
	acceptColor = color.New(color.FgGreen, color.Bold)
	rejectColor = color.New(color.FgRed, color.Bold)
	titleColor  = color.New(color.FgCyan, color.Bold)
)

// SetColor turns ANSI colours on or off for everything in this package.
func SetColor(enabled bool) { color.NoColor = !enabled }

// SymbolLabel prints Epsilon as ε.
func SymbolLabel(sym rune) string {
	if sym == regexlib.Epsilon {
		return "ε"
	}
	return string(sym)
}

// Marked prefixes the start state with "->" and final states with "*".
func Marked(a regexlib.Automaton, state string) string {
	var b strings.Builder
	if state == a.StartState() {
		b.WriteString("->")
	}
	if a.IsFinal(state) {
		b.WriteString("*")
	}
	b.WriteString(state)
	return b.String()
}

// Table writes title and the transition table of a, one row per state.
// Missing moves print as "-".
func Table(w io.Writer, title string, a regexlib.Automaton) {
	titleColor.Fprintf(w, "=== %s ===\n", title)

	syms := a.Alphabet()
	header := []string{"State"}
	for _, sym := range syms {
		header = append(header, SymbolLabel(sym))
	}

	table := tablewriter.NewWriter(w)
	table.Header(header)
	for _, state := range a.States() {
		row := []string{Marked(a, state)}
		for _, sym := range syms {
			dests := a.Targets(state, sym)
			if len(dests) == 0 {
				row = append(row, "-")
				continue
			}
			row = append(row, strings.Join(dests, ","))
		}
		table.Append(row)
	}
	table.Render()

	var finals []string
	for _, state := range a.States() {
		if a.IsFinal(state) {
			finals = append(finals, state)
		}
	}
	fmt.Fprintf(w, "Start: %s  Final: {%s}\n", a.StartState(), strings.Join(finals, ", "))
}

// Verdict is "Accepted" in green or "Rejected" in red.
func Verdict(accepted bool) string {
	if accepted {
		return acceptColor.Sprint("Accepted")
	}
	return rejectColor.Sprint("Rejected")
}

// Trace writes one row per simulation step followed by the verdict.
func Trace(w io.Writer, input string, steps []regexlib.Step, accepted bool) {
	fmt.Fprintf(w, "Simulating %q\n", input)
	if len(steps) > 0 {
		table := tablewriter.NewWriter(w)
		table.Header([]string{"Step", "From", "Input", "To"})
		for i, s := range steps {
			to := s.To
			if s.Stuck() {
				to = "None (no transition)"
			}
			table.Append([]string{fmt.Sprintf("%d", i+1), s.From, string(s.Symbol), to})
		}
		table.Render()
	}
	fmt.Fprintf(w, "String Result: %s\n", Verdict(accepted))
}
