// Package shell is the interactive front end of the automata command: it
// asks for a regular expression, shows every construction stage and then
// simulates test strings on the minimized DFA.
package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"

	"github.com/MRehanMehdi/automata-regex-engine/internal/render"
	"github.com/MRehanMehdi/automata-regex-engine/regexlib"
)

// AskFunc reads one line. validate may be nil.
type AskFunc func(label string, validate promptui.ValidateFunc) (string, error)

// Session holds the output and the prompt used for every question.
type Session struct {
	Out io.Writer
	Ask AskFunc
}

// New returns a session reading from the terminal with promptui.
func New(out io.Writer) *Session {
	return &Session{Out: out, Ask: promptAsk}
}

func promptAsk(label string, validate promptui.ValidateFunc) (string, error) {
	p := promptui.Prompt{Label: label, Validate: validate}
	return p.Run()
}

// ValidateRegex is the live check applied while the expression is typed.
func ValidateRegex(s string) error {
	return regexlib.Validate(regexlib.Clean(s))
}

// Run asks for one expression, prints its automata and simulates strings
// until an empty line. Ctrl+C and Ctrl+D end the session without error.
func (s *Session) Run() error {
	pattern, err := s.Ask("Regular expression", ValidateRegex)
	if err != nil {
		return quit(err)
	}
	re, err := regexlib.Compile(pattern)
	if err != nil {
		fmt.Fprintf(s.Out, "Error: %v\n", err)
		return nil
	}
	s.Report(re)

	for {
		input, err := s.Ask("Test string (empty to quit)", nil)
		if err != nil {
			return quit(err)
		}
		if input == "" {
			return nil
		}
		s.Check(re, input)
	}
}

// Report prints the intermediate forms of re and its three automata.
func (s *Session) Report(re *regexlib.Regex) {
	fmt.Fprintf(s.Out, "Cleaned regex: %s\n", re.Expr())
	fmt.Fprintf(s.Out, "With concatenation: %s\n", re.Concat())
	fmt.Fprintf(s.Out, "Postfix: %s\n\n", re.Postfix())
	render.Table(s.Out, "Thompson NFA", re.NFA())
	fmt.Fprintln(s.Out)
	render.Table(s.Out, "DFA (subset construction)", re.RawDFA())
	fmt.Fprintln(s.Out)
	render.Table(s.Out, "Minimized DFA", re.DFA())
	fmt.Fprintln(s.Out)
}

// Check simulates input on the minimized DFA of re and prints the trace.
func (s *Session) Check(re *regexlib.Regex, input string) bool {
	steps, ok := re.Simulate(input)
	render.Trace(s.Out, input, steps, ok)
	return ok
}

func quit(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return nil
	}
	return err
}
