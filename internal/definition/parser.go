package definition

import (
	"fmt"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/MRehanMehdi/automata-regex-engine/regexlib"
)

// Text form of a DFA:
//
//	# comment
//	start q0
//	final q1, q2
//	q0 a -> q1
//
// "start" and "final" are reserved and cannot name states.
type Definition struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Start *Start `parser:"  @@"`
	Final *Final `parser:"| @@"`
	Edge  *Edge  `parser:"| @@"`
}

type Start struct {
	Pos   lexer.Position
	State string `parser:"'start' @Ident"`
}

type Final struct {
	States []string `parser:"'final' @Ident ( ',' @Ident )*"`
}

type Edge struct {
	Pos    lexer.Position
	From   string `parser:"@Ident"`
	Symbol string `parser:"@Ident"`
	To     string `parser:"Arrow @Ident"`
}

var defLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Ident", Pattern: `[A-Za-z0-9_]+`},
	{Name: "Punct", Pattern: `,`},
})

var parser = participle.MustBuild[Definition](
	participle.Lexer(defLexer),
	participle.Elide("Comment", "Whitespace"),
)

// Parse reads the text form; name is used in error positions.
func Parse(name string, data []byte) (*Definition, error) {
	return parser.ParseBytes(name, data)
}

// DFA checks the definition and converts it. Every mentioned state becomes
// a table key.
func (def *Definition) DFA() (*regexlib.DFA, error) {
	d := &regexlib.DFA{Finals: map[string]bool{}, Table: map[string]map[rune]string{}}
	addState := func(s string) {
		if _, ok := d.Table[s]; !ok {
			d.Table[s] = map[rune]string{}
		}
	}

	for _, st := range def.Statements {
		switch {
		case st.Start != nil:
			if d.Start != "" && d.Start != st.Start.State {
				return nil, fmt.Errorf("%s: second start state %q (already %q)", st.Start.Pos, st.Start.State, d.Start)
			}
			d.Start = st.Start.State
			addState(d.Start)
		case st.Final != nil:
			for _, s := range st.Final.States {
				d.Finals[s] = true
				addState(s)
			}
		case st.Edge != nil:
			e := st.Edge
			sym, err := symbolOf(e.Symbol)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", e.Pos, err)
			}
			addState(e.From)
			addState(e.To)
			if prev, ok := d.Table[e.From][sym]; ok && prev != e.To {
				return nil, fmt.Errorf("%s: state %q has two moves on %q (%s, %s)", e.Pos, e.From, sym, prev, e.To)
			}
			d.Table[e.From][sym] = e.To
		}
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func symbolOf(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, fmt.Errorf("symbol %q must be a single character", s)
	}
	return r, nil
}
