// Package regexlib compiles regular expressions over letters and digits,
// with implicit concatenation, union (+) and Kleene star (*), into a
// minimal DFA and simulates input strings against it.
//
// The pipeline is Validate -> InsertConcatenation -> ToPostfix -> BuildNFA
// (Thompson) -> NFAToDFA (subset construction) -> Minimize (Hopcroft) ->
// Simulate. Every stage allocates its own result and leaves its input alone.
package regexlib

/* ----------- Compilation ----------- */

// Regex keeps every stage of one compilation.
type Regex struct {
	pattern string
	expr    string // whitespace removed
	concat  string // explicit '.' inserted
	postfix string

	nfa    *NFA
	rawDFA *DFA
	dfa    *DFA
}

func compileExpr(pattern string) (*Regex, error) {
	expr := Clean(pattern)
	if err := Validate(expr); err != nil {
		return nil, err
	}
	concat := InsertConcatenation(expr)
	postfix := ToPostfix(concat)
	nfa, err := BuildNFA(postfix)
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: pattern, expr: expr, concat: concat, postfix: postfix, nfa: nfa}, nil
}

// CompileToNFA validates regex and builds its Thompson NFA.
func CompileToNFA(regex string) (*NFA, error) {
	re, err := compileExpr(regex)
	if err != nil {
		return nil, err
	}
	return re.nfa, nil
}

// Compile runs the whole pipeline on pattern.
func Compile(pattern string) (*Regex, error) {
	re, err := compileExpr(pattern)
	if err != nil {
		return nil, err
	}
	re.rawDFA = NFAToDFA(re.nfa)
	re.dfa = Minimize(re.rawDFA)
	return re, nil
}

func MustCompile(p string) *Regex {
	r, err := Compile(p)
	if err != nil {
		panic(err)
	}
	return r
}

// Simulate runs input on the minimized DFA.
func (r *Regex) Simulate(input string) ([]Step, bool) { return Simulate(r.dfa, input) }

// MatchString reports whether the whole of input is in the language.
func (r *Regex) MatchString(input string) bool {
	_, ok := r.Simulate(input)
	return ok
}

/* ----------- Getters ----------- */

func (r *Regex) String() string  { return r.pattern }
func (r *Regex) Expr() string    { return r.expr }
func (r *Regex) Concat() string  { return r.concat }
func (r *Regex) Postfix() string { return r.postfix }
func (r *Regex) NFA() *NFA       { return r.nfa }
func (r *Regex) RawDFA() *DFA    { return r.rawDFA }
func (r *Regex) DFA() *DFA       { return r.dfa }
