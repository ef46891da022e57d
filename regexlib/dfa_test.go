package regexlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dfaTable = map[string]map[rune]string

func TestNFAToDFA(t *testing.T) {
	testCases := []struct {
		regex  string
		table  dfaTable
		finals map[string]bool
	}{
		{
			regex: "ab",
			table: dfaTable{
				"D0": {'a': "D1"},
				"D1": {'b': "D2"},
				"D2": {},
			},
			finals: map[string]bool{"D2": true},
		},
		{
			regex: "a+b",
			table: dfaTable{
				"D0": {'a': "D1", 'b': "D2"},
				"D1": {},
				"D2": {},
			},
			finals: map[string]bool{"D1": true, "D2": true},
		},
		{
			// D2 is expanded before D1, so the d-successor is named first.
			regex: "ac+bd",
			table: dfaTable{
				"D0": {'a': "D1", 'b': "D2"},
				"D1": {'c': "D4"},
				"D2": {'d': "D3"},
				"D3": {},
				"D4": {},
			},
			finals: map[string]bool{"D3": true, "D4": true},
		},
		{
			regex: "a*",
			table: dfaTable{
				"D0": {'a': "D1"},
				"D1": {'a': "D1"},
			},
			finals: map[string]bool{"D0": true, "D1": true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.regex, func(t *testing.T) {
			assert := assert.New(t)
			nfa, err := CompileToNFA(tc.regex)
			require.NoError(t, err)

			dfa := NFAToDFA(nfa)
			assert.Equal("D0", dfa.Start)
			assert.Equal(tc.table, dfa.Table)
			assert.Equal(tc.finals, dfa.Finals)
		})
	}
}

func TestDFAReachableAndClosed(t *testing.T) {
	for _, re := range []string{"ab", "(a+b)*abb", "ed+ee+f(ddd+dd+d)*", "a(b+c)*d", "(ab+a)*c", "((a*)*)*"} {
		t.Run(re, func(t *testing.T) {
			dfa := MustCompile(re).RawDFA()
			require.NoError(t, dfa.Validate())

			seen := map[string]bool{dfa.Start: true}
			queue := []string{dfa.Start}
			for len(queue) > 0 {
				s := queue[0]
				queue = queue[1:]
				for _, to := range dfa.Table[s] {
					if !seen[to] {
						seen[to] = true
						queue = append(queue, to)
					}
				}
			}
			assert.Len(t, seen, len(dfa.Table), "every state is reachable from the start")
		})
	}
}

func TestNFAToDFALeavesNFAAlone(t *testing.T) {
	nfa, err := CompileToNFA("(a+b)*c")
	require.NoError(t, err)
	before := copyNFATable(nfa.Table)

	_ = NFAToDFA(nfa)
	assert.Equal(t, before, nfa.Table)
}

func copyNFATable(in nfaTable) nfaTable {
	out := nfaTable{}
	for s, moves := range in {
		out[s] = map[rune][]StateID{}
		for sym, dests := range moves {
			out[s][sym] = append([]StateID(nil), dests...)
		}
	}
	return out
}

func TestDFAAccessors(t *testing.T) {
	d := &DFA{
		Start:  "D0",
		Finals: map[string]bool{"D10": true, "D2": true, "D1": false},
		Table: dfaTable{
			"D0":  {'b': "D2", 'a': "D1"},
			"D1":  {},
			"D2":  {'c': "D10"},
			"D10": {},
		},
	}
	assert.Equal(t, []string{"D0", "D1", "D2", "D10"}, d.States())
	assert.Equal(t, []string{"D2", "D10"}, d.FinalStates())
	assert.Equal(t, []rune{'a', 'b', 'c'}, d.Alphabet())
	assert.Equal(t, "D0", d.StartState())
	assert.Equal(t, []string{"D10"}, d.Targets("D2", 'c'))
	assert.Empty(t, d.Targets("D1", 'c'))
	assert.False(t, d.IsFinal("D1"))
}

func TestDFAValidate(t *testing.T) {
	testCases := []struct {
		name string
		dfa  DFA
		want string
	}{
		{
			name: "ok",
			dfa:  DFA{Start: "s", Finals: map[string]bool{"s": true}, Table: dfaTable{"s": {'a': "s"}}},
		},
		{
			name: "no start",
			dfa:  DFA{Table: dfaTable{"s": {}}},
			want: "start state is required",
		},
		{
			name: "unknown start",
			dfa:  DFA{Start: "x", Table: dfaTable{"s": {}}},
			want: `start state "x" not found in table`,
		},
		{
			name: "unknown final",
			dfa:  DFA{Start: "s", Finals: map[string]bool{"f": true}, Table: dfaTable{"s": {}}},
			want: `final state "f" not found in table`,
		},
		{
			name: "unknown target",
			dfa:  DFA{Start: "s", Table: dfaTable{"s": {'a': "t"}}},
			want: `invalid transition target "t"`,
		},
		{
			name: "epsilon",
			dfa:  DFA{Start: "s", Table: dfaTable{"s": {Epsilon: "s"}}},
			want: "ε-move in a DFA",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.dfa.Validate()
			if tc.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
