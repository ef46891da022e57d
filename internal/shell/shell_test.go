package shell

import (
	"bytes"
	"errors"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRehanMehdi/automata-regex-engine/internal/render"
	"github.com/MRehanMehdi/automata-regex-engine/regexlib"
)

func init() { render.SetColor(false) }

// scripted answers each question with the next line, or err once lines run out.
func scripted(t *testing.T, err error, lines ...string) (AskFunc, *[]string) {
	var labels []string
	return func(label string, validate promptui.ValidateFunc) (string, error) {
		labels = append(labels, label)
		if len(lines) == 0 {
			return "", err
		}
		line := lines[0]
		lines = lines[1:]
		if validate != nil {
			require.NoError(t, validate(line), "scripted answer %q", line)
		}
		return line, nil
	}, &labels
}

func TestValidateRegex(t *testing.T) {
	assert.NoError(t, ValidateRegex("a (b + c)*"))
	assert.ErrorIs(t, ValidateRegex("(ab"), regexlib.ErrUnmatchedParenthesis)
	assert.ErrorIs(t, ValidateRegex("a+*"), regexlib.ErrInvalidOperatorPlacement)
	assert.ErrorIs(t, ValidateRegex("a|b"), regexlib.ErrUnsupportedCharacter)
	assert.ErrorIs(t, ValidateRegex("   "), regexlib.ErrEmptyExpression)
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	ask, labels := scripted(t, nil, "a (b+c)", "ab", "ad", "")
	s := &Session{Out: &out, Ask: ask}

	require.NoError(t, s.Run())
	assert.Len(t, *labels, 4)

	text := out.String()
	assert.Contains(t, text, "Cleaned regex: a(b+c)\n")
	assert.Contains(t, text, "With concatenation: a.(b+c)\n")
	assert.Contains(t, text, "Postfix: abc+.\n")
	assert.Contains(t, text, "=== Thompson NFA ===")
	assert.Contains(t, text, "=== DFA (subset construction) ===")
	assert.Contains(t, text, "=== Minimized DFA ===")
	assert.Contains(t, text, `Simulating "ab"`)
	assert.Contains(t, text, "String Result: Accepted\n")
	assert.Contains(t, text, `Simulating "ad"`)
	assert.Contains(t, text, "String Result: Rejected\n")
}

func TestRunQuits(t *testing.T) {
	for _, err := range []error{promptui.ErrInterrupt, promptui.ErrEOF} {
		var out bytes.Buffer
		ask, _ := scripted(t, err)
		s := &Session{Out: &out, Ask: ask}
		assert.NoError(t, s.Run())
		assert.Empty(t, out.String())

		ask, _ = scripted(t, err, "a*")
		s = &Session{Out: &out, Ask: ask}
		assert.NoError(t, s.Run())
		assert.Contains(t, out.String(), "=== Minimized DFA ===")
	}
}

func TestRunPromptError(t *testing.T) {
	boom := errors.New("terminal gone")
	ask, _ := scripted(t, boom)
	s := &Session{Out: &bytes.Buffer{}, Ask: ask}
	assert.ErrorIs(t, s.Run(), boom)
}

func TestCheck(t *testing.T) {
	var out bytes.Buffer
	s := &Session{Out: &out}
	re := regexlib.MustCompile("(a+b)*abb")

	assert.True(t, s.Check(re, "babb"))
	assert.False(t, s.Check(re, "abab"))
	assert.False(t, s.Check(re, "abc"))
	assert.Contains(t, out.String(), "None (no transition)")
}
