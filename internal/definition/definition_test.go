package definition

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRehanMehdi/automata-regex-engine/regexlib"
)

const exampleText = `
# strings over {a,b} ending in "ab"
start q0
final q2

q0 a -> q1
q0 b -> q0
q1 a -> q1
q1 b -> q2
q2 a -> q1
q2 b -> q0
`

const exampleYAML = `
start: q0
final: [q2]
transitions:
  q0: {a: q1, b: q0}
  q1: {a: q1, b: q2}
  q2: {a: q1, b: q0}
`

const exampleJSON = `{
  "start": "q0",
  "final": ["q2"],
  "transitions": {
    "q0": {"a": "q1", "b": "q0"},
    "q1": {"a": "q1", "b": "q2"},
    "q2": {"a": "q1", "b": "q0"}
  }
}`

func exampleDFA() *regexlib.DFA {
	return &regexlib.DFA{
		Start:  "q0",
		Finals: map[string]bool{"q2": true},
		Table: map[string]map[rune]string{
			"q0": {'a': "q1", 'b': "q0"},
			"q1": {'a': "q1", 'b': "q2"},
			"q2": {'a': "q1", 'b': "q0"},
		},
	}
}

func TestDecode(t *testing.T) {
	testCases := []struct {
		name string
		file string
		data string
	}{
		{name: "text", file: "example.dfa", data: exampleText},
		{name: "yaml", file: "example.yaml", data: exampleYAML},
		{name: "yml", file: "EXAMPLE.YML", data: exampleYAML},
		{name: "json", file: "example.json", data: exampleJSON},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Decode(tc.file, []byte(tc.data))
			require.NoError(t, err)
			assert.Equal(t, exampleDFA(), d)
		})
	}
}

func TestDecodeTextForms(t *testing.T) {
	assert := assert.New(t)

	d, err := Decode("x.dfa", []byte("start s final s, t s 0 -> t t 1 -> s"))
	require.NoError(t, err)
	assert.Equal("s", d.Start)
	assert.Equal(map[string]bool{"s": true, "t": true}, d.Finals)
	assert.Equal(map[string]map[rune]string{"s": {'0': "t"}, "t": {'1': "s"}}, d.Table)

	d, err = Decode("x.dfa", []byte("start only"))
	require.NoError(t, err)
	assert.Equal(map[string]map[rune]string{"only": {}}, d.Table)
	assert.Empty(d.Finals)
}

func TestDecodeErrors(t *testing.T) {
	testCases := []struct {
		name string
		file string
		data string
		want string
	}{
		{name: "no start", file: "x.dfa", data: "final q0\nq0 a -> q0", want: "start state is required"},
		{name: "two starts", file: "x.dfa", data: "start a\nstart b", want: `second start state "b"`},
		{name: "long symbol", file: "x.dfa", data: "start a\na bc -> a", want: `symbol "bc" must be a single character`},
		{name: "nondeterministic", file: "x.dfa", data: "start a\na x -> a\na x -> b", want: `two moves on 'x'`},
		{name: "syntax", file: "x.dfa", data: "start a\na x ->", want: "x.dfa:"},
		{name: "yaml symbol", file: "x.yaml", data: "start: a\ntransitions:\n  a: {xy: a}\n", want: `symbol "xy"`},
		{name: "yaml syntax", file: "x.yaml", data: "start: [", want: "yaml unmarshal"},
		{name: "json syntax", file: "x.json", data: "{", want: "json unmarshal"},
		{name: "json start", file: "x.json", data: `{"transitions": {"a": {}}}`, want: "start state is required"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.file, []byte(tc.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "example.dfa")
	require.NoError(t, os.WriteFile(path, []byte(exampleText), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, exampleDFA(), d)

	_, err = Load(filepath.Join(dir, "missing.dfa"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncodeLoadsBack(t *testing.T) {
	min := regexlib.MustCompile("ed+ee+f(ddd+dd+d)*").DFA()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, min))
	assert.Contains(t, buf.String(), "start: D0")

	back, err := Decode("out.yaml", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, min, back)
}
